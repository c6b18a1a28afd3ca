package usecase

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/sourcegraph/conc/pool"

	"github.com/touchlinehq/touchline/internal/domain/match"
	"github.com/touchlinehq/touchline/internal/domain/matchstats"
)

const recomputeWorkers = 4

type RecomputeResult struct {
	MatchCount   int `json:"match_count"`
	UpdatedCount int `json:"updated_count"`
	FailedCount  int `json:"failed_count"`
}

// RecomputeService re-derives stored metrics from the persisted raw stats.
// Run after a metric definition changes so historical matches pick up the new
// derivation.
type RecomputeService struct {
	matchRepo match.Repository
	now       func() time.Time
}

func NewRecomputeService(matchRepo match.Repository) *RecomputeService {
	return &RecomputeService{
		matchRepo: matchRepo,
		now:       time.Now,
	}
}

func (s *RecomputeService) RecomputeAll(ctx context.Context) (RecomputeResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RecomputeService.RecomputeAll")
	defer span.End()

	items, err := s.matchRepo.ListAll(ctx)
	if err != nil {
		return RecomputeResult{}, fmt.Errorf("list matches: %w", err)
	}

	var updatedCount atomic.Int32
	var failedCount atomic.Int32

	workers := pool.New().WithMaxGoroutines(recomputeWorkers)
	for _, item := range items {
		item := item
		workers.Go(func() {
			computed := matchstats.Compute(item.RawStats)
			if err := s.matchRepo.UpdateStats(ctx, item.ID, item.RawStats, computed, s.now().UTC()); err != nil {
				failedCount.Add(1)
				return
			}
			updatedCount.Add(1)
		})
	}
	workers.Wait()

	return RecomputeResult{
		MatchCount:   len(items),
		UpdatedCount: int(updatedCount.Load()),
		FailedCount:  int(failedCount.Load()),
	}, nil
}
