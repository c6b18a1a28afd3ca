package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/touchlinehq/touchline/internal/domain/match"
)

func TestRecomputeService_RecomputeAll(t *testing.T) {
	t.Parallel()

	matchRepo := &stubMatchRepository{
		byID: map[string]match.Match{
			"m1": {
				ID:     "m1",
				TeamID: "team-u12",
				RawStats: map[string]any{
					"goalsFor": float64(2),
					"shotsFor": float64(8),
				},
				// Stale values from an older derivation.
				Computed: map[string]float64{"totalAttemptsFor": 99},
			},
			"m2": {
				ID:       "m2",
				TeamID:   "team-u12",
				RawStats: map[string]any{"passesFor": float64(120)},
			},
		},
	}
	service := NewRecomputeService(matchRepo)
	service.now = func() time.Time {
		return time.Date(2026, time.March, 14, 10, 0, 0, 0, time.UTC)
	}

	got, err := service.RecomputeAll(context.Background())
	if err != nil {
		t.Fatalf("RecomputeAll error: %v", err)
	}

	if got.MatchCount != 2 || got.UpdatedCount != 2 || got.FailedCount != 0 {
		t.Fatalf("unexpected result: %+v", got)
	}

	updated, exists, err := matchRepo.GetByID(context.Background(), "m1")
	if err != nil || !exists {
		t.Fatalf("expected stored match, exists=%v err=%v", exists, err)
	}
	if updated.Computed["totalAttemptsFor"] != 10 {
		t.Fatalf("expected recomputed totalAttemptsFor=10, got %v", updated.Computed["totalAttemptsFor"])
	}
	if !updated.UpdatedAt.Equal(service.now()) {
		t.Fatalf("expected updated timestamp, got %v", updated.UpdatedAt)
	}
}

func TestRecomputeService_RecomputeAll_EmptyStore(t *testing.T) {
	t.Parallel()

	service := NewRecomputeService(&stubMatchRepository{})

	got, err := service.RecomputeAll(context.Background())
	if err != nil {
		t.Fatalf("RecomputeAll error: %v", err)
	}
	if got.MatchCount != 0 || got.UpdatedCount != 0 || got.FailedCount != 0 {
		t.Fatalf("unexpected result: %+v", got)
	}
}
