package usecase

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/panjf2000/ants/v2"
)

const (
	importStatusSuccess = "success"
	importStatusFailed  = "failed"

	defaultImportWorkers = 4
)

type ImportMatchesInput struct {
	Rows       []RecordMatchInput
	MaxWorkers int
}

type ImportResult struct {
	RowCount     int               `json:"row_count"`
	SuccessCount int               `json:"success_count"`
	FailedCount  int               `json:"failed_count"`
	WorkerCount  int               `json:"worker_count"`
	Rows         []ImportRowResult `json:"rows"`
}

type ImportRowResult struct {
	Row        int    `json:"row"`
	MatchID    string `json:"match_id,omitempty"`
	Status     string `json:"status"`
	DurationMs int64  `json:"duration_ms"`
	Message    string `json:"message,omitempty"`
}

// ImportService records batches of matches, typically parsed from a season
// spreadsheet export. Rows are independent: a bad row fails alone and the
// rest of the batch still lands.
type ImportService struct {
	matches    *MatchService
	maxWorkers int
}

// NewImportService builds an import service whose pool never exceeds
// maxWorkers, the IMPORT_MAX_WORKERS ceiling. A non-positive value falls back
// to the default.
func NewImportService(matches *MatchService, maxWorkers int) *ImportService {
	if maxWorkers < 1 {
		maxWorkers = defaultImportWorkers
	}
	return &ImportService{matches: matches, maxWorkers: maxWorkers}
}

func (s *ImportService) ImportMatches(ctx context.Context, input ImportMatchesInput) (ImportResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ImportService.ImportMatches")
	defer span.End()

	if s.matches == nil {
		return ImportResult{}, fmt.Errorf("%w: match service is not configured", ErrDependencyUnavailable)
	}
	if len(input.Rows) == 0 {
		return ImportResult{}, fmt.Errorf("%w: rows are required", ErrInvalidInput)
	}

	workerCount := normalizeImportWorkerCount(input.MaxWorkers, len(input.Rows), s.maxWorkers)
	result := ImportResult{
		RowCount:    len(input.Rows),
		WorkerCount: workerCount,
		Rows:        make([]ImportRowResult, 0, len(input.Rows)),
	}

	results := make(chan ImportRowResult, len(input.Rows))

	var successCount atomic.Int32
	var failedCount atomic.Int32

	pool, err := ants.NewPool(workerCount)
	if err != nil {
		return ImportResult{}, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	var workers sync.WaitGroup
	for index, row := range input.Rows {
		index := index
		row := row
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()

			start := time.Now()
			out := ImportRowResult{Row: index}

			item, err := s.matches.RecordMatch(ctx, row)
			if err != nil {
				out.Status = importStatusFailed
				out.Message = err.Error()
				failedCount.Add(1)
			} else {
				out.Status = importStatusSuccess
				out.MatchID = item.ID
				successCount.Add(1)
			}
			out.DurationMs = time.Since(start).Milliseconds()

			results <- out
		}); err != nil {
			workers.Done()
			return ImportResult{}, fmt.Errorf("submit row to worker pool: %w", err)
		}
	}

	workers.Wait()
	close(results)

	for row := range results {
		result.Rows = append(result.Rows, row)
	}
	sort.SliceStable(result.Rows, func(i, j int) bool {
		return result.Rows[i].Row < result.Rows[j].Row
	})

	result.SuccessCount = int(successCount.Load())
	result.FailedCount = int(failedCount.Load())
	return result, nil
}

func normalizeImportWorkerCount(value int, rowCount int, maxWorkers int) int {
	if maxWorkers < 1 {
		maxWorkers = defaultImportWorkers
	}
	if rowCount <= 0 {
		return 1
	}
	if value <= 0 {
		value = 1
	}
	if value > maxWorkers {
		value = maxWorkers
	}
	if value > rowCount {
		value = rowCount
	}
	return value
}
