package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/touchlinehq/touchline/internal/domain/match"
	"github.com/touchlinehq/touchline/internal/domain/matchstats"
	"github.com/touchlinehq/touchline/internal/domain/team"
	"github.com/touchlinehq/touchline/internal/platform/id"
)

type RecordMatchInput struct {
	TeamID   string
	Opponent string
	PlayedAt time.Time
	Location string
	Notes    string
	Stats    map[string]any
}

type UpdateMatchStatsInput struct {
	MatchID string
	Stats   map[string]any
}

// StatsPreview is the result of a dry-run derivation: canonical keys plus the
// metrics they produce, without touching storage.
type StatsPreview struct {
	Normalized map[string]any     `json:"normalized"`
	Computed   map[string]float64 `json:"computed"`
}

// TeamSummary aggregates a team's season to date. Counters are summed across
// matches and the ratio metrics are re-derived from the summed counters, so a
// team's season TSR is possession-weighted rather than an average of per-match
// percentages.
type TeamSummary struct {
	TeamID       string             `json:"team_id"`
	MatchCount   int                `json:"match_count"`
	Wins         int                `json:"wins"`
	Draws        int                `json:"draws"`
	Losses       int                `json:"losses"`
	GoalsFor     float64            `json:"goals_for"`
	GoalsAgainst float64            `json:"goals_against"`
	Totals       map[string]float64 `json:"totals"`
	Metrics      map[string]float64 `json:"metrics"`
}

type MatchService struct {
	matchRepo match.Repository
	teamRepo  team.Repository
	idGen     id.Generator
	now       func() time.Time
}

func NewMatchService(matchRepo match.Repository, teamRepo team.Repository, idGen id.Generator) *MatchService {
	return &MatchService{
		matchRepo: matchRepo,
		teamRepo:  teamRepo,
		idGen:     idGen,
		now:       time.Now,
	}
}

func (s *MatchService) RecordMatch(ctx context.Context, input RecordMatchInput) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.RecordMatch")
	defer span.End()

	input.TeamID = strings.TrimSpace(input.TeamID)
	input.Opponent = strings.TrimSpace(input.Opponent)
	if input.TeamID == "" {
		return match.Match{}, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}
	if input.Opponent == "" {
		return match.Match{}, fmt.Errorf("%w: opponent is required", ErrInvalidInput)
	}

	if _, err := s.getTeam(ctx, input.TeamID); err != nil {
		return match.Match{}, err
	}

	matchID, err := s.idGen.NewID()
	if err != nil {
		return match.Match{}, fmt.Errorf("generate match id: %w", err)
	}

	raw := matchstats.Normalize(input.Stats)
	if raw == nil {
		raw = matchstats.RawStats{}
	}
	playedAt := input.PlayedAt
	if playedAt.IsZero() {
		playedAt = s.now()
	}

	nowAt := s.now().UTC()
	item := match.Match{
		ID:        matchID,
		TeamID:    input.TeamID,
		Opponent:  input.Opponent,
		PlayedAt:  playedAt.UTC(),
		Location:  strings.TrimSpace(input.Location),
		Notes:     strings.TrimSpace(input.Notes),
		RawStats:  raw,
		Computed:  matchstats.Compute(raw),
		CreatedAt: nowAt,
		UpdatedAt: nowAt,
	}

	if err := s.matchRepo.Create(ctx, item); err != nil {
		return match.Match{}, fmt.Errorf("create match: %w", err)
	}

	return item, nil
}

// UpdateMatchStats overlays the incoming values on the stored raw stats and
// re-derives the metrics. Incoming zero, empty, and nil values retain the
// stored value rather than overwrite it.
func (s *MatchService) UpdateMatchStats(ctx context.Context, input UpdateMatchStatsInput) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.UpdateMatchStats")
	defer span.End()

	matchID := strings.TrimSpace(input.MatchID)
	if matchID == "" {
		return match.Match{}, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}

	existing, exists, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return match.Match{}, fmt.Errorf("get match by id: %w", err)
	}
	if !exists {
		return match.Match{}, fmt.Errorf("%w: match=%s", ErrNotFound, matchID)
	}

	merged := matchstats.MergeForUpdate(existing.RawStats, matchstats.Normalize(input.Stats))
	computed := matchstats.Compute(merged)
	updatedAt := s.now().UTC()

	if err := s.matchRepo.UpdateStats(ctx, matchID, merged, computed, updatedAt); err != nil {
		return match.Match{}, fmt.Errorf("update match stats: %w", err)
	}

	existing.RawStats = merged
	existing.Computed = computed
	existing.UpdatedAt = updatedAt
	return existing, nil
}

func (s *MatchService) GetMatch(ctx context.Context, matchID string) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.GetMatch")
	defer span.End()

	matchID = strings.TrimSpace(matchID)
	if matchID == "" {
		return match.Match{}, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}

	item, exists, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return match.Match{}, fmt.Errorf("get match by id: %w", err)
	}
	if !exists {
		return match.Match{}, fmt.Errorf("%w: match=%s", ErrNotFound, matchID)
	}

	return item, nil
}

func (s *MatchService) ListMatchesByTeam(ctx context.Context, teamID string) ([]match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.ListMatchesByTeam")
	defer span.End()

	teamID = strings.TrimSpace(teamID)
	if teamID == "" {
		return nil, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}
	if _, err := s.getTeam(ctx, teamID); err != nil {
		return nil, err
	}

	items, err := s.matchRepo.ListByTeam(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("list matches by team: %w", err)
	}

	return items, nil
}

func (s *MatchService) DeleteMatch(ctx context.Context, matchID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.DeleteMatch")
	defer span.End()

	matchID = strings.TrimSpace(matchID)
	if matchID == "" {
		return fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}

	_, exists, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return fmt.Errorf("get match by id: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: match=%s", ErrNotFound, matchID)
	}

	if err := s.matchRepo.Delete(ctx, matchID); err != nil {
		return fmt.Errorf("delete match: %w", err)
	}

	return nil
}

// PreviewStats derives metrics from as-entered values without persisting
// anything. Used by the entry form to show live metrics while typing.
func (s *MatchService) PreviewStats(ctx context.Context, stats map[string]any) (StatsPreview, error) {
	_, span := startUsecaseSpan(ctx, "usecase.MatchService.PreviewStats")
	defer span.End()

	if len(stats) == 0 {
		return StatsPreview{}, fmt.Errorf("%w: stats payload is required", ErrInvalidInput)
	}

	raw := matchstats.Normalize(stats)
	return StatsPreview{
		Normalized: raw,
		Computed:   matchstats.Compute(raw),
	}, nil
}

func (s *MatchService) TeamSummary(ctx context.Context, teamID string) (TeamSummary, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.TeamSummary")
	defer span.End()

	teamID = strings.TrimSpace(teamID)
	if teamID == "" {
		return TeamSummary{}, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}
	if _, err := s.getTeam(ctx, teamID); err != nil {
		return TeamSummary{}, err
	}

	items, err := s.matchRepo.ListByTeam(ctx, teamID)
	if err != nil {
		return TeamSummary{}, fmt.Errorf("list matches by team: %w", err)
	}

	summary := TeamSummary{
		TeamID: teamID,
		Totals: map[string]float64{},
	}
	totals := matchstats.RawStats{}
	for _, item := range items {
		summary.MatchCount++

		computed := item.Computed
		if len(computed) == 0 {
			computed = matchstats.Compute(matchstats.RawStats(item.RawStats))
		}
		goalsFor := computed[matchstats.KeyGoalsFor]
		goalsAgainst := computed[matchstats.KeyGoalsAgainst]
		summary.GoalsFor += goalsFor
		summary.GoalsAgainst += goalsAgainst
		switch {
		case goalsFor > goalsAgainst:
			summary.Wins++
		case goalsFor < goalsAgainst:
			summary.Losses++
		default:
			summary.Draws++
		}

		accumulateRawTotals(totals, item.RawStats)
	}

	for key, value := range totals {
		if count, ok := value.(float64); ok {
			summary.Totals[key] = count
		}
	}
	summary.Metrics = matchstats.Compute(totals)
	return summary, nil
}

// accumulateRawTotals sums numeric raw values across matches so season metrics
// can be re-derived from season counters. Non-numeric values (dates, notes)
// are skipped. Percentage fields sum like counters here; the derived season
// metrics come from Compute over the summed counters, not from these sums.
func accumulateRawTotals(totals matchstats.RawStats, raw map[string]any) {
	for key, value := range raw {
		count, ok := matchstats.Float64(value)
		if !ok {
			continue
		}
		prev, _ := matchstats.Float64(totals[key])
		totals[key] = prev + count
	}
}

func (s *MatchService) getTeam(ctx context.Context, teamID string) (team.Team, error) {
	item, exists, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return team.Team{}, fmt.Errorf("get team by id: %w", err)
	}
	if !exists {
		return team.Team{}, fmt.Errorf("%w: team=%s", ErrNotFound, teamID)
	}

	return item, nil
}
