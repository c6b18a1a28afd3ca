package httpapi

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/touchlinehq/touchline/internal/domain/match"
	"github.com/touchlinehq/touchline/internal/domain/team"
	"github.com/touchlinehq/touchline/internal/usecase"
)

type Handler struct {
	teamService       *usecase.TeamService
	matchService      *usecase.MatchService
	importService     *usecase.ImportService
	recomputeService  *usecase.RecomputeService
	extractionService *usecase.ExtractionService
	logger            *slog.Logger
	validator         *validator.Validate
}

func NewHandler(
	teamService *usecase.TeamService,
	matchService *usecase.MatchService,
	importService *usecase.ImportService,
	recomputeService *usecase.RecomputeService,
	extractionService *usecase.ExtractionService,
	logger *slog.Logger,
) *Handler {
	if logger == nil {
		logger = slog.Default()
	}

	return &Handler{
		teamService:       teamService,
		matchService:      matchService,
		importService:     importService,
		recomputeService:  recomputeService,
		extractionService: extractionService,
		logger:            logger,
		validator:         validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

func parsePlayedAt(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, nil
	}
	if parsed, err := time.Parse(time.RFC3339, value); err == nil {
		return parsed, nil
	}
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: played_at must be RFC3339 or YYYY-MM-DD", usecase.ErrInvalidInput)
	}
	return parsed, nil
}

type teamDTO struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	AgeGroup     string `json:"age_group"`
	Season       string `json:"season"`
	CreatedAtUTC string `json:"created_at_utc"`
}

type matchDTO struct {
	ID           string             `json:"id"`
	TeamID       string             `json:"team_id"`
	Opponent     string             `json:"opponent"`
	PlayedAtUTC  string             `json:"played_at_utc"`
	Location     string             `json:"location,omitempty"`
	Notes        string             `json:"notes,omitempty"`
	Stats        map[string]any     `json:"stats"`
	Metrics      map[string]float64 `json:"metrics"`
	CreatedAtUTC string             `json:"created_at_utc"`
	UpdatedAtUTC string             `json:"updated_at_utc"`
}

func teamToDTO(ctx context.Context, v team.Team) teamDTO {
	ctx, span := startSpan(ctx, "httpapi.teamToDTO")
	defer span.End()

	return teamDTO{
		ID:           v.ID,
		Name:         v.Name,
		AgeGroup:     v.AgeGroup,
		Season:       v.Season,
		CreatedAtUTC: v.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func matchToDTO(ctx context.Context, v match.Match) matchDTO {
	ctx, span := startSpan(ctx, "httpapi.matchToDTO")
	defer span.End()

	stats := v.RawStats
	if stats == nil {
		stats = map[string]any{}
	}
	metrics := v.Computed
	if metrics == nil {
		metrics = map[string]float64{}
	}

	return matchDTO{
		ID:           v.ID,
		TeamID:       v.TeamID,
		Opponent:     v.Opponent,
		PlayedAtUTC:  v.PlayedAt.UTC().Format(time.RFC3339),
		Location:     v.Location,
		Notes:        v.Notes,
		Stats:        stats,
		Metrics:      metrics,
		CreatedAtUTC: v.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAtUTC: v.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
