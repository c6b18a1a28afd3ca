package httpapi

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	sonic "github.com/bytedance/sonic"
	"github.com/touchlinehq/touchline/internal/domain/user"
	"github.com/touchlinehq/touchline/internal/usecase"
)

// maxImageBytes caps screenshot uploads; Veo exports are well under this.
const maxImageBytes = 8 << 20

func (h *Handler) RecordMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RecordMatch")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	var req recordMatchRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if !principal.CanManageTeam(strings.TrimSpace(req.TeamID)) {
		writeError(ctx, w, fmt.Errorf("%w: user %s cannot log stats for team %s", usecase.ErrUnauthorized, principal.UserID, req.TeamID))
		return
	}

	playedAt, err := parsePlayedAt(req.PlayedAt)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.matchService.RecordMatch(ctx, usecase.RecordMatchInput{
		TeamID:   req.TeamID,
		Opponent: req.Opponent,
		PlayedAt: playedAt,
		Location: req.Location,
		Notes:    req.Notes,
		Stats:    req.Stats,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "record match failed", "team_id", req.TeamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, matchToDTO(ctx, item))
}

func (h *Handler) GetMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMatch")
	defer span.End()

	matchID := r.PathValue("matchID")
	item, err := h.matchService.GetMatch(ctx, matchID)
	if err != nil {
		h.logger.WarnContext(ctx, "get match failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchToDTO(ctx, item))
}

func (h *Handler) UpdateMatchStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateMatchStats")
	defer span.End()

	matchID := r.PathValue("matchID")
	principal, err := h.requireMatchAccess(ctx, matchID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req updateMatchStatsRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if len(req.Stats) == 0 {
		writeError(ctx, w, fmt.Errorf("%w: stats payload is required", usecase.ErrInvalidInput))
		return
	}

	item, err := h.matchService.UpdateMatchStats(ctx, usecase.UpdateMatchStatsInput{
		MatchID: matchID,
		Stats:   req.Stats,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "update match stats failed", "match_id", matchID, "user_id", principal.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchToDTO(ctx, item))
}

func (h *Handler) DeleteMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteMatch")
	defer span.End()

	matchID := r.PathValue("matchID")
	principal, err := h.requireMatchAccess(ctx, matchID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.matchService.DeleteMatch(ctx, matchID); err != nil {
		h.logger.WarnContext(ctx, "delete match failed", "match_id", matchID, "user_id", principal.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (h *Handler) PreviewStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.PreviewStats")
	defer span.End()

	var req previewStatsRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}

	preview, err := h.matchService.PreviewStats(ctx, req.Stats)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, preview)
}

func (h *Handler) ImportMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ImportMatches")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	var req importMatchesRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	rows := make([]usecase.RecordMatchInput, 0, len(req.Rows))
	for i, row := range req.Rows {
		if !principal.CanManageTeam(strings.TrimSpace(row.TeamID)) {
			writeError(ctx, w, fmt.Errorf("%w: row %d targets team %s the user cannot manage", usecase.ErrUnauthorized, i, row.TeamID))
			return
		}
		playedAt, err := parsePlayedAt(row.PlayedAt)
		if err != nil {
			writeError(ctx, w, fmt.Errorf("%w: row %d: %v", usecase.ErrInvalidInput, i, err))
			return
		}
		rows = append(rows, usecase.RecordMatchInput{
			TeamID:   row.TeamID,
			Opponent: row.Opponent,
			PlayedAt: playedAt,
			Location: row.Location,
			Notes:    row.Notes,
			Stats:    row.Stats,
		})
	}

	result, err := h.importService.ImportMatches(ctx, usecase.ImportMatchesInput{
		Rows:       rows,
		MaxWorkers: req.MaxWorkers,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "import matches failed", "user_id", principal.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, result)
}

func (h *Handler) ExtractMatchStatsFromImage(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ExtractMatchStatsFromImage")
	defer span.End()

	matchID := r.PathValue("matchID")
	principal, err := h.requireMatchAccess(ctx, matchID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	image, err := io.ReadAll(io.LimitReader(r.Body, maxImageBytes+1))
	if err != nil {
		writeError(ctx, w, fmt.Errorf("%w: read image payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if len(image) > maxImageBytes {
		writeError(ctx, w, fmt.Errorf("%w: image exceeds %d bytes", usecase.ErrInvalidInput, maxImageBytes))
		return
	}

	item, err := h.extractionService.StatsFromImage(ctx, matchID, image, r.Header.Get("Content-Type"))
	if err != nil {
		h.logger.WarnContext(ctx, "extract match stats failed", "match_id", matchID, "user_id", principal.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchToDTO(ctx, item))
}

// requireMatchAccess loads the match and checks the caller may manage its
// team. Mutations address matches by id, so the team check needs the stored
// row first.
func (h *Handler) requireMatchAccess(ctx context.Context, matchID string) (user.Principal, error) {
	principal, ok := principalFromContext(ctx)
	if !ok {
		return user.Principal{}, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized)
	}

	item, err := h.matchService.GetMatch(ctx, matchID)
	if err != nil {
		return user.Principal{}, err
	}
	if !principal.CanManageTeam(item.TeamID) {
		return user.Principal{}, fmt.Errorf("%w: user %s cannot manage team %s", usecase.ErrUnauthorized, principal.UserID, item.TeamID)
	}

	return principal, nil
}

type recordMatchRequest struct {
	TeamID   string         `json:"team_id" validate:"required"`
	Opponent string         `json:"opponent" validate:"required,max=120"`
	PlayedAt string         `json:"played_at"`
	Location string         `json:"location" validate:"max=200"`
	Notes    string         `json:"notes" validate:"max=2000"`
	Stats    map[string]any `json:"stats"`
}

type updateMatchStatsRequest struct {
	Stats map[string]any `json:"stats"`
}

type previewStatsRequest struct {
	Stats map[string]any `json:"stats"`
}

type importMatchesRequest struct {
	MaxWorkers int                     `json:"max_workers" validate:"min=0,max=16"`
	Rows       []importMatchRowRequest `json:"rows" validate:"required,min=1,max=500,dive"`
}

type importMatchRowRequest struct {
	TeamID   string         `json:"team_id" validate:"required"`
	Opponent string         `json:"opponent" validate:"required,max=120"`
	PlayedAt string         `json:"played_at"`
	Location string         `json:"location" validate:"max=200"`
	Notes    string         `json:"notes" validate:"max=2000"`
	Stats    map[string]any `json:"stats"`
}
