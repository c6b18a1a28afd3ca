package httpapi

import (
	"fmt"
	"net/http"

	"github.com/touchlinehq/touchline/internal/usecase"
)

// RunRecomputeJob re-derives stored metrics for every match. Triggered by the
// deploy pipeline after a metric definition changes.
func (h *Handler) RunRecomputeJob(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RunRecomputeJob")
	defer span.End()

	if h.recomputeService == nil {
		writeError(ctx, w, fmt.Errorf("%w: recompute service is not configured", usecase.ErrDependencyUnavailable))
		return
	}

	result, err := h.recomputeService.RecomputeAll(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "run recompute job failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	h.logger.InfoContext(ctx, "recompute job finished",
		"match_count", result.MatchCount,
		"updated_count", result.UpdatedCount,
		"failed_count", result.FailedCount,
	)
	writeSuccess(ctx, w, http.StatusOK, result)
}
