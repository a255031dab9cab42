package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// GetUserStats returns the aggregated prediction statistics for one user
// @Summary Get User Stats
// @Tags Stats
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {object} models.UserStats
// @Failure 500 {object} map[string]string "Internal Error"
// @Router /stats/{userId} [get]
func (h *Handler) GetUserStats(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")
	if userID == "" {
		h.errorResponse(w, http.StatusBadRequest, "User ID is required")
		return
	}

	stats, err := h.stats.GetUserStats(r.Context(), userID)
	if err != nil {
		h.serviceError(w, err, "get user stats")
		return
	}

	h.jsonResponse(w, http.StatusOK, stats)
}
