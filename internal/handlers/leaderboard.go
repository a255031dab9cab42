package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/fightpicks/picks-api/internal/models"
)

const (
	globalLeaderboardCap  = 100
	friendsLeaderboardCap = 10
)

// GetLeaderboard returns the global points leaderboard
// @Summary Global Leaderboard
// @Description Points-descending ranking across all users, top 100
// @Tags Stats
// @Produce json
// @Param limit query int false "Limit" default(100)
// @Success 200 {object} map[string]interface{} "Leaderboard Data"
// @Failure 500 {object} map[string]string "Internal Error"
// @Router /leaderboard [get]
func (h *Handler) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	limit := globalLeaderboardCap
	if l := r.URL.Query().Get("limit"); l != "" {
		if parsed, err := strconv.Atoi(l); err == nil && parsed > 0 && parsed <= globalLeaderboardCap {
			limit = parsed
		}
	}

	entries, err := h.stats.GetLeaderboard(r.Context())
	if err != nil {
		h.serviceError(w, err, "get leaderboard")
		return
	}

	total := len(entries)
	if len(entries) > limit {
		entries = entries[:limit]
	}

	h.jsonResponse(w, http.StatusOK, map[string]interface{}{
		"entries": entries,
		"total":   total,
	})
}

// GetFriendsLeaderboard returns the ranking restricted to a friend list
// @Summary Friends Leaderboard
// @Description Global ranking filtered to the given friend ids, excluding the requesting user, top 10
// @Tags Stats
// @Produce json
// @Param userId query string true "Requesting user id (excluded from the result)"
// @Param ids query string true "Comma-separated friend user ids"
// @Success 200 {object} map[string]interface{} "Leaderboard Data"
// @Router /leaderboard/friends [get]
func (h *Handler) GetFriendsLeaderboard(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	rawIDs := r.URL.Query().Get("ids")
	if rawIDs == "" {
		h.errorResponse(w, http.StatusBadRequest, "ids query parameter is required")
		return
	}

	wanted := make(map[string]bool)
	for _, id := range strings.Split(rawIDs, ",") {
		if trimmed := strings.TrimSpace(id); trimmed != "" && trimmed != userID {
			wanted[trimmed] = true
		}
	}

	entries, err := h.stats.GetLeaderboard(r.Context())
	if err != nil {
		h.serviceError(w, err, "get friends leaderboard")
		return
	}

	// Global ranks are preserved; the friends view is a slice of the
	// global board, not a re-ranking.
	filtered := make([]models.LeaderboardEntry, 0, len(wanted))
	for _, e := range entries {
		if wanted[e.UserID] {
			filtered = append(filtered, e)
			if len(filtered) == friendsLeaderboardCap {
				break
			}
		}
	}

	h.jsonResponse(w, http.StatusOK, map[string]interface{}{
		"entries": filtered,
		"total":   len(filtered),
	})
}
