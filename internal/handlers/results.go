package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/fightpicks/picks-api/internal/models"
)

// PostFightResult records a fight outcome and queues prediction resolution
// @Summary Post Fight Result
// @Description Validates the outcome and enqueues it; workers score every prediction on the fight
// @Tags Results
// @Accept json
// @Produce json
// @Param fightId path string true "Fight ID"
// @Param result body models.FightResultRequest true "Result"
// @Success 202 {object} map[string]string "Accepted"
// @Failure 400 {object} map[string]string "Validation Error"
// @Failure 503 {object} map[string]string "Queue Full"
// @Router /fights/{fightId}/result [post]
func (h *Handler) PostFightResult(w http.ResponseWriter, r *http.Request) {
	fightID := chi.URLParam(r, "fightId")
	if fightID == "" {
		h.errorResponse(w, http.StatusBadRequest, "Fight ID is required")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, MaxBodySize)

	var req models.FightResultRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.validator.Struct(&req); err != nil {
		h.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	method := models.Method(req.Method)
	if !method.Valid() {
		h.errorResponse(w, http.StatusBadRequest, "Invalid method")
		return
	}

	result := &models.FightResult{
		WinnerID: req.WinnerID,
		Method:   method,
		Round:    req.Round,
		Time:     req.Time,
	}

	if !h.resolver.Enqueue(fightID, result) {
		h.errorResponse(w, http.StatusServiceUnavailable, "Resolution queue full, retry later")
		return
	}

	h.jsonResponse(w, http.StatusAccepted, map[string]string{
		"status":  "accepted",
		"fightId": fightID,
	})
}
