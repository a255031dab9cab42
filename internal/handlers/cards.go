package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/fightpicks/picks-api/internal/models"
)

// GetEvent returns an event with its main and preliminary cards
// @Summary Get Event
// @Tags Events
// @Produce json
// @Param eventId path string true "Event ID"
// @Success 200 {object} models.Event
// @Failure 404 {object} map[string]string "Not Found"
// @Router /events/{eventId} [get]
func (h *Handler) GetEvent(w http.ResponseWriter, r *http.Request) {
	eventID := chi.URLParam(r, "eventId")
	if eventID == "" {
		h.errorResponse(w, http.StatusBadRequest, "Event ID is required")
		return
	}

	event, err := h.events.GetEvent(r.Context(), eventID)
	if err != nil {
		h.serviceError(w, err, "get event")
		return
	}

	h.jsonResponse(w, http.StatusOK, event)
}

// GetCardLockStatus reports whether each card still accepts predictions
// @Summary Card Lock Status
// @Description Both flags flip to true the moment the card's earliest fight starts; clients poll this
// @Tags Events
// @Produce json
// @Param eventId path string true "Event ID"
// @Success 200 {object} models.LockStatusResponse
// @Failure 404 {object} map[string]string "Not Found"
// @Router /events/{eventId}/lock-status [get]
func (h *Handler) GetCardLockStatus(w http.ResponseWriter, r *http.Request) {
	eventID := chi.URLParam(r, "eventId")
	if eventID == "" {
		h.errorResponse(w, http.StatusBadRequest, "Event ID is required")
		return
	}

	status, err := h.events.CardLockStatus(r.Context(), eventID)
	if err != nil {
		h.serviceError(w, err, "get card lock status")
		return
	}

	h.jsonResponse(w, http.StatusOK, models.LockStatusResponse{
		EventID:        eventID,
		PrelimsLocked:  status.PrelimsLocked,
		MainCardLocked: status.MainCardLocked,
	})
}
