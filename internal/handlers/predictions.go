package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/fightpicks/picks-api/internal/models"
)

// SubmitPrediction accepts or replaces a user's pick for a fight
// @Summary Submit Prediction
// @Tags Predictions
// @Accept json
// @Produce json
// @Param prediction body models.SubmitPredictionRequest true "Prediction"
// @Success 201 {object} models.Prediction
// @Failure 400 {object} map[string]string "Validation Error"
// @Failure 409 {object} map[string]string "Card Locked"
// @Router /predictions [post]
func (h *Handler) SubmitPrediction(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, MaxBodySize)

	var req models.SubmitPredictionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.validator.Struct(&req); err != nil {
		h.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	prediction, err := h.predictions.SubmitPrediction(r.Context(), &req)
	if err != nil {
		h.serviceError(w, err, "submit prediction")
		return
	}

	h.jsonResponse(w, http.StatusCreated, prediction)
}

// GetUserPredictions returns a user's full prediction history
// @Summary Get User Predictions
// @Tags Predictions
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {array} models.Prediction
// @Router /predictions/user/{userId} [get]
func (h *Handler) GetUserPredictions(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")
	if userID == "" {
		h.errorResponse(w, http.StatusBadRequest, "User ID is required")
		return
	}

	predictions, err := h.predictions.PredictionsByUser(r.Context(), userID)
	if err != nil {
		h.serviceError(w, err, "get user predictions")
		return
	}
	if predictions == nil {
		predictions = []models.Prediction{}
	}

	h.jsonResponse(w, http.StatusOK, predictions)
}
