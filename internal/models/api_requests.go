package models

// SubmitPredictionRequest is the body of POST /api/v1/predictions.
type SubmitPredictionRequest struct {
	UserID            string `json:"user_id" validate:"required"`
	EventID           string `json:"event_id" validate:"required"`
	FightID           string `json:"fight_id" validate:"required"`
	SelectedFighterID string `json:"selected_fighter_id" validate:"required"`
	Method            string `json:"method" validate:"required"`
	Round             int    `json:"round,omitempty" validate:"omitempty,min=1,max=5"`
}

// FightResultRequest is the body of POST /api/v1/fights/{fightId}/result.
type FightResultRequest struct {
	WinnerID string `json:"winner_id" validate:"required"`
	Method   string `json:"method" validate:"required"`
	Round    int    `json:"round,omitempty" validate:"omitempty,min=1,max=5"`
	Time     string `json:"time,omitempty"`
}

// LockStatusResponse is the body of GET /api/v1/events/{eventId}/lock-status.
type LockStatusResponse struct {
	EventID        string `json:"event_id"`
	PrelimsLocked  bool   `json:"prelims_locked"`
	MainCardLocked bool   `json:"main_card_locked"`
}
