package models

import "time"

// Method is the predicted way a fight ends.
type Method string

const (
	MethodKO         Method = "KO/TKO"
	MethodSubmission Method = "Submission"
	MethodDecision   Method = "Decision"
	MethodDQ         Method = "DQ"
)

// AllMethods lists every valid method in a stable order.
var AllMethods = []Method{MethodKO, MethodSubmission, MethodDecision, MethodDQ}

// Valid reports whether m is one of the four accepted methods.
func (m Method) Valid() bool {
	switch m {
	case MethodKO, MethodSubmission, MethodDecision, MethodDQ:
		return true
	}
	return false
}

// RequiresRound reports whether a prediction with this method must carry a
// round number. Decisions and DQs do not collect one.
func (m Method) RequiresRound() bool {
	return m == MethodKO || m == MethodSubmission
}

// Prediction is a single user's pick for a single fight. Identity is the
// (UserID, FightID) pair: re-predicting before lock replaces the prior record.
//
// IsCorrect and Points stay nil until the fight result is posted, and are
// written exactly once at resolution.
type Prediction struct {
	ID                string    `json:"id"`
	UserID            string    `json:"user_id"`
	EventID           string    `json:"event_id"`
	FightID           string    `json:"fight_id"`
	SelectedFighterID string    `json:"selected_fighter_id"`
	Method            Method    `json:"method"`
	Round             int       `json:"round,omitempty"`
	PredictedAt       time.Time `json:"predicted_at"`
	IsCorrect         *bool     `json:"is_correct,omitempty"`
	Points            *int      `json:"points,omitempty"`
}

// Resolved reports whether the fight result has been posted for this
// prediction.
func (p *Prediction) Resolved() bool {
	return p.IsCorrect != nil
}
