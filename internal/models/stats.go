package models

// UserStats is the derived per-user aggregate. It is never a source of truth:
// it is always reconstructible from the user's prediction history and lives
// only in the cache.
type UserStats struct {
	UserID             string  `json:"user_id"`
	TotalPredictions   int     `json:"total_predictions"`
	CorrectPredictions int     `json:"correct_predictions"`
	Accuracy           float64 `json:"accuracy"` // [0,1], 0 when no predictions
	CurrentStreak      int     `json:"current_streak"`
	BestStreak         int     `json:"best_streak"`
	Points             int     `json:"points"`

	// MethodAccuracy is dense: all four methods are always present,
	// empty groups report 0.
	MethodAccuracy map[Method]float64 `json:"method_accuracy"`

	// RoundAccuracy is sparse: only rounds with at least one prediction
	// appear.
	RoundAccuracy map[int]float64 `json:"round_accuracy"`
}
