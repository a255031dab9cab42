package models

// LeaderboardEntry is one ranked row of the global leaderboard. Rank is dense
// and 1-based, assigned by position after the points sort; equal points still
// receive distinct consecutive ranks, with ties broken by user id ascending
// so pagination is reproducible.
type LeaderboardEntry struct {
	Rank             int     `json:"rank"`
	UserID           string  `json:"user_id"`
	Username         string  `json:"username"`
	Points           int     `json:"points"`
	Accuracy         float64 `json:"accuracy"`
	TotalPredictions int     `json:"total_predictions"`
	CurrentStreak    int     `json:"current_streak"`
}
