package logic

import (
	"sort"

	"github.com/fightpicks/picks-api/internal/models"
)

// Rank turns every user's aggregate into the points-descending leaderboard.
// Ties break by user id ascending so repeated runs (and pagination) are
// reproducible. Rank is dense and positional: equal points still get
// distinct consecutive ranks. Slicing (top-N, friends filtering) is the
// caller's job.
func Rank(users []models.User, stats map[string]models.UserStats) []models.LeaderboardEntry {
	entries := make([]models.LeaderboardEntry, 0, len(users))
	for _, u := range users {
		s, ok := stats[u.ID]
		if !ok {
			s = models.UserStats{UserID: u.ID}
		}
		entries = append(entries, models.LeaderboardEntry{
			UserID:           u.ID,
			Username:         u.Username,
			Points:           s.Points,
			Accuracy:         s.Accuracy,
			TotalPredictions: s.TotalPredictions,
			CurrentStreak:    s.CurrentStreak,
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Points != entries[j].Points {
			return entries[i].Points > entries[j].Points
		}
		return entries[i].UserID < entries[j].UserID
	})

	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries
}
