package cache

// Key constructors, one per cache-key family. Building keys through these
// keeps the invalidation fan-out an explicit, enumerable mapping instead of
// string conventions scattered across call sites.

const (
	prefixUserStats = "stats:"
	keyLeaderboard  = "leaderboard"
)

// UserStatsKey is the cache key for one user's aggregated stats.
func UserStatsKey(userID string) string {
	return prefixUserStats + userID
}

// LeaderboardKey is the single global leaderboard cache key.
func LeaderboardKey() string {
	return keyLeaderboard
}

// KeysForSubmission enumerates the keys whose value depends on a newly
// submitted (still unscored) prediction. The leaderboard is untouched:
// points cannot change before resolution.
func KeysForSubmission(userID string) []string {
	return []string{UserStatsKey(userID)}
}

// KeysForResolution enumerates the keys whose value depends on a resolved
// prediction. Points changed, so the global leaderboard goes too.
func KeysForResolution(userID string) []string {
	return []string{UserStatsKey(userID), LeaderboardKey()}
}
