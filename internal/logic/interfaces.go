package logic

import (
	"context"

	"github.com/fightpicks/picks-api/internal/models"
)

// StatsService serves the cached read side: per-user aggregates and the
// global leaderboard.
type StatsService interface {
	GetUserStats(ctx context.Context, userID string) (models.UserStats, error)
	GetLeaderboard(ctx context.Context) ([]models.LeaderboardEntry, error)
	// Reset clears every cached aggregate. Used only for full
	// logout/reset flows.
	Reset(ctx context.Context) error
}

// PredictionService owns the write side: accepting picks and resolving them
// when results land.
type PredictionService interface {
	SubmitPrediction(ctx context.Context, req *models.SubmitPredictionRequest) (*models.Prediction, error)
	PredictionsByUser(ctx context.Context, userID string) ([]models.Prediction, error)
	// ResolveFight records the fight outcome and scores every prediction
	// on it. Returns how many predictions were resolved.
	ResolveFight(ctx context.Context, fightID string, result *models.FightResult) (int, error)
}

// EventService exposes event reads and the card lock check. Lock status is
// deliberately uncached at this layer; callers poll it.
type EventService interface {
	GetEvent(ctx context.Context, eventID string) (*models.Event, error)
	CardLockStatus(ctx context.Context, eventID string) (CardLock, error)
}
