package handlers

import (
	"context"

	"github.com/fightpicks/picks-api/internal/logic"
	"github.com/fightpicks/picks-api/internal/models"
)

type mockStatsService struct {
	GetUserStatsFunc   func(ctx context.Context, userID string) (models.UserStats, error)
	GetLeaderboardFunc func(ctx context.Context) ([]models.LeaderboardEntry, error)
	ResetFunc          func(ctx context.Context) error
}

func (m *mockStatsService) GetUserStats(ctx context.Context, userID string) (models.UserStats, error) {
	return m.GetUserStatsFunc(ctx, userID)
}

func (m *mockStatsService) GetLeaderboard(ctx context.Context) ([]models.LeaderboardEntry, error) {
	return m.GetLeaderboardFunc(ctx)
}

func (m *mockStatsService) Reset(ctx context.Context) error {
	return m.ResetFunc(ctx)
}

type mockPredictionService struct {
	SubmitPredictionFunc  func(ctx context.Context, req *models.SubmitPredictionRequest) (*models.Prediction, error)
	PredictionsByUserFunc func(ctx context.Context, userID string) ([]models.Prediction, error)
	ResolveFightFunc      func(ctx context.Context, fightID string, result *models.FightResult) (int, error)
}

func (m *mockPredictionService) SubmitPrediction(ctx context.Context, req *models.SubmitPredictionRequest) (*models.Prediction, error) {
	return m.SubmitPredictionFunc(ctx, req)
}

func (m *mockPredictionService) PredictionsByUser(ctx context.Context, userID string) ([]models.Prediction, error) {
	return m.PredictionsByUserFunc(ctx, userID)
}

func (m *mockPredictionService) ResolveFight(ctx context.Context, fightID string, result *models.FightResult) (int, error) {
	return m.ResolveFightFunc(ctx, fightID, result)
}

type mockEventService struct {
	GetEventFunc       func(ctx context.Context, eventID string) (*models.Event, error)
	CardLockStatusFunc func(ctx context.Context, eventID string) (logic.CardLock, error)
}

func (m *mockEventService) GetEvent(ctx context.Context, eventID string) (*models.Event, error) {
	return m.GetEventFunc(ctx, eventID)
}

func (m *mockEventService) CardLockStatus(ctx context.Context, eventID string) (logic.CardLock, error) {
	return m.CardLockStatusFunc(ctx, eventID)
}

type mockResolveQueue struct {
	EnqueueFunc func(fightID string, result *models.FightResult) bool
	Depth       int
}

func (m *mockResolveQueue) Enqueue(fightID string, result *models.FightResult) bool {
	return m.EnqueueFunc(fightID, result)
}

func (m *mockResolveQueue) QueueDepth() int { return m.Depth }
