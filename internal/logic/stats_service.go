package logic

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/fightpicks/picks-api/internal/cache"
	"github.com/fightpicks/picks-api/internal/models"
	"github.com/fightpicks/picks-api/internal/store"
)

// statsFanout bounds concurrent per-user stat computations while building
// the leaderboard.
const statsFanout = 8

type statsService struct {
	store  store.PredictionStore
	loader *cache.Loader
	logger *zap.SugaredLogger
	ttl    time.Duration
}

// NewStatsService builds the cache-backed stats/leaderboard read service.
func NewStatsService(st store.PredictionStore, loader *cache.Loader, logger *zap.SugaredLogger, ttl time.Duration) StatsService {
	return &statsService{store: st, loader: loader, logger: logger, ttl: ttl}
}

func (s *statsService) GetUserStats(ctx context.Context, userID string) (models.UserStats, error) {
	return cache.GetOrCompute(ctx, s.loader, cache.UserStatsKey(userID), s.ttl, func(ctx context.Context) (models.UserStats, error) {
		return s.computeUserStats(ctx, userID)
	})
}

func (s *statsService) computeUserStats(ctx context.Context, userID string) (models.UserStats, error) {
	predictions, err := s.store.PredictionsByUser(ctx, userID)
	if err != nil {
		return models.UserStats{}, fmt.Errorf("fetch predictions: %w", err)
	}

	fightIDs := make([]string, 0, len(predictions))
	seen := make(map[string]struct{}, len(predictions))
	for i := range predictions {
		id := predictions[i].FightID
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		fightIDs = append(fightIDs, id)
	}

	fights, err := s.store.FightsByIDs(ctx, fightIDs)
	if err != nil {
		// Degraded data: stats still compute without the lookup table,
		// the odds-dependent fallback just contributes nothing.
		s.logger.Warnw("fight lookup failed, computing stats without odds context",
			"userID", userID, "error", err)
		fights = map[string]models.Fight{}
	}

	return ComputeStats(userID, predictions, fights), nil
}

func (s *statsService) GetLeaderboard(ctx context.Context) ([]models.LeaderboardEntry, error) {
	return cache.GetOrCompute(ctx, s.loader, cache.LeaderboardKey(), s.ttl, func(ctx context.Context) ([]models.LeaderboardEntry, error) {
		return s.computeLeaderboard(ctx)
	})
}

func (s *statsService) computeLeaderboard(ctx context.Context) ([]models.LeaderboardEntry, error) {
	users, err := s.store.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	var mu sync.Mutex
	stats := make(map[string]models.UserStats, len(users))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(statsFanout)
	for _, u := range users {
		u := u
		g.Go(func() error {
			// Each user's aggregate is itself cache-backed, so a warm
			// stats entry short-circuits here.
			us, err := s.GetUserStats(ctx, u.ID)
			if err != nil {
				return fmt.Errorf("stats for %s: %w", u.ID, err)
			}
			mu.Lock()
			stats[u.ID] = us
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return Rank(users, stats), nil
}

func (s *statsService) Reset(ctx context.Context) error {
	return s.loader.Flush(ctx)
}
