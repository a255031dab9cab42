package logic

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/fightpicks/picks-api/internal/cache"
	"github.com/fightpicks/picks-api/internal/models"
	"github.com/fightpicks/picks-api/internal/store"
)

type predictionService struct {
	store  store.PredictionStore
	loader *cache.Loader
	logger *zap.SugaredLogger
	now    func() time.Time
}

// NewPredictionService builds the prediction write service.
func NewPredictionService(st store.PredictionStore, loader *cache.Loader, logger *zap.SugaredLogger) PredictionService {
	return &predictionService{store: st, loader: loader, logger: logger, now: time.Now}
}

// SubmitPrediction validates, writes through the store (create-or-replace by
// the (userId, fightId) identity), and only then invalidates the user's
// cached stats. A failed write leaves prior cached stats untouched.
func (s *predictionService) SubmitPrediction(ctx context.Context, req *models.SubmitPredictionRequest) (*models.Prediction, error) {
	method := models.Method(req.Method)
	if !method.Valid() {
		return nil, Validationf("invalid method %q", req.Method)
	}

	fight, err := s.store.GetFight(ctx, req.FightID)
	if err != nil {
		return nil, err
	}
	if fight.EventID != req.EventID {
		return nil, Validationf("fight %s does not belong to event %s", req.FightID, req.EventID)
	}
	if fight.Status != models.FightUpcoming {
		return nil, Validationf("fight %s is %s, predictions are closed", req.FightID, fight.Status)
	}
	if !fight.HasFighter(req.SelectedFighterID) {
		return nil, Validationf("fighter %s is not part of fight %s", req.SelectedFighterID, req.FightID)
	}

	round := 0
	if method.RequiresRound() {
		if req.Round < 1 || req.Round > fight.Rounds {
			return nil, Validationf("round %d outside [1, %d] for method %s", req.Round, fight.Rounds, method)
		}
		round = req.Round
	}

	event, err := s.store.GetEvent(ctx, req.EventID)
	if err != nil {
		return nil, err
	}
	if CardLockStatus(event, s.now()).LockedForCard(fight.Card) {
		return nil, ErrLocked
	}

	prediction := &models.Prediction{
		ID:                uuid.New().String(),
		UserID:            req.UserID,
		EventID:           req.EventID,
		FightID:           req.FightID,
		SelectedFighterID: req.SelectedFighterID,
		Method:            method,
		Round:             round,
		PredictedAt:       s.now(),
	}

	if err := s.store.UpsertPrediction(ctx, prediction); err != nil {
		return nil, err
	}

	// The new pick is unscored, so points cannot have changed: only the
	// user's own stats entry is cleared, never the leaderboard.
	if err := s.loader.Delete(ctx, cache.KeysForSubmission(req.UserID)...); err != nil {
		s.logger.Warnw("stats invalidation failed after submission",
			"userID", req.UserID, "error", err)
	}

	return prediction, nil
}

func (s *predictionService) PredictionsByUser(ctx context.Context, userID string) ([]models.Prediction, error) {
	return s.store.PredictionsByUser(ctx, userID)
}

// ResolveFight records the outcome and scores every prediction on the fight.
// Each prediction's correctness and points are written exactly once; the
// invalidation fan-out (per-user stats plus the global leaderboard) runs
// only for writes that actually succeeded.
func (s *predictionService) ResolveFight(ctx context.Context, fightID string, result *models.FightResult) (int, error) {
	if !result.Method.Valid() {
		return 0, Validationf("invalid method %q", result.Method)
	}

	fight, err := s.store.GetFight(ctx, fightID)
	if err != nil {
		return 0, err
	}
	if !fight.HasFighter(result.WinnerID) {
		return 0, Validationf("winner %s is not part of fight %s", result.WinnerID, fightID)
	}

	if err := s.store.SaveFightResult(ctx, fightID, result); err != nil {
		return 0, err
	}

	predictions, err := s.store.PredictionsByFight(ctx, fightID)
	if err != nil {
		return 0, fmt.Errorf("fetch predictions for fight %s: %w", fightID, err)
	}

	resolved := 0
	var invalidate []string
	for i := range predictions {
		p := &predictions[i]
		if p.Resolved() {
			continue
		}

		correct := p.SelectedFighterID == result.WinnerID
		points := 0
		if correct {
			points = PointsFor(fight, p.SelectedFighterID)
		}

		if err := s.store.ResolvePrediction(ctx, p.ID, correct, points); err != nil {
			// Skip invalidation for this user: their cached stats
			// still match the stored (unresolved) data, and a
			// leaderboard recompute would just re-read it.
			s.logger.Errorw("failed to resolve prediction",
				"predictionID", p.ID, "fightID", fightID, "error", err)
			continue
		}

		resolved++
		invalidate = append(invalidate, cache.KeysForResolution(p.UserID)...)
	}

	if resolved > 0 {
		if err := s.loader.Delete(ctx, dedupe(invalidate)...); err != nil {
			s.logger.Warnw("invalidation failed after resolution",
				"fightID", fightID, "error", err)
		}
	}

	s.logger.Infow("fight resolved",
		"fightID", fightID, "winner", result.WinnerID, "predictions", resolved)
	return resolved, nil
}

func dedupe(keys []string) []string {
	seen := make(map[string]struct{}, len(keys))
	out := keys[:0]
	for _, k := range keys {
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	return out
}
