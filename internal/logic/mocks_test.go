package logic

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/fightpicks/picks-api/internal/models"
	"github.com/fightpicks/picks-api/internal/store"
)

// MockStore is an in-memory PredictionStore. Per-method Func hooks override
// the default behavior, matching the handler mock pattern used across the
// repo. Call counters let tests assert how often the store was hit.
type MockStore struct {
	mu sync.Mutex

	Predictions map[string]*models.Prediction // by id
	Fights      map[string]*models.Fight
	Events      map[string]*models.Event
	Users       []models.User

	PredictionsByUserCalls int

	UpsertPredictionFunc  func(ctx context.Context, p *models.Prediction) error
	ResolvePredictionFunc func(ctx context.Context, id string, isCorrect bool, points int) error
	SaveFightResultFunc   func(ctx context.Context, fightID string, result *models.FightResult) error
}

func NewMockStore() *MockStore {
	return &MockStore{
		Predictions: make(map[string]*models.Prediction),
		Fights:      make(map[string]*models.Fight),
		Events:      make(map[string]*models.Event),
	}
}

func (m *MockStore) UpsertPrediction(ctx context.Context, p *models.Prediction) error {
	if m.UpsertPredictionFunc != nil {
		return m.UpsertPredictionFunc(ctx, p)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, existing := range m.Predictions {
		if existing.UserID == p.UserID && existing.FightID == p.FightID {
			delete(m.Predictions, id)
		}
	}
	cp := *p
	m.Predictions[p.ID] = &cp
	return nil
}

func (m *MockStore) PredictionsByUser(ctx context.Context, userID string) ([]models.Prediction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.PredictionsByUserCalls++

	var out []models.Prediction
	for _, p := range m.Predictions {
		if p.UserID == userID {
			out = append(out, *p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PredictedAt.Before(out[j].PredictedAt) })
	return out, nil
}

func (m *MockStore) PredictionsByFight(ctx context.Context, fightID string) ([]models.Prediction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []models.Prediction
	for _, p := range m.Predictions {
		if p.FightID == fightID {
			out = append(out, *p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PredictedAt.Before(out[j].PredictedAt) })
	return out, nil
}

func (m *MockStore) ResolvePrediction(ctx context.Context, id string, isCorrect bool, points int) error {
	if m.ResolvePredictionFunc != nil {
		return m.ResolvePredictionFunc(ctx, id, isCorrect, points)
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	p, ok := m.Predictions[id]
	if !ok {
		return fmt.Errorf("prediction %s: %w", id, store.ErrNotFound)
	}
	if p.IsCorrect != nil {
		// Write-once: a second resolution is a no-op.
		return nil
	}
	p.IsCorrect = &isCorrect
	p.Points = &points
	return nil
}

func (m *MockStore) GetFight(ctx context.Context, fightID string) (*models.Fight, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	f, ok := m.Fights[fightID]
	if !ok {
		return nil, fmt.Errorf("fight %s: %w", fightID, store.ErrNotFound)
	}
	cp := *f
	return &cp, nil
}

func (m *MockStore) FightsByIDs(ctx context.Context, fightIDs []string) (map[string]models.Fight, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make(map[string]models.Fight, len(fightIDs))
	for _, id := range fightIDs {
		if f, ok := m.Fights[id]; ok {
			out[id] = *f
		}
	}
	return out, nil
}

func (m *MockStore) GetEvent(ctx context.Context, eventID string) (*models.Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	ev, ok := m.Events[eventID]
	if !ok {
		return nil, fmt.Errorf("event %s: %w", eventID, store.ErrNotFound)
	}
	cp := *ev
	return &cp, nil
}

func (m *MockStore) UpcomingEvents(ctx context.Context) ([]models.Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []models.Event
	for _, ev := range m.Events {
		if ev.Status == models.EventUpcoming {
			out = append(out, *ev)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *MockStore) SaveFightResult(ctx context.Context, fightID string, result *models.FightResult) error {
	if m.SaveFightResultFunc != nil {
		return m.SaveFightResultFunc(ctx, fightID, result)
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	f, ok := m.Fights[fightID]
	if !ok || f.Status != models.FightUpcoming {
		return fmt.Errorf("fight %s not upcoming: %w", fightID, store.ErrNotFound)
	}
	f.Status = models.FightCompleted
	f.WinnerID = &result.WinnerID
	method := result.Method
	f.Method = &method
	return nil
}

func (m *MockStore) ListUsers(ctx context.Context) ([]models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]models.User(nil), m.Users...), nil
}

// Test fixture helpers

func boolPtr(b bool) *bool { return &b }
func intPtr(i int) *int    { return &i }

func resolvedPrediction(id, userID, fightID string, at time.Time, correct bool, points int) models.Prediction {
	return models.Prediction{
		ID:                id,
		UserID:            userID,
		EventID:           "evt-1",
		FightID:           fightID,
		SelectedFighterID: "f1",
		Method:            models.MethodDecision,
		PredictedAt:       at,
		IsCorrect:         boolPtr(correct),
		Points:            intPtr(points),
	}
}

func pendingPrediction(id, userID, fightID string, at time.Time) models.Prediction {
	return models.Prediction{
		ID:                id,
		UserID:            userID,
		EventID:           "evt-1",
		FightID:           fightID,
		SelectedFighterID: "f1",
		Method:            models.MethodDecision,
		PredictedAt:       at,
	}
}
