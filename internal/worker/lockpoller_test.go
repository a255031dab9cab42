package worker

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/fightpicks/picks-api/internal/models"
)

// eventStore stubs the store boundary; only UpcomingEvents matters here.
type eventStore struct {
	events []models.Event
	err    error
}

func (s *eventStore) UpcomingEvents(ctx context.Context) ([]models.Event, error) {
	return s.events, s.err
}

func (s *eventStore) UpsertPrediction(ctx context.Context, p *models.Prediction) error {
	return errors.New("not used")
}

func (s *eventStore) PredictionsByUser(ctx context.Context, userID string) ([]models.Prediction, error) {
	return nil, errors.New("not used")
}

func (s *eventStore) PredictionsByFight(ctx context.Context, fightID string) ([]models.Prediction, error) {
	return nil, errors.New("not used")
}

func (s *eventStore) ResolvePrediction(ctx context.Context, predictionID string, isCorrect bool, points int) error {
	return errors.New("not used")
}

func (s *eventStore) GetFight(ctx context.Context, fightID string) (*models.Fight, error) {
	return nil, errors.New("not used")
}

func (s *eventStore) FightsByIDs(ctx context.Context, fightIDs []string) (map[string]models.Fight, error) {
	return nil, errors.New("not used")
}

func (s *eventStore) GetEvent(ctx context.Context, eventID string) (*models.Event, error) {
	return nil, errors.New("not used")
}

func (s *eventStore) SaveFightResult(ctx context.Context, fightID string, result *models.FightResult) error {
	return errors.New("not used")
}

func (s *eventStore) ListUsers(ctx context.Context) ([]models.User, error) {
	return nil, errors.New("not used")
}

func TestLockPollerSnapshot(t *testing.T) {
	past := time.Now().Add(-time.Hour)
	future := time.Now().Add(time.Hour)
	st := &eventStore{events: []models.Event{
		{
			ID:     "evt-1",
			Status: models.EventUpcoming,
			Prelims: []models.Fight{
				{ID: "fgt1", Card: models.PrelimCard, StartTime: past},
			},
			MainCard: []models.Fight{
				{ID: "fgt2", Card: models.MainCard, StartTime: future},
			},
		},
	}}

	lp := NewLockPoller(st, zap.NewNop(), time.Minute)
	lp.poll(context.Background())

	snap := lp.Snapshot()
	lock, ok := snap["evt-1"]
	if !ok {
		t.Fatal("event missing from snapshot")
	}
	if !lock.PrelimsLocked || lock.MainCardLocked {
		t.Errorf("lock = %+v, want prelims locked only", lock)
	}
}

func TestLockPollerKeepsSnapshotOnError(t *testing.T) {
	st := &eventStore{events: []models.Event{{ID: "evt-1", Status: models.EventUpcoming}}}
	lp := NewLockPoller(st, zap.NewNop(), time.Minute)
	lp.poll(context.Background())

	st.err = errors.New("connection refused")
	lp.poll(context.Background())

	if _, ok := lp.Snapshot()["evt-1"]; !ok {
		t.Error("a failed poll must not wipe the last good snapshot")
	}
}

func TestLockPollerDefaultInterval(t *testing.T) {
	lp := NewLockPoller(&eventStore{}, zap.NewNop(), 0)
	if lp.interval != time.Minute {
		t.Errorf("interval = %v, want 1m default", lp.interval)
	}
}

func TestLockPollerRunStopsOnCancel(t *testing.T) {
	lp := NewLockPoller(&eventStore{}, zap.NewNop(), 10*time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		lp.Run(ctx)
		close(done)
	}()

	time.Sleep(30 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("poller did not stop on cancel")
	}
}
