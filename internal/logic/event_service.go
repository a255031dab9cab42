package logic

import (
	"context"
	"time"

	"github.com/fightpicks/picks-api/internal/models"
	"github.com/fightpicks/picks-api/internal/store"
)

type eventService struct {
	store store.PredictionStore
	now   func() time.Time
}

// NewEventService builds the event read service.
func NewEventService(st store.PredictionStore) EventService {
	return &eventService{store: st, now: time.Now}
}

func (s *eventService) GetEvent(ctx context.Context, eventID string) (*models.Event, error) {
	return s.store.GetEvent(ctx, eventID)
}

// CardLockStatus fetches the event and runs the pure evaluator against the
// current clock. Not cached: the event read rides on the store's own
// consistency model, and callers re-poll rather than subscribe.
func (s *eventService) CardLockStatus(ctx context.Context, eventID string) (CardLock, error) {
	event, err := s.store.GetEvent(ctx, eventID)
	if err != nil {
		return CardLock{}, err
	}
	return CardLockStatus(event, s.now()), nil
}
