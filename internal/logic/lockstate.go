package logic

import (
	"time"

	"github.com/fightpicks/picks-api/internal/models"
)

// CardLock reports which of an event's two cards are closed for predictions.
type CardLock struct {
	PrelimsLocked  bool `json:"prelims_locked"`
	MainCardLocked bool `json:"main_card_locked"`
}

// CardLockStatus is the pure lock evaluator: each card locks the moment its
// earliest-scheduled fight starts, independent of the sibling card. An empty
// card never locks. The function holds no timers; callers re-invoke it on a
// bounded interval because wall-clock time crossing a threshold is not an
// event.
func CardLockStatus(event *models.Event, now time.Time) CardLock {
	return CardLock{
		PrelimsLocked:  cardLocked(event.Prelims, now),
		MainCardLocked: cardLocked(event.MainCard, now),
	}
}

// LockedForCard returns the lock flag that applies to the given card segment.
func (c CardLock) LockedForCard(card models.CardSegment) bool {
	if card == models.MainCard {
		return c.MainCardLocked
	}
	return c.PrelimsLocked
}

func cardLocked(fights []models.Fight, now time.Time) bool {
	first, ok := earliestStart(fights)
	if !ok {
		return false
	}
	return !now.Before(first)
}

func earliestStart(fights []models.Fight) (time.Time, bool) {
	if len(fights) == 0 {
		return time.Time{}, false
	}
	first := fights[0].StartTime
	for i := 1; i < len(fights); i++ {
		if fights[i].StartTime.Before(first) {
			first = fights[i].StartTime
		}
	}
	return first, true
}
