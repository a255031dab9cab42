package worker

import (
	"context"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"

	"github.com/fightpicks/picks-api/internal/logic"
	"github.com/fightpicks/picks-api/internal/store"
)

var lockedCards = promauto.NewGauge(prometheus.GaugeOpts{
	Name: "picks_locked_cards",
	Help: "Number of cards currently locked across upcoming events",
})

// LockPoller re-evaluates card lock state for all upcoming events on a fixed
// interval. The evaluator itself is pure and holds no timers; this poller is
// the one place the clock is watched, because wall-clock time crossing a
// fight's start is not an event anything can push.
type LockPoller struct {
	store    store.PredictionStore
	logger   *zap.SugaredLogger
	interval time.Duration

	mu       sync.RWMutex
	snapshot map[string]logic.CardLock
}

// NewLockPoller creates a poller. interval should come from config
// (LOCK_POLL_INTERVAL, 60s default).
func NewLockPoller(st store.PredictionStore, logger *zap.Logger, interval time.Duration) *LockPoller {
	if interval <= 0 {
		interval = time.Minute
	}
	return &LockPoller{
		store:    st,
		logger:   logger.Sugar(),
		interval: interval,
		snapshot: make(map[string]logic.CardLock),
	}
}

// Run polls until ctx is cancelled.
func (lp *LockPoller) Run(ctx context.Context) {
	ticker := time.NewTicker(lp.interval)
	defer ticker.Stop()

	lp.poll(ctx)
	for {
		select {
		case <-ticker.C:
			lp.poll(ctx)
		case <-ctx.Done():
			return
		}
	}
}

// Snapshot returns the last observed lock state per event id.
func (lp *LockPoller) Snapshot() map[string]logic.CardLock {
	lp.mu.RLock()
	defer lp.mu.RUnlock()

	out := make(map[string]logic.CardLock, len(lp.snapshot))
	for k, v := range lp.snapshot {
		out[k] = v
	}
	return out
}

func (lp *LockPoller) poll(ctx context.Context) {
	events, err := lp.store.UpcomingEvents(ctx)
	if err != nil {
		lp.logger.Warnw("lock poll failed", "error", err)
		return
	}

	now := time.Now()
	next := make(map[string]logic.CardLock, len(events))
	locked := 0

	lp.mu.Lock()
	defer lp.mu.Unlock()

	for i := range events {
		ev := &events[i]
		status := logic.CardLockStatus(ev, now)
		next[ev.ID] = status

		if status.PrelimsLocked {
			locked++
		}
		if status.MainCardLocked {
			locked++
		}

		prev, seen := lp.snapshot[ev.ID]
		if seen && prev != status {
			// Locking is monotone, so a change is always a lock.
			lp.logger.Infow("card lock transition",
				"eventID", ev.ID,
				"prelimsLocked", status.PrelimsLocked,
				"mainCardLocked", status.MainCardLocked)
		}
	}

	lp.snapshot = next
	lockedCards.Set(float64(locked))
}
