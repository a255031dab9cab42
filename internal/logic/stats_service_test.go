package logic

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/fightpicks/picks-api/internal/cache"
	"github.com/fightpicks/picks-api/internal/models"
)

func newStatsFixture(t *testing.T) (*MockStore, *cache.Memory, StatsService) {
	t.Helper()
	st := NewMockStore()
	mem := cache.NewMemory()
	svc := NewStatsService(st, cache.NewLoader(mem), zap.NewNop().Sugar(), 5*time.Minute)
	return st, mem, svc
}

func TestGetUserStatsServesFromCache(t *testing.T) {
	st, _, svc := newStatsFixture(t)
	at := time.Date(2026, 3, 1, 20, 0, 0, 0, time.UTC)
	p := resolvedPrediction("p1", "u1", "fgt1", at, true, 11)
	st.Predictions[p.ID] = &p

	first, err := svc.GetUserStats(context.Background(), "u1")
	if err != nil {
		t.Fatalf("first read: %v", err)
	}
	if first.Points != 11 || first.TotalPredictions != 1 {
		t.Fatalf("unexpected stats: %+v", first)
	}

	calls := st.PredictionsByUserCalls
	second, err := svc.GetUserStats(context.Background(), "u1")
	if err != nil {
		t.Fatalf("second read: %v", err)
	}
	if st.PredictionsByUserCalls != calls {
		t.Errorf("warm read hit the store: %d calls, want %d", st.PredictionsByUserCalls, calls)
	}
	if second.Points != first.Points {
		t.Errorf("cached stats diverged: %+v vs %+v", second, first)
	}
}

func TestGetUserStatsRecomputesAfterInvalidation(t *testing.T) {
	st, mem, svc := newStatsFixture(t)
	at := time.Date(2026, 3, 1, 20, 0, 0, 0, time.UTC)
	p := resolvedPrediction("p1", "u1", "fgt1", at, true, 10)
	st.Predictions[p.ID] = &p

	if _, err := svc.GetUserStats(context.Background(), "u1"); err != nil {
		t.Fatalf("warm-up read: %v", err)
	}

	p2 := resolvedPrediction("p2", "u1", "fgt2", at.Add(time.Hour), true, 12)
	st.Predictions[p2.ID] = &p2
	if err := mem.Delete(context.Background(), cache.UserStatsKey("u1")); err != nil {
		t.Fatalf("invalidate: %v", err)
	}

	stats, err := svc.GetUserStats(context.Background(), "u1")
	if err != nil {
		t.Fatalf("recompute: %v", err)
	}
	if stats.Points != 22 || stats.TotalPredictions != 2 {
		t.Errorf("stale stats after invalidation: %+v", stats)
	}
}

func TestGetLeaderboardRanksAllUsers(t *testing.T) {
	st, _, svc := newStatsFixture(t)
	st.Users = []models.User{
		{ID: "u1", Username: "alice"},
		{ID: "u2", Username: "bob"},
	}
	at := time.Date(2026, 3, 1, 20, 0, 0, 0, time.UTC)
	for _, p := range []models.Prediction{
		resolvedPrediction("p1", "u1", "fgt1", at, true, 10),
		resolvedPrediction("p2", "u2", "fgt1", at, true, 15),
		resolvedPrediction("p3", "u2", "fgt2", at.Add(time.Hour), true, 10),
	} {
		cp := p
		st.Predictions[cp.ID] = &cp
	}

	entries, err := svc.GetLeaderboard(context.Background())
	if err != nil {
		t.Fatalf("leaderboard: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("entries = %d, want 2", len(entries))
	}
	if entries[0].UserID != "u2" || entries[0].Points != 25 || entries[0].Rank != 1 {
		t.Errorf("top entry = %+v", entries[0])
	}
	if entries[1].UserID != "u1" || entries[1].Rank != 2 {
		t.Errorf("second entry = %+v", entries[1])
	}
}

func TestGetLeaderboardServedFromCache(t *testing.T) {
	st, _, svc := newStatsFixture(t)
	st.Users = []models.User{{ID: "u1", Username: "alice"}}

	if _, err := svc.GetLeaderboard(context.Background()); err != nil {
		t.Fatalf("warm-up: %v", err)
	}

	// New user appears only after the cached board is invalidated.
	st.Users = append(st.Users, models.User{ID: "u2", Username: "bob"})
	entries, err := svc.GetLeaderboard(context.Background())
	if err != nil {
		t.Fatalf("cached read: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("cached board recomputed early: %d entries", len(entries))
	}
}

func TestResetFlushesEverything(t *testing.T) {
	st, mem, svc := newStatsFixture(t)
	st.Users = []models.User{{ID: "u1", Username: "alice"}}

	if _, err := svc.GetUserStats(context.Background(), "u1"); err != nil {
		t.Fatalf("stats: %v", err)
	}
	if _, err := svc.GetLeaderboard(context.Background()); err != nil {
		t.Fatalf("leaderboard: %v", err)
	}
	if mem.Len() == 0 {
		t.Fatal("expected warm cache before reset")
	}

	if err := svc.Reset(context.Background()); err != nil {
		t.Fatalf("reset: %v", err)
	}
	if mem.Len() != 0 {
		t.Errorf("cache not empty after reset: %d entries", mem.Len())
	}
}
