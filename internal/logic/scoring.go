package logic

import (
	"sort"

	"github.com/fightpicks/picks-api/internal/models"
)

// Scoring constants. Points are attributed once, when a fight result is
// posted, and stored on the prediction record itself; the aggregator only
// sums what was stored so re-running it after an odds revision cannot
// double-credit anyone.
const (
	basePoints = 10
)

// PointsFor returns the points a correct pick of the given fighter earns:
// the base award plus floor(odds/100) when the picked fighter was the
// underdog (positive American odds).
func PointsFor(fight *models.Fight, fighterID string) int {
	pts := basePoints
	if odds, ok := fight.OddsFor(fighterID); ok && odds > 0 {
		pts += odds / 100
	}
	return pts
}

// ComputeStats aggregates one user's full prediction history into UserStats.
// It is pure and idempotent: the same input always yields the same output.
//
// Predictions referencing a fight missing from the lookup table still count
// toward totals and accuracy; they are only excluded from odds-dependent
// steps. That is degraded-data policy, not a failure.
func ComputeStats(userID string, predictions []models.Prediction, fights map[string]models.Fight) models.UserStats {
	stats := models.UserStats{
		UserID:         userID,
		MethodAccuracy: make(map[models.Method]float64, len(models.AllMethods)),
		RoundAccuracy:  make(map[int]float64),
	}

	stats.TotalPredictions = len(predictions)
	for i := range predictions {
		if isCorrect(&predictions[i]) {
			stats.CorrectPredictions++
		}
	}
	if stats.TotalPredictions > 0 {
		stats.Accuracy = float64(stats.CorrectPredictions) / float64(stats.TotalPredictions)
	}

	byTimeAsc := make([]models.Prediction, len(predictions))
	copy(byTimeAsc, predictions)
	sort.Slice(byTimeAsc, func(i, j int) bool {
		if byTimeAsc[i].PredictedAt.Equal(byTimeAsc[j].PredictedAt) {
			return byTimeAsc[i].ID < byTimeAsc[j].ID
		}
		return byTimeAsc[i].PredictedAt.Before(byTimeAsc[j].PredictedAt)
	})

	stats.CurrentStreak = currentStreak(byTimeAsc)
	stats.BestStreak = bestStreak(byTimeAsc)
	if stats.CurrentStreak > stats.BestStreak {
		// Cannot happen with the scans above; kept as a hard invariant.
		stats.BestStreak = stats.CurrentStreak
	}

	stats.Points = sumPoints(predictions, fights)
	fillMethodAccuracy(stats.MethodAccuracy, predictions)
	fillRoundAccuracy(stats.RoundAccuracy, predictions)

	return stats
}

// currentStreak walks from the most recent prediction backward, counting
// consecutive correct picks. The first incorrect or still-unresolved entry
// stops the scan without counting.
func currentStreak(byTimeAsc []models.Prediction) int {
	streak := 0
	for i := len(byTimeAsc) - 1; i >= 0; i-- {
		p := &byTimeAsc[i]
		if !p.Resolved() || !*p.IsCorrect {
			break
		}
		streak++
	}
	return streak
}

// bestStreak is the historical maximum run of correct picks: a single
// oldest-first scan with a running counter reset on each incorrect result.
// Unresolved predictions are skipped; they are neither correct nor a run
// breaker in resolved history.
func bestStreak(byTimeAsc []models.Prediction) int {
	best, run := 0, 0
	for i := range byTimeAsc {
		p := &byTimeAsc[i]
		if !p.Resolved() {
			continue
		}
		if *p.IsCorrect {
			run++
			if run > best {
				best = run
			}
		} else {
			run = 0
		}
	}
	return best
}

// sumPoints sums the per-prediction points stored at resolution time.
// Resolved rows written before points were persisted fall back to the odds
// line; a prediction whose fight is missing from the lookup table is
// excluded from that odds-dependent fallback and contributes nothing.
func sumPoints(predictions []models.Prediction, fights map[string]models.Fight) int {
	total := 0
	for i := range predictions {
		p := &predictions[i]
		if !isCorrect(p) {
			continue
		}
		if p.Points != nil {
			total += *p.Points
			continue
		}
		if fight, ok := fights[p.FightID]; ok {
			total += PointsFor(&fight, p.SelectedFighterID)
		}
	}
	return total
}

// fillMethodAccuracy is dense: every method key is present even when the
// user never picked it.
func fillMethodAccuracy(out map[models.Method]float64, predictions []models.Prediction) {
	totals := make(map[models.Method]int)
	correct := make(map[models.Method]int)
	for i := range predictions {
		p := &predictions[i]
		totals[p.Method]++
		if isCorrect(p) {
			correct[p.Method]++
		}
	}
	for _, m := range models.AllMethods {
		if totals[m] > 0 {
			out[m] = float64(correct[m]) / float64(totals[m])
		} else {
			out[m] = 0
		}
	}
}

// fillRoundAccuracy is sparse: only rounds that were actually predicted
// appear in the map.
func fillRoundAccuracy(out map[int]float64, predictions []models.Prediction) {
	totals := make(map[int]int)
	correct := make(map[int]int)
	for i := range predictions {
		p := &predictions[i]
		if p.Round < 1 {
			continue
		}
		totals[p.Round]++
		if isCorrect(p) {
			correct[p.Round]++
		}
	}
	for round, total := range totals {
		out[round] = float64(correct[round]) / float64(total)
	}
}

func isCorrect(p *models.Prediction) bool {
	return p.IsCorrect != nil && *p.IsCorrect
}
