package engine

import (
	"math"

	"github.com/devon4899/FRPG/internal/catalog"
)

// Stat distribution tuning. The session budget is proportional to XP earned,
// floored by a log-scaled minimum so even a low-XP day shows visible gains.
const (
	statsPerXP      = 0.007
	minBudgetFactor = 0.18
	displayScale    = 10.0 // non-first gains are scaled up for display feel
	maxEmphasis     = 3.0
)

// focusStatMultiplier scales the minimum session budget per focus group.
// Tuned for visible-gain feel, not skill estimation.
func focusStatMultiplier(f catalog.FocusGroup) float64 {
	switch f {
	case catalog.FocusEndurance:
		return 1.25
	case catalog.FocusBodyweight:
		return 1.15
	case catalog.FocusExplosive:
		return 1.10
	default:
		return 1.0
	}
}

// intensityScore mirrors the performance families but with constants tuned
// for the budget floor rather than skill placement.
func intensityScore(ex catalog.Exercise, in WorkoutInput, bodyweight float64) float64 {
	if bodyweight <= 0 {
		bodyweight = DefaultBodyweightKg
	}
	reps := float64(ival(in.Reps))
	weight := fval(in.WeightKg)
	minutes := fval(in.DurationMin)
	distance := fval(in.DistanceKm)

	switch ex.Family {
	case catalog.FamilyOneRepMax, catalog.FamilyTonnage:
		return weight * reps
	case catalog.FamilyBodyweightReps:
		return reps * 1.5
	case catalog.FamilyExplosiveReps:
		return reps * 1.2
	case catalog.FamilyTimedHold, catalog.FamilyConditioning, catalog.FamilyMobility:
		return minutes * 2.0
	case catalog.FamilySprint, catalog.FamilyPacedEndurance:
		if minutes <= 0 {
			return 0
		}
		speed := distance / (minutes / 60)
		return speed * distance
	}
	return 0
}

// prBoost measures how decisively this session broke records: the larger of
// the log2 1RM-PR ratio and the log2 baseline ratio, floored at zero.
func prBoost(est1RM, prevBest, baselineRatio float64) float64 {
	boost := 0.0
	if prevBest > 0 && est1RM > 0 {
		boost = math.Log2(est1RM / prevBest)
	}
	if baselineRatio > 0 {
		boost = math.Max(boost, math.Log2(baselineRatio))
	}
	return math.Max(0, boost)
}

// distributeStats converts the session's XP into a six-dimension gain vector.
// First-ever logs of a category get the fixed first-time grant instead; the
// caller marks the grant applied.
func distributeStats(ex catalog.Exercise, in WorkoutInput, bodyweight, expGained, boost float64, firstTime bool) catalog.StatBlock {
	if firstTime {
		return ex.FirstGrant
	}

	score := intensityScore(ex, in, bodyweight)
	budget := expGained * statsPerXP
	floor := minBudgetFactor * math.Log10(score+10) * focusStatMultiplier(ex.Focus)
	if budget < floor {
		budget = floor
	}

	// Emphasis exponent skews gains toward the category's primary attributes
	// when a PR was broken.
	p := math.Min(maxEmphasis, 1+0.5*boost)
	w := ex.Weights.Components()
	var sum float64
	for i, v := range w {
		w[i] = math.Pow(math.Max(0, v), p)
		sum += w[i]
	}
	if sum <= 0 {
		return catalog.StatBlock{}
	}
	for i := range w {
		w[i] = w[i] / sum * budget
	}
	return catalog.FromComponents(w).Scale(displayScale)
}
