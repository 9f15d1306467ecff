package engine

import (
	"math"

	"github.com/devon4899/FRPG/internal/catalog"
)

// placementValue derives the scalar fed into the placement curve. For most
// families this is the performance scalar itself. Paced endurance is graded
// speed-first: distance adds a small diminishing-returns boost whose
// contribution is capped, so a strong 5k and a strong 10k land close together.
func placementValue(ex catalog.Exercise, in WorkoutInput, perf float64) float64 {
	if ex.Family != catalog.FamilyPacedEndurance {
		return perf
	}
	minutes := fval(in.DurationMin)
	distance := fval(in.DistanceKm)
	if minutes <= 0 || distance <= 0 {
		return 0
	}
	speed := distance / (minutes / 60)
	boost := math.Min(0.25, 0.08*math.Sqrt(distance))
	return speed * (1 + boost)
}

// placementLevel maps a curve value to an absolute 0..100 skill level.
// 1RM lifts interpolate along their bodyweight-ratio anchor curve; everything
// else runs through a saturating exponential with per-category constants.
// Independent of the XP ladder; feeds the rank-tier display only.
func placementLevel(ex catalog.Exercise, value, bodyweight float64) float64 {
	if value <= 0 {
		return 0
	}
	if bodyweight <= 0 {
		bodyweight = DefaultBodyweightKg
	}

	var level float64
	if len(ex.Placement.Anchors) > 0 {
		level = interpolateAnchors(ex.Placement.Anchors, value/bodyweight)
	} else {
		level = saturating(value, ex.Placement.Scale, ex.Placement.Alpha)
	}
	return math.Max(0, math.Min(100, level))
}

// interpolateAnchors linearly interpolates level between ascending
// (ratio, level) anchors, clamping outside the range to the endpoint levels.
func interpolateAnchors(anchors []catalog.Anchor, ratio float64) float64 {
	if ratio <= anchors[0].Ratio {
		return anchors[0].Level
	}
	last := anchors[len(anchors)-1]
	if ratio >= last.Ratio {
		return last.Level
	}
	for i := 1; i < len(anchors); i++ {
		lo, hi := anchors[i-1], anchors[i]
		if ratio <= hi.Ratio {
			t := (ratio - lo.Ratio) / (hi.Ratio - lo.Ratio)
			return lo.Level + t*(hi.Level-lo.Level)
		}
	}
	return last.Level
}

// saturating evaluates round(100 * (1 - e^-(v/scale)^alpha)).
func saturating(v, scale, alpha float64) float64 {
	if v <= 0 || scale <= 0 {
		return 0
	}
	return math.Round(100 * (1 - math.Exp(-math.Pow(v/scale, alpha))))
}

// rankTier maps a placement level to the 1..10 display tier.
func rankTier(level float64) int {
	tier := 1 + int(level)/10
	if tier > 10 {
		tier = 10
	}
	if tier < 1 {
		tier = 1
	}
	return tier
}

// bumpRank raises the profile's rank for the exercise's focus group if this
// workout placed higher. Ranks never move down outside a replay.
func (p *Profile) bumpRank(ex catalog.Exercise, in WorkoutInput, perf float64) {
	value := placementValue(ex, in, perf)
	tier := rankTier(placementLevel(ex, value, p.Bodyweight()))
	if tier > p.Ranks[ex.Focus] {
		p.Ranks[ex.Focus] = tier
	}
}
