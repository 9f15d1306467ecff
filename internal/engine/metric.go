package engine

import (
	"fmt"
	"math"

	"github.com/devon4899/FRPG/internal/catalog"
)

// clampInput normalizes raw inputs in place: negatives and NaNs go to zero,
// values above the documented bounds are clamped. Returns one human-readable
// notice per adjusted field; callers surface them as non-fatal status text.
func clampInput(in *WorkoutInput) []string {
	var notices []string

	clampF := func(v *float64, limit float64, name string) {
		if v == nil {
			return
		}
		orig := *v
		if math.IsNaN(*v) || *v < 0 {
			*v = 0
		} else if *v > limit {
			*v = limit
		}
		if *v != orig {
			notices = append(notices, fmt.Sprintf("%s adjusted from %g to %g", name, orig, *v))
		}
	}

	if in.Reps != nil {
		orig := *in.Reps
		if *in.Reps < 0 {
			*in.Reps = 0
		} else if *in.Reps > MaxReps {
			*in.Reps = MaxReps
		}
		if *in.Reps != orig {
			notices = append(notices, fmt.Sprintf("reps adjusted from %d to %d", orig, *in.Reps))
		}
	}
	clampF(in.WeightKg, MaxWeightKg, "weight")
	clampF(in.DurationMin, MaxDurationMin, "duration")
	clampF(in.DistanceKm, MaxDistanceKm, "distance")
	return notices
}

func fval(p *float64) float64 {
	if p == nil || *p < 0 {
		return 0
	}
	return *p
}

func ival(p *int) int {
	if p == nil || *p < 0 {
		return 0
	}
	return *p
}

// estimate1RM applies the Brzycki estimate. Valid for 1..15 reps; anything
// else returns 0.
func estimate1RM(weight float64, reps int) float64 {
	if weight <= 0 || reps < 1 || reps > 15 {
		return 0
	}
	if reps == 1 {
		return weight
	}
	return weight / (1.0278 - 0.0278*float64(reps))
}

// performance converts raw inputs into the category's single performance
// scalar. Always >= 0. For 1RM-eligible lifts the scalar is the estimated
// one-rep max itself.
func performance(ex catalog.Exercise, in WorkoutInput, bodyweight float64) float64 {
	if bodyweight <= 0 {
		bodyweight = DefaultBodyweightKg
	}
	reps := ival(in.Reps)
	weight := fval(in.WeightKg)
	minutes := fval(in.DurationMin)
	distance := fval(in.DistanceKm)

	switch ex.Family {
	case catalog.FamilyOneRepMax:
		return estimate1RM(weight, reps)

	case catalog.FamilyTonnage:
		return weight * float64(reps)

	case catalog.FamilyBodyweightReps:
		// Effective load is bodyweight plus any added weight; the sublinear
		// exponent keeps weighted reps from dwarfing strict reps.
		load := bodyweight + weight
		return float64(reps) * math.Pow(load/bodyweight, 0.65)

	case catalog.FamilyTimedHold:
		if minutes <= 0 {
			return 0
		}
		return minutes * math.Pow((bodyweight+weight)/bodyweight, 0.30)

	case catalog.FamilyExplosiveReps:
		ratio := 1.0
		if weight > 0 {
			ratio = math.Pow(weight/bodyweight, 0.65)
		}
		return float64(reps) * ratio

	case catalog.FamilySprint:
		if distance > 0 && minutes > 0 {
			speed := distance / (minutes / 60)
			return speed * math.Pow(distance, 0.25)
		}
		if minutes > 0 {
			return 60 / minutes
		}
		return 0

	case catalog.FamilyPacedEndurance:
		if distance <= 0 || minutes <= 0 {
			return 0
		}
		speed := distance / (minutes / 60)
		return speed * math.Sqrt(distance)

	case catalog.FamilyConditioning:
		if minutes <= 0 {
			return 0
		}
		return minutes * math.Sqrt((bodyweight+weight)/bodyweight)

	case catalog.FamilyMobility:
		return minutes
	}
	return 0
}
