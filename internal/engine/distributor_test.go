package engine

import (
	"math"
	"testing"

	"github.com/devon4899/FRPG/internal/catalog"
)

func TestDistributeFirstTimeGrant(t *testing.T) {
	for _, ex := range catalog.All() {
		in := WorkoutInput{Category: ex.ID, Reps: iptr(10)}
		got := distributeStats(ex, in, DefaultBodyweightKg, 15, 0, true)
		if got != ex.FirstGrant {
			t.Errorf("%s: first-time gains %+v, want fixed grant %+v", ex.ID, got, ex.FirstGrant)
		}
	}
}

func TestDistributeBudgetFromXP(t *testing.T) {
	bench := mustGet(t, "bench_press")
	in := WorkoutInput{Category: "bench_press", Reps: iptr(5), WeightKg: fptr(80)}

	got := distributeStats(bench, in, 80, 100, 0, false)
	// 100 XP * 0.007 clears the floor; the whole budget is spent.
	want := 100 * statsPerXP * displayScale
	if math.Abs(got.Total()-want) > 1e-9 {
		t.Fatalf("total gains %v, want %v", got.Total(), want)
	}
	for i, v := range got.Components() {
		if v < 0 {
			t.Fatalf("negative gain in %s: %v", catalog.StatNames[i], v)
		}
	}
}

func TestDistributeBudgetFloor(t *testing.T) {
	bench := mustGet(t, "bench_press")
	in := WorkoutInput{Category: "bench_press", Reps: iptr(5), WeightKg: fptr(80)}

	got := distributeStats(bench, in, 80, 0, 0, false)
	score := 80.0 * 5 // tonnage intensity
	floor := minBudgetFactor * math.Log10(score+10) * focusStatMultiplier(bench.Focus)
	if math.Abs(got.Total()-floor*displayScale) > 1e-9 {
		t.Fatalf("zero-XP total %v, want floor %v", got.Total(), floor*displayScale)
	}
}

func TestDistributeEmphasisSkewsTowardPrimary(t *testing.T) {
	bench := mustGet(t, "bench_press")
	in := WorkoutInput{Category: "bench_press", Reps: iptr(5), WeightKg: fptr(80)}

	flat := distributeStats(bench, in, 80, 100, 0, false)
	skewed := distributeStats(bench, in, 80, 100, 2, false)

	maxFrac := func(b catalog.StatBlock) float64 {
		var best float64
		for _, v := range b.Components() {
			best = math.Max(best, v)
		}
		return best / b.Total()
	}
	if maxFrac(skewed) <= maxFrac(flat) {
		t.Fatalf("PR emphasis did not skew gains: flat %v, skewed %v", maxFrac(flat), maxFrac(skewed))
	}
	// Budget is the same either way.
	if math.Abs(flat.Total()-skewed.Total()) > 1e-9 {
		t.Fatalf("emphasis changed the budget: %v vs %v", flat.Total(), skewed.Total())
	}
}

func TestDistributeEmphasisIsCapped(t *testing.T) {
	bench := mustGet(t, "bench_press")
	in := WorkoutInput{Category: "bench_press", Reps: iptr(5), WeightKg: fptr(80)}

	// Both boosts exceed the exponent cap, so the vectors are identical.
	a := distributeStats(bench, in, 80, 100, 4, false)
	b := distributeStats(bench, in, 80, 100, 40, false)
	if a != b {
		t.Fatalf("capped emphasis differs: %+v vs %+v", a, b)
	}
}

func TestFocusStatMultiplier(t *testing.T) {
	cases := map[catalog.FocusGroup]float64{
		catalog.FocusEndurance:  1.25,
		catalog.FocusBodyweight: 1.15,
		catalog.FocusExplosive:  1.10,
		catalog.FocusStrength:   1.0,
		catalog.FocusMobility:   1.0,
	}
	for f, want := range cases {
		if got := focusStatMultiplier(f); got != want {
			t.Errorf("%s: %v, want %v", f, got, want)
		}
	}
}

func TestIntensityScore(t *testing.T) {
	cases := []struct {
		category string
		in       WorkoutInput
		want     float64
	}{
		{"bench_press", WorkoutInput{Reps: iptr(5), WeightKg: fptr(80)}, 400},
		{"barbell_row", WorkoutInput{Reps: iptr(10), WeightKg: fptr(60)}, 600},
		{"push_up", WorkoutInput{Reps: iptr(20)}, 30},
		{"kettlebell_swing", WorkoutInput{Reps: iptr(30)}, 36},
		{"plank", WorkoutInput{DurationMin: fptr(3)}, 6},
		{"yoga", WorkoutInput{DurationMin: fptr(45)}, 90},
		{"running", WorkoutInput{DurationMin: fptr(30), DistanceKm: fptr(5)}, 50}, // 10 km/h * 5 km
		{"running", WorkoutInput{DistanceKm: fptr(5)}, 0},                         // no time, no speed
	}
	for _, c := range cases {
		ex := mustGet(t, c.category)
		if got := intensityScore(ex, c.in, DefaultBodyweightKg); math.Abs(got-c.want) > 1e-9 {
			t.Errorf("%s %+v: score %v, want %v", c.category, c.in, got, c.want)
		}
	}
}

func TestPRBoost(t *testing.T) {
	if got := prBoost(0, 0, 0); got != 0 {
		t.Fatalf("no signal boost %v, want 0", got)
	}
	if got := prBoost(110, 100, 0); math.Abs(got-math.Log2(1.1)) > 1e-9 {
		t.Fatalf("PR boost %v, want log2(1.1)", got)
	}
	if got := prBoost(110, 100, 1.5); math.Abs(got-math.Log2(1.5)) > 1e-9 {
		t.Fatalf("boost %v, want the larger baseline signal log2(1.5)", got)
	}
	// Regressions never produce a negative boost.
	if got := prBoost(90, 100, 0.8); got != 0 {
		t.Fatalf("regression boost %v, want 0", got)
	}
}
