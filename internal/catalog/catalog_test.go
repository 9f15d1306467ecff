package catalog

import (
	"math"
	"sort"
	"testing"
)

func TestGetKnownAndUnknown(t *testing.T) {
	ex, ok := Get("bench_press")
	if !ok {
		t.Fatal("bench_press missing from catalog")
	}
	if ex.Name != "Bench Press" || ex.Focus != FocusStrength || !ex.OneRepMax {
		t.Fatalf("unexpected exercise: %+v", ex)
	}

	if _, ok := Get("underwater_basket_weaving"); ok {
		t.Fatal("expected lookup miss")
	}
}

func TestWeightsRoughlySumToOne(t *testing.T) {
	for _, ex := range All() {
		total := ex.Weights.Total()
		if math.Abs(total-1.0) > 0.05 {
			t.Errorf("%s: weight vector sums to %.3f", ex.ID, total)
		}
	}
}

func TestEveryExerciseHasPlacement(t *testing.T) {
	for _, ex := range All() {
		p := ex.Placement
		if ex.OneRepMax {
			if len(p.Anchors) < 2 {
				t.Errorf("%s: 1RM lift needs at least 2 anchors", ex.ID)
			}
			if !sort.SliceIsSorted(p.Anchors, func(i, j int) bool {
				return p.Anchors[i].Ratio < p.Anchors[j].Ratio
			}) {
				t.Errorf("%s: anchors not ascending", ex.ID)
			}
			continue
		}
		if p.Scale <= 0 || p.Alpha <= 0 {
			t.Errorf("%s: missing saturating-exponential constants", ex.ID)
		}
	}
}

func TestFirstGrantsArePositive(t *testing.T) {
	for _, ex := range All() {
		if ex.FirstGrant.Total() <= 0 {
			t.Errorf("%s: empty first-time grant", ex.ID)
		}
		for i, v := range ex.FirstGrant.Components() {
			if v < 0 {
				t.Errorf("%s: negative first-grant component %s", ex.ID, StatNames[i])
			}
		}
	}
}

func TestByFocusCoversAllGroups(t *testing.T) {
	for _, f := range FocusGroups {
		if len(ByFocus(f)) == 0 {
			t.Errorf("no exercises for focus group %s", f)
		}
	}
}

func TestStatBlockMath(t *testing.T) {
	a := StatBlock{Size: 1, Strength: 2, Dexterity: 3, Agility: 4, Endurance: 5, Vitality: 6}
	b := a.Add(a.Scale(0.5))
	if got := b.Total(); math.Abs(got-31.5) > 1e-9 {
		t.Fatalf("expected total 31.5, got %v", got)
	}
	if rt := FromComponents(a.Components()); rt != a {
		t.Fatalf("components round-trip mismatch: %+v", rt)
	}
}
