package engine

import (
	"math"
	"testing"
	"time"

	"github.com/devon4899/FRPG/internal/catalog"
)

func questEngine(t *testing.T) (*Engine, *testClock) {
	t.Helper()
	e := newTestEngine(t, 11)
	c := newTestClock()
	c.attach(e)
	return e, c
}

func countChallenges(p *Profile, period ChallengePeriod, kind ChallengeKind) int {
	n := 0
	for _, c := range p.Challenges {
		if c.Period == period && c.Kind == kind {
			n++
		}
	}
	return n
}

func findChallenge(p *Profile, f catalog.FocusGroup, period ChallengePeriod, kind ChallengeKind) *Challenge {
	for i := range p.Challenges {
		c := &p.Challenges[i]
		if c.Focus == f && c.Period == period && c.Kind == kind {
			return c
		}
	}
	return nil
}

// ============================================================
// Generation
// ============================================================

func TestRefreshGeneratesClassSlate(t *testing.T) {
	e, c := questEngine(t)
	p := e.profile // warrior by default: strength + hypertrophy

	e.RefreshChallenges(c.now())

	if len(p.Challenges) != 6 {
		t.Fatalf("got %d challenges, want 6 (4 daily + 2 weekly)", len(p.Challenges))
	}
	if n := countChallenges(p, PeriodDaily, KindAmount); n != 2 {
		t.Fatalf("%d daily amount challenges, want 2", n)
	}
	if n := countChallenges(p, PeriodDaily, KindVariety); n != 2 {
		t.Fatalf("%d daily variety challenges, want 2", n)
	}
	if n := countChallenges(p, PeriodWeekly, KindAmount); n != 2 {
		t.Fatalf("%d weekly amount challenges, want 2", n)
	}

	daily := findChallenge(p, catalog.FocusStrength, PeriodDaily, KindAmount)
	if daily == nil || daily.Unit != UnitReps || daily.Target != 100 {
		t.Fatalf("daily strength amount = %+v, want 100 reps", daily)
	}
	if daily.ExpReward != dailyChallengeXP {
		t.Fatalf("daily reward %v, want %v", daily.ExpReward, dailyChallengeXP)
	}

	weekly := findChallenge(p, catalog.FocusStrength, PeriodWeekly, KindAmount)
	if weekly == nil || weekly.Target != 500 || weekly.ExpReward != weeklyChallengeXP {
		t.Fatalf("weekly strength amount = %+v", weekly)
	}

	variety := findChallenge(p, catalog.FocusHypertrophy, PeriodDaily, KindVariety)
	if variety == nil || variety.Unit != UnitExercises || variety.Target != 3 {
		t.Fatalf("daily variety = %+v, want 3 distinct exercises", variety)
	}
}

func TestRefreshRunsOncePerDay(t *testing.T) {
	e, c := questEngine(t)
	p := e.profile

	e.RefreshChallenges(c.now())
	first := make([]string, 0, len(p.Challenges))
	for _, ch := range p.Challenges {
		first = append(first, ch.ID)
	}

	c.advance(4 * time.Hour)
	e.RefreshChallenges(c.now())
	if len(p.Challenges) != len(first) {
		t.Fatalf("same-day refresh changed the slate: %d vs %d", len(p.Challenges), len(first))
	}
	for i, ch := range p.Challenges {
		if ch.ID != first[i] {
			t.Fatal("same-day refresh replaced a challenge")
		}
	}
}

func TestDailiesRotateNextDay(t *testing.T) {
	e, c := questEngine(t)
	p := e.profile

	e.RefreshChallenges(c.now())
	old := findChallenge(p, catalog.FocusStrength, PeriodDaily, KindAmount).ID

	c.advance(24 * time.Hour)
	e.RefreshChallenges(c.now())

	if len(p.Challenges) != 6 {
		t.Fatalf("got %d challenges after rotation, want 6", len(p.Challenges))
	}
	fresh := findChallenge(p, catalog.FocusStrength, PeriodDaily, KindAmount)
	if fresh.ID == old {
		t.Fatal("expired daily was not replaced")
	}
	// Still inside the same ISO week: weeklies survive.
	if n := countChallenges(p, PeriodWeekly, KindAmount); n != 2 {
		t.Fatalf("%d weeklies after daily rotation, want 2", n)
	}
}

func TestWeekliesRotateNextWeek(t *testing.T) {
	e, c := questEngine(t)
	p := e.profile

	e.RefreshChallenges(c.now())
	old := findChallenge(p, catalog.FocusStrength, PeriodWeekly, KindAmount).ID

	c.advance(7 * 24 * time.Hour)
	e.RefreshChallenges(c.now())

	fresh := findChallenge(p, catalog.FocusStrength, PeriodWeekly, KindAmount)
	if fresh == nil || fresh.ID == old {
		t.Fatal("expired weekly was not replaced")
	}
}

func TestCompletedChallengeSurvivesUntilExpiry(t *testing.T) {
	e, c := questEngine(t)
	p := e.profile

	e.RefreshChallenges(c.now())
	daily := findChallenge(p, catalog.FocusStrength, PeriodDaily, KindAmount)
	now := c.now()
	daily.Progress = daily.Target
	daily.CompletedAt = &now

	c.advance(2 * time.Hour)
	e.RefreshChallenges(c.now())

	got := findChallenge(p, catalog.FocusStrength, PeriodDaily, KindAmount)
	if got == nil || !got.Completed() || got.ID != daily.ID {
		t.Fatal("completed daily did not survive a same-day refresh")
	}
	if len(p.Challenges) != 6 {
		t.Fatalf("completed slot was double-filled: %d challenges", len(p.Challenges))
	}
}

// ============================================================
// Progress and rewards
// ============================================================

func TestAmountChallengeCompletesAndPaysOnce(t *testing.T) {
	e, _ := questEngine(t)
	p := e.profile

	entry, _, err := e.RecordWorkout(WorkoutInput{Category: "bench_press", Reps: iptr(100)})
	if err != nil {
		t.Fatal(err)
	}

	daily := findChallenge(p, catalog.FocusStrength, PeriodDaily, KindAmount)
	if daily == nil || !daily.Completed() {
		t.Fatalf("100 reps did not complete the 100-rep daily: %+v", daily)
	}
	if math.Abs(p.TotalXP-(entry.ExpGained+dailyChallengeXP)) > 1e-9 {
		t.Fatalf("total XP %v, want workout %v + challenge %v", p.TotalXP, entry.ExpGained, dailyChallengeXP)
	}

	// Weekly amount advanced but is far from done.
	weekly := findChallenge(p, catalog.FocusStrength, PeriodWeekly, KindAmount)
	if weekly.Progress != 100 || weekly.Completed() {
		t.Fatalf("weekly progress %v, want 100 of 500", weekly.Progress)
	}

	// A second session the same day must not re-grant the completed daily.
	before := p.TotalXP
	entry2, _, err := e.RecordWorkout(WorkoutInput{Category: "bench_press", Reps: iptr(50)})
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(p.TotalXP-(before+entry2.ExpGained)) > 1e-9 {
		t.Fatal("completed challenge paid out twice")
	}
}

func TestVarietyChallengeCountsDistinctExercises(t *testing.T) {
	e, _ := questEngine(t)
	p := e.profile

	for _, cat := range []string{"bench_press", "bench_press", "squat"} {
		if _, _, err := e.RecordWorkout(WorkoutInput{Category: cat, Reps: iptr(5), WeightKg: fptr(60)}); err != nil {
			t.Fatal(err)
		}
	}

	variety := findChallenge(p, catalog.FocusStrength, PeriodDaily, KindVariety)
	if variety.Progress != 2 {
		t.Fatalf("variety progress %v after a repeat, want 2", variety.Progress)
	}

	if _, _, err := e.RecordWorkout(WorkoutInput{Category: "deadlift", Reps: iptr(5), WeightKg: fptr(100)}); err != nil {
		t.Fatal(err)
	}
	if !variety.Completed() {
		t.Fatal("third distinct strength exercise did not complete the variety daily")
	}
}

func TestProgressIgnoresOtherFocuses(t *testing.T) {
	e, _ := questEngine(t)
	p := e.profile

	// push_up is bodyweight; a warrior slate never matches it.
	if _, _, err := e.RecordWorkout(WorkoutInput{Category: "push_up", Reps: iptr(50)}); err != nil {
		t.Fatal(err)
	}
	for _, c := range p.Challenges {
		if c.Progress != 0 {
			t.Fatalf("off-focus workout advanced %s/%s: %v", c.Focus, c.Kind, c.Progress)
		}
	}
}

func TestChallengeAmountUnits(t *testing.T) {
	in := WorkoutInput{
		Reps:        iptr(42),
		DurationMin: fptr(25.3),
		DistanceKm:  fptr(7.1),
	}
	cases := map[ChallengeUnit]float64{
		UnitReps:      42,
		UnitSets:      1,
		UnitTime:      26, // minutes round up
		UnitDistance:  8,  // km round up
		UnitFrequency: 1,
	}
	for unit, want := range cases {
		if got := challengeAmount(unit, in); got != want {
			t.Errorf("%s: %v, want %v", unit, got, want)
		}
	}
}

func TestSetChallengePreference(t *testing.T) {
	e, c := questEngine(t)
	p := e.profile

	e.SetChallengePreference(catalog.FocusStrength, UnitTime)
	e.RefreshChallenges(c.now())

	daily := findChallenge(p, catalog.FocusStrength, PeriodDaily, KindAmount)
	if daily.Unit != UnitTime || daily.Target != 30 {
		t.Fatalf("daily after preference = %+v, want 30 minutes", daily)
	}
	// Hypertrophy keeps its default.
	other := findChallenge(p, catalog.FocusHypertrophy, PeriodDaily, KindAmount)
	if other.Unit != UnitReps {
		t.Fatalf("unrelated focus changed unit: %+v", other)
	}

	// The variety pseudo-unit is not a valid preference.
	e.SetChallengePreference(catalog.FocusStrength, UnitExercises)
	if p.ChallengePrefs[catalog.FocusStrength] != UnitTime {
		t.Fatal("invalid preference overwrote a valid one")
	}
}
