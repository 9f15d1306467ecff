package engine

import (
	"math"
	"testing"
	"time"
)

// ============================================================
// Thresholds
// ============================================================

func TestXPNeededPrestigeCycle(t *testing.T) {
	// The curve shape resets every 10 levels.
	for _, level := range []int{1, 11, 21, 91} {
		if got := xpNeeded(level); math.Abs(got-50) > 1e-9 {
			t.Fatalf("level %d: xpNeeded %v, want 50", level, got)
		}
	}
	if xpNeeded(10) != xpNeeded(20) {
		t.Fatal("display level 10 should repeat each cycle")
	}
	// Strictly ascending within a cycle.
	for l := 1; l < 10; l++ {
		if xpNeeded(l) >= xpNeeded(l+1) {
			t.Fatalf("xpNeeded not ascending at %d", l)
		}
	}
}

func TestDisplayLevelAndStars(t *testing.T) {
	cases := []struct {
		level, display, stars int
	}{
		{1, 1, 0}, {10, 10, 0}, {11, 1, 1}, {20, 10, 1}, {21, 1, 2}, {100, 10, 9},
	}
	for _, c := range cases {
		if got := displayLevel(c.level); got != c.display {
			t.Errorf("displayLevel(%d) = %d, want %d", c.level, got, c.display)
		}
		if got := prestigeStars(c.level); got != c.stars {
			t.Errorf("prestigeStars(%d) = %d, want %d", c.level, got, c.stars)
		}
	}
}

func TestCumulativeXPConsistency(t *testing.T) {
	// cumulativeXP(l) == cumulativeXP(l-1) + xpNeeded(l-1) for all l > 1.
	for l := 2; l <= MaxLevel; l++ {
		want := cumulativeXP(l-1) + xpNeeded(l-1)
		if got := cumulativeXP(l); math.Abs(got-want) > 1e-6 {
			t.Fatalf("level %d: cumulative %v, want %v", l, got, want)
		}
	}
}

// ============================================================
// addXP
// ============================================================

func TestAddXPNormalization(t *testing.T) {
	p := NewProfile()

	// Whatever the delta, xp must land strictly below the threshold except at
	// the cap.
	deltas := []float64{0, 3, 49.9, 50, 1000, 12345}
	for _, d := range deltas {
		p.addXP(d, nil)
		if p.Level < MaxLevel && p.XP >= p.NextLevelXP {
			t.Fatalf("after +%v: xp %v >= next %v at level %d", d, p.XP, p.NextLevelXP, p.Level)
		}
		if p.XP < 0 {
			t.Fatalf("negative xp %v", p.XP)
		}
	}
}

func TestAddXPCrossesMultipleLevels(t *testing.T) {
	p := NewProfile()
	levels := p.addXP(xpNeeded(1)+xpNeeded(2)+xpNeeded(3)+1, nil)
	if levels != 3 || p.Level != 4 {
		t.Fatalf("expected 3 level-ups to level 4, got %d to %d", levels, p.Level)
	}
	if math.Abs(p.XP-1) > 1e-9 {
		t.Fatalf("expected 1 leftover xp, got %v", p.XP)
	}
}

func TestAddXPCallbackPerLevel(t *testing.T) {
	p := NewProfile()
	var seen []int
	p.addXP(xpNeeded(1)+xpNeeded(2), func(newLevel int) {
		seen = append(seen, newLevel)
	})
	if len(seen) != 2 || seen[0] != 2 || seen[1] != 3 {
		t.Fatalf("unexpected callback levels: %v", seen)
	}
}

func TestAddXPLevelCap(t *testing.T) {
	p := NewProfile()
	p.Level = 99
	p.XP = 0
	p.NextLevelXP = xpNeeded(99)

	p.addXP(xpNeeded(99) + 500, nil)
	if p.Level != MaxLevel {
		t.Fatalf("expected level cap, got %d", p.Level)
	}
	if p.XP != 1 || p.NextLevelXP != 1 {
		t.Fatalf("cap should pin xp and threshold to 1, got %v/%v", p.XP, p.NextLevelXP)
	}

	// Further XP is ignored by the ladder but still counted as progress.
	before := p.TotalXP
	p.addXP(100, nil)
	if p.Level != MaxLevel || p.XP != 1 || p.NextLevelXP != 1 {
		t.Fatal("cap state must not change")
	}
	if p.TotalXP != before+100 {
		t.Fatal("total progress XP should keep accumulating at the cap")
	}
}

func TestNegativeDeltaIgnored(t *testing.T) {
	p := NewProfile()
	p.addXP(-50, nil)
	if p.XP != 0 || p.Level != 1 || p.TotalXP != 0 {
		t.Fatalf("negative delta mutated profile: %+v", p)
	}
}

// ============================================================
// Prestige rollover scenario
// ============================================================

func TestPrestigeRolloverIssuesOneChest(t *testing.T) {
	e := newTestEngine(t, 42)
	p := e.profile
	p.Level = 10
	p.NextLevelXP = xpNeeded(10)
	p.XP = p.NextLevelXP - 1

	chests := 0
	p.addXP(5, func(newLevel int) {
		chests++
		p.Chests = append(p.Chests, e.rollChest(newLevel, time.Now()))
	})

	if p.Level != 11 {
		t.Fatalf("expected level 11, got %d", p.Level)
	}
	if chests != 1 || len(p.Chests) != 1 {
		t.Fatalf("expected exactly one chest, got %d", chests)
	}
	if displayLevel(p.Level) != 1 {
		t.Fatalf("expected display level 1 after prestige, got %d", displayLevel(p.Level))
	}
	if prestigeStars(p.Level) != 1 {
		t.Fatalf("expected one prestige star, got %d", prestigeStars(p.Level))
	}
	if math.Abs(p.XP-4) > 1e-9 {
		t.Fatalf("expected 4 leftover xp, got %v", p.XP)
	}
}
