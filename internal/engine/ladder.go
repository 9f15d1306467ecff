package engine

import "math"

// MaxLevel caps the ladder. At the cap xp and nextLevelXP are both pinned to
// 1 so progress bars render full without accruing further.
const MaxLevel = 100

// displayLevel maps an underlying level to its 1..10 prestige display level.
// The curve shape resets every 10 levels.
func displayLevel(level int) int {
	if level <= 10 {
		return level
	}
	return (level-1)%10 + 1
}

// prestigeStars counts completed 10-level prestige cycles.
func prestigeStars(level int) int {
	if level <= 10 {
		return 0
	}
	return (level - 1) / 10
}

// xpNeeded returns the XP required to clear the given level.
func xpNeeded(level int) float64 {
	return 50 * math.Pow(float64(displayLevel(level)), 1.2)
}

// cumulativeXP sums xpNeeded over all levels before the given one.
func cumulativeXP(level int) float64 {
	var total float64
	for l := 1; l < level; l++ {
		total += xpNeeded(l)
	}
	return total
}

// DisplayLevel is the 1..10 level shown in the UI.
func (p *Profile) DisplayLevel() int { return displayLevel(p.Level) }

// PrestigeStars is the number of completed prestige cycles shown in the UI.
func (p *Profile) PrestigeStars() int { return prestigeStars(p.Level) }

// addXP applies an XP delta to the profile, crossing as many level boundaries
// as the delta covers. onLevelUp, if non-nil, runs once per level gained with
// the level just reached; chest issuance hangs off it at record time and is
// deliberately absent during replay.
func (p *Profile) addXP(delta float64, onLevelUp func(newLevel int)) int {
	if delta < 0 {
		delta = 0
	}
	p.TotalXP += delta

	if p.Level >= MaxLevel {
		p.XP, p.NextLevelXP = 1, 1
		return 0
	}

	p.XP += delta
	levels := 0
	for p.Level < MaxLevel && p.XP >= p.NextLevelXP {
		p.XP -= p.NextLevelXP
		p.Level++
		levels++
		if p.Level >= MaxLevel {
			p.XP, p.NextLevelXP = 1, 1
		} else {
			p.NextLevelXP = xpNeeded(p.Level)
		}
		if onLevelUp != nil {
			onLevelUp(p.Level)
		}
		if p.Level >= MaxLevel {
			break
		}
	}
	return levels
}
