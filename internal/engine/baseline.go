package engine

import (
	"math"
	"time"

	"github.com/devon4899/FRPG/internal/catalog"
)

// Baseline tuning. The baseline is an EMA of per-category performance; decay
// slowly forgives time off so a returning user is compared against a softer
// target.
const (
	decayRateDefault   = 0.02 // weekly
	decayRateEndurance = 0.04 // endurance + mobility forget faster

	xpBase      = 12.0 // reward at exactly-baseline performance
	xpCap       = 50.0
	gainExp     = 1.25 // ratio exponent above baseline
	lossExp     = 0.50 // ratio exponent below baseline
	emaFast     = 0.50 // ratio >= 1.10, absorb big improvements quickly
	emaSlow     = 0.10 // ratio < 0.95, slow to punish a bad day
	emaDefault  = 0.25
	fastCutoff  = 1.10
	slowCutoff  = 0.95
	baselineEps = 1e-9
)

// focusXPMultiplier scales rewards so neglected focus styles stay attractive.
func focusXPMultiplier(f catalog.FocusGroup) float64 {
	switch f {
	case catalog.FocusExplosive, catalog.FocusMobility:
		return 1.15
	case catalog.FocusBodyweight:
		return 1.25
	case catalog.FocusEndurance:
		return 1.30
	default: // strength, hypertrophy
		return 1.0
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// decayedBaseline returns the category baseline with weekly decay applied for
// the gap since the last same-category entry. Pure; the stored baseline is
// rewritten only after the reward is computed.
func (p *Profile) decayedBaseline(ex catalog.Exercise, now time.Time) (float64, bool) {
	base, ok := p.Baselines[ex.ID]
	if !ok {
		return 0, false
	}
	last, ok := p.LastLogged[ex.ID]
	if !ok {
		return base, true
	}
	days := now.Sub(last).Hours() / 24
	if days <= 0 {
		return base, true
	}
	rate := decayRateDefault
	if ex.Focus == catalog.FocusEndurance || ex.Focus == catalog.FocusMobility {
		rate = decayRateEndurance
	}
	return base * math.Pow(1-rate, days/7), true
}

// xpReward computes the baseline-relative XP for one workout and updates the
// baseline EMA, last-logged timestamp and streaks. Returns the rounded XP and
// the performance/baseline ratio (0 when no prior baseline applies).
func (e *Engine) xpReward(ex catalog.Exercise, perf float64, now time.Time) (xp, ratio float64) {
	p := e.profile
	mult := focusXPMultiplier(ex.Focus)
	streakMult := p.advanceStreak(ex.Focus, now)

	base, hasBase := p.decayedBaseline(ex, now)

	if !hasBase || perf <= 0 {
		// First-ever log (or an unmeasurable session): a generous seed so the
		// first session of anything always feels good.
		xp = round1((10.1 + e.rng.Float64()*2.8) * mult * streakMult)
	} else {
		ratio = perf / math.Max(baselineEps, base)
		if ratio >= 1 {
			xp = xpBase * math.Pow(ratio, gainExp)
		} else {
			xp = xpBase * math.Pow(ratio, lossExp)
		}
		floor := 8.0 + e.rng.Float64()
		if xp < floor {
			xp = floor
		}
		if xp > xpCap {
			xp = xpCap
		}
		xp *= mult
		xp += e.rng.Float64()*0.8 - 0.4
		xp = math.Max(floor, math.Min(xpCap, xp))
		xp = round1(xp * streakMult)
	}

	if perf > 0 {
		if !hasBase {
			p.Baselines[ex.ID] = perf
		} else {
			mu := emaDefault
			switch {
			case ratio >= fastCutoff:
				mu = emaFast
			case ratio < slowCutoff:
				mu = emaSlow
			}
			p.Baselines[ex.ID] = (1-mu)*base + mu*perf
		}
	}
	p.LastLogged[ex.ID] = now
	return xp, ratio
}

// advanceStreak updates the consecutive-day streak for the endurance and
// mobility focus groups and returns the layered reward multiplier. Endurance
// pays +2% per streak day up to +20% and halves the streak after a gap of two
// or more days; mobility pays +3% up to +30% and loses one streak day per
// missed day. Other groups always return 1.
func (p *Profile) advanceStreak(f catalog.FocusGroup, now time.Time) float64 {
	if f != catalog.FocusEndurance && f != catalog.FocusMobility {
		return 1
	}

	today := now.Format("2006-01-02")
	streak := p.Streaks[f]
	if last := p.LastStreakDay[f]; last != "" && last != today {
		// Both keys are calendar dates in the entry's own zone; diffing the
		// parsed keys keeps the gap in whole local days.
		lastDay, errLast := time.Parse("2006-01-02", last)
		todayDay, errToday := time.Parse("2006-01-02", today)
		if errLast == nil && errToday == nil {
			gap := int(todayDay.Sub(lastDay).Hours() / 24)
			switch {
			case gap == 1:
				streak++
			case gap >= 2 && f == catalog.FocusEndurance:
				streak /= 2
				streak++
			case gap >= 2: // mobility
				streak -= gap - 1
				if streak < 0 {
					streak = 0
				}
				streak++
			}
		}
	} else if last := p.LastStreakDay[f]; last == "" {
		streak = 1
	}
	p.Streaks[f] = streak
	p.LastStreakDay[f] = today

	if f == catalog.FocusEndurance {
		return 1 + math.Min(0.20, 0.02*float64(streak))
	}
	return 1 + math.Min(0.30, 0.03*float64(streak))
}
