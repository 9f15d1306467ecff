package engine

import (
	"fmt"
	"math"
	"time"

	"github.com/devon4899/FRPG/internal/catalog"
	"github.com/google/uuid"
)

// Challenge rewards are fixed per period and granted exactly once.
const (
	dailyChallengeXP  = 25.0
	weeklyChallengeXP = 100.0
)

// Amount targets per unit, daily and weekly.
var challengeTargets = map[ChallengeUnit][2]float64{
	UnitReps:      {100, 500},
	UnitSets:      {10, 40},
	UnitTime:      {30, 150},
	UnitDistance:  {5, 25},
	UnitFrequency: {2, 8},
}

// Variety targets: distinct exercises per day / per week.
var varietyTargets = [2]float64{3, 6}

// defaultUnit is used when the user has not set a preference for a focus
// group.
func defaultUnit(f catalog.FocusGroup) ChallengeUnit {
	switch f {
	case catalog.FocusEndurance:
		return UnitDistance
	case catalog.FocusMobility:
		return UnitTime
	case catalog.FocusExplosive:
		return UnitFrequency
	default:
		return UnitReps
	}
}

// preferredUnit resolves the amount-challenge unit for a focus group.
func (p *Profile) preferredUnit(f catalog.FocusGroup) ChallengeUnit {
	if u, ok := p.ChallengePrefs[f]; ok && u != "" && u != UnitExercises {
		return u
	}
	return defaultUnit(f)
}

func dayKey(t time.Time) string { return t.Format("2006-01-02") }

func weekKey(t time.Time) string {
	y, w := t.ISOWeek()
	return fmt.Sprintf("%04d-W%02d", y, w)
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location()).AddDate(0, 0, 1)
}

func endOfISOWeek(t time.Time) time.Time {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	weekday := int(day.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	return day.AddDate(0, 0, 8-weekday)
}

// RefreshChallenges purges expired challenges and generates the day's and
// week's slates. Generation runs at most once per calendar day and ISO week
// respectively, and fills only slots not already held by an active challenge
// of the same (focus, kind, period). Completed challenges survive until their
// natural expiry.
func (e *Engine) RefreshChallenges(now time.Time) {
	p := e.profile

	kept := p.Challenges[:0]
	for _, c := range p.Challenges {
		if !c.Expired(now) {
			kept = append(kept, c)
		}
	}
	p.Challenges = kept

	focuses := ClassFocuses[p.Class]

	if dayKey(now) != p.LastDailyGen {
		for _, f := range focuses {
			e.generateSlot(f, PeriodDaily, KindAmount, now)
			e.generateSlot(f, PeriodDaily, KindVariety, now)
		}
		p.LastDailyGen = dayKey(now)
	}

	if weekKey(now) != p.LastWeeklyGen {
		for _, f := range focuses {
			e.generateSlot(f, PeriodWeekly, KindAmount, now)
		}
		p.LastWeeklyGen = weekKey(now)
	}
}

func (e *Engine) generateSlot(f catalog.FocusGroup, period ChallengePeriod, kind ChallengeKind, now time.Time) {
	p := e.profile
	for _, c := range p.Challenges {
		if c.Focus == f && c.Period == period && c.Kind == kind && !c.Expired(now) {
			return // slot still occupied
		}
	}

	idx := 0
	reward := dailyChallengeXP
	expires := endOfDay(now)
	if period == PeriodWeekly {
		idx = 1
		reward = weeklyChallengeXP
		expires = endOfISOWeek(now)
	}

	c := Challenge{
		ID:        uuid.NewString(),
		Period:    period,
		Focus:     f,
		Kind:      kind,
		ExpReward: reward,
		CreatedAt: now,
		ExpiresAt: expires,
	}
	if kind == KindVariety {
		c.Unit = UnitExercises
		c.Target = varietyTargets[idx]
		c.SeenExercises = map[string]struct{}{}
	} else {
		c.Unit = p.preferredUnit(f)
		c.Target = challengeTargets[c.Unit][idx]
	}
	p.Challenges = append(p.Challenges, c)
}

// challengeAmount returns how much one workout contributes to an amount
// challenge in the given unit.
func challengeAmount(unit ChallengeUnit, in WorkoutInput) float64 {
	switch unit {
	case UnitReps:
		return float64(ival(in.Reps))
	case UnitSets:
		return 1
	case UnitTime:
		return math.Ceil(fval(in.DurationMin))
	case UnitDistance:
		return math.Ceil(fval(in.DistanceKm))
	case UnitFrequency:
		return 1
	}
	return 0
}

// applyChallengeProgress advances every matching active challenge for one
// logged workout and grants completion bonuses. A workout with no matching
// challenge is a no-op.
func (e *Engine) applyChallengeProgress(ex catalog.Exercise, in WorkoutInput, now time.Time) {
	p := e.profile
	for i := range p.Challenges {
		c := &p.Challenges[i]
		if c.Focus != ex.Focus || c.Completed() || c.Expired(now) {
			continue
		}

		switch c.Kind {
		case KindVariety:
			if _, seen := c.SeenExercises[ex.ID]; seen {
				continue
			}
			c.SeenExercises[ex.ID] = struct{}{}
			c.Progress++
		default:
			delta := challengeAmount(c.Unit, in)
			if delta <= 0 {
				continue
			}
			c.Progress += delta
		}

		if c.Progress >= c.Target && c.CompletedAt == nil {
			t := now
			c.CompletedAt = &t
			e.grantChallengeReward(c, now)
		}
	}
}

// grantChallengeReward pays the fixed completion XP, issuing chests for any
// level-ups it causes.
func (e *Engine) grantChallengeReward(c *Challenge, now time.Time) {
	e.profile.addXP(c.ExpReward, func(newLevel int) {
		e.profile.Chests = append(e.profile.Chests, e.rollChest(newLevel, now))
	})
}

// SetChallengePreference records the preferred amount-challenge unit for a
// focus group. Existing challenges are untouched; only future generation
// changes.
func (e *Engine) SetChallengePreference(f catalog.FocusGroup, unit ChallengeUnit) {
	if unit == "" || unit == UnitExercises {
		return
	}
	e.profile.ChallengePrefs[f] = unit
}
