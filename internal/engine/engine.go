package engine

import (
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/devon4899/FRPG/internal/catalog"
	"github.com/google/uuid"
)

// Engine owns the profile cache and the append-only workout history and
// sequences every subsystem per logged workout. It is not safe for concurrent
// use; there is a single logical owner of state.
type Engine struct {
	profile *Profile
	history []WorkoutEntry
	rng     *rand.Rand
	now     func() time.Time
}

// New builds an engine over an existing snapshot. A nil profile starts a
// fresh one. The seed drives every randomized subsystem so tests can pin
// exact outputs.
func New(snap Snapshot, seed int64) *Engine {
	p := snap.User
	if p == nil {
		p = NewProfile()
	}
	e := &Engine{
		profile: p,
		history: append([]WorkoutEntry(nil), snap.History...),
		rng:     rand.New(rand.NewSource(seed)),
		now:     time.Now,
	}
	sortHistory(e.history)
	return e
}

// Profile exposes the live profile cache.
func (e *Engine) Profile() *Profile { return e.profile }

// History returns the workout log in ascending timestamp order.
func (e *Engine) History() []WorkoutEntry {
	out := make([]WorkoutEntry, len(e.history))
	copy(out, e.history)
	return out
}

// Snapshot returns the persisted shape: profile cache plus history.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{User: e.profile, History: e.History()}
}

func sortHistory(h []WorkoutEntry) {
	sort.SliceStable(h, func(i, j int) bool {
		return h[i].Timestamp.Before(h[j].Timestamp)
	})
}

// RecordWorkout runs the full pipeline for one workout: performance metric,
// baseline reward, stat distribution, ladder XP with chest issuance, rank
// bump, quest progress, history append. Inputs are clamped rather than
// rejected; the returned notices describe any adjustment. All state effects
// commit together or, on an unknown category, not at all.
func (e *Engine) RecordWorkout(in WorkoutInput) (*WorkoutEntry, []string, error) {
	ex, ok := catalog.Get(in.Category)
	if !ok {
		return nil, nil, fmt.Errorf("record workout: unknown category %q", in.Category)
	}
	notices := clampInput(&in)

	now := e.now()
	p := e.profile
	bodyweight := p.Bodyweight()

	e.RefreshChallenges(now)

	perf := performance(ex, in, bodyweight)

	entry := WorkoutEntry{
		ID:          uuid.NewString(),
		Timestamp:   now,
		Category:    ex.ID,
		Reps:        in.Reps,
		WeightKg:    in.WeightKg,
		DurationMin: in.DurationMin,
		DistanceKm:  in.DistanceKm,
		PrevLevel:   p.Level,
	}

	var est float64
	if ex.OneRepMax {
		est = perf
		entry.Est1RM = &est
		if prev, ok := p.Best1RM[ex.ID]; ok {
			prevCopy := prev
			entry.PrevBest1RM = &prevCopy
		}
	}

	xp, ratio := e.xpReward(ex, perf, now)
	entry.ExpGained = xp

	prevBest := 0.0
	if entry.PrevBest1RM != nil {
		prevBest = *entry.PrevBest1RM
	}
	boost := prBoost(est, prevBest, ratio)

	_, firstApplied := p.FirstGrantApplied[ex.ID]
	gains := distributeStats(ex, in, bodyweight, xp, boost, !firstApplied)
	entry.StatGains = gains
	if !firstApplied {
		p.FirstGrantApplied[ex.ID] = struct{}{}
	}
	p.Stats = p.Stats.Add(gains)

	p.addXP(xp, func(newLevel int) {
		p.Chests = append(p.Chests, e.rollChest(newLevel, now))
	})
	entry.NewLevel = p.Level
	entry.TotalProgressXP = p.TotalXP

	if ex.OneRepMax && est > prevBest {
		p.Best1RM[ex.ID] = est
	}
	p.bumpRank(ex, in, perf)

	e.applyChallengeProgress(ex, in, now)

	e.history = append(e.history, entry)
	return &entry, notices, nil
}

// RederiveEntry recomputes the input-derived fields of an edited entry
// (est1RM and clamped raw inputs). Baseline-relative XP and stat gains are
// deliberately kept from the original roll so replay stays deterministic.
func (e *Engine) RederiveEntry(entry *WorkoutEntry) error {
	ex, ok := catalog.Get(entry.Category)
	if !ok {
		return fmt.Errorf("rederive entry: unknown category %q", entry.Category)
	}
	in := WorkoutInput{
		Category:    entry.Category,
		Reps:        entry.Reps,
		WeightKg:    entry.WeightKg,
		DurationMin: entry.DurationMin,
		DistanceKm:  entry.DistanceKm,
	}
	clampInput(&in)
	entry.Reps, entry.WeightKg = in.Reps, in.WeightKg
	entry.DurationMin, entry.DistanceKm = in.DurationMin, in.DistanceKm

	entry.Est1RM = nil
	if ex.OneRepMax {
		est := performance(ex, in, e.profile.Bodyweight())
		entry.Est1RM = &est
	}
	return nil
}

// EditWorkout replaces the history entry with the same id and rebuilds all
// derived state by full replay. Only the raw-input-derived fields (est1RM,
// performance) are re-priced; the entry keeps its original ExpGained and
// StatGains so an edit never re-rolls rewards already granted.
func (e *Engine) EditWorkout(entry WorkoutEntry) error {
	if err := e.RederiveEntry(&entry); err != nil {
		return err
	}
	for i := range e.history {
		if e.history[i].ID == entry.ID {
			e.history[i] = entry
			e.Recalculate()
			return nil
		}
	}
	return fmt.Errorf("edit workout: no entry with id %s", entry.ID)
}

// DeleteWorkout removes an entry by id and rebuilds derived state by full
// replay.
func (e *Engine) DeleteWorkout(id string) error {
	for i := range e.history {
		if e.history[i].ID == id {
			e.history = append(e.history[:i], e.history[i+1:]...)
			e.Recalculate()
			return nil
		}
	}
	return fmt.Errorf("delete workout: no entry with id %s", id)
}

// Recalculate rebuilds level, xp, stats, ranks and the per-category
// bookkeeping (baselines, best 1RMs, first-grant markers, streaks) from the
// history alone, in ascending timestamp order. Stored per-entry XP and stat
// gains are re-applied verbatim; no randomness is re-rolled and no chests or
// challenge rewards are re-issued. Applying this to any history yields the
// same aggregate state no matter how the history reached its current form.
func (e *Engine) Recalculate() {
	p := e.profile
	p.Level = 1
	p.XP = 0
	p.NextLevelXP = xpNeeded(1)
	p.TotalXP = 0
	p.Stats = catalog.StatBlock{}
	p.Best1RM = map[string]float64{}
	p.Baselines = map[string]float64{}
	p.LastLogged = map[string]time.Time{}
	p.FirstGrantApplied = map[string]struct{}{}
	p.Streaks = map[catalog.FocusGroup]int{}
	p.LastStreakDay = map[catalog.FocusGroup]string{}
	for _, f := range catalog.FocusGroups {
		p.Ranks[f] = 1
	}

	sortHistory(e.history)

	for i := range e.history {
		entry := &e.history[i]
		ex, ok := catalog.Get(entry.Category)
		if !ok {
			// Tolerated: a category removed from the catalog still replays
			// its stored XP and gains.
			p.Stats = p.Stats.Add(entry.StatGains)
			entry.PrevLevel = p.Level
			p.addXP(entry.ExpGained, nil)
			entry.NewLevel = p.Level
			entry.TotalProgressXP = p.TotalXP
			continue
		}

		in := WorkoutInput{
			Category:    entry.Category,
			Reps:        entry.Reps,
			WeightKg:    entry.WeightKg,
			DurationMin: entry.DurationMin,
			DistanceKm:  entry.DistanceKm,
		}
		perf := performance(ex, in, p.Bodyweight())

		// Deterministic bookkeeping mirrors the record pipeline.
		if base, ok := p.decayedBaseline(ex, entry.Timestamp); ok {
			if perf > 0 {
				ratio := perf / base
				mu := emaDefault
				switch {
				case ratio >= fastCutoff:
					mu = emaFast
				case ratio < slowCutoff:
					mu = emaSlow
				}
				p.Baselines[ex.ID] = (1-mu)*base + mu*perf
			}
		} else if perf > 0 {
			p.Baselines[ex.ID] = perf
		}
		p.LastLogged[ex.ID] = entry.Timestamp
		p.advanceStreak(ex.Focus, entry.Timestamp)
		p.FirstGrantApplied[ex.ID] = struct{}{}

		p.Stats = p.Stats.Add(entry.StatGains)
		entry.PrevLevel = p.Level
		p.addXP(entry.ExpGained, nil)
		entry.NewLevel = p.Level
		entry.TotalProgressXP = p.TotalXP

		if ex.OneRepMax && entry.Est1RM != nil {
			if prev, ok := p.Best1RM[ex.ID]; ok {
				prevCopy := prev
				entry.PrevBest1RM = &prevCopy
			} else {
				entry.PrevBest1RM = nil
			}
			if *entry.Est1RM > p.Best1RM[ex.ID] {
				p.Best1RM[ex.ID] = *entry.Est1RM
			}
		}
		p.bumpRank(ex, in, perf)
	}
}

// OpenChest opens a chest by id and applies its rewards: bonus XP through the
// ladder (which can itself issue new chests), coins to the balance, items to
// the inventory. Opening an already-opened chest is a no-op.
func (e *Engine) OpenChest(id string) ([]TreasureReward, error) {
	p := e.profile
	for i := range p.Chests {
		chest := &p.Chests[i]
		if chest.ID != id {
			continue
		}
		if chest.Opened {
			return nil, nil
		}
		chest.Opened = true

		now := e.now()
		for _, r := range chest.Rewards {
			switch r.Type {
			case RewardBonusXP:
				p.addXP(r.Amount, func(newLevel int) {
					p.Chests = append(p.Chests, e.rollChest(newLevel, now))
				})
			case RewardCoins:
				p.Coins += int(r.Amount)
			case RewardItem:
				p.Inventory = append(p.Inventory, r)
			}
		}
		return chest.Rewards, nil
	}
	return nil, fmt.Errorf("open chest: no chest with id %s", id)
}
