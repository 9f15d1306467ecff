package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/devon4899/FRPG/internal/catalog"
	"github.com/devon4899/FRPG/internal/engine"
)

// Fixed-width timestamp format so lexicographic ORDER BY ts is chronological
// (RFC3339Nano drops trailing zeros and breaks string ordering).
const timeFormat = "2006-01-02T15:04:05.000000000Z07:00"

func jsonString(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return "{}"
	}
	return string(b)
}

func firstGrantList(m map[string]struct{}) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}

// SaveSnapshot writes the full snapshot in one transaction, replacing the
// previous contents. Histories are small for a single local user, so a full
// rewrite keeps save and replay semantics identical.
func (s *Store) SaveSnapshot(snap engine.Snapshot) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin save: %w", err)
	}
	defer tx.Rollback()

	p := snap.User
	if p == nil {
		return fmt.Errorf("save snapshot: nil profile")
	}

	lastLogged := make(map[string]string, len(p.LastLogged))
	for k, v := range p.LastLogged {
		lastLogged[k] = v.UTC().Format(timeFormat)
	}

	if _, err := tx.Exec(
		`INSERT INTO profile (
			id, level, xp, next_level_xp, total_xp, coins,
			size, strength, dexterity, agility, endurance, vitality,
			best_1rm, baselines, last_logged, ranks, first_grants,
			streaks, last_streak_day, inventory,
			bodyweight_kg, class, challenge_prefs, last_daily_gen, last_weekly_gen
		) VALUES (1, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			level=excluded.level, xp=excluded.xp, next_level_xp=excluded.next_level_xp,
			total_xp=excluded.total_xp, coins=excluded.coins,
			size=excluded.size, strength=excluded.strength, dexterity=excluded.dexterity,
			agility=excluded.agility, endurance=excluded.endurance, vitality=excluded.vitality,
			best_1rm=excluded.best_1rm, baselines=excluded.baselines,
			last_logged=excluded.last_logged, ranks=excluded.ranks,
			first_grants=excluded.first_grants, streaks=excluded.streaks,
			last_streak_day=excluded.last_streak_day, inventory=excluded.inventory,
			bodyweight_kg=excluded.bodyweight_kg, class=excluded.class,
			challenge_prefs=excluded.challenge_prefs,
			last_daily_gen=excluded.last_daily_gen, last_weekly_gen=excluded.last_weekly_gen`,
		p.Level, p.XP, p.NextLevelXP, p.TotalXP, p.Coins,
		p.Stats.Size, p.Stats.Strength, p.Stats.Dexterity,
		p.Stats.Agility, p.Stats.Endurance, p.Stats.Vitality,
		jsonString(p.Best1RM), jsonString(p.Baselines), jsonString(lastLogged),
		jsonString(p.Ranks), jsonString(firstGrantList(p.FirstGrantApplied)),
		jsonString(p.Streaks), jsonString(p.LastStreakDay), jsonString(p.Inventory),
		p.BodyweightKg, string(p.Class), jsonString(p.ChallengePrefs),
		p.LastDailyGen, p.LastWeeklyGen,
	); err != nil {
		return fmt.Errorf("save profile: %w", err)
	}

	for _, table := range []string{"workouts", "chests", "challenges"} {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}

	for _, w := range snap.History {
		if _, err := tx.Exec(
			`INSERT INTO workouts (
				id, ts, category, reps, weight_kg, duration_min, distance_km,
				gain_size, gain_strength, gain_dexterity, gain_agility, gain_endurance, gain_vitality,
				exp_gained, prev_level, new_level, est_1rm, prev_best_1rm, total_progress_xp
			) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			w.ID, w.Timestamp.UTC().Format(timeFormat), w.Category,
			w.Reps, w.WeightKg, w.DurationMin, w.DistanceKm,
			w.StatGains.Size, w.StatGains.Strength, w.StatGains.Dexterity,
			w.StatGains.Agility, w.StatGains.Endurance, w.StatGains.Vitality,
			w.ExpGained, w.PrevLevel, w.NewLevel, w.Est1RM, w.PrevBest1RM, w.TotalProgressXP,
		); err != nil {
			return fmt.Errorf("save workout %s: %w", w.ID, err)
		}
	}

	for _, c := range p.Chests {
		if _, err := tx.Exec(
			`INSERT INTO chests (id, tier, earned_at_level, date_earned, opened, rewards)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			c.ID, string(c.Tier), c.EarnedAtLevel,
			c.DateEarned.UTC().Format(timeFormat), c.Opened, jsonString(c.Rewards),
		); err != nil {
			return fmt.Errorf("save chest %s: %w", c.ID, err)
		}
	}

	for _, c := range p.Challenges {
		var completed *string
		if c.CompletedAt != nil {
			v := c.CompletedAt.UTC().Format(timeFormat)
			completed = &v
		}
		seen := make([]string, 0, len(c.SeenExercises))
		for k := range c.SeenExercises {
			seen = append(seen, k)
		}
		if _, err := tx.Exec(
			`INSERT INTO challenges (
				id, period, focus, kind, unit, target, exp_reward,
				created_at, expires_at, completed_at, progress, seen
			) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			c.ID, string(c.Period), string(c.Focus), string(c.Kind), string(c.Unit),
			c.Target, c.ExpReward,
			c.CreatedAt.UTC().Format(timeFormat),
			c.ExpiresAt.UTC().Format(timeFormat),
			completed, c.Progress, jsonString(seen),
		); err != nil {
			return fmt.Errorf("save challenge %s: %w", c.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit save: %w", err)
	}
	return nil
}

// LoadSnapshot reads the persisted snapshot. A database with no profile row
// yields a fresh profile and empty history.
func (s *Store) LoadSnapshot() (engine.Snapshot, error) {
	p := engine.NewProfile()
	snap := engine.Snapshot{User: p}

	var (
		bestJSON, baseJSON, loggedJSON, ranksJSON string
		grantsJSON, streaksJSON, streakDayJSON    string
		inventoryJSON, prefsJSON, class           string
	)
	err := s.db.QueryRow(
		`SELECT level, xp, next_level_xp, total_xp, coins,
			size, strength, dexterity, agility, endurance, vitality,
			best_1rm, baselines, last_logged, ranks, first_grants,
			streaks, last_streak_day, inventory,
			bodyweight_kg, class, challenge_prefs, last_daily_gen, last_weekly_gen
		 FROM profile WHERE id = 1`,
	).Scan(
		&p.Level, &p.XP, &p.NextLevelXP, &p.TotalXP, &p.Coins,
		&p.Stats.Size, &p.Stats.Strength, &p.Stats.Dexterity,
		&p.Stats.Agility, &p.Stats.Endurance, &p.Stats.Vitality,
		&bestJSON, &baseJSON, &loggedJSON, &ranksJSON, &grantsJSON,
		&streaksJSON, &streakDayJSON, &inventoryJSON,
		&p.BodyweightKg, &class, &prefsJSON, &p.LastDailyGen, &p.LastWeeklyGen,
	)
	switch {
	case err == sql.ErrNoRows:
		return snap, nil
	case err != nil:
		return snap, fmt.Errorf("load profile: %w", err)
	}

	p.Class = engine.ClassID(class)
	var (
		logged map[string]string
		grants []string
	)
	for _, col := range []struct {
		name string
		raw  string
		dst  any
	}{
		{"best_1rm", bestJSON, &p.Best1RM},
		{"baselines", baseJSON, &p.Baselines},
		{"last_logged", loggedJSON, &logged},
		{"ranks", ranksJSON, &p.Ranks},
		{"first_grants", grantsJSON, &grants},
		{"streaks", streaksJSON, &p.Streaks},
		{"last_streak_day", streakDayJSON, &p.LastStreakDay},
		{"inventory", inventoryJSON, &p.Inventory},
		{"challenge_prefs", prefsJSON, &p.ChallengePrefs},
	} {
		if col.raw == "" {
			continue
		}
		if err := json.Unmarshal([]byte(col.raw), col.dst); err != nil {
			return snap, fmt.Errorf("decode profile %s: %w", col.name, err)
		}
	}
	for k, v := range logged {
		if t, err := time.Parse(time.RFC3339Nano, v); err == nil {
			p.LastLogged[k] = t
		}
	}
	for _, g := range grants {
		p.FirstGrantApplied[g] = struct{}{}
	}

	if err := s.loadWorkouts(&snap); err != nil {
		return snap, err
	}
	if err := s.loadChests(p); err != nil {
		return snap, err
	}
	if err := s.loadChallenges(p); err != nil {
		return snap, err
	}
	return snap, nil
}

func (s *Store) loadWorkouts(snap *engine.Snapshot) error {
	rows, err := s.db.Query(
		`SELECT id, ts, category, reps, weight_kg, duration_min, distance_km,
			gain_size, gain_strength, gain_dexterity, gain_agility, gain_endurance, gain_vitality,
			exp_gained, prev_level, new_level, est_1rm, prev_best_1rm, total_progress_xp
		 FROM workouts ORDER BY ts`,
	)
	if err != nil {
		return fmt.Errorf("load workouts: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var w engine.WorkoutEntry
		var ts string
		var reps sql.NullInt64
		var weight, duration, distance, est, prevBest sql.NullFloat64
		var g [6]float64
		if err := rows.Scan(
			&w.ID, &ts, &w.Category, &reps, &weight, &duration, &distance,
			&g[0], &g[1], &g[2], &g[3], &g[4], &g[5],
			&w.ExpGained, &w.PrevLevel, &w.NewLevel, &est, &prevBest, &w.TotalProgressXP,
		); err != nil {
			return fmt.Errorf("scan workout: %w", err)
		}
		w.Timestamp, _ = time.Parse(time.RFC3339Nano, ts)
		w.StatGains = catalog.FromComponents(g)
		if reps.Valid {
			v := int(reps.Int64)
			w.Reps = &v
		}
		if weight.Valid {
			w.WeightKg = &weight.Float64
		}
		if duration.Valid {
			w.DurationMin = &duration.Float64
		}
		if distance.Valid {
			w.DistanceKm = &distance.Float64
		}
		if est.Valid {
			w.Est1RM = &est.Float64
		}
		if prevBest.Valid {
			w.PrevBest1RM = &prevBest.Float64
		}
		snap.History = append(snap.History, w)
	}
	return rows.Err()
}

func (s *Store) loadChests(p *engine.Profile) error {
	rows, err := s.db.Query(
		`SELECT id, tier, earned_at_level, date_earned, opened, rewards
		 FROM chests ORDER BY date_earned`,
	)
	if err != nil {
		return fmt.Errorf("load chests: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var c engine.TreasureChest
		var tier, earned, rewards string
		if err := rows.Scan(&c.ID, &tier, &c.EarnedAtLevel, &earned, &c.Opened, &rewards); err != nil {
			return fmt.Errorf("scan chest: %w", err)
		}
		c.Tier = engine.ChestTier(tier)
		c.DateEarned, _ = time.Parse(time.RFC3339Nano, earned)
		json.Unmarshal([]byte(rewards), &c.Rewards)
		p.Chests = append(p.Chests, c)
	}
	return rows.Err()
}

func (s *Store) loadChallenges(p *engine.Profile) error {
	rows, err := s.db.Query(
		`SELECT id, period, focus, kind, unit, target, exp_reward,
			created_at, expires_at, completed_at, progress, seen
		 FROM challenges ORDER BY created_at`,
	)
	if err != nil {
		return fmt.Errorf("load challenges: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var c engine.Challenge
		var period, focus, kind, unit, created, expires, seen string
		var completed sql.NullString
		if err := rows.Scan(
			&c.ID, &period, &focus, &kind, &unit, &c.Target, &c.ExpReward,
			&created, &expires, &completed, &c.Progress, &seen,
		); err != nil {
			return fmt.Errorf("scan challenge: %w", err)
		}
		c.Period = engine.ChallengePeriod(period)
		c.Focus = catalog.FocusGroup(focus)
		c.Kind = engine.ChallengeKind(kind)
		c.Unit = engine.ChallengeUnit(unit)
		c.CreatedAt, _ = time.Parse(time.RFC3339Nano, created)
		c.ExpiresAt, _ = time.Parse(time.RFC3339Nano, expires)
		if completed.Valid {
			if t, err := time.Parse(time.RFC3339Nano, completed.String); err == nil {
				c.CompletedAt = &t
			}
		}
		var seenList []string
		json.Unmarshal([]byte(seen), &seenList)
		if c.Kind == engine.KindVariety {
			c.SeenExercises = make(map[string]struct{}, len(seenList))
			for _, e := range seenList {
				c.SeenExercises[e] = struct{}{}
			}
		}
		p.Challenges = append(p.Challenges, c)
	}
	return rows.Err()
}
