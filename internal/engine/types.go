// Package engine implements the progression core: performance metrics,
// baseline-relative XP rewards, level/prestige ladder, attribute distribution,
// loot, quests and the append-only workout ledger with full-history replay.
package engine

import (
	"time"

	"github.com/devon4899/FRPG/internal/catalog"
)

// Fallback constants. Every optional numeric input falls back to these in one
// place rather than ad hoc defaults inside formulas.
const (
	DefaultBodyweightKg = 70.0
	DefaultClass        = ClassWarrior
)

// Input clamp bounds. Out-of-range values are clamped, never rejected.
const (
	MaxReps        = 9999
	MaxWeightKg    = 9999.0
	MaxDurationMin = 1440.0
	MaxDistanceKm  = 9999.0
)

// ClassID names a player class: a pair of focus groups that drives challenge
// generation.
type ClassID string

const (
	ClassWarrior  ClassID = "warrior"  // strength + hypertrophy
	ClassRanger   ClassID = "ranger"   // endurance + explosive
	ClassMonk     ClassID = "monk"     // bodyweight + mobility
	ClassBarbaric ClassID = "barbaric" // strength + explosive
	ClassDruid    ClassID = "druid"    // endurance + mobility
)

// ClassFocuses maps each class to its two focus groups.
var ClassFocuses = map[ClassID][2]catalog.FocusGroup{
	ClassWarrior:  {catalog.FocusStrength, catalog.FocusHypertrophy},
	ClassRanger:   {catalog.FocusEndurance, catalog.FocusExplosive},
	ClassMonk:     {catalog.FocusBodyweight, catalog.FocusMobility},
	ClassBarbaric: {catalog.FocusStrength, catalog.FocusExplosive},
	ClassDruid:    {catalog.FocusEndurance, catalog.FocusMobility},
}

// WorkoutInput is the raw, possibly partial data for one logged workout.
// Nil means the field was not provided.
type WorkoutInput struct {
	Category    string
	Reps        *int
	WeightKg    *float64
	DurationMin *float64
	DistanceKm  *float64
}

// WorkoutEntry is one immutable history record: raw inputs plus the derived
// outputs produced when it was recorded. Replay re-applies the derived outputs
// verbatim; it never re-rolls randomized rewards.
type WorkoutEntry struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Category  string    `json:"category"`

	Reps        *int     `json:"reps,omitempty"`
	WeightKg    *float64 `json:"weight_kg,omitempty"`
	DurationMin *float64 `json:"duration_min,omitempty"`
	DistanceKm  *float64 `json:"distance_km,omitempty"`

	StatGains       catalog.StatBlock `json:"stat_gains"`
	ExpGained       float64           `json:"exp_gained"`
	PrevLevel       int               `json:"prev_level"`
	NewLevel        int               `json:"new_level"`
	Est1RM          *float64          `json:"est_1rm,omitempty"`
	PrevBest1RM     *float64          `json:"prev_best_1rm,omitempty"`
	TotalProgressXP float64           `json:"total_progress_xp"`
}

// RewardType distinguishes the three chest reward kinds.
type RewardType string

const (
	RewardBonusXP RewardType = "bonus_xp"
	RewardCoins   RewardType = "coins"
	RewardItem    RewardType = "item"
)

// ItemInfo describes a granted inventory item.
type ItemInfo struct {
	Name   string `json:"name"`
	Rarity string `json:"rarity"`
}

// TreasureReward is a single reward inside a chest.
type TreasureReward struct {
	Type        RewardType `json:"type"`
	Amount      float64    `json:"amount"`
	Description string     `json:"description"`
	Item        *ItemInfo  `json:"item,omitempty"`
}

// ChestTier is one of the five loot-quality bands.
type ChestTier string

const (
	TierCommon   ChestTier = "common"
	TierUncommon ChestTier = "uncommon"
	TierRare     ChestTier = "rare"
	TierEpic     ChestTier = "epic"
	TierMythic   ChestTier = "mythic"
)

// ChestTiers lists tiers from most to least likely.
var ChestTiers = []ChestTier{TierCommon, TierUncommon, TierRare, TierEpic, TierMythic}

// TreasureChest is issued atomically on level-up with its rewards already
// rolled; opening applies them exactly once.
type TreasureChest struct {
	ID            string           `json:"id"`
	Tier          ChestTier        `json:"tier"`
	EarnedAtLevel int              `json:"earned_at_level"`
	DateEarned    time.Time        `json:"date_earned"`
	Opened        bool             `json:"opened"`
	Rewards       []TreasureReward `json:"rewards"`
}

// ChallengePeriod is the challenge cadence.
type ChallengePeriod string

const (
	PeriodDaily  ChallengePeriod = "daily"
	PeriodWeekly ChallengePeriod = "weekly"
)

// ChallengeKind splits challenges into raw-amount accumulation and
// distinct-exercise variety.
type ChallengeKind string

const (
	KindAmount  ChallengeKind = "amount"
	KindVariety ChallengeKind = "variety"
)

// ChallengeUnit is the unit an amount challenge accumulates in. Variety
// challenges always count distinct exercises.
type ChallengeUnit string

const (
	UnitSets      ChallengeUnit = "sets"
	UnitReps      ChallengeUnit = "reps"
	UnitTime      ChallengeUnit = "time"      // minutes
	UnitDistance  ChallengeUnit = "distance"  // km
	UnitFrequency ChallengeUnit = "frequency" // times logged
	UnitExercises ChallengeUnit = "exercises" // variety only
)

// Challenge is a daily or weekly quest target for one focus group.
type Challenge struct {
	ID            string              `json:"id"`
	Period        ChallengePeriod     `json:"period"`
	Focus         catalog.FocusGroup  `json:"focus"`
	Kind          ChallengeKind       `json:"kind"`
	Unit          ChallengeUnit       `json:"unit"`
	Target        float64             `json:"target"`
	ExpReward     float64             `json:"exp_reward"`
	CreatedAt     time.Time           `json:"created_at"`
	ExpiresAt     time.Time           `json:"expires_at"`
	CompletedAt   *time.Time          `json:"completed_at,omitempty"`
	Progress      float64             `json:"progress"`
	SeenExercises map[string]struct{} `json:"seen_exercises,omitempty"`
}

// Completed reports whether the challenge has been finished.
func (c *Challenge) Completed() bool { return c.CompletedAt != nil }

// Expired reports whether the challenge is past its expiry at the given time.
func (c *Challenge) Expired(now time.Time) bool { return !now.Before(c.ExpiresAt) }

// Profile is the mutable player aggregate. It is a cache over the workout
// history: Recalculate must always be able to rebuild level, xp, stats and
// ranks from the history alone.
type Profile struct {
	Level       int               `json:"level"`
	XP          float64           `json:"xp"`
	NextLevelXP float64           `json:"next_level_xp"`
	TotalXP     float64           `json:"total_xp"`
	Stats       catalog.StatBlock `json:"stats"`
	Coins       int               `json:"coins"`

	Best1RM           map[string]float64            `json:"best_1rm"`
	Baselines         map[string]float64            `json:"baselines"`
	LastLogged        map[string]time.Time          `json:"last_logged"`
	Ranks             map[catalog.FocusGroup]int    `json:"ranks"`
	FirstGrantApplied map[string]struct{}           `json:"first_grant_applied"`
	Streaks           map[catalog.FocusGroup]int    `json:"streaks"`
	LastStreakDay     map[catalog.FocusGroup]string `json:"last_streak_day"` // yyyy-mm-dd

	Chests     []TreasureChest  `json:"treasure_chests"`
	Inventory  []TreasureReward `json:"inventory"`
	Challenges []Challenge      `json:"challenges"`

	BodyweightKg   float64                              `json:"bodyweight_kg"`
	Class          ClassID                              `json:"class"`
	ChallengePrefs map[catalog.FocusGroup]ChallengeUnit `json:"challenge_prefs"`
	LastDailyGen   string                               `json:"last_daily_gen"`  // yyyy-mm-dd
	LastWeeklyGen  string                               `json:"last_weekly_gen"` // yyyy-"Www"
}

// NewProfile returns a fresh level-1 profile with default ranks and settings.
func NewProfile() *Profile {
	p := &Profile{
		Level:             1,
		NextLevelXP:       xpNeeded(1),
		Best1RM:           map[string]float64{},
		Baselines:         map[string]float64{},
		LastLogged:        map[string]time.Time{},
		Ranks:             map[catalog.FocusGroup]int{},
		FirstGrantApplied: map[string]struct{}{},
		Streaks:           map[catalog.FocusGroup]int{},
		LastStreakDay:     map[catalog.FocusGroup]string{},
		BodyweightKg:      DefaultBodyweightKg,
		Class:             DefaultClass,
		ChallengePrefs:    map[catalog.FocusGroup]ChallengeUnit{},
	}
	for _, f := range catalog.FocusGroups {
		p.Ranks[f] = 1
	}
	return p
}

// Bodyweight returns the configured bodyweight or the documented default.
func (p *Profile) Bodyweight() float64 {
	if p.BodyweightKg <= 0 {
		return DefaultBodyweightKg
	}
	return p.BodyweightKg
}

// Snapshot is the persisted shape: the profile cache plus the source-of-truth
// history. It round-trips through JSON without loss beyond float64 precision.
type Snapshot struct {
	User    *Profile       `json:"user"`
	History []WorkoutEntry `json:"history"`
}
