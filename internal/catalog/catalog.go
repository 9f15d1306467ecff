// Package catalog holds the static exercise reference data: focus groups,
// formula families, stat-weight vectors, first-time grants and skill-placement
// constants. Everything here is immutable at runtime; tuning lives in these
// tables, not in control flow.
package catalog

// FocusGroup is one of the six macro training categories used for quest
// generation and reward multipliers.
type FocusGroup string

const (
	FocusStrength    FocusGroup = "strength"
	FocusHypertrophy FocusGroup = "hypertrophy"
	FocusEndurance   FocusGroup = "endurance"
	FocusExplosive   FocusGroup = "explosive"
	FocusMobility    FocusGroup = "mobility"
	FocusBodyweight  FocusGroup = "bodyweight"
)

// FocusGroups lists all groups in display order.
var FocusGroups = []FocusGroup{
	FocusStrength, FocusHypertrophy, FocusEndurance,
	FocusExplosive, FocusMobility, FocusBodyweight,
}

// Family tags the performance formula used for an exercise.
type Family string

const (
	FamilyOneRepMax      Family = "one_rep_max"     // compound lifts, Brzycki estimate
	FamilyTonnage        Family = "tonnage"         // loaded accessories, weight x reps
	FamilyBodyweightReps Family = "bodyweight_reps" // calisthenics, optional added load
	FamilyTimedHold      Family = "timed_hold"      // planks and other static holds
	FamilyExplosiveReps  Family = "explosive_reps"  // kettlebell swings, slams
	FamilySprint         Family = "sprint"          // short all-out efforts
	FamilyPacedEndurance Family = "paced_endurance" // run/cycle/row/swim
	FamilyConditioning   Family = "conditioning"    // duration-dominant mixed work
	FamilyMobility       Family = "mobility"        // pure consistency signal
)

// StatBlock is a six-dimension attribute vector. It doubles as the stat-weight
// and first-time-grant vector type in this package and as profile attribute
// state in the engine.
type StatBlock struct {
	Size      float64 `json:"size"`
	Strength  float64 `json:"strength"`
	Dexterity float64 `json:"dexterity"`
	Agility   float64 `json:"agility"`
	Endurance float64 `json:"endurance"`
	Vitality  float64 `json:"vitality"`
}

// Add returns the component-wise sum of s and o.
func (s StatBlock) Add(o StatBlock) StatBlock {
	return StatBlock{
		Size:      s.Size + o.Size,
		Strength:  s.Strength + o.Strength,
		Dexterity: s.Dexterity + o.Dexterity,
		Agility:   s.Agility + o.Agility,
		Endurance: s.Endurance + o.Endurance,
		Vitality:  s.Vitality + o.Vitality,
	}
}

// Scale returns s with every component multiplied by f.
func (s StatBlock) Scale(f float64) StatBlock {
	return StatBlock{
		Size:      s.Size * f,
		Strength:  s.Strength * f,
		Dexterity: s.Dexterity * f,
		Agility:   s.Agility * f,
		Endurance: s.Endurance * f,
		Vitality:  s.Vitality * f,
	}
}

// Total returns the sum of all six components.
func (s StatBlock) Total() float64 {
	return s.Size + s.Strength + s.Dexterity + s.Agility + s.Endurance + s.Vitality
}

// Components returns the six values in canonical order
// (size, strength, dexterity, agility, endurance, vitality).
func (s StatBlock) Components() [6]float64 {
	return [6]float64{s.Size, s.Strength, s.Dexterity, s.Agility, s.Endurance, s.Vitality}
}

// FromComponents builds a StatBlock from canonical-order values.
func FromComponents(c [6]float64) StatBlock {
	return StatBlock{c[0], c[1], c[2], c[3], c[4], c[5]}
}

// StatNames are the display names in canonical component order.
var StatNames = [6]string{"Size", "Strength", "Dexterity", "Agility", "Endurance", "Vitality"}

// Anchor is one point of a ratio-to-level placement curve.
type Anchor struct {
	Ratio float64 // est1RM / bodyweight
	Level float64 // absolute skill level at that ratio
}

// Placement carries the skill-placement tunables for one exercise. Anchors is
// non-empty only for 1RM-eligible lifts; Scale/Alpha drive the saturating
// exponential used for everything else.
type Placement struct {
	Anchors []Anchor
	Scale   float64
	Alpha   float64
}

// Exercise is one immutable catalog entry.
type Exercise struct {
	ID         string
	Name       string
	Focus      FocusGroup
	Family     Family
	Weights    StatBlock // generally sums to ~1
	FirstGrant StatBlock // one-time stat injection on first-ever log
	OneRepMax  bool
	Placement  Placement
}

// Get returns the exercise with the given id.
func Get(id string) (Exercise, bool) {
	ex, ok := byID[id]
	return ex, ok
}

// All returns every exercise in catalog order.
func All() []Exercise {
	out := make([]Exercise, len(exercises))
	copy(out, exercises)
	return out
}

// ByFocus returns the exercises belonging to one focus group, in catalog order.
func ByFocus(f FocusGroup) []Exercise {
	var out []Exercise
	for _, ex := range exercises {
		if ex.Focus == f {
			out = append(out, ex)
		}
	}
	return out
}

var byID = func() map[string]Exercise {
	m := make(map[string]Exercise, len(exercises))
	for _, ex := range exercises {
		m[ex.ID] = ex
	}
	return m
}()
