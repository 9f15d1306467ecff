package catalog

// The exercise table. Weight vectors steer attribute gains (roughly summing to
// one); first-grant vectors are the one-time stat injection applied the first
// time a category is ever logged. Placement constants are tuned by hand, not
// derived from strength standards.

var exercises = []Exercise{
	// --- 1RM-eligible compound lifts ---
	{
		ID: "squat", Name: "Back Squat", Focus: FocusStrength, Family: FamilyOneRepMax, OneRepMax: true,
		Weights:    StatBlock{Size: 0.25, Strength: 0.40, Dexterity: 0.05, Agility: 0.05, Endurance: 0.10, Vitality: 0.15},
		FirstGrant: StatBlock{Size: 1.0, Strength: 1.4, Dexterity: 0.2, Agility: 0.2, Endurance: 0.4, Vitality: 0.6},
		Placement: Placement{Anchors: []Anchor{
			{0.75, 20}, {1.0, 35}, {1.25, 50}, {1.5, 62}, {1.75, 72}, {2.0, 80}, {2.5, 92},
		}},
	},
	{
		ID: "front_squat", Name: "Front Squat", Focus: FocusStrength, Family: FamilyOneRepMax, OneRepMax: true,
		Weights:    StatBlock{Size: 0.20, Strength: 0.40, Dexterity: 0.15, Agility: 0.05, Endurance: 0.08, Vitality: 0.12},
		FirstGrant: StatBlock{Size: 0.8, Strength: 1.3, Dexterity: 0.5, Agility: 0.2, Endurance: 0.3, Vitality: 0.5},
		Placement: Placement{Anchors: []Anchor{
			{0.6, 20}, {0.85, 35}, {1.1, 50}, {1.35, 65}, {1.6, 78}, {1.85, 90},
		}},
	},
	{
		ID: "deadlift", Name: "Deadlift", Focus: FocusStrength, Family: FamilyOneRepMax, OneRepMax: true,
		Weights:    StatBlock{Size: 0.25, Strength: 0.45, Dexterity: 0.05, Agility: 0.03, Endurance: 0.07, Vitality: 0.15},
		FirstGrant: StatBlock{Size: 1.1, Strength: 1.6, Dexterity: 0.2, Agility: 0.1, Endurance: 0.3, Vitality: 0.6},
		Placement: Placement{Anchors: []Anchor{
			{1.0, 25}, {1.25, 38}, {1.5, 50}, {1.75, 60}, {2.0, 70}, {2.5, 85}, {3.0, 95},
		}},
	},
	{
		ID: "romanian_deadlift", Name: "Romanian Deadlift", Focus: FocusStrength, Family: FamilyOneRepMax, OneRepMax: true,
		Weights:    StatBlock{Size: 0.25, Strength: 0.40, Dexterity: 0.08, Agility: 0.04, Endurance: 0.08, Vitality: 0.15},
		FirstGrant: StatBlock{Size: 0.9, Strength: 1.3, Dexterity: 0.3, Agility: 0.1, Endurance: 0.3, Vitality: 0.5},
		Placement: Placement{Anchors: []Anchor{
			{0.75, 20}, {1.0, 35}, {1.25, 48}, {1.5, 60}, {1.75, 72}, {2.0, 82},
		}},
	},
	{
		ID: "bench_press", Name: "Bench Press", Focus: FocusStrength, Family: FamilyOneRepMax, OneRepMax: true,
		Weights:    StatBlock{Size: 0.30, Strength: 0.40, Dexterity: 0.08, Agility: 0.02, Endurance: 0.08, Vitality: 0.12},
		FirstGrant: StatBlock{Size: 1.0, Strength: 1.2, Dexterity: 0.3, Agility: 0.1, Endurance: 0.2, Vitality: 0.4},
		Placement: Placement{Anchors: []Anchor{
			{0.5, 20}, {0.75, 35}, {1.0, 50}, {1.25, 65}, {1.5, 78}, {1.75, 88}, {2.0, 95},
		}},
	},
	{
		ID: "overhead_press", Name: "Overhead Press", Focus: FocusStrength, Family: FamilyOneRepMax, OneRepMax: true,
		Weights:    StatBlock{Size: 0.25, Strength: 0.40, Dexterity: 0.12, Agility: 0.05, Endurance: 0.06, Vitality: 0.12},
		FirstGrant: StatBlock{Size: 0.8, Strength: 1.1, Dexterity: 0.4, Agility: 0.2, Endurance: 0.2, Vitality: 0.4},
		Placement: Placement{Anchors: []Anchor{
			{0.35, 20}, {0.5, 35}, {0.65, 50}, {0.8, 65}, {0.95, 78}, {1.1, 90},
		}},
	},
	{
		ID: "power_clean", Name: "Power Clean", Focus: FocusExplosive, Family: FamilyOneRepMax, OneRepMax: true,
		Weights:    StatBlock{Size: 0.12, Strength: 0.28, Dexterity: 0.20, Agility: 0.25, Endurance: 0.05, Vitality: 0.10},
		FirstGrant: StatBlock{Size: 0.5, Strength: 1.0, Dexterity: 0.8, Agility: 1.0, Endurance: 0.2, Vitality: 0.4},
		Placement: Placement{Anchors: []Anchor{
			{0.5, 20}, {0.7, 35}, {0.9, 50}, {1.1, 65}, {1.3, 80}, {1.5, 90},
		}},
	},

	// --- Loaded accessory lifts (tonnage) ---
	{
		ID: "barbell_row", Name: "Barbell Row", Focus: FocusHypertrophy, Family: FamilyTonnage,
		Weights:    StatBlock{Size: 0.40, Strength: 0.30, Dexterity: 0.08, Agility: 0.02, Endurance: 0.10, Vitality: 0.10},
		FirstGrant: StatBlock{Size: 1.2, Strength: 0.8, Dexterity: 0.2, Agility: 0.1, Endurance: 0.3, Vitality: 0.3},
		Placement:  Placement{Scale: 2400, Alpha: 0.9},
	},
	{
		ID: "lat_pulldown", Name: "Lat Pulldown", Focus: FocusHypertrophy, Family: FamilyTonnage,
		Weights:    StatBlock{Size: 0.45, Strength: 0.25, Dexterity: 0.08, Agility: 0.02, Endurance: 0.10, Vitality: 0.10},
		FirstGrant: StatBlock{Size: 1.2, Strength: 0.7, Dexterity: 0.2, Agility: 0.1, Endurance: 0.3, Vitality: 0.3},
		Placement:  Placement{Scale: 2200, Alpha: 0.9},
	},
	{
		ID: "leg_press", Name: "Leg Press", Focus: FocusHypertrophy, Family: FamilyTonnage,
		Weights:    StatBlock{Size: 0.45, Strength: 0.30, Dexterity: 0.03, Agility: 0.02, Endurance: 0.10, Vitality: 0.10},
		FirstGrant: StatBlock{Size: 1.3, Strength: 0.9, Dexterity: 0.1, Agility: 0.1, Endurance: 0.3, Vitality: 0.3},
		Placement:  Placement{Scale: 5000, Alpha: 0.9},
	},
	{
		ID: "dumbbell_curl", Name: "Dumbbell Curl", Focus: FocusHypertrophy, Family: FamilyTonnage,
		Weights:    StatBlock{Size: 0.55, Strength: 0.25, Dexterity: 0.06, Agility: 0.02, Endurance: 0.06, Vitality: 0.06},
		FirstGrant: StatBlock{Size: 1.4, Strength: 0.6, Dexterity: 0.2, Agility: 0.1, Endurance: 0.2, Vitality: 0.2},
		Placement:  Placement{Scale: 600, Alpha: 0.9},
	},
	{
		ID: "triceps_pushdown", Name: "Triceps Pushdown", Focus: FocusHypertrophy, Family: FamilyTonnage,
		Weights:    StatBlock{Size: 0.55, Strength: 0.25, Dexterity: 0.06, Agility: 0.02, Endurance: 0.06, Vitality: 0.06},
		FirstGrant: StatBlock{Size: 1.3, Strength: 0.6, Dexterity: 0.2, Agility: 0.1, Endurance: 0.2, Vitality: 0.2},
		Placement:  Placement{Scale: 800, Alpha: 0.9},
	},

	// --- Bodyweight / skill reps ---
	{
		ID: "push_up", Name: "Push-up", Focus: FocusBodyweight, Family: FamilyBodyweightReps,
		Weights:    StatBlock{Size: 0.20, Strength: 0.22, Dexterity: 0.18, Agility: 0.10, Endurance: 0.18, Vitality: 0.12},
		FirstGrant: StatBlock{Size: 0.6, Strength: 0.7, Dexterity: 0.6, Agility: 0.4, Endurance: 0.6, Vitality: 0.4},
		Placement:  Placement{Scale: 35, Alpha: 1.3},
	},
	{
		ID: "pull_up", Name: "Pull-up", Focus: FocusBodyweight, Family: FamilyBodyweightReps,
		Weights:    StatBlock{Size: 0.18, Strength: 0.30, Dexterity: 0.20, Agility: 0.10, Endurance: 0.12, Vitality: 0.10},
		FirstGrant: StatBlock{Size: 0.5, Strength: 0.9, Dexterity: 0.7, Agility: 0.4, Endurance: 0.4, Vitality: 0.3},
		Placement:  Placement{Scale: 15, Alpha: 1.2},
	},
	{
		ID: "dip", Name: "Dip", Focus: FocusBodyweight, Family: FamilyBodyweightReps,
		Weights:    StatBlock{Size: 0.22, Strength: 0.28, Dexterity: 0.18, Agility: 0.08, Endurance: 0.14, Vitality: 0.10},
		FirstGrant: StatBlock{Size: 0.6, Strength: 0.8, Dexterity: 0.6, Agility: 0.3, Endurance: 0.4, Vitality: 0.3},
		Placement:  Placement{Scale: 20, Alpha: 1.2},
	},
	{
		ID: "pistol_squat", Name: "Pistol Squat", Focus: FocusBodyweight, Family: FamilyBodyweightReps,
		Weights:    StatBlock{Size: 0.12, Strength: 0.22, Dexterity: 0.28, Agility: 0.22, Endurance: 0.08, Vitality: 0.08},
		FirstGrant: StatBlock{Size: 0.3, Strength: 0.7, Dexterity: 0.9, Agility: 0.8, Endurance: 0.3, Vitality: 0.2},
		Placement:  Placement{Scale: 12, Alpha: 1.2},
	},

	// --- Timed holds ---
	{
		ID: "plank", Name: "Plank", Focus: FocusBodyweight, Family: FamilyTimedHold,
		Weights:    StatBlock{Size: 0.10, Strength: 0.15, Dexterity: 0.15, Agility: 0.08, Endurance: 0.32, Vitality: 0.20},
		FirstGrant: StatBlock{Size: 0.3, Strength: 0.4, Dexterity: 0.4, Agility: 0.2, Endurance: 0.9, Vitality: 0.6},
		Placement:  Placement{Scale: 4, Alpha: 1.1},
	},
	{
		ID: "wall_sit", Name: "Wall Sit", Focus: FocusBodyweight, Family: FamilyTimedHold,
		Weights:    StatBlock{Size: 0.12, Strength: 0.18, Dexterity: 0.08, Agility: 0.06, Endurance: 0.34, Vitality: 0.22},
		FirstGrant: StatBlock{Size: 0.3, Strength: 0.5, Dexterity: 0.2, Agility: 0.2, Endurance: 0.9, Vitality: 0.6},
		Placement:  Placement{Scale: 3, Alpha: 1.1},
	},
	{
		ID: "dead_hang", Name: "Dead Hang", Focus: FocusBodyweight, Family: FamilyTimedHold,
		Weights:    StatBlock{Size: 0.12, Strength: 0.22, Dexterity: 0.16, Agility: 0.06, Endurance: 0.26, Vitality: 0.18},
		FirstGrant: StatBlock{Size: 0.3, Strength: 0.6, Dexterity: 0.4, Agility: 0.2, Endurance: 0.7, Vitality: 0.5},
		Placement:  Placement{Scale: 2.5, Alpha: 1.1},
	},

	// --- Explosive loaded reps ---
	{
		ID: "kettlebell_swing", Name: "Kettlebell Swing", Focus: FocusExplosive, Family: FamilyExplosiveReps,
		Weights:    StatBlock{Size: 0.10, Strength: 0.20, Dexterity: 0.15, Agility: 0.30, Endurance: 0.15, Vitality: 0.10},
		FirstGrant: StatBlock{Size: 0.3, Strength: 0.6, Dexterity: 0.5, Agility: 1.0, Endurance: 0.5, Vitality: 0.3},
		Placement:  Placement{Scale: 40, Alpha: 1.1},
	},
	{
		ID: "medicine_ball_slam", Name: "Medicine Ball Slam", Focus: FocusExplosive, Family: FamilyExplosiveReps,
		Weights:    StatBlock{Size: 0.10, Strength: 0.18, Dexterity: 0.17, Agility: 0.32, Endurance: 0.13, Vitality: 0.10},
		FirstGrant: StatBlock{Size: 0.3, Strength: 0.5, Dexterity: 0.6, Agility: 1.0, Endurance: 0.4, Vitality: 0.3},
		Placement:  Placement{Scale: 35, Alpha: 1.1},
	},
	{
		ID: "box_jump", Name: "Box Jump", Focus: FocusExplosive, Family: FamilyExplosiveReps,
		Weights:    StatBlock{Size: 0.08, Strength: 0.15, Dexterity: 0.22, Agility: 0.38, Endurance: 0.09, Vitality: 0.08},
		FirstGrant: StatBlock{Size: 0.2, Strength: 0.5, Dexterity: 0.7, Agility: 1.2, Endurance: 0.3, Vitality: 0.2},
		Placement:  Placement{Scale: 25, Alpha: 1.1},
	},

	// --- Sprint ---
	{
		ID: "sprint", Name: "Sprint", Focus: FocusExplosive, Family: FamilySprint,
		Weights:    StatBlock{Size: 0.05, Strength: 0.10, Dexterity: 0.15, Agility: 0.40, Endurance: 0.20, Vitality: 0.10},
		FirstGrant: StatBlock{Size: 0.2, Strength: 0.3, Dexterity: 0.5, Agility: 1.3, Endurance: 0.6, Vitality: 0.3},
		Placement:  Placement{Scale: 24, Alpha: 1.6},
	},

	// --- Paced endurance ---
	{
		ID: "running", Name: "Running", Focus: FocusEndurance, Family: FamilyPacedEndurance,
		Weights:    StatBlock{Size: 0.03, Strength: 0.05, Dexterity: 0.07, Agility: 0.15, Endurance: 0.45, Vitality: 0.25},
		FirstGrant: StatBlock{Size: 0.1, Strength: 0.2, Dexterity: 0.2, Agility: 0.5, Endurance: 1.4, Vitality: 0.8},
		Placement:  Placement{Scale: 20, Alpha: 1.4},
	},
	{
		ID: "cycling", Name: "Cycling", Focus: FocusEndurance, Family: FamilyPacedEndurance,
		Weights:    StatBlock{Size: 0.04, Strength: 0.08, Dexterity: 0.05, Agility: 0.13, Endurance: 0.45, Vitality: 0.25},
		FirstGrant: StatBlock{Size: 0.1, Strength: 0.3, Dexterity: 0.2, Agility: 0.4, Endurance: 1.4, Vitality: 0.8},
		Placement:  Placement{Scale: 45, Alpha: 1.4},
	},
	{
		ID: "rowing", Name: "Rowing", Focus: FocusEndurance, Family: FamilyPacedEndurance,
		Weights:    StatBlock{Size: 0.08, Strength: 0.12, Dexterity: 0.08, Agility: 0.10, Endurance: 0.40, Vitality: 0.22},
		FirstGrant: StatBlock{Size: 0.3, Strength: 0.4, Dexterity: 0.2, Agility: 0.3, Endurance: 1.2, Vitality: 0.7},
		Placement:  Placement{Scale: 20, Alpha: 1.4},
	},
	{
		ID: "swimming", Name: "Swimming", Focus: FocusEndurance, Family: FamilyPacedEndurance,
		Weights:    StatBlock{Size: 0.06, Strength: 0.10, Dexterity: 0.14, Agility: 0.13, Endurance: 0.37, Vitality: 0.20},
		FirstGrant: StatBlock{Size: 0.2, Strength: 0.3, Dexterity: 0.5, Agility: 0.4, Endurance: 1.1, Vitality: 0.7},
		Placement:  Placement{Scale: 7, Alpha: 1.4},
	},

	// --- Duration-dominant conditioning ---
	{
		ID: "stair_climber", Name: "Stair Climber", Focus: FocusEndurance, Family: FamilyConditioning,
		Weights:    StatBlock{Size: 0.06, Strength: 0.10, Dexterity: 0.04, Agility: 0.12, Endurance: 0.43, Vitality: 0.25},
		FirstGrant: StatBlock{Size: 0.2, Strength: 0.3, Dexterity: 0.1, Agility: 0.4, Endurance: 1.3, Vitality: 0.8},
		Placement:  Placement{Scale: 25, Alpha: 1.0},
	},
	{
		ID: "battle_ropes", Name: "Battle Ropes", Focus: FocusEndurance, Family: FamilyConditioning,
		Weights:    StatBlock{Size: 0.10, Strength: 0.14, Dexterity: 0.10, Agility: 0.16, Endurance: 0.32, Vitality: 0.18},
		FirstGrant: StatBlock{Size: 0.3, Strength: 0.4, Dexterity: 0.3, Agility: 0.5, Endurance: 1.0, Vitality: 0.5},
		Placement:  Placement{Scale: 15, Alpha: 1.0},
	},
	{
		ID: "jump_rope", Name: "Jump Rope", Focus: FocusEndurance, Family: FamilyConditioning,
		Weights:    StatBlock{Size: 0.04, Strength: 0.06, Dexterity: 0.20, Agility: 0.25, Endurance: 0.28, Vitality: 0.17},
		FirstGrant: StatBlock{Size: 0.1, Strength: 0.2, Dexterity: 0.7, Agility: 0.8, Endurance: 0.9, Vitality: 0.5},
		Placement:  Placement{Scale: 20, Alpha: 1.0},
	},
	{
		ID: "sled_push", Name: "Sled Push", Focus: FocusEndurance, Family: FamilyConditioning,
		Weights:    StatBlock{Size: 0.14, Strength: 0.22, Dexterity: 0.04, Agility: 0.14, Endurance: 0.28, Vitality: 0.18},
		FirstGrant: StatBlock{Size: 0.4, Strength: 0.7, Dexterity: 0.1, Agility: 0.4, Endurance: 0.9, Vitality: 0.5},
		Placement:  Placement{Scale: 12, Alpha: 1.0},
	},

	// --- Mobility / prehab ---
	{
		ID: "yoga", Name: "Yoga", Focus: FocusMobility, Family: FamilyMobility,
		Weights:    StatBlock{Size: 0.02, Strength: 0.06, Dexterity: 0.30, Agility: 0.22, Endurance: 0.15, Vitality: 0.25},
		FirstGrant: StatBlock{Size: 0.1, Strength: 0.2, Dexterity: 1.0, Agility: 0.7, Endurance: 0.5, Vitality: 0.8},
		Placement:  Placement{Scale: 40, Alpha: 1.0},
	},
	{
		ID: "static_stretching", Name: "Static Stretching", Focus: FocusMobility, Family: FamilyMobility,
		Weights:    StatBlock{Size: 0.02, Strength: 0.04, Dexterity: 0.34, Agility: 0.20, Endurance: 0.12, Vitality: 0.28},
		FirstGrant: StatBlock{Size: 0.1, Strength: 0.1, Dexterity: 1.1, Agility: 0.6, Endurance: 0.4, Vitality: 0.9},
		Placement:  Placement{Scale: 30, Alpha: 1.0},
	},
	{
		ID: "foam_rolling", Name: "Foam Rolling", Focus: FocusMobility, Family: FamilyMobility,
		Weights:    StatBlock{Size: 0.02, Strength: 0.04, Dexterity: 0.26, Agility: 0.16, Endurance: 0.14, Vitality: 0.38},
		FirstGrant: StatBlock{Size: 0.1, Strength: 0.1, Dexterity: 0.8, Agility: 0.5, Endurance: 0.4, Vitality: 1.1},
		Placement:  Placement{Scale: 25, Alpha: 1.0},
	},
}
