package export

import (
	"encoding/csv"
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/devon4899/FRPG/internal/engine"
)

func sampleHistory() []engine.WorkoutEntry {
	now := time.Now().UTC()
	reps := 5
	weight := 80.0
	est := 95.3
	dur := 30.0
	dist := 5.0

	return []engine.WorkoutEntry{
		{
			ID:        "w1",
			Timestamp: now.Add(-48 * time.Hour),
			Category:  "bench_press",
			Reps:      &reps,
			WeightKg:  &weight,
			ExpGained: 11.5,
			PrevLevel: 1,
			NewLevel:  1,
			Est1RM:    &est,
		},
		{
			ID:          "w2",
			Timestamp:   now.Add(-24 * time.Hour),
			Category:    "running",
			DurationMin: &dur,
			DistanceKm:  &dist,
			ExpGained:   14.2,
			PrevLevel:   1,
			NewLevel:    1,
		},
		{
			ID:        "w3",
			Timestamp: now,
			Category:  "long_gone_exercise", // removed category still exports
			ExpGained: 9.0,
			PrevLevel: 1,
			NewLevel:  1,
		},
	}
}

// ============================================================
// JSON
// ============================================================

func TestToJSON(t *testing.T) {
	history := sampleHistory()
	path := filepath.Join(t.TempDir(), "export.json")

	if err := ToJSON(history, path); err != nil {
		t.Fatalf("ToJSON: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	var out jsonExport
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if out.Count != 3 || len(out.Workouts) != 3 {
		t.Fatalf("expected 3 workouts, got count=%d len=%d", out.Count, len(out.Workouts))
	}
	if out.Workouts[0].Exercise != "Bench Press" {
		t.Fatalf("expected display name, got %q", out.Workouts[0].Exercise)
	}
	if out.Workouts[2].Exercise != "long_gone_exercise" {
		t.Fatalf("unknown category should fall back to id, got %q", out.Workouts[2].Exercise)
	}
	if out.Workouts[0].Est1RM == nil || *out.Workouts[0].Est1RM != 95.3 {
		t.Fatal("est1RM lost in export")
	}
}

// ============================================================
// CSV
// ============================================================

func TestToCSV(t *testing.T) {
	history := sampleHistory()
	path := filepath.Join(t.TempDir(), "export.csv")

	if err := ToCSV(history, path); err != nil {
		t.Fatalf("ToCSV: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("invalid csv: %v", err)
	}
	if len(rows) != 4 { // header + 3 entries
		t.Fatalf("expected 4 rows, got %d", len(rows))
	}
	if rows[0][2] != "Exercise" {
		t.Fatalf("unexpected header: %v", rows[0])
	}
	if rows[1][2] != "Bench Press" || rows[1][3] != "5" {
		t.Fatalf("unexpected first row: %v", rows[1])
	}
	if rows[2][3] != "" {
		t.Fatalf("missing reps should be empty, got %q", rows[2][3])
	}
	if !strings.HasPrefix(rows[2][5], "30.00") {
		t.Fatalf("duration not exported: %v", rows[2])
	}
}

// ============================================================
// Snapshot round trip
// ============================================================

func TestSnapshotRoundTrip(t *testing.T) {
	e := engine.New(engine.Snapshot{}, 11)
	reps, weight := 5, 80.0
	if _, _, err := e.RecordWorkout(engine.WorkoutInput{
		Category: "bench_press", Reps: &reps, WeightKg: &weight,
	}); err != nil {
		t.Fatal(err)
	}

	want := e.Snapshot()
	path := filepath.Join(t.TempDir(), "snapshot.json")
	if err := SnapshotToJSON(want, path); err != nil {
		t.Fatal(err)
	}

	got, err := SnapshotFromJSON(path)
	if err != nil {
		t.Fatal(err)
	}

	if got.User.Level != want.User.Level {
		t.Fatalf("level mismatch: %d vs %d", got.User.Level, want.User.Level)
	}
	if math.Abs(got.User.XP-want.User.XP) > 1e-9 {
		t.Fatalf("xp mismatch: %v vs %v", got.User.XP, want.User.XP)
	}
	if got.User.Stats != want.User.Stats {
		t.Fatalf("stats mismatch: %+v vs %+v", got.User.Stats, want.User.Stats)
	}
	if len(got.History) != 1 || got.History[0].ID != want.History[0].ID {
		t.Fatalf("history mismatch: %+v", got.History)
	}
	if got.History[0].StatGains != want.History[0].StatGains {
		t.Fatal("stat gains drifted through serialization")
	}
}

func TestSnapshotFromJSONMissingFile(t *testing.T) {
	if _, err := SnapshotFromJSON(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
