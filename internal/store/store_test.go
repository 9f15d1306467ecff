package store

import (
	"math"
	"strings"
	"testing"

	"github.com/devon4899/FRPG/internal/catalog"
	"github.com/devon4899/FRPG/internal/engine"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewMemory()
	if err != nil {
		t.Fatalf("new memory store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// ============================================================
// Store initialization
// ============================================================

func TestNewMemory(t *testing.T) {
	s, err := NewMemory()
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	var version int
	s.db.QueryRow("PRAGMA user_version").Scan(&version)
	if version != 1 {
		t.Fatalf("expected user_version 1, got %d", version)
	}
}

func TestNewWithPath(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/sub/frpg.db"
	s, err := New(path)
	if err != nil {
		t.Fatal(err)
	}
	s.Close()

	// Reopen — should succeed and not re-migrate
	s2, err := New(path)
	if err != nil {
		t.Fatal(err)
	}
	s2.Close()
}

func TestDefaultDBPath(t *testing.T) {
	path, err := DefaultDBPath()
	if err != nil {
		t.Fatal(err)
	}
	if path == "" {
		t.Fatal("empty path")
	}
}

func TestMigrationIdempotent(t *testing.T) {
	s := newTestStore(t)
	if err := s.migrate(); err != nil {
		t.Fatalf("second migration failed: %v", err)
	}
}

// ============================================================
// Settings
// ============================================================

func TestSettings(t *testing.T) {
	s := newTestStore(t)

	if got := s.GetSettingDefault("rng_seed", "42"); got != "42" {
		t.Fatalf("expected default for empty seed, got %q", got)
	}
	if err := s.SetSetting("rng_seed", "1337"); err != nil {
		t.Fatal(err)
	}
	got, err := s.GetSetting("rng_seed")
	if err != nil || got != "1337" {
		t.Fatalf("expected 1337, got %q (%v)", got, err)
	}
	if got := s.GetSettingDefault("missing_key", "x"); got != "x" {
		t.Fatalf("expected fallback, got %q", got)
	}
}

// ============================================================
// Snapshot round trip
// ============================================================

func TestLoadEmptySnapshot(t *testing.T) {
	s := newTestStore(t)
	snap, err := s.LoadSnapshot()
	if err != nil {
		t.Fatal(err)
	}
	if snap.User == nil || snap.User.Level != 1 || len(snap.History) != 0 {
		t.Fatalf("expected fresh profile, got %+v", snap)
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	s := newTestStore(t)

	e := engine.New(engine.Snapshot{}, 7)
	reps, weight := 5, 80.0
	if _, _, err := e.RecordWorkout(engine.WorkoutInput{
		Category: "bench_press", Reps: &reps, WeightKg: &weight,
	}); err != nil {
		t.Fatal(err)
	}
	dur, dist := 30.0, 5.0
	if _, _, err := e.RecordWorkout(engine.WorkoutInput{
		Category: "running", DurationMin: &dur, DistanceKm: &dist,
	}); err != nil {
		t.Fatal(err)
	}
	e.SetChallengePreference(catalog.FocusStrength, engine.UnitSets)

	want := e.Snapshot()
	if err := s.SaveSnapshot(want); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := s.LoadSnapshot()
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if got.User.Level != want.User.Level || got.User.Coins != want.User.Coins {
		t.Fatalf("profile mismatch: got %+v want %+v", got.User, want.User)
	}
	if math.Abs(got.User.XP-want.User.XP) > 1e-9 {
		t.Fatalf("xp mismatch: %v vs %v", got.User.XP, want.User.XP)
	}
	if got.User.Stats != want.User.Stats {
		t.Fatalf("stats mismatch: %+v vs %+v", got.User.Stats, want.User.Stats)
	}
	if got.User.Class != want.User.Class {
		t.Fatalf("class mismatch: %v vs %v", got.User.Class, want.User.Class)
	}
	if got.User.ChallengePrefs[catalog.FocusStrength] != engine.UnitSets {
		t.Fatal("challenge preference lost")
	}

	if len(got.History) != len(want.History) {
		t.Fatalf("history length %d, want %d", len(got.History), len(want.History))
	}
	for i := range want.History {
		w, g := want.History[i], got.History[i]
		if g.ID != w.ID || g.Category != w.Category || !g.Timestamp.Equal(w.Timestamp) {
			t.Fatalf("entry %d mismatch: got %+v want %+v", i, g, w)
		}
		if g.ExpGained != w.ExpGained || g.StatGains != w.StatGains {
			t.Fatalf("entry %d derived mismatch: got %+v want %+v", i, g, w)
		}
		if (g.Est1RM == nil) != (w.Est1RM == nil) {
			t.Fatalf("entry %d est1RM presence mismatch", i)
		}
		if g.Est1RM != nil && math.Abs(*g.Est1RM-*w.Est1RM) > 1e-9 {
			t.Fatalf("entry %d est1RM %v, want %v", i, *g.Est1RM, *w.Est1RM)
		}
	}

	if len(got.User.Baselines) != len(want.User.Baselines) {
		t.Fatalf("baselines lost: %v vs %v", got.User.Baselines, want.User.Baselines)
	}
	if len(got.User.FirstGrantApplied) != 2 {
		t.Fatalf("first-grant markers lost: %v", got.User.FirstGrantApplied)
	}
	if len(got.User.Challenges) != len(want.User.Challenges) {
		t.Fatalf("challenges lost: %d vs %d", len(got.User.Challenges), len(want.User.Challenges))
	}
}

func TestSnapshotChestsRoundTrip(t *testing.T) {
	s := newTestStore(t)

	e := engine.New(engine.Snapshot{}, 3)
	// Log enough workouts to level up and earn at least one chest.
	reps := 20
	for i := 0; i < 12; i++ {
		if _, _, err := e.RecordWorkout(engine.WorkoutInput{Category: "push_up", Reps: &reps}); err != nil {
			t.Fatal(err)
		}
	}
	want := e.Snapshot()
	if len(want.User.Chests) == 0 {
		t.Fatal("expected at least one chest from level-ups")
	}

	if err := s.SaveSnapshot(want); err != nil {
		t.Fatal(err)
	}
	got, err := s.LoadSnapshot()
	if err != nil {
		t.Fatal(err)
	}

	if len(got.User.Chests) != len(want.User.Chests) {
		t.Fatalf("chest count %d, want %d", len(got.User.Chests), len(want.User.Chests))
	}
	for i := range want.User.Chests {
		w, g := want.User.Chests[i], got.User.Chests[i]
		if g.ID != w.ID || g.Tier != w.Tier || g.Opened != w.Opened {
			t.Fatalf("chest %d mismatch: got %+v want %+v", i, g, w)
		}
		if len(g.Rewards) != len(w.Rewards) {
			t.Fatalf("chest %d rewards %d, want %d", i, len(g.Rewards), len(w.Rewards))
		}
	}
}

func TestSaveOverwritesPrevious(t *testing.T) {
	s := newTestStore(t)

	e := engine.New(engine.Snapshot{}, 1)
	reps := 10
	if _, _, err := e.RecordWorkout(engine.WorkoutInput{Category: "pull_up", Reps: &reps}); err != nil {
		t.Fatal(err)
	}
	if err := s.SaveSnapshot(e.Snapshot()); err != nil {
		t.Fatal(err)
	}

	hist := e.History()
	if err := e.DeleteWorkout(hist[0].ID); err != nil {
		t.Fatal(err)
	}
	if err := s.SaveSnapshot(e.Snapshot()); err != nil {
		t.Fatal(err)
	}

	got, err := s.LoadSnapshot()
	if err != nil {
		t.Fatal(err)
	}
	if len(got.History) != 0 {
		t.Fatalf("expected empty history after delete+save, got %d", len(got.History))
	}
}

func TestLoadRejectsCorruptProfileColumn(t *testing.T) {
	s := newTestStore(t)

	e := engine.New(engine.Snapshot{}, 1)
	reps := 10
	if _, _, err := e.RecordWorkout(engine.WorkoutInput{Category: "pull_up", Reps: &reps}); err != nil {
		t.Fatal(err)
	}
	if err := s.SaveSnapshot(e.Snapshot()); err != nil {
		t.Fatal(err)
	}

	if _, err := s.db.Exec(`UPDATE profile SET baselines = '{broken' WHERE id = 1`); err != nil {
		t.Fatal(err)
	}

	_, err := s.LoadSnapshot()
	if err == nil {
		t.Fatal("expected an error for a corrupt baselines column")
	}
	if !strings.Contains(err.Error(), "baselines") {
		t.Fatalf("error should name the column: %v", err)
	}
}

func TestTimestampPrecision(t *testing.T) {
	s := newTestStore(t)

	e := engine.New(engine.Snapshot{}, 9)
	reps := 8
	entry, _, err := e.RecordWorkout(engine.WorkoutInput{Category: "dip", Reps: &reps})
	if err != nil {
		t.Fatal(err)
	}
	if err := s.SaveSnapshot(e.Snapshot()); err != nil {
		t.Fatal(err)
	}
	got, err := s.LoadSnapshot()
	if err != nil {
		t.Fatal(err)
	}
	if !got.History[0].Timestamp.Equal(entry.Timestamp) {
		t.Fatalf("timestamp drift: %v vs %v", got.History[0].Timestamp, entry.Timestamp)
	}
}
