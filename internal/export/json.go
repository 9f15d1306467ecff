// Package export writes workout history and full snapshots to JSON and CSV.
package export

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/devon4899/FRPG/internal/catalog"
	"github.com/devon4899/FRPG/internal/engine"
)

type jsonExport struct {
	ExportedAt string      `json:"exported_at"`
	Count      int         `json:"count"`
	Workouts   []jsonEntry `json:"workouts"`
}

type jsonEntry struct {
	ID          string   `json:"id"`
	Timestamp   string   `json:"timestamp"`
	Category    string   `json:"category"`
	Exercise    string   `json:"exercise"`
	Reps        *int     `json:"reps,omitempty"`
	WeightKg    *float64 `json:"weight_kg,omitempty"`
	DurationMin *float64 `json:"duration_min,omitempty"`
	DistanceKm  *float64 `json:"distance_km,omitempty"`
	ExpGained   float64  `json:"exp_gained"`
	PrevLevel   int      `json:"prev_level"`
	NewLevel    int      `json:"new_level"`
	Est1RM      *float64 `json:"est_1rm,omitempty"`
	StatTotal   float64  `json:"stat_gain_total"`
}

// ToJSON writes the workout history to path as pretty-printed JSON.
func ToJSON(history []engine.WorkoutEntry, path string) error {
	export := jsonExport{
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
		Count:      len(history),
	}

	for _, w := range history {
		name := w.Category
		if ex, ok := catalog.Get(w.Category); ok {
			name = ex.Name
		}
		export.Workouts = append(export.Workouts, jsonEntry{
			ID:          w.ID,
			Timestamp:   w.Timestamp.Local().Format(time.RFC3339),
			Category:    w.Category,
			Exercise:    name,
			Reps:        w.Reps,
			WeightKg:    w.WeightKg,
			DurationMin: w.DurationMin,
			DistanceKm:  w.DistanceKm,
			ExpGained:   w.ExpGained,
			PrevLevel:   w.PrevLevel,
			NewLevel:    w.NewLevel,
			Est1RM:      w.Est1RM,
			StatTotal:   w.StatGains.Total(),
		})
	}

	data, err := json.MarshalIndent(export, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write json file: %w", err)
	}
	return nil
}

// SnapshotToJSON writes the full {user, history} snapshot. The output
// round-trips through SnapshotFromJSON without loss beyond float64 precision.
func SnapshotToJSON(snap engine.Snapshot, path string) error {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write snapshot file: %w", err)
	}
	return nil
}

// SnapshotFromJSON reads a snapshot written by SnapshotToJSON.
func SnapshotFromJSON(path string) (engine.Snapshot, error) {
	var snap engine.Snapshot
	data, err := os.ReadFile(path)
	if err != nil {
		return snap, fmt.Errorf("read snapshot file: %w", err)
	}
	if err := json.Unmarshal(data, &snap); err != nil {
		return snap, fmt.Errorf("unmarshal snapshot: %w", err)
	}
	return snap, nil
}
