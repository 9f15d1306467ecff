package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"time"

	"github.com/devon4899/FRPG/internal/catalog"
	"github.com/devon4899/FRPG/internal/engine"
)

func ToCSV(history []engine.WorkoutEntry, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	// Header
	if err := w.Write([]string{
		"ID", "Timestamp", "Exercise", "Reps", "Weight (kg)",
		"Duration (min)", "Distance (km)", "XP", "Level", "Est 1RM",
	}); err != nil {
		return err
	}

	for _, e := range history {
		name := e.Category
		if ex, ok := catalog.Get(e.Category); ok {
			name = ex.Name
		}

		row := []string{
			e.ID,
			e.Timestamp.Local().Format(time.RFC3339),
			name,
			optInt(e.Reps),
			optFloat(e.WeightKg),
			optFloat(e.DurationMin),
			optFloat(e.DistanceKm),
			fmt.Sprintf("%.1f", e.ExpGained),
			fmt.Sprintf("%d", e.NewLevel),
			optFloat(e.Est1RM),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}

func optInt(p *int) string {
	if p == nil {
		return ""
	}
	return fmt.Sprintf("%d", *p)
}

func optFloat(p *float64) string {
	if p == nil {
		return ""
	}
	return fmt.Sprintf("%.2f", *p)
}
