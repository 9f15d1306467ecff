package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/devon4899/FRPG/internal/engine"
	"github.com/devon4899/FRPG/internal/store"
)

// viewState represents the currently active view.
type viewState int

const (
	viewDashboard viewState = iota
	viewWorkouts
	viewQuests
	viewChests
	viewReports
	viewSettings
)

var viewNames = []string{"Dashboard", "Workouts", "Quests", "Chests", "Reports", "Settings"}

// appCtx is the shared state every view operates on: the in-memory engine and
// the store it is persisted to. The engine is the source of truth; views read
// it directly and call persist after every mutation.
type appCtx struct {
	eng *engine.Engine
	st  *store.Store
}

// persist writes the current snapshot to the store. Failures are surfaced as a
// recoverable status message: the in-memory state stays valid.
func (c *appCtx) persist() tea.Cmd {
	if err := c.st.SaveSnapshot(c.eng.Snapshot()); err != nil {
		return func() tea.Msg {
			return statusMsg{text: fmt.Sprintf("Save failed: %v", err), isError: true}
		}
	}
	return nil
}

// --- Messages ---

type workoutLoggedMsg struct {
	entry   *engine.WorkoutEntry
	notices []string
}

type workoutDeletedMsg struct{}

type workoutEditedMsg struct{}

type chestOpenedMsg struct {
	tier    engine.ChestTier
	rewards []engine.TreasureReward
}

type statusMsg struct {
	text    string
	isError bool
}

type tickMsg time.Time

type exportDoneMsg struct {
	path string
}

// --- Helpers ---

func formatXP(v float64) string {
	return fmt.Sprintf("%.1f", v)
}

// progressBar renders a filled/empty bar for the given fraction.
func progressBar(frac float64, width int) string {
	if width < 1 {
		width = 1
	}
	if frac < 0 {
		frac = 0
	}
	if frac > 1 {
		frac = 1
	}
	filled := int(frac * float64(width))
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

// titleize turns an identifier like "bench_press" into "Bench Press".
func titleize(s string) string {
	parts := strings.Split(s, "_")
	for i, p := range parts {
		if p == "" {
			continue
		}
		parts[i] = strings.ToUpper(p[:1]) + p[1:]
	}
	return strings.Join(parts, " ")
}

// timeLeft renders a compact countdown like "5h 12m" or "3d 4h".
func timeLeft(until time.Time, now time.Time) string {
	d := until.Sub(now)
	if d <= 0 {
		return "expired"
	}
	days := int(d.Hours()) / 24
	hours := int(d.Hours()) % 24
	mins := int(d.Minutes()) % 60
	if days > 0 {
		return fmt.Sprintf("%dd %dh", days, hours)
	}
	if hours > 0 {
		return fmt.Sprintf("%dh %dm", hours, mins)
	}
	return fmt.Sprintf("%dm", mins)
}
