package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/devon4899/FRPG/internal/catalog"
	"github.com/devon4899/FRPG/internal/engine"
)

type workoutsModel struct {
	ctx    *appCtx
	width  int
	height int

	cursor int

	formActive bool
	form       *huh.Form
	editingID  string // empty = logging a new workout

	// Form field pointers (survive value copies)
	formCategory *string
	formReps     *string
	formWeight   *string
	formDuration *string
	formDistance *string
}

func newWorkoutsModel(ctx *appCtx) workoutsModel {
	cat, reps, weight, dur, dist := "", "", "", "", ""
	return workoutsModel{
		ctx:          ctx,
		formCategory: &cat,
		formReps:     &reps,
		formWeight:   &weight,
		formDuration: &dur,
		formDistance: &dist,
	}
}

func (m *workoutsModel) setSize(w, h int) {
	m.width = w
	m.height = h
}

// history returns the log newest-first for display.
func (m workoutsModel) history() []engine.WorkoutEntry {
	asc := m.ctx.eng.History()
	out := make([]engine.WorkoutEntry, len(asc))
	for i, e := range asc {
		out[len(asc)-1-i] = e
	}
	return out
}

func (m workoutsModel) update(msg tea.Msg) (workoutsModel, tea.Cmd) {
	if m.formActive && m.form != nil {
		return m.updateForm(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		history := m.history()
		switch {
		case key.Matches(msg, keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, keys.Down):
			if m.cursor < len(history)-1 {
				m.cursor++
			}
		case key.Matches(msg, keys.New):
			return m.showLogForm(nil)
		case key.Matches(msg, keys.Edit):
			if m.cursor < len(history) {
				entry := history[m.cursor]
				return m.showLogForm(&entry)
			}
		case key.Matches(msg, keys.Delete):
			if m.cursor < len(history) {
				return m.deleteWorkout(history[m.cursor].ID)
			}
		}
	}
	return m, nil
}

func categoryOptions() []huh.Option[string] {
	var opts []huh.Option[string]
	for _, f := range catalog.FocusGroups {
		for _, ex := range catalog.ByFocus(f) {
			label := fmt.Sprintf("%s  (%s)", ex.Name, f)
			opts = append(opts, huh.NewOption(label, ex.ID))
		}
	}
	return opts
}

func (m workoutsModel) showLogForm(entry *engine.WorkoutEntry) (workoutsModel, tea.Cmd) {
	*m.formCategory = ""
	*m.formReps = ""
	*m.formWeight = ""
	*m.formDuration = ""
	*m.formDistance = ""
	m.editingID = ""

	if entry != nil {
		m.editingID = entry.ID
		*m.formCategory = entry.Category
		if entry.Reps != nil {
			*m.formReps = strconv.Itoa(*entry.Reps)
		}
		if entry.WeightKg != nil {
			*m.formWeight = strconv.FormatFloat(*entry.WeightKg, 'f', -1, 64)
		}
		if entry.DurationMin != nil {
			*m.formDuration = strconv.FormatFloat(*entry.DurationMin, 'f', -1, 64)
		}
		if entry.DistanceKm != nil {
			*m.formDistance = strconv.FormatFloat(*entry.DistanceKm, 'f', -1, 64)
		}
	}

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().Title("Exercise").Options(categoryOptions()...).Value(m.formCategory),
			huh.NewInput().Title("Reps").Placeholder("optional").Value(m.formReps),
			huh.NewInput().Title("Weight (kg)").Placeholder("optional").Value(m.formWeight),
			huh.NewInput().Title("Duration (min)").Placeholder("optional").Value(m.formDuration),
			huh.NewInput().Title("Distance (km)").Placeholder("optional").Value(m.formDistance),
		),
	).WithShowHelp(true).WithShowErrors(true)

	m.formActive = true
	return m, m.form.Init()
}

func (m workoutsModel) updateForm(msg tea.Msg) (workoutsModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "esc" {
			m.formActive = false
			m.form = nil
			return m, nil
		}
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		m.formActive = false
		if *m.formCategory == "" {
			return m, nil
		}
		if m.editingID != "" {
			return m.submitEdit()
		}
		return m.submitNew()
	}

	return m, cmd
}

func (m workoutsModel) submitNew() (workoutsModel, tea.Cmd) {
	in := engine.WorkoutInput{
		Category:    *m.formCategory,
		Reps:        parseOptInt(*m.formReps),
		WeightKg:    parseOptFloat(*m.formWeight),
		DurationMin: parseOptFloat(*m.formDuration),
		DistanceKm:  parseOptFloat(*m.formDistance),
	}

	entry, notices, err := m.ctx.eng.RecordWorkout(in)
	if err != nil {
		return m, func() tea.Msg {
			return statusMsg{text: fmt.Sprintf("Error: %v", err), isError: true}
		}
	}
	m.cursor = 0
	return m, tea.Batch(
		m.ctx.persist(),
		func() tea.Msg { return workoutLoggedMsg{entry: entry, notices: notices} },
	)
}

func (m workoutsModel) submitEdit() (workoutsModel, tea.Cmd) {
	var target *engine.WorkoutEntry
	for _, e := range m.ctx.eng.History() {
		if e.ID == m.editingID {
			dup := e
			target = &dup
			break
		}
	}
	if target == nil {
		return m, func() tea.Msg {
			return statusMsg{text: "Workout no longer exists", isError: true}
		}
	}

	target.Category = *m.formCategory
	target.Reps = parseOptInt(*m.formReps)
	target.WeightKg = parseOptFloat(*m.formWeight)
	target.DurationMin = parseOptFloat(*m.formDuration)
	target.DistanceKm = parseOptFloat(*m.formDistance)

	if err := m.ctx.eng.EditWorkout(*target); err != nil {
		return m, func() tea.Msg {
			return statusMsg{text: fmt.Sprintf("Error: %v", err), isError: true}
		}
	}
	return m, tea.Batch(
		m.ctx.persist(),
		func() tea.Msg { return workoutEditedMsg{} },
	)
}

func (m workoutsModel) deleteWorkout(id string) (workoutsModel, tea.Cmd) {
	if err := m.ctx.eng.DeleteWorkout(id); err != nil {
		return m, func() tea.Msg {
			return statusMsg{text: fmt.Sprintf("Error: %v", err), isError: true}
		}
	}
	if m.cursor > 0 {
		m.cursor--
	}
	return m, tea.Batch(
		m.ctx.persist(),
		func() tea.Msg { return workoutDeletedMsg{} },
	)
}

func parseOptInt(s string) *int {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &v
}

func parseOptFloat(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}

func (m workoutsModel) view() string {
	w := m.width - 4

	if m.formActive && m.form != nil {
		title := titleStyle.Render("Log Workout")
		if m.editingID != "" {
			title = titleStyle.Render("Edit Workout")
		}
		formView := m.form.View()
		content := lipgloss.JoinVertical(lipgloss.Left, title, "", formView)
		return panelStyle.Width(w).Render(content)
	}

	history := m.history()
	title := titleStyle.Render("Workout Log")

	if len(history) == 0 {
		content := lipgloss.JoinVertical(lipgloss.Left,
			title,
			"",
			mutedStyle.Render("No workouts yet. Press n to log one."),
		)
		return panelStyle.Width(w).Render(content)
	}

	var rows []string
	rows = append(rows, title)
	rows = append(rows, "")

	header := mutedStyle.Render(fmt.Sprintf("  %-3s %-14s %-22s %-20s %10s", "", "Date", "Exercise", "Details", "XP"))
	rows = append(rows, header)

	visible := m.height - 10
	if visible < 5 {
		visible = 5
	}
	end := min(len(history), visible)
	for i := 0; i < end; i++ {
		e := history[i]
		cursor := "  "
		style := normalItemStyle
		if i == m.cursor {
			cursor = "> "
			style = selectedItemStyle
		}
		when := e.Timestamp.Local().Format("Jan 02 15:04")
		row := style.Render(fmt.Sprintf("%s%-14s %-22s %-20s", cursor, when, titleize(e.Category), entryDetails(e)))
		row += successStyle.Render(fmt.Sprintf(" %9s", "+"+formatXP(e.ExpGained)))
		rows = append(rows, row)
	}

	rows = append(rows, "")
	rows = append(rows, mutedStyle.Render("  n: log  e: edit  d: delete"))

	return panelStyle.Width(w).Render(strings.Join(rows, "\n"))
}

// entryDetails renders the raw inputs compactly, e.g. "5x80kg" or "5km 30min".
func entryDetails(e engine.WorkoutEntry) string {
	var parts []string
	if e.Reps != nil && e.WeightKg != nil {
		parts = append(parts, fmt.Sprintf("%dx%.0fkg", *e.Reps, *e.WeightKg))
	} else if e.Reps != nil {
		parts = append(parts, fmt.Sprintf("%d reps", *e.Reps))
	} else if e.WeightKg != nil {
		parts = append(parts, fmt.Sprintf("%.0fkg", *e.WeightKg))
	}
	if e.DistanceKm != nil {
		parts = append(parts, fmt.Sprintf("%.1fkm", *e.DistanceKm))
	}
	if e.DurationMin != nil {
		parts = append(parts, fmt.Sprintf("%.0fmin", *e.DurationMin))
	}
	if e.Est1RM != nil {
		parts = append(parts, fmt.Sprintf("e1RM %.1f", *e.Est1RM))
	}
	return strings.Join(parts, " ")
}
