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

var classIDs = []engine.ClassID{
	engine.ClassWarrior, engine.ClassRanger, engine.ClassMonk,
	engine.ClassBarbaric, engine.ClassDruid,
}

var prefUnits = []engine.ChallengeUnit{
	engine.UnitReps, engine.UnitSets, engine.UnitTime,
	engine.UnitDistance, engine.UnitFrequency,
}

type settingsModel struct {
	ctx    *appCtx
	width  int
	height int

	formActive bool
	form       *huh.Form

	// Form values as pointers (survive value copies)
	bodyweight *string
	class      *string
	prefFocus  *string
	prefUnit   *string
}

func newSettingsModel(ctx *appCtx) settingsModel {
	bw, cl, pf, pu := "", "", "", ""
	return settingsModel{
		ctx:        ctx,
		bodyweight: &bw,
		class:      &cl,
		prefFocus:  &pf,
		prefUnit:   &pu,
	}
}

func (s *settingsModel) setSize(w, h int) {
	s.width = w
	s.height = h
}

func (s settingsModel) update(msg tea.Msg) (settingsModel, tea.Cmd) {
	if s.formActive && s.form != nil {
		return s.updateForm(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Enter), key.Matches(msg, keys.Edit):
			return s.showForm()
		}
	}
	return s, nil
}

func (s settingsModel) showForm() (settingsModel, tea.Cmd) {
	p := s.ctx.eng.Profile()
	*s.bodyweight = strconv.FormatFloat(p.Bodyweight(), 'f', -1, 64)
	*s.class = string(p.Class)
	focuses := engine.ClassFocuses[p.Class]
	*s.prefFocus = string(focuses[0])
	*s.prefUnit = string(p.ChallengePrefs[focuses[0]])
	if *s.prefUnit == "" {
		*s.prefUnit = string(engine.UnitReps)
	}

	classOptions := make([]huh.Option[string], len(classIDs))
	for i, c := range classIDs {
		f := engine.ClassFocuses[c]
		label := fmt.Sprintf("%s  (%s + %s)", titleize(string(c)), f[0], f[1])
		classOptions[i] = huh.NewOption(label, string(c))
	}
	focusOptions := make([]huh.Option[string], len(catalog.FocusGroups))
	for i, f := range catalog.FocusGroups {
		focusOptions[i] = huh.NewOption(titleize(string(f)), string(f))
	}
	unitOptions := make([]huh.Option[string], len(prefUnits))
	for i, u := range prefUnits {
		unitOptions[i] = huh.NewOption(string(u), string(u))
	}

	s.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Bodyweight (kg)").Value(s.bodyweight),
			huh.NewSelect[string]().Title("Class").Options(classOptions...).Value(s.class),
		).Title("Character"),
		huh.NewGroup(
			huh.NewSelect[string]().Title("Focus group").Options(focusOptions...).Value(s.prefFocus),
			huh.NewSelect[string]().Title("Amount quests count").Options(unitOptions...).Value(s.prefUnit),
		).Title("Quest Preference"),
	).WithShowHelp(true).WithShowErrors(true)

	s.formActive = true
	return s, s.form.Init()
}

func (s settingsModel) updateForm(msg tea.Msg) (settingsModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "esc" {
			s.formActive = false
			s.form = nil
			return s, nil
		}
	}

	form, cmd := s.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		s.form = f
	}

	if s.form.State == huh.StateCompleted {
		s.formActive = false
		return s.save()
	}

	return s, cmd
}

func (s settingsModel) save() (settingsModel, tea.Cmd) {
	p := s.ctx.eng.Profile()

	if bw, err := strconv.ParseFloat(strings.TrimSpace(*s.bodyweight), 64); err == nil && bw > 0 {
		p.BodyweightKg = bw
	}
	p.Class = engine.ClassID(*s.class)
	s.ctx.eng.SetChallengePreference(
		catalog.FocusGroup(*s.prefFocus),
		engine.ChallengeUnit(*s.prefUnit),
	)

	return s, tea.Batch(
		s.ctx.persist(),
		func() tea.Msg { return statusMsg{text: "Settings saved"} },
	)
}

func (s settingsModel) view() string {
	w := s.width - 4

	if s.formActive && s.form != nil {
		title := titleStyle.Render("Settings")
		formView := s.form.View()
		return panelStyle.Width(w).Render(
			lipgloss.JoinVertical(lipgloss.Left, title, "", formView),
		)
	}

	p := s.ctx.eng.Profile()
	focuses := engine.ClassFocuses[p.Class]

	var rows []string
	rows = append(rows, titleStyle.Render("Settings"))
	rows = append(rows, "")
	rows = append(rows, settingRow("Bodyweight", fmt.Sprintf("%.1f kg", p.Bodyweight())))
	rows = append(rows, settingRow("Class", fmt.Sprintf("%s (%s + %s)", titleize(string(p.Class)), focuses[0], focuses[1])))
	rows = append(rows, "")
	rows = append(rows, titleStyle.Render("Quest Preferences"))
	rows = append(rows, "")
	for _, f := range catalog.FocusGroups {
		unit := p.ChallengePrefs[f]
		val := "default"
		if unit != "" {
			val = string(unit)
		}
		rows = append(rows, settingRow(titleize(string(f)), val))
	}
	rows = append(rows, "")
	rows = append(rows, mutedStyle.Render("Press enter to edit"))

	return panelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func settingRow(label, value string) string {
	l := lipgloss.NewStyle().Width(24).Render(label)
	return fmt.Sprintf("  %s %s", l, highlightStyle.Render(value))
}
