package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/devon4899/FRPG/internal/engine"
	"github.com/devon4899/FRPG/internal/export"
	"github.com/devon4899/FRPG/internal/store"
)

// App is the root Bubble Tea model.
type App struct {
	ctx    *appCtx
	width  int
	height int

	activeView    viewState
	showHelp      bool
	exportPicking bool
	exportCursor  int

	dashboard dashboardModel
	workouts  workoutsModel
	quests    questsModel
	chests    chestsModel
	reports   reportsModel
	settings  settingsModel

	help   help.Model
	status string
}

func NewApp(eng *engine.Engine, st *store.Store) App {
	h := help.New()
	h.ShowAll = false

	ctx := &appCtx{eng: eng, st: st}
	return App{
		ctx:        ctx,
		activeView: viewDashboard,
		dashboard:  newDashboardModel(ctx),
		workouts:   newWorkoutsModel(ctx),
		quests:     newQuestsModel(ctx),
		chests:     newChestsModel(ctx),
		reports:    newReportsModel(ctx),
		settings:   newSettingsModel(ctx),
		help:       h,
	}
}

func (a App) Init() tea.Cmd {
	// Roll the day's challenge slate before the first frame.
	a.ctx.eng.RefreshChallenges(time.Now())
	return tea.Batch(a.ctx.persist(), tickCmd())
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.help.Width = msg.Width
		contentHeight := a.height - 4 // header + footer
		a.dashboard.setSize(a.width, contentHeight)
		a.workouts.setSize(a.width, contentHeight)
		a.quests.setSize(a.width, contentHeight)
		a.chests.setSize(a.width, contentHeight)
		a.reports.setSize(a.width, contentHeight)
		a.settings.setSize(a.width, contentHeight)
		return a, nil

	case tea.KeyMsg:
		if a.exportPicking {
			return a.updateExportPicker(msg)
		}

		// A capturing form gets every key first.
		if a.isFormActive() {
			return a.updateActiveView(msg)
		}

		switch {
		case key.Matches(msg, keys.Export):
			a.exportPicking = true
			a.exportCursor = 0
			return a, nil
		case key.Matches(msg, keys.Quit):
			return a, tea.Quit
		case key.Matches(msg, keys.Help):
			a.showHelp = !a.showHelp
			a.help.ShowAll = a.showHelp
			return a, nil
		case key.Matches(msg, keys.Tab1):
			a.activeView = viewDashboard
			return a, nil
		case key.Matches(msg, keys.Tab2):
			a.activeView = viewWorkouts
			return a, nil
		case key.Matches(msg, keys.Tab3):
			a.activeView = viewQuests
			return a, nil
		case key.Matches(msg, keys.Tab4):
			a.activeView = viewChests
			return a, nil
		case key.Matches(msg, keys.Tab5):
			a.activeView = viewReports
			a.reports.rebuild()
			return a, nil
		case key.Matches(msg, keys.Tab6):
			a.activeView = viewSettings
			return a, nil
		case key.Matches(msg, keys.Tab):
			a.activeView = (a.activeView + 1) % 6
			if a.activeView == viewReports {
				a.reports.rebuild()
			}
			return a, nil
		}

	case tickMsg:
		// Midnight and week boundaries rotate the challenge slate.
		p := a.ctx.eng.Profile()
		daily, weekly := p.LastDailyGen, p.LastWeeklyGen
		a.ctx.eng.RefreshChallenges(time.Time(msg))
		var cmds []tea.Cmd
		cmds = append(cmds, tickCmd())
		if p.LastDailyGen != daily || p.LastWeeklyGen != weekly {
			cmds = append(cmds, a.ctx.persist())
		}
		return a, tea.Batch(cmds...)

	case statusMsg:
		a.status = msg.text
		return a, nil

	case workoutLoggedMsg:
		text := fmt.Sprintf("%s logged: +%s XP", titleize(msg.entry.Category), formatXP(msg.entry.ExpGained))
		if msg.entry.NewLevel > msg.entry.PrevLevel {
			text += fmt.Sprintf("  LEVEL UP → %d", msg.entry.NewLevel)
		}
		for _, n := range msg.notices {
			text += "  (" + n + ")"
		}
		a.status = text
		return a, nil

	case workoutEditedMsg:
		a.status = "Workout updated, progress recalculated"
		return a, nil

	case workoutDeletedMsg:
		a.status = "Workout deleted, progress recalculated"
		return a, nil

	case chestOpenedMsg:
		text := fmt.Sprintf("%s chest:", titleize(string(msg.tier)))
		for _, r := range msg.rewards {
			text += " " + r.Description + ","
		}
		a.status = text[:len(text)-1]
		return a, nil

	case exportDoneMsg:
		a.status = "Exported to " + msg.path
		a.exportPicking = false
		return a, nil
	}

	return a.updateActiveView(msg)
}

func (a App) updateActiveView(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch a.activeView {
	case viewDashboard:
		a.dashboard, cmd = a.dashboard.update(msg)
	case viewWorkouts:
		a.workouts, cmd = a.workouts.update(msg)
	case viewQuests:
		a.quests, cmd = a.quests.update(msg)
	case viewChests:
		a.chests, cmd = a.chests.update(msg)
	case viewReports:
		a.reports, cmd = a.reports.update(msg)
	case viewSettings:
		a.settings, cmd = a.settings.update(msg)
	}
	return a, cmd
}

func (a App) isFormActive() bool {
	switch a.activeView {
	case viewWorkouts:
		return a.workouts.formActive
	case viewSettings:
		return a.settings.formActive
	}
	return false
}

func (a App) View() string {
	if a.width == 0 {
		return "Loading..."
	}

	header := a.renderHeader()
	footer := a.renderFooter()

	var content string
	switch a.activeView {
	case viewDashboard:
		content = a.dashboard.view()
	case viewWorkouts:
		content = a.workouts.view()
	case viewQuests:
		content = a.quests.view()
	case viewChests:
		content = a.chests.view()
	case viewReports:
		content = a.reports.view()
	case viewSettings:
		content = a.settings.view()
	}

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := a.height - headerHeight - footerHeight
	if contentHeight < 1 {
		contentHeight = 1
	}

	if a.exportPicking {
		content = a.renderExportPicker()
	}

	content = lipgloss.NewStyle().
		Width(a.width).
		Height(contentHeight).
		Render(content)

	return lipgloss.JoinVertical(lipgloss.Left, header, content, footer)
}

func (a App) renderHeader() string {
	var tabs []string
	for i, name := range viewNames {
		if viewState(i) == a.activeView {
			tabs = append(tabs, activeTabStyle.Render(name))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(name))
		}
	}

	tabRow := lipgloss.JoinHorizontal(lipgloss.Bottom, tabs...)

	title := lipgloss.NewStyle().Bold(true).Foreground(colorPrimary).Render("FRPG")
	gap := a.width - lipgloss.Width(title) - lipgloss.Width(tabRow) - 4
	if gap < 1 {
		gap = 1
	}
	spacer := lipgloss.NewStyle().Width(gap).Render("")

	return headerStyle.Render(
		lipgloss.JoinHorizontal(lipgloss.Bottom, title, spacer, tabRow),
	)
}

func (a App) renderFooter() string {
	helpView := a.help.View(keys)

	status := ""
	if a.status != "" {
		status = mutedStyle.Render(" " + a.status)
	}

	p := a.ctx.eng.Profile()
	levelInfo := levelStyle.Render(fmt.Sprintf(" Lv %d", p.DisplayLevel()))
	if stars := p.PrestigeStars(); stars > 0 {
		levelInfo += starStyle.Render(fmt.Sprintf(" ★%d", stars))
	}

	left := footerStyle.Render(helpView)
	right := levelInfo + status

	gap := a.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
	}
	spacer := lipgloss.NewStyle().Width(gap).Render("")

	return lipgloss.JoinHorizontal(lipgloss.Bottom, left, spacer, right)
}

var exportFormats = []string{"CSV (history)", "JSON (history)", "JSON (full backup)"}

func (a App) renderExportPicker() string {
	title := titleStyle.Render("Export Format")
	var rows []string
	rows = append(rows, title)
	rows = append(rows, "")
	for i, f := range exportFormats {
		cursor := "  "
		style := normalItemStyle
		if i == a.exportCursor {
			cursor = "> "
			style = selectedItemStyle
		}
		rows = append(rows, style.Render(cursor+f))
	}
	rows = append(rows, "")
	rows = append(rows, mutedStyle.Render("  enter: export  esc: cancel"))

	w := a.width - 4
	return activePanelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (a App) updateExportPicker(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Up):
		if a.exportCursor > 0 {
			a.exportCursor--
		}
	case key.Matches(msg, keys.Down):
		if a.exportCursor < len(exportFormats)-1 {
			a.exportCursor++
		}
	case key.Matches(msg, keys.Enter):
		a.exportPicking = false
		return a, a.doExport(a.exportCursor)
	case key.Matches(msg, keys.Back):
		a.exportPicking = false
	}
	return a, nil
}

func (a App) doExport(format int) tea.Cmd {
	snap := a.ctx.eng.Snapshot()
	return func() tea.Msg {
		home, _ := os.UserHomeDir()
		dateStr := time.Now().Format("2006-01-02")

		var path string
		var err error
		switch format {
		case 0:
			path = filepath.Join(home, fmt.Sprintf("frpg-export-%s.csv", dateStr))
			err = export.ToCSV(snap.History, path)
		case 1:
			path = filepath.Join(home, fmt.Sprintf("frpg-export-%s.json", dateStr))
			err = export.ToJSON(snap.History, path)
		default:
			path = filepath.Join(home, fmt.Sprintf("frpg-backup-%s.json", dateStr))
			err = export.SnapshotToJSON(snap, path)
		}
		if err != nil {
			return statusMsg{text: fmt.Sprintf("Export error: %v", err), isError: true}
		}
		return exportDoneMsg{path: path}
	}
}
