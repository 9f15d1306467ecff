package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/devon4899/FRPG/internal/catalog"
)

type dashboardModel struct {
	ctx    *appCtx
	width  int
	height int
}

func newDashboardModel(ctx *appCtx) dashboardModel {
	return dashboardModel{ctx: ctx}
}

func (d *dashboardModel) setSize(w, h int) {
	d.width = w
	d.height = h
}

func (d dashboardModel) update(msg tea.Msg) (dashboardModel, tea.Cmd) {
	return d, nil
}

func (d dashboardModel) view() string {
	if d.width < 20 {
		return "Terminal too small"
	}

	contentWidth := d.width - 4

	hero := d.renderHeroPanel(contentWidth)
	stats := d.renderStatsPanel(contentWidth)
	recent := d.renderRecentPanel(contentWidth)

	return lipgloss.JoinVertical(lipgloss.Left, hero, stats, recent)
}

func (d dashboardModel) renderHeroPanel(w int) string {
	p := d.ctx.eng.Profile()

	level := levelStyle.Render(fmt.Sprintf("Level %d", p.DisplayLevel()))
	if stars := p.PrestigeStars(); stars > 0 {
		level += starStyle.Render("  " + strings.Repeat("★", min(stars, 10)))
		if stars > 10 {
			level += starStyle.Render(fmt.Sprintf("x%d", stars))
		}
	}
	class := highlightStyle.Render(titleize(string(p.Class)))

	barWidth := w - 24
	if barWidth < 10 {
		barWidth = 10
	}
	frac := 0.0
	if p.NextLevelXP > 0 {
		frac = p.XP / p.NextLevelXP
	}
	bar := xpBarStyle.Render(progressBar(frac, barWidth))
	xpLine := fmt.Sprintf("%s %s / %s XP", bar, formatXP(p.XP), formatXP(p.NextLevelXP))

	coins := goldStyle.Render(fmt.Sprintf("◉ %d coins", p.Coins))
	total := mutedStyle.Render(fmt.Sprintf("total %s XP", formatXP(p.TotalXP)))
	unopened := 0
	for _, c := range p.Chests {
		if !c.Opened {
			unopened++
		}
	}
	chestInfo := ""
	if unopened > 0 {
		chestInfo = warningStyle.Render(fmt.Sprintf("  %d unopened chest(s)", unopened))
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		fmt.Sprintf("%s  %s", level, class),
		"",
		xpLine,
		fmt.Sprintf("%s  %s%s", coins, total, chestInfo),
	)
	return activePanelStyle.Width(w).Render(content)
}

func (d dashboardModel) renderStatsPanel(w int) string {
	p := d.ctx.eng.Profile()
	title := titleStyle.Render("Attributes")

	comps := p.Stats.Components()
	maxVal := 1.0
	for _, v := range comps {
		if v > maxVal {
			maxVal = v
		}
	}

	barWidth := w - 40
	if barWidth < 8 {
		barWidth = 8
	}

	var rows []string
	rows = append(rows, title)
	for i, v := range comps {
		bar := xpBarStyle.Render(progressBar(v/maxVal, barWidth))
		rows = append(rows, fmt.Sprintf("  %-10s %s %8.1f", catalog.StatNames[i], bar, v))
	}

	rows = append(rows, "")
	rows = append(rows, titleStyle.Render("Ranks"))
	var rankItems []string
	for _, f := range catalog.FocusGroups {
		tier := p.Ranks[f]
		if tier < 1 {
			tier = 1
		}
		rankItems = append(rankItems, focusStyle(f).Render(fmt.Sprintf("%s %d", titleize(string(f)), tier)))
	}
	rows = append(rows, "  "+strings.Join(rankItems, "   "))

	return panelStyle.Width(w).Render(strings.Join(rows, "\n"))
}

func (d dashboardModel) renderRecentPanel(w int) string {
	history := d.ctx.eng.History()
	title := titleStyle.Render("Recent Workouts")

	if len(history) == 0 {
		content := lipgloss.JoinVertical(lipgloss.Left,
			title,
			mutedStyle.Render("No workouts yet. Press n on the Workouts tab to log one."),
		)
		return panelStyle.Width(w).Render(content)
	}

	var rows []string
	rows = append(rows, title)
	start := len(history) - 5
	if start < 0 {
		start = 0
	}
	for i := len(history) - 1; i >= start; i-- {
		e := history[i]
		name := titleize(e.Category)
		when := e.Timestamp.Local().Format("Jan 02 15:04")
		xp := successStyle.Render("+" + formatXP(e.ExpGained) + " XP")
		marker := " "
		if e.NewLevel > e.PrevLevel {
			marker = accentStyle.Render("▲")
		}
		rows = append(rows, fmt.Sprintf("  %s %s  %-22s %s", marker, when, name, xp))
	}

	return panelStyle.Width(w).Render(strings.Join(rows, "\n"))
}
