package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/devon4899/FRPG/internal/engine"
)

type questsModel struct {
	ctx    *appCtx
	width  int
	height int
}

func newQuestsModel(ctx *appCtx) questsModel {
	return questsModel{ctx: ctx}
}

func (q *questsModel) setSize(w, h int) {
	q.width = w
	q.height = h
}

func (q questsModel) update(msg tea.Msg) (questsModel, tea.Cmd) {
	return q, nil
}

func (q questsModel) view() string {
	w := q.width - 4
	p := q.ctx.eng.Profile()
	now := time.Now()

	daily := q.renderPeriod("Daily Quests", engine.PeriodDaily, p.Challenges, now, w)
	weekly := q.renderPeriod("Weekly Quests", engine.PeriodWeekly, p.Challenges, now, w)

	return lipgloss.JoinVertical(lipgloss.Left, daily, weekly)
}

func (q questsModel) renderPeriod(title string, period engine.ChallengePeriod, all []engine.Challenge, now time.Time, w int) string {
	var rows []string
	rows = append(rows, titleStyle.Render(title))
	rows = append(rows, "")

	n := 0
	for _, c := range all {
		if c.Period != period {
			continue
		}
		n++
		rows = append(rows, q.renderChallenge(c, now, w))
	}
	if n == 0 {
		rows = append(rows, mutedStyle.Render("  Nothing active. New quests roll in at the period boundary."))
	}

	return panelStyle.Width(w).Render(strings.Join(rows, "\n"))
}

func (q questsModel) renderChallenge(c engine.Challenge, now time.Time, w int) string {
	focus := focusStyle(c.Focus).Render(fmt.Sprintf("%-12s", titleize(string(c.Focus))))

	desc := challengeDescription(c)

	barWidth := w - 64
	if barWidth < 8 {
		barWidth = 8
	}
	frac := 0.0
	if c.Target > 0 {
		frac = c.Progress / c.Target
	}
	bar := xpBarStyle.Render(progressBar(frac, barWidth))

	state := mutedStyle.Render(timeLeft(c.ExpiresAt, now))
	if c.Completed() {
		bar = successStyle.Render(progressBar(1, barWidth))
		state = successStyle.Render("✓ done")
	}

	reward := goldStyle.Render(fmt.Sprintf("+%.0f XP", c.ExpReward))

	return fmt.Sprintf("  %s %-26s %s %5.0f/%-5.0f %s  %s",
		focus, desc, bar, c.Progress, c.Target, reward, state)
}

// challengeDescription renders a quest goal in plain words.
func challengeDescription(c engine.Challenge) string {
	if c.Kind == engine.KindVariety {
		return fmt.Sprintf("%.0f different exercises", c.Target)
	}
	switch c.Unit {
	case engine.UnitReps:
		return fmt.Sprintf("%.0f total reps", c.Target)
	case engine.UnitSets:
		return fmt.Sprintf("%.0f sets", c.Target)
	case engine.UnitTime:
		return fmt.Sprintf("%.0f minutes", c.Target)
	case engine.UnitDistance:
		return fmt.Sprintf("%.0f km", c.Target)
	case engine.UnitFrequency:
		return fmt.Sprintf("%.0f sessions", c.Target)
	}
	return fmt.Sprintf("%.0f %s", c.Target, c.Unit)
}
