package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/devon4899/FRPG/internal/catalog"
)

type reportMode int

const (
	reportDaily reportMode = iota
	reportWeekly
)

type reportsModel struct {
	ctx    *appCtx
	width  int
	height int

	mode   reportMode
	offset int // windows back from today (0 = current)

	chart barchart.Model
}

func newReportsModel(ctx *appCtx) reportsModel {
	return reportsModel{
		ctx:   ctx,
		chart: barchart.New(60, 12),
	}
}

func (r *reportsModel) setSize(w, h int) {
	r.width = w
	r.height = h
	r.rebuild()
}

func (r reportsModel) update(msg tea.Msg) (reportsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Left):
			r.offset++
			r.rebuild()
			return r, nil
		case key.Matches(msg, keys.Right):
			if r.offset > 0 {
				r.offset--
				r.rebuild()
			}
			return r, nil
		case key.Matches(msg, keys.Enter):
			if r.mode == reportDaily {
				r.mode = reportWeekly
			} else {
				r.mode = reportDaily
			}
			r.offset = 0
			r.rebuild()
			return r, nil
		}
	}
	return r, nil
}

func (r reportsModel) dateRange() (time.Time, time.Time) {
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	switch r.mode {
	case reportWeekly:
		// Eight ISO weeks back from the current one.
		weekday := int(today.Weekday())
		if weekday == 0 {
			weekday = 7
		}
		startOfWeek := today.AddDate(0, 0, 1-weekday)
		end := startOfWeek.AddDate(0, 0, 7*(1-r.offset))
		return end.AddDate(0, 0, -7*8), end
	default:
		end := today.AddDate(0, 0, 1-7*r.offset)
		return end.AddDate(0, 0, -7), end
	}
}

// xpByBucket sums XP per (bucket, focus) over the window. Buckets are days or
// ISO-week starts depending on mode.
func (r reportsModel) xpByBucket(from, to time.Time) map[string]map[catalog.FocusGroup]float64 {
	out := map[string]map[catalog.FocusGroup]float64{}
	for _, e := range r.ctx.eng.History() {
		ts := e.Timestamp.Local()
		if ts.Before(from) || !ts.Before(to) {
			continue
		}
		ex, ok := catalog.Get(e.Category)
		if !ok {
			continue
		}
		bucket := r.bucketKey(ts)
		if out[bucket] == nil {
			out[bucket] = map[catalog.FocusGroup]float64{}
		}
		out[bucket][ex.Focus] += e.ExpGained
	}
	return out
}

func (r reportsModel) bucketKey(t time.Time) string {
	if r.mode == reportWeekly {
		y, w := t.ISOWeek()
		return fmt.Sprintf("%04d-W%02d", y, w)
	}
	return t.Format("2006-01-02")
}

func (r *reportsModel) rebuild() {
	chartWidth := r.width - 8
	if chartWidth < 20 {
		chartWidth = 20
	}
	chartHeight := 12
	if r.height > 30 {
		chartHeight = 16
	}

	r.chart = barchart.New(chartWidth, chartHeight)

	from, to := r.dateRange()
	data := r.xpByBucket(from, to)

	step := 24 * time.Hour
	labelFmt := "Mon 02"
	if r.mode == reportWeekly {
		step = 7 * 24 * time.Hour
		labelFmt = "Jan 02"
	}

	var bars []barchart.BarData
	for d := from; d.Before(to); d = d.Add(step) {
		byFocus := data[r.bucketKey(d)]

		var values []barchart.BarValue
		for _, f := range catalog.FocusGroups {
			xp := byFocus[f]
			if xp <= 0 {
				continue
			}
			values = append(values, barchart.BarValue{
				Name:  string(f),
				Value: xp,
				Style: lipgloss.NewStyle().Foreground(focusColors[f]),
			})
		}
		if len(values) == 0 {
			values = []barchart.BarValue{{Name: "", Value: 0, Style: lipgloss.NewStyle().Foreground(colorSubtle)}}
		}

		bars = append(bars, barchart.BarData{
			Label:  d.Format(labelFmt),
			Values: values,
		})
	}

	r.chart.PushAll(bars)
	r.chart.Draw()
}

func (r reportsModel) view() string {
	w := r.width - 4

	dailyTab := inactiveTabStyle.Render("Daily")
	weeklyTab := inactiveTabStyle.Render("Weekly")
	if r.mode == reportDaily {
		dailyTab = activeTabStyle.Render("Daily")
	} else {
		weeklyTab = activeTabStyle.Render("Weekly")
	}
	modeTabs := lipgloss.JoinHorizontal(lipgloss.Bottom, dailyTab, weeklyTab)

	from, to := r.dateRange()
	dateLabel := mutedStyle.Render(fmt.Sprintf("%s — %s",
		from.Format("Jan 02"), to.Add(-24*time.Hour).Format("Jan 02, 2006")))

	header := lipgloss.JoinHorizontal(lipgloss.Bottom,
		titleStyle.Render("XP Earned"), "  ", modeTabs, "  ", dateLabel,
	)

	chartView := r.chart.View()
	legend := r.renderLegend()
	table := r.renderTotals(from, to)
	nav := mutedStyle.Render("  ←/→: navigate  enter: switch mode")

	return panelStyle.Width(w).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			header, "", chartView, "", legend, "", table, "", nav,
		),
	)
}

func (r reportsModel) renderLegend() string {
	var items []string
	for _, f := range catalog.FocusGroups {
		dot := lipgloss.NewStyle().Foreground(focusColors[f]).Render("●")
		items = append(items, fmt.Sprintf("%s %s", dot, titleize(string(f))))
	}
	return "  " + strings.Join(items, "  ")
}

func (r reportsModel) renderTotals(from, to time.Time) string {
	data := r.xpByBucket(from, to)

	totals := map[catalog.FocusGroup]float64{}
	var grand float64
	for _, byFocus := range data {
		for f, xp := range byFocus {
			totals[f] += xp
			grand += xp
		}
	}
	if grand == 0 {
		return mutedStyle.Render("  No workouts in this period")
	}

	var rows []string
	rows = append(rows, mutedStyle.Render(fmt.Sprintf("  %-14s %10s", "Focus", "XP")))
	for _, f := range catalog.FocusGroups {
		if totals[f] == 0 {
			continue
		}
		dot := lipgloss.NewStyle().Foreground(focusColors[f]).Render("●")
		rows = append(rows, fmt.Sprintf("  %s %-12s %10s", dot, titleize(string(f)), formatXP(totals[f])))
	}
	rows = append(rows, fmt.Sprintf("  %-14s %10s", "Total", highlightStyle.Render(formatXP(grand))))

	return strings.Join(rows, "\n")
}
