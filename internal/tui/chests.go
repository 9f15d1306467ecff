package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/devon4899/FRPG/internal/engine"
)

type chestsModel struct {
	ctx    *appCtx
	width  int
	height int

	cursor int
}

func newChestsModel(ctx *appCtx) chestsModel {
	return chestsModel{ctx: ctx}
}

func (c *chestsModel) setSize(w, h int) {
	c.width = w
	c.height = h
}

// unopened returns the closed chests, oldest first.
func (c chestsModel) unopened() []engine.TreasureChest {
	var out []engine.TreasureChest
	for _, chest := range c.ctx.eng.Profile().Chests {
		if !chest.Opened {
			out = append(out, chest)
		}
	}
	return out
}

func (c chestsModel) update(msg tea.Msg) (chestsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		chests := c.unopened()
		switch {
		case key.Matches(msg, keys.Up):
			if c.cursor > 0 {
				c.cursor--
			}
		case key.Matches(msg, keys.Down):
			if c.cursor < len(chests)-1 {
				c.cursor++
			}
		case key.Matches(msg, keys.Open), key.Matches(msg, keys.Enter):
			if c.cursor < len(chests) {
				return c.openChest(chests[c.cursor])
			}
		}
	}
	return c, nil
}

func (c chestsModel) openChest(chest engine.TreasureChest) (chestsModel, tea.Cmd) {
	rewards, err := c.ctx.eng.OpenChest(chest.ID)
	if err != nil {
		return c, func() tea.Msg {
			return statusMsg{text: fmt.Sprintf("Error: %v", err), isError: true}
		}
	}
	if c.cursor > 0 {
		c.cursor--
	}
	return c, tea.Batch(
		c.ctx.persist(),
		func() tea.Msg { return chestOpenedMsg{tier: chest.Tier, rewards: rewards} },
	)
}

func (c chestsModel) view() string {
	w := c.width - 4

	chestsPanel := c.renderChestsPanel(w)
	inventoryPanel := c.renderInventoryPanel(w)

	return lipgloss.JoinVertical(lipgloss.Left, chestsPanel, inventoryPanel)
}

func (c chestsModel) renderChestsPanel(w int) string {
	title := titleStyle.Render("Treasure Chests")
	chests := c.unopened()

	if len(chests) == 0 {
		content := lipgloss.JoinVertical(lipgloss.Left,
			title,
			"",
			mutedStyle.Render("No unopened chests. Level up to earn more."),
		)
		return panelStyle.Width(w).Render(content)
	}

	var rows []string
	rows = append(rows, title)
	rows = append(rows, "")

	for i, chest := range chests {
		cursor := "  "
		style := normalItemStyle
		if i == c.cursor {
			cursor = "> "
			style = selectedItemStyle
		}
		tier := tierStyle(chest.Tier).Render(fmt.Sprintf("%-9s", titleize(string(chest.Tier))))
		meta := mutedStyle.Render(fmt.Sprintf("earned at level %d, %s",
			chest.EarnedAtLevel, chest.DateEarned.Local().Format("Jan 02")))
		rows = append(rows, style.Render(cursor+"▣ ")+tier+" "+meta)
	}

	rows = append(rows, "")
	rows = append(rows, mutedStyle.Render("  o/enter: open"))

	return activePanelStyle.Width(w).Render(strings.Join(rows, "\n"))
}

func (c chestsModel) renderInventoryPanel(w int) string {
	title := titleStyle.Render("Inventory")
	inv := c.ctx.eng.Profile().Inventory

	if len(inv) == 0 {
		content := lipgloss.JoinVertical(lipgloss.Left,
			title,
			"",
			mutedStyle.Render("Nothing collected yet."),
		)
		return panelStyle.Width(w).Render(content)
	}

	// Newest acquisitions first.
	var rows []string
	rows = append(rows, title)
	rows = append(rows, "")
	shown := 0
	for i := len(inv) - 1; i >= 0 && shown < 12; i-- {
		r := inv[i]
		if r.Item == nil {
			continue
		}
		color, ok := rarityColors[r.Item.Rarity]
		if !ok {
			color = colorFg
		}
		name := lipgloss.NewStyle().Foreground(color).Render(r.Item.Name)
		rows = append(rows, fmt.Sprintf("  %s %s", name, mutedStyle.Render("("+r.Item.Rarity+")")))
		shown++
	}
	if extra := len(inv) - shown; extra > 0 {
		rows = append(rows, mutedStyle.Render(fmt.Sprintf("  …and %d more", extra)))
	}

	return panelStyle.Width(w).Render(strings.Join(rows, "\n"))
}
