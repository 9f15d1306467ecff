package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/devon4899/FRPG/internal/catalog"
	"github.com/devon4899/FRPG/internal/engine"
)

// Color palette
var (
	colorPrimary   = lipgloss.Color("#6C63FF")
	colorSecondary = lipgloss.Color("#2EC4B6")
	colorAccent    = lipgloss.Color("#FF6B6B")
	colorMuted     = lipgloss.Color("#666666")
	colorSuccess   = lipgloss.Color("#2ECC71")
	colorWarning   = lipgloss.Color("#F39C12")
	colorError     = lipgloss.Color("#E74C3C")
	colorFg        = lipgloss.Color("#C0CAF5")
	colorSubtle    = lipgloss.Color("#414868")
	colorHighlight = lipgloss.Color("#7AA2F7")
	colorGold      = lipgloss.Color("#F1C40F")
)

// Per-focus colors, used for rank rows and the report chart stacks.
var focusColors = map[catalog.FocusGroup]lipgloss.Color{
	catalog.FocusStrength:    lipgloss.Color("#E74C3C"),
	catalog.FocusHypertrophy: lipgloss.Color("#9B59B6"),
	catalog.FocusEndurance:   lipgloss.Color("#3498DB"),
	catalog.FocusExplosive:   lipgloss.Color("#F39C12"),
	catalog.FocusMobility:    lipgloss.Color("#2EC4B6"),
	catalog.FocusBodyweight:  lipgloss.Color("#2ECC71"),
}

// Chest tier colors, common to mythic.
var tierColors = map[engine.ChestTier]lipgloss.Color{
	engine.TierCommon:   lipgloss.Color("#95A5A6"),
	engine.TierUncommon: lipgloss.Color("#2ECC71"),
	engine.TierRare:     lipgloss.Color("#3498DB"),
	engine.TierEpic:     lipgloss.Color("#9B59B6"),
	engine.TierMythic:   lipgloss.Color("#F1C40F"),
}

var rarityColors = map[string]lipgloss.Color{
	"uncommon": lipgloss.Color("#2ECC71"),
	"rare":     lipgloss.Color("#3498DB"),
	"epic":     lipgloss.Color("#9B59B6"),
	"mythic":   lipgloss.Color("#F1C40F"),
}

// Styles
var (
	// Tabs
	activeTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary).
			Border(lipgloss.NormalBorder(), false, false, true, false).
			BorderForeground(colorPrimary).
			Padding(0, 2)

	inactiveTabStyle = lipgloss.NewStyle().
				Foreground(colorMuted).
				Padding(0, 2)

	// Panels
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSubtle).
			Padding(1, 2)

	activePanelStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorPrimary).
				Padding(1, 2)

	// Level display
	levelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	starStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorGold)

	xpBarStyle = lipgloss.NewStyle().
			Foreground(colorSecondary)

	// Text
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorFg)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	accentStyle = lipgloss.NewStyle().
			Foreground(colorAccent)

	successStyle = lipgloss.NewStyle().
			Foreground(colorSuccess)

	warningStyle = lipgloss.NewStyle().
			Foreground(colorWarning)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorError)

	mutedStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	highlightStyle = lipgloss.NewStyle().
			Foreground(colorHighlight)

	goldStyle = lipgloss.NewStyle().
			Foreground(colorGold)

	// Header/footer
	headerStyle = lipgloss.NewStyle().
			Padding(0, 1)

	footerStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Padding(0, 1)

	// List items
	selectedItemStyle = lipgloss.NewStyle().
				Foreground(colorPrimary).
				Bold(true)

	normalItemStyle = lipgloss.NewStyle().
			Foreground(colorFg)
)

func tierStyle(tier engine.ChestTier) lipgloss.Style {
	c, ok := tierColors[tier]
	if !ok {
		c = colorMuted
	}
	return lipgloss.NewStyle().Bold(true).Foreground(c)
}

func focusStyle(f catalog.FocusGroup) lipgloss.Style {
	c, ok := focusColors[f]
	if !ok {
		c = colorFg
	}
	return lipgloss.NewStyle().Foreground(c)
}
