package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/zxrescue/internal/core"
)

// Theme contains all configurable visual styles.
type Theme struct {
	// Map cell colors, keyed by the screen buffer palette
	Palette map[core.Color]lipgloss.Style

	// HUD styles
	HUDTitle lipgloss.Style
	HUDValue lipgloss.Style
	HUDDim   lipgloss.Style
	HUDAlert lipgloss.Style

	// Menu styles
	MenuTitle       lipgloss.Style
	MenuItemNormal  lipgloss.Style
	MenuItemActive  lipgloss.Style
	MenuDescription lipgloss.Style
	MenuError       lipgloss.Style
}

func fg(c string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(c))
}

// DefaultTheme returns the default 256-color theme.
func DefaultTheme() Theme {
	return Theme{
		Palette: map[core.Color]lipgloss.Style{
			core.ColorDefault:  lipgloss.NewStyle(),
			core.ColorDeepSea:  fg("24"),
			core.ColorShallow:  fg("38"),
			core.ColorSand:     fg("186"),
			core.ColorGrass:    fg("70"),
			core.ColorForest:   fg("28"),
			core.ColorRock:     fg("137"),
			core.ColorSnow:     fg("255"),
			core.ColorPad:      fg("250").Bold(true),
			core.ColorBasePad:  fg("226").Bold(true),
			core.ColorBuilding: fg("173"),
			core.ColorTree:     fg("34"),
			core.ColorCrate:    fg("214").Bold(true),
			core.ColorRefugee:  fg("213").Bold(true),
			core.ColorHeli:     fg("231").Bold(true),
			core.ColorRope:     fg("223"),
			core.ColorCyclone:  fg("141"),
			core.ColorPlane:    fg("196").Bold(true),
			core.ColorHUD:      fg("51"),
			core.ColorAlert:    fg("203").Bold(true),
			core.ColorDim:      fg("240"),
		},

		HUDTitle: fg("51").Bold(true),
		HUDValue: fg("255"),
		HUDDim:   fg("245"),
		HUDAlert: fg("203").Bold(true),

		MenuTitle:       fg("51").Bold(true),
		MenuItemNormal:  fg("252"),
		MenuItemActive:  fg("226").Bold(true),
		MenuDescription: fg("245"),
		MenuError:       fg("203"),
	}
}

// SpectrumTheme uses only the eight bright primaries of an 8-bit micro.
func SpectrumTheme() Theme {
	theme := DefaultTheme()
	p := theme.Palette
	p[core.ColorDeepSea] = fg("4")
	p[core.ColorShallow] = fg("12")
	p[core.ColorSand] = fg("11")
	p[core.ColorGrass] = fg("10")
	p[core.ColorForest] = fg("2")
	p[core.ColorRock] = fg("3")
	p[core.ColorSnow] = fg("15")
	p[core.ColorBuilding] = fg("9")
	p[core.ColorTree] = fg("2")
	p[core.ColorCrate] = fg("11").Bold(true)
	p[core.ColorRefugee] = fg("13").Bold(true)
	p[core.ColorCyclone] = fg("5")
	p[core.ColorPlane] = fg("9").Bold(true)
	p[core.ColorHUD] = fg("14")
	theme.HUDTitle = fg("14").Bold(true)
	theme.MenuTitle = fg("14").Bold(true)
	return theme
}

// MonochromeTheme returns a grayscale theme.
func MonochromeTheme() Theme {
	theme := DefaultTheme()
	for c := range theme.Palette {
		theme.Palette[c] = fg("250")
	}
	theme.Palette[core.ColorDefault] = lipgloss.NewStyle()
	theme.Palette[core.ColorDeepSea] = fg("238")
	theme.Palette[core.ColorShallow] = fg("242")
	theme.Palette[core.ColorHeli] = fg("255").Bold(true)
	theme.Palette[core.ColorAlert] = fg("255").Bold(true)
	theme.Palette[core.ColorDim] = fg("240")
	return theme
}

// ThemeByName resolves a theme flag value.
func ThemeByName(name string) (Theme, bool) {
	switch name {
	case "", "default":
		return DefaultTheme(), true
	case "spectrum", "zx":
		return SpectrumTheme(), true
	case "mono":
		return MonochromeTheme(), true
	}
	return Theme{}, false
}

// Global theme variable (can be changed at runtime)
var currentTheme = DefaultTheme()

// SetTheme sets the global theme.
func SetTheme(theme Theme) {
	currentTheme = theme
}

// GetTheme returns the current global theme.
func GetTheme() Theme {
	return currentTheme
}
