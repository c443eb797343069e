// Package render paints toasts with lipgloss. It consumes the entity data
// plus the live animated values from the lifecycle layer and produces
// strings; it never mutates toast state.
package render

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/cristianoliveira/bubbletoast/internal/entity"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// palette is the color table for one theme.
type palette struct {
	accents    map[entity.Type]string
	text       string
	dim        string
	border     string
	background string
	inverted   bool // paint the accent as background (colored theme)
}

var darkAccents = map[entity.Type]string{
	entity.TypeSuccess: "#34d399",
	entity.TypeError:   "#f87171",
	entity.TypeInfo:    "#60a5fa",
	entity.TypeWarning: "#fbbf24",
	entity.TypeLoading: "#a78bfa",
}

var lightAccents = map[entity.Type]string{
	entity.TypeSuccess: "#047857",
	entity.TypeError:   "#b91c1c",
	entity.TypeInfo:    "#1d4ed8",
	entity.TypeWarning: "#b45309",
	entity.TypeLoading: "#6d28d9",
}

var palettes = map[entity.Theme]palette{
	entity.ThemeDark: {
		accents:    darkAccents,
		text:       "#e5e5e5",
		dim:        "#8a8a8a",
		border:     "#4a4a4a",
		background: "#1a1a1a",
	},
	entity.ThemeLight: {
		accents:    lightAccents,
		text:       "#1f1f1f",
		dim:        "#6b6b6b",
		border:     "#b5b5b5",
		background: "#fafafa",
	},
	entity.ThemeColored: {
		accents:    darkAccents,
		text:       "#101010",
		dim:        "#303030",
		border:     "#4a4a4a",
		background: "#1a1a1a",
		inverted:   true,
	},
	// System follows the terminal, which we treat as dark.
	entity.ThemeSystem: {
		accents:    darkAccents,
		text:       "#e5e5e5",
		dim:        "#8a8a8a",
		border:     "#4a4a4a",
		background: "#1a1a1a",
	},
}

// paletteFor resolves a theme, degrading unknown values to the system theme.
func paletteFor(theme entity.Theme) palette {
	if p, ok := palettes[theme]; ok {
		return p
	}
	return palettes[entity.ThemeSystem]
}

// fade blends a hex color toward the theme background by 1-opacity, which
// is how a terminal renders translucency.
func fade(hex, background string, opacity float64) lipgloss.Color {
	if opacity >= 1 {
		return lipgloss.Color(hex)
	}
	if opacity < 0 {
		opacity = 0
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return lipgloss.Color(hex)
	}
	bg, err := colorful.Hex(background)
	if err != nil {
		return lipgloss.Color(hex)
	}
	return lipgloss.Color(bg.BlendRgb(c, opacity).Hex())
}
