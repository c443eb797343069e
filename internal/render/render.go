package render

import (
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/lipgloss"
	"github.com/cristianoliveira/bubbletoast/internal/entity"
	"github.com/cristianoliveira/bubbletoast/internal/lifecycle"
)

const (
	// boxWidth is the outer width of a toast box.
	boxWidth = 40
	// minBoxWidth bounds the scale-down of center-anchored toasts.
	minBoxWidth = 16
)

// Type icons. Loading toasts use an animated spinner frame instead.
var icons = map[entity.Type]string{
	entity.TypeSuccess: "✓",
	entity.TypeError:   "✗",
	entity.TypeInfo:    "ℹ",
	entity.TypeWarning: "⚠",
}

// loadingSpinner supplies the frames painted for loading-type toasts.
var loadingSpinner = spinner.MiniDot

// spinnerFrame picks the spinner frame for the given elapsed time.
func spinnerFrame(elapsed time.Duration) string {
	frames := loadingSpinner.Frames
	if len(frames) == 0 {
		return icons[entity.TypeInfo]
	}
	i := int(elapsed/loadingSpinner.FPS) % len(frames)
	return frames[i]
}

// Item pairs a toast with its live animated values.
type Item struct {
	Toast  entity.Toast
	Visual lifecycle.Visual
	// Elapsed is the total animation time, used to phase spinner frames.
	Elapsed time.Duration
}

// Box paints a single toast at its current opacity, scale, and progress.
func Box(item Item) string {
	t := item.Toast
	v := item.Visual
	p := paletteFor(t.Theme)

	width := boxWidth
	if t.Position == entity.PositionCenter && v.Scale < 1 {
		width = int(math.Round(float64(boxWidth) * v.Scale))
		if width < minBoxWidth {
			width = minBoxWidth
		}
	}
	inner := width - 2

	accentHex := p.accents[t.Type]
	if accentHex == "" {
		accentHex = p.accents[entity.DefaultType]
	}
	accent := fade(accentHex, p.background, v.Opacity)
	text := fade(p.text, p.background, v.Opacity)
	dim := fade(p.dim, p.background, v.Opacity)
	borderColor := fade(p.border, p.background, v.Opacity)
	if p.inverted {
		borderColor = accent
	}

	borderStyle := lipgloss.NewStyle().Foreground(borderColor)
	iconStyle := lipgloss.NewStyle().Foreground(accent)
	textStyle := lipgloss.NewStyle().Foreground(text).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(dim)

	icon := icons[t.Type]
	if t.Type == entity.TypeLoading {
		icon = spinnerFrame(item.Elapsed)
	}

	var b strings.Builder
	b.WriteString(borderStyle.Render("╭" + strings.Repeat("─", inner) + "╮"))
	b.WriteByte('\n')
	b.WriteString(contentLine(borderStyle, iconStyle.Render(icon)+" "+textStyle.Render(truncate(t.Message, inner-4)), inner))
	if t.Description != "" {
		b.WriteByte('\n')
		b.WriteString(contentLine(borderStyle, "  "+dimStyle.Render(truncate(t.Description, inner-4)), inner))
	}
	b.WriteByte('\n')
	b.WriteString(bottomLine(borderStyle, iconStyle, t, v, inner))
	return b.String()
}

// contentLine frames styled content between side borders, padded to width.
func contentLine(border lipgloss.Style, content string, inner int) string {
	pad := inner - 1 - lipgloss.Width(content)
	if pad < 0 {
		pad = 0
	}
	return border.Render("│") + " " + content + strings.Repeat(" ", pad) + border.Render("│")
}

// bottomLine closes the box; when a countdown is running the remaining
// share of the auto-hide window is drawn into the border itself.
func bottomLine(border, accent lipgloss.Style, t entity.Toast, v lifecycle.Visual, inner int) string {
	if !t.ShowProgress || t.Duration <= 0 {
		return border.Render("╰" + strings.Repeat("─", inner) + "╯")
	}
	remaining := 1 - v.Progress/100
	if remaining < 0 {
		remaining = 0
	}
	filled := int(math.Round(remaining * float64(inner)))
	return border.Render("╰") +
		accent.Render(strings.Repeat("━", filled)) +
		border.Render(strings.Repeat("─", inner-filled)+"╯")
}

// truncate shortens s to max display cells, appending an ellipsis.
func truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	if lipgloss.Width(s) <= max {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes)) > max-1 {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "…"
}

// Stack composes every active toast onto a width x height canvas at its
// animated offset. Toasts paint in insertion order, so later toasts win
// overlapping rows. Rows outside the canvas are clipped, which is how
// off-screen entrance and exit positions disappear naturally.
func Stack(items []Item, width, height int) string {
	if height <= 0 {
		return ""
	}
	canvas := make([]string, height)
	for _, item := range items {
		if item.Visual.Opacity <= 0.01 && item.Toast.Phase != entity.PhaseEntering {
			continue
		}
		box := Box(item)
		lines := strings.Split(box, "\n")
		top := topRow(item, len(lines), height)
		for i, line := range lines {
			row := top + i
			if row < 0 || row >= height {
				continue
			}
			canvas[row] = lipgloss.PlaceHorizontal(width, lipgloss.Center, line)
		}
	}
	return strings.Join(canvas, "\n")
}

// topRow converts an anchor-relative offset into a canvas row.
func topRow(item Item, boxHeight, height int) int {
	offset := int(math.Round(item.Visual.Offset))
	switch item.Toast.Position {
	case entity.PositionTop:
		return offset
	case entity.PositionBottom:
		return height - offset - boxHeight
	default: // center
		return height/2 + offset
	}
}
