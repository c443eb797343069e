// Package toast presents transient, non-blocking notifications over a
// bubbletea UI. A Manager owns the bounded queue of active toasts and
// drives each one through its lifecycle; the Model renders the stack as a
// bubbletea component.
package toast

import (
	"github.com/cristianoliveira/bubbletoast/internal/entity"
	"github.com/cristianoliveira/bubbletoast/internal/lifecycle"
)

// Re-exported domain types so callers never import internal packages.
type (
	// ID uniquely identifies a toast for the lifetime of the process.
	ID = entity.ID
	// Type represents the toast notification type.
	Type = entity.Type
	// Position anchors a toast stack to a region of the screen.
	Position = entity.Position
	// Theme selects the color table used to paint a toast.
	Theme = entity.Theme
	// Phase is the lifecycle state of a toast entity.
	Phase = entity.Phase
	// Request describes a toast to be shown.
	Request = entity.Request
	// Toast is a snapshot of one active notification.
	Toast = entity.Toast
	// Visual holds the live animated values for one toast.
	Visual = lifecycle.Visual
)

// Toast types.
const (
	TypeSuccess = entity.TypeSuccess
	TypeError   = entity.TypeError
	TypeInfo    = entity.TypeInfo
	TypeWarning = entity.TypeWarning
	TypeLoading = entity.TypeLoading
)

// Stack positions.
const (
	PositionTop    = entity.PositionTop
	PositionBottom = entity.PositionBottom
	PositionCenter = entity.PositionCenter
)

// Themes.
const (
	ThemeLight   = entity.ThemeLight
	ThemeDark    = entity.ThemeDark
	ThemeColored = entity.ThemeColored
	ThemeSystem  = entity.ThemeSystem
)

// Lifecycle phases.
const (
	PhaseEntering = entity.PhaseEntering
	PhaseVisible  = entity.PhaseVisible
	PhaseExiting  = entity.PhaseExiting
	PhaseRemoved  = entity.PhaseRemoved
)

// DefaultDuration is the auto-hide delay applied when nothing overrides it.
const DefaultDuration = entity.DefaultDuration

// NewRequest builds a request for message with every default applied.
func NewRequest(message string) Request {
	return entity.NewRequest(message)
}
