// Package entity provides the toast domain entity and its value objects.
// It contains the data model shared by the queue, lifecycle, and render layers.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// ID uniquely identifies a toast for the lifetime of the process.
// IDs are never reused.
type ID string

// NewID generates a fresh toast ID.
func NewID() ID {
	return ID(uuid.NewString())
}

// Type represents the toast notification type.
type Type string

const (
	TypeSuccess Type = "success"
	TypeError   Type = "error"
	TypeInfo    Type = "info"
	TypeWarning Type = "warning"
	TypeLoading Type = "loading"
)

// IsValid checks if the toast type is valid.
func (t Type) IsValid() bool {
	switch t {
	case TypeSuccess, TypeError, TypeInfo, TypeWarning, TypeLoading:
		return true
	default:
		return false
	}
}

// String returns the string representation of the type.
func (t Type) String() string {
	return string(t)
}

// Position anchors a toast stack to a region of the screen.
type Position string

const (
	PositionTop    Position = "top"
	PositionBottom Position = "bottom"
	PositionCenter Position = "center"
)

// IsValid checks if the position is valid.
func (p Position) IsValid() bool {
	switch p {
	case PositionTop, PositionBottom, PositionCenter:
		return true
	default:
		return false
	}
}

// String returns the string representation of the position.
func (p Position) String() string {
	return string(p)
}

// Theme selects the color table used to paint a toast.
type Theme string

const (
	ThemeLight   Theme = "light"
	ThemeDark    Theme = "dark"
	ThemeColored Theme = "colored"
	ThemeSystem  Theme = "system"
)

// IsValid checks if the theme is valid.
func (t Theme) IsValid() bool {
	switch t {
	case ThemeLight, ThemeDark, ThemeColored, ThemeSystem:
		return true
	default:
		return false
	}
}

// String returns the string representation of the theme.
func (t Theme) String() string {
	return string(t)
}

// Phase is the lifecycle state of a toast entity. Transitions are
// one-directional (Entering -> Visible -> Exiting -> Removed) except for
// content updates, which keep the entity in Visible.
type Phase string

const (
	PhaseEntering Phase = "entering"
	PhaseVisible  Phase = "visible"
	PhaseExiting  Phase = "exiting"
	PhaseRemoved  Phase = "removed"
)

// String returns the string representation of the phase.
func (p Phase) String() string {
	return string(p)
}

// Defaults applied to requests that leave fields unset or invalid.
const (
	// DefaultDuration is the auto-hide delay applied when a request does
	// not specify one.
	DefaultDuration = 3 * time.Second

	// DefaultMaxVisible is the number of toasts allowed on screen at once.
	DefaultMaxVisible = 3
)

// Default value objects for normalization of malformed requests.
const (
	DefaultType     = TypeInfo
	DefaultPosition = PositionBottom
	DefaultTheme    = ThemeSystem
)

// Request describes a toast to be shown. The zero value is not useful;
// build requests with NewRequest so defaults are applied, then adjust
// fields as needed. A malformed request is never rejected: unknown enum
// values degrade to defaults and an empty message renders blank.
type Request struct {
	// Message is the primary text of the toast.
	Message string

	// Description is optional secondary text. Toasts with a description
	// render taller.
	Description string

	// Type selects the icon and accent color.
	Type Type

	// Position anchors the toast stack.
	Position Position

	// Theme selects the color table.
	Theme Theme

	// Duration is the auto-hide delay. Zero disables auto-hide entirely;
	// the toast then stays until dismissed.
	Duration time.Duration

	// Closable indicates the toast can be dismissed by the user.
	Closable bool

	// ShowProgress requests a countdown bar shrinking linearly over
	// Duration. Purely cosmetic; it carries no control authority.
	ShowProgress bool

	// DeferAutoHide suppresses arming the auto-hide timer when the toast
	// enters. A later content update arms it with Duration. Used for
	// toasts bound to an in-flight operation.
	DeferAutoHide bool

	// OnComplete is invoked once, after the exit animation finishes and
	// the toast has been removed. It is not invoked on capacity eviction.
	OnComplete func()
}

// NewRequest builds a request for message with every default applied.
func NewRequest(message string) Request {
	return Request{
		Message:  message,
		Type:     DefaultType,
		Position: DefaultPosition,
		Theme:    DefaultTheme,
		Duration: DefaultDuration,
		Closable: true,
	}
}

// Normalize replaces invalid enum values with defaults and clamps
// negative durations to zero. Malformed input degrades, it never fails.
func (r Request) Normalize() Request {
	if !r.Type.IsValid() {
		r.Type = DefaultType
	}
	if !r.Position.IsValid() {
		r.Position = DefaultPosition
	}
	if !r.Theme.IsValid() {
		r.Theme = DefaultTheme
	}
	if r.Duration < 0 {
		r.Duration = 0
	}
	return r
}

// Toast is one active notification. It is owned exclusively by the queue
// for its lifetime; the lifecycle machine bound to it is the only other
// component that mutates it.
type Toast struct {
	// ID is the opaque unique identity of the toast.
	ID ID

	// Seq is the insertion order, used to break creation-time ties
	// during eviction.
	Seq uint64

	// CreatedAt is the creation timestamp used for eviction ordering.
	CreatedAt time.Time

	// Message and Type are mutable after creation when the toast is
	// bound to an asynchronous operation.
	Message string
	Type    Type

	// Immutable configuration from the request.
	Description   string
	Position      Position
	Theme         Theme
	Duration      time.Duration
	Closable      bool
	ShowProgress  bool
	DeferAutoHide bool
	OnComplete    func()

	// Phase is the current lifecycle state.
	Phase Phase

	// Index is the 0-based stacking position among currently active
	// toasts, recomputed whenever the active set changes. The index is
	// global across positions.
	Index int
}

// FromRequest stamps a normalized request into a new entity.
func FromRequest(r Request, seq uint64, now time.Time) *Toast {
	r = r.Normalize()
	return &Toast{
		ID:            NewID(),
		Seq:           seq,
		CreatedAt:     now,
		Message:       r.Message,
		Type:          r.Type,
		Description:   r.Description,
		Position:      r.Position,
		Theme:         r.Theme,
		Duration:      r.Duration,
		Closable:      r.Closable,
		ShowProgress:  r.ShowProgress,
		DeferAutoHide: r.DeferAutoHide,
		OnComplete:    r.OnComplete,
		Phase:         PhaseEntering,
	}
}

// OlderThan reports whether t was created before other, breaking
// creation-time ties by insertion order.
func (t *Toast) OlderThan(other *Toast) bool {
	if t.CreatedAt.Equal(other.CreatedAt) {
		return t.Seq < other.Seq
	}
	return t.CreatedAt.Before(other.CreatedAt)
}
