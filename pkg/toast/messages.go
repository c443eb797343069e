package toast

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Messages for raising toasts from anywhere in a bubbletea program: child
// models return the matching command and the host forwards the message to
// the overlay's Update.

// ShowMsg requests a toast.
type ShowMsg struct {
	Request Request
}

// DismissMsg dismisses one toast with its exit animation.
type DismissMsg struct {
	ID ID
}

// ClearMsg dismisses every active toast.
type ClearMsg struct{}

// PromiseSettledMsg reports that an operation bound via PromiseCmd
// finished. Err carries the operation's failure, unchanged.
type PromiseSettledMsg struct {
	Err error
}

// FrameMsg drives the overlay's animation frame loop.
type FrameMsg time.Time

// changedMsg signals a manager state change from outside the tea loop.
type changedMsg struct{}

// ShowCmd returns a command that raises a toast.
func ShowCmd(req Request) tea.Cmd {
	return func() tea.Msg {
		return ShowMsg{Request: req}
	}
}

// DismissCmd returns a command that dismisses a toast.
func DismissCmd(id ID) tea.Cmd {
	return func() tea.Msg {
		return DismissMsg{ID: id}
	}
}

// ClearCmd returns a command that dismisses every toast.
func ClearCmd() tea.Cmd {
	return func() tea.Msg {
		return ClearMsg{}
	}
}

// PromiseCmd runs an operation on the command's goroutine with a toast
// bound to it, and delivers the settlement back into the program.
func (m *Manager) PromiseCmd(op func(context.Context) error, msgs Messages, opts ...Option) tea.Cmd {
	return func() tea.Msg {
		err := m.Promise(context.Background(), op, msgs, opts...)
		return PromiseSettledMsg{Err: err}
	}
}
