package toast

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cristianoliveira/bubbletoast/internal/render"
)

const (
	defaultViewportWidth  = 80
	defaultViewportHeight = 24

	// maxFrameDelta guards against huge deltas after a stall (suspended
	// terminal, debugger pause) that would make animations jump.
	maxFrameDelta = 250 * time.Millisecond
)

// Model is the bubbletea overlay component. Embed it in a host model,
// forward messages to Update, and compose View (or Overlay) into the host
// view. The zero value is not usable; construct with NewModel.
type Model struct {
	manager *Manager

	width     int
	height    int
	ticking   bool
	lastFrame time.Time
	interval  time.Duration
}

// NewModel creates the overlay component for a manager.
func NewModel(m *Manager) Model {
	return Model{
		manager:  m,
		width:    defaultViewportWidth,
		height:   defaultViewportHeight,
		interval: m.cfg.FrameInterval(),
	}
}

// Manager returns the underlying toast manager.
func (mdl Model) Manager() *Manager {
	return mdl.manager
}

// Init subscribes to manager change notifications.
func (mdl Model) Init() tea.Cmd {
	return mdl.listenChanges()
}

// Update handles overlay messages and drives the animation frame loop.
func (mdl Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		mdl.width = msg.Width
		mdl.height = msg.Height
		return mdl, nil
	case ShowMsg:
		mdl.manager.Show(msg.Request)
		return mdl.startTicking()
	case DismissMsg:
		mdl.manager.Hide(msg.ID)
		return mdl.startTicking()
	case ClearMsg:
		mdl.manager.Hide()
		return mdl.startTicking()
	case changedMsg:
		next, cmd := mdl.startTicking()
		return next, tea.Batch(next.listenChanges(), cmd)
	case FrameMsg:
		return mdl.stepFrame(time.Time(msg))
	}
	return mdl, nil
}

// View renders the active toast stack onto a viewport-sized canvas.
func (mdl Model) View() string {
	return render.Stack(mdl.manager.renderItems(), mdl.width, mdl.height)
}

// Overlay composes the toast stack over a base view: rows occupied by a
// toast replace the corresponding base row.
func (mdl Model) Overlay(base string) string {
	top := strings.Split(mdl.View(), "\n")
	bottom := strings.Split(base, "\n")
	out := make([]string, len(top))
	for i := range top {
		if strings.TrimSpace(top[i]) == "" && i < len(bottom) {
			out[i] = bottom[i]
			continue
		}
		out[i] = top[i]
	}
	return strings.Join(out, "\n")
}

// startTicking kicks off the frame loop unless it is already running.
func (mdl Model) startTicking() (Model, tea.Cmd) {
	if mdl.ticking {
		return mdl, nil
	}
	mdl.ticking = true
	mdl.lastFrame = time.Time{}
	return mdl, mdl.frame()
}

// stepFrame advances animations by the elapsed wall time and schedules the
// next frame while anything is still moving.
func (mdl Model) stepFrame(now time.Time) (Model, tea.Cmd) {
	dt := mdl.interval
	if !mdl.lastFrame.IsZero() {
		if d := now.Sub(mdl.lastFrame); d > 0 && d <= maxFrameDelta {
			dt = d
		}
	}
	mdl.lastFrame = now
	if mdl.manager.StepFrame(dt) {
		return mdl, mdl.frame()
	}
	mdl.ticking = false
	return mdl, nil
}

// frame schedules the next animation frame.
func (mdl Model) frame() tea.Cmd {
	return tea.Tick(mdl.interval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}

// listenChanges waits for the next manager state change.
func (mdl Model) listenChanges() tea.Cmd {
	changed := mdl.manager.Changed()
	return func() tea.Msg {
		<-changed
		return changedMsg{}
	}
}
