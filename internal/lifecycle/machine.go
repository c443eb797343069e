// Package lifecycle drives each toast through its visual state machine:
// Entering -> Visible -> Exiting -> Removed, with a Visible self-loop on
// content updates. One Machine exists per active toast, keyed by entity id
// in the owning manager; a removed toast has no machine, which makes every
// stale timer or animation event fall through harmlessly.
package lifecycle

import (
	"time"

	"github.com/cristianoliveira/bubbletoast/internal/anim"
	"github.com/cristianoliveira/bubbletoast/internal/entity"
	"github.com/cristianoliveira/bubbletoast/internal/timer"
)

// Animation timing defaults.
const (
	// DefaultEntranceDuration is the entrance opacity fade time.
	DefaultEntranceDuration = 300 * time.Millisecond
	// DefaultExitDuration is the exit fade time.
	DefaultExitDuration = 250 * time.Millisecond

	// enterScale is the starting scale of center-anchored toasts.
	enterScale = 0.85
)

// Config carries the animation timing knobs for a machine.
type Config struct {
	EntranceDuration time.Duration
	ExitDuration     time.Duration
}

// WithDefaults fills unset durations.
func (c Config) WithDefaults() Config {
	if c.EntranceDuration <= 0 {
		c.EntranceDuration = DefaultEntranceDuration
	}
	if c.ExitDuration <= 0 {
		c.ExitDuration = DefaultExitDuration
	}
	return c
}

// DismissReason records what triggered the transition to Exiting.
type DismissReason string

const (
	ReasonTimeout      DismissReason = "timeout"
	ReasonUser         DismissReason = "user"
	ReasonProgrammatic DismissReason = "programmatic"
)

// Visual holds the live animated values for one toast, consumed by the
// renderer.
type Visual struct {
	// Opacity in [0,1].
	Opacity float64
	// Offset in rows from the anchoring edge (or from center for
	// center-anchored toasts). Negative offsets are off-screen.
	Offset float64
	// Scale in (0,1], used by center-anchored entrances and exits.
	Scale float64
	// Progress of the cosmetic countdown bar, 0 to 100.
	Progress float64
}

// Machine sequences one toast through its lifecycle. Methods must be
// called under the owning manager's lock; the expired callback is the only
// event that re-enters from another goroutine, and it must route back
// through the manager.
type Machine struct {
	toast  *entity.Toast
	cfg    Config
	driver anim.Driver
	timers timer.Service

	visual Visual
	placed bool

	timerTok   timer.Token
	timerGen   uint64
	timerArmed bool

	opacityHandle  anim.Handle
	opacityActive  bool
	moveHandle     anim.Handle
	moveActive     bool
	scaleHandle    anim.Handle
	scaleActive    bool
	progressHandle anim.Handle
	progressActive bool

	// expired is invoked from the timer service's goroutine when the
	// auto-hide fires. The generation detects timers that were rearmed
	// or canceled after firing.
	expired func(id entity.ID, gen uint64)

	// removed is invoked under the owner's lock once the exit animation
	// completes and the entity reaches Removed.
	removed func(id entity.ID)
}

// NewMachine binds a lifecycle machine to a toast entity.
func NewMachine(t *entity.Toast, cfg Config, driver anim.Driver, timers timer.Service,
	expired func(entity.ID, uint64), removed func(entity.ID)) *Machine {
	return &Machine{
		toast:   t,
		cfg:     cfg.WithDefaults(),
		driver:  driver,
		timers:  timers,
		expired: expired,
		removed: removed,
	}
}

// Toast returns the entity this machine drives.
func (m *Machine) Toast() *entity.Toast {
	return m.toast
}

// Visual returns the current animated values.
func (m *Machine) Visual() Visual {
	return m.visual
}

// Phase returns the current lifecycle phase.
func (m *Machine) Phase() entity.Phase {
	return m.toast.Phase
}

// AutoHideArmed reports whether an auto-hide timer is pending.
func (m *Machine) AutoHideArmed() bool {
	return m.timerArmed
}

// Begin starts the entrance: opacity fades in over the entrance duration
// while the position (or scale, for center-anchored toasts) springs to its
// resting value. The auto-hide timer is armed when the configured duration
// is positive, unless deferred for an operation-bound toast.
func (m *Machine) Begin() {
	t := m.toast
	t.Phase = entity.PhaseEntering
	m.visual = Visual{Scale: 1}
	if t.Position == entity.PositionCenter {
		m.visual.Scale = enterScale
		m.scaleActive = true
		m.scaleHandle = m.driver.Animate(enterScale, 1, m.cfg.EntranceDuration, anim.CurveSpring,
			func(v float64) { m.visual.Scale = v },
			func() { m.scaleActive = false })
	} else {
		m.visual.Offset = OffscreenOffset(t)
	}
	m.opacityActive = true
	m.opacityHandle = m.driver.Animate(0, 1, m.cfg.EntranceDuration, anim.CurveEaseInOut,
		func(v float64) { m.visual.Opacity = v },
		m.finishEntrance)
	if t.ShowProgress && t.Duration > 0 {
		m.startProgress()
	}
	if t.Duration > 0 && !t.DeferAutoHide {
		m.arm(t.Duration)
	}
}

// SetRestOffset retargets the toast's resting position, springing from the
// current offset. Called on admission and whenever the active set changes.
// Center-anchored toasts snap on their first placement instead of sliding
// in from offset zero.
func (m *Machine) SetRestOffset(off float64) {
	t := m.toast
	if t.Phase == entity.PhaseExiting || t.Phase == entity.PhaseRemoved {
		return
	}
	if t.Position == entity.PositionCenter && !m.placed {
		m.placed = true
		m.visual.Offset = off
		return
	}
	m.placed = true
	if m.moveActive {
		m.driver.Cancel(m.moveHandle)
	}
	m.moveActive = true
	m.moveHandle = m.driver.Animate(m.visual.Offset, off, m.cfg.EntranceDuration, anim.CurveSpring,
		func(v float64) { m.visual.Offset = v },
		func() { m.moveActive = false })
}

// UpdateContent mutates the displayed message and type without a phase
// change. Accepted during Entering and Visible; it does not replay the
// entrance. The auto-hide timer is rescheduled with the configured
// duration. Returns false when the update arrived too late (the toast is
// already exiting or removed) and was discarded.
func (m *Machine) UpdateContent(message string, typ entity.Type) bool {
	t := m.toast
	if t.Phase == entity.PhaseExiting || t.Phase == entity.PhaseRemoved {
		return false
	}
	t.Message = message
	if typ.IsValid() {
		t.Type = typ
	}
	if t.Duration > 0 {
		m.arm(t.Duration)
		if t.ShowProgress {
			m.startProgress()
		}
	}
	return true
}

// GenMatches reports whether a fired timer generation is still current.
func (m *Machine) GenMatches(gen uint64) bool {
	return m.timerArmed && m.timerGen == gen
}

// Dismiss transitions to Exiting: entrance-phase animations and the
// auto-hide timer are canceled, then opacity fades out while the position
// eases back toward the off-screen value (simple ease-out, no spring).
// Already exiting or removed toasts ignore the call.
func (m *Machine) Dismiss(reason DismissReason) bool {
	t := m.toast
	if t.Phase == entity.PhaseExiting || t.Phase == entity.PhaseRemoved {
		return false
	}
	m.cancelTimer()
	m.cancelAnimations()
	t.Phase = entity.PhaseExiting
	if t.Position == entity.PositionCenter {
		m.scaleActive = true
		m.scaleHandle = m.driver.Animate(m.visual.Scale, enterScale, m.cfg.ExitDuration, anim.CurveEaseOut,
			func(v float64) { m.visual.Scale = v },
			func() { m.scaleActive = false })
	} else {
		m.moveActive = true
		m.moveHandle = m.driver.Animate(m.visual.Offset, OffscreenOffset(t), m.cfg.ExitDuration, anim.CurveEaseOut,
			func(v float64) { m.visual.Offset = v },
			func() { m.moveActive = false })
	}
	// Opacity completes the exit; it must start last so that with a
	// synchronous driver the removal callback runs after every other
	// animation has been set up.
	m.opacityActive = true
	m.opacityHandle = m.driver.Animate(m.visual.Opacity, 0, m.cfg.ExitDuration, anim.CurveEaseOut,
		func(v float64) { m.visual.Opacity = v },
		m.finishExit)
	return true
}

// Evict tears the toast down instantly: no exit animation plays and the
// completion callback is not invoked. Used for capacity-forced eviction.
func (m *Machine) Evict() {
	m.cancelTimer()
	m.cancelAnimations()
	m.toast.Phase = entity.PhaseRemoved
}

// finishEntrance completes Entering -> Visible.
func (m *Machine) finishEntrance() {
	m.opacityActive = false
	if m.toast.Phase == entity.PhaseEntering {
		m.toast.Phase = entity.PhaseVisible
	}
}

// finishExit completes Exiting -> Removed and notifies the owner.
func (m *Machine) finishExit() {
	m.opacityActive = false
	m.toast.Phase = entity.PhaseRemoved
	m.removed(m.toast.ID)
}

// arm schedules the auto-hide timer, canceling any outstanding one first
// so at most one live timer exists per entity.
func (m *Machine) arm(d time.Duration) {
	m.cancelTimer()
	m.timerGen++
	gen := m.timerGen
	id := m.toast.ID
	m.timerArmed = true
	m.timerTok = m.timers.Schedule(d, func() {
		m.expired(id, gen)
	})
}

func (m *Machine) cancelTimer() {
	if m.timerArmed {
		m.timers.Cancel(m.timerTok)
		m.timerArmed = false
	}
}

// startProgress restarts the cosmetic countdown, 0 to 100 linearly over
// the configured auto-hide duration.
func (m *Machine) startProgress() {
	if m.progressActive {
		m.driver.Cancel(m.progressHandle)
	}
	m.visual.Progress = 0
	m.progressActive = true
	m.progressHandle = m.driver.Animate(0, 100, m.toast.Duration, anim.CurveLinear,
		func(v float64) { m.visual.Progress = v },
		func() { m.progressActive = false })
}

func (m *Machine) cancelAnimations() {
	if m.opacityActive {
		m.driver.Cancel(m.opacityHandle)
		m.opacityActive = false
	}
	if m.moveActive {
		m.driver.Cancel(m.moveHandle)
		m.moveActive = false
	}
	if m.scaleActive {
		m.driver.Cancel(m.scaleHandle)
		m.scaleActive = false
	}
	if m.progressActive {
		m.driver.Cancel(m.progressHandle)
		m.progressActive = false
	}
}
