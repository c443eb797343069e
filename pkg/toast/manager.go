package toast

import (
	"sync"
	"time"

	"github.com/cristianoliveira/bubbletoast/internal/anim"
	"github.com/cristianoliveira/bubbletoast/internal/config"
	"github.com/cristianoliveira/bubbletoast/internal/entity"
	"github.com/cristianoliveira/bubbletoast/internal/lifecycle"
	"github.com/cristianoliveira/bubbletoast/internal/logging"
	"github.com/cristianoliveira/bubbletoast/internal/queue"
	"github.com/cristianoliveira/bubbletoast/internal/render"
	"github.com/cristianoliveira/bubbletoast/internal/timer"
)

// Manager owns the bounded queue of active toasts and the lifecycle
// machine of each one. All mutations are serialized behind one mutex, so
// timer callbacks, animation completions, and operation settlements act on
// a single logical timeline. Every method returns immediately; visual
// effects play out asynchronously.
type Manager struct {
	mu sync.Mutex

	cfg    *config.Config
	log    logging.Logger
	clock  func() time.Time
	timers timer.Service
	driver anim.Driver
	// frames is set when driver is the frame-stepped default, letting
	// StepFrame advance it.
	frames *anim.FrameDriver

	queue    *queue.Queue
	machines map[entity.ID]*lifecycle.Machine
	seq      uint64
	elapsed  time.Duration

	changed  chan struct{}
	deferred []func()
	closed   bool
}

// New creates a Manager. With no options it uses the wall clock, real
// timers, and a frame-stepped animation driver advanced by the overlay
// Model.
func New(opts ...ManagerOption) *Manager {
	m := &Manager{
		cfg:      config.Default(),
		log:      logging.Default(),
		clock:    time.Now,
		machines: make(map[entity.ID]*lifecycle.Machine),
		changed:  make(chan struct{}, 1),
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.timers == nil {
		m.timers = timer.New()
	}
	if m.driver == nil {
		fd := anim.NewFrameDriver()
		m.driver = fd
		m.frames = fd
	} else if fd, ok := m.driver.(*anim.FrameDriver); ok {
		m.frames = fd
	}
	m.queue = queue.New(m.cfg.Toast.MaxVisible)
	return m
}

// Show admits a toast described by req and returns its id. If the active
// set is at capacity the oldest toast is evicted first, instantly and
// without its exit animation. Malformed requests degrade to defaults.
func (m *Manager) Show(req Request) ID {
	m.mu.Lock()
	m.ensureOpenLocked()
	m.seq++
	t := entity.FromRequest(req, m.seq, m.clock())
	if evicted := m.queue.Add(t); evicted != nil {
		if mach := m.machines[evicted.ID]; mach != nil {
			mach.Evict()
			delete(m.machines, evicted.ID)
		}
		m.log.Debug("toast evicted", "id", evicted.ID, "message", evicted.Message)
	}
	mach := lifecycle.NewMachine(t, m.machineConfig(), m.driver, m.timers, m.onExpired, m.removeLocked)
	m.machines[t.ID] = mach
	mach.Begin()
	m.reflowLocked()
	m.log.Debug("toast shown", "id", t.ID, "type", t.Type, "position", t.Position, "duration", t.Duration)
	m.notifyLocked()
	cbs := m.drainLocked()
	m.mu.Unlock()
	runAll(cbs)
	return t.ID
}

// Hide dismisses toasts: with ids it dismisses each matching toast
// (unknown ids are a no-op); with no ids it clears the entire active set.
// Dismissal plays the exit animation before removal.
func (m *Manager) Hide(ids ...ID) {
	m.mu.Lock()
	m.ensureOpenLocked()
	if len(ids) == 0 {
		for _, t := range m.queue.List() {
			if mach := m.machines[t.ID]; mach != nil {
				mach.Dismiss(lifecycle.ReasonProgrammatic)
			}
		}
	} else {
		for _, id := range ids {
			if mach := m.machines[id]; mach != nil {
				mach.Dismiss(lifecycle.ReasonProgrammatic)
			}
		}
	}
	m.notifyLocked()
	cbs := m.drainLocked()
	m.mu.Unlock()
	runAll(cbs)
}

// Success shows a success toast.
func (m *Manager) Success(message string, opts ...Option) ID {
	return m.Show(m.buildRequest(message, entity.TypeSuccess, opts))
}

// Error shows an error toast.
func (m *Manager) Error(message string, opts ...Option) ID {
	return m.Show(m.buildRequest(message, entity.TypeError, opts))
}

// Info shows an info toast.
func (m *Manager) Info(message string, opts ...Option) ID {
	return m.Show(m.buildRequest(message, entity.TypeInfo, opts))
}

// Warning shows a warning toast.
func (m *Manager) Warning(message string, opts ...Option) ID {
	return m.Show(m.buildRequest(message, entity.TypeWarning, opts))
}

// Loading shows a loading toast. It does not auto-hide unless a duration
// is explicitly supplied.
func (m *Manager) Loading(message string, opts ...Option) ID {
	req := m.buildRequest(message, entity.TypeLoading, nil)
	req.Duration = 0
	for _, opt := range opts {
		opt(&req)
	}
	return m.Show(req)
}

// Toasts returns a snapshot of the active toasts in insertion order,
// oldest first.
func (m *Manager) Toasts() []Toast {
	m.mu.Lock()
	defer m.mu.Unlock()
	items := m.queue.List()
	out := make([]Toast, 0, len(items))
	for _, t := range items {
		out = append(out, *t)
	}
	return out
}

// Get returns a snapshot of one active toast.
func (m *Manager) Get(id ID) (Toast, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	t, ok := m.queue.Get(id)
	if !ok {
		return Toast{}, false
	}
	return *t, true
}

// Visual returns the live animated values for an active toast.
func (m *Manager) Visual(id ID) (Visual, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	mach, ok := m.machines[id]
	if !ok {
		return Visual{}, false
	}
	return mach.Visual(), true
}

// AutoHideArmed reports whether an auto-hide timer is pending for id.
func (m *Manager) AutoHideArmed(id ID) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	mach, ok := m.machines[id]
	return ok && mach.AutoHideArmed()
}

// Len returns the number of active toasts.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.queue.Len()
}

// Animating reports whether any animation is in flight on the default
// frame-stepped driver.
func (m *Manager) Animating() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.frames != nil && m.frames.Active()
}

// StepFrame advances the frame-stepped animation driver by dt and reports
// whether another frame is wanted (animations still running, or a loading
// spinner that needs to keep turning). A no-op when a custom driver was
// injected.
func (m *Manager) StepFrame(dt time.Duration) bool {
	m.mu.Lock()
	if m.closed || m.frames == nil {
		m.mu.Unlock()
		return false
	}
	m.elapsed += dt
	active := m.frames.Step(dt)
	more := active || m.hasLoadingLocked()
	m.notifyLocked()
	cbs := m.drainLocked()
	m.mu.Unlock()
	runAll(cbs)
	return more
}

// Changed returns a channel that receives a signal whenever toast state
// mutates. Used by the overlay Model to re-render on off-loop events.
func (m *Manager) Changed() <-chan struct{} {
	return m.changed
}

// Close tears the manager down: every active toast is removed instantly,
// pending timers and animations are canceled, and further use panics.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return
	}
	for _, mach := range m.machines {
		mach.Evict()
	}
	m.machines = make(map[entity.ID]*lifecycle.Machine)
	m.queue.Clear()
	m.closed = true
	m.notifyLocked()
}

// onExpired handles an auto-hide timer firing. It re-enters from the
// timer service's goroutine, so it takes the lock and validates both that
// the toast is still mounted and that the firing timer generation is still
// current before acting; stale expirations are discarded.
func (m *Manager) onExpired(id entity.ID, gen uint64) {
	m.mu.Lock()
	mach, ok := m.machines[id]
	if !ok || !mach.GenMatches(gen) {
		m.mu.Unlock()
		return
	}
	m.log.Debug("toast auto-hide elapsed", "id", id)
	mach.Dismiss(lifecycle.ReasonTimeout)
	m.notifyLocked()
	cbs := m.drainLocked()
	m.mu.Unlock()
	runAll(cbs)
}

// removeLocked finalizes removal after an exit animation completes. It is
// invoked with the manager lock already held (animation completions run on
// the caller's goroutine, inside a locked section).
func (m *Manager) removeLocked(id entity.ID) {
	t := m.queue.Remove(id)
	delete(m.machines, id)
	if t == nil {
		return
	}
	if t.OnComplete != nil {
		m.deferred = append(m.deferred, t.OnComplete)
	}
	m.reflowLocked()
	m.log.Debug("toast removed", "id", id)
	m.notifyLocked()
}

// reflowLocked recomputes every active toast's resting offset after the
// active set changes.
func (m *Manager) reflowLocked() {
	active := m.queue.List()
	for _, t := range active {
		if mach := m.machines[t.ID]; mach != nil {
			mach.SetRestOffset(lifecycle.StackOffset(t, active))
		}
	}
}

// buildRequest assembles a creator-helper request from configured
// defaults, the preset type, and caller options.
func (m *Manager) buildRequest(message string, typ entity.Type, opts []Option) entity.Request {
	req := entity.NewRequest(message)
	req.Type = typ
	req.Duration = m.cfg.DefaultDuration()
	req.Position = entity.Position(m.cfg.Toast.Position)
	req.Theme = entity.Theme(m.cfg.Toast.Theme)
	for _, opt := range opts {
		opt(&req)
	}
	return req
}

func (m *Manager) machineConfig() lifecycle.Config {
	return lifecycle.Config{
		EntranceDuration: m.cfg.EntranceDuration(),
		ExitDuration:     m.cfg.ExitDuration(),
	}
}

func (m *Manager) hasLoadingLocked() bool {
	for _, t := range m.queue.List() {
		if t.Type == entity.TypeLoading {
			return true
		}
	}
	return false
}

// notifyLocked signals the change channel without blocking.
func (m *Manager) notifyLocked() {
	select {
	case m.changed <- struct{}{}:
	default:
	}
}

// drainLocked collects completion callbacks queued during a locked
// section. They run after the lock is released so a callback can call
// back into the manager.
func (m *Manager) drainLocked() []func() {
	cbs := m.deferred
	m.deferred = nil
	return cbs
}

func runAll(cbs []func()) {
	for _, cb := range cbs {
		cb()
	}
}

// ensureOpenLocked panics when the manager is used after Close. That is a
// programming mistake, not a runtime condition.
func (m *Manager) ensureOpenLocked() {
	if m.closed {
		panic("toast: manager used after Close")
	}
}

// renderItems pairs each active toast with its animated values for the
// overlay renderer.
func (m *Manager) renderItems() []render.Item {
	m.mu.Lock()
	defer m.mu.Unlock()
	items := m.queue.List()
	out := make([]render.Item, 0, len(items))
	for _, t := range items {
		mach := m.machines[t.ID]
		if mach == nil {
			continue
		}
		out = append(out, render.Item{
			Toast:   *t,
			Visual:  mach.Visual(),
			Elapsed: m.elapsed,
		})
	}
	return out
}
