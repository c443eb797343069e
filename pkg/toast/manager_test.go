package toast

import (
	"testing"
	"time"

	"github.com/cristianoliveira/bubbletoast/internal/anim"
	"github.com/cristianoliveira/bubbletoast/internal/logging"
	"github.com/cristianoliveira/bubbletoast/internal/timer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestManager builds a manager with manual timers and the default
// frame-stepped driver, advanced explicitly via stepFrames.
func newTestManager(opts ...ManagerOption) (*Manager, *timer.Manual) {
	timers := timer.NewManual()
	base := []ManagerOption{WithTimerService(timers), WithLogger(logging.Nop())}
	return New(append(base, opts...)...), timers
}

// stepFrames advances the manager's animations by roughly d in 16ms frames.
func stepFrames(m *Manager, d time.Duration) {
	frame := 16 * time.Millisecond
	for elapsed := time.Duration(0); elapsed < d; elapsed += frame {
		m.StepFrame(frame)
	}
}

func TestShow_AdmitsAndEnters(t *testing.T) {
	m, _ := newTestManager()

	id := m.Show(NewRequest("saved"))

	require.NotEmpty(t, id)
	assert.Equal(t, 1, m.Len())
	got, ok := m.Get(id)
	require.True(t, ok)
	assert.Equal(t, "saved", got.Message)
	assert.Equal(t, PhaseEntering, got.Phase)
	assert.True(t, m.Animating())

	stepFrames(m, 400*time.Millisecond)

	got, _ = m.Get(id)
	assert.Equal(t, PhaseVisible, got.Phase)
	v, ok := m.Visual(id)
	require.True(t, ok)
	assert.Equal(t, 1.0, v.Opacity)
}

func TestShow_EvictsOldestAtCapacity(t *testing.T) {
	evicted := false
	m, _ := newTestManager(WithMaxVisible(3))

	first := m.Show(func() Request {
		r := NewRequest("first")
		r.OnComplete = func() { evicted = true }
		return r
	}())
	m.Show(NewRequest("second"))
	m.Show(NewRequest("third"))
	fourth := m.Show(NewRequest("fourth"))

	assert.Equal(t, 3, m.Len())
	_, ok := m.Get(first)
	assert.False(t, ok, "the oldest toast is gone the instant the fourth arrives")
	_, ok = m.Get(fourth)
	assert.True(t, ok)
	assert.False(t, evicted, "eviction skips the completion callback")

	messages := make([]string, 0, 3)
	for _, tt := range m.Toasts() {
		messages = append(messages, tt.Message)
	}
	assert.Equal(t, []string{"second", "third", "fourth"}, messages)
}

func TestShow_EvictionSkipsExitAnimation(t *testing.T) {
	m, _ := newTestManager(WithMaxVisible(1))

	first := m.Show(NewRequest("first"))
	stepFrames(m, 400*time.Millisecond)
	m.Show(NewRequest("second"))

	// No exit plays for the evicted toast: it is simply not there anymore,
	// on the very next read.
	_, ok := m.Visual(first)
	assert.False(t, ok)
	assert.Equal(t, 1, m.Len())
}

func TestShow_NormalizesMalformedRequest(t *testing.T) {
	m, _ := newTestManager()

	id := m.Show(Request{
		Message:  "",
		Type:     Type("bogus"),
		Position: Position("left"),
		Theme:    Theme("neon"),
		Duration: -time.Second,
	})

	got, ok := m.Get(id)
	require.True(t, ok)
	assert.Equal(t, TypeInfo, got.Type)
	assert.Equal(t, PositionBottom, got.Position)
	assert.Equal(t, ThemeSystem, got.Theme)
	assert.Zero(t, got.Duration)
	assert.False(t, m.AutoHideArmed(id), "clamped duration means sticky")
}

func TestHide_PlaysExitThenRemoves(t *testing.T) {
	completed := false
	m, _ := newTestManager()
	id := m.Success("saved", WithOnComplete(func() { completed = true }))
	stepFrames(m, 400*time.Millisecond)

	m.Hide(id)

	got, ok := m.Get(id)
	require.True(t, ok, "still mounted while the exit plays")
	assert.Equal(t, PhaseExiting, got.Phase)
	assert.False(t, completed)

	stepFrames(m, 300*time.Millisecond)

	_, ok = m.Get(id)
	assert.False(t, ok)
	assert.True(t, completed)
	assert.Zero(t, m.Len())
}

func TestHide_NoIDsClearsAll(t *testing.T) {
	m, _ := newTestManager()
	m.Info("one")
	m.Info("two")
	m.Info("three")

	m.Hide()
	stepFrames(m, 300*time.Millisecond)

	assert.Zero(t, m.Len())
}

func TestHide_UnknownIDIsNoOp(t *testing.T) {
	m, _ := newTestManager()
	m.Info("kept")

	m.Hide(ID("nope"))

	assert.Equal(t, 1, m.Len())
}

func TestHide_SecondHideIsNoOp(t *testing.T) {
	m, _ := newTestManager()
	id := m.Info("once")

	m.Hide(id)
	m.Hide(id)
	stepFrames(m, 300*time.Millisecond)

	assert.Zero(t, m.Len())
}

func TestAutoHide_DismissesAfterDuration(t *testing.T) {
	m, timers := newTestManager()
	id := m.Success("saved", WithDuration(3*time.Second))
	stepFrames(m, 400*time.Millisecond)
	require.True(t, m.AutoHideArmed(id))

	timers.Advance(3 * time.Second)

	got, ok := m.Get(id)
	require.True(t, ok)
	assert.Equal(t, PhaseExiting, got.Phase)

	stepFrames(m, 300*time.Millisecond)
	assert.Zero(t, m.Len())
}

func TestAutoHide_ZeroDurationIsSticky(t *testing.T) {
	m, timers := newTestManager()
	id := m.Info("pinned", WithDuration(0))

	timers.Advance(time.Hour)
	stepFrames(m, time.Second)

	_, ok := m.Get(id)
	assert.True(t, ok)
	assert.False(t, m.AutoHideArmed(id))
}

func TestCreators(t *testing.T) {
	tests := []struct {
		name string
		show func(m *Manager) ID
		typ  Type
	}{
		{"success", func(m *Manager) ID { return m.Success("ok") }, TypeSuccess},
		{"error", func(m *Manager) ID { return m.Error("boom") }, TypeError},
		{"info", func(m *Manager) ID { return m.Info("fyi") }, TypeInfo},
		{"warning", func(m *Manager) ID { return m.Warning("careful") }, TypeWarning},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := newTestManager()
			id := tt.show(m)
			got, ok := m.Get(id)
			require.True(t, ok)
			assert.Equal(t, tt.typ, got.Type)
			assert.Equal(t, 3*time.Second, got.Duration)
			assert.True(t, m.AutoHideArmed(id))
		})
	}
}

func TestLoading_DoesNotAutoHide(t *testing.T) {
	m, timers := newTestManager()
	id := m.Loading("working")

	got, ok := m.Get(id)
	require.True(t, ok)
	assert.Equal(t, TypeLoading, got.Type)
	assert.Zero(t, got.Duration)

	timers.Advance(time.Hour)
	_, ok = m.Get(id)
	assert.True(t, ok)
}

func TestLoading_ExplicitDurationStillArms(t *testing.T) {
	m, _ := newTestManager()
	id := m.Loading("working", WithDuration(5*time.Second))

	got, _ := m.Get(id)
	assert.Equal(t, 5*time.Second, got.Duration)
	assert.True(t, m.AutoHideArmed(id))
}

func TestCreatorOptions(t *testing.T) {
	m, _ := newTestManager()

	id := m.Success("deployed",
		WithDescription("3 services restarted"),
		WithPosition(PositionTop),
		WithTheme(ThemeDark),
		WithClosable(false),
		WithProgress(true),
	)

	got, ok := m.Get(id)
	require.True(t, ok)
	assert.Equal(t, "3 services restarted", got.Description)
	assert.Equal(t, PositionTop, got.Position)
	assert.Equal(t, ThemeDark, got.Theme)
	assert.False(t, got.Closable)
	assert.True(t, got.ShowProgress)
}

func TestReflow_ReindexesOnRemoval(t *testing.T) {
	m, _ := newTestManager(WithAnimationDriver(anim.NewInstant()))
	m.Info("a")
	b := m.Info("b")
	m.Info("c")

	m.Hide(b)

	toasts := m.Toasts()
	require.Len(t, toasts, 2)
	assert.Equal(t, 0, toasts[0].Index)
	assert.Equal(t, 1, toasts[1].Index)
	assert.Equal(t, "a", toasts[0].Message)
	assert.Equal(t, "c", toasts[1].Message)
}

func TestInstantDriver_CompletesSynchronously(t *testing.T) {
	completed := false
	m, _ := newTestManager(WithAnimationDriver(anim.NewInstant()))

	id := m.Success("saved", WithOnComplete(func() { completed = true }))
	got, _ := m.Get(id)
	assert.Equal(t, PhaseVisible, got.Phase)

	m.Hide(id)

	_, ok := m.Get(id)
	assert.False(t, ok)
	assert.True(t, completed)
	assert.False(t, m.Animating())
}

func TestStepFrame_KeepsTickingForSpinner(t *testing.T) {
	m, _ := newTestManager()
	m.Loading("working")
	stepFrames(m, 500*time.Millisecond)

	assert.False(t, m.Animating(), "entrance finished")
	assert.True(t, m.StepFrame(16*time.Millisecond), "spinner still wants frames")
}

func TestStepFrame_StopsWhenIdle(t *testing.T) {
	m, _ := newTestManager()
	m.Info("done soon", WithDuration(0))
	stepFrames(m, 500*time.Millisecond)

	assert.False(t, m.StepFrame(16*time.Millisecond))
}

func TestChanged_SignalsOnMutation(t *testing.T) {
	m, _ := newTestManager()

	m.Info("hello")

	select {
	case <-m.Changed():
	default:
		t.Fatal("expected a change signal after Show")
	}
}

func TestClose(t *testing.T) {
	m, timers := newTestManager()
	m.Info("a")
	m.Info("b")

	m.Close()

	assert.Zero(t, timers.Pending())
	assert.Panics(t, func() { m.Show(NewRequest("late")) })
	assert.Panics(t, func() { m.Hide() })
	assert.NotPanics(t, m.Close, "closing twice is fine")
	assert.False(t, m.StepFrame(16*time.Millisecond))
}

func TestToasts_SnapshotInsertionOrder(t *testing.T) {
	m, _ := newTestManager()
	m.Info("first")
	m.Info("second")

	toasts := m.Toasts()
	require.Len(t, toasts, 2)
	assert.Equal(t, "first", toasts[0].Message)
	assert.Equal(t, "second", toasts[1].Message)

	// The snapshot is detached from manager state.
	toasts[0].Message = "mutated"
	fresh := m.Toasts()
	assert.Equal(t, "first", fresh[0].Message)
}
