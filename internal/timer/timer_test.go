package timer

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManual_FiresAtDeadline(t *testing.T) {
	m := NewManual()
	var fired atomic.Int32
	m.Schedule(100*time.Millisecond, func() { fired.Add(1) })

	m.Advance(50 * time.Millisecond)
	assert.Equal(t, int32(0), fired.Load())

	m.Advance(50 * time.Millisecond)
	assert.Equal(t, int32(1), fired.Load())
	assert.Equal(t, 0, m.Pending())
}

func TestManual_FiresInDeadlineOrder(t *testing.T) {
	m := NewManual()
	var order []int
	m.Schedule(200*time.Millisecond, func() { order = append(order, 2) })
	m.Schedule(100*time.Millisecond, func() { order = append(order, 1) })

	m.Advance(300 * time.Millisecond)

	assert.Equal(t, []int{1, 2}, order)
}

func TestManual_CancelPreventsFiring(t *testing.T) {
	m := NewManual()
	var fired bool
	tok := m.Schedule(100*time.Millisecond, func() { fired = true })

	m.Cancel(tok)
	m.Advance(time.Second)

	assert.False(t, fired)
	assert.Equal(t, 0, m.Pending())
}

func TestManual_CancelUnknownIsNoop(t *testing.T) {
	m := NewManual()
	m.Cancel(Token(42))
	assert.Equal(t, 0, m.Pending())
}

func TestManual_CallbackMaySchedule(t *testing.T) {
	m := NewManual()
	var second bool
	m.Schedule(100*time.Millisecond, func() {
		m.Schedule(100*time.Millisecond, func() { second = true })
	})

	m.Advance(100 * time.Millisecond)
	assert.False(t, second)
	assert.Equal(t, 1, m.Pending())

	m.Advance(100 * time.Millisecond)
	assert.True(t, second)
}

func TestClockService_Fires(t *testing.T) {
	s := New()
	done := make(chan struct{})
	s.Schedule(5*time.Millisecond, func() { close(done) })

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		require.Fail(t, "timer did not fire")
	}
}

func TestClockService_CancelPreventsFiring(t *testing.T) {
	s := New()
	var fired atomic.Bool
	tok := s.Schedule(50*time.Millisecond, func() { fired.Store(true) })

	s.Cancel(tok)
	time.Sleep(120 * time.Millisecond)

	assert.False(t, fired.Load())
}
