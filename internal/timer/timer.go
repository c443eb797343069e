// Package timer provides the single-shot timer capability used for
// auto-hide scheduling. Callbacks fire at most once and can be canceled.
package timer

import (
	"sync"
	"time"
)

// Token identifies a scheduled callback.
type Token uint64

// Service schedules single-shot callbacks after a duration.
type Service interface {
	// Schedule arms a one-shot callback after d. The callback runs on an
	// unspecified goroutine.
	Schedule(d time.Duration, fn func()) Token
	// Cancel stops a pending callback. Canceling an unknown or already
	// fired token is a no-op.
	Cancel(tok Token)
}

// clockService is the time.AfterFunc backed implementation.
type clockService struct {
	mu     sync.Mutex
	next   Token
	active map[Token]*time.Timer
}

// New returns a Service backed by the wall clock.
func New() Service {
	return &clockService{active: make(map[Token]*time.Timer)}
}

func (s *clockService) Schedule(d time.Duration, fn func()) Token {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.next++
	tok := s.next
	s.active[tok] = time.AfterFunc(d, func() {
		s.mu.Lock()
		_, live := s.active[tok]
		delete(s.active, tok)
		s.mu.Unlock()
		if live {
			fn()
		}
	})
	return tok
}

func (s *clockService) Cancel(tok Token) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if t, ok := s.active[tok]; ok {
		t.Stop()
		delete(s.active, tok)
	}
}

// Manual is a Service driven explicitly via Advance. It keeps a virtual
// clock, which makes timer-dependent behavior deterministic in tests.
type Manual struct {
	mu      sync.Mutex
	next    Token
	now     time.Duration
	pending map[Token]*manualEntry
}

type manualEntry struct {
	deadline time.Duration
	fn       func()
}

// NewManual returns a manually driven timer service.
func NewManual() *Manual {
	return &Manual{pending: make(map[Token]*manualEntry)}
}

func (m *Manual) Schedule(d time.Duration, fn func()) Token {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.next++
	tok := m.next
	m.pending[tok] = &manualEntry{deadline: m.now + d, fn: fn}
	return tok
}

func (m *Manual) Cancel(tok Token) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.pending, tok)
}

// Pending returns the number of armed timers.
func (m *Manual) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.pending)
}

// Advance moves the virtual clock forward by d and fires every callback
// whose deadline has passed, in deadline order. Callbacks run without the
// internal lock held, so they may schedule or cancel timers.
func (m *Manual) Advance(d time.Duration) {
	m.mu.Lock()
	m.now += d
	m.mu.Unlock()
	for {
		fn := m.popDue()
		if fn == nil {
			return
		}
		fn()
	}
}

// popDue removes and returns the due callback with the earliest deadline,
// or nil when none is due.
func (m *Manual) popDue() func() {
	m.mu.Lock()
	defer m.mu.Unlock()
	var (
		dueTok   Token
		dueEntry *manualEntry
	)
	for tok, e := range m.pending {
		if e.deadline > m.now {
			continue
		}
		if dueEntry == nil || e.deadline < dueEntry.deadline ||
			(e.deadline == dueEntry.deadline && tok < dueTok) {
			dueTok, dueEntry = tok, e
		}
	}
	if dueEntry == nil {
		return nil
	}
	delete(m.pending, dueTok)
	return dueEntry.fn
}
