package anim

import "time"

// Handle identifies a running animation for cancellation.
type Handle uint64

// Driver runs animations. Implementations are not safe for concurrent
// use; the owning manager serializes access, and completion callbacks are
// invoked on the caller's goroutine.
type Driver interface {
	// Animate transitions a value from its current position to target
	// over d using curve. apply receives every intermediate value; done,
	// if non-nil, fires once on completion. A canceled animation never
	// fires done.
	Animate(from, to float64, d time.Duration, curve Curve, apply func(float64), done func()) Handle

	// Cancel stops an animation mid-flight. Unknown handles are a no-op.
	Cancel(h Handle)
}

// FrameDriver advances animations when Step is called, one call per
// rendered frame.
type FrameDriver struct {
	next    Handle
	running map[Handle]*frameAnimation
}

type frameAnimation struct {
	tween *Tween
	apply func(float64)
	done  func()
}

// NewFrameDriver creates a frame-stepped animation driver.
func NewFrameDriver() *FrameDriver {
	return &FrameDriver{running: make(map[Handle]*frameAnimation)}
}

func (d *FrameDriver) Animate(from, to float64, dur time.Duration, curve Curve, apply func(float64), done func()) Handle {
	d.next++
	h := d.next
	d.running[h] = &frameAnimation{
		tween: NewTween(from, to, dur, curve),
		apply: apply,
		done:  done,
	}
	return h
}

func (d *FrameDriver) Cancel(h Handle) {
	delete(d.running, h)
}

// Active reports whether any animation is still running.
func (d *FrameDriver) Active() bool {
	return len(d.running) > 0
}

// Step advances every running animation by dt, applies the new values,
// and fires completion callbacks for animations that finished. Completion
// callbacks may start or cancel animations. Returns whether any animation
// remains active afterwards.
func (d *FrameDriver) Step(dt time.Duration) bool {
	var finished []Handle
	for h, a := range d.running {
		completed := a.tween.Step(dt)
		if a.apply != nil {
			a.apply(a.tween.Value())
		}
		if completed {
			finished = append(finished, h)
		}
	}
	for _, h := range finished {
		a, ok := d.running[h]
		if !ok {
			continue
		}
		delete(d.running, h)
		if a.done != nil {
			a.done()
		}
	}
	return len(d.running) > 0
}

// Instant completes every animation synchronously: the value jumps to the
// target and done fires before Animate returns. Useful for headless use
// and tests that do not care about intermediate frames.
type Instant struct {
	next Handle
}

// NewInstant creates an instantly completing driver.
func NewInstant() *Instant {
	return &Instant{}
}

func (d *Instant) Animate(from, to float64, dur time.Duration, curve Curve, apply func(float64), done func()) Handle {
	d.next++
	if apply != nil {
		apply(to)
	}
	if done != nil {
		done()
	}
	return d.next
}

func (d *Instant) Cancel(h Handle) {}
