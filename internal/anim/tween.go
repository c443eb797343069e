package anim

import (
	"time"

	"github.com/charmbracelet/harmonica"
)

// Spring tuning for entrance movement. Under-damped enough to feel
// springy, damped enough to settle within a few hundred milliseconds.
const (
	springFrequency = 7.5
	springDamping   = 0.8

	// springEpsilon defines "settled": position within epsilon of the
	// target with velocity below epsilon.
	springEpsilon = 0.01

	// springMaxRuntime forces a spring to finish even if numeric noise
	// keeps it from settling.
	springMaxRuntime = 2 * time.Second
)

// Tween animates a scalar value toward a target. Curve-based tweens run
// for a fixed duration; spring tweens integrate until they settle.
type Tween struct {
	curve    Curve
	from     float64
	to       float64
	duration time.Duration
	elapsed  time.Duration
	value    float64
	velocity float64
	done     bool
}

// NewTween creates a tween from the value's current position to a target.
// A non-positive duration completes on the first step.
func NewTween(from, to float64, d time.Duration, curve Curve) *Tween {
	if !curve.IsValid() {
		curve = CurveLinear
	}
	return &Tween{
		curve:    curve,
		from:     from,
		to:       to,
		duration: d,
		value:    from,
	}
}

// Value returns the current animated value.
func (tw *Tween) Value() float64 {
	return tw.value
}

// Target returns the value the tween is heading toward.
func (tw *Tween) Target() float64 {
	return tw.to
}

// Done reports whether the tween has completed.
func (tw *Tween) Done() bool {
	return tw.done
}

// Step advances the tween by dt and reports whether it completed on this
// step. The value snaps exactly to the target on completion.
func (tw *Tween) Step(dt time.Duration) bool {
	if tw.done {
		return false
	}
	if dt <= 0 {
		return false
	}
	tw.elapsed += dt
	if tw.curve == CurveSpring {
		return tw.stepSpring(dt)
	}
	if tw.duration <= 0 || tw.elapsed >= tw.duration {
		tw.value = tw.to
		tw.done = true
		return true
	}
	t := float64(tw.elapsed) / float64(tw.duration)
	tw.value = tw.from + (tw.to-tw.from)*tw.curve.Evaluate(t)
	return false
}

// stepSpring integrates one frame of spring physics.
func (tw *Tween) stepSpring(dt time.Duration) bool {
	sp := harmonica.NewSpring(dt.Seconds(), springFrequency, springDamping)
	tw.value, tw.velocity = sp.Update(tw.value, tw.velocity, tw.to)
	settled := abs(tw.value-tw.to) < springEpsilon && abs(tw.velocity) < springEpsilon
	if settled || tw.elapsed >= springMaxRuntime {
		tw.value = tw.to
		tw.velocity = 0
		tw.done = true
		return true
	}
	return false
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
