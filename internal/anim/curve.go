// Package anim provides the animation capability consumed by the toast
// lifecycle: easing curves, scalar tweens, and drivers that run them and
// report completion. Animations are cancelable mid-flight; a canceled
// animation never fires its completion callback.
package anim

import "math"

// Curve selects the easing applied to a tween.
type Curve string

const (
	// CurveLinear progresses uniformly. Used by the countdown bar.
	CurveLinear Curve = "linear"
	// CurveEaseInOut accelerates then decelerates. Used for entrance opacity.
	CurveEaseInOut Curve = "ease-in-out"
	// CurveEaseOut decelerates toward the target. Used for exits.
	CurveEaseOut Curve = "ease-out"
	// CurveSpring is a decelerating spring. Used for entrance movement.
	// Spring tweens integrate physics per frame instead of evaluating a
	// normalized curve; see Tween.
	CurveSpring Curve = "spring"
)

// IsValid checks if the curve is one of the supported easings.
func (c Curve) IsValid() bool {
	switch c {
	case CurveLinear, CurveEaseInOut, CurveEaseOut, CurveSpring:
		return true
	default:
		return false
	}
}

// Evaluate maps normalized time t in [0,1] to eased progress in [0,1].
// Spring curves are integrated by the tween and fall back to ease-out here.
func (c Curve) Evaluate(t float64) float64 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	switch c {
	case CurveEaseInOut:
		if t < 0.5 {
			return 4 * t * t * t
		}
		return 1 - math.Pow(-2*t+2, 3)/2
	case CurveEaseOut, CurveSpring:
		return 1 - math.Pow(1-t, 3)
	default:
		return t
	}
}
