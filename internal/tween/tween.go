// Package tween provides the interpolation primitives used by the animation
// phases: easing functions, keyframe track evaluation and cubic bezier
// point evaluation.
//
// Keyframe tracks come from the yaml animation config as compact strings
// (see ParseTrack); the phase systems evaluate them once per frame against
// the normalized phase progress.
package tween

import (
	"math"
	"math/rand"
)

// Keyframe is a single point on an animation curve.
type Keyframe struct {
	Time  float64 // Normalized time (0-1)
	Value float64 // Value at this keyframe
}

// Interpolation mode keywords accepted in track strings.
const (
	Linear        = "Linear"
	EaseIn        = "EaseIn"
	EaseOut       = "EaseOut"
	EaseInOut     = "EaseInOut"
	FastInOutWeak = "FastInOutWeak"
)

// Ease applies the named easing mode to a ratio in [0,1].
// Unknown modes fall back to linear.
func Ease(mode string, ratio float64) float64 {
	switch mode {
	case EaseIn:
		return ratio * ratio // Quadratic ease-in
	case EaseOut:
		return 1 - (1-ratio)*(1-ratio) // Quadratic ease-out
	case EaseInOut, FastInOutWeak:
		// Cubic smoothstep: exact 0 at 0 and exact 1 at 1,
		// which the converge endpoint guarantees rely on.
		return ratio * ratio * (3 - 2*ratio)
	default:
		return ratio
	}
}

// Clamp01 clamps t to [0,1].
func Clamp01(t float64) float64 {
	return math.Max(0, math.Min(1, t))
}

// Evaluate calculates the interpolated value at time t (0-1) using the
// provided keyframes and interpolation mode.
//
// Keyframes must be sorted by Time. t is clamped to [0,1]; t before the
// first keyframe returns the first value, t past the last keyframe returns
// the last value.
func Evaluate(keyframes []Keyframe, t float64, mode string) float64 {
	if len(keyframes) == 0 {
		return 0
	}
	if len(keyframes) == 1 {
		return keyframes[0].Value
	}

	t = Clamp01(t)

	if t < keyframes[0].Time {
		return keyframes[0].Value
	}

	for i := 0; i < len(keyframes)-1; i++ {
		k0 := keyframes[i]
		k1 := keyframes[i+1]

		if t >= k0.Time && t <= k1.Time {
			duration := k1.Time - k0.Time
			if duration <= 0 {
				return k0.Value
			}
			ratio := Ease(mode, (t-k0.Time)/duration)
			return k0.Value + ratio*(k1.Value-k0.Value)
		}
	}

	return keyframes[len(keyframes)-1].Value
}

// CubicBezier evaluates a cubic bezier curve component at t for the given
// endpoint and control values. Used per-axis for the morph flight path.
func CubicBezier(p0, c1, c2, p1, t float64) float64 {
	t = Clamp01(t)
	u := 1 - t
	return u*u*u*p0 + 3*u*u*t*c1 + 3*u*t*t*c2 + t*t*t*p1
}

// RandomInRange returns a random float64 in the range [min, max].
func RandomInRange(min, max float64) float64 {
	if min >= max {
		return min
	}
	return min + rand.Float64()*(max-min)
}
