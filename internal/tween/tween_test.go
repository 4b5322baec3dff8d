package tween

import (
	"math"
	"testing"
)

// TestEase_Endpoints tests that every easing mode is exact at 0 and 1
func TestEase_Endpoints(t *testing.T) {
	modes := []string{Linear, EaseIn, EaseOut, EaseInOut, FastInOutWeak, "Bogus", ""}

	for _, mode := range modes {
		if got := Ease(mode, 0); got != 0 {
			t.Errorf("Ease(%q, 0) = %v, want 0", mode, got)
		}
		if got := Ease(mode, 1); got != 1 {
			t.Errorf("Ease(%q, 1) = %v, want 1", mode, got)
		}
	}
}

// TestEase_Monotonic tests that easing output stays in [0,1] and never
// decreases over the input range
func TestEase_Monotonic(t *testing.T) {
	modes := []string{Linear, EaseIn, EaseOut, EaseInOut, FastInOutWeak}

	for _, mode := range modes {
		prev := 0.0
		for i := 0; i <= 100; i++ {
			r := float64(i) / 100
			v := Ease(mode, r)
			if v < 0 || v > 1 {
				t.Fatalf("Ease(%q, %v) = %v, outside [0,1]", mode, r, v)
			}
			if v < prev-1e-12 {
				t.Fatalf("Ease(%q) not monotonic at %v: %v < %v", mode, r, v, prev)
			}
			prev = v
		}
	}
}

// TestEvaluate_Empty tests evaluation of empty and single-key tracks
func TestEvaluate_Empty(t *testing.T) {
	if got := Evaluate(nil, 0.5, Linear); got != 0 {
		t.Errorf("Evaluate(nil) = %v, want 0", got)
	}
	single := []Keyframe{{Time: 0, Value: 7}}
	if got := Evaluate(single, 0.9, Linear); got != 7 {
		t.Errorf("Evaluate(single) = %v, want 7", got)
	}
}

// TestEvaluate_Linear tests linear interpolation between two keyframes
func TestEvaluate_Linear(t *testing.T) {
	keys := []Keyframe{{Time: 0, Value: 0}, {Time: 1, Value: 10}}

	tests := []struct {
		t    float64
		want float64
	}{
		{0, 0},
		{0.25, 2.5},
		{0.5, 5},
		{1, 10},
		{-0.5, 0}, // clamped
		{1.5, 10}, // clamped
	}

	for _, tt := range tests {
		if got := Evaluate(keys, tt.t, Linear); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Evaluate(t=%v) = %v, want %v", tt.t, got, tt.want)
		}
	}
}

// TestEvaluate_BeforeFirstKeyframe tests that t before the first keyframe
// returns the first value (与教科书式外推不同，保持首帧值)
func TestEvaluate_BeforeFirstKeyframe(t *testing.T) {
	keys := []Keyframe{{Time: 0.4, Value: 3}, {Time: 1, Value: 9}}
	if got := Evaluate(keys, 0.1, Linear); got != 3 {
		t.Errorf("Evaluate before first keyframe = %v, want 3", got)
	}
}

// TestEvaluate_ZeroDurationInterval tests keyframes with identical times
func TestEvaluate_ZeroDurationInterval(t *testing.T) {
	keys := []Keyframe{{Time: 0.5, Value: 1}, {Time: 0.5, Value: 2}}
	if got := Evaluate(keys, 0.5, Linear); got != 1 {
		t.Errorf("Evaluate on zero-duration interval = %v, want 1", got)
	}
}

// TestCubicBezier_Endpoints tests that the curve passes exactly through
// its endpoints regardless of control values
func TestCubicBezier_Endpoints(t *testing.T) {
	if got := CubicBezier(2, 100, -50, 8, 0); got != 2 {
		t.Errorf("CubicBezier(t=0) = %v, want 2", got)
	}
	if got := CubicBezier(2, 100, -50, 8, 1); got != 8 {
		t.Errorf("CubicBezier(t=1) = %v, want 8", got)
	}
}

// TestCubicBezier_Finite tests that finite inputs never produce NaN/Inf
func TestCubicBezier_Finite(t *testing.T) {
	for i := 0; i <= 50; i++ {
		tt := float64(i) / 50
		v := CubicBezier(-1.2, 0.7, -0.3, 1.2, tt)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("CubicBezier(t=%v) = %v, not finite", tt, v)
		}
	}
}

// TestRandomInRange tests range boundaries and the degenerate case
func TestRandomInRange(t *testing.T) {
	for i := 0; i < 100; i++ {
		v := RandomInRange(-2, 3)
		if v < -2 || v > 3 {
			t.Fatalf("RandomInRange(-2, 3) = %v, outside range", v)
		}
	}

	if v := RandomInRange(5, 5); v != 5 {
		t.Errorf("RandomInRange(5, 5) = %v, want 5", v)
	}
	if v := RandomInRange(5, 1); v != 5 {
		t.Errorf("RandomInRange(min>max) = %v, want min", v)
	}
}
