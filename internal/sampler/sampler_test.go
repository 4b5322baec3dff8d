package sampler

import (
	"image"
	"image/color"
	"testing"

	"github.com/gonewx/logomorph/pkg/types"
)

// solidImage returns a size×size image filled with c.
func solidImage(size int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

// TestSample_TransparentImage tests that a fully transparent image yields
// zero extracted points
func TestSample_TransparentImage(t *testing.T) {
	cfg := DefaultConfig()
	img := solidImage(64, color.RGBA{0, 0, 0, 0})

	points := Sample(img, cfg)
	if len(points) != 0 {
		t.Errorf("transparent image yielded %d points, want 0", len(points))
	}
}

// TestSample_OpaqueWhite_CountMatchesStride tests the exact extraction
// count for a uniformly opaque canvas-sized image at several strides
func TestSample_OpaqueWhite_CountMatchesStride(t *testing.T) {
	cfg := DefaultConfig()
	img := solidImage(cfg.CanvasSize, color.RGBA{255, 255, 255, 255})

	for _, stride := range []int{1, 2, 4, 8} {
		cfg.Stride = stride

		// ceil(size/stride) samples per axis
		perAxis := (cfg.CanvasSize + stride - 1) / stride
		want := perAxis * perAxis

		points := Sample(img, cfg)
		if len(points) != want {
			t.Errorf("stride %d: extracted %d points, want %d", stride, len(points), want)
		}
	}
}

// TestSample_DarkPixelsRejected tests the brightness threshold
func TestSample_DarkPixelsRejected(t *testing.T) {
	cfg := DefaultConfig()
	// Opaque but darker than the threshold on every channel
	img := solidImage(cfg.CanvasSize, color.RGBA{10, 10, 10, 255})

	points := Sample(img, cfg)
	if len(points) != 0 {
		t.Errorf("dark image yielded %d points, want 0", len(points))
	}
}

// TestSample_SingleBrightChannelKept tests that one channel above the
// brightness threshold is enough
func TestSample_SingleBrightChannelKept(t *testing.T) {
	cfg := DefaultConfig()
	img := solidImage(cfg.CanvasSize, color.RGBA{0, 0, 200, 255})

	points := Sample(img, cfg)
	if len(points) == 0 {
		t.Error("blue-only image yielded 0 points, want > 0")
	}
}

// TestSample_CoordinatesNormalized tests that extracted coordinates stay
// inside the configured spread and carry bounded depth jitter
func TestSample_CoordinatesNormalized(t *testing.T) {
	cfg := DefaultConfig()
	img := solidImage(cfg.CanvasSize, color.RGBA{255, 255, 255, 255})

	for _, p := range Sample(img, cfg) {
		if p.X < -cfg.Spread/2 || p.X > cfg.Spread/2 {
			t.Fatalf("X = %v outside ±%v", p.X, cfg.Spread/2)
		}
		if p.Y < -cfg.Spread/2 || p.Y > cfg.Spread/2 {
			t.Fatalf("Y = %v outside ±%v", p.Y, cfg.Spread/2)
		}
		if p.Z < -cfg.ZJitter || p.Z > cfg.ZJitter {
			t.Fatalf("Z = %v outside ±%v", p.Z, cfg.ZJitter)
		}
	}
}

// TestSampleOrFallback_UsesFallback tests the fallback substitution path
// and the 300-point floor of the procedural shape
func TestSampleOrFallback_UsesFallback(t *testing.T) {
	cfg := DefaultConfig()
	img := solidImage(64, color.RGBA{0, 0, 0, 0})

	points, usedFallback := SampleOrFallback(img, cfg)
	if !usedFallback {
		t.Fatal("expected fallback for transparent image")
	}
	if len(points) < 300 {
		t.Errorf("fallback shape has %d points, want >= 300", len(points))
	}
}

// TestSampleOrFallback_KeepsRealExtraction tests that a good mask does not
// trigger the fallback
func TestSampleOrFallback_KeepsRealExtraction(t *testing.T) {
	cfg := DefaultConfig()
	img := solidImage(cfg.CanvasSize, color.RGBA{255, 255, 255, 255})

	_, usedFallback := SampleOrFallback(img, cfg)
	if usedFallback {
		t.Error("fallback used for a fully opaque mask")
	}
}

// TestFallbackShape_Finite tests that every fallback point is finite
func TestFallbackShape_Finite(t *testing.T) {
	for _, p := range FallbackShape(DefaultConfig()) {
		if !p.IsFinite() {
			t.Fatalf("fallback point %+v not finite", p)
		}
	}
}

// TestPadPositions tests the padding length law: never shrinks, and the
// result length equals the requested target when growing
func TestPadPositions(t *testing.T) {
	base := []types.Vec3{
		{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1},
	}

	tests := []struct {
		name    string
		target  int
		wantLen int
	}{
		{"Grow", 10, 10},
		{"GrowLarge", 513, 513},
		{"SameLength", 4, 4},
		{"SmallerTarget", 2, 4}, // never shrinks
		{"ZeroTarget", 0, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PadPositions(base, tt.target)
			if len(got) != tt.wantLen {
				t.Errorf("PadPositions(len=4, target=%d) len = %d, want %d",
					tt.target, len(got), tt.wantLen)
			}
			// Original points must survive in place
			for i := range base {
				if got[i] != base[i] {
					t.Errorf("point %d mutated: %+v != %+v", i, got[i], base[i])
				}
			}
		})
	}
}

// TestPadPositions_EmptyInput tests that an empty array stays empty (there
// is nothing to interpolate between)
func TestPadPositions_EmptyInput(t *testing.T) {
	if got := PadPositions(nil, 8); len(got) != 0 {
		t.Errorf("PadPositions(nil, 8) len = %d, want 0", len(got))
	}
}
