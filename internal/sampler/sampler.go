package sampler

import (
	"image"

	xdraw "golang.org/x/image/draw"

	"github.com/gonewx/logomorph/internal/tween"
	"github.com/gonewx/logomorph/pkg/types"
)

// Sample rasterizes img onto the sampling canvas and extracts one point per
// kept pixel. The returned slice may be empty (e.g. for a fully transparent
// image); callers that need a guaranteed shape should use SampleOrFallback.
func Sample(img image.Image, cfg Config) []types.Vec3 {
	size := cfg.CanvasSize
	if size <= 0 {
		size = DefaultConfig().CanvasSize
	}
	stride := cfg.Stride
	if stride <= 0 {
		stride = 1
	}

	// Offscreen canvas at a fixed resolution so the extraction count does
	// not depend on the source image dimensions.
	canvas := image.NewRGBA(image.Rect(0, 0, size, size))
	xdraw.ApproxBiLinear.Scale(canvas, canvas.Bounds(), img, img.Bounds(), xdraw.Over, nil)

	points := make([]types.Vec3, 0, (size/stride)*(size/stride)/4)
	fsize := float64(size)

	for y := 0; y < size; y += stride {
		for x := 0; x < size; x += stride {
			c := canvas.RGBAAt(x, y)
			if c.A <= cfg.AlphaThreshold {
				continue
			}
			if c.R <= cfg.BrightnessThreshold &&
				c.G <= cfg.BrightnessThreshold &&
				c.B <= cfg.BrightnessThreshold {
				continue
			}

			// Pixel → normalized shape space. Y is flipped so the shape is
			// not upside down (image rows grow downward).
			points = append(points, types.Vec3{
				X: (float64(x)/fsize - 0.5) * cfg.Spread,
				Y: -(float64(y)/fsize - 0.5) * cfg.Spread,
				Z: tween.RandomInRange(-cfg.ZJitter, cfg.ZJitter),
			})
		}
	}

	return points
}

// SampleOrFallback samples img and substitutes the procedural fallback
// shape when fewer than cfg.MinParticles points were extracted. The second
// return value reports whether the fallback was used.
func SampleOrFallback(img image.Image, cfg Config) ([]types.Vec3, bool) {
	points := Sample(img, cfg)
	if len(points) < cfg.MinParticles {
		return FallbackShape(cfg), true
	}
	return points, false
}
