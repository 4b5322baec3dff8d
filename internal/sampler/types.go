// Package sampler turns logo mask images into particle target positions.
//
// A mask is rasterized onto a fixed-size canvas, walked on a fixed pixel
// stride, and every sufficiently opaque and bright pixel becomes one 3D
// point in normalized shape space. Masks that yield too few points are
// replaced by a procedural fallback shape.
package sampler

// Config controls the pixel sampling pass.
type Config struct {
	// CanvasSize is the side length of the square canvas the mask is
	// rasterized onto before sampling. Sampling coordinates are relative
	// to this canvas, not to the source image.
	CanvasSize int `yaml:"canvasSize"`

	// Stride is the pixel step between samples (1 = every pixel).
	Stride int `yaml:"stride"`

	// AlphaThreshold: a pixel is kept only if alpha exceeds this (0-255).
	AlphaThreshold uint8 `yaml:"alphaThreshold"`

	// BrightnessThreshold: a pixel is kept only if at least one color
	// channel exceeds this (0-255).
	BrightnessThreshold uint8 `yaml:"brightnessThreshold"`

	// Spread is the world-space width the canvas maps onto; extracted
	// coordinates land in [-Spread/2, Spread/2] on X and Y.
	Spread float64 `yaml:"spread"`

	// ZJitter is the random depth assigned to each point (±ZJitter).
	ZJitter float64 `yaml:"zJitter"`

	// MinParticles is the minimum extraction count below which the
	// procedural fallback shape is used instead.
	MinParticles int `yaml:"minParticles"`
}

// DefaultConfig returns the sampling parameters used when no config file
// overrides them.
func DefaultConfig() Config {
	return Config{
		CanvasSize:          256,
		Stride:              2,
		AlphaThreshold:      40,
		BrightnessThreshold: 40,
		Spread:              2.4,
		ZJitter:             0.05,
		MinParticles:        120,
	}
}
