package sampler

import (
	"math"

	"github.com/gonewx/logomorph/internal/tween"
	"github.com/gonewx/logomorph/pkg/types"
)

// Point counts for the procedural fallback shape. The total (2*160 + 90)
// stays comfortably above the 300-point floor the animation needs to look
// like anything at all.
const (
	fallbackDiagonalPoints = 160 // per diagonal segment
	fallbackRingPoints     = 90
)

// FallbackShape builds the procedural "X" used when mask extraction yields
// too few points: two thick diagonal segments plus a loose scatter ring
// around them.
func FallbackShape(cfg Config) []types.Vec3 {
	ext := cfg.Spread * 0.38
	if ext <= 0 {
		ext = DefaultConfig().Spread * 0.38
	}
	jitter := ext * 0.06

	points := make([]types.Vec3, 0, 2*fallbackDiagonalPoints+fallbackRingPoints)

	// Diagonal y = x
	for i := 0; i < fallbackDiagonalPoints; i++ {
		t := float64(i)/float64(fallbackDiagonalPoints-1)*2 - 1 // [-1, 1]
		points = append(points, types.Vec3{
			X: t*ext + tween.RandomInRange(-jitter, jitter),
			Y: t*ext + tween.RandomInRange(-jitter, jitter),
			Z: tween.RandomInRange(-cfg.ZJitter, cfg.ZJitter),
		})
	}

	// Diagonal y = -x
	for i := 0; i < fallbackDiagonalPoints; i++ {
		t := float64(i)/float64(fallbackDiagonalPoints-1)*2 - 1
		points = append(points, types.Vec3{
			X: t*ext + tween.RandomInRange(-jitter, jitter),
			Y: -t*ext + tween.RandomInRange(-jitter, jitter),
			Z: tween.RandomInRange(-cfg.ZJitter, cfg.ZJitter),
		})
	}

	// Scatter ring around the X
	for i := 0; i < fallbackRingPoints; i++ {
		angle := float64(i) / float64(fallbackRingPoints) * 2 * math.Pi
		r := ext * tween.RandomInRange(1.05, 1.25)
		points = append(points, types.Vec3{
			X: math.Cos(angle) * r,
			Y: math.Sin(angle) * r,
			Z: tween.RandomInRange(-cfg.ZJitter, cfg.ZJitter),
		})
	}

	return points
}
