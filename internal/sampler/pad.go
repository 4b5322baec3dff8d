package sampler

import (
	"math/rand"

	"github.com/gonewx/logomorph/internal/tween"
	"github.com/gonewx/logomorph/pkg/types"
)

// PadPositions grows points to exactly target entries by appending jittered
// interpolations of consecutive source points. The input is never shrunk:
// when target is not larger than len(points) the slice is returned as-is.
//
// The two shape arrays must be index-aligned and equally long before the
// morph phase can pair particles, so both are padded to the larger count.
func PadPositions(points []types.Vec3, target int) []types.Vec3 {
	if target <= len(points) || len(points) == 0 {
		return points
	}

	jitter := 0.02
	padded := make([]types.Vec3, len(points), target)
	copy(padded, points)

	for len(padded) < target {
		i := rand.Intn(len(points))
		j := (i + 1) % len(points)
		p := points[i].Lerp(points[j], rand.Float64())
		p.X += tween.RandomInRange(-jitter, jitter)
		p.Y += tween.RandomInRange(-jitter, jitter)
		padded = append(padded, p)
	}

	return padded
}
