package systems

import (
	"github.com/gonewx/logomorph/internal/tween"
	"github.com/gonewx/logomorph/pkg/components"
	"github.com/gonewx/logomorph/pkg/types"
)

// updateConverging 汇聚阶段：从球面随机分布插值到第一个形状
//
// 缓动用 EaseInOut（端点处精确为 0/1），因此 progress=0 时位置精确等于
// Spread，progress=1 时精确等于 Shape1。
func (ps *PhaseSystem) updateConverging(swarm *components.SwarmComponent, progress float64) {
	t := tween.Ease(tween.EaseInOut, progress)

	for i := 0; i < swarm.Count; i++ {
		swarm.Positions[i] = swarm.Spread[i].Lerp(swarm.Shape1[i], t)

		// 颜色从暗到亮跟随汇聚
		dim := swarm.Colors1[i].Scale(0.35)
		swarm.Colors[i] = dim.Lerp(swarm.Colors1[i], t)

		swarm.Sizes[i] = swarm.BaseSize
		swarm.Alphas[i] = 0.55 + 0.45*t
		swarm.Velocities[i] = types.Vec3{}
	}
}
