package systems

import (
	"github.com/gonewx/logomorph/internal/tween"
	"github.com/gonewx/logomorph/pkg/components"
	"github.com/gonewx/logomorph/pkg/types"
)

// updateDissipating 消散阶段（终止态）
//
// 每帧向速度累积随机加速度并积分进位置（带轻微的向上漂移），
// 不透明度随进度线性淡出到零。这是唯一带帧间状态的阶段：速度数组
// 在阶段内持续累积。
func (ps *PhaseSystem) updateDissipating(swarm *components.SwarmComponent, progress, dt float64) {
	d := ps.cfg.Dissipate
	fade := 1 - progress

	for i := 0; i < swarm.Count; i++ {
		kick := types.Vec3{
			X: tween.RandomInRange(-d.Jitter, d.Jitter),
			Y: tween.RandomInRange(-d.Jitter, d.Jitter) + d.Drift,
			Z: tween.RandomInRange(-d.Jitter, d.Jitter),
		}
		swarm.Velocities[i] = swarm.Velocities[i].Add(kick.Scale(dt))
		swarm.Positions[i] = swarm.Positions[i].Add(swarm.Velocities[i].Scale(dt))

		swarm.Alphas[i] = fade
		swarm.Sizes[i] = swarm.BaseSize * (1 - 0.3*progress)
		swarm.Colors[i] = swarm.Colors2[i]
	}
}
