package systems

import (
	"math"

	"github.com/gonewx/logomorph/pkg/components"
)

// updateBreathing 呼吸阶段：围绕第一个形状做多频正弦径向位移
//
// 波动以阶段内的绝对时间驱动（不是归一化进度），叠加两个频率不同的
// 正弦；每个粒子带自己的相位偏移，振幅随中心距离衰减，中心粒子
// （径向方向为零向量）不动。
func (ps *PhaseSystem) updateBreathing(swarm *components.SwarmComponent, elapsed, progress float64) {
	b := ps.cfg.Breathing
	ampScale := swarm.AmplitudeScale
	sizePulse := b.SizePulseTrack.Evaluate(progress)

	for i := 0; i < swarm.Count; i++ {
		off := swarm.PhaseOffsets[i]
		wave := math.Sin(elapsed*b.Freq1+off)*b.Amp1 +
			math.Sin(elapsed*b.Freq2+off*1.7)*b.Amp2
		decay := 1 / (1 + swarm.CenterDist[i]*b.CenterDecay)

		swarm.Positions[i] = swarm.Shape1[i].Add(
			swarm.RadialDirs[i].Scale(wave * decay * ampScale))

		swarm.Colors[i] = swarm.Colors1[i]
		swarm.Sizes[i] = swarm.BaseSize * sizePulse
		swarm.Alphas[i] = 1
	}
}
