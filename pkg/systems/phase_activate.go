package systems

import (
	"math"

	"github.com/gonewx/logomorph/internal/tween"
	"github.com/gonewx/logomorph/pkg/components"
)

// updateActivation 激活阶段：以进度阈值划分的三个子阶段
//
//	[0, BuildEnd)   蓄力：颜色涌向激活色，尺寸膨胀，位置不动
//	[BuildEnd, BurstEnd) 爆发：径向正弦脉冲（半周期，结束时回到 Shape1）
//	[BurstEnd, 1]   回落：尺寸回落，颜色向变形目标色预热
//
// 预热（pre-warm）提前混入一部分 Shape2 的颜色，避免变形阶段开始时
// 出现突兀的颜色跳变。
func (ps *PhaseSystem) updateActivation(swarm *components.SwarmComponent, progress float64) {
	a := ps.cfg.Activation
	act := ps.activationColor

	switch {
	case progress < a.BuildEnd:
		s := tween.Ease(tween.EaseIn, progress/a.BuildEnd)
		for i := 0; i < swarm.Count; i++ {
			swarm.Positions[i] = swarm.Shape1[i]
			swarm.Colors[i] = swarm.Colors1[i].Lerp(act, s)
			swarm.Sizes[i] = swarm.BaseSize * (1 + a.SizeSwell*s)
			swarm.Alphas[i] = 1
		}

	case progress < a.BurstEnd:
		s := (progress - a.BuildEnd) / (a.BurstEnd - a.BuildEnd)
		// 半周期正弦：子阶段结束时脉冲回到零，位置与回落段连续
		pulse := a.PulseAmplitude * math.Sin(s*math.Pi) * swarm.AmplitudeScale
		for i := 0; i < swarm.Count; i++ {
			swarm.Positions[i] = swarm.Shape1[i].Add(swarm.RadialDirs[i].Scale(pulse))
			swarm.Colors[i] = act
			swarm.Sizes[i] = swarm.BaseSize * (1 + a.SizeSwell)
			swarm.Alphas[i] = 1
		}

	default:
		s := tween.Ease(tween.EaseOut, (progress-a.BurstEnd)/(1-a.BurstEnd))
		for i := 0; i < swarm.Count; i++ {
			swarm.Positions[i] = swarm.Shape1[i]
			swarm.Colors[i] = act.Lerp(swarm.Colors2[i], a.Prewarm*s)
			swarm.Sizes[i] = swarm.BaseSize * (1 + a.SizeSwell*(1-s))
			swarm.Alphas[i] = 1
		}
	}
}
