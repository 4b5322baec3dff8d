package systems

import (
	"math"

	"github.com/gonewx/logomorph/internal/tween"
	"github.com/gonewx/logomorph/pkg/components"
	"github.com/gonewx/logomorph/pkg/types"
)

// updateMorphing 变形阶段：从第一个形状过渡到第二个形状
//
//	[0, CompressEnd)       压缩：整体向中心收缩
//	[CompressEnd, FlightEnd) 飞行：逐粒子延迟的三次贝塞尔轨迹
//	[FlightEnd, 1]         落位：残余摆动衰减到零
//
// progress=1 时所有粒子位置精确等于 Shape2（飞行段的延迟设计保证每个
// 粒子在 FlightEnd 前到达，落位段的摆动幅度带 (1-s) 因子在终点归零）。
func (ps *PhaseSystem) updateMorphing(swarm *components.SwarmComponent, progress float64) {
	m := ps.cfg.Morph
	prewarm := ps.cfg.Activation.Prewarm
	act := ps.activationColor
	colorT := tween.Ease(tween.EaseInOut, progress)

	for i := 0; i < swarm.Count; i++ {
		// 颜色从激活阶段预热后的起点一路混向 Shape2 基础色
		start := act.Lerp(swarm.Colors2[i], prewarm)
		swarm.Colors[i] = start.Lerp(swarm.Colors2[i], colorT)
		swarm.Alphas[i] = 1

		switch {
		case progress >= 1:
			// 终点精确落位
			swarm.Positions[i] = swarm.Shape2[i]
			swarm.Sizes[i] = swarm.BaseSize

		case progress < m.CompressEnd:
			s := tween.Ease(tween.EaseInOut, progress/m.CompressEnd)
			swarm.Positions[i] = swarm.Shape1[i].Scale(1 - m.Compress*s)
			swarm.Sizes[i] = swarm.BaseSize * (1 - 0.2*s)

		case progress < m.FlightEnd:
			s := (progress - m.CompressEnd) / (m.FlightEnd - m.CompressEnd)
			swarm.Positions[i] = ps.flightPosition(swarm, i, s)
			swarm.Sizes[i] = swarm.BaseSize

		default:
			s := (progress - m.FlightEnd) / (1 - m.FlightEnd)
			// 摆动幅度在 s=1 处被 (1-s) 精确清零
			residual := m.SettleAmplitude * math.Sin(s*math.Pi) * (1 - s)
			dir := swarm.Shape2[i].Normalized()
			swarm.Positions[i] = swarm.Shape2[i].Add(dir.Scale(residual))
			swarm.Sizes[i] = swarm.BaseSize
		}
	}
}

// flightPosition 计算飞行段中粒子 i 在子进度 s 处的贝塞尔位置
//
// 每个粒子按相位偏移获得 [0, DelaySpan] 内的启动延迟；u 归一化后钳制到
// [0,1]，因此所有粒子都在飞行段结束前精确到达 Shape2。
func (ps *PhaseSystem) flightPosition(swarm *components.SwarmComponent, i int, s float64) types.Vec3 {
	m := ps.cfg.Morph

	delay := m.DelaySpan * swarm.PhaseOffsets[i] / (2 * math.Pi)
	u := tween.Clamp01((s - delay) / (1 - m.DelaySpan))

	start := swarm.Shape1[i].Scale(1 - m.Compress)
	end := swarm.Shape2[i]

	// 控制点沿起终连线取 1/3 和 2/3，叠加抬升量形成弧线
	liftY := m.Lift * 0.25 * math.Sin(swarm.PhaseOffsets[i])
	c1 := start.Lerp(end, 1.0/3).Add(types.Vec3{Y: liftY, Z: m.Lift})
	c2 := start.Lerp(end, 2.0/3).Add(types.Vec3{Y: liftY * 0.5, Z: m.Lift * 0.5})

	return types.Vec3{
		X: tween.CubicBezier(start.X, c1.X, c2.X, end.X, u),
		Y: tween.CubicBezier(start.Y, c1.Y, c2.Y, end.Y, u),
		Z: tween.CubicBezier(start.Z, c1.Z, c2.Z, end.Z, u),
	}
}
