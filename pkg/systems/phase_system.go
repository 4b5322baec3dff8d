// Package systems 包含驱动粒子序列的所有系统
//
// 每个系统持有 EntityManager 引用，通过组件查询驱动更新，系统之间
// 不直接引用（ECS 零耦合原则）。
package systems

import (
	"log"

	"github.com/gonewx/logomorph/internal/tween"
	"github.com/gonewx/logomorph/pkg/components"
	"github.com/gonewx/logomorph/pkg/config"
	"github.com/gonewx/logomorph/pkg/ecs"
	"github.com/gonewx/logomorph/pkg/types"
)

// PhaseSystem 阶段状态机系统
//
// 每帧做两件事：
//  1. 推进当前阶段的计时并计算钳制后的归一化进度
//  2. 按当前阶段的闭式函数重写粒子群的当前数组
//
// 阶段转换无条件由时长触发，转换时把计时和进度归零。
// Dissipating 走完后置 Finished，序列停止。
type PhaseSystem struct {
	EntityManager *ecs.EntityManager

	cfg *config.AnimationConfig

	// 从配置调色板换算的全局颜色
	activationColor types.Vec3
}

// NewPhaseSystem 创建阶段状态机系统
func NewPhaseSystem(em *ecs.EntityManager, cfg *config.AnimationConfig) *PhaseSystem {
	ps := &PhaseSystem{EntityManager: em}
	ps.SetConfig(cfg)
	return ps
}

// SetConfig 替换动画配置（热重载用）
// 只换参数，不重置任何阶段状态
func (ps *PhaseSystem) SetConfig(cfg *config.AnimationConfig) {
	if cfg == nil {
		cfg = config.DefaultAnimationConfig()
	}
	ps.cfg = cfg
	ps.activationColor = paletteVec(cfg.Palette.Activation)
}

// Config 返回当前动画配置
func (ps *PhaseSystem) Config() *config.AnimationConfig {
	return ps.cfg
}

// Update 推进所有粒子群的阶段状态
// dt 为自上一帧以来的时间（秒）
func (ps *PhaseSystem) Update(dt float64) {
	entities := ecs.GetEntitiesWith2[*components.SwarmComponent, *components.PhaseComponent](ps.EntityManager)

	for _, id := range entities {
		swarm, ok := ecs.GetComponent[*components.SwarmComponent](ps.EntityManager, id)
		if !ok {
			continue
		}
		phase, ok := ecs.GetComponent[*components.PhaseComponent](ps.EntityManager, id)
		if !ok {
			continue
		}

		ps.updateEntity(swarm, phase, dt)
	}
}

func (ps *PhaseSystem) updateEntity(swarm *components.SwarmComponent, phase *components.PhaseComponent, dt float64) {
	if !phase.Running {
		return
	}

	// Spread 是静止初始态，启动后立即进入汇聚阶段
	if phase.Phase == types.PhaseSpread {
		ps.transition(phase, types.PhaseConverging)
	}

	phase.Elapsed += dt
	duration := ps.phaseDuration(phase.Phase)
	phase.Progress = tween.Clamp01(phase.Elapsed / duration)

	// 先应用本帧效果再判断转换：进度钳制到 1 的最后一帧必须把端点
	// 精确写入（汇聚终点 = Shape1，变形终点 = Shape2）
	switch phase.Phase {
	case types.PhaseConverging:
		ps.updateConverging(swarm, phase.Progress)
	case types.PhaseBreathing:
		ps.updateBreathing(swarm, phase.Elapsed, phase.Progress)
	case types.PhaseActivation:
		ps.updateActivation(swarm, phase.Progress)
	case types.PhaseMorphing:
		ps.updateMorphing(swarm, phase.Progress)
	case types.PhaseDissipating:
		ps.updateDissipating(swarm, phase.Progress, dt)
	}

	if phase.Elapsed >= duration {
		if phase.Phase.IsTerminal() {
			phase.Finished = true
			phase.Running = false
			log.Printf("[PhaseSystem] Sequence finished")
			return
		}
		ps.transition(phase, phase.Phase.Next())
	}
}

// transition 切换阶段并把计时/进度归零
func (ps *PhaseSystem) transition(phase *components.PhaseComponent, next types.AnimationPhase) {
	log.Printf("[PhaseSystem] %s -> %s", phase.Phase, next)
	phase.Phase = next
	phase.Elapsed = 0
	phase.Progress = 0
}

// phaseDuration 返回阶段时长（秒）
func (ps *PhaseSystem) phaseDuration(p types.AnimationPhase) float64 {
	d := ps.cfg.Durations
	switch p {
	case types.PhaseConverging:
		return d.Converge
	case types.PhaseBreathing:
		return d.Breathe
	case types.PhaseActivation:
		return d.Activate
	case types.PhaseMorphing:
		return d.Morph
	case types.PhaseDissipating:
		return d.Dissipate
	default:
		// Spread 没有时长，返回任意正数避免除零
		return 1
	}
}

// paletteVec 把配置里的 [r g b] 列表转成 Vec3
func paletteVec(rgb []float64) types.Vec3 {
	if len(rgb) != 3 {
		return types.Vec3{X: 1, Y: 1, Z: 1}
	}
	return types.Vec3{X: rgb[0], Y: rgb[1], Z: rgb[2]}
}
