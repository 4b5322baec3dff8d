package components

import "github.com/gonewx/logomorph/pkg/types"

// PhaseComponent 阶段状态机组件
//
// 序列固定单向：Spread → Converging → Breathing → Activation → Morphing
// → Dissipating。每次转换把 Elapsed/Progress 归零；Progress 每帧由
// Elapsed/时长 计算并钳制到 [0,1]。
//
// 纯数据组件，转换逻辑在 systems.PhaseSystem 中。
type PhaseComponent struct {
	// Phase 当前阶段
	Phase types.AnimationPhase

	// Elapsed 当前阶段已经过的时间（秒）
	Elapsed float64

	// Progress 归一化进度，始终在 [0,1]
	Progress float64

	// Running 序列是否在推进（启动前和结束后为 false）
	Running bool

	// Finished 消散阶段是否已走完
	Finished bool
}
