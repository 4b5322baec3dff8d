// Package types 定义共享的基础类型
// 这个包不依赖任何其他业务包，用于解决循环引用问题
package types

// AnimationPhase 定义粒子序列的六个阶段
// 阶段按固定顺序单向推进，Dissipating 为终止态
type AnimationPhase int

const (
	// PhaseSpread 初始态：粒子随机分布在球面上
	PhaseSpread AnimationPhase = iota
	// PhaseConverging 汇聚：从随机分布插值到第一个 Logo 形状
	PhaseConverging
	// PhaseBreathing 呼吸：围绕第一个形状做径向正弦位移
	PhaseBreathing
	// PhaseActivation 激活：颜色/尺寸的三段式脉冲
	PhaseActivation
	// PhaseMorphing 变形：从第一个形状过渡到第二个形状
	PhaseMorphing
	// PhaseDissipating 消散：随机速度累积 + 透明度淡出（终止态）
	PhaseDissipating
)

// String 返回阶段的字符串表示
func (p AnimationPhase) String() string {
	switch p {
	case PhaseSpread:
		return "Spread"
	case PhaseConverging:
		return "Converging"
	case PhaseBreathing:
		return "Breathing"
	case PhaseActivation:
		return "Activation"
	case PhaseMorphing:
		return "Morphing"
	case PhaseDissipating:
		return "Dissipating"
	default:
		return "Unknown"
	}
}

// Next 返回下一个阶段
// Dissipating 是终止态，返回自身
func (p AnimationPhase) Next() AnimationPhase {
	if p >= PhaseDissipating {
		return PhaseDissipating
	}
	return p + 1
}

// IsTerminal 返回该阶段是否为终止态
func (p AnimationPhase) IsTerminal() bool {
	return p == PhaseDissipating
}
