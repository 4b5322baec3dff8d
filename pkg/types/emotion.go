package types

// EmotionalState "情绪响应"装饰参数
//
// 这组值只影响呼吸波幅和色调等外观系数，不参与阶段状态机本身。
// 与质量档位一样通过用户设置持久化。
type EmotionalState string

const (
	EmotionCalm      EmotionalState = "calm"
	EmotionEnergetic EmotionalState = "energetic"
	EmotionFocused   EmotionalState = "focused"
)

// ParseEmotionalState 解析情绪状态字符串
// 未知值返回 EmotionCalm 和 false
func ParseEmotionalState(s string) (EmotionalState, bool) {
	switch EmotionalState(s) {
	case EmotionCalm, EmotionEnergetic, EmotionFocused:
		return EmotionalState(s), true
	default:
		return EmotionCalm, false
	}
}

// AmplitudeScale 返回该情绪状态对波动幅度的缩放系数
func (e EmotionalState) AmplitudeScale() float64 {
	switch e {
	case EmotionEnergetic:
		return 1.35
	case EmotionFocused:
		return 0.7
	default:
		return 1.0
	}
}

// Warmth 返回该情绪状态对色调的偏移量（叠加到红色通道，扣减蓝色通道）
func (e EmotionalState) Warmth() float64 {
	switch e {
	case EmotionEnergetic:
		return 0.12
	case EmotionFocused:
		return -0.05
	default:
		return 0.0
	}
}
