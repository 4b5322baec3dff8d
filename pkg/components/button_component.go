package components

// ButtonComponent 按钮组件（ECS 架构）
//
// 设计原则：
//   - 纯数据组件，不包含任何方法
//   - 命中检测和状态推进在 systems.ButtonSystem 中
//   - 点击通过 OnClick 回调通知场景
type ButtonComponent struct {
	// 位置和尺寸（屏幕像素，X/Y 为左上角）
	X      float64
	Y      float64
	Width  float64
	Height float64

	// Text 按钮上显示的文字
	Text string

	// 状态（由 ButtonSystem 每帧更新）
	Hovered bool
	Pressed bool

	// OnClick 点击回调（鼠标在按钮内刚按下左键时触发一次）
	OnClick func()
}
