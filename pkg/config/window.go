package config

// 逻辑屏幕尺寸（像素）
// 独立于实际窗口大小，Ebitengine 按 Layout 返回值自动缩放
const (
	GameWindowWidth  = 960
	GameWindowHeight = 600
)
