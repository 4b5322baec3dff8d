package components

import "github.com/gonewx/logomorph/pkg/types"

// SwarmComponent 粒子群组件
//
// 所有切片都是按下标对齐的平行数组，长度一律等于 Count，在采样完成后
// 固定不变。阶段系统每帧只读端点数组（Spread/Shape1/Shape2/Colors1/
// Colors2），把插值结果写进当前数组（Positions/Colors/Sizes/Alphas）。
//
// 纯数据组件，不包含方法。
type SwarmComponent struct {
	// Count 粒子总数 N，采样后固定
	Count int

	// 当前帧状态（每帧被阶段系统重写）
	Positions  []types.Vec3 // 当前位置
	Colors     []types.Vec3 // 当前颜色 (RGB, 0-1)
	Sizes      []float64    // 当前尺寸（世界单位）
	Alphas     []float64    // 当前不透明度 (0-1)
	Velocities []types.Vec3 // 消散阶段累积的速度

	// 端点数组（构建时生成，之后只读）
	Spread  []types.Vec3 // 球面随机初始位置
	Shape1  []types.Vec3 // 第一个 Logo 形状
	Shape2  []types.Vec3 // 第二个 Logo 形状
	Colors1 []types.Vec3 // 第一形状的逐粒子基础色
	Colors2 []types.Vec3 // 第二形状的逐粒子基础色

	// 逐粒子静态数据
	PhaseOffsets []float64    // 波动相位偏移（弧度）
	CenterDist   []float64    // Shape1 位置到中心的距离
	RadialDirs   []types.Vec3 // 径向单位方向；中心粒子为零向量

	// 全局系数
	BaseSize       float64 // 基础粒子尺寸
	AmplitudeScale float64 // 情绪状态对波幅的缩放
	Warmth         float64 // 情绪状态对色调的偏移
}
