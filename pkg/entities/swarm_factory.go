// Package entities 提供实体工厂函数
// 工厂负责创建实体并挂载配置好的组件，逻辑在 systems 包中
package entities

import (
	"math"
	"math/rand"

	"github.com/gonewx/logomorph/pkg/components"
	"github.com/gonewx/logomorph/pkg/config"
	"github.com/gonewx/logomorph/pkg/ecs"
	"github.com/gonewx/logomorph/pkg/types"
)

// 基础粒子尺寸（世界单位）
const swarmBaseSize = 0.035

// NewSwarmEntity 创建粒子群实体
// 参数:
//   - manager: EntityManager 实例
//   - shape1, shape2: 两个形状的位置数组，长度必须相等
//   - cfg: 动画配置（球面半径和调色板）
//   - emotion: 情绪状态，决定波幅缩放和色调偏移
//
// 返回: 实体ID和挂载的两个组件。序列处于 Spread 初始态并立即开始推进。
func NewSwarmEntity(manager *ecs.EntityManager, shape1, shape2 []types.Vec3,
	cfg *config.AnimationConfig, emotion types.EmotionalState) (ecs.EntityID, *components.SwarmComponent, *components.PhaseComponent) {

	count := len(shape1)

	swarm := &components.SwarmComponent{
		Count:          count,
		Positions:      make([]types.Vec3, count),
		Colors:         make([]types.Vec3, count),
		Sizes:          make([]float64, count),
		Alphas:         make([]float64, count),
		Velocities:     make([]types.Vec3, count),
		Spread:         make([]types.Vec3, count),
		Shape1:         shape1,
		Shape2:         shape2,
		Colors1:        make([]types.Vec3, count),
		Colors2:        make([]types.Vec3, count),
		PhaseOffsets:   make([]float64, count),
		CenterDist:     make([]float64, count),
		RadialDirs:     make([]types.Vec3, count),
		BaseSize:       swarmBaseSize,
		AmplitudeScale: emotion.AmplitudeScale(),
		Warmth:         emotion.Warmth(),
	}

	primary := paletteVec(cfg.Palette.Primary)
	secondary := paletteVec(cfg.Palette.Secondary)

	for i := 0; i < count; i++ {
		swarm.Spread[i] = randomSpherePoint(cfg.SpreadRadius)
		swarm.Positions[i] = swarm.Spread[i]

		swarm.Colors1[i] = jitterColor(primary, cfg.Palette.Variation)
		swarm.Colors2[i] = jitterColor(secondary, cfg.Palette.Variation)
		swarm.Colors[i] = swarm.Colors1[i]

		swarm.Sizes[i] = swarmBaseSize
		swarm.Alphas[i] = 0.55

		swarm.PhaseOffsets[i] = rand.Float64() * 2 * math.Pi
		swarm.CenterDist[i] = shape1[i].Length()
		swarm.RadialDirs[i] = shape1[i].Normalized()
	}

	phase := &components.PhaseComponent{
		Phase:   types.PhaseSpread,
		Running: true,
	}

	id := manager.CreateEntity()
	manager.AddComponent(id, swarm)
	manager.AddComponent(id, phase)
	return id, swarm, phase
}

// randomSpherePoint 返回球面均匀分布的随机点，半径带 ±20% 抖动
func randomSpherePoint(radius float64) types.Vec3 {
	z := rand.Float64()*2 - 1
	theta := rand.Float64() * 2 * math.Pi
	r := math.Sqrt(1 - z*z)

	scale := radius * (0.8 + rand.Float64()*0.4)
	return types.Vec3{
		X: r * math.Cos(theta) * scale,
		Y: r * math.Sin(theta) * scale,
		Z: z * scale,
	}
}

// jitterColor 给基础色叠加逐粒子随机抖动，分量钳制到 [0,1]
func jitterColor(base types.Vec3, variation float64) types.Vec3 {
	j := func(v float64) float64 {
		v += (rand.Float64()*2 - 1) * variation
		if v < 0 {
			return 0
		}
		if v > 1 {
			return 1
		}
		return v
	}
	return types.Vec3{X: j(base.X), Y: j(base.Y), Z: j(base.Z)}
}

// paletteVec 把配置里的 [r g b] 列表转成 Vec3
func paletteVec(rgb []float64) types.Vec3 {
	if len(rgb) != 3 {
		return types.Vec3{X: 1, Y: 1, Z: 1}
	}
	return types.Vec3{X: rgb[0], Y: rgb[1], Z: rgb[2]}
}
