// verify_phases 在无窗口环境下跑完整个阶段序列并检查不变量
//
// 用法: go run cmd/verify_phases/main.go [-config 文件] [-particles N]
// 用固定步长推进阶段状态机，打印每次转换的时间戳，并验证：
//   - 进度始终在 [0,1]
//   - 所有输出均为有限值
//   - 汇聚结束位置等于 Shape1，变形结束位置等于 Shape2
package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"math/rand"

	"github.com/gonewx/logomorph/pkg/components"
	"github.com/gonewx/logomorph/pkg/config"
	"github.com/gonewx/logomorph/pkg/ecs"
	"github.com/gonewx/logomorph/pkg/systems"
	"github.com/gonewx/logomorph/pkg/types"
)

const dt = 1.0 / 60.0

func main() {
	configPath := flag.String("config", "", "animation config file (empty = built-in defaults)")
	particles := flag.Int("particles", 500, "synthetic swarm size")
	flag.Parse()

	cfg := config.DefaultAnimationConfig()
	if *configPath != "" {
		loaded, err := config.LoadAnimationConfigFile(*configPath)
		if err != nil {
			log.Fatalf("配置加载失败: %v", err)
		}
		cfg = loaded
	}

	em := ecs.NewEntityManager()
	ps := systems.NewPhaseSystem(em, cfg)

	swarm := buildSwarm(*particles, cfg.SpreadRadius)
	phase := &components.PhaseComponent{Phase: types.PhaseSpread, Running: true}

	id := em.CreateEntity()
	em.AddComponent(id, swarm)
	em.AddComponent(id, phase)

	fmt.Printf("序列总时长: %.1fs, 粒子数: %d\n\n", cfg.TotalDuration(), swarm.Count)

	elapsed := 0.0
	last := phase.Phase
	violations := 0
	var shape1Err, shape2Err float64

	for steps := 0; phase.Running && steps < 1_000_000; steps++ {
		// 转换前一刻记录端点误差
		prevPhase := phase.Phase
		ps.Update(dt)
		elapsed += dt

		if phase.Phase != last {
			fmt.Printf("%7.2fs  %s -> %s\n", elapsed, last, phase.Phase)
			last = phase.Phase
		}
		if prevPhase == types.PhaseConverging && phase.Phase == types.PhaseBreathing {
			shape1Err = maxDistance(swarm.Positions, swarm.Shape1)
		}
		if prevPhase == types.PhaseMorphing && phase.Phase == types.PhaseDissipating {
			shape2Err = maxDistance(swarm.Positions, swarm.Shape2)
		}

		if phase.Progress < 0 || phase.Progress > 1 {
			violations++
			fmt.Printf("  违规: progress = %v\n", phase.Progress)
		}
		for i := 0; i < swarm.Count; i++ {
			if !swarm.Positions[i].IsFinite() || !swarm.Colors[i].IsFinite() ||
				!isFinite(swarm.Sizes[i]) || !isFinite(swarm.Alphas[i]) {
				violations++
				fmt.Printf("  违规: 粒子 %d 出现非有限值 (phase=%s)\n", i, phase.Phase)
				break
			}
		}
	}

	fmt.Printf("\n汇聚终点误差: %g (要求精确为 0)\n", shape1Err)
	fmt.Printf("变形终点误差: %g (要求精确为 0)\n", shape2Err)

	if !phase.Finished {
		log.Fatalf("序列未能在预期步数内结束")
	}
	if violations > 0 || shape1Err != 0 || shape2Err != 0 {
		log.Fatalf("检查失败: %d 处违规", violations)
	}
	fmt.Println("\n全部检查通过")
}

// buildSwarm 构造确定性合成粒子群（固定种子）
func buildSwarm(count int, radius float64) *components.SwarmComponent {
	rng := rand.New(rand.NewSource(42))

	swarm := &components.SwarmComponent{
		Count:          count,
		Positions:      make([]types.Vec3, count),
		Colors:         make([]types.Vec3, count),
		Sizes:          make([]float64, count),
		Alphas:         make([]float64, count),
		Velocities:     make([]types.Vec3, count),
		Spread:         make([]types.Vec3, count),
		Shape1:         make([]types.Vec3, count),
		Shape2:         make([]types.Vec3, count),
		Colors1:        make([]types.Vec3, count),
		Colors2:        make([]types.Vec3, count),
		PhaseOffsets:   make([]float64, count),
		CenterDist:     make([]float64, count),
		RadialDirs:     make([]types.Vec3, count),
		BaseSize:       0.035,
		AmplitudeScale: 1.0,
	}

	for i := 0; i < count; i++ {
		swarm.Spread[i] = types.Vec3{
			X: (rng.Float64()*2 - 1) * radius,
			Y: (rng.Float64()*2 - 1) * radius,
			Z: (rng.Float64()*2 - 1) * radius,
		}
		t := float64(i) / float64(count)
		swarm.Shape1[i] = types.Vec3{X: t*2 - 1, Y: 1 - t*2, Z: 0}
		swarm.Shape2[i] = types.Vec3{X: math.Cos(t * 2 * math.Pi), Y: math.Sin(t * 2 * math.Pi), Z: 0}

		swarm.Colors1[i] = types.Vec3{X: 0.45, Y: 0.8, Z: 1}
		swarm.Colors2[i] = types.Vec3{X: 0.75, Y: 0.5, Z: 1}
		swarm.Positions[i] = swarm.Spread[i]
		swarm.Sizes[i] = swarm.BaseSize
		swarm.PhaseOffsets[i] = rng.Float64() * 2 * math.Pi
		swarm.CenterDist[i] = swarm.Shape1[i].Length()
		swarm.RadialDirs[i] = swarm.Shape1[i].Normalized()
	}
	return swarm
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// maxDistance 返回两组位置中逐粒子距离的最大值
func maxDistance(a, b []types.Vec3) float64 {
	max := 0.0
	for i := range a {
		d := a[i].Sub(b[i]).Length()
		if d > max {
			max = d
		}
	}
	return max
}
