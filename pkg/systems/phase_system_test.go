package systems

import (
	"math"
	"testing"

	"github.com/gonewx/logomorph/pkg/components"
	"github.com/gonewx/logomorph/pkg/config"
	"github.com/gonewx/logomorph/pkg/ecs"
	"github.com/gonewx/logomorph/pkg/types"
)

// newTestSwarm 构造一个确定性的小粒子群
func newTestSwarm(n int) *components.SwarmComponent {
	s := &components.SwarmComponent{
		Count:          n,
		Positions:      make([]types.Vec3, n),
		Colors:         make([]types.Vec3, n),
		Sizes:          make([]float64, n),
		Alphas:         make([]float64, n),
		Velocities:     make([]types.Vec3, n),
		Spread:         make([]types.Vec3, n),
		Shape1:         make([]types.Vec3, n),
		Shape2:         make([]types.Vec3, n),
		Colors1:        make([]types.Vec3, n),
		Colors2:        make([]types.Vec3, n),
		PhaseOffsets:   make([]float64, n),
		CenterDist:     make([]float64, n),
		RadialDirs:     make([]types.Vec3, n),
		BaseSize:       0.035,
		AmplitudeScale: 1,
	}

	for i := 0; i < n; i++ {
		f := float64(i)
		s.Spread[i] = types.Vec3{X: 2 - f*0.5, Y: f * 0.3, Z: -1 + f*0.25}
		s.Shape1[i] = types.Vec3{X: f*0.1 - 0.2, Y: 0.3 - f*0.1, Z: 0.01 * f}
		s.Shape2[i] = types.Vec3{X: 0.5 - f*0.2, Y: f*0.15 - 0.3, Z: -0.02 * f}
		s.Colors1[i] = types.Vec3{X: 0.4, Y: 0.8, Z: 1}
		s.Colors2[i] = types.Vec3{X: 0.8, Y: 0.5, Z: 1}
		s.PhaseOffsets[i] = f / float64(n) * 2 * math.Pi
		s.CenterDist[i] = s.Shape1[i].Length()
		s.RadialDirs[i] = s.Shape1[i].Normalized()
		s.Positions[i] = s.Spread[i]
		s.Alphas[i] = 1
		s.Sizes[i] = s.BaseSize
	}
	return s
}

// newTestEntity 把粒子群和阶段组件挂到一个实体上
func newTestEntity(em *ecs.EntityManager, n int) (*components.SwarmComponent, *components.PhaseComponent) {
	id := em.CreateEntity()
	swarm := newTestSwarm(n)
	phase := &components.PhaseComponent{Phase: types.PhaseSpread}
	em.AddComponent(id, swarm)
	em.AddComponent(id, phase)
	return swarm, phase
}

// TestPhaseSystem_TransitionOrder 验证六阶段按固定顺序推进并在消散后结束
func TestPhaseSystem_TransitionOrder(t *testing.T) {
	em := ecs.NewEntityManager()
	ps := NewPhaseSystem(em, config.DefaultAnimationConfig())
	_, phase := newTestEntity(em, 5)

	phase.Running = true

	seen := []types.AnimationPhase{}
	last := types.AnimationPhase(-1)
	dt := 1.0 / 60

	// 18.5 秒总时长，多跑一点余量
	for i := 0; i < int(20/dt); i++ {
		ps.Update(dt)
		if phase.Phase != last {
			seen = append(seen, phase.Phase)
			last = phase.Phase
		}
		if phase.Finished {
			break
		}
	}

	want := []types.AnimationPhase{
		types.PhaseConverging,
		types.PhaseBreathing,
		types.PhaseActivation,
		types.PhaseMorphing,
		types.PhaseDissipating,
	}
	if len(seen) != len(want) {
		t.Fatalf("phase order = %v, want %v", seen, want)
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Fatalf("phase order = %v, want %v", seen, want)
		}
	}

	if !phase.Finished {
		t.Error("sequence did not finish within 20 seconds")
	}
	if phase.Running {
		t.Error("Running should be false after the terminal phase")
	}
}

// TestPhaseSystem_ProgressClamped 验证整个序列中进度始终在 [0,1]
func TestPhaseSystem_ProgressClamped(t *testing.T) {
	em := ecs.NewEntityManager()
	ps := NewPhaseSystem(em, config.DefaultAnimationConfig())
	_, phase := newTestEntity(em, 5)
	phase.Running = true

	// 故意用不整除阶段时长的大步长，让 elapsed 越过时长边界
	dt := 0.37
	for i := 0; i < 60; i++ {
		ps.Update(dt)
		if phase.Progress < 0 || phase.Progress > 1 {
			t.Fatalf("progress = %v at frame %d, outside [0,1]", phase.Progress, i)
		}
		if phase.Finished {
			break
		}
	}
}

// TestPhaseSystem_TransitionResets 验证阶段转换把计时和进度归零
func TestPhaseSystem_TransitionResets(t *testing.T) {
	em := ecs.NewEntityManager()
	ps := NewPhaseSystem(em, config.DefaultAnimationConfig())
	_, phase := newTestEntity(em, 3)
	phase.Running = true

	dt := 1.0 / 60
	last := phase.Phase
	transitions := 0

	for i := 0; i < int(20/dt) && !phase.Finished; i++ {
		ps.Update(dt)
		if phase.Phase != last {
			transitions++
			// 启动转换（Spread→Converging）发生在帧首，随后本帧的 dt
			// 已经计入；只有时长触发的转换在帧尾归零后可被直接观察
			if phase.Phase == types.PhaseConverging {
				last = phase.Phase
				continue
			}
			if phase.Elapsed != 0 {
				t.Errorf("after %s transition: Elapsed = %v, want 0", phase.Phase, phase.Elapsed)
			}
			if phase.Progress != 0 {
				t.Errorf("after %s transition: Progress = %v, want 0", phase.Phase, phase.Progress)
			}
			last = phase.Phase
		}
	}

	if transitions != 5 {
		t.Errorf("saw %d transitions, want 5", transitions)
	}
}

// TestPhaseSystem_NotRunning 验证未启动时状态机不推进
func TestPhaseSystem_NotRunning(t *testing.T) {
	em := ecs.NewEntityManager()
	ps := NewPhaseSystem(em, config.DefaultAnimationConfig())
	swarm, phase := newTestEntity(em, 3)

	before := make([]types.Vec3, len(swarm.Positions))
	copy(before, swarm.Positions)

	ps.Update(1.0)

	if phase.Phase != types.PhaseSpread || phase.Elapsed != 0 {
		t.Errorf("state machine advanced while not running: %+v", phase)
	}
	for i := range before {
		if swarm.Positions[i] != before[i] {
			t.Errorf("particle %d moved while not running", i)
		}
	}
}

// TestPhaseSystem_ConvergeEndpoints 验证汇聚阶段端点精确性：
// progress=0 时位置等于 Spread，progress=1 时等于 Shape1
func TestPhaseSystem_ConvergeEndpoints(t *testing.T) {
	em := ecs.NewEntityManager()
	ps := NewPhaseSystem(em, config.DefaultAnimationConfig())
	swarm := newTestSwarm(6)

	ps.updateConverging(swarm, 0)
	for i := 0; i < swarm.Count; i++ {
		if swarm.Positions[i] != swarm.Spread[i] {
			t.Errorf("progress=0: particle %d at %+v, want spread %+v",
				i, swarm.Positions[i], swarm.Spread[i])
		}
	}

	ps.updateConverging(swarm, 1)
	for i := 0; i < swarm.Count; i++ {
		if swarm.Positions[i] != swarm.Shape1[i] {
			t.Errorf("progress=1: particle %d at %+v, want shape1 %+v",
				i, swarm.Positions[i], swarm.Shape1[i])
		}
	}
}

// TestPhaseSystem_BreathingCenterParticleStationary 验证中心粒子
// （径向方向为零向量）在呼吸阶段保持在形状位置上
func TestPhaseSystem_BreathingCenterParticleStationary(t *testing.T) {
	em := ecs.NewEntityManager()
	ps := NewPhaseSystem(em, config.DefaultAnimationConfig())
	swarm := newTestSwarm(3)

	swarm.RadialDirs[0] = types.Vec3{}
	swarm.CenterDist[0] = 0

	ps.updateBreathing(swarm, 1.234, 0.5)
	if swarm.Positions[0] != swarm.Shape1[0] {
		t.Errorf("center particle moved to %+v, want %+v",
			swarm.Positions[0], swarm.Shape1[0])
	}

	// 非中心粒子应当有位移
	if swarm.Positions[1] == swarm.Shape1[1] && swarm.Positions[2] == swarm.Shape1[2] {
		t.Error("no off-center particle displaced during breathing")
	}
}

// TestPhaseSystem_FiniteOutputs 验证全序列输出无 NaN/Inf
func TestPhaseSystem_FiniteOutputs(t *testing.T) {
	em := ecs.NewEntityManager()
	ps := NewPhaseSystem(em, config.DefaultAnimationConfig())
	swarm, phase := newTestEntity(em, 8)
	phase.Running = true

	dt := 1.0 / 60
	for frame := 0; frame < int(20/dt) && !phase.Finished; frame++ {
		ps.Update(dt)
		for i := 0; i < swarm.Count; i++ {
			if !swarm.Positions[i].IsFinite() {
				t.Fatalf("frame %d (%s): particle %d position %+v not finite",
					frame, phase.Phase, i, swarm.Positions[i])
			}
			if math.IsNaN(swarm.Alphas[i]) || math.IsNaN(swarm.Sizes[i]) {
				t.Fatalf("frame %d (%s): particle %d alpha/size not finite",
					frame, phase.Phase, i)
			}
		}
	}
}

// TestPhaseSystem_SetConfigNil 验证 nil 配置回退到默认值
func TestPhaseSystem_SetConfigNil(t *testing.T) {
	em := ecs.NewEntityManager()
	ps := NewPhaseSystem(em, nil)
	if ps.Config() == nil {
		t.Fatal("nil config should fall back to defaults")
	}
	if ps.Config().Durations.Converge != 3.0 {
		t.Errorf("fallback converge duration = %v, want 3.0", ps.Config().Durations.Converge)
	}
}
