package scenes

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/gonewx/logomorph/pkg/components"
	"github.com/gonewx/logomorph/pkg/ecs"
	"github.com/gonewx/logomorph/pkg/entities"
	"github.com/gonewx/logomorph/pkg/game"
	"github.com/gonewx/logomorph/pkg/systems"
)

// AnimationScene 动画场景
//
// 持有粒子序列的全部运行时：实体管理器、阶段系统和渲染系统。
// 场景创建时完成采样和粒子群构建，序列立即开始推进。
type AnimationScene struct {
	deps Deps

	entityManager *ecs.EntityManager
	phaseSystem   *systems.PhaseSystem
	renderSystem  *systems.RenderSystem

	phase *components.PhaseComponent
}

// NewAnimationScene 创建动画场景并启动序列
// 遮罩尚未加载时返回 nil（资源在启动时加载，正常流程不会走到这里）
func NewAnimationScene(deps Deps) *AnimationScene {
	shape1, shape2, err := deps.Resources.BuildShapes(deps.Sampler)
	if err != nil {
		log.Printf("[AnimationScene] Error: failed to build shapes: %v", err)
		return nil
	}

	s := &AnimationScene{
		deps:          deps,
		entityManager: ecs.NewEntityManager(),
	}
	s.phaseSystem = systems.NewPhaseSystem(s.entityManager, deps.Animation)

	tier := deps.Quality.Tier(deps.Settings.Quality())
	s.renderSystem = systems.NewRenderSystem(s.entityManager, tier, deps.ScreenWidth, deps.ScreenHeight)

	_, swarm, phase := entities.NewSwarmEntity(s.entityManager, shape1, shape2,
		deps.Animation, deps.Settings.Emotion())
	s.phase = phase

	log.Printf("[AnimationScene] Sequence started: %d particles, %.1fs total",
		swarm.Count, deps.Animation.TotalDuration())
	return s
}

// Update 推进动画
func (s *AnimationScene) Update(deltaTime float64) {
	// 非阻塞地取走热重载后的最新配置
	if s.deps.Watcher != nil {
		select {
		case cfg := <-s.deps.Watcher.Updates:
			s.phaseSystem.SetConfig(cfg)
			s.deps.Animation = cfg
		default:
		}
	}

	s.phaseSystem.Update(deltaTime)

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.deps.Scenes.Switch(game.SceneMenu)
		return
	}
	if s.phase.Finished && inpututil.IsKeyJustPressed(ebiten.KeyR) {
		s.deps.Scenes.Switch(game.SceneMenu)
	}
}

// Draw 绘制动画
func (s *AnimationScene) Draw(screen *ebiten.Image) {
	s.renderSystem.Draw(screen)

	if s.phase.Finished {
		hint := "Press R to return to menu"
		tx := s.deps.ScreenWidth/2 - len(hint)*3
		ebitenutil.DebugPrintAt(screen, hint, tx, s.deps.ScreenHeight-40)
	}
}
