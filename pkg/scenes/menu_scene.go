package scenes

import (
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/gonewx/logomorph/pkg/ecs"
	"github.com/gonewx/logomorph/pkg/entities"
	"github.com/gonewx/logomorph/pkg/game"
	"github.com/gonewx/logomorph/pkg/systems"
	"github.com/gonewx/logomorph/pkg/types"
)

// MenuScene 主菜单场景
//
// 提供开始按钮和两个外观开关（质量档位、情绪状态）。开关修改用户设置
// 并立即持久化，对动画序列本身没有影响。
type MenuScene struct {
	deps Deps

	entityManager *ecs.EntityManager
	buttonSystem  *systems.ButtonSystem
}

// NewMenuScene 创建主菜单场景
func NewMenuScene(deps Deps) *MenuScene {
	s := &MenuScene{
		deps:          deps,
		entityManager: ecs.NewEntityManager(),
	}
	s.buttonSystem = systems.NewButtonSystem(s.entityManager)
	s.createButtons()
	return s
}

func (s *MenuScene) createButtons() {
	cx := float64(s.deps.ScreenWidth) / 2
	top := float64(s.deps.ScreenHeight)/2 - 20

	entities.NewButtonEntity(s.entityManager, cx-110, top, 220, 44,
		"Start Sequence", func() {
			s.deps.Scenes.Switch(game.SceneAnimation)
		})

	_, quality := entities.NewButtonEntity(s.entityManager, cx-110, top+60, 220, 36,
		fmt.Sprintf("Quality: %s", s.deps.Settings.Quality()), nil)
	quality.OnClick = func() {
		s.cycleQuality()
		quality.Text = fmt.Sprintf("Quality: %s", s.deps.Settings.Quality())
	}

	_, emotion := entities.NewButtonEntity(s.entityManager, cx-110, top+104, 220, 36,
		fmt.Sprintf("Emotion: %s", s.deps.Settings.Emotion()), nil)
	emotion.OnClick = func() {
		s.cycleEmotion()
		emotion.Text = fmt.Sprintf("Emotion: %s", s.deps.Settings.Emotion())
	}
}

// cycleQuality 循环切换质量档位并持久化
func (s *MenuScene) cycleQuality() {
	next := map[types.QualityLevel]types.QualityLevel{
		types.QualityLow:    types.QualityMedium,
		types.QualityMedium: types.QualityHigh,
		types.QualityHigh:   types.QualityLow,
	}
	s.deps.Settings.SetQuality(next[s.deps.Settings.Quality()])
	if err := s.deps.Settings.Save(); err != nil {
		log.Printf("[MenuScene] Warning: failed to save settings: %v", err)
	}
}

// cycleEmotion 循环切换情绪状态并持久化
func (s *MenuScene) cycleEmotion() {
	next := map[types.EmotionalState]types.EmotionalState{
		types.EmotionCalm:      types.EmotionEnergetic,
		types.EmotionEnergetic: types.EmotionFocused,
		types.EmotionFocused:   types.EmotionCalm,
	}
	s.deps.Settings.SetEmotion(next[s.deps.Settings.Emotion()])
	if err := s.deps.Settings.Save(); err != nil {
		log.Printf("[MenuScene] Warning: failed to save settings: %v", err)
	}
}

// Update 更新菜单逻辑
func (s *MenuScene) Update(deltaTime float64) {
	s.buttonSystem.Update()

	// 回车等价于点击开始
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		s.deps.Scenes.Switch(game.SceneAnimation)
	}
}

// Draw 绘制菜单
func (s *MenuScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 8, G: 10, B: 18, A: 255})

	title := "L O G O M O R P H"
	tx := s.deps.ScreenWidth/2 - len(title)*3
	ebitenutil.DebugPrintAt(screen, title, tx, s.deps.ScreenHeight/4)

	s.buttonSystem.Draw(screen)
}
