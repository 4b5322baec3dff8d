package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// 场景名称常量
const (
	SceneMenu      = "menu"
	SceneAnimation = "animation"
)

// SceneFactory 场景工厂函数类型
// 按名称创建场景，避免场景包之间的循环依赖
type SceneFactory func(name string) Scene

// SceneManager manages the application's high-level state by controlling
// which scene is active. Only one scene's Update and Draw are called at a
// time.
type SceneManager struct {
	currentScene Scene
	sceneFactory SceneFactory
}

// NewSceneManager creates and returns a new SceneManager instance.
// The manager starts with no active scene; use SwitchTo to set one.
func NewSceneManager() *SceneManager {
	return &SceneManager{}
}

// SetSceneFactory 设置场景工厂函数
func (sm *SceneManager) SetSceneFactory(factory SceneFactory) {
	sm.sceneFactory = factory
}

// SwitchTo changes the active scene to the provided scene.
func (sm *SceneManager) SwitchTo(scene Scene) {
	sm.currentScene = scene
}

// Switch 通过工厂按名称创建并切换场景
func (sm *SceneManager) Switch(name string) {
	if sm.sceneFactory == nil {
		log.Printf("[SceneManager] Error: scene factory not set")
		return
	}
	scene := sm.sceneFactory(name)
	if scene == nil {
		log.Printf("[SceneManager] Error: factory returned nil for scene '%s'", name)
		return
	}
	log.Printf("[SceneManager] Switching to scene '%s'", name)
	sm.SwitchTo(scene)
}

// GetCurrentScene 返回当前活动的场景，没有则返回 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// Update updates the currently active scene.
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime)
	}
}

// Draw renders the currently active scene.
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}
