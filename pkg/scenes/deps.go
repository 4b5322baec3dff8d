// Package scenes 包含菜单和动画两个场景
package scenes

import (
	"github.com/gonewx/logomorph/internal/sampler"
	"github.com/gonewx/logomorph/pkg/config"
	"github.com/gonewx/logomorph/pkg/game"
)

// Deps 场景共享的依赖集合
// 由 app 在启动时装配一次，场景工厂按名称创建场景时传入
type Deps struct {
	Scenes    *game.SceneManager
	Settings  *game.SettingsManager
	Resources *game.ResourceManager

	Animation *config.AnimationConfig
	Sampler   sampler.Config
	Quality   *config.QualityConfig

	// Watcher 可为 nil（未指定 -config 覆盖文件时）
	Watcher *config.AnimationWatcher

	ScreenWidth  int
	ScreenHeight int
}
