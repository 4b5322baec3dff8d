// Package app 提供应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来：装配资源、配置、设置和场景，
// 并实现 ebiten.Game 接口。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/gonewx/logomorph/pkg/config"
	"github.com/gonewx/logomorph/pkg/game"
	"github.com/gonewx/logomorph/pkg/scenes"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ConfigPath 磁盘上的动画配置覆盖文件（调参用，可为空）
	ConfigPath string
	// SkipMenu 跳过主菜单直接开始动画
	SkipMenu bool
}

// App 是应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager *game.SceneManager
	settings     *game.SettingsManager
	watcher      *config.AnimationWatcher
	verbose      bool

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	// 创建资源管理器并解码遮罩
	resourceManager := game.NewResourceManager()
	if err := resourceManager.LoadMasks(); err != nil {
		return nil, fmt.Errorf("遮罩加载失败: %w", err)
	}

	// 加载配置（失败时各自回退到内置默认值）
	animCfg, err := config.LoadAnimationConfig("data/animation.yaml")
	if err != nil {
		log.Printf("[App] Animation config fell back to defaults: %v", err)
	}
	samplerCfg, err := config.LoadSamplerConfig("data/sampler.yaml")
	if err != nil {
		log.Printf("[App] Sampler config fell back to defaults: %v", err)
	}
	qualityCfg, err := config.LoadQualityConfig("data/quality.yaml")
	if err != nil {
		log.Printf("[App] Quality config fell back to defaults: %v", err)
	}

	// -config 覆盖文件：启动时加载一次并开始监视热重载
	var watcher *config.AnimationWatcher
	if cfg.ConfigPath != "" {
		if override, err := config.LoadAnimationConfigFile(cfg.ConfigPath); err != nil {
			log.Printf("[App] Warning: config override '%s' unusable: %v", cfg.ConfigPath, err)
		} else {
			animCfg = override
			log.Printf("[App] Using config override '%s'", cfg.ConfigPath)
		}
		if w, err := config.WatchAnimationConfig(cfg.ConfigPath); err != nil {
			log.Printf("[App] Warning: hot reload unavailable: %v", err)
		} else {
			watcher = w
		}
	}

	// 用户设置（gdata 不可用时降级为仅内存）
	settings, err := game.NewSettingsManager(game.OpenStorage())
	if err != nil {
		return nil, fmt.Errorf("设置管理器初始化失败: %w", err)
	}

	// 创建场景管理器并装配场景工厂
	sceneManager := game.NewSceneManager()
	deps := scenes.Deps{
		Scenes:       sceneManager,
		Settings:     settings,
		Resources:    resourceManager,
		Animation:    animCfg,
		Sampler:      samplerCfg,
		Quality:      qualityCfg,
		Watcher:      watcher,
		ScreenWidth:  config.GameWindowWidth,
		ScreenHeight: config.GameWindowHeight,
	}
	sceneManager.SetSceneFactory(func(name string) game.Scene {
		switch name {
		case game.SceneMenu:
			return scenes.NewMenuScene(deps)
		case game.SceneAnimation:
			if s := scenes.NewAnimationScene(deps); s != nil {
				return s
			}
			return nil
		default:
			return nil
		}
	})

	if cfg.SkipMenu {
		log.Printf("[App] SkipMenu enabled, starting animation directly")
		sceneManager.Switch(game.SceneAnimation)
	} else {
		sceneManager.Switch(game.SceneMenu)
	}

	return &App{
		sceneManager: sceneManager,
		settings:     settings,
		watcher:      watcher,
		verbose:      cfg.Verbose,
	}, nil
}

// Update 更新应用逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", config.GameWindowWidth, config.GameWindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			// 延迟几帧后设置窗口大小，让窗口管理器有时间处理
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
			a.settings.SetFullscreen(false)
		} else {
			ebiten.SetFullscreen(true)
			a.settings.SetFullscreen(true)
		}
		if err := a.settings.Save(); err != nil {
			log.Printf("[App] Warning: failed to save settings: %v", err)
		}
	}

	deltaTime := 1.0 / 60.0
	a.sceneManager.Update(deltaTime)
	return nil
}

// Draw 绘制画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GameWindowWidth, config.GameWindowHeight
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// Settings 返回设置管理器
// 用于在 main 中按持久化设置决定启动时是否全屏
func (a *App) Settings() *game.SettingsManager {
	return a.settings
}

// Close 释放应用持有的后台资源
func (a *App) Close() {
	if a.watcher != nil {
		a.watcher.Close()
	}
}
