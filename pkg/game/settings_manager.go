// Package game 提供资源、设置和场景管理
package game

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"

	"github.com/gonewx/logomorph/pkg/types"
)

// UserSettings 全局用户设置
// 只有外观参数：质量档位、情绪状态和全屏开关，不影响阶段状态机
type UserSettings struct {
	// Quality 渲染质量档位（low / medium / high）
	Quality string `yaml:"quality"`
	// Emotion 情绪响应状态（calm / energetic / focused）
	Emotion string `yaml:"emotion"`
	// Fullscreen 启动时是否全屏
	Fullscreen bool `yaml:"fullscreen"`
}

// DefaultSettings 返回默认设置
func DefaultSettings() *UserSettings {
	return &UserSettings{
		Quality:    string(types.QualityMedium),
		Emotion:    string(types.EmotionCalm),
		Fullscreen: false,
	}
}

// SettingsManager 设置管理器
// 负责用户设置的加载、保存和内存管理
type SettingsManager struct {
	gdataManager *gdata.Manager // gdata 跨平台存储管理器，可为 nil（降级模式）
	settings     *UserSettings
}

// 存储路径常量
const (
	settingsObject   = "settings"
	settingsProperty = "global"
)

// OpenStorage 打开 gdata 跨平台存储
// 失败时返回 nil manager（设置将工作在仅内存的降级模式）
func OpenStorage() *gdata.Manager {
	m, err := gdata.Open(gdata.Config{AppName: "logomorph"})
	if err != nil {
		log.Printf("[Storage] Warning: gdata unavailable: %v (settings will not persist)", err)
		return nil
	}
	return m
}

// NewSettingsManager 创建设置管理器
//
// gdataManager 可为 nil：此时仅使用内存中的默认设置，Save 为空操作。
// 加载失败不是致命错误，回退到默认设置。
func NewSettingsManager(gdataManager *gdata.Manager) (*SettingsManager, error) {
	sm := &SettingsManager{
		gdataManager: gdataManager,
		settings:     DefaultSettings(),
	}

	if err := sm.Load(); err != nil {
		log.Printf("[SettingsManager] Warning: failed to load settings: %v (using defaults)", err)
	}

	return sm, nil
}

// Load 从 gdata 加载设置
func (sm *SettingsManager) Load() error {
	if sm.gdataManager == nil {
		sm.settings = DefaultSettings()
		return nil
	}

	if !sm.gdataManager.ObjectPropExists(settingsObject, settingsProperty) {
		sm.settings = DefaultSettings()
		return nil
	}

	data, err := sm.gdataManager.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		sm.settings = DefaultSettings()
		return fmt.Errorf("failed to load settings: %w", err)
	}

	var loaded UserSettings
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		sm.settings = DefaultSettings()
		return fmt.Errorf("failed to unmarshal settings: %w", err)
	}

	sm.settings = &loaded
	sm.sanitize()
	log.Printf("[SettingsManager] Settings loaded (quality=%s, emotion=%s)",
		sm.settings.Quality, sm.settings.Emotion)
	return nil
}

// Save 保存设置到 gdata
// 降级模式（gdataManager 为 nil）下直接返回 nil
func (sm *SettingsManager) Save() error {
	if sm.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(sm.settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := sm.gdataManager.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}

// sanitize 把持久化数据里的非法枚举值纠正为默认值
func (sm *SettingsManager) sanitize() {
	if _, ok := types.ParseQualityLevel(sm.settings.Quality); !ok {
		log.Printf("[SettingsManager] Warning: unknown quality '%s', using medium", sm.settings.Quality)
		sm.settings.Quality = string(types.QualityMedium)
	}
	if _, ok := types.ParseEmotionalState(sm.settings.Emotion); !ok {
		log.Printf("[SettingsManager] Warning: unknown emotion '%s', using calm", sm.settings.Emotion)
		sm.settings.Emotion = string(types.EmotionCalm)
	}
}

// GetSettings 获取当前设置
func (sm *SettingsManager) GetSettings() *UserSettings {
	return sm.settings
}

// Quality 返回解析后的质量档位
func (sm *SettingsManager) Quality() types.QualityLevel {
	level, _ := types.ParseQualityLevel(sm.settings.Quality)
	return level
}

// Emotion 返回解析后的情绪状态
func (sm *SettingsManager) Emotion() types.EmotionalState {
	state, _ := types.ParseEmotionalState(sm.settings.Emotion)
	return state
}

// SetQuality 设置质量档位
// 注意：仅修改内存中的设置，需调用 Save() 持久化
func (sm *SettingsManager) SetQuality(level types.QualityLevel) {
	sm.settings.Quality = string(level)
}

// SetEmotion 设置情绪状态
// 注意：仅修改内存中的设置，需调用 Save() 持久化
func (sm *SettingsManager) SetEmotion(state types.EmotionalState) {
	sm.settings.Emotion = string(state)
}

// SetFullscreen 设置全屏模式
// 注意：仅修改内存中的设置，需调用 Save() 持久化
func (sm *SettingsManager) SetFullscreen(enabled bool) {
	sm.settings.Fullscreen = enabled
}
