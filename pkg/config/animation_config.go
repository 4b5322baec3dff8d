// Package config 提供动画参数的 YAML 配置加载
//
// 所有配置都有内置默认值：配置文件缺失或字段非法时回退到默认值并打印
// 警告，不会让程序启动失败。
package config

import (
	"fmt"
	"log"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gonewx/logomorph/internal/tween"
	"github.com/gonewx/logomorph/pkg/embedded"
)

// PhaseDurations 各阶段时长（秒）
// Spread 是初始态，没有时长；序列从 Converging 开始计时
type PhaseDurations struct {
	Converge  float64 `yaml:"converge"`
	Breathe   float64 `yaml:"breathe"`
	Activate  float64 `yaml:"activate"`
	Morph     float64 `yaml:"morph"`
	Dissipate float64 `yaml:"dissipate"`
}

// BreathingConfig 呼吸阶段参数
type BreathingConfig struct {
	Freq1       float64 `yaml:"freq1"`       // 第一正弦频率（弧度/秒）
	Freq2       float64 `yaml:"freq2"`       // 第二正弦频率
	Amp1        float64 `yaml:"amp1"`        // 第一正弦振幅
	Amp2        float64 `yaml:"amp2"`        // 第二正弦振幅
	CenterDecay float64 `yaml:"centerDecay"` // 振幅随中心距离的衰减系数
	SizePulse   string  `yaml:"sizePulse"`   // 尺寸脉冲轨道（tween track 格式）

	// SizePulseTrack 是 SizePulse 解析后的轨道，加载时填充
	SizePulseTrack tween.Track `yaml:"-"`
}

// ActivationConfig 激活阶段参数
// 三个子阶段以归一化进度阈值划分：[0,BuildEnd) 蓄力、[BuildEnd,BurstEnd)
// 爆发、[BurstEnd,1] 回落（回落段对变形目标色做预热）
type ActivationConfig struct {
	BuildEnd       float64 `yaml:"buildEnd"`
	BurstEnd       float64 `yaml:"burstEnd"`
	PulseAmplitude float64 `yaml:"pulseAmplitude"` // 爆发段径向脉冲幅度
	SizeSwell      float64 `yaml:"sizeSwell"`      // 蓄力段尺寸膨胀比例
	Prewarm        float64 `yaml:"prewarm"`        // 目标色预热比例 (0-1)
}

// MorphConfig 变形阶段参数
// 子阶段：[0,CompressEnd) 压缩、[CompressEnd,FlightEnd) 贝塞尔飞行、
// [FlightEnd,1] 落位
type MorphConfig struct {
	CompressEnd     float64 `yaml:"compressEnd"`
	FlightEnd       float64 `yaml:"flightEnd"`
	Compress        float64 `yaml:"compress"`        // 向中心压缩的比例
	Lift            float64 `yaml:"lift"`            // 贝塞尔控制点的抬升量
	DelaySpan       float64 `yaml:"delaySpan"`       // 逐粒子延迟占飞行段的比例
	SettleAmplitude float64 `yaml:"settleAmplitude"` // 落位段残余摆动幅度
}

// DissipateConfig 消散阶段参数
type DissipateConfig struct {
	Jitter float64 `yaml:"jitter"` // 每秒累积的随机加速度
	Drift  float64 `yaml:"drift"`  // 垂直漂移加速度
}

// PaletteConfig 颜色配置，RGB 分量取值 0-1
type PaletteConfig struct {
	Primary    []float64 `yaml:"primary"`    // 第一形状基础色
	Secondary  []float64 `yaml:"secondary"`  // 第二形状基础色
	Activation []float64 `yaml:"activation"` // 激活脉冲色
	Variation  float64   `yaml:"variation"`  // 逐粒子颜色随机抖动幅度
}

// AnimationConfig 动画全量参数
type AnimationConfig struct {
	Durations    PhaseDurations   `yaml:"durations"`
	SpreadRadius float64          `yaml:"spreadRadius"` // 初始球面分布半径
	Breathing    BreathingConfig  `yaml:"breathing"`
	Activation   ActivationConfig `yaml:"activation"`
	Morph        MorphConfig      `yaml:"morph"`
	Dissipate    DissipateConfig  `yaml:"dissipate"`
	Palette      PaletteConfig    `yaml:"palette"`
}

// DefaultAnimationConfig 返回内置默认参数
// 阶段时长与原始动画保持一致：3 / 5 / 2.5 / 4 / 4 秒
func DefaultAnimationConfig() *AnimationConfig {
	cfg := &AnimationConfig{
		Durations: PhaseDurations{
			Converge:  3.0,
			Breathe:   5.0,
			Activate:  2.5,
			Morph:     4.0,
			Dissipate: 4.0,
		},
		SpreadRadius: 2.2,
		Breathing: BreathingConfig{
			Freq1:       2.1,
			Freq2:       3.7,
			Amp1:        0.045,
			Amp2:        0.02,
			CenterDecay: 0.9,
			SizePulse:   "EaseInOut 0,1 0.5,1.08 1,1",
		},
		Activation: ActivationConfig{
			BuildEnd:       0.3,
			BurstEnd:       0.6,
			PulseAmplitude: 0.18,
			SizeSwell:      0.35,
			Prewarm:        0.35,
		},
		Morph: MorphConfig{
			CompressEnd:     0.3,
			FlightEnd:       0.8,
			Compress:        0.35,
			Lift:            0.6,
			DelaySpan:       0.25,
			SettleAmplitude: 0.05,
		},
		Dissipate: DissipateConfig{
			Jitter: 1.6,
			Drift:  0.25,
		},
		Palette: PaletteConfig{
			Primary:    []float64{0.45, 0.8, 1.0},
			Secondary:  []float64{0.75, 0.5, 1.0},
			Activation: []float64{1.0, 0.95, 0.6},
			Variation:  0.08,
		},
	}
	cfg.finish()
	return cfg
}

// LoadAnimationConfig 从嵌入资源加载动画配置
// 路径通常为 "data/animation.yaml"。加载或解析失败时返回默认配置和错误。
func LoadAnimationConfig(path string) (*AnimationConfig, error) {
	data, err := embedded.ReadFile(path)
	if err != nil {
		log.Printf("[AnimationConfig] Warning: failed to read '%s': %v (using defaults)", path, err)
		return DefaultAnimationConfig(), err
	}
	return ParseAnimationConfig(data)
}

// LoadAnimationConfigFile 从磁盘加载动画配置（-config 覆盖文件 / 热重载用）
func LoadAnimationConfigFile(path string) (*AnimationConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return DefaultAnimationConfig(), err
	}
	return ParseAnimationConfig(data)
}

// ParseAnimationConfig 解析 YAML 字节并补全缺失字段
func ParseAnimationConfig(data []byte) (*AnimationConfig, error) {
	cfg := DefaultAnimationConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		log.Printf("[AnimationConfig] Error: failed to parse config: %v (using defaults)", err)
		return DefaultAnimationConfig(), fmt.Errorf("failed to parse animation config: %w", err)
	}

	cfg.validate()
	cfg.finish()
	return cfg, nil
}

// validate 检查数值合法性，非法字段回退到默认值
func (c *AnimationConfig) validate() {
	def := DefaultAnimationConfig()

	fix := func(name string, v *float64, fallback float64) {
		if *v <= 0 {
			log.Printf("[AnimationConfig] Warning: %s = %v is not positive, using %v", name, *v, fallback)
			*v = fallback
		}
	}

	fix("durations.converge", &c.Durations.Converge, def.Durations.Converge)
	fix("durations.breathe", &c.Durations.Breathe, def.Durations.Breathe)
	fix("durations.activate", &c.Durations.Activate, def.Durations.Activate)
	fix("durations.morph", &c.Durations.Morph, def.Durations.Morph)
	fix("durations.dissipate", &c.Durations.Dissipate, def.Durations.Dissipate)
	fix("spreadRadius", &c.SpreadRadius, def.SpreadRadius)

	// 子阶段阈值必须保持有序，否则整组回退
	if !(c.Activation.BuildEnd > 0 && c.Activation.BuildEnd < c.Activation.BurstEnd && c.Activation.BurstEnd < 1) {
		log.Printf("[AnimationConfig] Warning: activation thresholds out of order, using defaults")
		c.Activation.BuildEnd = def.Activation.BuildEnd
		c.Activation.BurstEnd = def.Activation.BurstEnd
	}
	if !(c.Morph.CompressEnd > 0 && c.Morph.CompressEnd < c.Morph.FlightEnd && c.Morph.FlightEnd < 1) {
		log.Printf("[AnimationConfig] Warning: morph thresholds out of order, using defaults")
		c.Morph.CompressEnd = def.Morph.CompressEnd
		c.Morph.FlightEnd = def.Morph.FlightEnd
	}
	if c.Morph.DelaySpan < 0 || c.Morph.DelaySpan >= 1 {
		c.Morph.DelaySpan = def.Morph.DelaySpan
	}

	if len(c.Palette.Primary) != 3 {
		c.Palette.Primary = def.Palette.Primary
	}
	if len(c.Palette.Secondary) != 3 {
		c.Palette.Secondary = def.Palette.Secondary
	}
	if len(c.Palette.Activation) != 3 {
		c.Palette.Activation = def.Palette.Activation
	}
}

// finish 解析字符串轨道等派生字段
func (c *AnimationConfig) finish() {
	c.Breathing.SizePulseTrack = tween.ParseTrack(c.Breathing.SizePulse)
	if c.Breathing.SizePulseTrack.IsEmpty() {
		c.Breathing.SizePulseTrack = tween.ParseTrack(DefaultAnimationConfig().Breathing.SizePulse)
	}
}

// TotalDuration 返回从 Converging 到序列结束的总时长（秒）
func (c *AnimationConfig) TotalDuration() float64 {
	return c.Durations.Converge + c.Durations.Breathe + c.Durations.Activate +
		c.Durations.Morph + c.Durations.Dissipate
}
