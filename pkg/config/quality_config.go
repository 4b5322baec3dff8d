package config

import (
	"fmt"
	"log"

	"gopkg.in/yaml.v3"

	"github.com/gonewx/logomorph/pkg/embedded"
	"github.com/gonewx/logomorph/pkg/types"
)

// QualityTier 单个质量档位的渲染参数
type QualityTier struct {
	SizeScale    float64 `yaml:"sizeScale"`    // 粒子尺寸缩放
	Glow         bool    `yaml:"glow"`         // 是否叠加泛光层
	MaxParticles int     `yaml:"maxParticles"` // 渲染粒子上限，0 表示不限
}

// QualityConfig 全部质量档位
type QualityConfig struct {
	Tiers map[string]QualityTier `yaml:"tiers"`
}

// DefaultQualityConfig 返回内置的三档配置
func DefaultQualityConfig() *QualityConfig {
	return &QualityConfig{
		Tiers: map[string]QualityTier{
			string(types.QualityLow):    {SizeScale: 0.8, Glow: false, MaxParticles: 4000},
			string(types.QualityMedium): {SizeScale: 1.0, Glow: true, MaxParticles: 12000},
			string(types.QualityHigh):   {SizeScale: 1.2, Glow: true, MaxParticles: 0},
		},
	}
}

// LoadQualityConfig 从嵌入资源加载质量档位配置
// 路径通常为 "data/quality.yaml"
func LoadQualityConfig(path string) (*QualityConfig, error) {
	data, err := embedded.ReadFile(path)
	if err != nil {
		log.Printf("[QualityConfig] Warning: failed to read '%s': %v (using defaults)", path, err)
		return DefaultQualityConfig(), err
	}

	cfg := &QualityConfig{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		log.Printf("[QualityConfig] Error: failed to parse config: %v (using defaults)", err)
		return DefaultQualityConfig(), fmt.Errorf("failed to parse quality config: %w", err)
	}
	if len(cfg.Tiers) == 0 {
		log.Printf("[QualityConfig] Warning: config defines no tiers (using defaults)")
		return DefaultQualityConfig(), nil
	}
	return cfg, nil
}

// Tier 返回指定档位的参数；未定义的档位回退到 medium 默认值
func (qc *QualityConfig) Tier(level types.QualityLevel) QualityTier {
	if tier, ok := qc.Tiers[string(level)]; ok {
		return tier
	}
	log.Printf("[QualityConfig] Warning: tier '%s' not defined, falling back to medium", level)
	return DefaultQualityConfig().Tiers[string(types.QualityMedium)]
}
