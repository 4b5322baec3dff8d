package config

import (
	"fmt"
	"log"

	"gopkg.in/yaml.v3"

	"github.com/gonewx/logomorph/internal/sampler"
	"github.com/gonewx/logomorph/pkg/embedded"
)

// LoadSamplerConfig 从嵌入资源加载采样参数
// 路径通常为 "data/sampler.yaml"。失败时返回 sampler.DefaultConfig()。
func LoadSamplerConfig(path string) (sampler.Config, error) {
	data, err := embedded.ReadFile(path)
	if err != nil {
		log.Printf("[SamplerConfig] Warning: failed to read '%s': %v (using defaults)", path, err)
		return sampler.DefaultConfig(), err
	}
	return ParseSamplerConfig(data)
}

// ParseSamplerConfig 解析 YAML 字节，非法字段回退到默认值
func ParseSamplerConfig(data []byte) (sampler.Config, error) {
	cfg := sampler.DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		log.Printf("[SamplerConfig] Error: failed to parse config: %v (using defaults)", err)
		return sampler.DefaultConfig(), fmt.Errorf("failed to parse sampler config: %w", err)
	}

	def := sampler.DefaultConfig()
	if cfg.CanvasSize <= 0 {
		log.Printf("[SamplerConfig] Warning: canvasSize = %d is not positive, using %d", cfg.CanvasSize, def.CanvasSize)
		cfg.CanvasSize = def.CanvasSize
	}
	if cfg.Stride <= 0 {
		log.Printf("[SamplerConfig] Warning: stride = %d is not positive, using %d", cfg.Stride, def.Stride)
		cfg.Stride = def.Stride
	}
	if cfg.Spread <= 0 {
		cfg.Spread = def.Spread
	}
	if cfg.MinParticles <= 0 {
		cfg.MinParticles = def.MinParticles
	}

	return cfg, nil
}
