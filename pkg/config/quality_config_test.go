package config

import (
	"testing"

	"github.com/gonewx/logomorph/pkg/types"
)

func TestQualityConfig_Tier(t *testing.T) {
	cfg := DefaultQualityConfig()

	low := cfg.Tier(types.QualityLow)
	if low.Glow {
		t.Error("low tier should not enable glow")
	}
	high := cfg.Tier(types.QualityHigh)
	if high.MaxParticles != 0 {
		t.Errorf("high tier maxParticles = %d, want 0 (unlimited)", high.MaxParticles)
	}

	// 未定义档位回退到 medium
	fallback := cfg.Tier(types.QualityLevel("ultra"))
	if fallback.SizeScale != cfg.Tiers[string(types.QualityMedium)].SizeScale {
		t.Errorf("unknown tier should fall back to medium, got %+v", fallback)
	}
}
