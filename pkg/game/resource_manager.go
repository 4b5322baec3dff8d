package game

import (
	"fmt"
	"image"
	_ "image/png" // 遮罩图片为 PNG 格式
	"log"

	"github.com/gonewx/logomorph/internal/sampler"
	"github.com/gonewx/logomorph/pkg/embedded"
	"github.com/gonewx/logomorph/pkg/types"
)

// 两张 Logo 遮罩的嵌入路径
const (
	MaskPrimaryPath   = "assets/images/logo_mask_1.png"
	MaskSecondaryPath = "assets/images/logo_mask_2.png"
)

// ResourceManager 资源管理器
// 负责解码嵌入的遮罩图片并生成粒子形状数组
type ResourceManager struct {
	masks map[string]image.Image
}

// NewResourceManager 创建资源管理器
func NewResourceManager() *ResourceManager {
	return &ResourceManager{
		masks: make(map[string]image.Image),
	}
}

// LoadMasks 解码两张遮罩图片
// 任何一张解码失败都是致命错误：没有遮罩序列无法开始
func (rm *ResourceManager) LoadMasks() error {
	for _, path := range []string{MaskPrimaryPath, MaskSecondaryPath} {
		f, err := embedded.Open(path)
		if err != nil {
			return fmt.Errorf("failed to open mask '%s': %w", path, err)
		}
		img, format, err := image.Decode(f)
		f.Close()
		if err != nil {
			return fmt.Errorf("failed to decode mask '%s': %w", path, err)
		}
		rm.masks[path] = img
		log.Printf("[ResourceManager] Loaded mask '%s' (%s, %dx%d)",
			path, format, img.Bounds().Dx(), img.Bounds().Dy())
	}
	return nil
}

// Mask 返回已解码的遮罩图片
func (rm *ResourceManager) Mask(path string) (image.Image, bool) {
	img, ok := rm.masks[path]
	return img, ok
}

// BuildShapes 从两张遮罩提取形状数组并补齐到相同长度
//
// 单张遮罩提取不足时静默使用程序化后备形状（X 形）。两个数组补齐到
// 较大的那个长度，保证逐粒子配对成立。
func (rm *ResourceManager) BuildShapes(cfg sampler.Config) (shape1, shape2 []types.Vec3, err error) {
	img1, ok := rm.masks[MaskPrimaryPath]
	if !ok {
		return nil, nil, fmt.Errorf("mask '%s' not loaded", MaskPrimaryPath)
	}
	img2, ok := rm.masks[MaskSecondaryPath]
	if !ok {
		return nil, nil, fmt.Errorf("mask '%s' not loaded", MaskSecondaryPath)
	}

	shape1, fb1 := sampler.SampleOrFallback(img1, cfg)
	shape2, fb2 := sampler.SampleOrFallback(img2, cfg)
	if fb1 {
		log.Printf("[ResourceManager] Mask 1 yielded too few particles, using fallback shape")
	}
	if fb2 {
		log.Printf("[ResourceManager] Mask 2 yielded too few particles, using fallback shape")
	}

	target := len(shape1)
	if len(shape2) > target {
		target = len(shape2)
	}
	shape1 = sampler.PadPositions(shape1, target)
	shape2 = sampler.PadPositions(shape2, target)

	log.Printf("[ResourceManager] Shapes ready: %d particles", target)
	return shape1, shape2, nil
}
