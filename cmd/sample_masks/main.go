// sample_masks 在无窗口环境下检查遮罩采样结果
//
// 用法: go run cmd/sample_masks/main.go [-stride N] <遮罩PNG路径>...
// 对每个遮罩打印采样粒子数、是否触发了后备形状和坐标包围盒。
package main

import (
	"flag"
	"fmt"
	"image"
	_ "image/png"
	"log"
	"math"
	"os"

	"github.com/gonewx/logomorph/internal/sampler"
)

func main() {
	stride := flag.Int("stride", 0, "override sample stride (0 = config default)")
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Println("用法: go run cmd/sample_masks/main.go [-stride N] <遮罩PNG路径>...")
		os.Exit(1)
	}

	cfg := sampler.DefaultConfig()
	if *stride > 0 {
		cfg.Stride = *stride
	}

	for _, path := range flag.Args() {
		f, err := os.Open(path)
		if err != nil {
			log.Fatalf("打开失败 '%s': %v", path, err)
		}
		img, format, err := image.Decode(f)
		f.Close()
		if err != nil {
			log.Fatalf("解码失败 '%s': %v", path, err)
		}

		points, usedFallback := sampler.SampleOrFallback(img, cfg)

		fmt.Printf("遮罩: %s (%s, %dx%d)\n", path, format, img.Bounds().Dx(), img.Bounds().Dy())
		fmt.Printf("  粒子数: %d (stride=%d)\n", len(points), cfg.Stride)
		if usedFallback {
			fmt.Printf("  警告: 采样不足 %d，使用了程序化后备形状\n", cfg.MinParticles)
		}

		minX, minY := math.MaxFloat64, math.MaxFloat64
		maxX, maxY := -math.MaxFloat64, -math.MaxFloat64
		for _, p := range points {
			minX = math.Min(minX, p.X)
			maxX = math.Max(maxX, p.X)
			minY = math.Min(minY, p.Y)
			maxY = math.Max(maxY, p.Y)
		}
		fmt.Printf("  包围盒: X [%.3f, %.3f], Y [%.3f, %.3f]\n\n", minX, maxX, minY, maxY)
	}
}
