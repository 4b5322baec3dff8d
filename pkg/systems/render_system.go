package systems

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gonewx/logomorph/pkg/components"
	"github.com/gonewx/logomorph/pkg/config"
	"github.com/gonewx/logomorph/pkg/ecs"
)

// 投影参数：简单透视，z 越大离相机越近
const (
	renderViewScale   = 240.0 // 世界单位 → 像素
	renderCameraDepth = 4.0
	dotSpriteSize     = 16 // 粒子贴图边长（像素）
)

// RenderSystem 粒子渲染系统
//
// 把粒子群的当前数组投影到屏幕并以加法混合绘制径向渐变点。
// 加法混合与绘制顺序无关，所以不需要按深度排序。
type RenderSystem struct {
	EntityManager *ecs.EntityManager

	tier config.QualityTier

	screenWidth  int
	screenHeight int

	dot *ebiten.Image
}

// NewRenderSystem 创建渲染系统
// tier 决定粒子尺寸缩放、泛光层和渲染上限
func NewRenderSystem(em *ecs.EntityManager, tier config.QualityTier, screenWidth, screenHeight int) *RenderSystem {
	return &RenderSystem{
		EntityManager: em,
		tier:          tier,
		screenWidth:   screenWidth,
		screenHeight:  screenHeight,
		dot:           buildDotSprite(),
	}
}

// Draw 绘制所有粒子群
func (rs *RenderSystem) Draw(screen *ebiten.Image) {
	entities := ecs.GetEntitiesWith2[*components.SwarmComponent, *components.PhaseComponent](rs.EntityManager)

	for _, id := range entities {
		swarm, ok := ecs.GetComponent[*components.SwarmComponent](rs.EntityManager, id)
		if !ok {
			continue
		}
		rs.drawSwarm(screen, swarm)
	}
}

func (rs *RenderSystem) drawSwarm(screen *ebiten.Image, swarm *components.SwarmComponent) {
	count := swarm.Count
	if rs.tier.MaxParticles > 0 && count > rs.tier.MaxParticles {
		count = rs.tier.MaxParticles
	}

	cx := float64(rs.screenWidth) / 2
	cy := float64(rs.screenHeight) / 2

	op := &ebiten.DrawImageOptions{}
	op.Blend = ebiten.Blend{
		BlendFactorSourceRGB:        ebiten.BlendFactorOne,
		BlendFactorDestinationRGB:   ebiten.BlendFactorOne,
		BlendOperationRGB:           ebiten.BlendOperationAdd,
		BlendFactorSourceAlpha:      ebiten.BlendFactorOne,
		BlendFactorDestinationAlpha: ebiten.BlendFactorOne,
		BlendOperationAlpha:         ebiten.BlendOperationAdd,
	}

	for i := 0; i < count; i++ {
		alpha := swarm.Alphas[i]
		if alpha <= 0 {
			continue
		}

		pos := swarm.Positions[i]
		persp := renderCameraDepth / (renderCameraDepth + pos.Z)
		if persp <= 0 {
			continue // 粒子跑到相机后面
		}

		sx := cx + pos.X*renderViewScale*persp
		sy := cy - pos.Y*renderViewScale*persp

		px := swarm.Sizes[i] * renderViewScale * persp * rs.tier.SizeScale
		if px < 1 {
			px = 1
		}
		scale := px / dotSpriteSize

		// 情绪色调偏移：暖色加红减蓝
		r := clampChannel(swarm.Colors[i].X + swarm.Warmth)
		g := clampChannel(swarm.Colors[i].Y)
		b := clampChannel(swarm.Colors[i].Z - swarm.Warmth)

		op.GeoM.Reset()
		op.GeoM.Translate(-dotSpriteSize/2, -dotSpriteSize/2)
		op.GeoM.Scale(scale, scale)
		op.GeoM.Translate(sx, sy)
		op.ColorScale.Reset()
		op.ColorScale.Scale(float32(r*alpha), float32(g*alpha), float32(b*alpha), float32(alpha))
		screen.DrawImage(rs.dot, op)

		// 泛光层：放大的低亮度第二遍
		if rs.tier.Glow {
			op.GeoM.Reset()
			op.GeoM.Translate(-dotSpriteSize/2, -dotSpriteSize/2)
			op.GeoM.Scale(scale*2.5, scale*2.5)
			op.GeoM.Translate(sx, sy)
			op.ColorScale.Reset()
			ga := alpha * 0.18
			op.ColorScale.Scale(float32(r*ga), float32(g*ga), float32(b*ga), float32(ga))
			screen.DrawImage(rs.dot, op)
		}
	}
}

// buildDotSprite 生成径向渐变的粒子贴图（预乘 alpha 白色）
func buildDotSprite() *ebiten.Image {
	const size = dotSpriteSize
	const half = size / 2

	pix := make([]byte, size*size*4)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx := float64(x) - half + 0.5
			dy := float64(y) - half + 0.5
			dist := (dx*dx + dy*dy) / (half * half)

			falloff := 1 - dist
			if falloff < 0 {
				falloff = 0
			}
			v := byte(255 * falloff * falloff)

			idx := (y*size + x) * 4
			pix[idx+0] = v
			pix[idx+1] = v
			pix[idx+2] = v
			pix[idx+3] = v
		}
	}

	img := ebiten.NewImage(size, size)
	img.WritePixels(pix)
	return img
}

func clampChannel(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
