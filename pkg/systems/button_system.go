package systems

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/gonewx/logomorph/pkg/components"
	"github.com/gonewx/logomorph/pkg/ecs"
)

// ButtonSystem 按钮命中检测与绘制
//
// 每帧根据鼠标位置更新悬停/按下状态，在按钮内刚按下左键时触发
// OnClick 回调。
type ButtonSystem struct {
	EntityManager *ecs.EntityManager

	fill *ebiten.Image // 1x1 白色，拉伸绘制按钮底色
}

// NewButtonSystem 创建按钮系统
func NewButtonSystem(em *ecs.EntityManager) *ButtonSystem {
	fill := ebiten.NewImage(1, 1)
	fill.Fill(color.White)
	return &ButtonSystem{
		EntityManager: em,
		fill:          fill,
	}
}

// Update 更新所有按钮状态并分发点击
func (bs *ButtonSystem) Update() {
	mx, my := ebiten.CursorPosition()
	justPressed := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)

	for _, id := range ecs.GetEntitiesWith1[*components.ButtonComponent](bs.EntityManager) {
		btn, ok := ecs.GetComponent[*components.ButtonComponent](bs.EntityManager, id)
		if !ok {
			continue
		}

		fx, fy := float64(mx), float64(my)
		btn.Hovered = fx >= btn.X && fx < btn.X+btn.Width &&
			fy >= btn.Y && fy < btn.Y+btn.Height
		btn.Pressed = btn.Hovered && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)

		if btn.Hovered && justPressed && btn.OnClick != nil {
			btn.OnClick()
		}
	}
}

// Draw 绘制所有按钮
func (bs *ButtonSystem) Draw(screen *ebiten.Image) {
	for _, id := range ecs.GetEntitiesWith1[*components.ButtonComponent](bs.EntityManager) {
		btn, ok := ecs.GetComponent[*components.ButtonComponent](bs.EntityManager, id)
		if !ok {
			continue
		}

		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(btn.Width, btn.Height)
		op.GeoM.Translate(btn.X, btn.Y)

		switch {
		case btn.Pressed:
			op.ColorScale.Scale(0.18, 0.35, 0.55, 1)
		case btn.Hovered:
			op.ColorScale.Scale(0.25, 0.5, 0.8, 1)
		default:
			op.ColorScale.Scale(0.15, 0.3, 0.5, 1)
		}
		screen.DrawImage(bs.fill, op)

		// 文字粗略居中（调试字体宽约 6px/字符）
		tx := int(btn.X + btn.Width/2 - float64(len(btn.Text))*3)
		ty := int(btn.Y + btn.Height/2 - 8)
		ebitenutil.DebugPrintAt(screen, btn.Text, tx, ty)
	}
}
