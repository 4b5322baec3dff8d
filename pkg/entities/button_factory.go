package entities

import (
	"github.com/gonewx/logomorph/pkg/components"
	"github.com/gonewx/logomorph/pkg/ecs"
)

// NewButtonEntity 创建按钮实体
// 返回实体ID和按钮组件（调用方可以后续修改 Text）
func NewButtonEntity(manager *ecs.EntityManager, x, y, width, height float64,
	text string, onClick func()) (ecs.EntityID, *components.ButtonComponent) {

	btn := &components.ButtonComponent{
		X: x, Y: y, Width: width, Height: height,
		Text:    text,
		OnClick: onClick,
	}

	id := manager.CreateEntity()
	manager.AddComponent(id, btn)
	return id, btn
}
