package ecs

import (
	"reflect"
	"testing"
)

// 测试组件类型定义
type testPositionComponent struct {
	X, Y float64
}

type testVelocityComponent struct {
	VX, VY float64
}

func TestCreateEntity(t *testing.T) {
	em := NewEntityManager()
	id1 := em.CreateEntity()
	id2 := em.CreateEntity()

	// 测试实体ID唯一性
	if id1 == id2 {
		t.Error("Entity IDs should be unique")
	}

	// 测试ID从1开始
	if id1 != 1 {
		t.Errorf("First entity ID should be 1, got %d", id1)
	}
	if id2 != 2 {
		t.Errorf("Second entity ID should be 2, got %d", id2)
	}
}

func TestAddAndGetComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	pos := &testPositionComponent{X: 100, Y: 200}
	em.AddComponent(id, pos)

	comp, found := em.GetComponentByType(id, reflect.TypeOf(&testPositionComponent{}))
	if !found {
		t.Fatal("Component should be found")
	}
	if got := comp.(*testPositionComponent); got.X != 100 || got.Y != 200 {
		t.Errorf("Component data mismatch: %+v", got)
	}
}

func TestGetComponent_Generic(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	em.AddComponent(id, &testPositionComponent{X: 7})

	pos, ok := GetComponent[*testPositionComponent](em, id)
	if !ok {
		t.Fatal("generic GetComponent should find the component")
	}
	if pos.X != 7 {
		t.Errorf("pos.X = %v, want 7", pos.X)
	}

	// 未注册的类型
	if _, ok := GetComponent[*testVelocityComponent](em, id); ok {
		t.Error("generic GetComponent found a component that was never added")
	}
}

func TestGetEntitiesWith2(t *testing.T) {
	em := NewEntityManager()

	both := em.CreateEntity()
	em.AddComponent(both, &testPositionComponent{})
	em.AddComponent(both, &testVelocityComponent{})

	posOnly := em.CreateEntity()
	em.AddComponent(posOnly, &testPositionComponent{})

	got := GetEntitiesWith2[*testPositionComponent, *testVelocityComponent](em)
	if len(got) != 1 || got[0] != both {
		t.Errorf("GetEntitiesWith2 = %v, want [%d]", got, both)
	}

	if all := GetEntitiesWith1[*testPositionComponent](em); len(all) != 2 {
		t.Errorf("GetEntitiesWith1 found %d entities, want 2", len(all))
	}
}

func TestRemoveComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	em.AddComponent(id, &testPositionComponent{})

	em.RemoveComponent(id, reflect.TypeOf(&testPositionComponent{}))
	if em.HasComponent(id, reflect.TypeOf(&testPositionComponent{})) {
		t.Error("Component should be removed")
	}
}

func TestDeferredDestroy(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	em.AddComponent(id, &testPositionComponent{})

	// 标记删除后组件仍可访问，直到 RemoveMarkedEntities 被调用
	em.DestroyEntity(id)
	if !em.HasComponent(id, reflect.TypeOf(&testPositionComponent{})) {
		t.Error("Component should survive until RemoveMarkedEntities")
	}

	em.RemoveMarkedEntities()
	if em.HasComponent(id, reflect.TypeOf(&testPositionComponent{})) {
		t.Error("Component should be gone after RemoveMarkedEntities")
	}
}
