package ecs

import (
	"reflect"
	"testing"
)

// 测试组件类型定义
type testSlotComponent struct {
	Position int
}

type testOffsetComponent struct {
	Offset float64
}

func TestCreateEntity(t *testing.T) {
	em := NewEntityManager()
	id1 := em.CreateEntity()
	id2 := em.CreateEntity()

	if id1 == id2 {
		t.Error("Entity IDs should be unique")
	}

	// ID 从 1 开始，0 保留为 InvalidEntity
	if id1 != 1 {
		t.Errorf("First entity ID should be 1, got %d", id1)
	}
	if id1 == InvalidEntity || id2 == InvalidEntity {
		t.Error("Created entity must not equal InvalidEntity")
	}
	if !em.Exists(id1) || em.Exists(InvalidEntity) {
		t.Error("Exists reported wrong result")
	}
}

func TestAddAndGetComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	em.AddComponent(id, &testSlotComponent{Position: 5})

	comp, found := em.GetComponent(id, reflect.TypeOf(&testSlotComponent{}))
	if !found {
		t.Fatal("Component should be found")
	}
	if comp.(*testSlotComponent).Position != 5 {
		t.Errorf("Expected position 5, got %d", comp.(*testSlotComponent).Position)
	}
}

func TestGenericGetComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	em.AddComponent(id, &testOffsetComponent{Offset: 12.5})

	off, ok := GetComponent[*testOffsetComponent](em, id)
	if !ok {
		t.Fatal("GetComponent[*testOffsetComponent] should succeed")
	}
	// 返回的是同一个指针，修改对后续查询可见
	off.Offset = 3
	again, _ := GetComponent[*testOffsetComponent](em, id)
	if again.Offset != 3 {
		t.Errorf("Expected shared pointer, got offset %v", again.Offset)
	}

	if _, ok := GetComponent[*testSlotComponent](em, id); ok {
		t.Error("Missing component type should not be found")
	}
	if _, ok := GetComponent[*testOffsetComponent](em, InvalidEntity); ok {
		t.Error("Invalid entity should not have components")
	}
}

func TestHasAndRemoveComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	if HasComponent[*testSlotComponent](em, id) {
		t.Error("Should not have component before adding")
	}

	em.AddComponent(id, &testSlotComponent{})
	if !HasComponent[*testSlotComponent](em, id) {
		t.Error("Should have component after adding")
	}

	RemoveComponent[*testSlotComponent](em, id)
	if em.HasComponent(id, reflect.TypeOf(&testSlotComponent{})) {
		t.Error("Component should be gone after RemoveComponent")
	}
}

func TestDestroyEntity(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	em.AddComponent(id, &testSlotComponent{})

	em.DestroyEntity(id)

	// 清理前实体仍存在
	if !em.Exists(id) {
		t.Error("Entity should still exist before cleanup")
	}

	em.RemoveMarkedEntities()
	if em.Exists(id) || HasComponent[*testSlotComponent](em, id) {
		t.Error("Entity should be removed after cleanup")
	}
}

func TestGetEntitiesWithIsOrdered(t *testing.T) {
	em := NewEntityManager()

	var ids []EntityID
	for i := 0; i < 20; i++ {
		id := em.CreateEntity()
		em.AddComponent(id, &testSlotComponent{Position: i})
		if i%2 == 0 {
			em.AddComponent(id, &testOffsetComponent{})
		}
		ids = append(ids, id)
	}

	all := GetEntitiesWith1[*testSlotComponent](em)
	if len(all) != 20 {
		t.Fatalf("Expected 20 entities, got %d", len(all))
	}
	for i, id := range all {
		if id != ids[i] {
			t.Fatalf("Query result not in creation order at %d: got %d, want %d", i, id, ids[i])
		}
	}

	both := GetEntitiesWith2[*testSlotComponent, *testOffsetComponent](em)
	if len(both) != 10 {
		t.Errorf("Expected 10 entities with both components, got %d", len(both))
	}
	for i := 1; i < len(both); i++ {
		if both[i-1] >= both[i] {
			t.Errorf("Query result not ascending: %v", both)
			break
		}
	}
}
