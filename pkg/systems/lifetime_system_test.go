package systems

import (
	"testing"

	"github.com/decker502/wavefront/pkg/components"
	"github.com/decker502/wavefront/pkg/ecs"
)

func TestLifetimeUpdate(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewLifetimeSystem(em)

	id := em.CreateEntity()
	lifetime := &components.LifetimeComponent{MaxLifetime: 10.0}
	em.AddComponent(id, lifetime)

	// 模拟5秒更新
	system.Update(5.0)

	if lifetime.CurrentLifetime != 5.0 {
		t.Errorf("Expected CurrentLifetime=5.0, got %f", lifetime.CurrentLifetime)
	}
	if lifetime.IsExpired {
		t.Error("Entity should not be expired yet")
	}
}

func TestLifetimeExpiration(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewLifetimeSystem(em)

	id := em.CreateEntity()
	lifetime := &components.LifetimeComponent{MaxLifetime: 0.08}
	em.AddComponent(id, lifetime)

	// 5 帧后到期
	for i := 0; i < 5; i++ {
		system.Update(testDT)
	}

	if !lifetime.IsExpired {
		t.Error("Entity should be expired")
	}

	em.RemoveMarkedEntities()
	if em.Exists(id) {
		t.Error("Expired entity should be removed")
	}
}
