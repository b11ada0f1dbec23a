package systems

import (
	"testing"

	"github.com/decker502/wavefront/pkg/components"
	"github.com/decker502/wavefront/pkg/config"
	"github.com/decker502/wavefront/pkg/ecs"
	"github.com/decker502/wavefront/pkg/entities"
	"github.com/decker502/wavefront/pkg/types"
	"github.com/jakecoffman/cp"
)

const testDT = 1.0 / 60.0

// newTestEnemy 创建一个普通敌人
func newTestEnemy(t *testing.T, em *ecs.EntityManager, pos cp.Vector) ecs.EntityID {
	t.Helper()
	id, err := entities.NewEnemy(em, testConfig(), types.EnemyNormie, pos)
	if err != nil {
		t.Fatalf("failed to create enemy: %v", err)
	}
	return id
}

// newTestVolume 直接构造一个交互体积（不经过物理系统）
func newTestVolume(em *ecs.EntityManager, kind types.InterferenceKind, dir cp.Vector, strength float64) ecs.EntityID {
	id := em.CreateEntity()
	em.AddComponent(id, &components.PositionComponent{})
	em.AddComponent(id, &components.InterferenceVolumeComponent{
		Kind:      kind,
		Direction: dir,
		Strength:  strength,
		Radius:    10,
	})
	return id
}

func mustHealth(t *testing.T, em *ecs.EntityManager, id ecs.EntityID) *components.HealthComponent {
	t.Helper()
	health, ok := ecs.GetComponent[*components.HealthComponent](em, id)
	if !ok {
		t.Fatalf("entity %d has no HealthComponent", id)
	}
	return health
}

func testConfig() *config.TuningConfig {
	return config.DefaultTuningConfig()
}

func newEnemyForProperty(em *ecs.EntityManager) (ecs.EntityID, error) {
	return entities.NewEnemy(em, testConfig(), types.EnemyNormie, cp.Vector{})
}
