package entities

import (
	"github.com/decker502/wavefront/pkg/components"
	"github.com/decker502/wavefront/pkg/config"
	"github.com/decker502/wavefront/pkg/ecs"
	"github.com/jakecoffman/cp"
)

// NewPlayer 创建玩家实体
// 玩家在物理空间中是运动学传感器，只用于接收敌人和子弹的接触事件
func NewPlayer(em *ecs.EntityManager, tuning config.PlayerTuning, position cp.Vector) ecs.EntityID {
	entityID := em.CreateEntity()

	em.AddComponent(entityID, &components.PositionComponent{Vector: position})
	em.AddComponent(entityID, &components.VelocityComponent{})
	em.AddComponent(entityID, &components.PlayerComponent{Speed: tuning.Speed})
	em.AddComponent(entityID, &components.HealthComponent{
		Current: tuning.Health,
		Max:     tuning.Health,
	})
	em.AddComponent(entityID, &components.PhysicsBodyComponent{
		Role:   components.BodyRolePlayer,
		Radius: tuning.Radius,
	})

	return entityID
}
