package entities

import (
	"github.com/decker502/wavefront/pkg/components"
	"github.com/decker502/wavefront/pkg/config"
	"github.com/decker502/wavefront/pkg/ecs"
	"github.com/decker502/wavefront/pkg/interference"
)

// NewInterferenceVolume 根据干涉事件创建交互体积实体
//
// 体积中心沿传播方向前移 LeadOffset；碰撞半径和描边宽度都随 (1-strength) 变化：
// 刚形成的干涉体积小而集中，衰减后的干涉体积大而弱。
// 退化方向（零、NaN、Inf）在这里被清洗为零向量，此时不前移。
//
// 参数:
//   - em: 实体管理器
//   - event: 本帧的干涉事件
//   - tuning: 体积参数
//
// 返回:
//   - ecs.EntityID: 体积实体ID
func NewInterferenceVolume(em *ecs.EntityManager, event interference.Event, tuning config.VolumeTuning) ecs.EntityID {
	direction := interference.SafeNormalize(event.Direction)
	strength := event.Strength
	position := event.Position.Add(direction.Mult(tuning.LeadOffset))

	radius := interference.VolumeRadius(tuning.BaseRadiusFor(event.Kind), tuning.MinRadius, strength)

	entityID := em.CreateEntity()

	em.AddComponent(entityID, &components.PositionComponent{Vector: position})
	em.AddComponent(entityID, &components.InterferenceVolumeComponent{
		Kind:        event.Kind,
		Direction:   direction,
		Strength:    strength,
		Radius:      radius,
		StrokeWidth: interference.VolumeStrokeWidth(tuning.MinStrokeWidth, tuning.MaxStrokeWidth, strength),
	})
	em.AddComponent(entityID, &components.LifetimeComponent{
		MaxLifetime: tuning.Lifespan,
	})
	em.AddComponent(entityID, &components.PhysicsBodyComponent{
		Role:   components.BodyRoleVolume,
		Radius: radius,
	})

	return entityID
}
