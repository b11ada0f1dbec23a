package systems

import (
	"github.com/decker502/wavefront/pkg/components"
	"github.com/decker502/wavefront/pkg/ecs"
	"github.com/decker502/wavefront/pkg/types"
)

// contactPair 相消体积与敌人的一次接触
type contactPair struct {
	volume ecs.EntityID
	enemy  ecs.EntityID
}

// DestructiveInterferenceSystem 维护敌人在相消体积内的免疫状态
//
// 状态机：Normal → (进入相消体积) → Immune → (离开或安全扫描) → Normal
//
// 必须在其他效果解析系统之前运行，使本帧新增或解除的免疫对伤害逻辑立即可见。
// 接触以 (体积, 敌人) 对记录；每帧末尾的安全扫描丢弃已失效的接触，
// 并让 NoEffectComponent 与剩余接触保持一致，即使分离事件丢失也不会残留免疫。
type DestructiveInterferenceSystem struct {
	entityManager *ecs.EntityManager
	frame         *Frame

	contacts map[contactPair]struct{}
}

// NewDestructiveInterferenceSystem 创建相消干涉解析系统
func NewDestructiveInterferenceSystem(em *ecs.EntityManager, frame *Frame) *DestructiveInterferenceSystem {
	return &DestructiveInterferenceSystem{
		entityManager: em,
		frame:         frame,
		contacts:      make(map[contactPair]struct{}),
	}
}

// Update 处理本帧接触事件并执行安全扫描
func (s *DestructiveInterferenceSystem) Update(deltaTime float64) {
	for _, ev := range s.frame.Collisions {
		switch ev.Phase {
		case CollisionStarted:
			volume, enemy, ok := matchPair(ev, s.isDestructiveVolume)
			if !ok || !isEnemy(s.entityManager, enemy) {
				continue
			}
			s.contacts[contactPair{volume: volume, enemy: enemy}] = struct{}{}
			if !ecs.HasComponent[*components.NoEffectComponent](s.entityManager, enemy) {
				s.entityManager.AddComponent(enemy, &components.NoEffectComponent{})
			}
		case CollisionStopped:
			// 体积可能已被移除，无法再识别类型，按两种顺序直接删除
			delete(s.contacts, contactPair{volume: ev.A, enemy: ev.B})
			delete(s.contacts, contactPair{volume: ev.B, enemy: ev.A})
		}
	}

	s.sweep()
}

// sweep 丢弃失效接触，并让免疫标记与剩余接触一致
func (s *DestructiveInterferenceSystem) sweep() {
	contained := make(map[ecs.EntityID]bool)
	for pair := range s.contacts {
		if !s.entityManager.IsAlive(pair.volume) || !s.entityManager.IsAlive(pair.enemy) {
			delete(s.contacts, pair)
			continue
		}
		contained[pair.enemy] = true
	}

	for _, id := range ecs.GetEntitiesWith1[*components.NoEffectComponent](s.entityManager) {
		if !contained[id] {
			ecs.RemoveComponent[*components.NoEffectComponent](s.entityManager, id)
		}
	}
	for id := range contained {
		if !ecs.HasComponent[*components.NoEffectComponent](s.entityManager, id) {
			s.entityManager.AddComponent(id, &components.NoEffectComponent{})
		}
	}
}

func (s *DestructiveInterferenceSystem) isDestructiveVolume(id ecs.EntityID) bool {
	return isVolumeOfKind(s.entityManager, id, types.InterferenceDestructive)
}

// Contacts 返回当前记录的接触数量
func (s *DestructiveInterferenceSystem) Contacts() int {
	return len(s.contacts)
}

// isVolumeOfKind 判断实体是否为指定类型的交互体积
func isVolumeOfKind(em *ecs.EntityManager, id ecs.EntityID, kind types.InterferenceKind) bool {
	volume, ok := ecs.GetComponent[*components.InterferenceVolumeComponent](em, id)
	return ok && volume.Kind == kind
}

// isEnemy 判断实体是否为存活的敌人
func isEnemy(em *ecs.EntityManager, id ecs.EntityID) bool {
	return em.IsAlive(id) && ecs.HasComponent[*components.EnemyComponent](em, id)
}

// isProjectile 判断实体是否为存活的敌方子弹
func isProjectile(em *ecs.EntityManager, id ecs.EntityID) bool {
	return em.IsAlive(id) && ecs.HasComponent[*components.ProjectileComponent](em, id)
}

// isSuppressed 判断实体是否处于免疫状态
func isSuppressed(em *ecs.EntityManager, id ecs.EntityID) bool {
	return ecs.HasComponent[*components.NoEffectComponent](em, id)
}
