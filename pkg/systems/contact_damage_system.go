package systems

import (
	"sort"

	"github.com/decker502/wavefront/pkg/components"
	"github.com/decker502/wavefront/pkg/ecs"
)

// ContactRepeatInterval 持续接触时重复造成接触伤害的间隔（秒）
const ContactRepeatInterval = 1.0

// ContactDamageSystem 敌人和敌方子弹接触玩家时造成伤害
//
// 接触开始时立即结算一次；一次性命中框（子弹）随后被销毁，
// 持续接触的敌人每隔 ContactRepeatInterval 秒再结算一次。
type ContactDamageSystem struct {
	entityManager *ecs.EntityManager
	frame         *Frame

	// touching 正在接触玩家的实体及距下次结算的剩余时间
	touching map[ecs.EntityID]float64
}

// NewContactDamageSystem 创建接触伤害系统
func NewContactDamageSystem(em *ecs.EntityManager, frame *Frame) *ContactDamageSystem {
	return &ContactDamageSystem{
		entityManager: em,
		frame:         frame,
		touching:      make(map[ecs.EntityID]float64),
	}
}

// Update 处理接触事件和持续接触
func (s *ContactDamageSystem) Update(deltaTime float64) {
	playerID, ok := findPlayer(s.entityManager)
	if !ok {
		return
	}

	started := make(map[ecs.EntityID]bool)
	for _, ev := range s.frame.Collisions {
		_, otherID, ok := matchPair(ev, func(id ecs.EntityID) bool { return id == playerID })
		if !ok {
			continue
		}

		if ev.Phase == CollisionStopped {
			delete(s.touching, otherID)
			continue
		}
		if !s.entityManager.IsAlive(otherID) {
			continue
		}
		hitbox, ok := ecs.GetComponent[*components.HitboxComponent](s.entityManager, otherID)
		if !ok {
			continue
		}

		s.frame.RequestHealthChange(playerID, -hitbox.Damage)
		if hitbox.Once {
			s.entityManager.DestroyEntity(otherID)
			continue
		}
		s.touching[otherID] = ContactRepeatInterval
		started[otherID] = true
	}

	// 按ID顺序结算，保证同一种子的模拟结果一致
	ids := make([]ecs.EntityID, 0, len(s.touching))
	for id := range s.touching {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	for _, id := range ids {
		remaining := s.touching[id]
		if !s.entityManager.IsAlive(id) {
			delete(s.touching, id)
			continue
		}
		if started[id] {
			continue
		}
		remaining -= deltaTime
		if remaining > 0 {
			s.touching[id] = remaining
			continue
		}
		if hitbox, ok := ecs.GetComponent[*components.HitboxComponent](s.entityManager, id); ok {
			s.frame.RequestHealthChange(playerID, -hitbox.Damage)
		}
		s.touching[id] = ContactRepeatInterval
	}
}
