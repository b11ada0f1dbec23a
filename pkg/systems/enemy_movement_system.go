package systems

import (
	"github.com/decker502/wavefront/pkg/components"
	"github.com/decker502/wavefront/pkg/ecs"
	"github.com/decker502/wavefront/pkg/interference"
)

// EnemyMovementSystem 敌人追踪玩家
// 硬直中的敌人保持击退速度，不改变方向
type EnemyMovementSystem struct {
	entityManager *ecs.EntityManager
}

// NewEnemyMovementSystem 创建敌人移动系统
func NewEnemyMovementSystem(em *ecs.EntityManager) *EnemyMovementSystem {
	return &EnemyMovementSystem{entityManager: em}
}

// Update 设置敌人速度
func (s *EnemyMovementSystem) Update(deltaTime float64) {
	playerID, ok := findPlayer(s.entityManager)
	if !ok {
		return
	}
	playerPos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, playerID)

	ids := ecs.GetEntitiesWith3[*components.EnemyComponent, *components.PositionComponent, *components.VelocityComponent](s.entityManager)
	for _, id := range ids {
		if !s.entityManager.IsAlive(id) {
			continue
		}
		if hitstun, ok := ecs.GetComponent[*components.HitstunComponent](s.entityManager, id); ok && hitstun.Remaining > 0 {
			continue
		}

		enemy, _ := ecs.GetComponent[*components.EnemyComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		vel, _ := ecs.GetComponent[*components.VelocityComponent](s.entityManager, id)

		direction := interference.SafeNormalize(playerPos.Vector.Sub(pos.Vector))
		vel.Vector = direction.Mult(enemy.Speed)
	}
}
