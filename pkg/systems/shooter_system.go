package systems

import (
	"github.com/decker502/wavefront/pkg/components"
	"github.com/decker502/wavefront/pkg/ecs"
	"github.com/decker502/wavefront/pkg/entities"
	"github.com/decker502/wavefront/pkg/interference"
)

// ShooterSystem 远程敌人在冷却结束时向玩家开火
// 冷却由 StatusTimerSystem 递减
type ShooterSystem struct {
	entityManager *ecs.EntityManager

	fired int
}

// NewShooterSystem 创建射击系统
func NewShooterSystem(em *ecs.EntityManager) *ShooterSystem {
	return &ShooterSystem{entityManager: em}
}

// Update 发射子弹
func (s *ShooterSystem) Update(deltaTime float64) {
	playerID, ok := findPlayer(s.entityManager)
	if !ok {
		return
	}
	playerPos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, playerID)

	ids := ecs.GetEntitiesWith2[*components.ShooterComponent, *components.PositionComponent](s.entityManager)
	for _, id := range ids {
		if !s.entityManager.IsAlive(id) {
			continue
		}
		shooter, _ := ecs.GetComponent[*components.ShooterComponent](s.entityManager, id)
		if shooter.Remaining > 0 {
			continue
		}
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)

		direction := interference.SafeNormalize(playerPos.Vector.Sub(pos.Vector))
		if interference.IsZero(direction) {
			continue
		}

		entities.NewEnemyProjectile(s.entityManager, id, pos.Vector, direction.Mult(shooter.ProjectileSpeed), *shooter)
		shooter.Remaining = shooter.Cooldown
		s.fired++
	}
}

// Fired 返回累计发射的子弹数量
func (s *ShooterSystem) Fired() int {
	return s.fired
}
