package entities

import (
	"fmt"

	"github.com/decker502/wavefront/pkg/components"
	"github.com/decker502/wavefront/pkg/config"
	"github.com/decker502/wavefront/pkg/ecs"
	"github.com/decker502/wavefront/pkg/types"
	"github.com/jakecoffman/cp"
)

// projectileMass 敌方子弹的质量，足够小使其不会推动敌人
const projectileMass = 0.1

// NewEnemy 创建敌人实体
//
// 三种原型共享同一组组件，远程原型额外挂载 ShooterComponent。
//
// 参数:
//   - em: 实体管理器
//   - cfg: 数值配置
//   - enemyType: 敌人原型
//   - position: 出生点（世界坐标）
//
// 返回:
//   - ecs.EntityID: 创建的敌人实体ID，失败时返回 0
//   - error: 参数无效时返回错误
func NewEnemy(em *ecs.EntityManager, cfg *config.TuningConfig, enemyType types.EnemyType, position cp.Vector) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if cfg == nil {
		return 0, fmt.Errorf("tuning config cannot be nil")
	}
	switch enemyType {
	case types.EnemyNormie, types.EnemyLayer, types.EnemyRanger:
	default:
		return 0, fmt.Errorf("unknown enemy type: %d", enemyType)
	}

	tuning := cfg.Enemies.Get(enemyType)

	entityID := em.CreateEntity()

	em.AddComponent(entityID, &components.PositionComponent{Vector: position})
	em.AddComponent(entityID, &components.VelocityComponent{})
	em.AddComponent(entityID, &components.EnemyComponent{
		Type:  enemyType,
		Speed: tuning.Speed,
	})
	em.AddComponent(entityID, &components.HealthComponent{
		Current: tuning.Health,
		Max:     tuning.Health,
	})
	em.AddComponent(entityID, &components.HitstunComponent{})
	em.AddComponent(entityID, &components.GracePeriodComponent{})
	em.AddComponent(entityID, &components.HitboxComponent{
		Damage: tuning.ContactDamage,
		Once:   false,
	})
	em.AddComponent(entityID, &components.PhysicsBodyComponent{
		Role:   components.BodyRoleEnemy,
		Radius: tuning.Radius,
		Mass:   tuning.Mass,
	})

	if tuning.IsShooter() {
		em.AddComponent(entityID, &components.ShooterComponent{
			Cooldown:           tuning.Shooter.Cooldown,
			Remaining:          tuning.Shooter.Cooldown,
			ProjectileSpeed:    tuning.Shooter.ProjectileSpeed,
			ProjectileLifespan: tuning.Shooter.ProjectileLifespan,
			ProjectileDamage:   tuning.Shooter.ProjectileDamage,
			ProjectileSize:     tuning.Shooter.ProjectileSize,
		})
	}

	return entityID, nil
}

// NewEnemyProjectile 创建敌方子弹实体
// 子弹命中玩家一次后销毁，寿命结束时由 LifetimeSystem 清理
func NewEnemyProjectile(em *ecs.EntityManager, owner ecs.EntityID, position, velocity cp.Vector, shooter components.ShooterComponent) ecs.EntityID {
	entityID := em.CreateEntity()

	em.AddComponent(entityID, &components.PositionComponent{Vector: position})
	em.AddComponent(entityID, &components.VelocityComponent{Vector: velocity})
	em.AddComponent(entityID, &components.ProjectileComponent{Owner: owner})
	em.AddComponent(entityID, &components.HitboxComponent{
		Damage: shooter.ProjectileDamage,
		Once:   true,
	})
	em.AddComponent(entityID, &components.LifetimeComponent{
		MaxLifetime: shooter.ProjectileLifespan,
	})
	em.AddComponent(entityID, &components.PhysicsBodyComponent{
		Role:   components.BodyRoleProjectile,
		Radius: shooter.ProjectileSize,
		Mass:   projectileMass,
	})

	return entityID
}
