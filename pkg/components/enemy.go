package components

import (
	"github.com/decker502/wavefront/pkg/ecs"
	"github.com/decker502/wavefront/pkg/types"
)

// EnemyComponent 标识敌人实体
type EnemyComponent struct {
	Type  types.EnemyType // 敌人类型
	Speed float64         // 追踪速度（像素/秒）
}

// ShooterComponent 远程敌人的射击参数
// 冷却由 StatusTimerSystem 递减，ShooterSystem 在冷却结束时开火并重置
type ShooterComponent struct {
	Cooldown           float64 // 射击间隔（秒）
	Remaining          float64 // 距下次射击的剩余时间（秒）
	ProjectileSpeed    float64 // 子弹速度（像素/秒）
	ProjectileLifespan float64 // 子弹寿命（秒）
	ProjectileDamage   float64 // 子弹伤害
	ProjectileSize     float64 // 子弹半径（像素）
}

// HitboxComponent 接触伤害
// 挂在敌人和敌方子弹上；Once 为 true 时命中玩家后实体被销毁
type HitboxComponent struct {
	Damage float64
	Once   bool
}

// ProjectileComponent 标识敌方子弹
type ProjectileComponent struct {
	Owner ecs.EntityID // 发射者（可能已被销毁）
}
