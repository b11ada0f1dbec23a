package systems

import (
	"github.com/decker502/wavefront/pkg/components"
	"github.com/decker502/wavefront/pkg/config"
	"github.com/decker502/wavefront/pkg/ecs"
	"github.com/decker502/wavefront/pkg/interference"
	"github.com/decker502/wavefront/pkg/types"
)

// AreaDamageSystem 波前带的持续效果
//
// 正波：波前带内未免疫的敌人每秒受到 AreaDamagePerSecond 伤害。
// 负波：波前带内的敌方子弹被持续向外推动。
// 带宽为波当前的描边宽度，|distance - radius| < width。
type AreaDamageSystem struct {
	entityManager *ecs.EntityManager
	tuning        config.ResolverTuning
	frame         *Frame
}

// NewAreaDamageSystem 创建波前带效果系统
func NewAreaDamageSystem(em *ecs.EntityManager, tuning config.ResolverTuning, frame *Frame) *AreaDamageSystem {
	return &AreaDamageSystem{
		entityManager: em,
		tuning:        tuning,
		frame:         frame,
	}
}

// Update 对每列波应用持续效果
func (s *AreaDamageSystem) Update(deltaTime float64) {
	waves := ecs.GetEntitiesWith3[*components.WaveComponent, *components.PositionComponent, *components.StrokeComponent](s.entityManager)
	if len(waves) == 0 {
		return
	}
	enemies := ecs.GetEntitiesWith2[*components.EnemyComponent, *components.PositionComponent](s.entityManager)
	projectiles := ecs.GetEntitiesWith3[*components.ProjectileComponent, *components.PositionComponent, *components.VelocityComponent](s.entityManager)

	for _, waveID := range waves {
		if !s.entityManager.IsAlive(waveID) {
			continue
		}
		wave, _ := ecs.GetComponent[*components.WaveComponent](s.entityManager, waveID)
		center, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, waveID)
		stroke, _ := ecs.GetComponent[*components.StrokeComponent](s.entityManager, waveID)

		switch wave.Polarity {
		case types.PolarityPositive:
			s.damageEnemies(enemies, center, wave.Radius, stroke.Width, deltaTime)
		case types.PolarityNegative:
			s.pushProjectiles(projectiles, center, wave.Radius, stroke.Width, deltaTime)
		}
	}
}

func (s *AreaDamageSystem) damageEnemies(enemies []ecs.EntityID, center *components.PositionComponent, radius, band, deltaTime float64) {
	for _, id := range enemies {
		if !s.entityManager.IsAlive(id) || isSuppressed(s.entityManager, id) {
			continue
		}
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		if interference.InBand(pos.Distance(center.Vector), radius, band) {
			s.frame.RequestHealthChange(id, -s.tuning.AreaDamagePerSecond*deltaTime)
		}
	}
}

func (s *AreaDamageSystem) pushProjectiles(projectiles []ecs.EntityID, center *components.PositionComponent, radius, band, deltaTime float64) {
	for _, id := range projectiles {
		if !s.entityManager.IsAlive(id) || isSuppressed(s.entityManager, id) {
			continue
		}
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		if !interference.InBand(pos.Distance(center.Vector), radius, band) {
			continue
		}
		outward := interference.SafeNormalize(pos.Sub(center.Vector))
		vel, _ := ecs.GetComponent[*components.VelocityComponent](s.entityManager, id)
		vel.Vector = vel.Vector.Add(outward.Mult(s.tuning.AreaPushPerSecond * deltaTime))
	}
}
