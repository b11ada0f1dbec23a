package systems

import (
	"math"

	"github.com/decker502/wavefront/pkg/components"
	"github.com/decker502/wavefront/pkg/config"
	"github.com/decker502/wavefront/pkg/ecs"
	"github.com/decker502/wavefront/pkg/interference"
	"github.com/decker502/wavefront/pkg/types"
)

// PositiveInterferenceSystem 正干涉体积命中敌人：伤害、击退和受击保护
//
// 受击保护窗口内只跳过伤害，击退每次都生效。
// 免疫中的敌人不受影响。零方向不产生击退。
type PositiveInterferenceSystem struct {
	entityManager *ecs.EntityManager
	tuning        config.ResolverTuning
	frame         *Frame

	hits       int
	knockbacks int
}

// NewPositiveInterferenceSystem 创建正干涉解析系统
func NewPositiveInterferenceSystem(em *ecs.EntityManager, tuning config.ResolverTuning, frame *Frame) *PositiveInterferenceSystem {
	return &PositiveInterferenceSystem{
		entityManager: em,
		tuning:        tuning,
		frame:         frame,
	}
}

// Update 处理本帧的接触开始事件
func (s *PositiveInterferenceSystem) Update(deltaTime float64) {
	for _, ev := range s.frame.Collisions {
		if ev.Phase != CollisionStarted {
			continue
		}
		volumeID, enemyID, ok := matchPair(ev, s.isPositiveVolume)
		if !ok || !isEnemy(s.entityManager, enemyID) || isSuppressed(s.entityManager, enemyID) {
			continue
		}

		volume, _ := ecs.GetComponent[*components.InterferenceVolumeComponent](s.entityManager, volumeID)
		s.apply(enemyID, volume)
	}
}

func (s *PositiveInterferenceSystem) apply(enemyID ecs.EntityID, volume *components.InterferenceVolumeComponent) {
	grace, ok := ecs.GetComponent[*components.GracePeriodComponent](s.entityManager, enemyID)
	if !ok {
		grace = &components.GracePeriodComponent{}
		s.entityManager.AddComponent(enemyID, grace)
	}
	if grace.Remaining <= 0 {
		s.frame.RequestHealthChange(enemyID, -s.tuning.PositiveDamage*volume.Strength)
		grace.Remaining = s.tuning.GracePeriod
		s.hits++
	}

	direction := interference.SafeNormalize(volume.Direction)
	if interference.IsZero(direction) {
		return
	}
	vel, ok := ecs.GetComponent[*components.VelocityComponent](s.entityManager, enemyID)
	if !ok {
		return
	}
	vel.Vector = vel.Vector.Add(direction.Mult(s.tuning.Knockback * volume.Strength))
	if hitstun, ok := ecs.GetComponent[*components.HitstunComponent](s.entityManager, enemyID); ok {
		hitstun.Remaining = math.Max(hitstun.Remaining, s.tuning.Hitstun)
	}
	s.knockbacks++
}

func (s *PositiveInterferenceSystem) isPositiveVolume(id ecs.EntityID) bool {
	return isVolumeOfKind(s.entityManager, id, types.InterferencePositive)
}

// Hits 返回累计造成伤害的命中次数
func (s *PositiveInterferenceSystem) Hits() int {
	return s.hits
}

// Knockbacks 返回累计击退次数
func (s *PositiveInterferenceSystem) Knockbacks() int {
	return s.knockbacks
}
