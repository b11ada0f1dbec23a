package systems

import (
	"github.com/decker502/wavefront/pkg/components"
	"github.com/decker502/wavefront/pkg/config"
	"github.com/decker502/wavefront/pkg/ecs"
	"github.com/decker502/wavefront/pkg/entities"
)

// DeferredWaveSystem 倒计时结束时把延迟波转化为真正的波
// 一次性触发，不追补：无论 dt 多大，每个延迟波只生成一列波
type DeferredWaveSystem struct {
	entityManager *ecs.EntityManager
	tuning        config.WaveTuning
}

// NewDeferredWaveSystem 创建延迟波系统
func NewDeferredWaveSystem(em *ecs.EntityManager, tuning config.WaveTuning) *DeferredWaveSystem {
	return &DeferredWaveSystem{
		entityManager: em,
		tuning:        tuning,
	}
}

// Update 递减倒计时并生成到期的波
func (s *DeferredWaveSystem) Update(deltaTime float64) {
	ids := ecs.GetEntitiesWith2[*components.DeferredWaveComponent, *components.PositionComponent](s.entityManager)
	for _, id := range ids {
		if !s.entityManager.IsAlive(id) {
			continue
		}
		deferred, _ := ecs.GetComponent[*components.DeferredWaveComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)

		deferred.Remaining -= deltaTime
		if deferred.Remaining > 0 {
			continue
		}

		entities.NewWave(s.entityManager, pos.Vector, deferred.Wave, s.tuning)
		s.entityManager.DestroyEntity(id)
	}
}
