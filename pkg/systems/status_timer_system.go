package systems

import (
	"math"

	"github.com/decker502/wavefront/pkg/components"
	"github.com/decker502/wavefront/pkg/ecs"
)

// StatusTimerSystem 递减所有状态倒计时：受击保护、硬直和射击冷却
//
// 倒计时是组件上的字段，每帧只递减一次，没有外部取消接口。
type StatusTimerSystem struct {
	entityManager *ecs.EntityManager
}

// NewStatusTimerSystem 创建状态计时系统
func NewStatusTimerSystem(em *ecs.EntityManager) *StatusTimerSystem {
	return &StatusTimerSystem{entityManager: em}
}

// Update 递减倒计时，最小到 0
func (s *StatusTimerSystem) Update(deltaTime float64) {
	for _, id := range ecs.GetEntitiesWith1[*components.GracePeriodComponent](s.entityManager) {
		grace, _ := ecs.GetComponent[*components.GracePeriodComponent](s.entityManager, id)
		grace.Remaining = countdown(grace.Remaining, deltaTime)
	}

	for _, id := range ecs.GetEntitiesWith1[*components.HitstunComponent](s.entityManager) {
		hitstun, _ := ecs.GetComponent[*components.HitstunComponent](s.entityManager, id)
		hitstun.Remaining = countdown(hitstun.Remaining, deltaTime)
	}

	for _, id := range ecs.GetEntitiesWith1[*components.ShooterComponent](s.entityManager) {
		shooter, _ := ecs.GetComponent[*components.ShooterComponent](s.entityManager, id)
		shooter.Remaining = countdown(shooter.Remaining, deltaTime)
	}
}

func countdown(remaining, deltaTime float64) float64 {
	return math.Max(0, remaining-deltaTime)
}
