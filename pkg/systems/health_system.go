package systems

import (
	"log"

	"github.com/decker502/wavefront/pkg/components"
	"github.com/decker502/wavefront/pkg/ecs"
	"github.com/decker502/wavefront/pkg/game"
)

// HealthSystem 结算本帧的所有生命值变化请求
//
// 治疗不超过上限；生命值降到 0 及以下的实体被销毁，之后的请求被忽略。
// 玩家死亡时结束本局。
type HealthSystem struct {
	entityManager *ecs.EntityManager
	frame         *Frame
	state         *game.GameState

	defeated int
}

// NewHealthSystem 创建生命值系统
func NewHealthSystem(em *ecs.EntityManager, frame *Frame, state *game.GameState) *HealthSystem {
	return &HealthSystem{
		entityManager: em,
		frame:         frame,
		state:         state,
	}
}

// Update 按请求顺序结算
func (s *HealthSystem) Update(deltaTime float64) {
	for _, change := range s.frame.HealthChanges {
		if !s.entityManager.IsAlive(change.Target) {
			continue
		}
		health, ok := ecs.GetComponent[*components.HealthComponent](s.entityManager, change.Target)
		if !ok {
			continue
		}

		health.Current += change.Amount
		if health.Current > health.Max {
			health.Current = health.Max
		}
		if health.Current > 0 {
			continue
		}

		s.entityManager.DestroyEntity(change.Target)

		switch {
		case ecs.HasComponent[*components.PlayerComponent](s.entityManager, change.Target):
			log.Printf("[HealthSystem] Player %d died", change.Target)
			if s.state != nil {
				s.state.EndGame()
			}
		case ecs.HasComponent[*components.EnemyComponent](s.entityManager, change.Target):
			s.defeated++
		}
	}
	s.frame.HealthChanges = s.frame.HealthChanges[:0]
}

// Defeated 返回累计击败的敌人数量
func (s *HealthSystem) Defeated() int {
	return s.defeated
}
