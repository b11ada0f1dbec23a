package systems

import (
	"log"
	"math"

	"github.com/decker502/wavefront/pkg/components"
	"github.com/decker502/wavefront/pkg/config"
	"github.com/decker502/wavefront/pkg/ecs"
	"github.com/decker502/wavefront/pkg/entities"
	"github.com/decker502/wavefront/pkg/interference"
)

// PlayerSystem 把输入转化为玩家速度和波的发射
//
// 每次发射在玩家当前位置生成一列指定极性的波，
// 并在同一位置排入一列反极性的延迟波。
type PlayerSystem struct {
	entityManager *ecs.EntityManager
	input         InputSource
	tuning        config.WaveTuning

	emitted int
}

// NewPlayerSystem 创建玩家系统
// input 为 nil 时玩家不会移动也不会发射
func NewPlayerSystem(em *ecs.EntityManager, input InputSource, tuning config.WaveTuning) *PlayerSystem {
	return &PlayerSystem{
		entityManager: em,
		input:         input,
		tuning:        tuning,
	}
}

// Update 处理输入
func (s *PlayerSystem) Update(deltaTime float64) {
	if s.input == nil {
		return
	}

	playerID, ok := findPlayer(s.entityManager)
	if !ok {
		return
	}

	player, _ := ecs.GetComponent[*components.PlayerComponent](s.entityManager, playerID)
	pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, playerID)
	vel, ok := ecs.GetComponent[*components.VelocityComponent](s.entityManager, playerID)
	if !ok {
		return
	}

	// 玩家不能离开视口
	halfW, halfH := config.ViewportHalfExtents()
	pos.X = math.Max(-halfW, math.Min(halfW, pos.X))
	pos.Y = math.Max(-halfH, math.Min(halfH, pos.Y))

	vel.Vector = interference.SafeNormalize(s.input.MoveDirection()).Mult(player.Speed)

	polarity, fired := s.input.WaveTrigger()
	if !fired {
		return
	}

	entities.NewWave(s.entityManager, pos.Vector, entities.WavePayload(polarity, s.tuning), s.tuning)
	entities.NewDeferredWave(s.entityManager, pos.Vector,
		entities.WavePayload(polarity.Opposite(), s.tuning), s.tuning.DeferredDelay)
	s.emitted++

	log.Printf("[PlayerSystem] Emitted %s wave at (%.1f, %.1f)", polarity, pos.X, pos.Y)
}

// Emitted 返回已发射的波对数量
func (s *PlayerSystem) Emitted() int {
	return s.emitted
}

// findPlayer 返回存活的玩家实体
func findPlayer(em *ecs.EntityManager) (ecs.EntityID, bool) {
	for _, id := range ecs.GetEntitiesWith2[*components.PlayerComponent, *components.PositionComponent](em) {
		if em.IsAlive(id) {
			return id, true
		}
	}
	return 0, false
}
