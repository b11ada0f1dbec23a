package systems

import (
	"github.com/decker502/wavefront/pkg/components"
	"github.com/decker502/wavefront/pkg/config"
	"github.com/decker502/wavefront/pkg/ecs"
	"github.com/decker502/wavefront/pkg/interference"
)

// WaveAdvancementSystem 推进所有波的半径
//
// 半径每帧增长 Speed*dt；达到 MaxRadius 的波在同一帧被标记删除，
// 其余的波更新描边（宽度随半径比例二次增长，不透明度二次衰减）。
type WaveAdvancementSystem struct {
	entityManager *ecs.EntityManager
	tuning        config.WaveTuning

	expired int
}

// NewWaveAdvancementSystem 创建波推进系统
func NewWaveAdvancementSystem(em *ecs.EntityManager, tuning config.WaveTuning) *WaveAdvancementSystem {
	return &WaveAdvancementSystem{
		entityManager: em,
		tuning:        tuning,
	}
}

// Update 推进半径并处理到期
func (s *WaveAdvancementSystem) Update(deltaTime float64) {
	for _, id := range ecs.GetEntitiesWith1[*components.WaveComponent](s.entityManager) {
		if !s.entityManager.IsAlive(id) {
			continue
		}
		wave, _ := ecs.GetComponent[*components.WaveComponent](s.entityManager, id)

		wave.Radius += wave.Speed * deltaTime
		if wave.Radius >= wave.MaxRadius {
			s.entityManager.DestroyEntity(id)
			s.expired++
			continue
		}

		stroke, ok := ecs.GetComponent[*components.StrokeComponent](s.entityManager, id)
		if !ok {
			continue
		}
		updated := interference.StrokeFor(wave.Radius, wave.MaxRadius, s.tuning.MinStrokeWidth, s.tuning.MaxStrokeWidth)
		stroke.Width = updated.Width
		stroke.Opacity = updated.Opacity
	}
}

// Expired 返回累计到期的波数量
func (s *WaveAdvancementSystem) Expired() int {
	return s.expired
}
