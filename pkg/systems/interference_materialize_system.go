package systems

import (
	"github.com/decker502/wavefront/pkg/config"
	"github.com/decker502/wavefront/pkg/ecs"
	"github.com/decker502/wavefront/pkg/entities"
)

// InterferenceMaterializeSystem 把本帧的干涉事件转化为短寿命的交互体积
// 处理完成后 Frame.Interference 被清空
type InterferenceMaterializeSystem struct {
	entityManager *ecs.EntityManager
	tuning        config.VolumeTuning
	frame         *Frame

	spawned int
}

// NewInterferenceMaterializeSystem 创建干涉体积生成系统
func NewInterferenceMaterializeSystem(em *ecs.EntityManager, tuning config.VolumeTuning, frame *Frame) *InterferenceMaterializeSystem {
	return &InterferenceMaterializeSystem{
		entityManager: em,
		tuning:        tuning,
		frame:         frame,
	}
}

// Update 为每个事件生成一个体积
func (s *InterferenceMaterializeSystem) Update(deltaTime float64) {
	for _, ev := range s.frame.Interference {
		entities.NewInterferenceVolume(s.entityManager, ev, s.tuning)
		s.spawned++
	}
	s.frame.Interference = s.frame.Interference[:0]
}

// Spawned 返回累计生成的体积数量
func (s *InterferenceMaterializeSystem) Spawned() int {
	return s.spawned
}
