package systems

import (
	"github.com/decker502/wavefront/pkg/components"
	"github.com/decker502/wavefront/pkg/ecs"
	"github.com/decker502/wavefront/pkg/interference"
)

// InterferenceDetectionSystem 每帧对所有存活的波两两检测干涉
//
// 波按实体ID升序收集，检测结果追加到 Frame.Interference，
// 供同一帧的 InterferenceMaterializeSystem 消费。不保留跨帧状态。
type InterferenceDetectionSystem struct {
	entityManager *ecs.EntityManager
	detector      *interference.Detector
	frame         *Frame

	sources []interference.Source
	byKind  [3]int
}

// NewInterferenceDetectionSystem 创建干涉检测系统
func NewInterferenceDetectionSystem(em *ecs.EntityManager, detector *interference.Detector, frame *Frame) *InterferenceDetectionSystem {
	return &InterferenceDetectionSystem{
		entityManager: em,
		detector:      detector,
		frame:         frame,
	}
}

// Update 收集波的快照并检测
func (s *InterferenceDetectionSystem) Update(deltaTime float64) {
	s.sources = s.sources[:0]
	for _, id := range ecs.GetEntitiesWith2[*components.WaveComponent, *components.PositionComponent](s.entityManager) {
		if !s.entityManager.IsAlive(id) {
			continue
		}
		wave, _ := ecs.GetComponent[*components.WaveComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		s.sources = append(s.sources, interference.Source{
			Position:  pos.Vector,
			Polarity:  wave.Polarity,
			Radius:    wave.Radius,
			MaxRadius: wave.MaxRadius,
		})
	}

	events := s.detector.Detect(s.sources)
	for _, ev := range events {
		s.byKind[ev.Kind]++
	}
	s.frame.Interference = append(s.frame.Interference, events...)
}

// CountByKind 返回累计检测到的干涉事件数（按类型索引）
func (s *InterferenceDetectionSystem) CountByKind() [3]int {
	return s.byKind
}
