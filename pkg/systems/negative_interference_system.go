package systems

import (
	"github.com/decker502/wavefront/pkg/ecs"
	"github.com/decker502/wavefront/pkg/types"
)

// NegativeInterferenceSystem 负干涉体积接触敌方子弹时将其销毁
type NegativeInterferenceSystem struct {
	entityManager *ecs.EntityManager
	frame         *Frame

	neutralised int
}

// NewNegativeInterferenceSystem 创建负干涉解析系统
func NewNegativeInterferenceSystem(em *ecs.EntityManager, frame *Frame) *NegativeInterferenceSystem {
	return &NegativeInterferenceSystem{
		entityManager: em,
		frame:         frame,
	}
}

// Update 处理本帧的接触开始事件
func (s *NegativeInterferenceSystem) Update(deltaTime float64) {
	for _, ev := range s.frame.Collisions {
		if ev.Phase != CollisionStarted {
			continue
		}
		_, projectileID, ok := matchPair(ev, func(id ecs.EntityID) bool {
			return isVolumeOfKind(s.entityManager, id, types.InterferenceNegative)
		})
		if !ok || !isProjectile(s.entityManager, projectileID) {
			continue
		}
		s.entityManager.DestroyEntity(projectileID)
		s.neutralised++
	}
}

// Neutralised 返回累计销毁的子弹数量
func (s *NegativeInterferenceSystem) Neutralised() int {
	return s.neutralised
}
