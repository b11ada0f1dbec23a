package entities

import (
	"github.com/decker502/wavefront/pkg/components"
	"github.com/decker502/wavefront/pkg/config"
	"github.com/decker502/wavefront/pkg/ecs"
	"github.com/decker502/wavefront/pkg/interference"
	"github.com/decker502/wavefront/pkg/types"
	"github.com/jakecoffman/cp"
)

// WavePayload 按数值配置构造一列半径为 0 的新波
func WavePayload(polarity types.Polarity, tuning config.WaveTuning) components.WaveComponent {
	return components.WaveComponent{
		Polarity:  polarity,
		Radius:    0,
		MaxRadius: tuning.MaxRadius,
		Speed:     tuning.Speed,
	}
}

// NewWave 创建波实体
//
// 参数:
//   - em: 实体管理器
//   - position: 波心（世界坐标），生成后不再改变
//   - wave: 波的参数
//   - tuning: 描边宽度范围
//
// 返回:
//   - ecs.EntityID: 波实体ID
func NewWave(em *ecs.EntityManager, position cp.Vector, wave components.WaveComponent, tuning config.WaveTuning) ecs.EntityID {
	entityID := em.CreateEntity()

	em.AddComponent(entityID, &components.PositionComponent{Vector: position})

	w := wave
	em.AddComponent(entityID, &w)

	stroke := interference.StrokeFor(wave.Radius, wave.MaxRadius, tuning.MinStrokeWidth, tuning.MaxStrokeWidth)
	em.AddComponent(entityID, &components.StrokeComponent{
		Width:   stroke.Width,
		Opacity: stroke.Opacity,
	})

	return entityID
}

// NewDeferredWave 创建延迟波实体
// delay 秒后 DeferredWaveSystem 在 position 处生成 wave
func NewDeferredWave(em *ecs.EntityManager, position cp.Vector, wave components.WaveComponent, delay float64) ecs.EntityID {
	entityID := em.CreateEntity()

	em.AddComponent(entityID, &components.PositionComponent{Vector: position})
	em.AddComponent(entityID, &components.DeferredWaveComponent{
		Wave:      wave,
		Remaining: delay,
	})

	return entityID
}
