package components

import "github.com/decker502/wavefront/pkg/types"

// WaveComponent 一列从圆心向外扩张的圆形波前
//
// Radius 每帧按 Speed*dt 单调增长，达到 MaxRadius 时实体被销毁。
// 圆心由同实体的 PositionComponent 给出。
type WaveComponent struct {
	Polarity  types.Polarity // 极性
	Radius    float64        // 当前半径（像素），>= 0
	MaxRadius float64        // 最大半径（像素）
	Speed     float64        // 扩张速度（像素/秒）
}

// DeferredWaveComponent 延迟生成的波
// 倒计时结束后在 Position 处生成一列携带 Wave 参数的波，然后移除自身
type DeferredWaveComponent struct {
	Wave      WaveComponent // 待生成波的参数
	Remaining float64       // 剩余延迟（秒）
}

// StrokeComponent 波前的描边参数，由 WaveAdvancementSystem 每帧更新
// 宽度同时是区域伤害判定的带宽
type StrokeComponent struct {
	Width   float64 // 描边宽度（像素）
	Opacity float64 // 不透明度 [0,1]
}
