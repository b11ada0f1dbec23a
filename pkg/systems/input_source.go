package systems

import (
	"github.com/decker502/wavefront/pkg/types"
	"github.com/jakecoffman/cp"
)

// InputSource 玩家输入来源
//
// 游戏场景使用 Ebiten 键鼠实现，批量模拟和测试使用脚本实现。
type InputSource interface {
	// MoveDirection 返回本帧的移动方向（不要求归一化，零向量表示静止）
	MoveDirection() cp.Vector
	// WaveTrigger 返回本帧触发的波极性；ok 为 false 表示本帧没有发射
	WaveTrigger() (polarity types.Polarity, ok bool)
}

// ScriptedInput 按队列回放的输入
// 每次 WaveTrigger 调用消费一个排队的极性
type ScriptedInput struct {
	Move    cp.Vector
	Pending []types.Polarity
}

// MoveDirection 返回固定的移动方向
func (s *ScriptedInput) MoveDirection() cp.Vector {
	return s.Move
}

// WaveTrigger 弹出一个排队的极性
func (s *ScriptedInput) WaveTrigger() (types.Polarity, bool) {
	if len(s.Pending) == 0 {
		return types.PolarityPositive, false
	}
	p := s.Pending[0]
	s.Pending = s.Pending[1:]
	return p, true
}

// Queue 排队一次发射
func (s *ScriptedInput) Queue(polarity types.Polarity) {
	s.Pending = append(s.Pending, polarity)
}
