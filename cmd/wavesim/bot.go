package main

import (
	"math"

	"github.com/decker502/wavefront/pkg/types"
	"github.com/jakecoffman/cp"
)

// circlingBot 绕圈移动并交替发射正负波的脚本输入
//
// 每 fireInterval 个 tick 发射一次，极性在正负之间交替；
// 移动方向每个 tick 旋转 turnRate 弧度。
type circlingBot struct {
	fireInterval int
	turnRate     float64

	tick     int
	heading  float64
	polarity types.Polarity
}

func newCirclingBot(fireInterval int, turnRate float64) *circlingBot {
	if fireInterval < 1 {
		fireInterval = 1
	}
	return &circlingBot{
		fireInterval: fireInterval,
		turnRate:     turnRate,
		polarity:     types.PolarityPositive,
	}
}

// MoveDirection 返回当前朝向并推进一个 tick
func (b *circlingBot) MoveDirection() cp.Vector {
	dir := cp.Vector{X: math.Cos(b.heading), Y: math.Sin(b.heading)}
	b.heading += b.turnRate
	b.tick++
	return dir
}

// WaveTrigger 每 fireInterval 个 tick 触发一次
func (b *circlingBot) WaveTrigger() (types.Polarity, bool) {
	if b.tick%b.fireInterval != 0 {
		return b.polarity, false
	}
	p := b.polarity
	b.polarity = b.polarity.Opposite()
	return p, true
}
