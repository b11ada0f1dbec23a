package systems

import (
	"github.com/decker502/wavefront/pkg/types"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/jakecoffman/cp"
)

// EbitenInput 从键盘和鼠标读取玩家输入
//
// 移动：WASD 或方向键
// 发射：鼠标左键发射正波，右键发射负波（每次按下只触发一次）
type EbitenInput struct{}

// NewEbitenInput 创建键鼠输入源
func NewEbitenInput() *EbitenInput {
	return &EbitenInput{}
}

// MoveDirection 返回按键合成的方向，未归一化
func (i *EbitenInput) MoveDirection() cp.Vector {
	var dir cp.Vector
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		dir.Y--
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		dir.Y++
	}
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		dir.X--
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		dir.X++
	}
	return dir
}

// WaveTrigger 返回本帧按下的鼠标键对应的极性
// 同一帧同时按下两个键时左键优先
func (i *EbitenInput) WaveTrigger() (types.Polarity, bool) {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return types.PolarityPositive, true
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		return types.PolarityNegative, true
	}
	return types.PolarityPositive, false
}
