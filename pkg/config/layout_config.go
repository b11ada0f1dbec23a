package config

import "github.com/jakecoffman/cp"

// 布局配置常量
// 世界坐标以视口中心为原点，X 向右，Y 向下（与 Ebiten 屏幕坐标同向）
const (
	// ScreenWidth 逻辑屏幕宽度（像素）
	ScreenWidth = 960

	// ScreenHeight 逻辑屏幕高度（像素）
	ScreenHeight = 720

	// TicksPerSecond 固定步长模拟频率
	TicksPerSecond = 60

	// FixedDeltaTime 每帧模拟时长（秒）
	FixedDeltaTime = 1.0 / TicksPerSecond

	// HUDMargin HUD 文本距屏幕边缘的距离
	HUDMargin = 16

	// HealthBarWidth / HealthBarHeight 实体头顶血条尺寸
	HealthBarWidth  = 40.0
	HealthBarHeight = 5.0

	// HealthBarOffsetY 血条相对实体中心的垂直偏移（向上为负）
	HealthBarOffsetY = -30.0
)

// WorldToScreen 把世界坐标转换为屏幕坐标
func WorldToScreen(world cp.Vector) (float32, float32) {
	return float32(world.X + ScreenWidth/2), float32(world.Y + ScreenHeight/2)
}

// ScreenToWorld 把屏幕坐标（如鼠标位置）转换为世界坐标
func ScreenToWorld(x, y int) cp.Vector {
	return cp.Vector{X: float64(x) - ScreenWidth/2, Y: float64(y) - ScreenHeight/2}
}

// ViewportHalfExtents 返回视口半宽和半高（世界坐标）
func ViewportHalfExtents() (float64, float64) {
	return ScreenWidth / 2, ScreenHeight / 2
}
