package components

// PlayerComponent 标识玩家实体
type PlayerComponent struct {
	Speed float64 // 移动速度（像素/秒）
}
