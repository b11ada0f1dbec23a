package components

// GracePeriodComponent 受击保护窗口
// Remaining > 0 时正干涉不再造成伤害（击退仍然生效）
type GracePeriodComponent struct {
	Remaining float64 // 剩余时间（秒）
}

// HitstunComponent 受击硬直
// Remaining > 0 时敌人不追踪玩家，速度由击退决定
type HitstunComponent struct {
	Remaining float64 // 剩余时间（秒）
}
