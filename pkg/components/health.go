package components

// HealthComponent 存储实体的生命值信息
// 用于玩家和敌人；生命值变化统一通过 HealthSystem 结算
type HealthComponent struct {
	Current float64 // 当前生命值
	Max     float64 // 最大生命值
}
