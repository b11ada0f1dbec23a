package components

import (
	"github.com/decker502/wavefront/pkg/types"
	"github.com/jakecoffman/cp"
)

// InterferenceVolumeComponent 干涉交互体积
//
// 由 InterferenceMaterializeSystem 根据干涉事件生成，寿命极短（由 LifetimeComponent 控制）。
// 效果解析系统只读取它，从不修改。体积不持有产生它的波的引用。
type InterferenceVolumeComponent struct {
	Kind        types.InterferenceKind // 干涉类型
	Direction   cp.Vector              // 传播方向，单位向量或零向量
	Strength    float64                // 新鲜度 [0,1]
	Radius      float64                // 碰撞半径（像素）
	StrokeWidth float64                // 描边宽度（像素），与半径跟随同一个 (1-strength) 因子
}

// NoEffectComponent 免疫标记
// 敌人位于相消干涉体积内时挂载，期间正/负干涉和区域伤害对其无效
type NoEffectComponent struct{}
