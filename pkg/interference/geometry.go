// Package interference 实现波前传播与干涉检测的几何算法
//
// 本包不依赖 ECS：输入为波的值快照（Source），输出为同一帧内有效的干涉事件（Event）。
// 系统层负责从实体收集快照并把事件转化为交互体积。
package interference

import (
	"math"

	"github.com/jakecoffman/cp"
)

// Intersection 两圆相交的几何结果
type Intersection struct {
	// Center 公共弦中点（两交点连线的中点）
	Center cp.Vector
	// Points 两个交点，Points[0] 位于连心线方向的右侧 perp(v) = (v.y, -v.x)
	Points [2]cp.Vector
}

// CircleIntersection 计算两圆交点
//
// 拒绝条件（返回 ok=false，不是错误，只表示本帧无交点）：
//   - 圆心重合 d == 0
//   - 两圆相离 d > r1 + r2
//   - 一圆内含于另一圆 d < |r1 - r2|
//
// 参数:
//   - p1, r1: 第一个圆的圆心和半径
//   - p2, r2: 第二个圆的圆心和半径
//
// 返回:
//   - Intersection: 公共弦中点和两个交点（相切时两点重合）
//   - bool: 是否相交
func CircleIntersection(p1 cp.Vector, r1 float64, p2 cp.Vector, r2 float64) (Intersection, bool) {
	delta := p2.Sub(p1)
	d := delta.Length()

	if d == 0 || d > r1+r2 || d < math.Abs(r1-r2) {
		return Intersection{}, false
	}

	a := (r1*r1 - r2*r2 + d*d) / (2 * d)
	// 浮点误差可能使 r1²-a² 略小于 0（相切边界）
	h := math.Sqrt(math.Max(0, r1*r1-a*a))

	unit := delta.Mult(1 / d)
	center := p1.Add(unit.Mult(a))
	offset := perpendicular(unit).Mult(h)

	return Intersection{
		Center: center,
		Points: [2]cp.Vector{center.Add(offset), center.Sub(offset)},
	}, true
}

// perpendicular 返回 (v.y, -v.x)
func perpendicular(v cp.Vector) cp.Vector {
	return cp.Vector{X: v.Y, Y: -v.X}
}

// SafeNormalize 归一化向量；零长度、NaN 或 Inf 输入返回零向量
//
// 零向量在击退逻辑中表示“不推动”，因此不会把 NaN 传播到速度里。
func SafeNormalize(v cp.Vector) cp.Vector {
	if !isFinite(v.X) || !isFinite(v.Y) {
		return cp.Vector{}
	}
	length := math.Hypot(v.X, v.Y)
	if length == 0 || !isFinite(length) {
		return cp.Vector{}
	}
	return cp.Vector{X: v.X / length, Y: v.Y / length}
}

// IsZero 判断向量是否为零向量
func IsZero(v cp.Vector) bool {
	return v.X == 0 && v.Y == 0
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
