package components

import "github.com/jakecoffman/cp"

// PositionComponent 实体在世界坐标系中的位置（像素）
// 波的圆心即其实体位置，生成后不再改变
type PositionComponent struct {
	cp.Vector
}

// VelocityComponent 实体速度（像素/秒）
// 该值是权威速度：PhysicsSystem 在步进前写入刚体，步进后读回
type VelocityComponent struct {
	cp.Vector
}
