package components

import "github.com/jakecoffman/cp"

// BodyRole 实体在物理空间中的角色
// 角色决定刚体类型、碰撞类型以及碰撞过滤
type BodyRole int

const (
	// BodyRolePlayer 玩家：运动学传感器
	BodyRolePlayer BodyRole = iota
	// BodyRoleEnemy 敌人：动态刚体，敌人之间互相推挤
	BodyRoleEnemy
	// BodyRoleProjectile 敌方子弹：动态刚体，只与传感器产生碰撞事件
	BodyRoleProjectile
	// BodyRoleVolume 干涉交互体积：运动学传感器
	BodyRoleVolume
)

// String 返回角色名称
func (r BodyRole) String() string {
	switch r {
	case BodyRolePlayer:
		return "player"
	case BodyRoleEnemy:
		return "enemy"
	case BodyRoleProjectile:
		return "projectile"
	case BodyRoleVolume:
		return "volume"
	default:
		return "unknown"
	}
}

// PhysicsBodyComponent 实体在 Chipmunk 空间中的圆形刚体
//
// Body/Shape 由 PhysicsSystem 在首次同步时创建，实体销毁后由它回收。
// 工厂函数只填写 Role、Radius 和 Mass。
type PhysicsBodyComponent struct {
	Role   BodyRole
	Radius float64 // 碰撞半径（像素）
	Mass   float64 // 质量，仅对动态刚体有效

	Body  *cp.Body
	Shape *cp.Shape
}
