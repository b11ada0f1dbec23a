package systems

import (
	"log"
	"sort"

	"github.com/decker502/wavefront/pkg/components"
	"github.com/decker502/wavefront/pkg/ecs"
	"github.com/jakecoffman/cp"
)

// 碰撞类型，对应 components.BodyRole
const (
	collisionPlayer cp.CollisionType = iota + 1
	collisionEnemy
	collisionProjectile
	collisionVolume
)

// 碰撞过滤分类位
const (
	categoryPlayer uint = 1 << iota
	categoryEnemy
	categoryProjectile
	categoryVolume
)

// bodyProfile 每种角色的刚体配置
type bodyProfile struct {
	collisionType cp.CollisionType
	categories    uint
	mask          uint
	sensor        bool
	kinematic     bool
}

// bodyProfiles 角色到刚体配置的映射
//
// 玩家和交互体积是运动学传感器；敌人和子弹是动态刚体。
// 敌人之间互相推挤，子弹不与敌人和其他子弹接触。
var bodyProfiles = map[components.BodyRole]bodyProfile{
	components.BodyRolePlayer: {
		collisionType: collisionPlayer,
		categories:    categoryPlayer,
		mask:          categoryEnemy | categoryProjectile,
		sensor:        true,
		kinematic:     true,
	},
	components.BodyRoleEnemy: {
		collisionType: collisionEnemy,
		categories:    categoryEnemy,
		mask:          categoryPlayer | categoryEnemy | categoryVolume,
	},
	components.BodyRoleProjectile: {
		collisionType: collisionProjectile,
		categories:    categoryProjectile,
		mask:          categoryPlayer | categoryVolume,
	},
	components.BodyRoleVolume: {
		collisionType: collisionVolume,
		categories:    categoryVolume,
		mask:          categoryEnemy | categoryProjectile,
		sensor:        true,
		kinematic:     true,
	},
}

// PhysicsSystem 把实体同步到 Chipmunk 空间并收集接触事件
//
// 每帧流程：
//  1. 为新实体创建刚体，回收已销毁实体的刚体（回收时产生的分离事件同样入队）
//  2. 把 PositionComponent/VelocityComponent 写入刚体
//  3. space.Step(dt)
//  4. 把刚体位置和速度读回组件
//
// 接触事件通过碰撞回调推入 Frame.Collisions，由效果解析系统在同一帧消费。
type PhysicsSystem struct {
	entityManager *ecs.EntityManager
	frame         *Frame
	space         *cp.Space

	bodies map[ecs.EntityID]*components.PhysicsBodyComponent
}

// NewPhysicsSystem 创建物理系统
//
// 参数:
//   - em: 实体管理器
//   - frame: 接收碰撞事件的帧队列
//
// 返回:
//   - *PhysicsSystem: 物理系统实例
func NewPhysicsSystem(em *ecs.EntityManager, frame *Frame) *PhysicsSystem {
	ps := &PhysicsSystem{
		entityManager: em,
		frame:         frame,
		space:         cp.NewSpace(),
		bodies:        make(map[ecs.EntityID]*components.PhysicsBodyComponent),
	}

	ps.watch(collisionVolume, collisionEnemy)
	ps.watch(collisionVolume, collisionProjectile)
	ps.watch(collisionPlayer, collisionEnemy)
	ps.watch(collisionPlayer, collisionProjectile)

	return ps
}

// watch 为一对碰撞类型注册开始/分离回调
func (ps *PhysicsSystem) watch(a, b cp.CollisionType) {
	handler := ps.space.NewCollisionHandler(a, b)
	handler.BeginFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
		ps.push(arb, CollisionStarted)
		return true
	}
	handler.SeparateFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) {
		ps.push(arb, CollisionStopped)
	}
}

func (ps *PhysicsSystem) push(arb *cp.Arbiter, phase CollisionPhase) {
	shapeA, shapeB := arb.Shapes()
	idA, okA := shapeA.UserData.(ecs.EntityID)
	idB, okB := shapeB.UserData.(ecs.EntityID)
	if !okA || !okB {
		return
	}
	ps.frame.PushCollision(idA, idB, phase)
}

// Update 同步并步进物理空间
func (ps *PhysicsSystem) Update(deltaTime float64) {
	ps.prune()
	ps.syncIn()

	if deltaTime > 0 {
		ps.space.Step(deltaTime)
	}

	ps.syncOut()
}

// prune 移除已销毁（或已标记删除）实体的刚体
// 按ID顺序移除，分离事件的入队顺序与 map 遍历无关
func (ps *PhysicsSystem) prune() {
	var dead []ecs.EntityID
	for id := range ps.bodies {
		if !ps.entityManager.IsAlive(id) {
			dead = append(dead, id)
		}
	}
	sort.Slice(dead, func(i, j int) bool { return dead[i] < dead[j] })

	for _, id := range dead {
		ps.removeBody(id, ps.bodies[id])
	}
}

func (ps *PhysicsSystem) removeBody(id ecs.EntityID, body *components.PhysicsBodyComponent) {
	if body.Shape != nil {
		ps.space.RemoveShape(body.Shape)
	}
	if body.Body != nil {
		ps.space.RemoveBody(body.Body)
	}
	body.Shape = nil
	body.Body = nil
	delete(ps.bodies, id)
}

// syncIn 创建缺失的刚体，并把组件状态写入刚体
func (ps *PhysicsSystem) syncIn() {
	ids := ecs.GetEntitiesWith2[*components.PhysicsBodyComponent, *components.PositionComponent](ps.entityManager)
	for _, id := range ids {
		if !ps.entityManager.IsAlive(id) {
			continue
		}
		body, _ := ecs.GetComponent[*components.PhysicsBodyComponent](ps.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](ps.entityManager, id)

		if body.Body == nil {
			if !ps.addBody(id, body) {
				continue
			}
		}

		body.Body.SetPosition(pos.Vector)
		if vel, ok := ecs.GetComponent[*components.VelocityComponent](ps.entityManager, id); ok {
			body.Body.SetVelocity(vel.X, vel.Y)
		}
	}
}

func (ps *PhysicsSystem) addBody(id ecs.EntityID, body *components.PhysicsBodyComponent) bool {
	profile, ok := bodyProfiles[body.Role]
	if !ok {
		log.Printf("[PhysicsSystem] Unknown body role %d for entity %d", body.Role, id)
		return false
	}
	if body.Radius <= 0 {
		return false
	}

	var cpBody *cp.Body
	if profile.kinematic {
		cpBody = cp.NewKinematicBody()
	} else {
		mass := body.Mass
		if mass <= 0 {
			mass = 1
		}
		cpBody = cp.NewBody(mass, cp.MomentForCircle(mass, 0, body.Radius, cp.Vector{}))
	}
	cpBody.UserData = id
	ps.space.AddBody(cpBody)

	shape := cp.NewCircle(cpBody, body.Radius, cp.Vector{})
	shape.SetSensor(profile.sensor)
	shape.SetCollisionType(profile.collisionType)
	shape.SetFilter(cp.ShapeFilter{Categories: profile.categories, Mask: profile.mask})
	shape.UserData = id
	ps.space.AddShape(shape)

	body.Body = cpBody
	body.Shape = shape
	ps.bodies[id] = body
	return true
}

// syncOut 把步进后的位置和速度读回组件
func (ps *PhysicsSystem) syncOut() {
	for id, body := range ps.bodies {
		if body.Body == nil {
			continue
		}
		if pos, ok := ecs.GetComponent[*components.PositionComponent](ps.entityManager, id); ok {
			pos.Vector = body.Body.Position()
		}
		if vel, ok := ecs.GetComponent[*components.VelocityComponent](ps.entityManager, id); ok {
			vel.Vector = body.Body.Velocity()
		}
	}
}

// BodyCount 返回空间中的刚体数量
func (ps *PhysicsSystem) BodyCount() int {
	return len(ps.bodies)
}
