package systems

import (
	"github.com/decker502/wavefront/pkg/ecs"
	"github.com/decker502/wavefront/pkg/interference"
)

// CollisionPhase 碰撞事件阶段
type CollisionPhase int

const (
	// CollisionStarted 两个形状开始接触
	CollisionStarted CollisionPhase = iota
	// CollisionStopped 两个形状分离，或其中一个被移出物理空间
	CollisionStopped
)

func (p CollisionPhase) String() string {
	if p == CollisionStarted {
		return "started"
	}
	return "stopped"
}

// CollisionEvent 物理后端报告的一次接触变化
// A/B 的顺序没有意义，消费者按组件自行识别角色
type CollisionEvent struct {
	A, B  ecs.EntityID
	Phase CollisionPhase
}

// HealthChange 生命值变化请求，由 HealthSystem 统一结算
type HealthChange struct {
	Target ecs.EntityID
	Amount float64 // 正数为治疗，负数为伤害
}

// Frame 单帧的事件队列
//
// 所有队列只在一帧内有效：生产者追加，消费者按过滤条件读取，
// Pipeline 在帧末调用 Reset，任何事件都不会跨越帧边界。
type Frame struct {
	Interference  []interference.Event
	Collisions    []CollisionEvent
	HealthChanges []HealthChange
}

// NewFrame 创建空的帧队列
func NewFrame() *Frame {
	return &Frame{}
}

// PushCollision 追加碰撞事件
func (f *Frame) PushCollision(a, b ecs.EntityID, phase CollisionPhase) {
	f.Collisions = append(f.Collisions, CollisionEvent{A: a, B: b, Phase: phase})
}

// RequestHealthChange 追加生命值变化请求
func (f *Frame) RequestHealthChange(target ecs.EntityID, amount float64) {
	f.HealthChanges = append(f.HealthChanges, HealthChange{Target: target, Amount: amount})
}

// Reset 清空所有队列，保留底层数组
func (f *Frame) Reset() {
	f.Interference = f.Interference[:0]
	f.Collisions = f.Collisions[:0]
	f.HealthChanges = f.HealthChanges[:0]
}

// matchPair 在碰撞事件中找出满足 isFirst 的一方
//
// 返回:
//   - first: 满足 isFirst 的实体
//   - other: 另一方
//   - ok: 两方都不满足时为 false
func matchPair(ev CollisionEvent, isFirst func(ecs.EntityID) bool) (first, other ecs.EntityID, ok bool) {
	if isFirst(ev.A) {
		return ev.A, ev.B, true
	}
	if isFirst(ev.B) {
		return ev.B, ev.A, true
	}
	return 0, 0, false
}
