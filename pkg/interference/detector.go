package interference

import (
	"math"

	"github.com/decker502/wavefront/pkg/types"
	"github.com/jakecoffman/cp"
)

const (
	// DefaultEpsilon 计算传播方向时的半径回退步长
	DefaultEpsilon = 0.1
	// DefaultMergeDistance 两交点距离小于该值时视为相切，合并为一个事件
	DefaultMergeDistance = 5.0
)

// Source 一列波在当前帧的值快照
type Source struct {
	Position  cp.Vector
	Polarity  types.Polarity
	Radius    float64
	MaxRadius float64
}

// Event 一次干涉事件，仅在产生它的帧内有效
type Event struct {
	Kind     types.InterferenceKind
	Position cp.Vector
	// Direction 交点的向外传播方向（单位向量）；几何退化时为零向量
	Direction cp.Vector
	// Strength 新鲜度 [0,1]，1 表示刚形成
	Strength float64
}

// Detector 干涉检测器
type Detector struct {
	Epsilon       float64
	MergeDistance float64
}

// NewDetector 创建干涉检测器
// 非正参数回退为默认值
func NewDetector(epsilon, mergeDistance float64) *Detector {
	if epsilon <= 0 {
		epsilon = DefaultEpsilon
	}
	if mergeDistance <= 0 {
		mergeDistance = DefaultMergeDistance
	}
	return &Detector{
		Epsilon:       epsilon,
		MergeDistance: mergeDistance,
	}
}

// Detect 检查所有无序波对 (i<j)，返回本帧的干涉事件
//
// 每帧从零开始计算，不保留跨帧状态。事件顺序由输入顺序决定。
func (d *Detector) Detect(sources []Source) []Event {
	var events []Event
	for i := 0; i < len(sources); i++ {
		for j := i + 1; j < len(sources); j++ {
			events = d.AppendPair(events, sources[i], sources[j])
		}
	}
	return events
}

// AppendPair 检测一对波，把产生的 0、1 或 2 个事件追加到 dst
func (d *Detector) AppendPair(dst []Event, a, b Source) []Event {
	current, ok := CircleIntersection(a.Position, a.Radius, b.Position, b.Radius)
	if !ok {
		return dst
	}

	kind := Classify(a.Polarity, b.Polarity)
	strength := Strength(a, b)

	// 上一时刻（半径回退 Epsilon）的交点，用于求传播方向
	previous, hasPrevious := CircleIntersection(
		a.Position, math.Max(0, a.Radius-d.Epsilon),
		b.Position, math.Max(0, b.Radius-d.Epsilon),
	)

	if current.Points[0].Distance(current.Points[1]) < d.MergeDistance {
		direction := cp.Vector{}
		if hasPrevious {
			direction = SafeNormalize(current.Center.Sub(previous.Center))
		}
		return append(dst, Event{
			Kind:      kind,
			Position:  current.Center,
			Direction: direction,
			Strength:  strength,
		})
	}

	for i, point := range current.Points {
		direction := cp.Vector{}
		if hasPrevious {
			direction = SafeNormalize(point.Sub(previous.Points[i]))
		}
		dst = append(dst, Event{
			Kind:      kind,
			Position:  point,
			Direction: direction,
			Strength:  strength,
		})
	}
	return dst
}

// Classify 根据极性组合确定干涉类型（与参数顺序无关）
func Classify(a, b types.Polarity) types.InterferenceKind {
	switch {
	case a != b:
		return types.InterferenceDestructive
	case a == types.PolarityPositive:
		return types.InterferencePositive
	default:
		return types.InterferenceNegative
	}
}

// Strength 计算干涉新鲜度
//
// strength = 1 - max((r1/max1)², (r2/max2)²)，任一列波接近寿命终点时趋近 0。
// 结果限制在 [0,1]。
func Strength(a, b Source) float64 {
	age := math.Max(ageFraction(a.Radius, a.MaxRadius), ageFraction(b.Radius, b.MaxRadius))
	return clamp01(1 - age)
}

// ageFraction 返回 (radius/maxRadius)²，限制在 [0,1]
func ageFraction(radius, maxRadius float64) float64 {
	if maxRadius <= 0 {
		return 1
	}
	f := radius / maxRadius
	return clamp01(f * f)
}

func clamp01(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Min(1, math.Max(0, v))
}
