// Package types 定义共享的基础类型
package types

// Polarity 波的极性
type Polarity int

const (
	// PolarityPositive 正极波：伤害并击退敌人
	PolarityPositive Polarity = iota
	// PolarityNegative 负极波：推开并摧毁敌方子弹
	PolarityNegative
)

// Opposite 返回相反极性（玩家发射的成对波使用）
func (p Polarity) Opposite() Polarity {
	if p == PolarityPositive {
		return PolarityNegative
	}
	return PolarityPositive
}

func (p Polarity) String() string {
	switch p {
	case PolarityPositive:
		return "positive"
	case PolarityNegative:
		return "negative"
	default:
		return "unknown"
	}
}

// InterferenceKind 干涉类型，由两列波的极性组合决定
type InterferenceKind int

const (
	// InterferencePositive (+,+) 干涉：伤害 + 击退
	InterferencePositive InterferenceKind = iota
	// InterferenceNegative (-,-) 干涉：摧毁敌方子弹
	InterferenceNegative
	// InterferenceDestructive (+,-) 干涉：使区域内敌人暂时免疫波效果
	InterferenceDestructive
)

func (k InterferenceKind) String() string {
	switch k {
	case InterferencePositive:
		return "positive"
	case InterferenceNegative:
		return "negative"
	case InterferenceDestructive:
		return "destructive"
	default:
		return "unknown"
	}
}
