package types

import "fmt"

// EnemyType 敌人原型
type EnemyType int

const (
	// EnemyNormie 近战型：直接冲向玩家
	EnemyNormie EnemyType = iota
	// EnemyLayer 布雷型：缓慢移动，发射长寿命慢速弹
	EnemyLayer
	// EnemyRanger 远程型：发射快速弹
	EnemyRanger
)

// AllEnemyTypes 按导演系统的解锁顺序排列
var AllEnemyTypes = []EnemyType{EnemyNormie, EnemyLayer, EnemyRanger}

func (e EnemyType) String() string {
	switch e {
	case EnemyNormie:
		return "normie"
	case EnemyLayer:
		return "layer"
	case EnemyRanger:
		return "ranger"
	default:
		return "unknown"
	}
}

// ParseEnemyType 将配置中的字符串解析为 EnemyType
func ParseEnemyType(name string) (EnemyType, error) {
	for _, t := range AllEnemyTypes {
		if t.String() == name {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown enemy type %q", name)
}
