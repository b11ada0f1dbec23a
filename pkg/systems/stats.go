package systems

import "github.com/decker502/wavefront/pkg/types"

// Stats 一局游戏的累计统计，供 HUD、对局记录和批量模拟使用
type Stats struct {
	Ticks                  int
	WavesEmitted           int // 玩家发射次数，每次一列波加一列延迟反极性波
	WavesExpired           int
	InterferenceByKind     [3]int // 按 types.InterferenceKind 索引
	VolumesSpawned         int
	PositiveHits           int // 造成伤害的正干涉命中
	Knockbacks             int
	ProjectilesNeutralised int
	EnemiesSpawned         int
	EnemiesDefeated        int
}

// Interference 累计干涉事件总数
func (s Stats) Interference() int {
	return s.InterferenceByKind[types.InterferencePositive] +
		s.InterferenceByKind[types.InterferenceNegative] +
		s.InterferenceByKind[types.InterferenceDestructive]
}
