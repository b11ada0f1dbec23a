package game

// GamePhase 一局游戏所处的阶段
type GamePhase int

const (
	// PhasePlaying 游戏进行中（包括回合间隔）
	PhasePlaying GamePhase = iota
	// PhaseGameOver 玩家死亡，等待切换到结算场景
	PhaseGameOver
)

// String 返回阶段名称
func (p GamePhase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// GameState 存储一局游戏的状态
//
// 每局游戏创建一个实例，由场景持有并传给需要它的系统，不是全局单例：
// 批量模拟可以在同一进程中并行运行多局而互不干扰。
type GameState struct {
	Round   int       // 当前回合（0 表示第一回合尚未开始）
	Phase   GamePhase // 当前阶段
	Elapsed float64   // 已模拟时间（秒）
	Seed    int64     // 导演系统随机种子
}

// NewGameState 创建新一局游戏的状态
func NewGameState(seed int64) *GameState {
	return &GameState{
		Phase: PhasePlaying,
		Seed:  seed,
	}
}

// NextRound 进入下一回合
func (gs *GameState) NextRound() {
	gs.Round++
}

// EndGame 结束本局
// 重复调用无副作用
func (gs *GameState) EndGame() {
	gs.Phase = PhaseGameOver
}

// IsOver 本局是否已结束
func (gs *GameState) IsOver() bool {
	return gs.Phase == PhaseGameOver
}

// RoundsSurvived 已完整存活的回合数
// 死在第 N 回合时存活了 N-1 回合
func (gs *GameState) RoundsSurvived() int {
	if gs.Round <= 0 {
		return 0
	}
	return gs.Round - 1
}
