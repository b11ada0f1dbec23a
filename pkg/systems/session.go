package systems

import (
	"github.com/decker502/wavefront/pkg/config"
	"github.com/decker502/wavefront/pkg/ecs"
	"github.com/decker502/wavefront/pkg/entities"
	"github.com/decker502/wavefront/pkg/game"
	"github.com/jakecoffman/cp"
)

// Session 一局游戏：实体、状态和驱动它们的管线
// 游戏场景和批量模拟共用
type Session struct {
	EntityManager *ecs.EntityManager
	State         *game.GameState
	Pipeline      *Pipeline
	Player        ecs.EntityID
}

// NewSession 在视口中心放置玩家并创建管线
func NewSession(cfg *config.TuningConfig, seed int64, input InputSource) *Session {
	em := ecs.NewEntityManager()
	state := game.NewGameState(seed)
	player := entities.NewPlayer(em, cfg.Player, cp.Vector{})

	return &Session{
		EntityManager: em,
		State:         state,
		Pipeline:      NewPipeline(em, cfg, state, input),
		Player:        player,
	}
}

// Tick 推进一个固定步长
func (s *Session) Tick(deltaTime float64) {
	s.Pipeline.Tick(deltaTime)
}

// Over 本局是否已结束
func (s *Session) Over() bool {
	return s.State.IsOver()
}

// Record 生成本局的结算记录（ID 和时间由 RecordStore 填写）
func (s *Session) Record() game.RunRecord {
	stats := s.Pipeline.Stats()
	return game.RunRecord{
		Seed:           s.State.Seed,
		RoundsSurvived: s.State.RoundsSurvived(),
		Duration:       s.State.Elapsed,
		Defeated:       stats.EnemiesDefeated,
		Interference:   stats.Interference(),
	}
}
