package systems

import (
	"log"
	"math/rand"

	"github.com/decker502/wavefront/pkg/components"
	"github.com/decker502/wavefront/pkg/config"
	"github.com/decker502/wavefront/pkg/ecs"
	"github.com/decker502/wavefront/pkg/entities"
	"github.com/decker502/wavefront/pkg/game"
	"github.com/decker502/wavefront/pkg/types"
	"github.com/jakecoffman/cp"
)

// DirectorSystem 回合与敌人生成
//
// 回合间隔：场上没有敌人且本回合生成完毕时计时，期间玩家持续回复生命。
// 间隔结束后进入下一回合，按预算在视口外围依次生成敌人；
// 预算耗尽后本回合停止生成，下回合预算按 Numerator/Denominator 增长。
//
// 预算、计时器和随机数都是本系统的字段，不依赖全局状态。
type DirectorSystem struct {
	entityManager *ecs.EntityManager
	cfg           *config.TuningConfig
	state         *game.GameState
	frame         *Frame
	rng           *rand.Rand

	budget     int     // 本回合总预算
	remaining  int     // 本回合剩余预算
	spawning   bool    // 本回合是否仍在生成
	spawnTimer float64 // 距下一次生成的剩余时间（秒）
	roundDelay float64 // 回合间隔已计时（秒）

	spawned int
}

// NewDirectorSystem 创建导演系统
//
// 参数:
//   - em: 实体管理器
//   - cfg: 数值配置
//   - state: 本局状态（回合数写入这里）
//   - frame: 帧队列（回合间隔的治疗请求）
//   - seed: 随机种子，相同种子生成相同的出生序列
func NewDirectorSystem(em *ecs.EntityManager, cfg *config.TuningConfig, state *game.GameState, frame *Frame, seed int64) *DirectorSystem {
	return &DirectorSystem{
		entityManager: em,
		cfg:           cfg,
		state:         state,
		frame:         frame,
		rng:           rand.New(rand.NewSource(seed)),
		budget:        cfg.Director.StartBudget,
	}
}

// Update 推进回合状态并生成敌人
func (s *DirectorSystem) Update(deltaTime float64) {
	if s.state.IsOver() {
		return
	}

	if !s.spawning && s.enemyCount() == 0 {
		s.tickRoundDelay(deltaTime)
		return
	}

	if s.spawning {
		s.tickSpawn(deltaTime)
	}
}

func (s *DirectorSystem) tickRoundDelay(deltaTime float64) {
	if playerID, ok := findPlayer(s.entityManager); ok {
		s.frame.RequestHealthChange(playerID, s.cfg.Director.RoundHealPerSecond*deltaTime)
	}

	s.roundDelay += deltaTime
	if s.roundDelay < s.cfg.Director.RoundDelay {
		return
	}

	s.roundDelay = 0
	s.state.NextRound()
	s.spawning = true
	s.remaining = s.budget
	s.spawnTimer = s.cfg.Director.FirstSpawnDelay
	log.Printf("[DirectorSystem] Round %d started, budget %d", s.state.Round, s.budget)
}

func (s *DirectorSystem) tickSpawn(deltaTime float64) {
	s.spawnTimer -= deltaTime
	if s.spawnTimer > 0 {
		return
	}

	candidates := s.eligible()
	if len(candidates) > 0 {
		enemyType := candidates[s.rng.Intn(len(candidates))]
		tuning := s.cfg.Enemies.Get(enemyType)

		position := s.spawnPoint()
		if _, err := entities.NewEnemy(s.entityManager, s.cfg, enemyType, position); err != nil {
			log.Printf("[DirectorSystem] Failed to spawn %s: %v", enemyType, err)
		} else {
			s.spawned++
		}
		s.remaining -= tuning.Cost
		s.spawnTimer = tuning.SpawnDelay
	}

	// 剩余预算不足以生成任何原型时同样结束本回合
	if s.remaining <= 0 || len(s.eligible()) == 0 {
		s.spawning = false
		s.budget = s.budget * s.cfg.Director.BudgetGrowthNumerator / s.cfg.Director.BudgetGrowthDenominator
	}
}

// eligible 返回本回合可生成的原型：回合预算超过解锁门槛且剩余预算足够
func (s *DirectorSystem) eligible() []types.EnemyType {
	var out []types.EnemyType
	for _, enemyType := range types.AllEnemyTypes {
		tuning := s.cfg.Enemies.Get(enemyType)
		if s.budget > tuning.RequiredBudget && s.remaining >= tuning.Cost {
			out = append(out, enemyType)
		}
	}
	return out
}

// spawnPoint 在扩展后的视口边界上均匀取一点
func (s *DirectorSystem) spawnPoint() cp.Vector {
	width := float64(config.ScreenWidth) + s.cfg.Director.SpawnMargin
	height := float64(config.ScreenHeight) + s.cfg.Director.SpawnMargin
	t := s.rng.Float64() * (2*width + 2*height)
	return PerimeterPoint(t, width, height)
}

// PerimeterPoint 把周长参数 t ∈ [0, 2w+2h) 映射到以原点为中心、尺寸为 w×h 的矩形边界上
// 顺时针：上边（左→右）、右边（上→下）、下边（右→左）、左边（下→上）
func PerimeterPoint(t, width, height float64) cp.Vector {
	var p cp.Vector
	switch {
	case t < width:
		p = cp.Vector{X: t, Y: 0}
	case t < width+height:
		p = cp.Vector{X: width, Y: t - width}
	case t < 2*width+height:
		p = cp.Vector{X: width - (t - width - height), Y: height}
	default:
		p = cp.Vector{X: 0, Y: height - (t - 2*width - height)}
	}
	return p.Sub(cp.Vector{X: width / 2, Y: height / 2})
}

func (s *DirectorSystem) enemyCount() int {
	count := 0
	for _, id := range ecs.GetEntitiesWith1[*components.EnemyComponent](s.entityManager) {
		if s.entityManager.IsAlive(id) {
			count++
		}
	}
	return count
}

// Budget 返回下一次（或当前）回合的总预算
func (s *DirectorSystem) Budget() int {
	return s.budget
}

// Spawning 本回合是否仍在生成
func (s *DirectorSystem) Spawning() bool {
	return s.spawning
}

// Spawned 返回累计生成的敌人数量
func (s *DirectorSystem) Spawned() int {
	return s.spawned
}
