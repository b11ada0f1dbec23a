package systems

import (
	"github.com/decker502/wavefront/pkg/config"
	"github.com/decker502/wavefront/pkg/ecs"
	"github.com/decker502/wavefront/pkg/game"
	"github.com/decker502/wavefront/pkg/interference"
)

// updater 单个仿真阶段
type updater interface {
	Update(deltaTime float64)
}

// Pipeline 按固定顺序驱动一局仿真的所有系统
//
// 每个 Tick 的阶段顺序：
//  1. 状态计时（无敌、硬直、射击冷却）
//  2. 玩家输入与波的发射
//  3. 波前推进、延迟波生成，随后清理已销毁实体
//  4. 干涉检测 → 5. 交互体积生成
//  6. 敌人追击与射击
//  7. 物理步进，收集接触事件
//  8. 相消 → 正干涉 → 负干涉 → 区域伤害 → 接触伤害
//  9. 导演（回合间隔治疗、生成敌人）
//  10. 生命值结算
//  11. 寿命
//  12. 清空帧队列并清理实体，任何事件都不会跨越 Tick 边界
//
// 单线程，不持有任何全局状态；多个 Pipeline 可以在不同 goroutine 中并行运行。
type Pipeline struct {
	entityManager *ecs.EntityManager
	state         *game.GameState
	frame         *Frame

	statusTimer  *StatusTimerSystem
	player       *PlayerSystem
	waves        *WaveAdvancementSystem
	deferred     *DeferredWaveSystem
	detection    *InterferenceDetectionSystem
	materialize  *InterferenceMaterializeSystem
	movement     *EnemyMovementSystem
	shooter      *ShooterSystem
	physics      *PhysicsSystem
	destructive  *DestructiveInterferenceSystem
	positive     *PositiveInterferenceSystem
	negative     *NegativeInterferenceSystem
	areaDamage   *AreaDamageSystem
	contact      *ContactDamageSystem
	director     *DirectorSystem
	health       *HealthSystem
	lifetime     *LifetimeSystem

	ticks int
}

// NewPipeline 创建一局仿真的系统管线
//
// 参数:
//   - em: 实体管理器（玩家实体由调用方创建）
//   - cfg: 数值配置
//   - state: 本局状态，随机种子取自 state.Seed
//   - input: 玩家输入，nil 表示无输入
func NewPipeline(em *ecs.EntityManager, cfg *config.TuningConfig, state *game.GameState, input InputSource) *Pipeline {
	frame := NewFrame()
	detector := interference.NewDetector(cfg.Interference.Epsilon, cfg.Interference.MergeDistance)

	return &Pipeline{
		entityManager: em,
		state:         state,
		frame:         frame,

		statusTimer: NewStatusTimerSystem(em),
		player:      NewPlayerSystem(em, input, cfg.Wave),
		waves:       NewWaveAdvancementSystem(em, cfg.Wave),
		deferred:    NewDeferredWaveSystem(em, cfg.Wave),
		detection:   NewInterferenceDetectionSystem(em, detector, frame),
		materialize: NewInterferenceMaterializeSystem(em, cfg.Volume, frame),
		movement:    NewEnemyMovementSystem(em),
		shooter:     NewShooterSystem(em),
		physics:     NewPhysicsSystem(em, frame),
		destructive: NewDestructiveInterferenceSystem(em, frame),
		positive:    NewPositiveInterferenceSystem(em, cfg.Resolver, frame),
		negative:    NewNegativeInterferenceSystem(em, frame),
		areaDamage:  NewAreaDamageSystem(em, cfg.Resolver, frame),
		contact:     NewContactDamageSystem(em, frame),
		director:    NewDirectorSystem(em, cfg, state, frame, state.Seed),
		health:      NewHealthSystem(em, frame, state),
		lifetime:    NewLifetimeSystem(em),
	}
}

// Tick 推进一个固定步长
// 本局结束后不再推进
func (p *Pipeline) Tick(deltaTime float64) {
	if p.state.IsOver() {
		return
	}

	p.run(deltaTime, p.statusTimer, p.player, p.waves, p.deferred)
	p.entityManager.RemoveMarkedEntities()

	p.run(deltaTime,
		p.detection,
		p.materialize,
		p.movement,
		p.shooter,
		p.physics,
		p.destructive,
		p.positive,
		p.negative,
		p.areaDamage,
		p.contact,
		p.director,
		p.health,
		p.lifetime,
	)

	p.frame.Reset()
	p.entityManager.RemoveMarkedEntities()

	p.ticks++
	p.state.Elapsed += deltaTime
}

func (p *Pipeline) run(deltaTime float64, stages ...updater) {
	for _, stage := range stages {
		stage.Update(deltaTime)
	}
}

// Stats 汇总各系统的计数器
func (p *Pipeline) Stats() Stats {
	return Stats{
		Ticks:                  p.ticks,
		WavesEmitted:           p.player.Emitted(),
		WavesExpired:           p.waves.Expired(),
		InterferenceByKind:     p.detection.CountByKind(),
		VolumesSpawned:         p.materialize.Spawned(),
		PositiveHits:           p.positive.Hits(),
		Knockbacks:             p.positive.Knockbacks(),
		ProjectilesNeutralised: p.negative.Neutralised(),
		EnemiesSpawned:         p.director.Spawned(),
		EnemiesDefeated:        p.health.Defeated(),
	}
}

// Frame 返回帧队列（Tick 之间总是为空）
func (p *Pipeline) Frame() *Frame {
	return p.frame
}

// Director 返回导演系统，供 HUD 显示回合预算
func (p *Pipeline) Director() *DirectorSystem {
	return p.director
}

// Physics 返回物理系统
func (p *Pipeline) Physics() *PhysicsSystem {
	return p.physics
}
