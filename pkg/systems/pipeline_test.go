package systems

import (
	"math"
	"testing"

	"github.com/decker502/wavefront/pkg/components"
	"github.com/decker502/wavefront/pkg/ecs"
	"github.com/decker502/wavefront/pkg/entities"
	"github.com/decker502/wavefront/pkg/game"
	"github.com/decker502/wavefront/pkg/interference"
	"github.com/decker502/wavefront/pkg/types"
	"github.com/jakecoffman/cp"
)

func TestPipelineRunsSession(t *testing.T) {
	em := ecs.NewEntityManager()
	cfg := testConfig()
	state := game.NewGameState(3)
	input := &ScriptedInput{}
	input.Queue(types.PolarityPositive)
	entities.NewPlayer(em, cfg.Player, cp.Vector{})

	pipeline := NewPipeline(em, cfg, state, input)
	for i := 0; i < 300; i++ {
		pipeline.Tick(testDT)
	}

	stats := pipeline.Stats()
	if stats.Ticks != 300 {
		t.Errorf("Expected 300 ticks, got %d", stats.Ticks)
	}
	if math.Abs(state.Elapsed-5) > 1e-6 {
		t.Errorf("Expected 5s elapsed, got %f", state.Elapsed)
	}
	if stats.WavesEmitted != 1 {
		t.Errorf("Expected 1 emission, got %d", stats.WavesEmitted)
	}
	if stats.EnemiesSpawned == 0 {
		t.Error("director should have spawned enemies within 5s")
	}

	frame := pipeline.Frame()
	if len(frame.Interference) != 0 || len(frame.Collisions) != 0 || len(frame.HealthChanges) != 0 {
		t.Error("no events may cross the tick boundary")
	}

	for _, id := range ecs.GetEntitiesWith1[*components.PositionComponent](em) {
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		if math.IsNaN(pos.X) || math.IsNaN(pos.Y) {
			t.Fatalf("entity %d has NaN position", id)
		}
	}
}

func TestPipelineMaterializesInterference(t *testing.T) {
	em := ecs.NewEntityManager()
	cfg := testConfig()
	pipeline := NewPipeline(em, cfg, game.NewGameState(1), nil)

	addWave(em, cp.Vector{X: -50}, types.PolarityPositive, 40)
	addWave(em, cp.Vector{X: 50}, types.PolarityPositive, 40)

	for i := 0; i < 30; i++ {
		pipeline.Tick(testDT)
	}

	stats := pipeline.Stats()
	if stats.InterferenceByKind[types.InterferencePositive] == 0 {
		t.Error("Expected positive interference between same-polarity waves")
	}
	if stats.VolumesSpawned != stats.Interference() {
		t.Errorf("every event should become a volume: %d events, %d volumes", stats.Interference(), stats.VolumesSpawned)
	}
}

func TestPipelineStopsAtGameOver(t *testing.T) {
	em := ecs.NewEntityManager()
	cfg := testConfig()
	state := game.NewGameState(1)
	pipeline := NewPipeline(em, cfg, state, nil)

	player := entities.NewPlayer(em, cfg.Player, cp.Vector{})
	health, _ := ecs.GetComponent[*components.HealthComponent](em, player)
	health.Current = 1
	entities.NewEnemyProjectile(em, 0, cp.Vector{}, cp.Vector{}, components.ShooterComponent{
		ProjectileLifespan: 5,
		ProjectileDamage:   7,
		ProjectileSize:     8,
	})

	pipeline.Tick(testDT)
	if !state.IsOver() {
		t.Fatal("projectile hit at 1 HP should end the game")
	}

	ticks := pipeline.Stats().Ticks
	pipeline.Tick(testDT)
	if pipeline.Stats().Ticks != ticks {
		t.Error("pipeline should not advance after game over")
	}
}

// newResolverOrderScene 在原点放置一个敌人，叠加正干涉体积和正极性波带；
// withDestructive 为 true 时再叠加一个相消体积。所有接触都在同一个 Tick 内开始。
func newResolverOrderScene(t *testing.T, withDestructive bool) (*ecs.EntityManager, *Pipeline, ecs.EntityID) {
	t.Helper()
	em := ecs.NewEntityManager()
	cfg := testConfig()
	pipeline := NewPipeline(em, cfg, game.NewGameState(1), nil)

	enemy := newTestEnemy(t, em, cp.Vector{})

	// 波前推进一步后敌人正好落在波带内
	addWave(em, cp.Vector{X: -100}, types.PolarityPositive, 100)

	entities.NewInterferenceVolume(em, interference.Event{
		Kind:      types.InterferencePositive,
		Direction: cp.Vector{X: 1},
		Strength:  1,
	}, cfg.Volume)
	if withDestructive {
		entities.NewInterferenceVolume(em, interference.Event{
			Kind:     types.InterferenceDestructive,
			Strength: 0.5,
		}, cfg.Volume)
	}

	return em, pipeline, enemy
}

// TestPipelineDestructiveResolvesFirst 相消干涉先于其他效果结算：
// 同一 Tick 内同时接触相消体积和正干涉体积的敌人不受伤害也不被击退
func TestPipelineDestructiveResolvesFirst(t *testing.T) {
	em, pipeline, enemy := newResolverOrderScene(t, true)

	pipeline.Tick(testDT)

	if !ecs.HasComponent[*components.NoEffectComponent](em, enemy) {
		t.Fatal("enemy inside a destructive volume should carry NoEffectComponent")
	}
	health := mustHealth(t, em, enemy)
	if health.Current != health.Max {
		t.Errorf("suppressed enemy should take no damage, health %f/%f", health.Current, health.Max)
	}
	stats := pipeline.Stats()
	if stats.PositiveHits != 0 || stats.Knockbacks != 0 {
		t.Errorf("Expected no positive hits or knockbacks, got %d hits, %d knockbacks", stats.PositiveHits, stats.Knockbacks)
	}
	vel, _ := ecs.GetComponent[*components.VelocityComponent](em, enemy)
	if vel.X != 0 || vel.Y != 0 {
		t.Errorf("suppressed enemy should not be pushed, velocity %v", vel.Vector)
	}
}

// TestPipelineResolvesWithoutDestructive 对照：去掉相消体积后同样的布置会造成伤害和击退
func TestPipelineResolvesWithoutDestructive(t *testing.T) {
	em, pipeline, enemy := newResolverOrderScene(t, false)

	pipeline.Tick(testDT)

	if ecs.HasComponent[*components.NoEffectComponent](em, enemy) {
		t.Error("enemy outside destructive volumes should not carry NoEffectComponent")
	}
	health := mustHealth(t, em, enemy)
	if health.Current >= health.Max {
		t.Errorf("Expected damage from positive interference, health %f/%f", health.Current, health.Max)
	}
	stats := pipeline.Stats()
	if stats.PositiveHits != 1 || stats.Knockbacks != 1 {
		t.Errorf("Expected 1 hit and 1 knockback, got %d hits, %d knockbacks", stats.PositiveHits, stats.Knockbacks)
	}
}
