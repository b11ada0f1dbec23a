package systems

import (
	"math"
	"testing"

	"github.com/decker502/wavefront/pkg/components"
	"github.com/decker502/wavefront/pkg/config"
	"github.com/decker502/wavefront/pkg/ecs"
	"github.com/decker502/wavefront/pkg/entities"
	"github.com/decker502/wavefront/pkg/types"
	"github.com/jakecoffman/cp"
)

func TestPlayerSystemMovement(t *testing.T) {
	em := ecs.NewEntityManager()
	cfg := testConfig()
	input := &ScriptedInput{Move: cp.Vector{X: 1, Y: 1}}
	system := NewPlayerSystem(em, input, cfg.Wave)

	playerID := entities.NewPlayer(em, cfg.Player, cp.Vector{})
	system.Update(testDT)

	vel, _ := ecs.GetComponent[*components.VelocityComponent](em, playerID)
	// 对角移动归一化后速度不变
	if math.Abs(vel.Length()-cfg.Player.Speed) > 1e-9 {
		t.Errorf("Expected speed %f, got %f", cfg.Player.Speed, vel.Length())
	}
}

func TestPlayerSystemClampsToViewport(t *testing.T) {
	em := ecs.NewEntityManager()
	cfg := testConfig()
	system := NewPlayerSystem(em, &ScriptedInput{}, cfg.Wave)

	playerID := entities.NewPlayer(em, cfg.Player, cp.Vector{X: 10000, Y: -10000})
	system.Update(testDT)

	pos, _ := ecs.GetComponent[*components.PositionComponent](em, playerID)
	halfW, halfH := config.ViewportHalfExtents()
	if pos.X != halfW || pos.Y != -halfH {
		t.Errorf("Expected player clamped to (%f, %f), got %v", halfW, -halfH, pos.Vector)
	}
}

func TestPlayerSystemEmitsWavePair(t *testing.T) {
	em := ecs.NewEntityManager()
	cfg := testConfig()
	input := &ScriptedInput{}
	input.Queue(types.PolarityPositive)
	system := NewPlayerSystem(em, input, cfg.Wave)

	entities.NewPlayer(em, cfg.Player, cp.Vector{X: 5, Y: 5})
	system.Update(testDT)

	waves := ecs.GetEntitiesWith1[*components.WaveComponent](em)
	if len(waves) != 1 {
		t.Fatalf("Expected 1 immediate wave, got %d", len(waves))
	}
	wave, _ := ecs.GetComponent[*components.WaveComponent](em, waves[0])
	if wave.Polarity != types.PolarityPositive {
		t.Errorf("Expected positive wave, got %s", wave.Polarity)
	}

	deferred := ecs.GetEntitiesWith1[*components.DeferredWaveComponent](em)
	if len(deferred) != 1 {
		t.Fatalf("Expected 1 deferred wave, got %d", len(deferred))
	}
	d, _ := ecs.GetComponent[*components.DeferredWaveComponent](em, deferred[0])
	if d.Wave.Polarity != types.PolarityNegative {
		t.Errorf("Expected deferred wave to have opposite polarity, got %s", d.Wave.Polarity)
	}
	if d.Remaining != cfg.Wave.DeferredDelay {
		t.Errorf("Expected delay %f, got %f", cfg.Wave.DeferredDelay, d.Remaining)
	}

	// 队列已消费，下一帧不会再发射
	system.Update(testDT)
	if system.Emitted() != 1 {
		t.Errorf("Expected 1 emission, got %d", system.Emitted())
	}
}

func TestPlayerSystemWithoutPlayer(t *testing.T) {
	em := ecs.NewEntityManager()
	input := &ScriptedInput{}
	input.Queue(types.PolarityPositive)
	system := NewPlayerSystem(em, input, testConfig().Wave)

	system.Update(testDT)

	if em.EntityCount() != 0 {
		t.Errorf("no entity should be created without a player, got %d", em.EntityCount())
	}
}
