package systems

import (
	"testing"

	"github.com/decker502/wavefront/pkg/ecs"
	"github.com/decker502/wavefront/pkg/entities"
	"github.com/decker502/wavefront/pkg/game"
	"github.com/jakecoffman/cp"
)

func TestHealthSystemClampsHealing(t *testing.T) {
	em := ecs.NewEntityManager()
	frame := NewFrame()
	system := NewHealthSystem(em, frame, game.NewGameState(1))

	enemy := newTestEnemy(t, em, cp.Vector{})
	health := mustHealth(t, em, enemy)

	frame.RequestHealthChange(enemy, -10)
	frame.RequestHealthChange(enemy, 100)
	system.Update(testDT)

	if health.Current != health.Max {
		t.Errorf("Expected health clamped to %f, got %f", health.Max, health.Current)
	}
	if len(frame.HealthChanges) != 0 {
		t.Error("health change queue should be drained")
	}
}

func TestHealthSystemEnemyDeath(t *testing.T) {
	em := ecs.NewEntityManager()
	frame := NewFrame()
	system := NewHealthSystem(em, frame, game.NewGameState(1))

	enemy := newTestEnemy(t, em, cp.Vector{})
	health := mustHealth(t, em, enemy)

	// 恰好降到 0 即死亡，之后的请求被忽略
	frame.RequestHealthChange(enemy, -health.Max)
	frame.RequestHealthChange(enemy, -5)
	system.Update(testDT)

	if em.IsAlive(enemy) {
		t.Error("enemy at 0 HP should be destroyed")
	}
	if system.Defeated() != 1 {
		t.Errorf("Expected 1 defeated, got %d", system.Defeated())
	}
}

func TestHealthSystemPlayerDeathEndsGame(t *testing.T) {
	em := ecs.NewEntityManager()
	frame := NewFrame()
	state := game.NewGameState(1)
	system := NewHealthSystem(em, frame, state)

	player := entities.NewPlayer(em, testConfig().Player, cp.Vector{})
	frame.RequestHealthChange(player, -1000)
	system.Update(testDT)

	if !state.IsOver() {
		t.Error("player death should end the game")
	}
	if system.Defeated() != 0 {
		t.Errorf("player death must not count as a defeated enemy")
	}
}
