package systems

import (
	"testing"

	"github.com/decker502/wavefront/pkg/components"
	"github.com/decker502/wavefront/pkg/ecs"
	"github.com/decker502/wavefront/pkg/entities"
	"github.com/jakecoffman/cp"
)

func TestContactDamageProjectileOnce(t *testing.T) {
	em := ecs.NewEntityManager()
	frame := NewFrame()
	cfg := testConfig()
	system := NewContactDamageSystem(em, frame)

	player := entities.NewPlayer(em, cfg.Player, cp.Vector{})
	projectile := entities.NewEnemyProjectile(em, 0, cp.Vector{}, cp.Vector{}, components.ShooterComponent{
		ProjectileLifespan: 5,
		ProjectileDamage:   7,
		ProjectileSize:     8,
	})

	frame.PushCollision(projectile, player, CollisionStarted)
	system.Update(testDT)

	if len(frame.HealthChanges) != 1 || frame.HealthChanges[0].Amount != -7 {
		t.Fatalf("Expected a single -7 change, got %+v", frame.HealthChanges)
	}
	if em.IsAlive(projectile) {
		t.Error("one-shot projectile should be destroyed on hit")
	}
}

func TestContactDamageRepeatsWhileTouching(t *testing.T) {
	em := ecs.NewEntityManager()
	frame := NewFrame()
	cfg := testConfig()
	system := NewContactDamageSystem(em, frame)

	player := entities.NewPlayer(em, cfg.Player, cp.Vector{})
	enemy := newTestEnemy(t, em, cp.Vector{})

	frame.PushCollision(player, enemy, CollisionStarted)
	system.Update(0.5)
	hits := len(frame.HealthChanges)
	frame.Reset()

	// 持续接触 1.5 秒：在间隔到期时再结算一次
	for i := 0; i < 3; i++ {
		system.Update(0.5)
		hits += len(frame.HealthChanges)
		frame.Reset()
	}
	if hits != 2 {
		t.Errorf("Expected 2 contact hits over 1.5s, got %d", hits)
	}

	// 分离后不再结算
	frame.PushCollision(enemy, player, CollisionStopped)
	system.Update(0.5)
	frame.Reset()
	for i := 0; i < 4; i++ {
		system.Update(0.5)
		if len(frame.HealthChanges) != 0 {
			t.Fatalf("no damage expected after separation, got %+v", frame.HealthChanges)
		}
	}
	if em.IsAlive(enemy) != true {
		t.Error("enemy hitbox should not be destroyed by contact")
	}
}
