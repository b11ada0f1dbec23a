package systems

import (
	"math"
	"testing"

	"github.com/decker502/wavefront/pkg/components"
	"github.com/decker502/wavefront/pkg/ecs"
	"github.com/decker502/wavefront/pkg/types"
	"github.com/jakecoffman/cp"
)

func TestPositiveHitDamageAndKnockback(t *testing.T) {
	em := ecs.NewEntityManager()
	frame := NewFrame()
	tuning := testConfig().Resolver
	system := NewPositiveInterferenceSystem(em, tuning, frame)

	enemy := newTestEnemy(t, em, cp.Vector{})
	volume := newTestVolume(em, types.InterferencePositive, cp.Vector{X: 1}, 0.5)

	frame.PushCollision(volume, enemy, CollisionStarted)
	system.Update(testDT)

	if len(frame.HealthChanges) != 1 {
		t.Fatalf("Expected 1 health change, got %d", len(frame.HealthChanges))
	}
	change := frame.HealthChanges[0]
	if change.Target != enemy || change.Amount != -tuning.PositiveDamage*0.5 {
		t.Errorf("unexpected health change %+v", change)
	}

	vel, _ := ecs.GetComponent[*components.VelocityComponent](em, enemy)
	if math.Abs(vel.X-tuning.Knockback*0.5) > 1e-9 || vel.Y != 0 {
		t.Errorf("Expected knockback (%f, 0), got %v", tuning.Knockback*0.5, vel.Vector)
	}

	hitstun, _ := ecs.GetComponent[*components.HitstunComponent](em, enemy)
	if hitstun.Remaining != tuning.Hitstun {
		t.Errorf("Expected hitstun %f, got %f", tuning.Hitstun, hitstun.Remaining)
	}
	grace, _ := ecs.GetComponent[*components.GracePeriodComponent](em, enemy)
	if grace.Remaining != tuning.GracePeriod {
		t.Errorf("Expected grace %f, got %f", tuning.GracePeriod, grace.Remaining)
	}
}

// 受击保护：0.1 秒内两次命中只结算一次伤害，但击退两次
func TestPositiveGraceIdempotence(t *testing.T) {
	em := ecs.NewEntityManager()
	frame := NewFrame()
	tuning := testConfig().Resolver
	timers := NewStatusTimerSystem(em)
	system := NewPositiveInterferenceSystem(em, tuning, frame)

	enemy := newTestEnemy(t, em, cp.Vector{})

	damage := 0
	for i := 0; i < 2; i++ {
		volume := newTestVolume(em, types.InterferencePositive, cp.Vector{Y: -1}, 1)
		frame.PushCollision(enemy, volume, CollisionStarted)
		system.Update(testDT)
		damage += len(frame.HealthChanges)
		frame.Reset()

		timers.Update(0.1)
	}

	if damage != 1 {
		t.Errorf("Expected 1 damage application, got %d", damage)
	}
	if system.Hits() != 1 {
		t.Errorf("Expected 1 hit, got %d", system.Hits())
	}
	if system.Knockbacks() != 2 {
		t.Errorf("Expected 2 knockbacks, got %d", system.Knockbacks())
	}
}

func TestPositiveSkipsImmuneEnemy(t *testing.T) {
	em := ecs.NewEntityManager()
	frame := NewFrame()
	system := NewPositiveInterferenceSystem(em, testConfig().Resolver, frame)

	enemy := newTestEnemy(t, em, cp.Vector{})
	em.AddComponent(enemy, &components.NoEffectComponent{})
	volume := newTestVolume(em, types.InterferencePositive, cp.Vector{X: 1}, 1)

	frame.PushCollision(volume, enemy, CollisionStarted)
	system.Update(testDT)

	if len(frame.HealthChanges) != 0 || system.Knockbacks() != 0 {
		t.Error("immune enemy must not be affected by positive interference")
	}
}

func TestPositiveZeroDirectionNoKnockback(t *testing.T) {
	em := ecs.NewEntityManager()
	frame := NewFrame()
	system := NewPositiveInterferenceSystem(em, testConfig().Resolver, frame)

	enemy := newTestEnemy(t, em, cp.Vector{})
	volume := newTestVolume(em, types.InterferencePositive, cp.Vector{}, 1)

	frame.PushCollision(volume, enemy, CollisionStarted)
	system.Update(testDT)

	vel, _ := ecs.GetComponent[*components.VelocityComponent](em, enemy)
	if vel.X != 0 || vel.Y != 0 {
		t.Errorf("zero direction should not knock back, got %v", vel.Vector)
	}
	if system.Hits() != 1 {
		t.Errorf("damage should still apply, got %d hits", system.Hits())
	}
}
