package systems

import (
	"math"
	"testing"

	"github.com/decker502/wavefront/pkg/components"
	"github.com/decker502/wavefront/pkg/config"
	"github.com/decker502/wavefront/pkg/ecs"
	"github.com/decker502/wavefront/pkg/entities"
	"github.com/decker502/wavefront/pkg/game"
	"github.com/decker502/wavefront/pkg/types"
	"github.com/jakecoffman/cp"
)

func TestPerimeterPoint(t *testing.T) {
	const w, h = 100.0, 60.0

	tests := []struct {
		name string
		t    float64
		want cp.Vector
	}{
		{"top left corner", 0, cp.Vector{X: -50, Y: -30}},
		{"top middle", 50, cp.Vector{X: 0, Y: -30}},
		{"top right corner", w, cp.Vector{X: 50, Y: -30}},
		{"bottom right corner", w + h, cp.Vector{X: 50, Y: 30}},
		{"bottom middle", w + h + 20, cp.Vector{X: 30, Y: 30}},
		{"bottom left corner", 2*w + h, cp.Vector{X: -50, Y: 30}},
		{"left middle", 2*w + h + 30, cp.Vector{X: -50, Y: 0}},
		{"left near top", 2*w + h + 50, cp.Vector{X: -50, Y: -20}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PerimeterPoint(tt.t, w, h)
			if math.Abs(got.X-tt.want.X) > 1e-9 || math.Abs(got.Y-tt.want.Y) > 1e-9 {
				t.Errorf("PerimeterPoint(%f) = %v, want %v", tt.t, got, tt.want)
			}
		})
	}
}

// TestPerimeterPointIsContinuous 沿周长行走时相邻点的距离不超过步长
func TestPerimeterPointIsContinuous(t *testing.T) {
	const w, h = 100.0, 60.0
	const step = 0.5

	prev := PerimeterPoint(0, w, h)
	for tt := step; tt < 2*w+2*h; tt += step {
		got := PerimeterPoint(tt, w, h)
		if d := got.Distance(prev); d > step+1e-9 {
			t.Fatalf("PerimeterPoint jumps %f at t=%f (%v -> %v)", d, tt, prev, got)
		}
		prev = got
	}

	// 走完一圈回到起点
	if d := prev.Distance(PerimeterPoint(0, w, h)); d > step+1e-9 {
		t.Errorf("Perimeter walk does not close: end %v is %f from start", prev, d)
	}
}

func newTestDirector(seed int64) (*ecs.EntityManager, *Frame, *game.GameState, *DirectorSystem) {
	em := ecs.NewEntityManager()
	frame := NewFrame()
	state := game.NewGameState(seed)
	cfg := config.DefaultTuningConfig()
	entities.NewPlayer(em, cfg.Player, cp.Vector{})
	return em, frame, state, NewDirectorSystem(em, cfg, state, frame, seed)
}

func TestDirectorRoundDelayHeals(t *testing.T) {
	_, frame, state, director := newTestDirector(1)

	director.Update(0.5)

	if len(frame.HealthChanges) != 1 {
		t.Fatalf("Expected 1 heal request during round delay, got %d", len(frame.HealthChanges))
	}
	if frame.HealthChanges[0].Amount != 15*0.5 {
		t.Errorf("Expected heal 7.5, got %f", frame.HealthChanges[0].Amount)
	}
	if state.Round != 0 {
		t.Errorf("round should not start before the delay, got %d", state.Round)
	}
}

func TestDirectorSpawnsRoundBudget(t *testing.T) {
	em, frame, state, director := newTestDirector(7)

	// 3 秒回合间隔
	for i := 0; i < 6; i++ {
		director.Update(0.5)
		frame.Reset()
	}
	if state.Round != 1 || !director.Spawning() {
		t.Fatalf("Expected round 1 spawning, got round %d spawning=%v", state.Round, director.Spawning())
	}
	if director.Spawned() != 0 {
		t.Fatalf("first spawn should wait for the spawn delay, got %d", director.Spawned())
	}

	for i := 0; i < 20; i++ {
		director.Update(0.5)
		frame.Reset()
	}

	// 预算 5 只解锁 normie（cost 1）
	if director.Spawned() != 5 {
		t.Errorf("Expected 5 spawns, got %d", director.Spawned())
	}
	if director.Spawning() {
		t.Error("round should stop spawning once the budget is spent")
	}
	if director.Budget() != 7 {
		t.Errorf("Expected next budget 5*7/5=7, got %d", director.Budget())
	}

	halfW := (float64(config.ScreenWidth) + 20) / 2
	halfH := (float64(config.ScreenHeight) + 20) / 2
	for _, id := range ecs.GetEntitiesWith2[*components.EnemyComponent, *components.PositionComponent](em) {
		enemy, _ := ecs.GetComponent[*components.EnemyComponent](em, id)
		if enemy.Type != types.EnemyNormie {
			t.Errorf("Expected only normies in round 1, got %s", enemy.Type)
		}
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		onEdge := math.Abs(math.Abs(pos.X)-halfW) < 1e-6 || math.Abs(math.Abs(pos.Y)-halfH) < 1e-6
		if !onEdge {
			t.Errorf("enemy spawned off the perimeter at %v", pos.Vector)
		}
	}

	// 场上还有敌人时不进入下一回合
	for i := 0; i < 20; i++ {
		director.Update(0.5)
		frame.Reset()
	}
	if state.Round != 1 {
		t.Errorf("next round must wait for enemies to be cleared, got round %d", state.Round)
	}
}

func TestDirectorDeterministicSeed(t *testing.T) {
	positions := func(seed int64) []cp.Vector {
		em, frame, _, director := newTestDirector(seed)
		for i := 0; i < 30; i++ {
			director.Update(0.5)
			frame.Reset()
		}
		var out []cp.Vector
		for _, id := range ecs.GetEntitiesWith2[*components.EnemyComponent, *components.PositionComponent](em) {
			pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
			out = append(out, pos.Vector)
		}
		return out
	}

	a, b := positions(99), positions(99)
	if len(a) == 0 || len(a) != len(b) {
		t.Fatalf("Expected equal non-empty spawn lists, got %d and %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("spawn %d differs: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestDirectorStopsAfterGameOver(t *testing.T) {
	_, frame, state, director := newTestDirector(1)
	state.EndGame()

	director.Update(5)

	if len(frame.HealthChanges) != 0 || state.Round != 0 {
		t.Error("director should be idle after game over")
	}
}
