package entities

import (
	"math"
	"testing"

	"github.com/decker502/wavefront/pkg/components"
	"github.com/decker502/wavefront/pkg/config"
	"github.com/decker502/wavefront/pkg/ecs"
	"github.com/decker502/wavefront/pkg/interference"
	"github.com/decker502/wavefront/pkg/types"
	"github.com/jakecoffman/cp"
)

func TestNewInterferenceVolume(t *testing.T) {
	tuning := config.DefaultTuningConfig().Volume

	tests := []struct {
		name       string
		event      interference.Event
		wantPos    cp.Vector
		wantRadius float64
		wantDir    cp.Vector
	}{
		{
			name: "fresh positive event is tight and led forward",
			event: interference.Event{
				Kind: types.InterferencePositive, Position: cp.Vector{X: 50}, Direction: cp.Vector{Y: 1}, Strength: 1,
			},
			wantPos:    cp.Vector{X: 50, Y: tuning.LeadOffset},
			wantRadius: tuning.MinRadius,
			wantDir:    cp.Vector{Y: 1},
		},
		{
			name: "decayed destructive event is broad",
			event: interference.Event{
				Kind: types.InterferenceDestructive, Position: cp.Vector{}, Direction: cp.Vector{X: -1}, Strength: 0.25,
			},
			wantPos:    cp.Vector{X: -tuning.LeadOffset},
			wantRadius: tuning.BaseRadius.Destructive * 0.75,
			wantDir:    cp.Vector{X: -1},
		},
		{
			name: "NaN direction is sanitised and not led",
			event: interference.Event{
				Kind: types.InterferenceNegative, Position: cp.Vector{X: 3, Y: 4}, Direction: cp.Vector{X: math.NaN()}, Strength: 0.5,
			},
			wantPos:    cp.Vector{X: 3, Y: 4},
			wantRadius: tuning.BaseRadius.Negative * 0.5,
			wantDir:    cp.Vector{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			em := ecs.NewEntityManager()
			id := NewInterferenceVolume(em, tt.event, tuning)

			pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
			if pos.Vector != tt.wantPos {
				t.Errorf("position = %v, want %v", pos.Vector, tt.wantPos)
			}

			volume, ok := ecs.GetComponent[*components.InterferenceVolumeComponent](em, id)
			if !ok {
				t.Fatal("volume entity should have InterferenceVolumeComponent")
			}
			if volume.Kind != tt.event.Kind {
				t.Errorf("kind = %v, want %v", volume.Kind, tt.event.Kind)
			}
			if math.Abs(volume.Radius-tt.wantRadius) > 1e-9 {
				t.Errorf("radius = %f, want %f", volume.Radius, tt.wantRadius)
			}
			if volume.Direction != tt.wantDir {
				t.Errorf("direction = %v, want %v", volume.Direction, tt.wantDir)
			}

			body, ok := ecs.GetComponent[*components.PhysicsBodyComponent](em, id)
			if !ok || body.Role != components.BodyRoleVolume || body.Radius != volume.Radius {
				t.Errorf("volume body should be a sensor circle matching the volume radius")
			}

			lifetime, ok := ecs.GetComponent[*components.LifetimeComponent](em, id)
			if !ok || lifetime.MaxLifetime != tuning.Lifespan {
				t.Errorf("volume should live for %.2fs", tuning.Lifespan)
			}
		})
	}
}
