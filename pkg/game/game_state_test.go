package game

import "testing"

func TestGameState_Lifecycle(t *testing.T) {
	gs := NewGameState(42)

	if gs.IsOver() {
		t.Fatal("new game should not be over")
	}
	if gs.RoundsSurvived() != 0 {
		t.Errorf("expected 0 rounds survived, got %d", gs.RoundsSurvived())
	}

	gs.NextRound()
	gs.NextRound()
	gs.NextRound()
	if gs.Round != 3 {
		t.Errorf("expected round 3, got %d", gs.Round)
	}

	gs.EndGame()
	gs.EndGame()
	if !gs.IsOver() {
		t.Error("game should be over")
	}
	if gs.RoundsSurvived() != 2 {
		t.Errorf("dying in round 3 survives 2 rounds, got %d", gs.RoundsSurvived())
	}
}

func TestGamePhase_String(t *testing.T) {
	tests := []struct {
		phase GamePhase
		want  string
	}{
		{PhasePlaying, "playing"},
		{PhaseGameOver, "game_over"},
		{GamePhase(9), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.phase.String(); got != tt.want {
			t.Errorf("GamePhase(%d).String() = %q, want %q", tt.phase, got, tt.want)
		}
	}
}
