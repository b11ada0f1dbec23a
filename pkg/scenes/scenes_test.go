package scenes

import (
	"strings"
	"testing"

	"github.com/decker502/wavefront/pkg/config"
	"github.com/decker502/wavefront/pkg/game"
	"github.com/decker502/wavefront/pkg/systems"
)

func newTestSceneManager(records *game.RecordStore) *game.SceneManager {
	sm := game.NewSceneManager()
	cfg := config.DefaultTuningConfig()
	sm.SetSceneFactory(func(id game.SceneID) game.Scene {
		switch id {
		case game.SceneGame:
			return NewGameScene(sm, cfg, records, nil, 1, &systems.ScriptedInput{})
		case game.SceneGameOver:
			return NewGameOverScene(sm, records)
		default:
			return NewMainMenuScene(sm, records)
		}
	})
	return sm
}

func TestGameSceneRecordsOnGameOver(t *testing.T) {
	records := game.NewRecordStore(nil)
	sm := newTestSceneManager(records)
	scene := NewGameScene(sm, config.DefaultTuningConfig(), records, nil, 7, &systems.ScriptedInput{})
	sm.SwitchTo(scene)

	for i := 0; i < 30; i++ {
		sm.Update(config.FixedDeltaTime)
	}
	scene.session.State.EndGame()
	sm.Update(config.FixedDeltaTime)

	if len(records.Records()) != 1 {
		t.Fatalf("Expected 1 record after game over, got %d", len(records.Records()))
	}
	latest, _ := records.Latest()
	if latest.Seed != 7 {
		t.Errorf("Expected seed 7 in record, got %d", latest.Seed)
	}

	// 切换在下一次 Update 生效
	sm.Update(config.FixedDeltaTime)
	if _, ok := sm.GetCurrentScene().(*GameOverScene); !ok {
		t.Errorf("Expected game over scene, got %T", sm.GetCurrentScene())
	}

	// 退出时不会重复写入
	if !scene.SaveOnExit() || len(records.Records()) != 1 {
		t.Error("SaveOnExit after game over must not add another record")
	}
}

func TestGameSceneSaveOnExit(t *testing.T) {
	records := game.NewRecordStore(nil)
	sm := newTestSceneManager(records)
	scene := NewGameScene(sm, config.DefaultTuningConfig(), records, nil, 1, &systems.ScriptedInput{})

	// 尚未开始的对局不写记录
	if !scene.SaveOnExit() || len(records.Records()) != 0 {
		t.Fatal("an unstarted session should not be recorded")
	}

	scene.Update(config.FixedDeltaTime)
	if !scene.SaveOnExit() {
		t.Error("SaveOnExit should succeed in degraded mode")
	}
	if len(records.Records()) != 1 {
		t.Errorf("Expected in-progress run to be recorded, got %d", len(records.Records()))
	}
}

func TestGameOverSummary(t *testing.T) {
	records := game.NewRecordStore(nil)
	records.Append(game.RunRecord{RoundsSurvived: 6, Duration: 80})
	records.Append(game.RunRecord{RoundsSurvived: 3, Duration: 40, Defeated: 12, Interference: 90})

	scene := NewGameOverScene(game.NewSceneManager(), records)
	lines := scene.summary()

	if len(lines) != 3 {
		t.Fatalf("Expected 3 summary lines, got %d: %v", len(lines), lines)
	}
	if lines[0] != "Rounds survived: 3" {
		t.Errorf("unexpected first line %q", lines[0])
	}
	if !strings.Contains(lines[2], "6 rounds") {
		t.Errorf("best line should show 6 rounds, got %q", lines[2])
	}
}
