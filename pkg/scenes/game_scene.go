package scenes

import (
	"fmt"
	"log"

	"github.com/decker502/wavefront/pkg/components"
	"github.com/decker502/wavefront/pkg/config"
	"github.com/decker502/wavefront/pkg/ecs"
	"github.com/decker502/wavefront/pkg/game"
	"github.com/decker502/wavefront/pkg/systems"
	"github.com/decker502/wavefront/pkg/types"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// GameScene 一局游戏
//
// 每个 Update 以固定步长推进一次仿真；本局结束时写入对局记录并切换到结算画面。
// Esc 放弃本局返回主菜单（不写记录）。
type GameScene struct {
	sceneManager *game.SceneManager
	records      *game.RecordStore
	settings     *game.SettingsManager

	session *systems.Session
	render  *systems.RenderSystem

	recorded bool
}

// NewGameScene 创建游戏场景
//
// 参数:
//   - sm: 场景管理器
//   - cfg: 数值配置
//   - records: 对局记录存储，可为 nil
//   - settings: 偏好设置，可为 nil
//   - seed: 导演系统随机种子
//   - input: 玩家输入
func NewGameScene(sm *game.SceneManager, cfg *config.TuningConfig, records *game.RecordStore, settings *game.SettingsManager, seed int64, input systems.InputSource) *GameScene {
	session := systems.NewSession(cfg, seed, input)
	log.Printf("[GameScene] New session, seed %d", seed)

	return &GameScene{
		sceneManager: sm,
		records:      records,
		settings:     settings,
		session:      session,
		render:       systems.NewRenderSystem(session.EntityManager),
	}
}

// Update 推进仿真并处理场景级输入
func (s *GameScene) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.sceneManager.Request(game.SceneMainMenu)
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) && s.settings != nil {
		s.settings.ToggleStats()
		if err := s.settings.Save(); err != nil {
			log.Printf("[GameScene] Warning: Failed to save settings: %v", err)
		}
	}

	s.session.Tick(deltaTime)

	if s.session.Over() && !s.recorded {
		s.saveRecord()
		s.sceneManager.Request(game.SceneGameOver)
	}
}

// saveRecord 写入本局记录，只写一次
func (s *GameScene) saveRecord() bool {
	s.recorded = true
	if s.records == nil {
		return false
	}

	record, err := s.records.Append(s.session.Record())
	if err != nil {
		log.Printf("[GameScene] Warning: Failed to save run record: %v", err)
		return false
	}
	log.Printf("[GameScene] Run %s recorded: %d rounds", record.ID, record.RoundsSurvived)
	return true
}

// SaveOnExit 窗口关闭时记录进行中的对局
func (s *GameScene) SaveOnExit() bool {
	if s.recorded || s.session.State.Elapsed == 0 {
		return true
	}
	return s.saveRecord()
}

// Draw 绘制世界和 HUD
func (s *GameScene) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)
	s.render.Draw(screen)
	s.drawHUD(screen)
}

func (s *GameScene) drawHUD(screen *ebiten.Image) {
	em := s.session.EntityManager
	state := s.session.State
	x, y := float64(config.HUDMargin), float64(config.HUDMargin)

	hp := 0.0
	if health, ok := ecs.GetComponent[*components.HealthComponent](em, s.session.Player); ok && em.IsAlive(s.session.Player) {
		hp = health.Current
	}

	drawText(screen, fmt.Sprintf("Round %d", state.Round), x, y, colorText)
	drawText(screen, fmt.Sprintf("HP %.0f", hp), x, y+lineHeight, colorText)

	director := s.session.Pipeline.Director()
	if !director.Spawning() && state.Round > 0 {
		drawText(screen, "Incoming...", x, y+2*lineHeight, colorDim)
	}

	if s.settings == nil || !s.settings.GetSettings().ShowStats {
		return
	}

	stats := s.session.Pipeline.Stats()
	lines := []string{
		fmt.Sprintf("budget     %d", director.Budget()),
		fmt.Sprintf("waves      %d", stats.WavesEmitted),
		fmt.Sprintf("positive   %d", stats.InterferenceByKind[types.InterferencePositive]),
		fmt.Sprintf("negative   %d", stats.InterferenceByKind[types.InterferenceNegative]),
		fmt.Sprintf("destruct.  %d", stats.InterferenceByKind[types.InterferenceDestructive]),
		fmt.Sprintf("hits       %d", stats.PositiveHits),
		fmt.Sprintf("neutral.   %d", stats.ProjectilesNeutralised),
		fmt.Sprintf("defeated   %d", stats.EnemiesDefeated),
		fmt.Sprintf("bodies     %d", s.session.Pipeline.Physics().BodyCount()),
	}
	statsX := float64(config.ScreenWidth) - 150
	for i, line := range lines {
		drawText(screen, line, statsX, y+float64(i)*lineHeight, colorDim)
	}
}
