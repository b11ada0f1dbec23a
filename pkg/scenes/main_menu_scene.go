package scenes

import (
	"fmt"

	"github.com/decker502/wavefront/pkg/config"
	"github.com/decker502/wavefront/pkg/game"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// MainMenuScene 标题画面
// 回车、空格或鼠标左键开始新的一局
type MainMenuScene struct {
	sceneManager *game.SceneManager
	records      *game.RecordStore
}

// NewMainMenuScene 创建主菜单场景
func NewMainMenuScene(sm *game.SceneManager, records *game.RecordStore) *MainMenuScene {
	return &MainMenuScene{
		sceneManager: sm,
		records:      records,
	}
}

// Update 处理开始输入
func (s *MainMenuScene) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) ||
		inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		s.sceneManager.Request(game.SceneGame)
	}
}

// Draw 绘制标题和最佳记录
func (s *MainMenuScene) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	cx := float64(config.ScreenWidth) / 2
	cy := float64(config.ScreenHeight) / 3

	drawCentered(screen, "WAVEFRONT", cx, cy, 4, colorTitle)
	drawCentered(screen, "Left click: positive wave    Right click: negative wave", cx, cy+100, 1, colorText)
	drawCentered(screen, "WASD / arrows: move    F3: stats    F11: fullscreen", cx, cy+100+lineHeight, 1, colorText)
	drawCentered(screen, "Press ENTER to start", cx, cy+160, 2, colorText)

	if s.records == nil {
		return
	}
	if best, ok := s.records.Best(); ok {
		line := fmt.Sprintf("Best: %d rounds in %.0fs", best.RoundsSurvived, best.Duration)
		drawCentered(screen, line, cx, cy+230, 1, colorDim)
	}
}
