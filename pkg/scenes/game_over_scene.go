package scenes

import (
	"fmt"

	"github.com/decker502/wavefront/pkg/config"
	"github.com/decker502/wavefront/pkg/game"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// GameOverScene 结算画面
// 显示刚结束的一局和历史最佳；回车重新开始，Esc 返回主菜单
type GameOverScene struct {
	sceneManager *game.SceneManager
	records      *game.RecordStore
}

// NewGameOverScene 创建结算场景
func NewGameOverScene(sm *game.SceneManager, records *game.RecordStore) *GameOverScene {
	return &GameOverScene{
		sceneManager: sm,
		records:      records,
	}
}

// Update 处理重开或返回
func (s *GameOverScene) Update(deltaTime float64) {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter), inpututil.IsKeyJustPressed(ebiten.KeySpace):
		s.sceneManager.Request(game.SceneGame)
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		s.sceneManager.Request(game.SceneMainMenu)
	}
}

// Draw 绘制结算信息
func (s *GameOverScene) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	cx := float64(config.ScreenWidth) / 2
	cy := float64(config.ScreenHeight) / 3

	drawCentered(screen, "GAME OVER", cx, cy, 4, colorTitle)

	for i, line := range s.summary() {
		drawCentered(screen, line, cx, cy+90+float64(i)*lineHeight*1.5, 1.5, colorText)
	}

	drawCentered(screen, "ENTER: play again    ESC: main menu", cx, cy+260, 1, colorDim)
}

// summary 结算文字，每个元素一行
func (s *GameOverScene) summary() []string {
	if s.records == nil {
		return nil
	}

	var lines []string
	if latest, ok := s.records.Latest(); ok {
		lines = append(lines,
			fmt.Sprintf("Rounds survived: %d", latest.RoundsSurvived),
			fmt.Sprintf("Time: %.1fs  Defeated: %d  Interference: %d", latest.Duration, latest.Defeated, latest.Interference),
		)
	}
	if best, ok := s.records.Best(); ok {
		lines = append(lines, fmt.Sprintf("Best: %d rounds", best.RoundsSurvived))
	}
	return lines
}
