// Package app 提供游戏应用的核心包装器
//
// 该包把初始化逻辑从 main 包提取出来：加载数值配置、打开本地存储、
// 创建场景管理器并注册场景工厂。main.go 只负责解析命令行参数并启动 Ebiten。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"time"

	"github.com/decker502/wavefront/pkg/config"
	"github.com/decker502/wavefront/pkg/game"
	"github.com/decker502/wavefront/pkg/scenes"
	"github.com/decker502/wavefront/pkg/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"
)

// AppName gdata 存储使用的应用名
const AppName = "wavefront"

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// TuningPath 数值配置文件路径，为空时使用嵌入的 data/tuning.yaml
	TuningPath string
	// Seed 固定随机种子，为 0 时每局使用当前时间
	Seed int64
	// SkipMenu 跳过主菜单，直接开始一局
	SkipMenu bool
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager *game.SceneManager
	settings     *game.SettingsManager
	records      *game.RecordStore
	tuning       *config.TuningConfig
	seed         int64

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化游戏应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
// 本地存储不可用时以降级模式运行（记录和设置只保存在内存中）。
func NewApp(cfg Config) (*App, error) {
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	tuning, err := loadTuning(cfg.TuningPath)
	if err != nil {
		return nil, err
	}

	var gdataManager *gdata.Manager
	if m, err := gdata.Open(gdata.Config{AppName: AppName}); err != nil {
		log.Printf("[App] Warning: local storage unavailable: %v (records kept in memory)", err)
	} else {
		gdataManager = m
	}

	a := &App{
		sceneManager: game.NewSceneManager(),
		settings:     game.NewSettingsManager(gdataManager),
		records:      game.NewRecordStore(gdataManager),
		tuning:       tuning,
		seed:         cfg.Seed,
	}
	a.sceneManager.SetSceneFactory(a.createScene)

	if a.settings.GetSettings().Fullscreen {
		ebiten.SetFullscreen(true)
	}

	start := game.SceneMainMenu
	if cfg.SkipMenu {
		start = game.SceneGame
	}
	a.sceneManager.SwitchTo(a.createScene(start))
	log.Printf("[App] Started at %s", start)

	return a, nil
}

// loadTuning 加载数值配置
// 指定路径时读取文件，否则读取嵌入资源；嵌入资源损坏时回退到内置默认值
func loadTuning(path string) (*config.TuningConfig, error) {
	if path != "" {
		tuning, err := config.LoadTuningConfig(path)
		if err != nil {
			return nil, fmt.Errorf("数值配置加载失败: %w", err)
		}
		log.Printf("[Config] Loaded tuning from %s", path)
		return tuning, nil
	}

	tuning, err := config.LoadEmbeddedTuningConfig()
	if err != nil {
		log.Printf("[Config] Warning: %v (using defaults)", err)
		return config.DefaultTuningConfig(), nil
	}
	return tuning, nil
}

// createScene 场景工厂
func (a *App) createScene(id game.SceneID) game.Scene {
	switch id {
	case game.SceneMainMenu:
		return scenes.NewMainMenuScene(a.sceneManager, a.records)
	case game.SceneGame:
		return scenes.NewGameScene(a.sceneManager, a.tuning, a.records, a.settings, a.nextSeed(), systems.NewEbitenInput())
	case game.SceneGameOver:
		return scenes.NewGameOverScene(a.sceneManager, a.records)
	default:
		return nil
	}
}

// nextSeed 固定种子时每局相同，否则使用当前时间
func (a *App) nextSeed() int64 {
	if a.seed != 0 {
		return a.seed
	}
	return time.Now().UnixNano()
}

// Update 更新游戏逻辑
// 每个 tick 调用一次，仿真使用固定步长
func (a *App) Update() error {
	// 退出全屏后需要等待几帧才能正确设置窗口大小
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
			a.pendingWindowSizeReset = false
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		a.toggleFullscreen()
	}

	a.sceneManager.Update(config.FixedDeltaTime)
	return nil
}

func (a *App) toggleFullscreen() {
	fullscreen := !ebiten.IsFullscreen()
	ebiten.SetFullscreen(fullscreen)
	if !fullscreen {
		if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
			ebiten.RestoreWindow()
		}
		a.pendingWindowSizeReset = true
		a.windowSizeResetCountdown = 3
	}

	a.settings.SetFullscreen(fullscreen)
	if err := a.settings.Save(); err != nil {
		log.Printf("[App] Warning: Failed to save settings: %v", err)
	}
}

// Draw 绘制游戏画面
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 全屏时用黑色填充 letterbox
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

// SaveOnExit 窗口关闭时让当前场景保存进行中的对局
func (a *App) SaveOnExit() {
	if saveable, ok := a.sceneManager.GetCurrentScene().(game.Saveable); ok {
		if !saveable.SaveOnExit() {
			log.Printf("[App] Warning: Failed to save on exit")
		}
	}
}
