package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// SceneID 场景标识
type SceneID int

const (
	// SceneMainMenu 主菜单
	SceneMainMenu SceneID = iota
	// SceneGame 游戏场景
	SceneGame
	// SceneGameOver 结算场景
	SceneGameOver
)

func (id SceneID) String() string {
	switch id {
	case SceneMainMenu:
		return "main_menu"
	case SceneGame:
		return "game"
	case SceneGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// SceneFactory 场景工厂函数类型
// 由 app 层注入，避免 game 包依赖 scenes 包
type SceneFactory func(id SceneID) Scene

// SceneManager manages the game's high-level state by controlling which scene is active.
// It ensures only one scene's Update and Draw methods are called at any given time.
//
// 场景切换请求在下一次 Update 开始时生效，当前帧的 Update/Draw 不会在中途换场景。
type SceneManager struct {
	currentScene Scene
	sceneFactory SceneFactory
	pending      Scene
}

// NewSceneManager creates and returns a new SceneManager instance.
// The manager starts with no active scene; use SwitchTo to set the initial scene.
func NewSceneManager() *SceneManager {
	return &SceneManager{}
}

// SetSceneFactory 设置场景工厂函数
func (sm *SceneManager) SetSceneFactory(factory SceneFactory) {
	sm.sceneFactory = factory
}

// SwitchTo changes the active scene immediately.
func (sm *SceneManager) SwitchTo(scene Scene) {
	sm.currentScene = scene
	sm.pending = nil
}

// GetCurrentScene 返回当前活动的场景，没有时返回 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// Request 请求切换到指定场景，在下一次 Update 时生效
func (sm *SceneManager) Request(id SceneID) {
	if sm.sceneFactory == nil {
		log.Printf("[SceneManager] 错误: SceneFactory 未设置")
		return
	}

	scene := sm.sceneFactory(id)
	if scene == nil {
		log.Printf("[SceneManager] 错误: 无法创建场景: %s", id)
		return
	}
	log.Printf("[SceneManager] 切换到场景: %s", id)
	sm.pending = scene
}

// Update updates the currently active scene.
// deltaTime is the time elapsed since the last update in seconds.
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.pending != nil {
		sm.currentScene = sm.pending
		sm.pending = nil
	}
	if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime)
	}
}

// Draw renders the currently active scene to the provided screen.
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}
