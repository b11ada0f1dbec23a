package game

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// 设置在 gdata 中的存储位置
const (
	settingsObject   = "settings"
	settingsProperty = "global"
)

// GameSettings 玩家偏好设置，以 YAML 形式保存
type GameSettings struct {
	Fullscreen bool `yaml:"fullscreen"` // 启动时进入全屏
	ShowStats  bool `yaml:"showStats"`  // 显示干涉统计面板（F3 切换）
}

// DefaultSettings 返回默认设置
func DefaultSettings() *GameSettings {
	return &GameSettings{ShowStats: true}
}

// SettingsManager 偏好设置的内存副本及其持久化
//
// 修改方法只改内存，调用方决定何时 Save。
type SettingsManager struct {
	store    propStore
	settings *GameSettings
}

// NewSettingsManager 创建设置管理器并尝试加载已保存的设置
//
// 参数：
//   - gdataManager: 可为 nil，此时设置只存在于内存中
//
// 返回：
//   - *SettingsManager: 加载失败时持有默认设置
func NewSettingsManager(gdataManager *gdata.Manager) *SettingsManager {
	sm := &SettingsManager{
		store:    propStore{manager: gdataManager, object: settingsObject, property: settingsProperty},
		settings: DefaultSettings(),
	}
	if err := sm.Load(); err != nil {
		log.Printf("[Settings] Warning: %v (using defaults)", err)
	}
	return sm
}

// Load 重新读取已保存的设置
// 没有存档时恢复默认值；出错时同样恢复默认值并返回错误
func (sm *SettingsManager) Load() error {
	sm.settings = DefaultSettings()

	data, ok, err := sm.store.read()
	if err != nil || !ok {
		return err
	}

	loaded := DefaultSettings()
	if err := yaml.Unmarshal(data, loaded); err != nil {
		return fmt.Errorf("decode settings: %w", err)
	}
	sm.settings = loaded
	log.Printf("[Settings] Loaded (fullscreen=%v, stats=%v)", loaded.Fullscreen, loaded.ShowStats)
	return nil
}

// Save 写入当前设置
func (sm *SettingsManager) Save() error {
	if !sm.store.persistent() {
		return nil
	}
	data, err := yaml.Marshal(sm.settings)
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	return sm.store.write(data)
}

// GetSettings 返回当前设置（指针，调用方不应长期持有）
func (sm *SettingsManager) GetSettings() *GameSettings {
	return sm.settings
}

func (sm *SettingsManager) SetFullscreen(enabled bool) {
	sm.settings.Fullscreen = enabled
}

// ToggleStats 切换统计面板并返回新状态
func (sm *SettingsManager) ToggleStats() bool {
	sm.settings.ShowStats = !sm.settings.ShowStats
	return sm.settings.ShowStats
}
