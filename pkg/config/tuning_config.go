package config

import (
	"fmt"
	"os"

	"github.com/decker502/wavefront/pkg/embedded"
	"github.com/decker502/wavefront/pkg/types"
	"gopkg.in/yaml.v3"
)

// TuningConfig 游戏数值配置
//
// 包含波、干涉检测、交互体积、效果结算、玩家、敌人和导演系统的全部可调参数。
// 解析时以 DefaultTuningConfig() 为基础，YAML 中出现的字段覆盖默认值。
//
// 配置文件位置: data/tuning.yaml
type TuningConfig struct {
	Wave         WaveTuning         `yaml:"wave"`
	Interference InterferenceTuning `yaml:"interference"`
	Volume       VolumeTuning       `yaml:"volume"`
	Resolver     ResolverTuning     `yaml:"resolver"`
	Player       PlayerTuning       `yaml:"player"`
	Enemies      EnemiesTuning      `yaml:"enemies"`
	Director     DirectorTuning     `yaml:"director"`
}

// WaveTuning 波的传播参数
type WaveTuning struct {
	// Speed 扩张速度（像素/秒）
	Speed float64 `yaml:"speed"`
	// MaxRadius 最大半径（像素），到达后波被销毁
	MaxRadius float64 `yaml:"maxRadius"`
	// MinStrokeWidth / MaxStrokeWidth 描边宽度范围，也是区域伤害带宽范围
	MinStrokeWidth float64 `yaml:"minStrokeWidth"`
	MaxStrokeWidth float64 `yaml:"maxStrokeWidth"`
	// DeferredDelay 反极性跟随波的延迟（秒）
	DeferredDelay float64 `yaml:"deferredDelay"`
}

// InterferenceTuning 干涉检测参数
type InterferenceTuning struct {
	// Epsilon 求传播方向时的半径回退步长
	Epsilon float64 `yaml:"epsilon"`
	// MergeDistance 两交点距离小于该值时合并为一个事件
	MergeDistance float64 `yaml:"mergeDistance"`
}

// VolumeTuning 交互体积参数
type VolumeTuning struct {
	// Lifespan 体积寿命（秒）
	Lifespan float64 `yaml:"lifespan"`
	// LeadOffset 沿传播方向的前移距离（像素）
	LeadOffset float64 `yaml:"leadOffset"`
	// MinRadius 碰撞半径下限（像素）
	MinRadius float64 `yaml:"minRadius"`
	// BaseRadius 各干涉类型的基础半径（像素）
	BaseRadius KindRadius `yaml:"baseRadius"`
	// MinStrokeWidth / MaxStrokeWidth 描边宽度范围
	MinStrokeWidth float64 `yaml:"minStrokeWidth"`
	MaxStrokeWidth float64 `yaml:"maxStrokeWidth"`
}

// KindRadius 按干涉类型区分的半径
type KindRadius struct {
	Positive    float64 `yaml:"positive"`
	Negative    float64 `yaml:"negative"`
	Destructive float64 `yaml:"destructive"`
}

// ResolverTuning 效果结算参数
type ResolverTuning struct {
	// PositiveDamage 正干涉的满强度伤害
	PositiveDamage float64 `yaml:"positiveDamage"`
	// GracePeriod 受击保护窗口（秒）
	GracePeriod float64 `yaml:"gracePeriod"`
	// Knockback 满强度击退速度（像素/秒）
	Knockback float64 `yaml:"knockback"`
	// Hitstun 击退后的硬直时间（秒）
	Hitstun float64 `yaml:"hitstun"`
	// AreaDamagePerSecond 正波波前带内的持续伤害
	AreaDamagePerSecond float64 `yaml:"areaDamagePerSecond"`
	// AreaPushPerSecond 负波波前带内对敌方子弹的向外加速度
	AreaPushPerSecond float64 `yaml:"areaPushPerSecond"`
}

// PlayerTuning 玩家参数
type PlayerTuning struct {
	Speed  float64 `yaml:"speed"`
	Health float64 `yaml:"health"`
	Radius float64 `yaml:"radius"`
}

// EnemiesTuning 三种敌人原型的参数
type EnemiesTuning struct {
	Normie EnemyTuning `yaml:"normie"`
	Layer  EnemyTuning `yaml:"layer"`
	Ranger EnemyTuning `yaml:"ranger"`
}

// EnemyTuning 单个敌人原型的参数
type EnemyTuning struct {
	Speed         float64 `yaml:"speed"`
	Health        float64 `yaml:"health"`
	Radius        float64 `yaml:"radius"`
	Mass          float64 `yaml:"mass"`
	ContactDamage float64 `yaml:"contactDamage"`

	// Cost 生成消耗的预算
	Cost int `yaml:"cost"`
	// SpawnDelay 生成该原型后到下一次生成的间隔（秒）
	SpawnDelay float64 `yaml:"spawnDelay"`
	// RequiredBudget 回合总预算超过该值时才可能生成
	RequiredBudget int `yaml:"requiredBudget"`

	// Shooter 射击参数，Cooldown 为 0 表示近战型
	Shooter ShooterTuning `yaml:"shooter"`
}

// ShooterTuning 远程敌人射击参数
type ShooterTuning struct {
	Cooldown           float64 `yaml:"cooldown"`
	ProjectileSpeed    float64 `yaml:"projectileSpeed"`
	ProjectileLifespan float64 `yaml:"projectileLifespan"`
	ProjectileDamage   float64 `yaml:"projectileDamage"`
	ProjectileSize     float64 `yaml:"projectileSize"`
}

// DirectorTuning 回合与生成参数
type DirectorTuning struct {
	// StartBudget 第一回合预算
	StartBudget int `yaml:"startBudget"`
	// BudgetGrowthNumerator / BudgetGrowthDenominator 每回合预算 = 上回合预算 * 分子 / 分母（整数）
	BudgetGrowthNumerator   int `yaml:"budgetGrowthNumerator"`
	BudgetGrowthDenominator int `yaml:"budgetGrowthDenominator"`
	// RoundDelay 回合间隔（秒）
	RoundDelay float64 `yaml:"roundDelay"`
	// RoundHealPerSecond 回合间隔期间玩家每秒回复的生命值
	RoundHealPerSecond float64 `yaml:"roundHealPerSecond"`
	// FirstSpawnDelay 回合开始后首个敌人的生成延迟（秒）
	FirstSpawnDelay float64 `yaml:"firstSpawnDelay"`
	// SpawnMargin 生成点在视口边界外的距离（像素）
	SpawnMargin float64 `yaml:"spawnMargin"`
}

// DefaultTuningConfig 返回内置的默认数值
func DefaultTuningConfig() *TuningConfig {
	return &TuningConfig{
		Wave: WaveTuning{
			Speed:          100,
			MaxRadius:      400,
			MinStrokeWidth: 2,
			MaxStrokeWidth: 12,
			DeferredDelay:  0.5,
		},
		Interference: InterferenceTuning{
			Epsilon:       0.1,
			MergeDistance: 5,
		},
		Volume: VolumeTuning{
			Lifespan:   0.08,
			LeadOffset: 4,
			MinRadius:  6,
			BaseRadius: KindRadius{
				Positive:    40,
				Negative:    40,
				Destructive: 60,
			},
			MinStrokeWidth: 1,
			MaxStrokeWidth: 4,
		},
		Resolver: ResolverTuning{
			PositiveDamage:      10,
			GracePeriod:         0.25,
			Knockback:           400,
			Hitstun:             0.3,
			AreaDamagePerSecond: 5,
			AreaPushPerSecond:   300,
		},
		Player: PlayerTuning{
			Speed:  200,
			Health: 100,
			Radius: 20,
		},
		Enemies: EnemiesTuning{
			Normie: EnemyTuning{
				Speed: 80, Health: 30, Radius: 20, Mass: 1, ContactDamage: 10,
				Cost: 1, SpawnDelay: 1, RequiredBudget: 0,
			},
			Layer: EnemyTuning{
				Speed: 40, Health: 20, Radius: 20, Mass: 2, ContactDamage: 0.1,
				Cost: 2, SpawnDelay: 2, RequiredBudget: 6,
				Shooter: ShooterTuning{
					Cooldown: 2, ProjectileSpeed: 4, ProjectileLifespan: 60,
					ProjectileDamage: 10, ProjectileSize: 8,
				},
			},
			Ranger: EnemyTuning{
				Speed: 30, Health: 10, Radius: 20, Mass: 1, ContactDamage: 0.1,
				Cost: 5, SpawnDelay: 2, RequiredBudget: 10,
				Shooter: ShooterTuning{
					Cooldown: 1, ProjectileSpeed: 400, ProjectileLifespan: 5,
					ProjectileDamage: 7, ProjectileSize: 8,
				},
			},
		},
		Director: DirectorTuning{
			StartBudget:             5,
			BudgetGrowthNumerator:   7,
			BudgetGrowthDenominator: 5,
			RoundDelay:              3,
			RoundHealPerSecond:      15,
			FirstSpawnDelay:         0.5,
			SpawnMargin:             20,
		},
	}
}

// LoadTuningConfig 加载数值配置
//
// 参数:
//   - path: 配置文件路径（如 "data/tuning.yaml"）
//
// 返回:
//   - *TuningConfig: 合并默认值后的配置
//   - error: 读取、解析或校验失败时返回错误
func LoadTuningConfig(path string) (*TuningConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read tuning config: %w", err)
	}
	return ParseTuningConfig(data)
}

// TuningConfigPath 嵌入的默认数值配置路径
const TuningConfigPath = "data/tuning.yaml"

// LoadEmbeddedTuningConfig 从嵌入资源加载数值配置
func LoadEmbeddedTuningConfig() (*TuningConfig, error) {
	data, err := embedded.ReadFile(TuningConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded tuning config %s: %w", TuningConfigPath, err)
	}
	return ParseTuningConfig(data)
}

// ParseTuningConfig 从 YAML 字节解析数值配置
// 供嵌入资源和测试使用，未出现的字段保留默认值
func ParseTuningConfig(data []byte) (*TuningConfig, error) {
	config := DefaultTuningConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse tuning config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid tuning config: %w", err)
	}

	return config, nil
}

// Validate 验证配置有效性
//
// 返回:
//   - error: 第一个不合法的字段，成功返回 nil
func (c *TuningConfig) Validate() error {
	if c.Wave.Speed <= 0 {
		return fmt.Errorf("wave speed must be positive, got %.2f", c.Wave.Speed)
	}
	if c.Wave.MaxRadius <= 0 {
		return fmt.Errorf("wave maxRadius must be positive, got %.2f", c.Wave.MaxRadius)
	}
	if c.Wave.MinStrokeWidth < 0 || c.Wave.MinStrokeWidth > c.Wave.MaxStrokeWidth {
		return fmt.Errorf("wave stroke width range invalid: min(%.2f) max(%.2f)",
			c.Wave.MinStrokeWidth, c.Wave.MaxStrokeWidth)
	}
	if c.Wave.DeferredDelay < 0 {
		return fmt.Errorf("wave deferredDelay must be >= 0, got %.2f", c.Wave.DeferredDelay)
	}

	if c.Interference.Epsilon <= 0 {
		return fmt.Errorf("interference epsilon must be positive, got %f", c.Interference.Epsilon)
	}
	if c.Interference.MergeDistance <= 0 {
		return fmt.Errorf("interference mergeDistance must be positive, got %.2f", c.Interference.MergeDistance)
	}

	if c.Volume.Lifespan <= 0 {
		return fmt.Errorf("volume lifespan must be positive, got %.3f", c.Volume.Lifespan)
	}
	if c.Volume.MinRadius <= 0 {
		return fmt.Errorf("volume minRadius must be positive, got %.2f", c.Volume.MinRadius)
	}
	for name, r := range map[string]float64{
		"positive":    c.Volume.BaseRadius.Positive,
		"negative":    c.Volume.BaseRadius.Negative,
		"destructive": c.Volume.BaseRadius.Destructive,
	} {
		if r < 0 {
			return fmt.Errorf("volume baseRadius for '%s' must be >= 0, got %.2f", name, r)
		}
	}
	if c.Volume.MinStrokeWidth < 0 || c.Volume.MinStrokeWidth > c.Volume.MaxStrokeWidth {
		return fmt.Errorf("volume stroke width range invalid: min(%.2f) max(%.2f)",
			c.Volume.MinStrokeWidth, c.Volume.MaxStrokeWidth)
	}

	if c.Resolver.GracePeriod < 0 || c.Resolver.Hitstun < 0 {
		return fmt.Errorf("resolver timers must be >= 0: gracePeriod(%.2f) hitstun(%.2f)",
			c.Resolver.GracePeriod, c.Resolver.Hitstun)
	}

	if c.Player.Speed <= 0 || c.Player.Health <= 0 || c.Player.Radius <= 0 {
		return fmt.Errorf("player speed, health and radius must be positive")
	}

	for _, enemyType := range types.AllEnemyTypes {
		enemy := c.Enemies.Get(enemyType)
		if enemy.Health <= 0 || enemy.Radius <= 0 || enemy.Mass <= 0 {
			return fmt.Errorf("enemy '%s' health, radius and mass must be positive", enemyType)
		}
		if enemy.Cost <= 0 {
			return fmt.Errorf("enemy '%s' cost must be positive, got %d", enemyType, enemy.Cost)
		}
		if enemy.SpawnDelay <= 0 {
			return fmt.Errorf("enemy '%s' spawnDelay must be positive, got %.2f", enemyType, enemy.SpawnDelay)
		}
	}

	if c.Director.StartBudget <= 0 {
		return fmt.Errorf("director startBudget must be positive, got %d", c.Director.StartBudget)
	}
	if c.Director.BudgetGrowthDenominator <= 0 ||
		c.Director.BudgetGrowthNumerator < c.Director.BudgetGrowthDenominator {
		return fmt.Errorf("director budget growth %d/%d must be >= 1",
			c.Director.BudgetGrowthNumerator, c.Director.BudgetGrowthDenominator)
	}
	if c.Director.RoundDelay <= 0 {
		return fmt.Errorf("director roundDelay must be positive, got %.2f", c.Director.RoundDelay)
	}

	return nil
}

// Get 返回指定原型的参数
func (e EnemiesTuning) Get(enemyType types.EnemyType) EnemyTuning {
	switch enemyType {
	case types.EnemyLayer:
		return e.Layer
	case types.EnemyRanger:
		return e.Ranger
	default:
		return e.Normie
	}
}

// BaseRadiusFor 返回指定干涉类型的体积基础半径
func (v VolumeTuning) BaseRadiusFor(kind types.InterferenceKind) float64 {
	switch kind {
	case types.InterferenceNegative:
		return v.BaseRadius.Negative
	case types.InterferenceDestructive:
		return v.BaseRadius.Destructive
	default:
		return v.BaseRadius.Positive
	}
}

// IsShooter 判断该原型是否会射击
func (e EnemyTuning) IsShooter() bool {
	return e.Shooter.Cooldown > 0
}
