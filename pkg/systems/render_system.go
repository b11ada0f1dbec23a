package systems

import (
	"image/color"

	"github.com/decker502/wavefront/pkg/components"
	"github.com/decker502/wavefront/pkg/config"
	"github.com/decker502/wavefront/pkg/ecs"
	"github.com/decker502/wavefront/pkg/types"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// 调色板
var (
	colorPositive    = color.RGBA{R: 255, G: 170, B: 60, A: 255}
	colorNegative    = color.RGBA{R: 80, G: 170, B: 255, A: 255}
	colorDestructive = color.RGBA{R: 200, G: 90, B: 255, A: 255}
	colorPlayer      = color.RGBA{R: 240, G: 240, B: 240, A: 255}
	colorEnemy       = color.RGBA{R: 220, G: 60, B: 60, A: 255}
	colorProjectile  = color.RGBA{R: 255, G: 230, B: 90, A: 255}
	colorSuppressed  = color.RGBA{R: 120, G: 120, B: 140, A: 255}
	colorBarBack     = color.RGBA{R: 100, G: 0, B: 0, A: 255}
	colorBarFill     = color.RGBA{R: 0, G: 220, B: 0, A: 255}
)

// RenderSystem 绘制游戏世界
//
// 渲染顺序（从底到顶）：波前 → 干涉体积 → 敌方子弹 → 敌人 → 玩家 → 血条
// 世界坐标通过 config.WorldToScreen 转换，原点位于屏幕中心。
// 只读取组件，不修改任何状态。
type RenderSystem struct {
	entityManager *ecs.EntityManager
}

// NewRenderSystem 创建一个新的渲染系统
func NewRenderSystem(em *ecs.EntityManager) *RenderSystem {
	return &RenderSystem{
		entityManager: em,
	}
}

// Draw 绘制所有可见实体
func (s *RenderSystem) Draw(screen *ebiten.Image) {
	s.drawWaves(screen)
	s.drawVolumes(screen)
	s.drawProjectiles(screen)
	s.drawEnemies(screen)
	s.drawPlayer(screen)
	s.drawHealthBars(screen)
}

func (s *RenderSystem) drawWaves(screen *ebiten.Image) {
	ids := ecs.GetEntitiesWith3[*components.WaveComponent, *components.StrokeComponent, *components.PositionComponent](s.entityManager)
	for _, id := range ids {
		wave, _ := ecs.GetComponent[*components.WaveComponent](s.entityManager, id)
		stroke, _ := ecs.GetComponent[*components.StrokeComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		if wave.Radius <= 0 {
			continue
		}

		clr := colorPositive
		if wave.Polarity == types.PolarityNegative {
			clr = colorNegative
		}
		x, y := config.WorldToScreen(pos.Vector)
		vector.StrokeCircle(screen, x, y, float32(wave.Radius), float32(stroke.Width), withAlpha(clr, stroke.Opacity), true)
	}
}

func (s *RenderSystem) drawVolumes(screen *ebiten.Image) {
	ids := ecs.GetEntitiesWith2[*components.InterferenceVolumeComponent, *components.PositionComponent](s.entityManager)
	for _, id := range ids {
		volume, _ := ecs.GetComponent[*components.InterferenceVolumeComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)

		x, y := config.WorldToScreen(pos.Vector)
		vector.StrokeCircle(screen, x, y, float32(volume.Radius), float32(volume.StrokeWidth), volumeColor(volume.Kind), true)
	}
}

func (s *RenderSystem) drawProjectiles(screen *ebiten.Image) {
	ids := ecs.GetEntitiesWith3[*components.ProjectileComponent, *components.PhysicsBodyComponent, *components.PositionComponent](s.entityManager)
	for _, id := range ids {
		body, _ := ecs.GetComponent[*components.PhysicsBodyComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)

		x, y := config.WorldToScreen(pos.Vector)
		vector.DrawFilledCircle(screen, x, y, float32(body.Radius), colorProjectile, true)
	}
}

func (s *RenderSystem) drawEnemies(screen *ebiten.Image) {
	ids := ecs.GetEntitiesWith3[*components.EnemyComponent, *components.PhysicsBodyComponent, *components.PositionComponent](s.entityManager)
	for _, id := range ids {
		body, _ := ecs.GetComponent[*components.PhysicsBodyComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)

		clr := colorEnemy
		if ecs.HasComponent[*components.NoEffectComponent](s.entityManager, id) {
			clr = colorSuppressed
		}
		x, y := config.WorldToScreen(pos.Vector)
		vector.DrawFilledCircle(screen, x, y, float32(body.Radius), clr, true)
	}
}

func (s *RenderSystem) drawPlayer(screen *ebiten.Image) {
	ids := ecs.GetEntitiesWith3[*components.PlayerComponent, *components.PhysicsBodyComponent, *components.PositionComponent](s.entityManager)
	for _, id := range ids {
		body, _ := ecs.GetComponent[*components.PhysicsBodyComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)

		x, y := config.WorldToScreen(pos.Vector)
		vector.DrawFilledCircle(screen, x, y, float32(body.Radius), colorPlayer, true)
	}
}

// drawHealthBars 在受伤的角色头顶绘制血条
func (s *RenderSystem) drawHealthBars(screen *ebiten.Image) {
	ids := ecs.GetEntitiesWith2[*components.HealthComponent, *components.PositionComponent](s.entityManager)
	for _, id := range ids {
		health, _ := ecs.GetComponent[*components.HealthComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		if health.Max <= 0 || health.Current >= health.Max {
			continue
		}

		x, y := config.WorldToScreen(pos.Vector)
		barX := x - config.HealthBarWidth/2
		barY := y + config.HealthBarOffsetY

		ratio := float32(health.Current / health.Max)
		if ratio < 0 {
			ratio = 0
		}
		vector.DrawFilledRect(screen, barX, barY, config.HealthBarWidth, config.HealthBarHeight, colorBarBack, true)
		vector.DrawFilledRect(screen, barX, barY, config.HealthBarWidth*ratio, config.HealthBarHeight, colorBarFill, true)
	}
}

func volumeColor(kind types.InterferenceKind) color.RGBA {
	switch kind {
	case types.InterferenceNegative:
		return colorNegative
	case types.InterferenceDestructive:
		return colorDestructive
	default:
		return colorPositive
	}
}

// withAlpha 按不透明度缩放颜色（预乘 alpha）
func withAlpha(c color.RGBA, opacity float64) color.RGBA {
	if opacity < 0 {
		opacity = 0
	} else if opacity > 1 {
		opacity = 1
	}
	return color.RGBA{
		R: uint8(float64(c.R) * opacity),
		G: uint8(float64(c.G) * opacity),
		B: uint8(float64(c.B) * opacity),
		A: uint8(float64(c.A) * opacity),
	}
}
