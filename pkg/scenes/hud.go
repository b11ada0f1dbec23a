package scenes

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

// hudFace 所有界面文字共用的位图字体
var hudFace = text.NewGoXFace(basicfont.Face7x13)

var (
	colorBackground = color.RGBA{R: 12, G: 14, B: 24, A: 255}
	colorText       = color.RGBA{R: 230, G: 230, B: 240, A: 255}
	colorDim        = color.RGBA{R: 140, G: 140, B: 160, A: 255}
	colorTitle      = color.RGBA{R: 255, G: 170, B: 60, A: 255}
)

// lineHeight 单行文字高度（像素）
const lineHeight = 18

// drawText 在 (x, y) 处绘制左上对齐的文字
func drawText(screen *ebiten.Image, s string, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, hudFace, op)
}

// drawCentered 以 x 为中心绘制文字
func drawCentered(screen *ebiten.Image, s string, x, y float64, scale float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.PrimaryAlign = text.AlignCenter
	text.Draw(screen, s, hudFace, op)
}
