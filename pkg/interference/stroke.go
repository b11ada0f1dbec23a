package interference

import "math"

// Stroke 波或交互体积的渲染参数
type Stroke struct {
	Width   float64
	Opacity float64
}

// StrokeFor 由半径比例计算波的描边
//
// f = (radius/maxRadius)²：宽度从 minWidth 二次增长到 maxWidth，不透明度从 1 二次衰减到 0。
// 干涉强度使用同样的二次曲线衰减，描边是它的视觉提示。
func StrokeFor(radius, maxRadius, minWidth, maxWidth float64) Stroke {
	f := ageFraction(radius, maxRadius)
	width := minWidth + (maxWidth-minWidth)*f
	return Stroke{
		Width:   math.Min(width, maxWidth),
		Opacity: 1 - f,
	}
}

// BandWidth 波对区域伤害生效的带宽：|distance - radius| < BandWidth
func BandWidth(radius, maxRadius, minWidth, maxWidth float64) float64 {
	return StrokeFor(radius, maxRadius, minWidth, maxWidth).Width
}

// InBand 判断距波心 distance 的点是否落在波前带内
func InBand(distance, radius, band float64) bool {
	return math.Abs(distance-radius) < band
}

// VolumeRadius 交互体积的碰撞半径：越新鲜越集中
//
// radius = max(minRadius, base*(1-strength))
func VolumeRadius(base, minRadius, strength float64) float64 {
	return math.Max(minRadius, base*(1-clamp01(strength)))
}

// VolumeStrokeWidth 交互体积的描边宽度，与半径跟随同一个 (1-strength) 因子
func VolumeStrokeWidth(minWidth, maxWidth, strength float64) float64 {
	return minWidth + (maxWidth-minWidth)*(1-clamp01(strength))
}
