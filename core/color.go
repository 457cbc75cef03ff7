package core

import "github.com/lucasb-eyer/go-colorful"

// Rgb stores explicit 8-bit color channels, decoupled from any terminal
// backend.
type Rgb struct {
	R, G, B uint8
}

var (
	RgbBlack   = Rgb{0, 0, 0}
	RgbWhite   = Rgb{255, 255, 255}
	RgbRed     = Rgb{255, 0, 0}
	RgbGreen   = Rgb{0, 255, 0}
	RgbBlue    = Rgb{0, 0, 255}
	RgbYellow  = Rgb{255, 255, 0}
	RgbCyan    = Rgb{0, 255, 255}
	RgbMagenta = Rgb{255, 0, 255}
)

// Blend performs alpha blending: result = src*alpha + c*(1-alpha).
func (c Rgb) Blend(src Rgb, alpha float64) Rgb {
	if alpha <= 0 {
		return c
	}
	if alpha >= 1 {
		return src
	}
	inv := 1.0 - alpha
	return Rgb{
		R: uint8(float64(src.R)*alpha + float64(c.R)*inv),
		G: uint8(float64(src.G)*alpha + float64(c.G)*inv),
		B: uint8(float64(src.B)*alpha + float64(c.B)*inv),
	}
}

// Scale multiplies each channel by factor, for fading effects.
func (c Rgb) Scale(factor float64) Rgb {
	if factor <= 0 {
		return RgbBlack
	}
	if factor >= 1 {
		return c
	}
	return Rgb{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
	}
}

// Lerp interpolates toward other in Lab space, which keeps midpoints
// perceptually even where channel-wise blending muddies them.
func (c Rgb) Lerp(other Rgb, t float64) Rgb {
	if t <= 0 {
		return c
	}
	if t >= 1 {
		return other
	}
	a := colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
	b := colorful.Color{R: float64(other.R) / 255, G: float64(other.G) / 255, B: float64(other.B) / 255}
	mixed := a.BlendLab(b, t).Clamped()
	return Rgb{
		R: uint8(mixed.R*255 + 0.5),
		G: uint8(mixed.G*255 + 0.5),
		B: uint8(mixed.B*255 + 0.5),
	}
}
