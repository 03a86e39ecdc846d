package render

import (
	"image/color"
	"math"
)

// Color is a 24-bit 0xRRGGBB value.
type Color uint32

const (
	Black Color = 0x000000
	White Color = 0xFFFFFF
)

// RGB packs three channels into a Color.
func RGB(r, g, b uint8) Color {
	return Color(uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// Channels unpacks the red, green and blue components.
func (c Color) Channels() (r, g, b uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// RGBA converts to an opaque image/color value.
func (c Color) RGBA() color.RGBA {
	r, g, b := c.Channels()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

// Brighten adds amount to every channel, clamping at 255.
func (c Color) Brighten(amount uint8) Color {
	r, g, b := c.Channels()
	return RGB(addClamp(r, amount), addClamp(g, amount), addClamp(b, amount))
}

func addClamp(v, d uint8) uint8 {
	if s := uint16(v) + uint16(d); s < 255 {
		return uint8(s)
	}
	return 255
}

func clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

func lerpU8(a, b uint8, t float64) uint8 {
	t = clamp01(t)
	return uint8(math.Round(float64(a) + (float64(b)-float64(a))*t))
}

// Lerp interpolates each channel from a to b, with t clamped to [0, 1].
func Lerp(a, b Color, t float64) Color {
	ar, ag, ab := a.Channels()
	br, bg, bb := b.Channels()
	return RGB(lerpU8(ar, br, t), lerpU8(ag, bg, t), lerpU8(ab, bb, t))
}
