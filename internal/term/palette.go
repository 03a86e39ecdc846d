package term

import (
	"strings"

	"lifeviz/internal/render"

	"github.com/logrusorgru/aurora"
)

// Xterm256 maps a 24-bit color to the nearest entry of the xterm 256-color
// palette: the gray ramp for neutral colors, the 6x6x6 cube otherwise.
func Xterm256(c render.Color) uint8 {
	r, g, b := c.Channels()
	if r == g && g == b {
		switch {
		case r < 8:
			return 16
		case r > 248:
			return 231
		default:
			return uint8(232 + (int(r)-8)*24/241)
		}
	}
	return 16 + 36*cubeLevel(r) + 6*cubeLevel(g) + cubeLevel(b)
}

// cubeLevel returns the index of the closest cube step (0, 95, 135, 175, 215, 255).
func cubeLevel(v uint8) uint8 {
	switch {
	case v < 48:
		return 0
	case v < 115:
		return 1
	default:
		return (v - 35) / 40
	}
}

// Downsample returns the sampling stride that fits a w x h buffer into a
// view of cols x rows terminal cells, two columns per sample.
func Downsample(w, h, cols, rows int) int {
	if cols < 2 || rows < 1 {
		return 0
	}
	k := 1
	for (w+k-1)/k*2 > cols || (h+k-1)/k > rows {
		k++
	}
	return k
}

// Cells renders fb as rows of two-space blocks colored with 256-color
// background escapes, sampled every k-th pixel.
func Cells(au aurora.Aurora, fb *render.Framebuffer, k int) string {
	if k <= 0 {
		return ""
	}
	var sb strings.Builder
	for y := 0; y < fb.H; y += k {
		for x := 0; x < fb.W; x += k {
			sb.WriteString(au.BgIndex(Xterm256(fb.Color(x, y)), "  ").String())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
