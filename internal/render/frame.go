package render

import "lifeviz/internal/core"

// RenderFrame composites a full grid and its ages into a new Framebuffer.
func RenderFrame(cells, ages []uint8, w, h int, s Style) *Framebuffer {
	fb := NewFramebuffer(w, h, Black)
	RenderInto(fb, cells, ages, s)
	return fb
}

// RenderInto composites every cell into fb, which must match the grid size.
func RenderInto(fb *Framebuffer, cells, ages []uint8, s Style) {
	core.MustMatch("render.RenderInto cells", len(cells), fb.W, fb.H)
	core.MustMatch("render.RenderInto ages", len(ages), fb.W, fb.H)
	for y := 0; y < fb.H; y++ {
		for x := 0; x < fb.W; x++ {
			i := y*fb.W + x
			fb.SetPixel(x, y, PixelColor(cells[i] == 1, ages[i], x, y, s))
		}
	}
}
