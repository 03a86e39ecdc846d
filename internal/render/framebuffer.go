package render

import (
	"fmt"
	"image"
)

// Framebuffer is a fixed-size array of colors at simulation resolution.
type Framebuffer struct {
	W, H       int
	Pixels     []Color
	current    Color
	Background Color
}

// NewFramebuffer allocates a w*h buffer filled with the background color.
func NewFramebuffer(w, h int, background Color) *Framebuffer {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	fb := &Framebuffer{W: w, H: h, Pixels: make([]Color, w*h), current: White, Background: background}
	fb.Clear(background)
	return fb
}

// Clear makes c the background color and fills the buffer with it.
func (fb *Framebuffer) Clear(c Color) {
	fb.Background = c
	for i := range fb.Pixels {
		fb.Pixels[i] = c
	}
}

// SetCurrentColor selects the color Point draws with.
func (fb *Framebuffer) SetCurrentColor(c Color) { fb.current = c }

// CurrentColor returns the color Point draws with.
func (fb *Framebuffer) CurrentColor() Color { return fb.current }

// Point paints (x, y) with the current color. Out-of-range points are ignored.
func (fb *Framebuffer) Point(x, y int) { fb.SetPixel(x, y, fb.current) }

// SetPixel paints (x, y) with c. Out-of-range points are ignored.
func (fb *Framebuffer) SetPixel(x, y int, c Color) {
	if x < 0 || y < 0 || x >= fb.W || y >= fb.H {
		return
	}
	fb.Pixels[y*fb.W+x] = c
}

// Color returns the pixel at (x, y), or the background color when out of range.
func (fb *Framebuffer) Color(x, y int) Color {
	if x < 0 || y < 0 || x >= fb.W || y >= fb.H {
		return fb.Background
	}
	return fb.Pixels[y*fb.W+x]
}

// scaleFor returns the integer scale factors and centering offsets used to
// fit a fbW x fbH image inside a winW x winH destination.
func scaleFor(fbW, fbH, winW, winH int) (sx, sy, offX, offY int) {
	sx = max(1, winW/fbW)
	sy = max(1, winH/fbH)
	offX = (winW - fbW*sx) / 2
	offY = (winH - fbH*sy) / 2
	return sx, sy, offX, offY
}

// BlitScaled clears dst to black and draws the buffer into it, upscaled by
// the largest integer factor per axis and centered. Each source pixel becomes
// an sx*sy block; leftover border stays black. dst must hold dw*dh colors.
func (fb *Framebuffer) BlitScaled(dst []Color, dw, dh int) {
	if dw <= 0 || dh <= 0 || len(dst) < dw*dh {
		panic(fmt.Sprintf("render.BlitScaled: destination length %d too small for %dx%d", len(dst), dw, dh))
	}
	for i := range dst[:dw*dh] {
		dst[i] = Black
	}
	sx, sy, offX, offY := scaleFor(fb.W, fb.H, dw, dh)
	for y := 0; y < fb.H; y++ {
		for x := 0; x < fb.W; x++ {
			c := fb.Pixels[y*fb.W+x]
			px0 := offX + x*sx
			py0 := offY + y*sy
			for yy := 0; yy < sy; yy++ {
				py := py0 + yy
				if py < 0 || py >= dh {
					continue
				}
				row := py * dw
				for xx := 0; xx < sx; xx++ {
					px := px0 + xx
					if px < 0 || px >= dw {
						continue
					}
					dst[row+px] = c
				}
			}
		}
	}
}

// MouseCell maps a destination pixel back to the framebuffer cell drawn there
// by BlitScaled. ok is false over the black border.
func MouseCell(mx, my, fbW, fbH, winW, winH int) (x, y int, ok bool) {
	if fbW <= 0 || fbH <= 0 {
		return 0, 0, false
	}
	sx, sy, offX, offY := scaleFor(fbW, fbH, winW, winH)
	if mx < offX || my < offY || mx >= offX+fbW*sx || my >= offY+fbH*sy {
		return 0, 0, false
	}
	return (mx - offX) / sx, (my - offY) / sy, true
}

// Image copies the buffer into an opaque RGBA image.
func (fb *Framebuffer) Image() *image.RGBA {
	return ImageOf(fb.Pixels, fb.W, fb.H)
}

// ImageOf copies a w*h color slice into an opaque RGBA image.
func ImageOf(px []Color, w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	FillRGBA(img.Pix, px[:w*h])
	return img
}
