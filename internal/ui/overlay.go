//go:build ebiten

package ui

import (
	"image/color"

	"lifeviz/internal/patterns"
	"lifeviz/internal/session"

	"github.com/hajimehoshi/ebiten/v2"
)

// Overlay outlines the glider footprint under the cursor so stamps land
// where the user expects.
type Overlay struct {
	pixel *ebiten.Image
}

// NewOverlay constructs a new overlay instance.
func NewOverlay() *Overlay {
	o := &Overlay{}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Draw renders the cursor outline onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image, s *session.Session, winW, winH int) {
	cx, cy, ok := s.Cursor()
	if !ok {
		return
	}
	size := s.Sim().Size()
	if size.W <= 0 || size.H <= 0 {
		return
	}
	sx := max(1, winW/size.W)
	sy := max(1, winH/size.H)
	offX := (winW - size.W*sx) / 2
	offY := (winH - size.H*sy) / 2

	pw, ph := patterns.Glider.Bounds()
	x := float64(offX + cx*sx)
	y := float64(offY + cy*sy)
	w := float64(pw * sx)
	h := float64(ph * sy)
	col := color.NRGBA{R: 255, G: 255, B: 255, A: 96}

	o.drawRect(screen, x, y, w, 1, col)
	o.drawRect(screen, x, y+h-1, w, 1, col)
	o.drawRect(screen, x, y, 1, h, col)
	o.drawRect(screen, x+w-1, y, 1, h, col)
}

func (o *Overlay) drawRect(screen *ebiten.Image, x, y, w, h float64, col color.Color) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}
