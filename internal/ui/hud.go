//go:build ebiten

package ui

import (
	"image/color"

	"lifeviz/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	hudPadding    = 6
	hudLineHeight = 14
	hudWidth      = 330
)

// HUD renders the session status panel in the top-left corner.
type HUD struct {
	panel      *ebiten.Image
	lastHeight int
}

// NewHUD constructs an empty HUD; the panel is allocated on first draw.
func NewHUD() *HUD { return &HUD{} }

// Draw paints the status lines of snap over the screen.
func (h *HUD) Draw(screen *ebiten.Image, snap core.Snapshot) {
	if h == nil {
		return
	}
	lines := snap.Lines()
	height := 2*hudPadding + len(lines)*hudLineHeight
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(hudWidth, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 200})

	face := basicfont.Face7x13
	for i, line := range lines {
		y := hudPadding + (i+1)*hudLineHeight - 3
		text.Draw(h.panel, line, face, hudPadding, y, color.RGBA{R: 220, G: 220, B: 230, A: 255})
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(hudPadding, hudPadding)
	screen.DrawImage(h.panel, op)
}
