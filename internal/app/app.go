//go:build ebiten

package app

import (
	"lifeviz/internal/render"
	"lifeviz/internal/session"
	"lifeviz/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var keyCodes = map[string]ebiten.Key{
	"Space": ebiten.KeySpace,
	"N":     ebiten.KeyN,
	"R":     ebiten.KeyR,
	"C":     ebiten.KeyC,
	"D":     ebiten.KeyD,
	"S":     ebiten.KeyS,
	"Up":    ebiten.KeyArrowUp,
	"Down":  ebiten.KeyArrowDown,
	"T":     ebiten.KeyT,
	"H":     ebiten.KeyH,
	"B":     ebiten.KeyB,
	"V":     ebiten.KeyV,
	"P":     ebiten.KeyP,
	"G":     ebiten.KeyG,
	"L":     ebiten.KeyL,
}

// Game adapts a session to the ebiten.Game interface.
type Game struct {
	session *session.Session
	hud     *ui.HUD
	overlay *ui.Overlay

	winW, winH int
	window     []render.Color
	buf        []byte
	showHUD    bool
}

// New constructs a Game presenting s in a cfg.WindowW x cfg.WindowH window.
func New(s *session.Session, cfg *Config) *Game {
	w, h := cfg.WindowW, cfg.WindowH
	return &Game{
		session: s,
		hud:     ui.NewHUD(),
		overlay: ui.NewOverlay(),
		winW:    w,
		winH:    h,
		window:  make([]render.Color, w*h),
		buf:     make([]byte, 4*w*h),
		showHUD: cfg.HUD,
	}
}

// Update polls input, applies the resulting commands and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.showHUD = !g.showHUD
	}

	size := g.session.Sim().Size()
	mx, my := ebiten.CursorPosition()
	g.session.SetCursor(render.MouseCell(mx, my, size.W, size.H, g.winW, g.winH))

	for _, b := range session.Bindings {
		if inpututil.IsKeyJustPressed(keyCodes[b.Key]) {
			g.session.Do(b.Command)
		}
	}

	g.session.Apply()
	g.session.Advance()
	return nil
}

// Draw renders the current grid, upscales it and uploads it to the screen.
func (g *Game) Draw(screen *ebiten.Image) {
	g.session.Render()
	g.session.Present(g.window, g.winW, g.winH)
	render.FillRGBA(g.buf, g.window)
	screen.WritePixels(g.buf)

	g.overlay.Draw(screen, g.session, g.winW, g.winH)
	if g.showHUD {
		g.hud.Draw(screen, g.session.Snapshot())
	}
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.winW, g.winH
}
