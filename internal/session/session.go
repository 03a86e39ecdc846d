// Package session runs the per-frame loop shared by every driver: apply
// queued commands, advance the automaton when due, render the grid through
// the theme compositor and blit it to the presentation buffer.
package session

import (
	"strings"
	"time"

	"lifeviz/internal/core"
	"lifeviz/internal/life"
	"lifeviz/internal/patterns"
	"lifeviz/internal/render"

	"github.com/pkg/errors"
)

// Start modes accepted by Options.Start besides pattern names.
const (
	StartDefault = "default"
	StartRandom  = "random"
	StartNoise   = "noise"
	StartEmpty   = "empty"
)

// Options configures a new Session.
type Options struct {
	Width, Height  int
	Boundary       core.Boundary
	Style          render.Style
	Delay          time.Duration
	Seed           int64
	Start          string
	NoiseThreshold float64
	Paused         bool
}

// DefaultOptions mirrors the startup state of the interactive viewer.
func DefaultOptions() Options {
	return Options{
		Width:          160,
		Height:         160,
		Boundary:       core.Torus,
		Style:          render.DefaultStyle(),
		Delay:          core.DefaultDelay,
		Seed:           core.DefaultSeed,
		Start:          StartDefault,
		NoiseThreshold: patterns.DefaultNoiseThreshold,
	}
}

type cursor struct {
	x, y int
	ok   bool
}

// Session owns every piece of mutable state of one running visualizer. It is
// not safe for concurrent use; drivers call it from a single goroutine.
type Session struct {
	sim    *life.Sim
	style  render.Style
	pacer  *core.Pacer
	rng    *core.RNG
	fb     *render.Framebuffer
	start  string
	thresh float64

	paused   bool
	stepOnce bool
	cursor   cursor
	pending  []Command
}

// New builds a session and seeds the grid according to opts.Start.
func New(opts Options) (*Session, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, errors.Errorf("session: invalid grid size %dx%d", opts.Width, opts.Height)
	}
	start := strings.ToLower(strings.TrimSpace(opts.Start))
	if start == "" {
		start = StartDefault
	}
	if !validStart(start) {
		return nil, errors.Errorf("session: unknown start %q (want %s, %s, %s, %s or a pattern: %s)",
			opts.Start, StartDefault, StartRandom, StartNoise, StartEmpty, strings.Join(patterns.Names(), ", "))
	}
	s := &Session{
		sim:    life.New(opts.Width, opts.Height, opts.Boundary),
		style:  opts.Style,
		pacer:  core.NewPacer(opts.Delay),
		rng:    core.NewRNG(opts.Seed),
		fb:     render.NewFramebuffer(opts.Width, opts.Height, render.Black),
		start:  start,
		thresh: opts.NoiseThreshold,
		paused: opts.Paused,
	}
	s.seed()
	return s, nil
}

func validStart(start string) bool {
	switch start {
	case StartDefault, StartRandom, StartNoise, StartEmpty:
		return true
	}
	_, ok := patterns.Lookup(start)
	return ok
}

func (s *Session) seed() {
	switch s.start {
	case StartRandom:
		s.sim.Seed(func(cells []uint8, _, _ int) { patterns.Randomize(cells, s.rng) })
	case StartNoise:
		noiseSeed := s.rng.Int63()
		s.sim.Seed(func(cells []uint8, w, h int) { patterns.SeedNoise(cells, w, h, noiseSeed, s.thresh) })
	case StartEmpty:
		s.sim.Seed(func(cells []uint8, _, _ int) { clear(cells) })
	case StartDefault:
		s.sim.Seed(patterns.SeedDefault)
	default:
		p, _ := patterns.Lookup(s.start)
		s.sim.Seed(func(cells []uint8, w, h int) {
			clear(cells)
			pw, ph := p.Bounds()
			p.Stamp(cells, (w-pw)/2, (h-ph)/2, w)
		})
	}
}

// Sim exposes the underlying automaton.
func (s *Session) Sim() *life.Sim { return s.sim }

// Style returns the active render style.
func (s *Session) Style() render.Style { return s.style }

// Paused reports whether automatic stepping is suspended.
func (s *Session) Paused() bool { return s.paused }

// Delay returns the current delay between generations.
func (s *Session) Delay() time.Duration { return s.pacer.Delay() }

// Framebuffer returns the simulation-resolution buffer of the last render.
func (s *Session) Framebuffer() *render.Framebuffer { return s.fb }

// Do queues a command for the next frame.
func (s *Session) Do(cmd Command) { s.pending = append(s.pending, cmd) }

// SetCursor records the grid cell under the pointer; ok=false when the
// pointer is outside the drawn grid. Cells off the grid are never recorded.
func (s *Session) SetCursor(x, y int, ok bool) {
	s.cursor = cursor{x: x, y: y, ok: ok && s.sim.In(x, y)}
}

// Cursor returns the last cell recorded by SetCursor.
func (s *Session) Cursor() (x, y int, ok bool) { return s.cursor.x, s.cursor.y, s.cursor.ok }

// Stamp writes a pattern into the grid right away.
func (s *Session) Stamp(p patterns.Pattern, x, y int) {
	p.Stamp(s.sim.Cells(), x, y, s.sim.Size().W)
}

// Apply runs every queued command in order.
func (s *Session) Apply() {
	for _, cmd := range s.pending {
		s.apply(cmd)
	}
	s.pending = s.pending[:0]
}

func (s *Session) apply(cmd Command) {
	size := s.sim.Size()
	switch cmd {
	case TogglePause:
		s.paused = !s.paused
	case StepOnce:
		s.stepOnce = true
	case Randomize:
		s.sim.Seed(func(cells []uint8, _, _ int) { patterns.Randomize(cells, s.rng) })
	case Clear:
		s.sim.Clear()
	case Reseed:
		s.seed()
	case ToggleBoundary:
		s.sim.SetBoundary(s.sim.Boundary().Next())
	case Faster:
		s.pacer.Faster()
	case Slower:
		s.pacer.Slower()
	case CycleTheme:
		s.style.Theme = s.style.Theme.Next()
	case ToggleGrid:
		s.style.ShowGrid = !s.style.ShowGrid
	case ToggleChecker:
		s.style.ShowChecker = !s.style.ShowChecker
	case ToggleTrails:
		s.style.ShowTrails = !s.style.ShowTrails
	case StampPulsar:
		s.Stamp(patterns.Pulsar, size.W/2-6, size.H/2-6)
	case StampGlider:
		if s.cursor.ok {
			s.Stamp(patterns.Glider, s.cursor.x, s.cursor.y)
		}
	case StampLWSS:
		if s.cursor.ok {
			s.Stamp(patterns.LWSS, s.cursor.x, s.cursor.y)
		}
	}
}

// Advance steps the automaton for every generation the pacer reports due
// and returns how many steps it took. Paused sessions only step after a
// StepOnce command.
func (s *Session) Advance() int {
	if s.stepOnce {
		s.stepOnce = false
		s.sim.Step()
		return 1
	}
	// The pacer keeps running while paused so resuming does not replay the pause.
	n := s.pacer.Due()
	if s.paused {
		return 0
	}
	for i := 0; i < n; i++ {
		s.sim.Step()
	}
	return n
}

// Run applies queued commands and then steps n generations regardless of
// pacing or pause state. Headless drivers use it.
func (s *Session) Run(n int) {
	s.Apply()
	for i := 0; i < n; i++ {
		s.sim.Step()
	}
}

// Render composites the current grid into the simulation-resolution buffer.
func (s *Session) Render() *render.Framebuffer {
	render.RenderInto(s.fb, s.sim.Cells(), s.sim.Ages(), s.style)
	return s.fb
}

// Frame runs one full iteration: commands, optional step, render.
func (s *Session) Frame() *render.Framebuffer {
	s.Apply()
	s.Advance()
	return s.Render()
}

// Present blits the last render into a dw*dh destination buffer.
func (s *Session) Present(dst []render.Color, dw, dh int) {
	s.fb.BlitScaled(dst, dw, dh)
}

// Snapshot reports the state shown by status displays.
func (s *Session) Snapshot() core.Snapshot {
	return core.Snapshot{
		Generation:  s.sim.Generation(),
		Population:  s.sim.Population(),
		Size:        s.sim.Size(),
		Theme:       s.style.Theme.String(),
		Boundary:    s.sim.Boundary(),
		Paused:      s.paused,
		Delay:       s.pacer.Delay(),
		ShowGrid:    s.style.ShowGrid,
		ShowChecker: s.style.ShowChecker,
		ShowTrails:  s.style.ShowTrails,
	}
}
