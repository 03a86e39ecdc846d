package session

import (
	"slices"
	"testing"
	"time"

	"lifeviz/internal/core"
	"lifeviz/internal/patterns"
	"lifeviz/internal/render"
)

func newTestSession(t *testing.T, mutate func(*Options)) *Session {
	t.Helper()
	opts := DefaultOptions()
	opts.Width = 32
	opts.Height = 24
	opts.Start = StartEmpty
	if mutate != nil {
		mutate(&opts)
	}
	s, err := New(opts)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return s
}

func TestNewRejectsBadOptions(t *testing.T) {
	opts := DefaultOptions()
	opts.Start = "gosper"
	if _, err := New(opts); err == nil {
		t.Fatal("expected an error for an unknown start")
	}
	opts = DefaultOptions()
	opts.Width = 0
	if _, err := New(opts); err == nil {
		t.Fatal("expected an error for a zero width")
	}
}

func TestStartModes(t *testing.T) {
	def := newTestSession(t, func(o *Options) { o.Width, o.Height, o.Start = 160, 160, StartDefault })
	want := make([]uint8, 160*160)
	patterns.SeedDefault(want, 160, 160)
	if !slices.Equal(def.Sim().Cells(), want) {
		t.Fatal("default start should match SeedDefault")
	}

	glider := newTestSession(t, func(o *Options) { o.Start = "Glider" })
	if n := glider.Sim().Population(); n != 5 {
		t.Fatalf("expected a single centered glider, got %d cells", n)
	}

	random := newTestSession(t, func(o *Options) { o.Start = StartRandom })
	if random.Sim().Population() == 0 {
		t.Fatal("random start produced an empty grid")
	}
}

func TestAdvanceFollowsPacer(t *testing.T) {
	s := newTestSession(t, nil)
	if n := s.Advance(); n != 1 {
		t.Fatalf("first Advance should step once, got %d", n)
	}
	if s.Sim().Generation() != 1 {
		t.Fatalf("expected generation 1, got %d", s.Sim().Generation())
	}

	p := newTestSession(t, func(o *Options) { o.Paused = true })
	if n := p.Advance(); n != 0 {
		t.Fatalf("paused session stepped %d times", n)
	}
}

func TestPausedSessionOnlyStepsOnRequest(t *testing.T) {
	s := newTestSession(t, func(o *Options) { o.Paused = true })
	s.Stamp(patterns.Blinker, 10, 10)

	s.Frame()
	if s.Sim().Generation() != 0 {
		t.Fatalf("paused session advanced to generation %d", s.Sim().Generation())
	}
	before := slices.Clone(s.Sim().Ages())

	s.Do(StepOnce)
	s.Frame()
	if s.Sim().Generation() != 1 {
		t.Fatalf("expected one step, got generation %d", s.Sim().Generation())
	}
	if slices.Equal(before, s.Sim().Ages()) {
		t.Fatal("ages should update together with the step")
	}

	s.Frame()
	if s.Sim().Generation() != 1 {
		t.Fatal("StepOnce must only step once")
	}
}

func TestToggleCommands(t *testing.T) {
	s := newTestSession(t, nil)
	start := s.Style()
	for _, cmd := range []Command{CycleTheme, ToggleGrid, ToggleChecker, ToggleTrails, ToggleBoundary, TogglePause} {
		s.Do(cmd)
	}
	s.Apply()
	got := s.Style()
	if got.Theme != start.Theme.Next() {
		t.Fatalf("expected theme %s, got %s", start.Theme.Next(), got.Theme)
	}
	if got.ShowGrid == start.ShowGrid || got.ShowChecker == start.ShowChecker || got.ShowTrails == start.ShowTrails {
		t.Fatalf("overlay toggles did not flip: %+v -> %+v", start, got)
	}
	if s.Sim().Boundary() != core.DeadBorder {
		t.Fatalf("expected boundary to toggle to dead, got %s", s.Sim().Boundary())
	}
	if !s.Paused() {
		t.Fatal("expected session to be paused")
	}
}

func TestDelayCommands(t *testing.T) {
	s := newTestSession(t, func(o *Options) { o.Delay = 10 * time.Millisecond })
	for i := 0; i < 5; i++ {
		s.Do(Faster)
	}
	s.Apply()
	if s.Delay() != core.MinDelay {
		t.Fatalf("expected delay floor %s, got %s", core.MinDelay, s.Delay())
	}
	s.Do(Slower)
	s.Apply()
	if s.Delay() != core.MinDelay+core.DelayStep {
		t.Fatalf("expected delay %s, got %s", core.MinDelay+core.DelayStep, s.Delay())
	}
}

func TestStampCommandsUseCursor(t *testing.T) {
	s := newTestSession(t, nil)
	s.Do(StampGlider)
	s.Apply()
	if n := s.Sim().Population(); n != 0 {
		t.Fatalf("glider stamped without a cursor: %d cells", n)
	}

	s.SetCursor(3, 4, true)
	s.Do(StampGlider)
	s.Apply()
	w := s.Sim().Size().W
	for _, o := range patterns.Glider.Cells {
		if s.Sim().Cells()[(4+o.DY)*w+3+o.DX] != 1 {
			t.Fatalf("expected glider cell at offset %v", o)
		}
	}

	s.Do(Clear)
	s.Do(StampPulsar)
	s.Apply()
	if n := s.Sim().Population(); n != len(patterns.Pulsar.Cells) {
		t.Fatalf("expected only the pulsar after clear, got %d cells", n)
	}
}

func TestCursorOffGridIsIgnored(t *testing.T) {
	s := newTestSession(t, nil)
	size := s.Sim().Size()
	s.SetCursor(size.W, 0, true)
	if _, _, ok := s.Cursor(); ok {
		t.Fatal("cursor past the right edge should not be recorded")
	}
	s.Do(StampLWSS)
	s.Apply()
	if n := s.Sim().Population(); n != 0 {
		t.Fatalf("LWSS stamped from an off-grid cursor: %d cells", n)
	}
	s.SetCursor(size.W-1, size.H-1, true)
	if x, y, ok := s.Cursor(); !ok || x != size.W-1 || y != size.H-1 {
		t.Fatalf("expected cursor at the last cell, got (%d,%d,%v)", x, y, ok)
	}
}

func TestRandomizeAndClearResetAges(t *testing.T) {
	s := newTestSession(t, nil)
	s.Stamp(patterns.Block, 4, 4)
	s.Run(5)
	if s.Sim().Generation() != 5 {
		t.Fatalf("expected generation 5, got %d", s.Sim().Generation())
	}

	s.Do(Randomize)
	s.Apply()
	for i, a := range s.Sim().Ages() {
		if a != 0 {
			t.Fatalf("age %d not cleared by randomize: %d", i, a)
		}
	}
	if s.Sim().Population() == 0 {
		t.Fatal("randomize produced an empty grid")
	}

	s.Do(Clear)
	s.Apply()
	if s.Sim().Population() != 0 || s.Sim().Generation() != 0 {
		t.Fatal("clear should empty the grid and reset the generation")
	}
}

func TestFrameAndPresent(t *testing.T) {
	s := newTestSession(t, func(o *Options) {
		o.Width, o.Height = 2, 2
		o.Style = render.Style{Theme: render.Classic}
		o.Paused = true
	})
	s.Stamp(patterns.Block, 0, 0)
	fb := s.Frame()
	if fb.Color(1, 1) != render.White {
		t.Fatalf("expected white live cell, got %06x", fb.Color(1, 1))
	}
	dst := make([]render.Color, 8*8)
	s.Present(dst, 8, 8)
	if dst[7*8+7] != render.White {
		t.Fatal("expected the upscaled block to fill the destination")
	}

	snap := s.Snapshot()
	if snap.Population != 4 || !snap.Paused || snap.Theme != "classic" {
		t.Fatalf("unexpected snapshot %+v", snap)
	}
	if len(snap.Lines()) == 0 {
		t.Fatal("expected status lines")
	}
}
