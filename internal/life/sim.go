package life

import (
	"lifeviz/internal/core"
)

// Sim owns a double-buffered Life grid, its age buffer and the active
// boundary policy.
type Sim struct {
	cur      *core.Grid
	nxt      *core.Grid
	ages     []uint8
	boundary core.Boundary
	gen      int
}

// New returns an empty Sim with the provided dimensions.
func New(w, h int, b core.Boundary) *Sim {
	cur := core.NewGrid(w, h)
	return &Sim{
		cur:      cur,
		nxt:      core.NewGrid(cur.W, cur.H),
		ages:     NewAges(cur.W, cur.H),
		boundary: b,
	}
}

// Size returns the grid dimensions.
func (s *Sim) Size() core.Size { return s.cur.Size() }

// In reports whether (x, y) is a cell of the grid.
func (s *Sim) In(x, y int) bool { return s.cur.In(x, y) }

// Cells exposes the current grid values. Stamping writes go straight into it.
func (s *Sim) Cells() []uint8 { return s.cur.Cells() }

// Ages exposes the age/trail buffer.
func (s *Sim) Ages() []uint8 { return s.ages }

// Generation returns the number of steps taken since the last reseed.
func (s *Sim) Generation() int { return s.gen }

// Boundary returns the active boundary policy.
func (s *Sim) Boundary() core.Boundary { return s.boundary }

// SetBoundary switches the boundary policy for subsequent steps.
func (s *Sim) SetBoundary(b core.Boundary) { s.boundary = b }

// Population counts live cells.
func (s *Sim) Population() int { return s.cur.Population() }

// Clear kills every cell and clears the ages.
func (s *Sim) Clear() {
	s.cur.Clear()
	s.ClearAges()
	s.gen = 0
}

// Seed rewrites the grid through fill, then clears the ages and the
// generation counter.
func (s *Sim) Seed(fill func(cells []uint8, w, h int)) {
	fill(s.cur.Cells(), s.cur.W, s.cur.H)
	s.ClearAges()
	s.gen = 0
}

// ClearAges zeroes the age buffer without touching the grid.
func (s *Sim) ClearAges() { clear(s.ages) }

// Step advances the simulation by one generation and updates the ages.
func (s *Sim) Step() {
	Step(s.cur.Cells(), s.nxt.Cells(), s.cur.W, s.cur.H, s.boundary)
	UpdateAges(s.ages, s.nxt.Cells())
	s.cur, s.nxt = s.nxt, s.cur
	s.gen++
}
