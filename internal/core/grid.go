package core

import "fmt"

// Grid stores a 2D field of Life cells (0 dead, 1 alive) in row-major order.
// The backing slice never changes length after construction.
type Grid struct {
	W, H int
	data []uint8
}

// NewGrid allocates a zeroed grid with the given dimensions.
func NewGrid(w, h int) *Grid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Grid{W: w, H: h, data: make([]uint8, w*h)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *Grid) Cells() []uint8 { return g.data }

// Size reports the grid dimensions.
func (g *Grid) Size() Size { return Size{W: g.W, H: g.H} }

// In reports whether (x, y) lies inside the grid.
func (g *Grid) In(x, y int) bool { return x >= 0 && y >= 0 && x < g.W && y < g.H }

// Population counts the live cells.
func (g *Grid) Population() int { return Population(g.data) }

// Clear fills the grid with zeros.
func (g *Grid) Clear() { clear(g.data) }

// Population counts the non-zero entries of a cell slice.
func Population(cells []uint8) int {
	n := 0
	for _, c := range cells {
		if c != 0 {
			n++
		}
	}
	return n
}

// MustMatch panics when a buffer does not hold exactly w*h entries. Buffer
// sizes are fixed at startup, so a mismatch is a programming error.
func MustMatch(what string, n, w, h int) {
	if w <= 0 || h <= 0 || n != w*h {
		panic(fmt.Sprintf("%s: buffer length %d does not match %dx%d", what, n, w, h))
	}
}
