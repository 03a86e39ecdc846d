// Package life implements Conway's Game of Life (B3/S23) on flat row-major
// grids together with the per-cell age and trail bookkeeping used for rendering.
package life

import "lifeviz/internal/core"

// CountNeighbors returns the number of live cells among the eight neighbors of
// (x, y) under the given boundary policy.
func CountNeighbors(cells []uint8, x, y, w, h int, b core.Boundary) int {
	n := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := x+dx, y+dy
			switch b {
			case core.Torus:
				if nx < 0 {
					nx = w - 1
				} else if nx >= w {
					nx = 0
				}
				if ny < 0 {
					ny = h - 1
				} else if ny >= h {
					ny = 0
				}
			default:
				if nx < 0 || nx >= w || ny < 0 || ny >= h {
					continue
				}
			}
			if cells[ny*w+nx] == 1 {
				n++
			}
		}
	}
	return n
}

// Rule reports the next state of a cell given its current state and live
// neighbor count.
func Rule(alive bool, neighbors int) bool {
	return neighbors == 3 || (alive && neighbors == 2)
}

// Step writes the generation following cur into next. cur is left untouched;
// the caller swaps the buffers afterwards.
func Step(cur, next []uint8, w, h int, b core.Boundary) {
	core.MustMatch("life.Step cur", len(cur), w, h)
	core.MustMatch("life.Step next", len(next), w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			idx := y*w + x
			next[idx] = 0
			if Rule(cur[idx] == 1, CountNeighbors(cur, x, y, w, h, b)) {
				next[idx] = 1
			}
		}
	}
}
