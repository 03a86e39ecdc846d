// Package patterns holds the named Life shapes used to seed and edit a grid,
// plus the random, noise and composite seeding routines.
package patterns

import (
	"sort"
	"strings"
)

// Offset is a cell position relative to a stamp anchor.
type Offset struct {
	DX, DY int
}

// Pattern is a named, fixed set of cells to bring alive around an anchor.
type Pattern struct {
	Name  string
	Kind  Kind
	Cells []Offset
}

// Kind classifies a pattern in the usual Life taxonomy.
type Kind uint8

const (
	StillLife Kind = iota
	Oscillator
	Spaceship
)

// Stamp sets every cell at (x, y)+offset that falls inside the grid alive.
// The grid height is derived from len(cells)/w; offsets outside the grid are
// dropped silently.
func (p Pattern) Stamp(cells []uint8, x, y, w int) {
	if w <= 0 {
		return
	}
	h := len(cells) / w
	for _, o := range p.Cells {
		set(cells, x+o.DX, y+o.DY, w, h)
	}
}

// Bounds returns the width and height of the pattern's bounding box.
func (p Pattern) Bounds() (int, int) {
	if len(p.Cells) == 0 {
		return 0, 0
	}
	minX, maxX := p.Cells[0].DX, p.Cells[0].DX
	minY, maxY := p.Cells[0].DY, p.Cells[0].DY
	for _, o := range p.Cells[1:] {
		minX, maxX = min(minX, o.DX), max(maxX, o.DX)
		minY, maxY = min(minY, o.DY), max(maxY, o.DY)
	}
	return maxX - minX + 1, maxY - minY + 1
}

func set(cells []uint8, x, y, w, h int) {
	if x < 0 || y < 0 || x >= w || y >= h {
		return
	}
	cells[y*w+x] = 1
}

var registry = map[string]Pattern{}

// Register adds a pattern to the library under its lowercase name.
func Register(p Pattern) {
	if p.Name == "" || len(p.Cells) == 0 {
		return
	}
	registry[strings.ToLower(p.Name)] = p
}

// Lookup finds a registered pattern by name, ignoring case.
func Lookup(name string) (Pattern, bool) {
	p, ok := registry[strings.ToLower(strings.TrimSpace(name))]
	return p, ok
}

// Names lists the registered pattern names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
