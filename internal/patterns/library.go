package patterns

func offsets(pts ...[2]int) []Offset {
	out := make([]Offset, len(pts))
	for i, p := range pts {
		out[i] = Offset{DX: p[0], DY: p[1]}
	}
	return out
}

var (
	Block = Pattern{Name: "block", Kind: StillLife, Cells: offsets(
		[2]int{0, 0}, [2]int{1, 0},
		[2]int{0, 1}, [2]int{1, 1},
	)}

	// Blinker is centered on its anchor.
	Blinker = Pattern{Name: "blinker", Kind: Oscillator, Cells: offsets(
		[2]int{-1, 0}, [2]int{0, 0}, [2]int{1, 0},
	)}

	Toad = Pattern{Name: "toad", Kind: Oscillator, Cells: offsets(
		[2]int{0, 0}, [2]int{1, 0}, [2]int{2, 0},
		[2]int{-1, 1}, [2]int{0, 1}, [2]int{1, 1},
	)}

	// Beacon is two blocks touching at a corner.
	Beacon = Pattern{Name: "beacon", Kind: Oscillator, Cells: offsets(
		[2]int{0, 0}, [2]int{1, 0}, [2]int{0, 1}, [2]int{1, 1},
		[2]int{2, 2}, [2]int{3, 2}, [2]int{2, 3}, [2]int{3, 3},
	)}

	Beehive = Pattern{Name: "beehive", Kind: StillLife, Cells: offsets(
		[2]int{1, 0}, [2]int{2, 0},
		[2]int{0, 1}, [2]int{3, 1},
		[2]int{1, 2}, [2]int{2, 2},
	)}

	Loaf = Pattern{Name: "loaf", Kind: StillLife, Cells: offsets(
		[2]int{1, 0}, [2]int{2, 0},
		[2]int{0, 1}, [2]int{3, 1},
		[2]int{1, 2}, [2]int{3, 2},
		[2]int{2, 3},
	)}

	Boat = Pattern{Name: "boat", Kind: StillLife, Cells: offsets(
		[2]int{0, 0}, [2]int{1, 0},
		[2]int{0, 1}, [2]int{2, 1},
		[2]int{1, 2},
	)}

	Tub = Pattern{Name: "tub", Kind: StillLife, Cells: offsets(
		[2]int{1, 0},
		[2]int{0, 1}, [2]int{2, 1},
		[2]int{1, 2},
	)}

	// Glider travels toward +x/+y.
	Glider = Pattern{Name: "glider", Kind: Spaceship, Cells: offsets(
		[2]int{1, 0},
		[2]int{2, 1},
		[2]int{0, 2}, [2]int{1, 2}, [2]int{2, 2},
	)}

	LWSS = Pattern{Name: "lwss", Kind: Spaceship, Cells: offsets(
		[2]int{1, 0}, [2]int{2, 0}, [2]int{3, 0}, [2]int{4, 0},
		[2]int{0, 1}, [2]int{4, 1},
		[2]int{4, 2},
		[2]int{0, 3}, [2]int{3, 3},
	)}

	Pulsar = Pattern{Name: "pulsar", Kind: Oscillator, Cells: pulsarCells()}
)

// pulsarCells builds the period-3 pulsar from one quadrant mirrored on both
// axes around (6, 6).
func pulsarCells() []Offset {
	quadrant := [][2]int{
		{2, 0}, {3, 0}, {4, 0},
		{0, 2}, {5, 2},
		{0, 3}, {5, 3},
		{0, 4}, {5, 4},
		{2, 5}, {3, 5}, {4, 5},
	}
	cells := make([]Offset, 0, 4*len(quadrant))
	for _, mirrorY := range []bool{false, true} {
		for _, mirrorX := range []bool{false, true} {
			for _, q := range quadrant {
				dx, dy := q[0], q[1]
				if mirrorX {
					dx = 12 - dx
				}
				if mirrorY {
					dy = 12 - dy
				}
				cells = append(cells, Offset{DX: dx, DY: dy})
			}
		}
	}
	return cells
}

func init() {
	for _, p := range []Pattern{Block, Blinker, Toad, Beacon, Beehive, Loaf, Boat, Tub, Glider, LWSS, Pulsar} {
		Register(p)
	}
}
