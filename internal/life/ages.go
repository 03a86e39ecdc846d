package life

import "fmt"

// MaxAge is the saturation point of the age counter.
const MaxAge = 255

// NewAges allocates a zeroed age buffer for a w*h grid.
func NewAges(w, h int) []uint8 {
	if w <= 0 || h <= 0 {
		return nil
	}
	return make([]uint8, w*h)
}

// UpdateAges advances the age buffer against the freshly stepped grid. Live
// cells count consecutive generations up to MaxAge; dead cells decay toward
// zero by one per generation, which leaves a fading trail behind them.
func UpdateAges(ages, cells []uint8) {
	if len(ages) != len(cells) {
		panic(fmt.Sprintf("life.UpdateAges: age buffer length %d does not match grid length %d", len(ages), len(cells)))
	}
	for i, c := range cells {
		if c == 1 {
			if ages[i] < MaxAge {
				ages[i]++
			}
			continue
		}
		if ages[i] > 0 {
			ages[i]--
		}
	}
}
