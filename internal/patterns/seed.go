package patterns

import (
	"lifeviz/internal/core"

	perlin "github.com/aquilax/go-perlin"
)

const (
	seedMargin = 6
	seedStride = 20

	noiseAlpha  = 2.0
	noiseBeta   = 2.0
	noiseOctave = 3
	noiseScale  = 12.0
)

// DefaultNoiseThreshold is the noise level above which SeedNoise sets a cell alive.
const DefaultNoiseThreshold = 0.08

// Randomize sets each cell alive or dead with probability 1/2, advancing rng.
func Randomize(cells []uint8, rng *core.RNG) {
	rng.FillBinary(cells)
}

// SeedDefault clears the grid and lays out a deterministic field of small
// still lifes and oscillators on a fixed stride, plus one LWSS on the left
// and one pulsar on the right.
func SeedDefault(cells []uint8, w, h int) {
	core.MustMatch("patterns.SeedDefault", len(cells), w, h)
	clear(cells)
	for y := seedMargin; y < h-seedMargin; y += seedStride {
		for x := seedMargin; x < w-seedMargin; x += seedStride {
			tileFor(x, y).Stamp(cells, x, y, w)
		}
	}
	LWSS.Stamp(cells, 5, h/2-2, w)
	Pulsar.Stamp(cells, w-20, h/2-6, w)
}

func tileFor(x, y int) Pattern {
	switch (x + y) % 5 {
	case 0:
		return Block
	case 1:
		return Blinker
	case 2:
		return Toad
	case 3:
		return Glider
	default:
		return Beehive
	}
}

// SeedNoise clears the grid and brings alive every cell where 2D Perlin noise
// exceeds threshold, giving blob-shaped starting colonies.
func SeedNoise(cells []uint8, w, h int, seed int64, threshold float64) {
	core.MustMatch("patterns.SeedNoise", len(cells), w, h)
	p := perlin.NewPerlin(noiseAlpha, noiseBeta, noiseOctave, seed)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := p.Noise2D(float64(x)/noiseScale, float64(y)/noiseScale)
			if v > threshold {
				cells[y*w+x] = 1
				continue
			}
			cells[y*w+x] = 0
		}
	}
}
