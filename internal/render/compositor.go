package render

const (
	gridSpacing  = 8
	gridBoost    = 30
	trailSpan    = 16
	checkerShift = 3
)

var (
	checkerLight = RGB(16, 16, 20)
	checkerDark  = RGB(10, 10, 12)

	aquaYoung   = RGB(180, 230, 255)
	aquaOld     = RGB(20, 220, 200)
	sunsetYoung = RGB(255, 140, 60)
	sunsetOld   = RGB(255, 30, 160)

	aquaTrailLow  = RGB(0, 6, 12)
	aquaTrailHigh = RGB(15, 40, 60)
	sunsetTrail   = RGB(40, 18, 28)
	classicTrail  = RGB(80, 80, 80)
	neonTrail     = RGB(50, 0, 50)

	neonCycle = buildNeonCycle()
)

const (
	aquaMaxAge   = 20
	sunsetMaxAge = 25
)

// buildNeonCycle returns the 24-entry hue loop: 15 distinct stops followed by
// a repeat of the first nine.
func buildNeonCycle() [24]Color {
	stops := []Color{
		RGB(80, 255, 80), RGB(80, 255, 160), RGB(80, 255, 240),
		RGB(80, 200, 255), RGB(80, 120, 255), RGB(120, 80, 255),
		RGB(200, 80, 255), RGB(255, 80, 220), RGB(255, 80, 140),
		RGB(255, 80, 80), RGB(255, 140, 80), RGB(255, 200, 80),
		RGB(255, 255, 80), RGB(220, 255, 80), RGB(160, 255, 80),
	}
	var table [24]Color
	for i := range table {
		table[i] = stops[i%len(stops)]
	}
	return table
}

// AliveColor returns the color of a live cell of the given age.
func AliveColor(age uint8, theme Theme) Color {
	switch theme {
	case Aqua:
		return Lerp(aquaYoung, aquaOld, float64(age)/aquaMaxAge)
	case Sunset:
		return Lerp(sunsetYoung, sunsetOld, float64(age)/sunsetMaxAge)
	case Neon:
		return neonCycle[int(age)%len(neonCycle)]
	default:
		return White
	}
}

// TrailColor returns the afterglow color of a dead cell whose trail value is
// still positive.
func TrailColor(trail uint8, theme Theme) Color {
	t := float64(trail) / trailSpan
	switch theme {
	case Aqua:
		return Lerp(aquaTrailLow, aquaTrailHigh, t)
	case Sunset:
		return Lerp(Black, sunsetTrail, t)
	case Neon:
		return Lerp(Black, neonTrail, t)
	default:
		return Lerp(Black, classicTrail, t)
	}
}

// Background returns the empty-cell color at (x, y): an 8x8 checkerboard when
// enabled, flat black otherwise.
func Background(x, y int, s Style) Color {
	if !s.ShowChecker {
		return Black
	}
	if ((x>>checkerShift)+(y>>checkerShift))&1 == 0 {
		return checkerLight
	}
	return checkerDark
}

// OverlayGrid brightens pixels on every eighth row and column when the grid
// overlay is enabled.
func OverlayGrid(x, y int, base Color, s Style) Color {
	if !s.ShowGrid {
		return base
	}
	if x%gridSpacing == 0 || y%gridSpacing == 0 {
		return base.Brighten(gridBoost)
	}
	return base
}

// PixelColor composites one cell: live color or trail/background, then the
// grid overlay.
func PixelColor(alive bool, age uint8, x, y int, s Style) Color {
	var c Color
	switch {
	case alive:
		c = AliveColor(age, s.Theme)
	case s.ShowTrails && age > 0:
		c = TrailColor(age, s.Theme)
	default:
		c = Background(x, y, s)
	}
	return OverlayGrid(x, y, c, s)
}
