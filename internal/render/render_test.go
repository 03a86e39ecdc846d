package render

import (
	"testing"
)

func TestScaledBlitTwoByTwo(t *testing.T) {
	fb := NewFramebuffer(2, 2, Black)
	colors := [2][2]Color{{RGB(255, 0, 0), RGB(0, 255, 0)}, {RGB(0, 0, 255), White}}
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			fb.SetPixel(x, y, colors[y][x])
		}
	}
	dst := make([]Color, 8*8)
	for i := range dst {
		dst[i] = RGB(1, 2, 3)
	}
	fb.BlitScaled(dst, 8, 8)
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			want := colors[y/4][x/4]
			if got := dst[y*8+x]; got != want {
				t.Fatalf("pixel (%d,%d) = %06x, expected %06x", x, y, got, want)
			}
		}
	}
}

func TestScaledBlitCentersWithBlackBorder(t *testing.T) {
	fb := NewFramebuffer(2, 2, Black)
	fb.Clear(White)
	dst := make([]Color, 9*7)
	fb.BlitScaled(dst, 9, 7)
	// sx = 4, sy = 3: an 8x6 image with a 0/1 column and 0/1 row of padding.
	for y := 0; y < 7; y++ {
		for x := 0; x < 9; x++ {
			inside := x < 8 && y < 6
			got := dst[y*9+x]
			if inside && got != White {
				t.Fatalf("pixel (%d,%d) should be image, got %06x", x, y, got)
			}
			if !inside && got != Black {
				t.Fatalf("pixel (%d,%d) should be border, got %06x", x, y, got)
			}
		}
	}

	// A 3x3 source scales by 3 into 11x11, leaving one black pixel on every side.
	fb3 := NewFramebuffer(3, 3, White)
	dst = make([]Color, 11*11)
	fb3.BlitScaled(dst, 11, 11)
	for i := 0; i < 11; i++ {
		if dst[i] != Black || dst[10*11+i] != Black || dst[i*11] != Black || dst[i*11+10] != Black {
			t.Fatalf("expected symmetric 1px black border at index %d", i)
		}
	}
	if dst[1*11+1] != White || dst[9*11+9] != White {
		t.Fatal("expected image inside the border")
	}
}

func TestScaledBlitClipsSmallDestination(t *testing.T) {
	fb := NewFramebuffer(4, 4, White)
	dst := make([]Color, 2*2)
	fb.BlitScaled(dst, 2, 2)
	for i, c := range dst {
		if c != White {
			t.Fatalf("pixel %d = %06x, expected clipped image", i, c)
		}
	}
}

func TestScaledBlitPanicsOnShortDestination(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for undersized destination")
		}
	}()
	NewFramebuffer(2, 2, Black).BlitScaled(make([]Color, 10), 8, 8)
}

func TestFramebufferOutOfRange(t *testing.T) {
	fb := NewFramebuffer(3, 3, RGB(9, 9, 9))
	fb.SetPixel(-1, 0, White)
	fb.SetPixel(3, 0, White)
	fb.SetCurrentColor(RGB(7, 7, 7))
	fb.Point(0, 5)
	for i, c := range fb.Pixels {
		if c != RGB(9, 9, 9) {
			t.Fatalf("pixel %d changed by out-of-range write: %06x", i, c)
		}
	}
	if got := fb.Color(-4, 1); got != RGB(9, 9, 9) {
		t.Fatalf("expected background for out-of-range read, got %06x", got)
	}
	fb.Point(1, 1)
	if got := fb.Color(1, 1); got != RGB(7, 7, 7) {
		t.Fatalf("expected current color at (1,1), got %06x", got)
	}
}

func TestMouseCell(t *testing.T) {
	// 160 -> 900 scales by 5 with a 50px border.
	if _, _, ok := MouseCell(49, 100, 160, 160, 900, 900); ok {
		t.Fatal("expected border pixel to map to no cell")
	}
	x, y, ok := MouseCell(50, 54, 160, 160, 900, 900)
	if !ok || x != 0 || y != 0 {
		t.Fatalf("expected cell (0,0), got (%d,%d) ok=%v", x, y, ok)
	}
	x, y, ok = MouseCell(849, 849, 160, 160, 900, 900)
	if !ok || x != 159 || y != 159 {
		t.Fatalf("expected cell (159,159), got (%d,%d) ok=%v", x, y, ok)
	}
	if _, _, ok := MouseCell(850, 400, 160, 160, 900, 900); ok {
		t.Fatal("expected right border to map to no cell")
	}
}

func TestFlatBackgroundRoundTrip(t *testing.T) {
	s := Style{Theme: Sunset}
	for _, p := range [][2]int{{0, 0}, {8, 3}, {13, 21}} {
		if got := PixelColor(false, 0, p[0], p[1], s); got != Black {
			t.Fatalf("expected flat background at %v, got %06x", p, got)
		}
	}
}

func TestCheckerboard(t *testing.T) {
	s := Style{ShowChecker: true}
	if got := PixelColor(false, 0, 1, 1, s); got != checkerLight {
		t.Fatalf("tile (0,0) should be light, got %06x", got)
	}
	if got := PixelColor(false, 0, 9, 1, s); got != checkerDark {
		t.Fatalf("tile (1,0) should be dark, got %06x", got)
	}
	if got := PixelColor(false, 0, 9, 9, s); got != checkerLight {
		t.Fatalf("tile (1,1) should be light, got %06x", got)
	}
	// Trails disabled: a fresh corpse shows the background, not a trail.
	if got := PixelColor(false, 12, 9, 1, s); got != checkerDark {
		t.Fatalf("expected checker under disabled trails, got %06x", got)
	}
}

func TestGridOverlay(t *testing.T) {
	s := Style{ShowGrid: true}
	if got := PixelColor(false, 0, 8, 3, s); got != RGB(30, 30, 30) {
		t.Fatalf("expected grid line brightening, got %06x", got)
	}
	if got := PixelColor(false, 0, 3, 3, s); got != Black {
		t.Fatalf("expected no grid off the lines, got %06x", got)
	}
	if got := PixelColor(true, 0, 0, 0, s); got != White {
		t.Fatalf("white should clamp at 255, got %06x", got)
	}
	if got := RGB(240, 10, 0).Brighten(30); got != RGB(255, 40, 30) {
		t.Fatalf("unexpected brighten result %06x", got)
	}
}

func TestAliveColors(t *testing.T) {
	cases := []struct {
		theme Theme
		age   uint8
		want  Color
	}{
		{Classic, 0, White},
		{Classic, 200, White},
		{Aqua, 0, RGB(180, 230, 255)},
		{Aqua, 10, RGB(100, 225, 228)},
		{Aqua, 20, RGB(20, 220, 200)},
		{Aqua, 255, RGB(20, 220, 200)},
		{Sunset, 0, RGB(255, 140, 60)},
		{Sunset, 25, RGB(255, 30, 160)},
		{Sunset, 99, RGB(255, 30, 160)},
		{Neon, 0, RGB(80, 255, 80)},
		{Neon, 15, RGB(80, 255, 80)},
		{Neon, 23, RGB(255, 80, 140)},
		{Neon, 24, RGB(80, 255, 80)},
	}
	for _, c := range cases {
		if got := AliveColor(c.age, c.theme); got != c.want {
			t.Fatalf("%s age %d: got %06x, expected %06x", c.theme, c.age, got, c.want)
		}
	}
}

func TestTrailColors(t *testing.T) {
	s := Style{ShowTrails: true}
	cases := []struct {
		theme Theme
		trail uint8
		want  Color
	}{
		{Classic, 16, RGB(80, 80, 80)},
		{Classic, 8, RGB(40, 40, 40)},
		{Aqua, 200, RGB(15, 40, 60)},
		{Sunset, 16, RGB(40, 18, 28)},
		{Neon, 16, RGB(50, 0, 50)},
	}
	for _, c := range cases {
		s.Theme = c.theme
		if got := PixelColor(false, c.trail, 3, 3, s); got != c.want {
			t.Fatalf("%s trail %d: got %06x, expected %06x", c.theme, c.trail, got, c.want)
		}
	}
}

func TestThemeCycle(t *testing.T) {
	th := Classic
	want := []Theme{Aqua, Sunset, Neon, Classic}
	for _, w := range want {
		th = th.Next()
		if th != w {
			t.Fatalf("expected %s, got %s", w, th)
		}
	}
	if got, ok := ParseTheme(" Neon"); !ok || got != Neon {
		t.Fatalf("ParseTheme failed: %v %v", got, ok)
	}
	if _, ok := ParseTheme("plaid"); ok {
		t.Fatal("unexpected theme plaid")
	}
}

func TestRenderFrame(t *testing.T) {
	cells := []uint8{1, 0, 0, 0}
	ages := []uint8{3, 5, 0, 0}
	s := Style{Theme: Classic, ShowTrails: true}
	fb := RenderFrame(cells, ages, 2, 2, s)
	if fb.Color(0, 0) != White {
		t.Fatalf("expected live cell white, got %06x", fb.Color(0, 0))
	}
	if fb.Color(1, 0) != TrailColor(5, Classic) {
		t.Fatalf("expected trail color, got %06x", fb.Color(1, 0))
	}
	if fb.Color(0, 1) != Black {
		t.Fatalf("expected background, got %06x", fb.Color(0, 1))
	}

	img := fb.Image()
	if px := img.RGBAAt(0, 0); px.R != 255 || px.A != 255 {
		t.Fatalf("unexpected image pixel %+v", px)
	}
}
