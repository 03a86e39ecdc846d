package render

import (
	"fmt"
	"strings"
)

// Theme selects the palette used for live cells and trails.
type Theme uint8

const (
	Classic Theme = iota
	Aqua
	Sunset
	Neon
)

// Themes lists every theme in cycling order.
var Themes = []Theme{Classic, Aqua, Sunset, Neon}

// String returns the lowercase theme name.
func (t Theme) String() string {
	switch t {
	case Classic:
		return "classic"
	case Aqua:
		return "aqua"
	case Sunset:
		return "sunset"
	case Neon:
		return "neon"
	default:
		return fmt.Sprintf("theme(%d)", uint8(t))
	}
}

// Next returns the following theme, wrapping from Neon back to Classic.
func (t Theme) Next() Theme {
	return Themes[(int(t)+1)%len(Themes)]
}

// ParseTheme maps a theme name back to its value.
func ParseTheme(s string) (Theme, bool) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, t := range Themes {
		if t.String() == name {
			return t, true
		}
	}
	return Classic, false
}

// Style is the full set of render options. It is read-only during a frame.
type Style struct {
	Theme       Theme
	ShowGrid    bool
	ShowChecker bool
	ShowTrails  bool
}

// DefaultStyle returns the startup style: Aqua with every overlay enabled.
func DefaultStyle() Style {
	return Style{Theme: Aqua, ShowGrid: true, ShowChecker: true, ShowTrails: true}
}
