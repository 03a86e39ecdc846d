package core

import (
	"fmt"
	"strings"
)

// Boundary selects how neighbor lookups behave at the grid edges.
type Boundary uint8

const (
	// DeadBorder treats every cell outside the grid as dead.
	DeadBorder Boundary = iota
	// Torus wraps coordinates around both axes.
	Torus
)

// String returns the lowercase policy name.
func (b Boundary) String() string {
	switch b {
	case DeadBorder:
		return "dead"
	case Torus:
		return "torus"
	default:
		return fmt.Sprintf("boundary(%d)", uint8(b))
	}
}

// Next toggles between the two policies.
func (b Boundary) Next() Boundary {
	if b == Torus {
		return DeadBorder
	}
	return Torus
}

// ParseBoundary maps a policy name back to its value.
func ParseBoundary(s string) (Boundary, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "dead", "deadborder", "dead-border", "clamp":
		return DeadBorder, true
	case "torus", "wrap":
		return Torus, true
	}
	return DeadBorder, false
}
