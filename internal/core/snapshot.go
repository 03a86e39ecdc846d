package core

import (
	"fmt"
	"time"
)

// Snapshot captures the driver-visible state of a session for status displays.
type Snapshot struct {
	Generation int
	Population int
	Size       Size
	Theme      string
	Boundary   Boundary
	Paused     bool
	Delay      time.Duration

	ShowGrid    bool
	ShowChecker bool
	ShowTrails  bool
}

// Lines formats the snapshot as short label/value rows.
func (s Snapshot) Lines() []string {
	state := "running"
	if s.Paused {
		state = "paused"
	}
	return []string{
		fmt.Sprintf("gen %d  pop %d  %dx%d", s.Generation, s.Population, s.Size.W, s.Size.H),
		fmt.Sprintf("%s  %s  %s", state, s.Boundary, s.Delay),
		fmt.Sprintf("theme %s  grid %s  checker %s  trails %s",
			s.Theme, onOff(s.ShowGrid), onOff(s.ShowChecker), onOff(s.ShowTrails)),
	}
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}
