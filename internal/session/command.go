package session

import "fmt"

// Command is a driver request applied at the start of the next frame.
type Command uint8

const (
	TogglePause Command = iota
	StepOnce
	Randomize
	Clear
	Reseed
	ToggleBoundary
	Faster
	Slower
	CycleTheme
	ToggleGrid
	ToggleChecker
	ToggleTrails
	StampPulsar
	StampGlider
	StampLWSS
)

var commandNames = map[Command]string{
	TogglePause:    "pause",
	StepOnce:       "step",
	Randomize:      "randomize",
	Clear:          "clear",
	Reseed:         "reseed",
	ToggleBoundary: "boundary",
	Faster:         "faster",
	Slower:         "slower",
	CycleTheme:     "theme",
	ToggleGrid:     "grid",
	ToggleChecker:  "checker",
	ToggleTrails:   "trails",
	StampPulsar:    "pulsar",
	StampGlider:    "glider",
	StampLWSS:      "lwss",
}

func (c Command) String() string {
	if name, ok := commandNames[c]; ok {
		return name
	}
	return fmt.Sprintf("command(%d)", uint8(c))
}
