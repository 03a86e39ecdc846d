package session

// Binding ties a key name to the command it queues.
type Binding struct {
	Key     string
	Command Command
	Help    string
}

// Bindings lists the command keys shared by the window and terminal drivers.
// Quit (Q/Esc) and the HUD toggle (Tab) are handled by the drivers themselves.
var Bindings = []Binding{
	{"Space", TogglePause, "pause / resume"},
	{"N", StepOnce, "single step"},
	{"R", Randomize, "randomize"},
	{"C", Clear, "clear"},
	{"D", Reseed, "re-apply the start layout"},
	{"S", ToggleBoundary, "toggle torus / dead border"},
	{"Up", Faster, "faster"},
	{"Down", Slower, "slower"},
	{"T", CycleTheme, "next theme"},
	{"H", ToggleGrid, "grid lines"},
	{"B", ToggleChecker, "checkerboard"},
	{"V", ToggleTrails, "trails"},
	{"P", StampPulsar, "pulsar at center"},
	{"G", StampGlider, "glider at cursor"},
	{"L", StampLWSS, "LWSS at cursor"},
}
