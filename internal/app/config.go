package app

import (
	"encoding/json"
	"flag"
	"os"
	"strconv"
	"time"

	"lifeviz/internal/core"
	"lifeviz/internal/render"
	"lifeviz/internal/session"

	"github.com/pkg/errors"
)

// Config represents the command-line parameters for the viewer.
type Config struct {
	Width    int    `json:"width"`
	Height   int    `json:"height"`
	WindowW  int    `json:"window_width"`
	WindowH  int    `json:"window_height"`
	DelayMS  int    `json:"delay_ms"`
	Theme    string `json:"theme"`
	Boundary string `json:"boundary"`
	Start    string `json:"start"`
	Seed     int64  `json:"seed"`
	HUD      bool   `json:"hud"`
	Paused   bool   `json:"paused"`

	File string `json:"-"`
}

// NewConfig returns a Config populated with the viewer defaults.
func NewConfig() *Config {
	return &Config{
		Width:    160,
		Height:   160,
		WindowW:  900,
		WindowH:  900,
		DelayMS:  int(core.DefaultDelay / time.Millisecond),
		Theme:    render.Aqua.String(),
		Boundary: core.Torus.String(),
		Start:    session.StartDefault,
		Seed:     core.DefaultSeed,
		HUD:      true,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "w", c.Width, "simulation grid width")
	fs.IntVar(&c.Height, "h", c.Height, "simulation grid height")
	fs.IntVar(&c.WindowW, "win-w", c.WindowW, "window width in pixels")
	fs.IntVar(&c.WindowH, "win-h", c.WindowH, "window height in pixels")
	fs.IntVar(&c.DelayMS, "delay", c.DelayMS, "milliseconds between generations")
	fs.StringVar(&c.Theme, "theme", c.Theme, "color theme (classic, aqua, sunset, neon)")
	fs.StringVar(&c.Boundary, "boundary", c.Boundary, "edge policy (torus, dead)")
	fs.StringVar(&c.Start, "start", c.Start, "initial grid (default, random, noise, empty or a pattern name)")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for random and noise seeding")
	fs.BoolVar(&c.HUD, "hud", c.HUD, "show the status panel")
	fs.BoolVar(&c.Paused, "paused", c.Paused, "start paused")
	fs.StringVar(&c.File, "config", c.File, "JSON config file; flags given on the command line win")
}

// Parse binds c to fs, parses args and, when -config names a file, loads it
// and parses args a second time so explicit flags override the file.
func (c *Config) Parse(fs *flag.FlagSet, args []string) error {
	c.Bind(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if c.File == "" {
		return nil
	}
	if err := c.LoadFile(c.File); err != nil {
		return err
	}
	return fs.Parse(args)
}

// LoadFile overlays values from a JSON file onto c.
func (c *Config) LoadFile(filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return errors.Wrapf(err, "[LoadFile] failed to read file: %+v", filename)
	}
	if err = json.Unmarshal(data, c); err != nil {
		return errors.Wrapf(err, "[LoadFile] failed to unmarshal data from file: %+v", filename)
	}
	return nil
}

// FromMap applies flag-style key/value overrides. Unparseable values are ignored.
func (c *Config) FromMap(cfg map[string]string) {
	if cfg == nil {
		return
	}
	setInt := func(key string, dst *int) {
		if v, ok := cfg[key]; ok {
			if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
				*dst = parsed
			}
		}
	}
	setInt("w", &c.Width)
	setInt("h", &c.Height)
	setInt("win_w", &c.WindowW)
	setInt("win_h", &c.WindowH)
	setInt("delay", &c.DelayMS)
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	for key, dst := range map[string]*string{"theme": &c.Theme, "boundary": &c.Boundary, "start": &c.Start} {
		if v, ok := cfg[key]; ok && v != "" {
			*dst = v
		}
	}
	for key, dst := range map[string]*bool{"hud": &c.HUD, "paused": &c.Paused} {
		if v, ok := cfg[key]; ok {
			if parsed, err := strconv.ParseBool(v); err == nil {
				*dst = parsed
			}
		}
	}
}

// SessionOptions validates the config and converts it for session.New.
func (c *Config) SessionOptions() (session.Options, error) {
	opts := session.DefaultOptions()
	if c.Width <= 0 || c.Height <= 0 {
		return opts, errors.Errorf("grid size must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.WindowW < c.Width || c.WindowH < c.Height {
		return opts, errors.Errorf("window %dx%d is smaller than the grid %dx%d", c.WindowW, c.WindowH, c.Width, c.Height)
	}
	theme, ok := render.ParseTheme(c.Theme)
	if !ok {
		return opts, errors.Errorf("unknown theme %q", c.Theme)
	}
	boundary, ok := core.ParseBoundary(c.Boundary)
	if !ok {
		return opts, errors.Errorf("unknown boundary %q", c.Boundary)
	}
	opts.Width, opts.Height = c.Width, c.Height
	opts.Style.Theme = theme
	opts.Boundary = boundary
	opts.Delay = time.Duration(c.DelayMS) * time.Millisecond
	opts.Seed = c.Seed
	opts.Start = c.Start
	opts.Paused = c.Paused
	return opts, nil
}
