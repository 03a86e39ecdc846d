package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"strconv"
	"strings"

	"lifeviz/internal/app"
	"lifeviz/internal/render"
	"lifeviz/internal/snapshot"

	"github.com/integrii/flaggy"
	"github.com/pkg/errors"
)

type options struct {
	cfg         *app.Config
	themes      string
	seeds       []string
	generations int
	outDir      string
	workers     int
	plot        bool
}

func newOptions(cfg *app.Config) *options {
	return &options{
		cfg:         cfg,
		themes:      cfg.Theme,
		generations: 200,
		outDir:      "snapshots",
		workers:     runtime.NumCPU(),
	}
}

func newParser(o *options) *flaggy.Parser {
	p := flaggy.NewParser("lifeviz-snap")
	p.Description = "Renders Game of Life generations to PNG files without opening a window."
	p.Int(&o.cfg.Width, "x", "width", "simulation grid width")
	p.Int(&o.cfg.Height, "y", "height", "simulation grid height")
	p.Int(&o.cfg.WindowW, "W", "image-width", "output image width in pixels")
	p.Int(&o.cfg.WindowH, "H", "image-height", "output image height in pixels")
	p.String(&o.cfg.Boundary, "b", "boundary", "edge policy (torus, dead)")
	p.String(&o.cfg.Start, "s", "start", "initial grid (default, random, noise, empty or a pattern name)")
	p.Int64(&o.cfg.Seed, "r", "seed", "seed for random and noise seeding")
	p.String(&o.cfg.File, "c", "config", "JSON config file; flags given on the command line win")
	p.Int(&o.generations, "g", "generations", "generations to simulate before writing the image")
	p.String(&o.themes, "t", "themes", "comma-separated themes, or 'all' (defaults to the config theme)")
	p.StringSlice(&o.seeds, "", "seeds", "extra seeds; each one renders every theme")
	p.String(&o.outDir, "o", "out", "output directory")
	p.Int(&o.workers, "j", "workers", "number of renders to run at once")
	p.Bool(&o.plot, "p", "plot", "print a population chart for every render")
	return p
}

// parseArgs parses args once to find -config, then loads that file into a
// fresh config and parses args again on top of it.
func parseArgs(args []string) (*options, error) {
	o := newOptions(app.NewConfig())
	if err := newParser(o).ParseArgs(args); err != nil {
		return nil, err
	}
	if o.cfg.File == "" {
		return o, nil
	}
	cfg := app.NewConfig()
	if err := cfg.LoadFile(o.cfg.File); err != nil {
		return nil, err
	}
	o = newOptions(cfg)
	if err := newParser(o).ParseArgs(args); err != nil {
		return nil, err
	}
	return o, nil
}

func (o *options) snapshotOptions() (snapshot.Options, error) {
	sopts, err := o.cfg.SessionOptions()
	if err != nil {
		return snapshot.Options{}, err
	}
	themes, err := parseThemes(o.themes)
	if err != nil {
		return snapshot.Options{}, err
	}
	seeds := []int64{o.cfg.Seed}
	for _, s := range o.seeds {
		v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
		if err != nil {
			return snapshot.Options{}, errors.Wrapf(err, "bad seed %q", s)
		}
		seeds = append(seeds, v)
	}
	return snapshot.Options{
		Session:     sopts,
		Themes:      themes,
		Seeds:       seeds,
		Generations: o.generations,
		Width:       o.cfg.WindowW,
		Height:      o.cfg.WindowH,
		Dir:         o.outDir,
		Workers:     o.workers,
	}, nil
}

func main() {
	o, err := parseArgs(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
	opts, err := o.snapshotOptions()
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	results, err := snapshot.Run(ctx, opts)
	if err != nil {
		log.Fatal(err)
	}
	for _, res := range results {
		final := res.Population[len(res.Population)-1]
		log.Printf("wrote %s (theme=%s seed=%d population=%.0f)", res.Path, res.Theme, res.Seed, final)
		if o.plot {
			fmt.Println(snapshot.PlotPopulation(res.Population, fmt.Sprintf("%s seed %d", res.Theme, res.Seed)))
			fmt.Println()
		}
	}
}

func parseThemes(list string) ([]render.Theme, error) {
	if strings.EqualFold(strings.TrimSpace(list), "all") {
		return render.Themes, nil
	}
	var out []render.Theme
	for _, name := range strings.Split(list, ",") {
		if strings.TrimSpace(name) == "" {
			continue
		}
		theme, ok := render.ParseTheme(name)
		if !ok {
			return nil, errors.Errorf("unknown theme %q", name)
		}
		out = append(out, theme)
	}
	if len(out) == 0 {
		return nil, errors.New("no themes selected")
	}
	return out, nil
}
