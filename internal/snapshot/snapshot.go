// Package snapshot renders sessions without a window: it steps a grid for a
// fixed number of generations, writes the upscaled frame as a PNG and keeps
// the population history for plotting.
package snapshot

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"lifeviz/internal/render"
	"lifeviz/internal/session"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// Options controls a batch of headless renders. Every (theme, seed) pair is
// an independent job with its own session.
type Options struct {
	Session     session.Options
	Themes      []render.Theme
	Seeds       []int64
	Generations int
	Width       int
	Height      int
	Dir         string
	Workers     int
}

// Result describes one finished render.
type Result struct {
	Theme      render.Theme
	Seed       int64
	Path       string
	Population []float64
}

type job struct {
	theme render.Theme
	seed  int64
}

// Run renders every job, at most opts.Workers at a time, and returns the
// results in job order. The first failure cancels the remaining jobs.
func Run(ctx context.Context, opts Options) ([]Result, error) {
	if opts.Generations < 0 {
		return nil, errors.Errorf("snapshot: negative generation count %d", opts.Generations)
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, errors.Errorf("snapshot: invalid output size %dx%d", opts.Width, opts.Height)
	}
	if err := os.MkdirAll(opts.Dir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "snapshot: create output dir %s", opts.Dir)
	}

	themes := opts.Themes
	if len(themes) == 0 {
		themes = []render.Theme{opts.Session.Style.Theme}
	}
	seeds := opts.Seeds
	if len(seeds) == 0 {
		seeds = []int64{opts.Session.Seed}
	}
	var jobs []job
	for _, seed := range seeds {
		for _, theme := range themes {
			jobs = append(jobs, job{theme: theme, seed: seed})
		}
	}

	results := make([]Result, len(jobs))
	g, ctx := errgroup.WithContext(ctx)
	if opts.Workers > 0 {
		g.SetLimit(opts.Workers)
	}
	for i, j := range jobs {
		g.Go(func() error {
			res, err := renderJob(ctx, opts, j)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func renderJob(ctx context.Context, opts Options, j job) (Result, error) {
	sopts := opts.Session
	sopts.Style.Theme = j.theme
	sopts.Seed = j.seed
	s, err := session.New(sopts)
	if err != nil {
		return Result{}, err
	}

	pop := make([]float64, 0, opts.Generations+1)
	pop = append(pop, float64(s.Sim().Population()))
	for i := 0; i < opts.Generations; i++ {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		s.Run(1)
		pop = append(pop, float64(s.Sim().Population()))
	}

	s.Render()
	dst := make([]render.Color, opts.Width*opts.Height)
	s.Present(dst, opts.Width, opts.Height)
	img := render.ImageOf(dst, opts.Width, opts.Height)

	name := fmt.Sprintf("lifeviz-%s-seed%d-gen%04d.png", j.theme, j.seed, opts.Generations)
	path := filepath.Join(opts.Dir, name)
	if err := imgio.Save(path, img, imgio.PNGEncoder()); err != nil {
		return Result{}, errors.Wrapf(err, "snapshot: write %s", path)
	}
	return Result{Theme: j.theme, Seed: j.seed, Path: path, Population: pop}, nil
}
