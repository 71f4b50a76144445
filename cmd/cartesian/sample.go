package main

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/lukaszgryglicki/cartesian"
	"github.com/lukaszgryglicki/cartesian/internal/cli"
	"github.com/lukaszgryglicki/cartesian/internal/config"
)

type sampleOptions struct {
	n    int
	seed uint64
}

func (a *app) sampleCmd() *cobra.Command {
	var opts sampleOptions
	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Draw uniform random complex numbers and report their mean",
		Long: "Draw --n values with both parts uniform in [0, 1) across --workers goroutines,\n" +
			"each with its own generator seeded from --seed, and print the mean.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if opts.n <= 0 {
				return fmt.Errorf("--n must be positive, got %d", opts.n)
			}
			return byWidth(a.Config.Width,
				func() error { return runSample[float32](cmd.Context(), a, cmd, opts) },
				func() error { return runSample[float64](cmd.Context(), a, cmd, opts) })
		},
	}
	f := cmd.Flags()
	f.IntVar(&opts.n, "n", 10000, "number of samples")
	f.Uint64Var(&opts.seed, "seed", 1, "base seed; worker i uses PCG(seed, i)")
	a.BindInt(f, "workers", "worker goroutines; 0 uses GOMAXPROCS",
		func(cfg *config.Config) *int { return &cfg.Workers })
	return cmd
}

func runSample[T cartesian.Float](ctx context.Context, a *app, cmd *cobra.Command, opts sampleOptions) error {
	workers := min(a.Workers(), opts.n)
	total, err := sample[T](ctx, a.Logger, opts, workers)
	if err != nil {
		return err
	}
	mean, _ := total.Mean()
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "samples: %s\n", cli.Count(total.Count()))
	fmt.Fprintf(out, "workers: %d\n", workers)
	_, err = fmt.Fprintf(out, "mean: %s\n", cli.Format(mean, a.Config.Digits))
	return err
}

// sample splits n draws across workers. Each worker sums into its own
// Accumulator and merges it into the total when done.
func sample[T cartesian.Float](ctx context.Context, logger *zap.Logger, opts sampleOptions, workers int) (*cartesian.Accumulator[T], error) {
	var total cartesian.Accumulator[T]
	g, ctx := errgroup.WithContext(ctx)
	for w := range workers {
		share := opts.n / workers
		if w < opts.n%workers {
			share++
		}
		g.Go(func() error {
			r := rand.New(rand.NewPCG(opts.seed, uint64(w)))
			var local cartesian.Accumulator[T]
			for i := range share {
				if i%4096 == 0 {
					if err := ctx.Err(); err != nil {
						return err
					}
				}
				local.Add(cartesian.Random[T](r))
			}
			total.Merge(&local)
			logger.Debug("worker done", zap.Int("worker", w), zap.Int("samples", share))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("sample: %w", err)
	}
	return &total, nil
}
