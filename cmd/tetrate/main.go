// Command tetrate evaluates T_b(h) = f^{∘h}(1) with f(z) = b^z.
//
// Usage:
//
//	tetrate <base> <height>...
//
// Examples:
//
//	tetrate 1.4142135623730951 0.5 1 1.5
//	tetrate "(0.5 0.5)" 1.5
//	tetrate 2 3
//
// Heights are evaluated concurrently and printed in argument order. Bases
// with an attracting fixed point accept any complex height (Schröder/Koenigs
// linearization); other bases accept non-negative integer heights only. Each
// result is followed by b^{T(h)}, which should equal T(h+1).
//
// SPDX-License-Identifier: MIT
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/lukaszgryglicki/cartesian"
	"github.com/lukaszgryglicki/cartesian/internal/cli"
	"github.com/lukaszgryglicki/cartesian/internal/config"
	"github.com/lukaszgryglicki/cartesian/internal/tetration"
)

func newRootCmd() *cobra.Command {
	var c cli.Common
	root := &cobra.Command{
		Use:           "tetrate <base> <height>...",
		Short:         "Continuous tetration of a complex base",
		Args:          cobra.MinimumNArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, &c, args[0], args[1:])
		},
	}
	c.Register(root)
	pf := root.PersistentFlags()
	c.BindInt(pf, "max-iter", "bound on fixed-point and Koenigs iterations",
		func(cfg *config.Config) *int { return &cfg.MaxIterations })
	c.BindInt(pf, "workers", "heights evaluated at once; 0 uses GOMAXPROCS",
		func(cfg *config.Config) *int { return &cfg.Workers })
	return root
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "tetrate:", err)
		stop()
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, c *cli.Common, baseArg string, heightArgs []string) error {
	b, err := cartesian.Parse[float64](baseArg)
	if err != nil {
		return fmt.Errorf("parse base: %w", err)
	}
	heights := make([]cartesian.C128, len(heightArgs))
	for i, s := range heightArgs {
		if heights[i], err = cartesian.Parse[float64](s); err != nil {
			return fmt.Errorf("parse height %d: %w", i+1, err)
		}
	}

	results, err := evaluate(cmd.Context(), c.Logger, b, heights, c.Workers(),
		tetration.WithMaxIterations(c.Config.MaxIterations))
	if err != nil {
		return err
	}

	digits := c.Config.Digits
	out := cmd.OutOrStdout()
	lnb := cartesian.Log(b)
	for i, r := range results {
		if i > 0 {
			fmt.Fprintln(out)
		}
		fmt.Fprintf(out, "T_b(h) with b=%s, h=%s\n", cli.Format(b, digits), cli.Format(heights[i], digits))
		fmt.Fprintf(out, "method: %s\n", r.Method)
		if r.Method == tetration.MethodSchroeder {
			fmt.Fprintf(out, "fixed point: %s, multiplier: %s\n", cli.Format(r.FixedPoint, digits), cli.Format(r.Multiplier, digits))
		}
		fmt.Fprintf(out, "result: %s\n", cli.Format(r.Value, digits))
		// b^{T(h)} should equal T(h+1).
		check := cartesian.Exp(lnb.Mul(r.Value))
		if _, err := fmt.Fprintf(out, "b^(T(h)) (sanity): %s\n", cli.Format(check, digits)); err != nil {
			return err
		}
	}
	return nil
}

// evaluate runs Tetrate for every height with at most workers in flight and
// returns the results in input order.
func evaluate(ctx context.Context, logger *zap.Logger, b cartesian.C128, heights []cartesian.C128, workers int, opts ...tetration.Option) ([]tetration.Result, error) {
	results := make([]tetration.Result, len(heights))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, h := range heights {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			r, err := tetration.Tetrate(b, h, opts...)
			if err != nil {
				return fmt.Errorf("height %v: %w", h, err)
			}
			logger.Debug("tetrated",
				zap.Stringer("base", b), zap.Stringer("height", h),
				zap.String("method", string(r.Method)), zap.Stringer("value", r.Value))
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
