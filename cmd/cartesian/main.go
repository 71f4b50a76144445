// Command cartesian evaluates complex arithmetic from the command line.
//
// Usage:
//
//	cartesian eval 3+4i / 1-2i
//	cartesian eval 2 - 1+1i            # a bare real operand is a scalar
//	cartesian fn exp 1+3.14159265i
//	cartesian fn pow i i
//	cartesian sample --n 100000 --seed 7 --workers 8
//
// Operands accept "a+bi", "a-bi", "bi", "i", a plain real, or "(a b)".
// Settings come from --config (YAML), CARTESIAN_* variables and flags.
//
// SPDX-License-Identifier: MIT
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/lukaszgryglicki/cartesian"
	"github.com/lukaszgryglicki/cartesian/internal/cli"
	"github.com/lukaszgryglicki/cartesian/internal/config"
)

type app struct {
	cli.Common
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "cartesian",
		Short:         "Complex numbers in Cartesian form",
		Long:          "Evaluate complex arithmetic and the C99 complex.h functions at 32 or 64 bit width.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	a.Register(root)
	a.BindInt(root.PersistentFlags(), "width", "scalar width in bits: 32 or 64",
		func(cfg *config.Config) *int { return &cfg.Width })
	root.AddCommand(a.evalCmd(), a.fnCmd(), a.sampleCmd())
	return root
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		stop()
		os.Exit(1)
	}
}

// byWidth runs the float32 or float64 instantiation of a command.
func byWidth(width int, run32, run64 func() error) error {
	if width == 32 {
		return run32()
	}
	return run64()
}

func parseAll[T cartesian.Float](args []string) ([]cartesian.Complex[T], error) {
	out := make([]cartesian.Complex[T], len(args))
	for i, s := range args {
		z, err := cartesian.Parse[T](s)
		if err != nil {
			return nil, fmt.Errorf("operand %d: %w", i+1, err)
		}
		out[i] = z
	}
	return out, nil
}
