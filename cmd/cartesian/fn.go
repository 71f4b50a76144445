package main

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lukaszgryglicki/cartesian"
	"github.com/lukaszgryglicki/cartesian/internal/cli"
)

func unaryFuncs[T cartesian.Float]() map[string]func(cartesian.Complex[T]) cartesian.Complex[T] {
	return map[string]func(cartesian.Complex[T]) cartesian.Complex[T]{
		"conj":  cartesian.Conj[T],
		"proj":  cartesian.Proj[T],
		"exp":   cartesian.Exp[T],
		"log":   cartesian.Log[T],
		"sqrt":  cartesian.Sqrt[T],
		"sin":   cartesian.Sin[T],
		"cos":   cartesian.Cos[T],
		"tan":   cartesian.Tan[T],
		"asin":  cartesian.Asin[T],
		"acos":  cartesian.Acos[T],
		"atan":  cartesian.Atan[T],
		"sinh":  cartesian.Sinh[T],
		"cosh":  cartesian.Cosh[T],
		"tanh":  cartesian.Tanh[T],
		"asinh": cartesian.Asinh[T],
		"acosh": cartesian.Acosh[T],
		"atanh": cartesian.Atanh[T],
	}
}

func scalarFuncs[T cartesian.Float]() map[string]func(cartesian.Complex[T]) T {
	return map[string]func(cartesian.Complex[T]) T{
		"abs":  cartesian.Abs[T],
		"arg":  cartesian.Arg[T],
		"real": cartesian.Real[T],
		"imag": cartesian.Imag[T],
		"norm": cartesian.Complex[T].NormSqr,
	}
}

func funcNames() []string {
	names := slices.Collect(maps.Keys(unaryFuncs[float64]()))
	names = append(names, slices.Collect(maps.Keys(scalarFuncs[float64]()))...)
	names = append(names, "pow")
	slices.Sort(names)
	return names
}

func (a *app) fnCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fn <name> <z> [w]",
		Short: "Evaluate a complex function",
		Long:  "Evaluate one of: " + strings.Join(funcNames(), ", ") + ".\npow takes a base and an exponent.",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return byWidth(a.Config.Width,
				func() error { return runFn[float32](a, cmd, args) },
				func() error { return runFn[float64](a, cmd, args) })
		},
	}
}

func runFn[T cartesian.Float](a *app, cmd *cobra.Command, args []string) error {
	name := strings.ToLower(args[0])
	operands := args[1:]
	want := 1
	if name == "pow" {
		want = 2
	}
	if len(operands) != want {
		return fmt.Errorf("%s takes %d operand(s), got %d", name, want, len(operands))
	}
	zs, err := parseAll[T](operands)
	if err != nil {
		return err
	}

	var out string
	if f, ok := unaryFuncs[T]()[name]; ok {
		out = cli.Format(f(zs[0]), a.Config.Digits)
	} else if f, ok := scalarFuncs[T]()[name]; ok {
		out = cli.FormatScalar(f(zs[0]), a.Config.Digits)
	} else if name == "pow" {
		out = cli.Format(cartesian.Pow(zs[0], zs[1]), a.Config.Digits)
	} else {
		return fmt.Errorf("unknown function %q", name)
	}
	a.Logger.Debug("fn", zap.String("name", name), zap.Strings("operands", operands),
		zap.String("backend", cartesian.Backend()), zap.String("result", out))
	_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
	return err
}
