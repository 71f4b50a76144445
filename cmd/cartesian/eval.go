package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lukaszgryglicki/cartesian"
	"github.com/lukaszgryglicki/cartesian/internal/cli"
)

// binaryOp holds the three operand combinations of one operator.
type binaryOp[T cartesian.Float] struct {
	cc func(a, b cartesian.Complex[T]) cartesian.Complex[T]
	cs func(a cartesian.Complex[T], s T) cartesian.Complex[T]
	sc func(s T, a cartesian.Complex[T]) cartesian.Complex[T]
}

func binaryOps[T cartesian.Float]() map[string]binaryOp[T] {
	pow := cartesian.Pow[T]
	scalar := func(s T) cartesian.Complex[T] { return cartesian.New(s, 0) }
	return map[string]binaryOp[T]{
		"+": {cartesian.Complex[T].Add, cartesian.Complex[T].AddScalar, cartesian.ScalarAdd[T]},
		"-": {cartesian.Complex[T].Sub, cartesian.Complex[T].SubScalar, cartesian.ScalarSub[T]},
		"*": {cartesian.Complex[T].Mul, cartesian.Complex[T].MulScalar, cartesian.ScalarMul[T]},
		"/": {cartesian.Complex[T].Div, cartesian.Complex[T].DivScalar, cartesian.ScalarDiv[T]},
		"^": {
			pow,
			func(a cartesian.Complex[T], s T) cartesian.Complex[T] { return pow(a, scalar(s)) },
			func(s T, a cartesian.Complex[T]) cartesian.Complex[T] { return pow(scalar(s), a) },
		},
	}
}

func (a *app) evalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "eval <a> <op> <b>",
		Short: "Apply + - * / or ^ to two operands",
		Long: "Apply a binary operator. An operand without an imaginary part is a real\n" +
			"scalar, so \"2 - 1+1i\" is evaluated as ScalarSub(2, 1+1i). Put -- before\n" +
			"operands that start with a minus sign.",
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return byWidth(a.Config.Width,
				func() error { return runEval[float32](a, cmd, args) },
				func() error { return runEval[float64](a, cmd, args) })
		},
	}
}

func runEval[T cartesian.Float](a *app, cmd *cobra.Command, args []string) error {
	lhs, opName, rhs := args[0], strings.TrimSpace(args[1]), args[2]
	op, ok := binaryOps[T]()[opName]
	if !ok {
		return fmt.Errorf("unknown operator %q (want one of + - * / ^)", opName)
	}
	z, err := evaluate(op, lhs, rhs)
	if err != nil {
		return err
	}
	a.Logger.Debug("eval",
		zap.String("lhs", lhs), zap.String("op", opName), zap.String("rhs", rhs),
		zap.Stringer("result", z))
	_, err = fmt.Fprintln(cmd.OutOrStdout(), cli.Format(z, a.Config.Digits))
	return err
}

func evaluate[T cartesian.Float](op binaryOp[T], lhs, rhs string) (cartesian.Complex[T], error) {
	zs, err := parseAll[T]([]string{lhs, rhs})
	if err != nil {
		return cartesian.Complex[T]{}, err
	}
	x, y := zs[0], zs[1]
	switch lc, rc := cartesian.HasImag(lhs), cartesian.HasImag(rhs); {
	case lc && !rc:
		return op.cs(x, y.Re), nil
	case !lc && rc:
		return op.sc(x.Re, y), nil
	default:
		return op.cc(x, y), nil
	}
}
