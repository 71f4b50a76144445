// Package tetration evaluates continuous iterates of z ↦ b^z.
//
// T_b(h) is defined as f^{∘h}(1) with f(z) = b^z on the principal branch, so
// for integer h it is the usual right-associated power tower b^b^…^b.
//
// Fractional heights use Koenigs/Schröder linearization at an attracting fixed
// point z* = b^{z*} with multiplier λ = ln(b)·z*, |λ| < 1:
//
//	φ(z) = lim λ^{-n}(f^{∘n}(z) − z*),   f^{∘h}(z) = φ^{-1}(λ^h φ(z)).
//
// φ is approximated with K iterations and φ^{-1} is found with Newton's
// method. Bases without an attracting fixed point only support non-negative
// integer heights, computed directly as a tower.
//
// SPDX-License-Identifier: MIT
package tetration

import (
	"errors"
	"fmt"
	"math"

	"github.com/lukaszgryglicki/cartesian"
)

var (
	// ErrUnsupportedRegime is returned for fractional or negative heights when
	// the base has no usable attracting fixed point.
	ErrUnsupportedRegime = errors.New("tetration: non-attracting regime; fractional heights need Abel/Kneser methods")
	// ErrNoFixedPoint is returned (wrapped) when no fixed point z* = b^{z*} was located.
	ErrNoFixedPoint = errors.New("tetration: fixed point not found")
)

// Method names the algorithm that produced a Result.
type Method string

const (
	MethodConstant  Method = "constant base=1"
	MethodSchroeder Method = "Schröder (Koenigs) fractional iteration"
	MethodTower     Method = "integer tower"
)

// Result of a tetration.
type Result struct {
	Value  cartesian.C128
	Method Method
	// FixedPoint and Multiplier are set for MethodSchroeder.
	FixedPoint cartesian.C128
	Multiplier cartesian.C128
}

// Option configures Tetrate.
type Option func(*options)

type options struct {
	maxIter int
}

// WithMaxIterations bounds the fixed-point iteration and the number of
// Koenigs iterations K. Values below 8 are raised to 8.
func WithMaxIterations(n int) Option {
	return func(o *options) { o.maxIter = max(n, 8) }
}

const (
	defaultMaxIter   = 2000
	maxNewtonFixed   = 100
	maxNewtonInverse = 80
	divergence       = 1e12
	// sqrt of float64 epsilon: the balance point between the truncation error
	// of φ_K and the cancellation in f^{∘K}(z) − z*.
	koenigsTarget = 1.5e-8
)

var one = cartesian.One[float64]()

// Tetrate computes T_b(h).
func Tetrate(b, h cartesian.C128, opts ...Option) (Result, error) {
	o := options{maxIter: defaultMaxIter}
	for _, opt := range opts {
		opt(&o)
	}

	if cartesian.Abs(b.Sub(one)) < 1e-15 {
		return Result{Value: one, Method: MethodConstant}, nil
	}

	lnb := cartesian.Log(b)
	f := func(z cartesian.C128) cartesian.C128 { return cartesian.Exp(lnb.Mul(z)) }

	zstar, lam, fpErr := findAttractingFixedPoint(lnb, f, o.maxIter)
	if fpErr == nil {
		v, err := schroeder(lnb, f, zstar, lam, h, o.maxIter)
		if err == nil {
			return Result{Value: v, Method: MethodSchroeder, FixedPoint: zstar, Multiplier: lam}, nil
		}
		fpErr = err
	}

	if n, ok := integerHeight(h); ok {
		return Result{Value: PowerTower(b, n), Method: MethodTower}, nil
	}
	return Result{}, fmt.Errorf("%w: %w", ErrUnsupportedRegime, fpErr)
}

// PowerTower returns f^{∘n}(1) for n >= 0, i.e. b^b^…^b with n copies of b.
func PowerTower(b cartesian.C128, n int) cartesian.C128 {
	lnb := cartesian.Log(b)
	x := one
	for range n {
		x = cartesian.Exp(lnb.Mul(x))
	}
	return x
}

func schroeder(lnb cartesian.C128, f func(cartesian.C128) cartesian.C128, zstar, lam, h cartesian.C128, maxIter int) (cartesian.C128, error) {
	lamAbs := cartesian.Abs(lam)
	if lamAbs <= 0 || lamAbs >= 1 || math.IsNaN(lamAbs) {
		return cartesian.C128{}, fmt.Errorf("tetration: |λ| = %g is not attracting", lamAbs)
	}
	k := koenigsSteps(lamAbs, maxIter)

	// λ^{-K}, taken as (λ^K)^{-1}.
	lamInvK := cartesian.ScalarDiv(1, cartesian.Exp(cartesian.Log(lam).MulScalar(float64(k))))

	phi1 := koenigsPhi(f, zstar, lamInvK, one, k)
	lamH := cartesian.Exp(cartesian.Log(lam).Mul(h))
	y := lamH.Mul(phi1)

	// First-order inverse near z* as the Newton starting point.
	w := newtonInverse(lnb, zstar, lamInvK, y, zstar.Add(y), k)
	if w.IsNaN() || w.IsInf() {
		return cartesian.C128{}, fmt.Errorf("tetration: Koenigs inversion diverged for h=%v", h)
	}
	return w, nil
}

// koenigsSteps picks K with |λ|^K near koenigsTarget.
func koenigsSteps(lamAbs float64, maxIter int) int {
	k := int(math.Ceil(math.Log(koenigsTarget) / math.Log(lamAbs)))
	return min(max(k, 1), maxIter)
}

// findAttractingFixedPoint locates z* = b^{z*} with |ln(b)·z*| < 1. Plain
// iteration of f from 1 finds the attracting point when there is one; Newton's
// method on z − f(z) then polishes it to full precision, or searches from 1
// when the iteration did not settle.
func findAttractingFixedPoint(lnb cartesian.C128, f func(cartesian.C128) cartesian.C128, maxIter int) (zstar, lam cartesian.C128, err error) {
	z := one
	u := one
	for range maxIter {
		last := u
		u = f(u)
		if u.IsNaN() || cartesian.Abs(u) > divergence {
			break
		}
		if small(u.Sub(last), u, 1e-12) {
			z = u
			break
		}
	}

	converged := false
	for range maxNewtonFixed {
		fz := f(z)
		gp := cartesian.ScalarSub(1, lnb.Mul(fz))
		step := z.Sub(fz).Div(gp)
		z = z.Sub(step)
		if z.IsNaN() || z.IsInf() {
			break
		}
		if small(step, z, 1e-13) {
			converged = true
			break
		}
	}
	if !converged {
		return cartesian.C128{}, cartesian.C128{}, ErrNoFixedPoint
	}
	lam = lnb.Mul(z)
	if a := cartesian.Abs(lam); a >= 1 {
		return cartesian.C128{}, cartesian.C128{}, fmt.Errorf("tetration: fixed point %v is repelling (|λ| = %g)", z, a)
	}
	return z, lam, nil
}

// koenigsPhi approximates φ(z) ≈ λ^{-K}(f^{∘K}(z) − z*).
func koenigsPhi(f func(cartesian.C128) cartesian.C128, zstar, lamInvK, z cartesian.C128, k int) cartesian.C128 {
	u := z
	for range k {
		u = f(u)
	}
	return lamInvK.Mul(u.Sub(zstar))
}

// newtonInverse solves φ_K(w) = y. The derivative of f^{∘K} is carried along
// the forward iteration as the product of f'(u) = ln(b)·f(u).
func newtonInverse(lnb, zstar, lamInvK, y, w0 cartesian.C128, k int) cartesian.C128 {
	w := w0
	for range maxNewtonInverse {
		u, der := w, one
		for range k {
			v := cartesian.Exp(lnb.Mul(u))
			der = der.Mul(lnb.Mul(v))
			u = v
		}
		resid := lamInvK.Mul(u.Sub(zstar)).Sub(y)
		step := resid.Div(lamInvK.Mul(der))
		w = w.Sub(step)
		if small(step, w, 1e-12) || w.IsNaN() {
			break
		}
	}
	return w
}

// integerHeight reports whether h is a non-negative real integer.
func integerHeight(h cartesian.C128) (int, bool) {
	if h.Im != 0 || h.Re < 0 || h.Re != math.Trunc(h.Re) || h.Re > math.MaxInt32 {
		return 0, false
	}
	return int(h.Re), true
}

// small reports |d| <= tol·max(1, |ref|).
func small(d, ref cartesian.C128, tol float64) bool {
	return cartesian.Abs(d) <= tol*max(1, cartesian.Abs(ref))
}
