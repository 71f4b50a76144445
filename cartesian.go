// Package cartesian provides a generic complex number in Cartesian form for Go.
//
// Complex[T] is a plain value of two scalars (real part first, imaginary part
// second) over float32 or float64. It has the same memory layout as Go's
// complex64/complex128, and therefore as C's float/double _Complex, so it can
// cross a cgo boundary unchanged. Arithmetic is implemented here; the
// transcendental functions (Exp, Log, Sin, ...) are delegated to the platform
// libm complex routines, or to math/cmplx when built without cgo.
//
// Go has no operator overloading, so every operand combination has its own
// name: a.Add(b), a.AddScalar(s), ScalarAdd(s, a), and so on.
//
// Minimal usage:
//
//	z := cartesian.I128.MulScalar(4).AddScalar(3) // 3+4i
//	w := cartesian.Exp(z)
//	fmt.Println(z.NormSqr(), w)
//
// SPDX-License-Identifier: MIT
package cartesian

import "golang.org/x/exp/constraints"

// Float is the set of scalar types a Complex can be built from.
type Float = constraints.Float

// Complex is a complex number re + im·i.
// The zero value is 0+0i and ready to use.
type Complex[T Float] struct {
	Re T // real part
	Im T // imaginary part
}

// C64 is a single precision complex number (layout of complex64).
type C64 = Complex[float32]

// C128 is a double precision complex number (layout of complex128).
type C128 = Complex[float64]

// Imaginary units.
var (
	I64  = C64{Re: 0, Im: 1}
	I128 = C128{Re: 0, Im: 1}
)

// New returns re + im·i.
func New[T Float](re, im T) Complex[T] { return Complex[T]{Re: re, Im: im} }

// Zero returns the additive identity 0+0i.
func Zero[T Float]() Complex[T] { return Complex[T]{} }

// One returns the multiplicative identity 1+0i.
func One[T Float]() Complex[T] { return Complex[T]{Re: 1} }

// Unit returns the imaginary unit 0+1i.
func Unit[T Float]() Complex[T] { return Complex[T]{Im: 1} }

// Equal reports whether both parts are equal under ==.
// As with floats, NaN parts never compare equal.
func (a Complex[T]) Equal(b Complex[T]) bool { return a.Re == b.Re && a.Im == b.Im }

// NormSqr returns re² + im². No square root is taken; see Abs for the modulus.
func (a Complex[T]) NormSqr() T { return T(a.Re*a.Re) + T(a.Im*a.Im) }

// Arithmetic. Products are rounded to T before they are summed so that
// platforms fusing multiply-add give the same bits as the rest.

// Add returns a + b.
func (a Complex[T]) Add(b Complex[T]) Complex[T] {
	return Complex[T]{Re: a.Re + b.Re, Im: a.Im + b.Im}
}

// AddScalar returns a + s.
func (a Complex[T]) AddScalar(s T) Complex[T] { return Complex[T]{Re: a.Re + s, Im: a.Im} }

// Sub returns a - b.
func (a Complex[T]) Sub(b Complex[T]) Complex[T] {
	return Complex[T]{Re: a.Re - b.Re, Im: a.Im - b.Im}
}

// SubScalar returns a - s.
func (a Complex[T]) SubScalar(s T) Complex[T] { return Complex[T]{Re: a.Re - s, Im: a.Im} }

// Mul returns a · b.
func (a Complex[T]) Mul(b Complex[T]) Complex[T] {
	return Complex[T]{
		Re: T(a.Re*b.Re) - T(a.Im*b.Im),
		Im: T(a.Re*b.Im) + T(a.Im*b.Re),
	}
}

// MulScalar returns a · s.
func (a Complex[T]) MulScalar(s T) Complex[T] { return Complex[T]{Re: a.Re * s, Im: a.Im * s} }

// Div returns a / b using the squared norm of b as the denominator.
// The denominator is not rescaled, so |b| near the square root of the
// largest float overflows, and b == 0 gives Inf/NaN parts.
func (a Complex[T]) Div(b Complex[T]) Complex[T] {
	d := b.NormSqr()
	return Complex[T]{
		Re: (T(a.Re*b.Re) + T(a.Im*b.Im)) / d,
		Im: (T(a.Im*b.Re) - T(a.Re*b.Im)) / d,
	}
}

// DivScalar returns a / s.
func (a Complex[T]) DivScalar(s T) Complex[T] { return Complex[T]{Re: a.Re / s, Im: a.Im / s} }

// Neg returns -a.
func (a Complex[T]) Neg() Complex[T] { return Complex[T]{Re: -a.Re, Im: -a.Im} }

// Conj returns the complex conjugate re - im·i.
func (a Complex[T]) Conj() Complex[T] { return Complex[T]{Re: a.Re, Im: -a.Im} }

// Scalar on the left.

// ScalarAdd returns s + a.
func ScalarAdd[T Float](s T, a Complex[T]) Complex[T] { return a.AddScalar(s) }

// ScalarSub returns s - a. Unlike a - s, the imaginary part is negated.
func ScalarSub[T Float](s T, a Complex[T]) Complex[T] {
	return Complex[T]{Re: s - a.Re, Im: -a.Im}
}

// ScalarMul returns s · a.
func ScalarMul[T Float](s T, a Complex[T]) Complex[T] { return a.MulScalar(s) }

// ScalarDiv returns s / a.
func ScalarDiv[T Float](s T, a Complex[T]) Complex[T] {
	d := a.NormSqr()
	return Complex[T]{
		Re: T(s*a.Re) / d,
		Im: -T(s*a.Im) / d,
	}
}

// FromComplex converts a builtin complex value.
func FromComplex[T Float](c complex128) Complex[T] {
	return Complex[T]{Re: T(real(c)), Im: T(imag(c))}
}

// Complex128 returns a as a builtin complex128.
func (a Complex[T]) Complex128() complex128 { return complex(float64(a.Re), float64(a.Im)) }

// Complex64 returns a as a builtin complex64, rounding float64 parts.
func (a Complex[T]) Complex64() complex64 { return complex(float32(a.Re), float32(a.Im)) }
