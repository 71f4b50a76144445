package cartesian

import "github.com/lukaszgryglicki/cartesian/internal/libm"

// Transcendental functions. Each call hands its operands to the C99
// complex.h routines of internal/libm by value, at single precision for
// 32-bit scalars and double precision otherwise. Branch cuts and the handling
// of NaN and Inf are those of the backend; nothing is validated here.

// Backend reports which math backend was compiled in: "libm" (cgo) or "purego".
func Backend() string { return libm.Backend }

func apply[T Float](z Complex[T], f32 func(complex64) complex64, f64 func(complex128) complex128) Complex[T] {
	if bitSize[T]() == 32 {
		r := f32(z.Complex64())
		return Complex[T]{Re: T(real(r)), Im: T(imag(r))}
	}
	return FromComplex[T](f64(z.Complex128()))
}

func reduce[T Float](z Complex[T], f32 func(complex64) float32, f64 func(complex128) float64) T {
	if bitSize[T]() == 32 {
		return T(f32(z.Complex64()))
	}
	return T(f64(z.Complex128()))
}

// Abs returns the modulus |z|.
func Abs[T Float](z Complex[T]) T { return reduce(z, libm.Absf, libm.Abs) }

// Arg returns the phase angle of z in [-π, π].
func Arg[T Float](z Complex[T]) T { return reduce(z, libm.Argf, libm.Arg) }

// Real returns the real part of z.
func Real[T Float](z Complex[T]) T { return reduce(z, libm.Realf, libm.Real) }

// Imag returns the imaginary part of z.
func Imag[T Float](z Complex[T]) T { return reduce(z, libm.Imagf, libm.Imag) }

// Conj returns the conjugate of z through the math backend. It agrees with
// z.Conj().
func Conj[T Float](z Complex[T]) Complex[T] { return apply(z, libm.Conjf, libm.Conj) }

// Proj returns the projection of z onto the Riemann sphere.
func Proj[T Float](z Complex[T]) Complex[T] { return apply(z, libm.Projf, libm.Proj) }

// Exp returns e**z.
func Exp[T Float](z Complex[T]) Complex[T] { return apply(z, libm.Expf, libm.Exp) }

// Log returns the principal natural logarithm of z.
func Log[T Float](z Complex[T]) Complex[T] { return apply(z, libm.Logf, libm.Log) }

// Sqrt returns the principal square root of z.
func Sqrt[T Float](z Complex[T]) Complex[T] { return apply(z, libm.Sqrtf, libm.Sqrt) }

// Pow returns base**exp.
func Pow[T Float](base, exp Complex[T]) Complex[T] {
	if bitSize[T]() == 32 {
		r := libm.Powf(base.Complex64(), exp.Complex64())
		return Complex[T]{Re: T(real(r)), Im: T(imag(r))}
	}
	return FromComplex[T](libm.Pow(base.Complex128(), exp.Complex128()))
}

func Sin[T Float](z Complex[T]) Complex[T]  { return apply(z, libm.Sinf, libm.Sin) }
func Cos[T Float](z Complex[T]) Complex[T]  { return apply(z, libm.Cosf, libm.Cos) }
func Tan[T Float](z Complex[T]) Complex[T]  { return apply(z, libm.Tanf, libm.Tan) }
func Asin[T Float](z Complex[T]) Complex[T] { return apply(z, libm.Asinf, libm.Asin) }
func Acos[T Float](z Complex[T]) Complex[T] { return apply(z, libm.Acosf, libm.Acos) }
func Atan[T Float](z Complex[T]) Complex[T] { return apply(z, libm.Atanf, libm.Atan) }

func Sinh[T Float](z Complex[T]) Complex[T]  { return apply(z, libm.Sinhf, libm.Sinh) }
func Cosh[T Float](z Complex[T]) Complex[T]  { return apply(z, libm.Coshf, libm.Cosh) }
func Tanh[T Float](z Complex[T]) Complex[T]  { return apply(z, libm.Tanhf, libm.Tanh) }
func Asinh[T Float](z Complex[T]) Complex[T] { return apply(z, libm.Asinhf, libm.Asinh) }
func Acosh[T Float](z Complex[T]) Complex[T] { return apply(z, libm.Acoshf, libm.Acosh) }
func Atanh[T Float](z Complex[T]) Complex[T] { return apply(z, libm.Atanhf, libm.Atanh) }
