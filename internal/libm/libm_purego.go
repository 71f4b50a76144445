//go:build !cgo || purego

// Package libm provides the C99 complex.h routines used by the cartesian
// package. This build runs on math/cmplx; single precision widens to
// complex128 and rounds the result back.
//
// SPDX-License-Identifier: MIT
package libm

import (
	"math"
	"math/cmplx"
)

// Backend names the compiled-in implementation.
const Backend = "purego"

// Double precision.

func Abs(z complex128) float64     { return cmplx.Abs(z) }
func Arg(z complex128) float64     { return cmplx.Phase(z) }
func Real(z complex128) float64    { return real(z) }
func Imag(z complex128) float64    { return imag(z) }
func Conj(z complex128) complex128 { return cmplx.Conj(z) }
func Exp(z complex128) complex128  { return cmplx.Exp(z) }
func Log(z complex128) complex128  { return cmplx.Log(z) }
func Sqrt(z complex128) complex128 { return cmplx.Sqrt(z) }
func Pow(x, y complex128) complex128 {
	return cmplx.Pow(x, y)
}

// Proj maps every infinity onto the single point at infinity of the Riemann
// sphere, keeping the sign of the imaginary part; finite values are returned
// unchanged. math/cmplx has no equivalent.
func Proj(z complex128) complex128 {
	if cmplx.IsInf(z) {
		return complex(math.Inf(1), math.Copysign(0, imag(z)))
	}
	return z
}

func Sin(z complex128) complex128   { return cmplx.Sin(z) }
func Cos(z complex128) complex128   { return cmplx.Cos(z) }
func Tan(z complex128) complex128   { return cmplx.Tan(z) }
func Asin(z complex128) complex128  { return cmplx.Asin(z) }
func Acos(z complex128) complex128  { return cmplx.Acos(z) }
func Atan(z complex128) complex128  { return cmplx.Atan(z) }
func Sinh(z complex128) complex128  { return cmplx.Sinh(z) }
func Cosh(z complex128) complex128  { return cmplx.Cosh(z) }
func Tanh(z complex128) complex128  { return cmplx.Tanh(z) }
func Asinh(z complex128) complex128 { return cmplx.Asinh(z) }
func Acosh(z complex128) complex128 { return cmplx.Acosh(z) }
func Atanh(z complex128) complex128 { return cmplx.Atanh(z) }

// Single precision.

func wide(fn func(complex128) complex128) func(complex64) complex64 {
	return func(z complex64) complex64 { return complex64(fn(complex128(z))) }
}

func Absf(z complex64) float32      { return float32(cmplx.Abs(complex128(z))) }
func Argf(z complex64) float32      { return float32(cmplx.Phase(complex128(z))) }
func Realf(z complex64) float32     { return real(z) }
func Imagf(z complex64) float32     { return imag(z) }
func Conjf(z complex64) complex64   { return complex(real(z), -imag(z)) }
func Powf(x, y complex64) complex64 { return complex64(cmplx.Pow(complex128(x), complex128(y))) }

var (
	Projf  = wide(Proj)
	Expf   = wide(cmplx.Exp)
	Logf   = wide(cmplx.Log)
	Sqrtf  = wide(cmplx.Sqrt)
	Sinf   = wide(cmplx.Sin)
	Cosf   = wide(cmplx.Cos)
	Tanf   = wide(cmplx.Tan)
	Asinf  = wide(cmplx.Asin)
	Acosf  = wide(cmplx.Acos)
	Atanf  = wide(cmplx.Atan)
	Sinhf  = wide(cmplx.Sinh)
	Coshf  = wide(cmplx.Cosh)
	Tanhf  = wide(cmplx.Tanh)
	Asinhf = wide(cmplx.Asinh)
	Acoshf = wide(cmplx.Acosh)
	Atanhf = wide(cmplx.Atanh)
)
