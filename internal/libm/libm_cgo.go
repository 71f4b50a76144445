//go:build cgo && !purego

// Package libm binds the C99 complex.h routines used by the cartesian
// package. With cgo it calls the platform libm directly; complex128 and
// complex64 are passed by value as double/float _Complex. Build with the
// purego tag (or CGO_ENABLED=0) to use math/cmplx instead.
//
// SPDX-License-Identifier: MIT
package libm

/*
#cgo LDFLAGS: -lm
#include <complex.h>
*/
import "C"

// Backend names the compiled-in implementation.
const Backend = "libm"

func d(z complex128) C.complexdouble { return C.complexdouble(z) }
func f(z complex64) C.complexfloat   { return C.complexfloat(z) }

// Double precision.

func Abs(z complex128) float64     { return float64(C.cabs(d(z))) }
func Arg(z complex128) float64     { return float64(C.carg(d(z))) }
func Real(z complex128) float64    { return float64(C.creal(d(z))) }
func Imag(z complex128) float64    { return float64(C.cimag(d(z))) }
func Conj(z complex128) complex128 { return complex128(C.conj(d(z))) }
func Proj(z complex128) complex128 { return complex128(C.cproj(d(z))) }
func Exp(z complex128) complex128  { return complex128(C.cexp(d(z))) }
func Log(z complex128) complex128  { return complex128(C.clog(d(z))) }
func Sqrt(z complex128) complex128 { return complex128(C.csqrt(d(z))) }
func Pow(x, y complex128) complex128 {
	return complex128(C.cpow(d(x), d(y)))
}

func Sin(z complex128) complex128   { return complex128(C.csin(d(z))) }
func Cos(z complex128) complex128   { return complex128(C.ccos(d(z))) }
func Tan(z complex128) complex128   { return complex128(C.ctan(d(z))) }
func Asin(z complex128) complex128  { return complex128(C.casin(d(z))) }
func Acos(z complex128) complex128  { return complex128(C.cacos(d(z))) }
func Atan(z complex128) complex128  { return complex128(C.catan(d(z))) }
func Sinh(z complex128) complex128  { return complex128(C.csinh(d(z))) }
func Cosh(z complex128) complex128  { return complex128(C.ccosh(d(z))) }
func Tanh(z complex128) complex128  { return complex128(C.ctanh(d(z))) }
func Asinh(z complex128) complex128 { return complex128(C.casinh(d(z))) }
func Acosh(z complex128) complex128 { return complex128(C.cacosh(d(z))) }
func Atanh(z complex128) complex128 { return complex128(C.catanh(d(z))) }

// Single precision.

func Absf(z complex64) float32      { return float32(C.cabsf(f(z))) }
func Argf(z complex64) float32      { return float32(C.cargf(f(z))) }
func Realf(z complex64) float32     { return float32(C.crealf(f(z))) }
func Imagf(z complex64) float32     { return float32(C.cimagf(f(z))) }
func Conjf(z complex64) complex64   { return complex64(C.conjf(f(z))) }
func Projf(z complex64) complex64   { return complex64(C.cprojf(f(z))) }
func Expf(z complex64) complex64    { return complex64(C.cexpf(f(z))) }
func Logf(z complex64) complex64    { return complex64(C.clogf(f(z))) }
func Sqrtf(z complex64) complex64   { return complex64(C.csqrtf(f(z))) }
func Powf(x, y complex64) complex64 { return complex64(C.cpowf(f(x), f(y))) }

func Sinf(z complex64) complex64   { return complex64(C.csinf(f(z))) }
func Cosf(z complex64) complex64   { return complex64(C.ccosf(f(z))) }
func Tanf(z complex64) complex64   { return complex64(C.ctanf(f(z))) }
func Asinf(z complex64) complex64  { return complex64(C.casinf(f(z))) }
func Acosf(z complex64) complex64  { return complex64(C.cacosf(f(z))) }
func Atanf(z complex64) complex64  { return complex64(C.catanf(f(z))) }
func Sinhf(z complex64) complex64  { return complex64(C.csinhf(f(z))) }
func Coshf(z complex64) complex64  { return complex64(C.ccoshf(f(z))) }
func Tanhf(z complex64) complex64  { return complex64(C.ctanhf(f(z))) }
func Asinhf(z complex64) complex64 { return complex64(C.casinhf(f(z))) }
func Acoshf(z complex64) complex64 { return complex64(C.cacoshf(f(z))) }
func Atanhf(z complex64) complex64 { return complex64(C.catanhf(f(z))) }
