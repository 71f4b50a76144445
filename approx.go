package cartesian

import (
	"math"
	"unsafe"

	"gonum.org/v1/gonum/floats/scalar"
)

// Tolerance decides whether two scalars of the given bit size (32 or 64) are
// close enough. Both arguments are widened to float64, which is exact for
// float32 inputs.
type Tolerance interface {
	Within(a, b float64, bitSize int) bool
}

// AbsTol accepts |a-b| <= ε.
type AbsTol float64

// RelTol accepts |a-b| <= ε·max(|a|,|b|).
type RelTol float64

// UlpTol accepts values at most N representable steps apart, counted at the
// scalar's own width.
type UlpTol uint

// Within implements Tolerance.
func (t AbsTol) Within(a, b float64, _ int) bool { return scalar.EqualWithinAbs(a, b, float64(t)) }

// Within implements Tolerance.
func (t RelTol) Within(a, b float64, _ int) bool { return scalar.EqualWithinRel(a, b, float64(t)) }

// Within implements Tolerance.
func (t UlpTol) Within(a, b float64, bitSize int) bool {
	if bitSize == 32 {
		return equalWithinULP32(float32(a), float32(b), uint(t))
	}
	return scalar.EqualWithinULP(a, b, uint(t))
}

// ApproxEqual reports whether a and b are close under tol, part by part.
func (a Complex[T]) ApproxEqual(b Complex[T], tol Tolerance) bool {
	bits := bitSize[T]()
	return tol.Within(float64(a.Re), float64(b.Re), bits) &&
		tol.Within(float64(a.Im), float64(b.Im), bits)
}

// ApproxEqual is the function form of Complex.ApproxEqual.
func ApproxEqual[T Float](a, b Complex[T], tol Tolerance) bool { return a.ApproxEqual(b, tol) }

// IsNaN reports whether either part is NaN.
func (a Complex[T]) IsNaN() bool {
	return math.IsNaN(float64(a.Re)) || math.IsNaN(float64(a.Im))
}

// IsInf reports whether either part is infinite.
func (a Complex[T]) IsInf() bool {
	return math.IsInf(float64(a.Re), 0) || math.IsInf(float64(a.Im), 0)
}

func bitSize[T Float]() int {
	var zero T
	return int(unsafe.Sizeof(zero)) * 8
}

// equalWithinULP32 mirrors scalar.EqualWithinULP on float32 bit patterns.
func equalWithinULP32(a, b float32, ulp uint) bool {
	if a == b {
		return true
	}
	if math.IsNaN(float64(a)) || math.IsNaN(float64(b)) {
		return false
	}
	ba, bb := math.Float32bits(a), math.Float32bits(b)
	if ba>>31 != bb>>31 {
		// Opposite signs: distance through zero.
		return uint64(ba&^(1<<31))+uint64(bb&^(1<<31)) <= uint64(ulp)
	}
	if ba < bb {
		ba, bb = bb, ba
	}
	return uint64(ba-bb) <= uint64(ulp)
}
