package cartesian

import "math/rand/v2"

// Random returns a value whose parts are drawn independently from T's
// uniform [0, 1) sampler. A nil r uses the package-level generator.
func Random[T Float](r *rand.Rand) Complex[T] {
	return Complex[T]{Re: sample[T](r), Im: sample[T](r)}
}

func sample[T Float](r *rand.Rand) T {
	if bitSize[T]() == 32 {
		if r == nil {
			return T(rand.Float32())
		}
		return T(r.Float32())
	}
	if r == nil {
		return T(rand.Float64())
	}
	return T(r.Float64())
}
