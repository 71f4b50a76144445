package cartesian

import (
	"sync"
	"unsafe"
)

// Accumulator is a running sum of complex values that multiple goroutines may
// add to. The zero value is an empty accumulator ready to use.
type Accumulator[T Float] struct {
	mu  sync.RWMutex
	sum Complex[T]
	n   int
}

// Add adds z to the sum.
func (a *Accumulator[T]) Add(z Complex[T]) {
	a.mu.Lock()
	a.sum = a.sum.Add(z)
	a.n++
	a.mu.Unlock()
}

// Sum returns the current sum.
func (a *Accumulator[T]) Sum() Complex[T] {
	a.mu.RLock()
	s := a.sum
	a.mu.RUnlock()
	return s
}

// Count returns how many values were added, including merged ones.
func (a *Accumulator[T]) Count() int {
	a.mu.RLock()
	n := a.n
	a.mu.RUnlock()
	return n
}

// Mean returns sum/count, or false when nothing was added.
func (a *Accumulator[T]) Mean() (Complex[T], bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	if a.n == 0 {
		return Complex[T]{}, false
	}
	return a.sum.DivScalar(T(a.n)), true
}

// Reset empties the accumulator.
func (a *Accumulator[T]) Reset() {
	a.mu.Lock()
	a.sum, a.n = Complex[T]{}, 0
	a.mu.Unlock()
}

// Merge adds the sum and count of b into a. Merging an accumulator into
// itself doubles it.
func (a *Accumulator[T]) Merge(b *Accumulator[T]) {
	unlock := lockPair(a, b)
	defer unlock()
	a.sum = a.sum.Add(b.sum)
	a.n += b.n
}

// lockPair write-locks dst and read-locks src in a stable address order to avoid deadlocks.
func lockPair[T Float](dst, src *Accumulator[T]) (unlock func()) {
	if dst == src {
		dst.mu.Lock()
		return func() { dst.mu.Unlock() }
	}
	dp := uintptr(unsafe.Pointer(dst))
	sp := uintptr(unsafe.Pointer(src))
	if dp < sp {
		dst.mu.Lock()
		src.mu.RLock()
		return func() { src.mu.RUnlock(); dst.mu.Unlock() }
	}
	src.mu.RLock()
	dst.mu.Lock()
	return func() { dst.mu.Unlock(); src.mu.RUnlock() }
}
