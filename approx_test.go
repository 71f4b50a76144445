package cartesian

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApproxEqualSameValue(t *testing.T) {
	x, y := I128.AddScalar(1), I128.AddScalar(1)
	require.True(t, x.ApproxEqual(y, AbsTol(1e-5)))
	require.True(t, x.ApproxEqual(y, RelTol(1e-5)))
	require.True(t, x.ApproxEqual(y, UlpTol(1000)))

	x32, y32 := I64.AddScalar(1), I64.AddScalar(1)
	require.True(t, ApproxEqual(x32, y32, AbsTol(1e-5)))
	require.True(t, ApproxEqual(x32, y32, RelTol(1e-5)))
	require.True(t, ApproxEqual(x32, y32, UlpTol(1000)))
}

func TestApproxEqualAbs(t *testing.T) {
	a, b := C128{1, 1}, C128{1.00001, 1.00001}
	assert.True(t, a.ApproxEqual(b, AbsTol(1e-4)))
	assert.False(t, a.ApproxEqual(b, AbsTol(1e-6)))

	a32, b32 := C64{1, 1}, C64{1.00001, 1.00001}
	assert.True(t, a32.ApproxEqual(b32, AbsTol(1e-4)))
	assert.False(t, a32.ApproxEqual(b32, AbsTol(1e-6)))

	// One close part is not enough.
	assert.False(t, C128{1, 1}.ApproxEqual(C128{1, 2}, AbsTol(1e-4)))
}

func TestApproxEqualRel(t *testing.T) {
	a, b := C128{1000, -1000}, C128{1000.0001, -1000.0001}
	assert.True(t, a.ApproxEqual(b, RelTol(1e-6)))
	assert.False(t, a.ApproxEqual(b, RelTol(1e-8)))
	// The same absolute gap is large relative to small values.
	assert.False(t, C128{1e-3, 0}.ApproxEqual(C128{1e-3 + 1e-4, 0}, RelTol(1e-6)))
}

func TestApproxEqualUlp(t *testing.T) {
	next := math.Nextafter(1, 2)
	assert.True(t, C128{1, 1}.ApproxEqual(C128{next, 1}, UlpTol(1)))
	assert.False(t, C128{1, 1}.ApproxEqual(C128{next, 1}, UlpTol(0)))

	next32 := math.Nextafter32(1, 2)
	next32x2 := math.Nextafter32(next32, 2)
	assert.True(t, C64{1, 1}.ApproxEqual(C64{1, next32}, UlpTol(1)))
	assert.False(t, C64{1, 1}.ApproxEqual(C64{1, next32x2}, UlpTol(1)))
	assert.True(t, C64{1, 1}.ApproxEqual(C64{1, next32x2}, UlpTol(2)))

	// Steps are counted at the scalar's own width: one float32 step is many
	// float64 steps.
	assert.False(t, C128{1, 1}.ApproxEqual(C128{1, float64(next32)}, UlpTol(1)))

	// Across zero the distance is the sum of both sides.
	tiny := math.Float32frombits(1)
	assert.True(t, C64{tiny, 0}.ApproxEqual(C64{-tiny, 0}, UlpTol(2)))
	assert.False(t, C64{tiny, 0}.ApproxEqual(C64{-tiny, 0}, UlpTol(1)))
}

func TestApproxEqualNaN(t *testing.T) {
	nan := C128{math.NaN(), 0}
	for _, tol := range []Tolerance{AbsTol(1), RelTol(1), UlpTol(1 << 20)} {
		assert.False(t, nan.ApproxEqual(nan, tol), "%T", tol)
	}
	nan32 := C64{0, float32(math.NaN())}
	assert.False(t, nan32.ApproxEqual(nan32, UlpTol(1<<20)))
}

func TestEqualWithinULP32(t *testing.T) {
	tests := []struct {
		name string
		a, b float32
		ulp  uint
		want bool
	}{
		{"equal", 1.5, 1.5, 0, true},
		{"signed zeros", 0, float32(math.Copysign(0, -1)), 0, true},
		{"one step", 1, math.Nextafter32(1, 0), 1, true},
		{"max to inf", math.MaxFloat32, float32(math.Inf(1)), 1, true},
		{"far apart", 1, 2, 1000, false},
		{"nan", float32(math.NaN()), 1, math.MaxUint32, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, equalWithinULP32(tt.a, tt.b, tt.ulp))
		})
	}
}

// The modulus and the absolute tolerance live side by side in the package.
func TestAbsTolAlongsideModulus(t *testing.T) {
	z := C128{3, 4}
	require.Equal(t, 5.0, Abs(z))
	assert.True(t, ApproxEqual(C128{Abs(z), 0}, C128{5.000001, 0}, AbsTol(1e-5)))

	var tol Tolerance = AbsTol(1e-4)
	assert.True(t, C128{1, 1}.ApproxEqual(C128{1.00001, 1.00001}, tol))
}
