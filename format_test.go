package cartesian

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestString(t *testing.T) {
	tests := []struct {
		z    fmt.Stringer
		want string
	}{
		{C128{1, 1}, "1+1i"},
		{C128{1, -1}, "1-1i"},
		{C128{3, 4}, "3+4i"},
		{C128{3, -4}, "3-4i"},
		{C128{-0.5, 1e-100}, "-0.5+1e-100i"},
		{C128{0, math.Copysign(0, -1)}, "0+0i"},
		{C128{math.NaN(), math.Inf(-1)}, "NaN-Inf"+"i"},
		{C128{0, math.NaN()}, "0+NaNi"},
		{C64{1, -1}, "1-1i"},
		{C64{0.1, 0.2}, "0.1+0.2i"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.z.String())
	}
}

func TestFormatVerbs(t *testing.T) {
	z := C128{3.14159, -2.5}
	assert.Equal(t, "3.14159-2.5i", fmt.Sprintf("%v", z))
	assert.Equal(t, "3.14159-2.5i", fmt.Sprint(z))
	assert.Equal(t, "3.14-2.50i", fmt.Sprintf("%.2f", z))
	assert.Equal(t, "3.142e+00-2.500e+00i", fmt.Sprintf("%.3e", z))
	assert.Equal(t, "+3.14159-2.5i", fmt.Sprintf("%+v", z))
	assert.Equal(t, "  1+1i", fmt.Sprintf("%6v", C128{1, 1}))
	assert.Equal(t, "1+1i  |", fmt.Sprintf("%-6v|", C128{1, 1}))
	assert.Equal(t, "%!d(cartesian.Complex=1+1i)", fmt.Sprintf("%d", C128{1, 1}))
}

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want C128
	}{
		{"0", C128{}},
		{"1", C128{1, 0}},
		{"-1", C128{-1, 0}},
		{"i", C128{0, 1}},
		{"+i", C128{0, 1}},
		{"-i", C128{0, -1}},
		{"4i", C128{0, 4}},
		{"-4.5i", C128{0, -4.5}},
		{"3+4i", C128{3, 4}},
		{"3-4i", C128{3, -4}},
		{"3 + 4i", C128{3, 4}},
		{"3-i", C128{3, -1}},
		{"3+i", C128{3, 1}},
		{"2+1e-100i", C128{2, 1e-100}},
		{"2e+3-1E-2i", C128{2000, -0.01}},
		{"3.1415926535+2.718281828i", C128{3.1415926535, 2.718281828}},
		{"(2.5  -4.75)", C128{2.5, -4.75}},
		{"(2.5, -4.75)", C128{2.5, -4.75}},
		{"(7)", C128{7, 0}},
		{"-Inf+Infi", C128{math.Inf(-1), math.Inf(1)}},
		{"3+4I", C128{3, 4}},
		{"I", C128{0, 1}},
		{"-I", C128{0, -1}},
		{"Inf-2I", C128{math.Inf(1), -2}},
		{"( 2 )", C128{2, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse[float64](tt.in)
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("Parse(%q) mismatch (-want +got):\n%s", tt.in, diff)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	for _, in := range []string{"", "  ", "abc", "1+xi", "(1 2 3)", "(1 2", "1++2i", "()"} {
		_, err := Parse[float64](in)
		require.Error(t, err, "Parse(%q)", in)
		require.ErrorIs(t, err, ErrSyntax, "Parse(%q)", in)
	}

	_, err := Parse[float64]("x+2i")
	require.ErrorIs(t, err, strconv.ErrSyntax)

	// Out of range for float32 but not for float64.
	_, err = Parse[float32]("1e300")
	require.ErrorIs(t, err, strconv.ErrRange)
	_, err = Parse[float64]("1e300")
	require.NoError(t, err)
}

func TestMustParse(t *testing.T) {
	require.Equal(t, C64{3, -4}, MustParse[float32]("3-4i"))
	require.Panics(t, func() { MustParse[float64]("nope") })
}

func TestParseFormatRoundTrip(t *testing.T) {
	for _, z := range []C128{{1, 1}, {-0.1, 0.2}, {1e-300, -1e300}, {math.Pi, -math.E}} {
		back, err := Parse[float64](z.String())
		require.NoError(t, err)
		require.Equal(t, z, back)
	}
	for _, z := range []C64{{0.1, -0.3}, {math.MaxFloat32, math.SmallestNonzeroFloat32}} {
		back, err := Parse[float32](z.String())
		require.NoError(t, err)
		require.Equal(t, z, back)
	}
}

func TestTextMarshaling(t *testing.T) {
	type point struct {
		Z C128 `json:"z"`
	}
	b, err := json.Marshal(point{Z: C128{3, -4}})
	require.NoError(t, err)
	require.JSONEq(t, `{"z":"3-4i"}`, string(b))

	var p point
	require.NoError(t, json.Unmarshal([]byte(`{"z":"(1.5, 2)"}`), &p))
	require.Equal(t, C128{1.5, 2}, p.Z)

	err = json.Unmarshal([]byte(`{"z":"bad"}`), &p)
	require.True(t, errors.Is(err, ErrSyntax))
}

func TestHasImag(t *testing.T) {
	assert.True(t, HasImag("3+4i"))
	assert.True(t, HasImag("i"))
	assert.True(t, HasImag("(1 2)"))
	assert.False(t, HasImag("3"))
	assert.False(t, HasImag("-2.5e3"))
	assert.False(t, HasImag("(7)"))
	assert.False(t, HasImag("Inf"))
	assert.True(t, HasImag("3+4I"))
	assert.True(t, HasImag("(1, 2)"))
	assert.False(t, HasImag("( 2 )"))
	assert.False(t, HasImag("( 2, )"))
	assert.False(t, HasImag("1+xi"))
}
