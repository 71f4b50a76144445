package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/lukaszgryglicki/cartesian"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return strings.TrimSpace(out.String()), err
}

func TestEval(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"3+4i", "*", "1-2i"}, "11-2i"},
		{[]string{"3+4i", "+", "1-2i"}, "4+2i"},
		{[]string{"2", "-", "1+1i"}, "1-1i"},
		{[]string{"1+1i", "-", "2"}, "-1+1i"},
		{[]string{"1+1i", "/", "2"}, "0.5+0.5i"},
		{[]string{"6", "/", "1+1i"}, "3-3i"},
		{[]string{"(2 3)", "*", "i"}, "-3+2i"},
		{[]string{"( 2 )", "-", "1+1i"}, "1-1i"},
		{[]string{"3+4I", "*", "I"}, "-4+3i"},
		{[]string{"0.1", "+", "0.2"}, "0.30000000000000004+0i"},
		{[]string{"--width", "32", "0.1", "+", "0.2"}, "0.3+0i"},
		{[]string{"--digits", "3", "1", "/", "3"}, "0.333+0i"},
		{[]string{"--digits", "6", "2", "^", "10"}, "1024+0i"},
	}
	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			got, err := execute(t, append([]string{"eval"}, tt.args...)...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEvaluateOperandKinds(t *testing.T) {
	var got string
	op := binaryOp[float64]{
		cc: func(a, _ cartesian.C128) cartesian.C128 { got = "cc"; return a },
		cs: func(a cartesian.C128, _ float64) cartesian.C128 { got = "cs"; return a },
		sc: func(_ float64, a cartesian.C128) cartesian.C128 { got = "sc"; return a },
	}
	tests := []struct{ lhs, rhs, want string }{
		{"( 2 )", "1+1i", "sc"},
		{"(2 0)", "1+1i", "cc"},
		{"3+4I", "2", "cs"},
		{"2", "3", "cc"},
	}
	for _, tt := range tests {
		got = ""
		_, err := evaluate(op, tt.lhs, tt.rhs)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "%s op %s", tt.lhs, tt.rhs)
	}
}

func TestEvalErrors(t *testing.T) {
	_, err := execute(t, "eval", "1", "%", "2")
	require.ErrorContains(t, err, "unknown operator")

	_, err = execute(t, "eval", "1", "+", "zz")
	require.ErrorIs(t, err, cartesian.ErrSyntax)

	_, err = execute(t, "eval", "1", "+")
	require.Error(t, err)

	_, err = execute(t, "--width", "16", "eval", "1", "+", "1")
	require.Error(t, err)
}

func TestFn(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"exp", "0"}, "1+0i"},
		{[]string{"abs", "3+4i"}, "5"},
		{[]string{"norm", "3+4i"}, "25"},
		{[]string{"real", "3+4i"}, "3"},
		{[]string{"imag", "3-4i"}, "-4"},
		{[]string{"conj", "3+4i"}, "3-4i"},
		{[]string{"sqrt", "(-4 0)"}, "0+2i"},
		{[]string{"--digits", "6", "pow", "2", "10"}, "1024+0i"},
		{[]string{"--width", "32", "abs", "0.3+0.4i"}, "0.5"},
	}
	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			got, err := execute(t, append([]string{"fn"}, tt.args...)...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFnErrors(t *testing.T) {
	_, err := execute(t, "fn", "pow", "2")
	require.ErrorContains(t, err, "pow takes 2 operand(s)")

	_, err = execute(t, "fn", "gamma", "2")
	require.ErrorContains(t, err, "unknown function")

	_, err = execute(t, "fn", "exp", "1", "2")
	require.ErrorContains(t, err, "exp takes 1 operand(s)")
}

func TestFuncNames(t *testing.T) {
	names := funcNames()
	assert.Contains(t, names, "pow")
	assert.Contains(t, names, "atanh")
	assert.Contains(t, names, "abs")
	assert.IsNonDecreasing(t, names)
}

func parseSample(t *testing.T, out string) (count string, mean cartesian.C128) {
	t.Helper()
	for _, line := range strings.Split(out, "\n") {
		k, v, ok := strings.Cut(line, ": ")
		require.True(t, ok, line)
		switch k {
		case "samples":
			count = v
		case "mean":
			var err error
			mean, err = cartesian.Parse[float64](v)
			require.NoError(t, err)
		}
	}
	return count, mean
}

func TestSample(t *testing.T) {
	out, err := execute(t, "sample", "--n", "20000", "--seed", "3", "--workers", "4")
	require.NoError(t, err)
	require.Contains(t, out, "workers: 4")
	count, mean := parseSample(t, out)
	require.Equal(t, "20,000", count)
	assert.True(t, mean.ApproxEqual(cartesian.C128{Re: 0.5, Im: 0.5}, cartesian.AbsTol(0.02)), "mean %v", mean)

	out32, err := execute(t, "--width", "32", "sample", "--n", "5000", "--workers", "3")
	require.NoError(t, err)
	count, mean = parseSample(t, out32)
	require.Equal(t, "5,000", count)
	assert.True(t, mean.ApproxEqual(cartesian.C128{Re: 0.5, Im: 0.5}, cartesian.AbsTol(0.05)), "mean %v", mean)
}

func TestSampleDeterministic(t *testing.T) {
	a, err := execute(t, "sample", "--n", "1000", "--seed", "9", "--workers", "1")
	require.NoError(t, err)
	b, err := execute(t, "sample", "--n", "1000", "--seed", "9", "--workers", "1")
	require.NoError(t, err)
	require.Equal(t, a, b)
}

func TestSampleMoreWorkersThanSamples(t *testing.T) {
	out, err := execute(t, "sample", "--n", "3", "--workers", "8")
	require.NoError(t, err)
	require.Contains(t, out, "workers: 3")
	count, _ := parseSample(t, out)
	require.Equal(t, "3", count)

	_, err = execute(t, "sample", "--n", "0")
	require.ErrorContains(t, err, "--n must be positive")
}

func TestConfigFileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cartesian.yaml")
	require.NoError(t, os.WriteFile(path, []byte("digits: 2\n"), 0o600))

	got, err := execute(t, "--config", path, "eval", "1", "/", "3")
	require.NoError(t, err)
	assert.Equal(t, "0.33+0i", got)

	t.Setenv("CARTESIAN_WIDTH", "32")
	got, err = execute(t, "eval", "0.1", "+", "0.2")
	require.NoError(t, err)
	assert.Equal(t, "0.3+0i", got)

	// Flags beat the environment.
	got, err = execute(t, "--width", "64", "eval", "0.1", "+", "0.2")
	require.NoError(t, err)
	assert.Equal(t, "0.30000000000000004+0i", got)
}
