package cartesian

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// ErrSyntax is returned (wrapped) for malformed complex literals.
var ErrSyntax = errors.New("cartesian: invalid complex literal")

// String renders a as "<re><sign><|im|>i" with the shortest digits that
// round-trip at T's width, e.g. "3+4i", "3-4i", "0.5+1e-100i".
func (a Complex[T]) String() string { return a.format('g', -1, false) }

// Format implements fmt.Formatter. The float verbs %e %E %f %F %g %G (and %v,
// %s as %g) apply to both parts; precision and width are honoured and the +
// flag forces a sign on the real part.
func (a Complex[T]) Format(f fmt.State, verb rune) {
	switch verb {
	case 'v', 's':
		verb = 'g'
	case 'F':
		verb = 'f'
	case 'e', 'E', 'f', 'g', 'G':
	default:
		fmt.Fprintf(f, "%%!%c(cartesian.Complex=%s)", verb, a.String())
		return
	}
	prec, ok := f.Precision()
	if !ok {
		prec = -1
	}
	s := a.format(byte(verb), prec, f.Flag('+'))
	if w, ok := f.Width(); ok && w > len(s) {
		pad := strings.Repeat(" ", w-len(s))
		if f.Flag('-') {
			s += pad
		} else {
			s = pad + s
		}
	}
	_, _ = io.WriteString(f, s)
}

func (a Complex[T]) format(verb byte, prec int, plus bool) string {
	bits := bitSize[T]()
	re := strconv.FormatFloat(float64(a.Re), verb, prec, bits)
	if plus && re[0] != '-' && re[0] != '+' {
		re = "+" + re
	}
	// The sign comes from comparing against zero, so -0 and NaN print with '+'.
	sign := "+"
	if a.Im < 0 {
		sign = "-"
	}
	im := strings.TrimPrefix(strconv.FormatFloat(math.Abs(float64(a.Im)), verb, prec, bits), "+")
	return re + sign + im + "i"
}

// MarshalText implements encoding.TextMarshaler.
func (a Complex[T]) MarshalText() ([]byte, error) { return []byte(a.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler using Parse.
func (a *Complex[T]) UnmarshalText(text []byte) error {
	v, err := Parse[T](string(text))
	if err != nil {
		return err
	}
	*a = v
	return nil
}

// Parse parses a complex literal at T's width. Accepts:
//
//	"a+bi", "a-bi", "bi", "i", "-i", plain real "a", or pair form "(a b)" / "(a, b)".
//
// The unit may also be written as an upper-case I. Parts are anything strconv.ParseFloat accepts, including exponents, Inf and NaN.
func Parse[T Float](s string) (Complex[T], error) {
	re, im, _, ok := splitLiteral(s)
	if !ok {
		return Complex[T]{}, fmt.Errorf("%w %q", ErrSyntax, s)
	}
	bits := bitSize[T]()
	r, err := strconv.ParseFloat(re, bits)
	if err != nil {
		return Complex[T]{}, fmt.Errorf("%w: real part %q: %w", ErrSyntax, re, err)
	}
	i, err := strconv.ParseFloat(im, bits)
	if err != nil {
		return Complex[T]{}, fmt.Errorf("%w: imaginary part %q: %w", ErrSyntax, im, err)
	}
	return Complex[T]{Re: T(r), Im: T(i)}, nil
}

// MustParse panics on error.
func MustParse[T Float](s string) Complex[T] {
	z, err := Parse[T](s)
	if err != nil {
		panic(err)
	}
	return z
}

// HasImag reports whether the literal s spells out an imaginary part,
// i.e. whether it denotes a complex value rather than a bare scalar.
// Malformed literals report false.
func HasImag(s string) bool {
	_, _, hasIm, ok := splitLiteral(s)
	return ok && hasIm
}

// splitLiteral converts the accepted forms into separate real/imag strings.
// hasIm is set when the literal has an i suffix or a second pair field.
func splitLiteral(in string) (re, im string, hasIm, ok bool) {
	s := strings.TrimSpace(in)
	if s == "" {
		return "", "", false, false
	}
	if strings.HasPrefix(s, "(") {
		if !strings.HasSuffix(s, ")") {
			return "", "", false, false
		}
		f := strings.Fields(strings.ReplaceAll(s[1:len(s)-1], ",", " "))
		switch len(f) {
		case 1:
			return f[0], "0", false, true
		case 2:
			return f[0], f[1], true, true
		}
		return "", "", false, false
	}
	// ParseFloat folds case, so "Inf" and "inf" read the same.
	s = strings.ReplaceAll(strings.Join(strings.Fields(s), ""), "I", "i")
	switch s {
	case "i", "+i":
		return "0", "1", true, true
	case "-i":
		return "0", "-1", true, true
	}
	if !strings.HasSuffix(s, "i") {
		return s, "0", false, true
	}
	core := s[:len(s)-1]
	idx := lastSignNotInExponent(core)
	if idx <= 0 {
		return "0", core, true, true
	}
	re, im = core[:idx], core[idx:]
	switch im {
	case "+":
		im = "1"
	case "-":
		im = "-1"
	}
	return re, im, true, true
}

// lastSignNotInExponent finds last '+'/'-' not part of an exponent and not at position 0.
func lastSignNotInExponent(s string) int {
	for i := len(s) - 1; i > 0; i-- {
		if s[i] == '+' || s[i] == '-' {
			if s[i-1] != 'e' && s[i-1] != 'E' {
				return i
			}
		}
	}
	return -1
}
