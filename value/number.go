// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package value

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/cockroachdb/apd/v3"
	"github.com/creachadair/jptr"
)

// A Number is a numeric value. It retains the text of the number as it was
// written, so that 1.0 and 1 are rendered as they were parsed, while
// comparing equal.
type Number struct{ text string }

func (Number) isValue()   {}
func (Number) Kind() Kind { return NumberKind }

// Text returns the JSON text of n. The zero Number is 0.
func (n Number) Text() string {
	if n.text == "" {
		return "0"
	}
	return n.text
}

func (n Number) JSON() string { return n.Text() }

func (n Number) String() string { return "Number(" + n.Text() + ")" }

// Float64 returns the nearest floating-point value to n.
func (n Number) Float64() float64 {
	f, _ := strconv.ParseFloat(n.Text(), 64)
	return f
}

// Int64 returns the value of n as an int64, and reports whether n is an
// integer in range. Integral values written with a fraction or exponent, such
// as 2.0 or 1e3, are accepted.
func (n Number) Int64() (int64, bool) {
	if z, err := strconv.ParseInt(n.Text(), 10, 64); err == nil {
		return z, true
	}
	d, ok := n.decimal()
	if !ok {
		return 0, false
	}
	z, err := d.Int64()
	return z, err == nil
}

// Equal reports whether n and m denote the same numeric value, regardless of
// how they are written.
func (n Number) Equal(m Number) bool {
	if n.Text() == m.Text() {
		return true
	}
	a, aok := n.decimal()
	b, bok := m.decimal()
	if !aok || !bok {
		return false
	}
	return a.Cmp(b) == 0
}

func (n Number) decimal() (*apd.Decimal, bool) {
	d, _, err := apd.NewFromString(n.Text())
	return d, err == nil
}

// Int constructs a Number with integer value z.
func Int(z int64) Number { return Number{text: strconv.FormatInt(z, 10)} }

// Float constructs a Number with floating-point value f. The text of an
// integral f includes a fractional part, so Float(1) renders as 1.0.
// Float panics if f is infinite or NaN, which JSON cannot represent.
func Float(f float64) Number {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		panic(fmt.Sprintf("value: non-finite number %v", f))
	}
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return Number{text: s}
}

// ParseNumber parses s as a JSON number. The text must be a complete JSON
// number with no surrounding space.
func ParseNumber(s string) (Number, error) {
	sc := jptr.NewScanner(strings.NewReader(s))
	if err := sc.Next(); err != nil {
		return Number{}, fmt.Errorf("invalid number %q: %w", s, err)
	}
	if tok := sc.Token(); tok != jptr.Integer && tok != jptr.Number {
		return Number{}, fmt.Errorf("invalid number %q: found %v", s, tok)
	}
	if sp := sc.Span(); sp.Pos != 0 || sp.End != len(s) {
		return Number{}, fmt.Errorf("invalid number %q: extra input", s)
	}
	return Number{text: s}, nil
}
