// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package pointer implements RFC 6901 JSON Pointers over values.
//
// A Pointer is a sequence of reference tokens. The empty pointer refers to the
// whole document; otherwise each token selects a member of an object by key,
// or an element of an array by offset:
//
//	{"points": [{"x": 1, "y": 2}, {"x": 3, "y": 4}]}
//
// The pointer "/points/1/x" refers to the number 3.
//
// Resolve reads the value at a pointer and never modifies its input. Locate
// finds a writable slot for a pointer, creating missing object members along
// the way. See https://tools.ietf.org/html/rfc6901.
package pointer

import (
	"errors"
	"strconv"
	"strings"
)

// ErrMalformed is reported by Parse for a string that is not a pointer.
var ErrMalformed = errors.New("pointer does not begin with /")

// A Pointer is a parsed JSON Pointer, a sequence of decoded reference tokens.
// A nil or empty Pointer refers to the whole document.
type Pointer []string

// Parse parses s as a JSON Pointer.
//
// The empty string refers to the whole document, and so do the quoted empty
// strings '' and "", for the benefit of shells that cannot easily pass an
// empty argument. Each occurrence of \/ in s is read as /, before s is split
// into tokens. Otherwise a non-empty s must begin with "/", or Parse reports
// ErrMalformed.
func Parse(s string) (Pointer, error) {
	switch s {
	case "", `''`, `""`:
		return nil, nil
	}
	s = strings.ReplaceAll(s, `\/`, "/")
	rest, ok := strings.CutPrefix(s, "/")
	if !ok {
		return nil, ErrMalformed
	}
	toks := strings.Split(rest, "/")
	for i, tok := range toks {
		toks[i] = Unescape(tok)
	}
	return Pointer(toks), nil
}

// MustParse parses s as a Pointer, and panics if it is malformed.
func MustParse(s string) Pointer {
	p, err := Parse(s)
	if err != nil {
		panic("pointer: " + err.Error() + ": " + strconv.Quote(s))
	}
	return p
}

// String encodes p as a JSON Pointer string, escaping its tokens.
func (p Pointer) String() string {
	var sb strings.Builder
	for _, tok := range p {
		sb.WriteByte('/')
		sb.WriteString(Escape(tok))
	}
	return sb.String()
}

// Append returns a new pointer with the given tokens added after those of p.
func (p Pointer) Append(toks ...string) Pointer {
	out := make(Pointer, 0, len(p)+len(toks))
	return append(append(out, p...), toks...)
}

// Escape encodes a reference token: ~ becomes ~0 and / becomes ~1.
func Escape(tok string) string {
	return strings.ReplaceAll(strings.ReplaceAll(tok, "~", "~0"), "/", "~1")
}

// Unescape decodes a reference token: ~1 becomes /, and then ~0 becomes ~.
// The order matters, so that ~01 decodes as ~1 and not as /.
func Unescape(tok string) string {
	return strings.ReplaceAll(strings.ReplaceAll(tok, "~1", "/"), "~0", "~")
}

// ParseIndex reports whether tok is a valid array index, and if so returns
// its value. A valid index is "0" or a decimal number with no leading zero,
// sign, or other characters, and must fit in an int.
func ParseIndex(tok string) (int, bool) {
	if tok == "" || (tok[0] == '0' && len(tok) > 1) {
		return 0, false
	}
	for i := 0; i < len(tok); i++ {
		if tok[i] < '0' || tok[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(tok)
	if err != nil {
		return 0, false // out of range
	}
	return n, true
}
