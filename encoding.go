// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jptr

import (
	"errors"

	"github.com/creachadair/jptr/internal/escape"

	"go4.org/mem"
)

// Quote encodes src as a JSON string value. The contents are escaped and
// double quotation marks are added.
func Quote(src string) string {
	q := escape.Quote(mem.S(src))
	buf := make([]byte, 0, len(q)+2)
	buf = append(buf, '"')
	buf = append(buf, q...)
	return string(append(buf, '"'))
}

// Unquote decodes a JSON string value. Double quotation marks are removed,
// and escape sequences are replaced with their unescaped equivalents.
//
// Invalid escapes are replaced by the Unicode replacement rune. Unquote
// reports an error for an incomplete escape sequence.
func Unquote(src string) (string, error) {
	dec, err := UnquoteBytes(mem.S(src))
	if err != nil {
		return "", err
	}
	return string(dec), nil
}

// UnquoteBytes is as Unquote, but operates on a read-only view of the quoted
// text and returns a fresh byte slice.
func UnquoteBytes(src mem.RO) ([]byte, error) {
	if src.Len() < 2 || src.At(0) != '"' || src.At(src.Len()-1) != '"' {
		return nil, errors.New("missing quotations")
	}
	return escape.Unquote(src.Slice(1, src.Len()-1))
}
