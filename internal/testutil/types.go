// Package testutil defines support code for unit tests.
package testutil

import (
	"github.com/creachadair/jptr/value"
	"github.com/google/go-cmp/cmp"
)

// ValueOpts are options for comparing values with cmp. Numbers are equal only
// if their source text matches, so 1 and 1.0 differ.
var ValueOpts = cmp.Options{
	cmp.Comparer(func(a, b value.Number) bool { return a.Text() == b.Text() }),
}
