// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package value

import "github.com/creachadair/mds/mapset"

// Equal reports whether a and b are structurally equal.
//
// Values of different kinds are never equal. Numbers are compared by numeric
// value, so 1 and 1.0 are equal. Arrays are equal if they have the same length
// and equal elements in the same order. Objects are equal if they have the
// same set of keys, and equal values for each key; the order of members does
// not matter. A nil Value is equal to Null.
func Equal(a, b Value) bool {
	if a == nil {
		a = Null{}
	}
	if b == nil {
		b = Null{}
	}
	switch x := a.(type) {
	case Null:
		_, ok := b.(Null)
		return ok
	case Bool:
		y, ok := b.(Bool)
		return ok && x == y
	case Number:
		y, ok := b.(Number)
		return ok && x.Equal(y)
	case String:
		y, ok := b.(String)
		return ok && x == y
	case Array:
		y, ok := b.(Array)
		if !ok || len(x) != len(y) {
			return false
		}
		for i := range x {
			if !Equal(x[i], y[i]) {
				return false
			}
		}
		return true
	case Object:
		y, ok := b.(Object)
		return ok && equalObjects(x, y)
	default:
		return false
	}
}

func equalObjects(x, y Object) bool {
	xk, yk := mapset.New(x.Keys()...), mapset.New(y.Keys()...)
	if xk.Len() != yk.Len() {
		return false
	}
	for _, m := range y {
		if !xk.Has(m.Key) {
			return false
		}
		if !Equal(x.Find(m.Key).Value, m.Value) {
			return false
		}
	}
	return true
}
