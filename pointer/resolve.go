// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package pointer

import "github.com/creachadair/jptr/value"

// Resolve returns the value in v denoted by p, and reports whether it was
// found. An empty p refers to v itself.
//
// Each token of p must name an existing member of an object, or a valid,
// in-range index of an array. Scalars have no children, so any token applied
// to a null, Boolean, number, or string fails. Resolution stops at the first
// failure. Resolve does not modify v.
func Resolve(v value.Value, p Pointer) (value.Value, bool) {
	cur := v
	for _, tok := range p {
		switch t := cur.(type) {
		case value.Object:
			m := t.Find(tok)
			if m == nil {
				return nil, false
			}
			cur = m.Value
		case value.Array:
			i, ok := ParseIndex(tok)
			if !ok || i >= len(t) {
				return nil, false
			}
			cur = t[i]
		default:
			return nil, false
		}
	}
	return cur, true
}

// Get is shorthand for Resolve(v, p).
func (p Pointer) Get(v value.Value) (value.Value, bool) { return Resolve(v, p) }

// Lookup parses s as a pointer and resolves it in v. A malformed s is
// reported as not found.
func Lookup(v value.Value, s string) (value.Value, bool) {
	p, err := Parse(s)
	if err != nil {
		return nil, false
	}
	return Resolve(v, p)
}

// Locate returns a writable slot for the value denoted by p in the document
// whose root is *root, and reports whether one was found. An empty p returns
// root itself. Assigning to the slot replaces the value at that location.
//
// Missing structure is created along the way:
//
//   - If an object lacks a member for a token, a member bound to null is
//     appended, and traversal continues into it.
//   - A null, Boolean, number, or string followed by a further token is
//     replaced by an empty object, which then gains a member for the token.
//     The scalar is discarded.
//   - An array token must be a valid index within the bounds of the array.
//     Arrays are never extended; an invalid or out-of-range index fails.
//
// A failing Locate leaves the document unmodified: only an array step can
// fail, and arrays are reached only through existing members, whose traversal
// changes nothing. Once a member has been created, everything below it is
// freshly created objects, where no step fails.
func Locate(root *value.Value, p Pointer) (*value.Value, bool) {
	slot := root
	for _, tok := range p {
		switch t := (*slot).(type) {
		case value.Object:
			m := t.Find(tok)
			if m == nil {
				m = t.Set(tok, value.Null{})
				*slot = t
			}
			slot = &m.Value
		case value.Array:
			i, ok := ParseIndex(tok)
			if !ok || i >= len(t) {
				return nil, false
			}
			slot = &t[i]
		default:
			obj := value.Object{value.Field(tok, value.Null{})}
			*slot = obj
			slot = &obj[0].Value
		}
	}
	return slot, true
}

// Set stores v at the location denoted by p in the document whose root is
// *root, creating missing structure as described for Locate. The previous
// value at that location, if any, is discarded. Set reports whether the
// location could be reached; if not, *root is unchanged.
func Set(root *value.Value, p Pointer, v value.Value) bool {
	slot, ok := Locate(root, p)
	if ok {
		*slot = v
	}
	return ok
}
