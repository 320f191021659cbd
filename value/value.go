// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package value defines an in-memory representation of JSON values, and a
// parser that constructs values from JSON source.
//
// The Value interface is closed: its only implementations are the types
// Null, Bool, Number, String, Array, and Object defined by this package.
// Code that consumes values should use a type switch over those types:
//
//	switch t := v.(type) {
//	case value.Null:
//	case value.Bool:
//	case value.Number:
//	case value.String:
//	case value.Array:
//	case value.Object:
//	}
//
// Containers own their elements. An Object preserves the order in which its
// members were inserted, which determines the order of keys in output.
package value

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/creachadair/jptr"
)

// A Value is an arbitrary JSON value.
type Value interface {
	// Kind reports the JSON type of the value.
	Kind() Kind

	// JSON renders the value as compact JSON text.
	JSON() string

	isValue()
}

// Kind is the JSON type of a Value.
type Kind byte

// Constants defining the valid Kind values.
const (
	NullKind   Kind = iota // null
	BoolKind               // true, false
	NumberKind             // integer or floating-point number
	StringKind             // quoted string
	ArrayKind              // [ ... ]
	ObjectKind             // { ... }
)

var kindStr = [...]string{
	NullKind:   "null",
	BoolKind:   "boolean",
	NumberKind: "number",
	StringKind: "string",
	ArrayKind:  "array",
	ObjectKind: "object",
}

func (k Kind) String() string {
	if int(k) < len(kindStr) {
		return kindStr[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// KindOf reports the kind of v. A nil Value has kind NullKind.
func KindOf(v Value) Kind {
	if v == nil {
		return NullKind
	}
	return v.Kind()
}

// Null represents the null constant.
type Null struct{}

func (Null) isValue()       {}
func (Null) Kind() Kind     { return NullKind }
func (Null) JSON() string   { return "null" }
func (Null) String() string { return "Null" }

// A Bool is a Boolean constant, true or false.
type Bool bool

func (Bool) isValue()   {}
func (Bool) Kind() Kind { return BoolKind }

func (b Bool) JSON() string { return strconv.FormatBool(bool(b)) }

// A String is a string value. Its contents are stored decoded.
type String string

func (String) isValue()   {}
func (String) Kind() Kind { return StringKind }

// JSON renders s as a quoted JSON string.
func (s String) JSON() string { return jptr.Quote(string(s)) }

// An Array is a sequence of values.
type Array []Value

func (Array) isValue()   {}
func (Array) Kind() Kind { return ArrayKind }

func (a Array) JSON() string {
	var sb strings.Builder
	writeCompact(&sb, a)
	return sb.String()
}

func (a Array) Len() int { return len(a) }

func (a Array) String() string { return fmt.Sprintf("Array(len=%d)", len(a)) }

// An Object is a collection of key-value members in insertion order.
type Object []*Member

func (Object) isValue()   {}
func (Object) Kind() Kind { return ObjectKind }

func (o Object) JSON() string {
	var sb strings.Builder
	writeCompact(&sb, o)
	return sb.String()
}

func (o Object) Len() int { return len(o) }

func (o Object) String() string { return fmt.Sprintf("Object(len=%d)", len(o)) }

// Find returns the first member of o with the given key, or nil.
func (o Object) Find(key string) *Member {
	for _, m := range o {
		if m.Key == key {
			return m
		}
	}
	return nil
}

// Keys returns the keys of o in order.
func (o Object) Keys() []string {
	keys := make([]string, len(o))
	for i, m := range o {
		keys[i] = m.Key
	}
	return keys
}

// Set binds key to v in *o. If o already has a member with that key, its
// value is replaced in place; otherwise a new member is appended. Set returns
// the member holding the value.
func (o *Object) Set(key string, v Value) *Member {
	if m := o.Find(key); m != nil {
		m.Value = v
		return m
	}
	m := &Member{Key: key, Value: v}
	*o = append(*o, m)
	return m
}

// A Member is a single key-value pair belonging to an Object.
type Member struct {
	Key   string
	Value Value
}

func (m Member) String() string { return fmt.Sprintf("Member(key=%q)", m.Key) }

// Field constructs an object member with the given key and value.
func Field(key string, v Value) *Member { return &Member{Key: key, Value: v} }

// Clone returns a deep copy of v. Containers in the result share no storage
// with v.
func Clone(v Value) Value {
	switch t := v.(type) {
	case Array:
		if t == nil {
			return t
		}
		out := make(Array, len(t))
		for i, elt := range t {
			out[i] = Clone(elt)
		}
		return out
	case Object:
		if t == nil {
			return t
		}
		out := make(Object, len(t))
		for i, m := range t {
			out[i] = &Member{Key: m.Key, Value: Clone(m.Value)}
		}
		return out
	default:
		return v // scalars are immutable
	}
}
