// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package value

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/creachadair/jptr"
	"go4.org/mem"
)

// ErrNotObject is reported by ParseObject when the input is valid JSON whose
// top-level value is not an object.
var ErrNotObject = errors.New("value is not an object")

// Parse parses and returns a single JSON value from r. It is an error if r
// contains no value, or contains anything other than whitespace after the
// value.
func Parse(r io.Reader) (Value, error) {
	h := new(parseHandler)
	st := jptr.NewStream(r)
	if err := st.ParseOne(h); err == io.EOF {
		return nil, errors.New("no value in input")
	} else if err != nil {
		return nil, err
	}
	if len(h.stk) != 1 {
		return nil, errors.New("incomplete value")
	}
	v := h.stk[0].(Value)

	// Anything further, even another complete value, is an error.
	var extra nopHandler
	if err := st.ParseOne(extra); err == nil {
		return nil, errors.New("extra input after value")
	} else if err != io.EOF {
		return nil, err
	}
	return v, nil
}

// ParseString parses and returns a single JSON value from s.
func ParseString(s string) (Value, error) { return Parse(strings.NewReader(s)) }

// ParseObject parses a single JSON value from s, which must be an object.
// If s is valid JSON but not an object, the error wraps ErrNotObject.
func ParseObject(s string) (Object, error) {
	v, err := ParseString(s)
	if err != nil {
		return nil, err
	}
	obj, ok := v.(Object)
	if !ok {
		return nil, fmt.Errorf("got %v: %w", v.Kind(), ErrNotObject)
	}
	return obj, nil
}

// MustParse parses s as a single JSON value, and panics if that fails.
func MustParse(s string) Value {
	v, err := ParseString(s)
	if err != nil {
		panic(fmt.Sprintf("parse %q: %v", s, err))
	}
	return v
}

// A parseHandler implements the jptr.Handler interface to construct values.
//
// The stack holds *Array, *Object, and *Member while they are incomplete, and
// a single Value once the input is consumed.
type parseHandler struct {
	stk []any
}

func (h *parseHandler) top() any { return h.stk[len(h.stk)-1] }

func (h *parseHandler) pop() any {
	last := h.top()
	h.stk = h.stk[:len(h.stk)-1]
	return last
}

func (h *parseHandler) push(v any) { h.stk = append(h.stk, v) }

// reduceValue attaches a completed value to the container atop the stack, or
// leaves it as the result if the stack is empty.
func (h *parseHandler) reduceValue(v Value) {
	if len(h.stk) == 0 {
		h.push(v)
		return
	}
	switch prev := h.top().(type) {
	case *Member:
		prev.Value = v
	case *Array:
		*prev = append(*prev, v)
	default:
		panic(fmt.Sprintf("unexpected %T on parse stack", prev))
	}
}

func (h *parseHandler) BeginObject(loc jptr.Anchor) error {
	h.push(&Object{})
	return nil
}

func (h *parseHandler) EndObject(loc jptr.Anchor) error {
	h.reduceValue(*h.pop().(*Object))
	return nil
}

func (h *parseHandler) BeginArray(loc jptr.Anchor) error {
	h.push(&Array{})
	return nil
}

func (h *parseHandler) EndArray(loc jptr.Anchor) error {
	h.reduceValue(*h.pop().(*Array))
	return nil
}

func (h *parseHandler) BeginMember(loc jptr.Anchor) error {
	key, err := jptr.UnquoteBytes(mem.B(loc.Text()))
	if err != nil {
		return fmt.Errorf("at %s: invalid key: %w", loc.Location().First, err)
	}
	h.push(&Member{Key: string(key)})
	return nil
}

// EndMember adds the completed member to its object. A later member with the
// same key as an earlier one replaces its value, keeping the earlier position.
func (h *parseHandler) EndMember(loc jptr.Anchor) error {
	m := h.pop().(*Member)
	obj := h.top().(*Object)
	obj.Set(m.Key, m.Value)
	return nil
}

func (h *parseHandler) Value(loc jptr.Anchor) error {
	switch tok := loc.Token(); tok {
	case jptr.String:
		dec, err := jptr.UnquoteBytes(mem.B(loc.Text()))
		if err != nil {
			return fmt.Errorf("at %s: invalid string: %w", loc.Location().First, err)
		}
		h.reduceValue(String(dec))
	case jptr.Integer, jptr.Number:
		h.reduceValue(Number{text: string(loc.Text())})
	case jptr.True, jptr.False:
		h.reduceValue(Bool(tok == jptr.True))
	case jptr.Null:
		h.reduceValue(Null{})
	default:
		return fmt.Errorf("unknown value %v", tok)
	}
	return nil
}

func (h *parseHandler) EndOfInput(loc jptr.Anchor) {}

// nopHandler discards all parse events.
type nopHandler struct{}

func (nopHandler) BeginObject(jptr.Anchor) error { return nil }
func (nopHandler) EndObject(jptr.Anchor) error   { return nil }
func (nopHandler) BeginArray(jptr.Anchor) error  { return nil }
func (nopHandler) EndArray(jptr.Anchor) error    { return nil }
func (nopHandler) BeginMember(jptr.Anchor) error { return nil }
func (nopHandler) EndMember(jptr.Anchor) error   { return nil }
func (nopHandler) Value(jptr.Anchor) error       { return nil }
func (nopHandler) EndOfInput(jptr.Anchor)        {}
