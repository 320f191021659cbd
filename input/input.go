// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package input resolves command-line arguments into JSON values.
//
// An argument is first parsed as JSON text. If that fails, the argument is
// treated as the name of a variable, and the variable's content is parsed as
// JSON instead. If that also fails, a default is used. The variable lookup is
// supplied by the caller, so that resolution does not depend on the process
// environment except when the caller asks for it with Env.
package input

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/creachadair/jptr/value"
	"github.com/tailscale/hujson"
)

// ErrNoValue is reported by Resolver.Value when an argument is neither valid
// JSON nor the name of a variable containing valid JSON.
var ErrNoValue = errors.New("not a JSON value or variable")

// A LookupFunc reports the content of the named variable, and whether the
// variable is set.
type LookupFunc func(name string) (string, bool)

// Env returns a LookupFunc that reads variables from the process environment.
func Env() LookupFunc { return os.LookupEnv }

// Map returns a LookupFunc that reads variables from m.
func Map(m map[string]string) LookupFunc {
	return func(name string) (string, bool) {
		s, ok := m[name]
		return s, ok
	}
}

// Source records where a resolved value came from.
type Source byte

const (
	Literal  Source = iota + 1 // the argument text itself
	Variable                   // the content of a variable named by the argument
	Default                    // neither parsed; a default value was used
)

var sourceStr = [...]string{
	Literal:  "literal",
	Variable: "variable",
	Default:  "default",
}

func (s Source) String() string {
	if s > 0 && int(s) < len(sourceStr) {
		return sourceStr[s]
	}
	return "unknown"
}

// A Resolver resolves arguments into values. A zero Resolver parses strict
// JSON literals only, since it has no variables.
type Resolver struct {
	// Lookup reads the content of a variable. If nil, no variables are
	// defined.
	Lookup LookupFunc

	// Lenient, if true, accepts JWCC input: JSON with comments and trailing
	// commas.
	Lenient bool

	// Logger, if non-nil, receives a debug record for each resolution.
	Logger *slog.Logger
}

// Document resolves arg as a document. A literal argument must be a JSON
// object. The content of a variable may be any JSON value. If neither
// applies, the result is an empty object.
func (r Resolver) Document(arg string) (value.Value, Source) {
	if obj, err := r.parse(arg); err == nil {
		if _, ok := obj.(value.Object); ok {
			return r.done(arg, obj, Literal)
		}
		r.logger().Debug("literal is not an object", "arg", arg, "kind", obj.Kind())
	}
	if v, ok := r.variable(arg); ok {
		return r.done(arg, v, Variable)
	}
	return r.done(arg, value.Object{}, Default)
}

// Datum resolves arg as a value of any kind, either literal or from a
// variable. If neither applies, the result is null.
func (r Resolver) Datum(arg string) (value.Value, Source) {
	v, src, err := r.Value(arg)
	if err != nil {
		return r.done(arg, value.Null{}, Default)
	}
	return v, src
}

// Value resolves arg as a value of any kind, either literal or from a
// variable. If neither applies, Value reports an error wrapping ErrNoValue.
func (r Resolver) Value(arg string) (value.Value, Source, error) {
	if v, err := r.parse(arg); err == nil {
		v, src := r.done(arg, v, Literal)
		return v, src, nil
	}
	if v, ok := r.variable(arg); ok {
		v, src := r.done(arg, v, Variable)
		return v, src, nil
	}
	return nil, 0, fmt.Errorf("resolve %q: %w", arg, ErrNoValue)
}

// variable reports the value of the variable named by arg, if it is set and
// contains valid JSON. An unset variable reads as empty, which does not parse.
func (r Resolver) variable(name string) (value.Value, bool) {
	if r.Lookup == nil {
		return nil, false
	}
	text, _ := r.Lookup(name)
	v, err := r.parse(text)
	if err != nil {
		r.logger().Debug("variable is not JSON", "name", name, "err", err)
		return nil, false
	}
	return v, true
}

func (r Resolver) parse(text string) (value.Value, error) {
	if r.Lenient {
		std, err := hujson.Standardize([]byte(text))
		if err != nil {
			return nil, err
		}
		text = string(std)
	}
	return value.ParseString(text)
}

func (r Resolver) done(arg string, v value.Value, src Source) (value.Value, Source) {
	r.logger().Debug("resolved argument", "arg", arg, "source", src, "kind", v.Kind())
	return v, src
}

func (r Resolver) logger() *slog.Logger {
	if r.Logger == nil {
		return discard
	}
	return r.Logger
}

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))
