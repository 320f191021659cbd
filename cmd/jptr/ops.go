// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package main

import (
	"log/slog"

	"github.com/creachadair/jptr/input"
	"github.com/creachadair/jptr/pointer"
	"github.com/creachadair/jptr/value"
)

// A tool carries the settings shared by the subcommands.
type tool struct {
	in   input.Resolver
	opts value.Options
	log  *slog.Logger
}

// get returns the rendered value at ptr in doc, or "" if there is none.
func (t tool) get(doc, ptr string) string {
	root, _ := t.in.Document(doc)
	p, err := pointer.Parse(ptr)
	if err != nil {
		t.log.Debug("get: invalid pointer", "pointer", ptr, "err", err)
		return ""
	}
	v, ok := pointer.Resolve(root, p)
	if !ok {
		t.log.Debug("get: not found", "pointer", ptr)
		return ""
	}
	return t.opts.String(v)
}

// set returns the rendered document after storing v at ptr in doc. If ptr is
// malformed or cannot be reached, the document is rendered unchanged.
func (t tool) set(doc, ptr string, v value.Value) string {
	root, _ := t.in.Document(doc)
	p, err := pointer.Parse(ptr)
	if err != nil {
		t.log.Debug("set: invalid pointer", "pointer", ptr, "err", err)
	} else if !pointer.Set(&root, p, v) {
		t.log.Debug("set: location not reachable", "pointer", ptr)
	}
	return t.opts.String(root)
}

// typeOf returns the name of the kind of arg.
func (t tool) typeOf(arg string) string {
	v, _ := t.in.Datum(arg)
	return value.KindOf(v).String()
}

// compare reports whether documents a and b are structurally equal.
func (t tool) compare(a, b string) bool {
	x, _ := t.in.Document(a)
	y, _ := t.in.Document(b)
	return value.Equal(x, y)
}
