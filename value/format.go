// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package value

import (
	"io"
	"strings"

	"github.com/creachadair/jptr"
)

// Options control the rendering of values by Format.
// A zero value renders compact JSON.
type Options struct {
	// Render indented text, one array element or object member per line.
	Pretty bool

	// Render the resulting JSON text itself as a quoted JSON string.
	Escaped bool
}

func (Options) indent() string { return "  " }

// Format renders v to w using the settings from o.
func (o Options) Format(w io.Writer, v Value) error {
	_, err := io.WriteString(w, o.String(v))
	return err
}

// String renders v as a string using the settings from o.
func (o Options) String(v Value) string {
	var sb strings.Builder
	if o.Pretty {
		o.writePretty(&sb, v, "")
	} else {
		writeCompact(&sb, v)
	}
	if o.Escaped {
		return jptr.Quote(sb.String())
	}
	return sb.String()
}

// Format renders v to w as compact JSON.
func Format(w io.Writer, v Value) error { return Options{}.Format(w, v) }

// writeCompact writes the compact JSON encoding of v to sb. A nil v is
// written as null.
func writeCompact(sb *strings.Builder, v Value) {
	switch t := v.(type) {
	case Array:
		sb.WriteByte('[')
		for i, elt := range t {
			if i > 0 {
				sb.WriteByte(',')
			}
			writeCompact(sb, elt)
		}
		sb.WriteByte(']')
	case Object:
		sb.WriteByte('{')
		for i, m := range t {
			if i > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(jptr.Quote(m.Key))
			sb.WriteByte(':')
			writeCompact(sb, m.Value)
		}
		sb.WriteByte('}')
	case nil:
		sb.WriteString("null")
	default:
		sb.WriteString(t.JSON())
	}
}

// writePretty writes v to sb indented, where indent is the indentation of the
// line on which v begins. Empty containers are written as [] and {}.
func (o Options) writePretty(sb *strings.Builder, v Value, indent string) {
	switch t := v.(type) {
	case Array:
		if len(t) == 0 {
			sb.WriteString("[]")
			return
		}
		adent := indent + o.indent()
		sb.WriteString("[\n")
		for i, elt := range t {
			if i > 0 {
				sb.WriteString(",\n")
			}
			sb.WriteString(adent)
			o.writePretty(sb, elt, adent)
		}
		sb.WriteString("\n" + indent + "]")
	case Object:
		if len(t) == 0 {
			sb.WriteString("{}")
			return
		}
		mdent := indent + o.indent()
		sb.WriteString("{\n")
		for i, m := range t {
			if i > 0 {
				sb.WriteString(",\n")
			}
			sb.WriteString(mdent)
			sb.WriteString(jptr.Quote(m.Key))
			sb.WriteString(": ")
			o.writePretty(sb, m.Value, mdent)
		}
		sb.WriteString("\n" + indent + "}")
	default:
		writeCompact(sb, v)
	}
}
