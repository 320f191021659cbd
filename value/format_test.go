// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package value_test

import (
	"strings"
	"testing"

	"github.com/creachadair/jptr/value"
	"github.com/google/go-cmp/cmp"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		input string
		opts  value.Options
		want  string
	}{
		{`{}`, value.Options{}, `{}`},
		{`{ "test" : { "key" : 1.0 } }`, value.Options{}, `{"test":{"key":1.0}}`},
		{`{"b":1, "a":2}`, value.Options{}, `{"b":1,"a":2}`},
		{`[1, "two", null, true, 3e-12]`, value.Options{}, `[1,"two",null,true,3e-12]`},
		{`"a/b/c"`, value.Options{}, `"a/b/c"`},

		{`{}`, value.Options{Pretty: true}, `{}`},
		{`[]`, value.Options{Pretty: true}, `[]`},
		{`1`, value.Options{Pretty: true}, `1`},
		{`{"a":[1,2],"b":{},"c":{"d":null}}`, value.Options{Pretty: true}, `{
  "a": [
    1,
    2
  ],
  "b": {},
  "c": {
    "d": null
  }
}`},

		{`{"k":"v"}`, value.Options{Escaped: true}, `"{\"k\":\"v\"}"`},
		{`"s"`, value.Options{Escaped: true}, `"\"s\""`},
		{`[1]`, value.Options{Pretty: true, Escaped: true}, `"[\n  1\n]"`},
	}
	for _, tc := range tests {
		v := value.MustParse(tc.input)
		if diff := cmp.Diff(tc.want, tc.opts.String(v)); diff != "" {
			t.Errorf("Format %#q %+v: (-want, +got)\n%s", tc.input, tc.opts, diff)
		}

		var sb strings.Builder
		if err := tc.opts.Format(&sb, v); err != nil {
			t.Errorf("Format %#q: unexpected error: %v", tc.input, err)
		} else if got := sb.String(); got != tc.want {
			t.Errorf("Format %#q: got %#q, want %#q", tc.input, got, tc.want)
		}
	}
}

func TestFormatRoundTrip(t *testing.T) {
	const input = `{"name":"jptr","tags":["a","b"],"n":{"x":1.50,"y":-2},"ok":false,"none":null}`
	v := value.MustParse(input)
	if got := v.JSON(); got != input {
		t.Errorf("JSON: got %#q, want %#q", got, input)
	}
	pv := value.MustParse(value.Options{Pretty: true}.String(v))
	if !value.Equal(v, pv) {
		t.Errorf("Pretty round trip: got %s, want %s", pv.JSON(), input)
	}
	if got := (value.Array{nil, value.Null{}}).JSON(); got != `[null,null]` {
		t.Errorf("JSON with nil element: got %#q", got)
	}
}
