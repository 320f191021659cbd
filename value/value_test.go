// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package value_test

import (
	"math"
	"testing"

	"github.com/creachadair/jptr/value"
	"github.com/creachadair/mds/mtest"
	"github.com/google/go-cmp/cmp"
)

func TestKind(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{`null`, "null"},
		{`true`, "boolean"},
		{`false`, "boolean"},
		{`1.123`, "number"},
		{`1`, "number"},
		{`3e-12`, "number"},
		{`-2.1e5`, "number"},
		{`"test"`, "string"},
		{`"false"`, "string"},
		{`"1.123"`, "string"},
		{`[]`, "array"},
		{`[1,2,3,4]`, "array"},
		{`{}`, "object"},
		{`{"key": 123}`, "object"},
	}
	for _, tc := range tests {
		v := value.MustParse(tc.input)
		if got := value.KindOf(v).String(); got != tc.want {
			t.Errorf("KindOf(%s): got %q, want %q", tc.input, got, tc.want)
		}
	}

	if got := value.KindOf(nil); got != value.NullKind {
		t.Errorf("KindOf(nil): got %v, want %v", got, value.NullKind)
	}
	if got := value.Kind(99).String(); got != "Kind(99)" {
		t.Errorf("Kind(99): got %q", got)
	}
}

func TestObjectSet(t *testing.T) {
	var obj value.Object
	obj.Set("a", value.Int(1))
	obj.Set("b", value.Int(2))
	m := obj.Set("a", value.String("x"))

	if got, want := obj.Keys(), []string{"a", "b"}; !cmp.Equal(got, want) {
		t.Errorf("Keys: got %q, want %q", got, want)
	}
	if m.Value != value.String("x") {
		t.Errorf("Set(a): got %v, want x", m.Value)
	}
	if got, want := obj.JSON(), `{"a":"x","b":2}`; got != want {
		t.Errorf("JSON: got %#q, want %#q", got, want)
	}
	if obj.Find("c") != nil {
		t.Error("Find(c): got a member, want nil")
	}
}

func TestClone(t *testing.T) {
	orig := value.MustParse(`{"a": [1, {"b": null}], "c": "d"}`)
	cp := value.Clone(orig)
	if !value.Equal(orig, cp) {
		t.Fatalf("Clone: got %s, want %s", cp.JSON(), orig.JSON())
	}

	// Modifying the copy must not affect the original.
	arr := cp.(value.Object).Find("a").Value.(value.Array)
	inner := arr[1].(value.Object)
	inner.Set("b", value.Bool(true))
	arr[0] = value.String("changed")
	if got, want := orig.JSON(), `{"a":[1,{"b":null}],"c":"d"}`; got != want {
		t.Errorf("Original after edit: got %#q, want %#q", got, want)
	}
	if got, want := cp.JSON(), `{"a":["changed",{"b":true}],"c":"d"}`; got != want {
		t.Errorf("Copy after edit: got %#q, want %#q", got, want)
	}
}

func TestNumber(t *testing.T) {
	tests := []struct {
		input  string
		text   string
		float  float64
		int    int64
		isInt  bool
		parses bool
	}{
		{"0", "0", 0, 0, true, true},
		{"-15", "-15", -15, -15, true, true},
		{"1.0", "1.0", 1, 1, true, true},
		{"1e3", "1e3", 1000, 1000, true, true},
		{"2.5", "2.5", 2.5, 0, false, true},
		{"99999999999999999999", "99999999999999999999", 1e20, 0, false, true},
		{"01", "", 0, 0, false, false},
		{" 1", "", 0, 0, false, false},
		{"1 ", "", 0, 0, false, false},
		{"1x", "", 0, 0, false, false},
		{"true", "", 0, 0, false, false},
		{"", "", 0, 0, false, false},
	}
	for _, tc := range tests {
		n, err := value.ParseNumber(tc.input)
		if !tc.parses {
			if err == nil {
				t.Errorf("ParseNumber(%q): got %v, want error", tc.input, n)
			}
			continue
		} else if err != nil {
			t.Errorf("ParseNumber(%q): unexpected error: %v", tc.input, err)
			continue
		}
		if got := n.Text(); got != tc.text {
			t.Errorf("Text(%q): got %q, want %q", tc.input, got, tc.text)
		}
		if got := n.Float64(); got != tc.float {
			t.Errorf("Float64(%q): got %v, want %v", tc.input, got, tc.float)
		}
		z, ok := n.Int64()
		if ok != tc.isInt || (ok && z != tc.int) {
			t.Errorf("Int64(%q): got %v, %v; want %v, %v", tc.input, z, ok, tc.int, tc.isInt)
		}
	}
}

func TestNumberConstructors(t *testing.T) {
	tests := []struct {
		input value.Number
		want  string
	}{
		{value.Number{}, "0"},
		{value.Int(0), "0"},
		{value.Int(-12), "-12"},
		{value.Float(1), "1.0"},
		{value.Float(-0.25), "-0.25"},
		{value.Float(1e21), "1e+21"},
	}
	for _, tc := range tests {
		if got := tc.input.JSON(); got != tc.want {
			t.Errorf("JSON: got %q, want %q", got, tc.want)
		}
	}

	mtest.MustPanic(t, func() { value.Float(math.Inf(1)) })
	mtest.MustPanic(t, func() { value.Float(math.NaN()) })
}
