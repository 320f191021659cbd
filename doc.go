// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package jptr implements the lexical layer for reading JSON documents that
// are addressed with RFC 6901 JSON Pointers.
//
// The packages of this module are arranged in layers:
//
//	Package            | Contents
//	------------------ | ----------------------------------------------------
//	jptr               | Scanner, Stream parser, Handler, Quote/Unquote
//	jptr/value         | JSON values, parsing, classification, equality, output
//	jptr/pointer       | Pointer syntax, read resolution, auto-vivifying writes
//	jptr/input         | Command-line tokens as literal JSON or variables
//
// # Scanning
//
// The Scanner type implements a lexical scanner for JSON. Construct a scanner
// from an io.Reader and call its Next method to iterate over the stream. Next
// advances to the next input token and returns nil, or reports an error:
//
//	s := jptr.NewScanner(input)
//	for s.Next() == nil {
//	   log.Printf("Next token: %v", s.Token())
//	}
//
// Next returns io.EOF when the input has been fully consumed. Any other error
// indicates an I/O or lexical error in the input.
//
// # Streaming
//
// The Stream type implements an event-driven parser for JSON. The parser calls
// methods on a Handler value to report the structure of the input. In case of
// error, parsing is terminated and an error of concrete type *jptr.SyntaxError
// is returned.
//
//	s := jptr.NewStream(input)
//	if err := s.Parse(handler); err != nil {
//	   log.Fatalf("Parse failed: %v", err)
//	}
//
// To parse a single value from the front of the input, call ParseOne. This
// method returns io.EOF if no further values are available.
//
// # Handlers
//
// The methods of a Handler correspond to the syntax of JSON values:
//
//	JSON type  | Methods                   | Description
//	---------- | ------------------------- | ---------------------------------
//	object     | BeginObject, EndObject    | { ... }
//	array      | BeginArray, EndArray      | [ ... ]
//	member     | BeginMember, EndMember    | "key": value
//	value      | Value                     | true, false, null, number, string
//	--         | EndOfInput                | end of input
//
// Each method is passed an Anchor that reports the location, token type, and
// text of the event. An Anchor is only valid for the duration of the call.
package jptr
