// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Program jptr reads and writes locations in JSON documents addressed by
// JSON Pointers (RFC 6901).
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/creachadair/command"
	"github.com/creachadair/flax"
	"github.com/creachadair/jptr/input"
	"github.com/creachadair/jptr/value"
)

var flags struct {
	Pretty  bool `flag:"pretty,Render get and set output with indentation"`
	Escaped bool `flag:"escaped,Render get and set output as a quoted JSON string"`
	Lenient bool `flag:"lenient,Accept comments and trailing commas in input"`
	Debug   bool `flag:"debug,Log input resolution to stderr"`
}

// exitCode is the process exit status after a successful run.
// The compare command sets it to report inequality.
var exitCode int

const docHelp = `A document argument is parsed as a JSON object. If it is not one, it is
taken as the name of an environment variable, whose content is parsed as
JSON. If that fails too, the document is an empty object.

See https://tools.ietf.org/html/rfc6901 for the syntax of JSON Pointers.
The pointers '' and "" denote the whole document, and \/ is read as /.`

func main() {
	root := &command.C{
		Name:     command.ProgramName(),
		Usage:    "[flags] command [args...]\nhelp [command]",
		Help:     "Read and write JSON documents using JSON Pointers.",
		SetFlags: command.Flags(flax.MustBind, &flags),

		Commands: []*command.C{
			{
				Name: "init",
				Help: "Print an empty object.",
				Run:  command.Adapt(runInit),
			},
			{
				Name:  "get",
				Usage: "<doc> <pointer>",
				Help: `Print the value at pointer in doc.

If the pointer does not resolve to a value, an empty line is printed.

Examples:
  input                          pointer            output
  {"test": "input"}              "/test"            "input"
  {"test": [1, 2, 3, 4]}         "/test/2"          3
  {"test": [{"sub": ["ok"]}]}    "/test/0/sub/0"    "ok"

` + docHelp,
				Run: command.Adapt(runGet),
			},
			{
				Name:  "set",
				Usage: "<doc> <pointer> <value>",
				Help: `Print doc after storing value at pointer.

Objects missing along the path are created, and a null, Boolean, number, or
string in the middle of the path is replaced by an object. Arrays are never
extended. If the location cannot be reached, doc is printed unchanged.

The value is parsed as JSON, or else read from the environment variable it
names.

Examples:
  input                pointer        value      output
  {"test": "input"}    "/test"        "input"    {"test":"input"}
  {}                   "/test"        "input"    {"test":"input"}
  {}                   "/test/key"    1.0        {"test":{"key":1.0}}

` + docHelp,
				Run: command.Adapt(runSet),
			},
			{
				Name:  "type",
				Usage: "<value>",
				Help: `Print the JSON type of value.

The type is one of null, boolean, number, string, array, or object.
The value is parsed as JSON, or else read from the environment variable it
names. If neither works, its type is null.`,
				Run: command.Adapt(runType),
			},
			{
				Name:  "compare",
				Usage: "<doc> <doc>",
				Help: `Report whether two documents are equal.

Print true and exit with status 0 if the documents are structurally equal,
otherwise print false and exit with status 1. The order of object keys does
not matter, and numbers are compared by value.`,
				Run: command.Adapt(runCompare),
			},
			command.HelpCommand(nil),
			command.VersionCommand(),
		},
	}
	command.RunOrFail(root.NewEnv(nil), os.Args[1:])
	os.Exit(exitCode)
}

// newTool constructs a tool from the current flag settings.
func newTool() tool {
	level := slog.LevelWarn
	if flags.Debug {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	return tool{
		in: input.Resolver{
			Lookup:  input.Env(),
			Lenient: flags.Lenient,
			Logger:  log,
		},
		opts: value.Options{Pretty: flags.Pretty, Escaped: flags.Escaped},
		log:  log,
	}
}

func runInit(env *command.Env) error {
	fmt.Println(value.Object{}.JSON())
	return nil
}

func runGet(env *command.Env, doc, ptr string) error {
	fmt.Println(newTool().get(doc, ptr))
	return nil
}

func runSet(env *command.Env, doc, ptr, val string) error {
	t := newTool()
	v, _, err := t.in.Value(val)
	if err != nil {
		return env.Usagef("invalid value: %v", err)
	}
	fmt.Println(t.set(doc, ptr, v))
	return nil
}

func runType(env *command.Env, arg string) error {
	fmt.Println(newTool().typeOf(arg))
	return nil
}

func runCompare(env *command.Env, a, b string) error {
	eq := newTool().compare(a, b)
	fmt.Println(eq)
	if !eq {
		exitCode = 1
	}
	return nil
}
