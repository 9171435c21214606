// Command bitexpr prints parsed expressions and queries prefix sums.
//
//	bitexpr parse [-v] EXPR...
//	bitexpr repl [-config path]
//	bitexpr psum [flags] N...
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/caio/go-bitexpr/expr"
)

const usage = `usage:
  bitexpr parse [-v] EXPR...     print each expression as a call tree
  bitexpr repl [-config path]    parse expressions interactively
  bitexpr psum [flags] N...      build a prefix sum index and query it
`

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		fmt.Fprint(stderr, usage)
		return 2
	}

	switch args[0] {
	case "parse":
		return cmdParse(args[1:], stdout, stderr)
	case "repl":
		return cmdRepl(args[1:], stdout, stderr)
	case "psum":
		return cmdPsum(args[1:], stdout, stderr)
	case "-h", "-help", "--help", "help":
		fmt.Fprint(stdout, usage)
		return 0
	default:
		fmt.Fprintf(stderr, "unknown command %q\n%s", args[0], usage)
		return 2
	}
}

func enableDebugLogging(w io.Writer) {
	expr.SetLogger(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})))
}

func cmdParse(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("parse", flag.ContinueOnError)
	fs.SetOutput(stderr)
	verbose := fs.Bool("v", false, "log parser diagnostics to stderr")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() == 0 {
		fmt.Fprint(stderr, usage)
		return 2
	}
	if *verbose {
		enableDebugLogging(stderr)
		defer expr.SetLogger(nil)
	}

	status := 0
	for _, src := range fs.Args() {
		e, err := expr.ParseString(src)
		if err != nil {
			fmt.Fprint(stderr, expr.WrapErrorWithSource(err, src).Error())
			status = 1
			continue
		}
		fmt.Fprintln(stdout, expr.Print(e))
	}
	return status
}
