package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"

	"github.com/caio/go-bitexpr/expr"
	"github.com/caio/go-bitexpr/internal/config"
)

const replBanner = "bitexpr REPL\nCtrl+C cancels input, Ctrl+D exits. Type :quit to exit."

func cmdRepl(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("repl", flag.ContinueOnError)
	fs.SetOutput(stderr)
	defPath, _ := config.DefaultPath()
	cfgPath := fs.String("config", defPath, "configuration file")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	if cfg.Verbose {
		enableDebugLogging(stderr)
		defer expr.SetLogger(nil)
	}

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if hist := cfg.HistoryPath(); hist != "" {
		if f, err := os.Open(hist); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
		defer func() {
			if f, err := os.Create(hist); err == nil {
				_, _ = ln.WriteHistory(f)
				_ = f.Close()
			}
		}()
	}

	fmt.Fprintln(stdout, replBanner)
	for {
		line, err := ln.Prompt(cfg.Prompt)
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(stdout)
			return 0
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}

		src := strings.TrimSpace(line)
		if src == "" {
			continue
		}
		if strings.HasPrefix(src, ":") {
			if strings.ToLower(src) == ":quit" {
				return 0
			}
			fmt.Fprintln(stdout, "unknown command. Type :quit to exit.")
			continue
		}

		ln.AppendHistory(line)
		fmt.Fprintln(stdout, evalLine(src))
	}
}

// evalLine returns the printed tree for src, or the rendered error.
func evalLine(src string) string {
	e, err := expr.ParseString(src)
	if err != nil {
		return strings.TrimRight(expr.WrapErrorWithSource(err, src).Error(), "\n")
	}
	return expr.Print(e)
}
