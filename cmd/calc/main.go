/*
Calc is an interactive front end for the calculator grammar from the
engine's worked left-recursion examples.

It reads arithmetic expressions (the four operators plus parentheses) one
line at a time, either from an interactive GNU-readline-backed prompt or
piped from stdin, parses each with the peglr-driven calculator grammar, and
prints the evaluated result.

Usage:

	calc [flags]

The flags are:

	-c, --config FILE
		Load driver defaults (require_full_input, preallocate_log) from a
		TOML file. Optional; built-in defaults are used if omitted.

	-d, --direct
		Read lines directly from stdin instead of through GNU readline, for
		piped, non-interactive input.

	-v, --verbose
		Log each parse attempt's outcome (furthest failure position, match
		count) at debug level.
*/
package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"github.com/parsekit/peglr"
	"github.com/parsekit/peglr/internal/calcgrammar"
)

const (
	exitSuccess = iota
	exitInitError
	exitSessionError
)

var (
	flagConfig  = pflag.StringP("config", "c", "", "load driver defaults from a TOML file")
	flagDirect  = pflag.BoolP("direct", "d", false, "read from stdin directly instead of via readline")
	flagVerbose = pflag.BoolP("verbose", "v", false, "log per-parse trace at debug level")
)

func main() {
	os.Exit(run())
}

func run() int {
	pflag.Parse()

	logLevel := zerolog.InfoLevel
	if *flagVerbose {
		logLevel = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		Level(logLevel).
		With().Timestamp().Logger()

	fcfg, err := loadFileConfig(*flagConfig)
	if err != nil {
		logger.Error().Err(err).Str("path", *flagConfig).Msg("failed to load config")
		return exitInitError
	}
	cfg := peglr.Config{RequireFullInput: fcfg.RequireFullInput, PreallocateLog: fcfg.PreallocateLog}

	reader, err := newLineReader(*flagDirect)
	if err != nil {
		logger.Error().Err(err).Msg("failed to start input reader")
		return exitInitError
	}
	defer reader.Close()

	grammar := calcgrammar.New()

	for {
		line, err := reader.ReadLine()
		if err != nil {
			break
		}
		if line == "" {
			continue
		}
		if line == "quit" || line == "exit" {
			break
		}

		start := time.Now()
		out := grammar.Parse(line, cfg)
		elapsed := time.Since(start)

		ev := logger.Debug().
			Str("input", line).
			Bool("ok", out.OK).
			Int("furthest", out.Furthest.Offset).
			Dur("elapsed", elapsed)
		if out.OK {
			ev.Int("matches", len(out.Matches))
		}
		ev.Msg("parse")

		if !out.OK {
			fmt.Fprintf(os.Stderr, "parse error at offset %d\n", out.Furthest.Offset)
			continue
		}

		for _, m := range out.Matches {
			logger.Debug().
				Interface("tag", m.ID).
				Int("begin", m.Begin.Offset).
				Int("end", m.End.Offset).
				Int("children", m.ChildCount).
				Msg("match")
		}

		root := calcgrammar.Reconstruct(out.Matches)
		fmt.Println(calcgrammar.Eval(line, root))
	}

	return exitSuccess
}

// lineReader abstracts over readline's interactive Instance and a plain
// bufio reader over stdin, mirroring the direct/interactive split the
// teacher pack's own CLI front ends use.
type lineReader interface {
	ReadLine() (string, error)
	Close() error
}

func newLineReader(direct bool) (lineReader, error) {
	if direct {
		return newDirectReader(os.Stdin), nil
	}
	return newInteractiveReader()
}

func trimLine(s string) string {
	return strings.TrimSpace(s)
}
