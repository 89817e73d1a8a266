package main

import (
	"bufio"
	"fmt"
	"io"

	"github.com/chzyer/readline"
)

// directReader reads lines from a plain io.Reader, for piped or
// non-interactive input.
type directReader struct {
	r *bufio.Reader
}

func newDirectReader(r io.Reader) *directReader {
	return &directReader{r: bufio.NewReader(r)}
}

func (dr *directReader) ReadLine() (string, error) {
	line, err := dr.r.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return trimLine(line), nil
}

func (dr *directReader) Close() error { return nil }

// interactiveReader reads lines from an interactive terminal via GNU
// readline, giving history and line editing.
type interactiveReader struct {
	rl *readline.Instance
}

func newInteractiveReader() (*interactiveReader, error) {
	rl, err := readline.NewEx(&readline.Config{Prompt: "calc> "})
	if err != nil {
		return nil, fmt.Errorf("create readline config: %w", err)
	}
	return &interactiveReader{rl: rl}, nil
}

func (ir *interactiveReader) ReadLine() (string, error) {
	line, err := ir.rl.Readline()
	if err != nil {
		return "", err
	}
	return trimLine(line), nil
}

func (ir *interactiveReader) Close() error { return ir.rl.Close() }
