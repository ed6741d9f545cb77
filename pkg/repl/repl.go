// Package repl provides a reusable line-oriented interactive command loop:
// it reads a line from the terminal, dispatches it to a pluggable Handler,
// and repeats until the handler signals termination or input runs out.
//
// The loop semantics are fixed: input is trimmed of surrounding whitespace,
// empty lines are dropped without dispatch, an interrupt (Ctrl+C) cancels
// the pending line but keeps the session alive, and end-of-input (Ctrl+D)
// ends the session cleanly. Accepted commands are recorded into the line
// source's history, in order, before dispatch.
package repl

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sandevgo/replkit/pkg/log"
)

// Handler processes one normalized command and decides whether the loop
// keeps running. Handle is never called with an empty or whitespace-only
// string. Return true to continue the session, false to stop it.
type Handler interface {
	Handle(command string) bool
}

// HandlerFunc adapts a plain function to the Handler interface.
type HandlerFunc func(command string) bool

func (f HandlerFunc) Handle(command string) bool {
	return f(command)
}

// Repl owns the read-normalize-record-dispatch cycle. It is single-threaded:
// one goroutine constructs it, calls Run, and closes it. The Repl is the
// sole caller of its Handler and LineSource.
type Repl struct {
	prompt  string
	handler Handler
	source  LineSource
	errOut  io.Writer
}

// newDefaultSource is a hook so construction failure can be exercised
// without detaching the test process from a terminal.
var newDefaultSource = NewReadlineSource

// New creates a Repl with the default terminal-backed line source. It fails
// when the terminal cannot be initialized, e.g. in a non-interactive
// environment.
func New(prompt string, handler Handler) (*Repl, error) {
	source, err := newDefaultSource()
	if err != nil {
		return nil, fmt.Errorf("failed to init line source: %w", err)
	}
	return NewWithSource(prompt, handler, source), nil
}

// NewWithSource creates a Repl on a caller-provided line source. Embedders
// use it to swap in a custom editor or a scripted source in tests.
func NewWithSource(prompt string, handler Handler, source LineSource) *Repl {
	return &Repl{
		prompt:  prompt,
		handler: handler,
		source:  source,
		errOut:  os.Stderr,
	}
}

// SetErrOutput redirects fatal-read diagnostics away from os.Stderr.
func (r *Repl) SetErrOutput(w io.Writer) {
	r.errOut = w
}

// LoadHistory restores command history from path. A missing or unreadable
// file is a recoverable condition; callers may discard the error. Call it
// once, before Run.
func (r *Repl) LoadHistory(path string) error {
	return r.source.LoadHistory(path)
}

// SaveHistory persists command history to path, typically once at clean
// shutdown. The error is discardable.
func (r *Repl) SaveHistory(path string) error {
	return r.source.SaveHistory(path)
}

// History returns a copy of the recorded commands, oldest first.
func (r *Repl) History() []string {
	return r.source.History()
}

// Run executes the loop until the handler returns false, input ends, the
// context is cancelled, or a fatal read error occurs. It returns nil for
// the first two cases, ctx.Err() for cancellation, and the wrapped read
// error for the last, after emitting a diagnostic to the error output.
func (r *Repl) Run(ctx context.Context) error {
	logger := log.FromCtx(ctx)

	for {
		// Check context before blocking read
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		line, err := r.source.ReadLine(r.prompt)
		switch {
		case err == nil:
		case errors.Is(err, ErrInterrupt):
			// Cancels the pending line only; the session stays alive.
			continue
		case errors.Is(err, io.EOF):
			return nil
		default:
			fmt.Fprintf(r.errOut, "Error: %v\n", err)
			logger.Error().Err(err).Msg("line read failed")
			return fmt.Errorf("failed to read line: %w", err)
		}

		command := strings.TrimSpace(line)
		if command == "" {
			continue
		}

		if err := r.source.AppendHistory(command); err != nil {
			logger.Debug().Err(err).Msg("failed to append history entry")
		}

		if !r.handler.Handle(command) {
			return nil
		}
	}
}

// Close releases the line source and its terminal state. Safe to call on
// every exit path.
func (r *Repl) Close() error {
	return r.source.Close()
}
