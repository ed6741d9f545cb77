package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sandevgo/replkit/internal/config"
	"github.com/sandevgo/replkit/internal/core"
	"github.com/sandevgo/replkit/internal/service/command"
	"github.com/sandevgo/replkit/pkg/log"
	"github.com/sandevgo/replkit/pkg/repl"
)

// Console is the interactive transport of the demo application. It is the
// loop's Handler: every accepted line goes through the command router, and
// ErrQuit from a command becomes the stop decision.
type Console struct {
	cfg    *config.AppConfig
	router core.CmdRouter
	repl   *repl.Repl
	out    io.Writer

	// ctx is set by Run and read only from the loop goroutine.
	ctx context.Context
}

func New(cfg *config.AppConfig, router core.CmdRouter, source repl.LineSource) *Console {
	c := &Console{
		cfg:    cfg,
		router: router,
		out:    os.Stdout,
	}
	c.repl = repl.NewWithSource(cfg.Prompt, c, source)
	return c
}

// SetOutput redirects command results away from os.Stdout.
func (c *Console) SetOutput(w io.Writer) {
	c.out = w
}

// Run restores history, drives the loop until it ends, and persists history
// on the way out. History errors are best-effort by contract.
func (c *Console) Run(ctx context.Context) error {
	logger := log.FromCtx(ctx)
	c.ctx = ctx

	if err := os.MkdirAll(c.cfg.RuntimePath, 0755); err != nil {
		return fmt.Errorf("failed to create runtime directory: %w", err)
	}

	if err := c.repl.LoadHistory(c.cfg.GetHistoryPath()); err != nil {
		// Expected on first run, when no history file exists yet.
		logger.Debug().Err(err).Msg("no history restored")
	}

	logger.Info().Msg("console started, type 'help' for commands")
	runErr := c.repl.Run(ctx)

	if err := c.repl.SaveHistory(c.cfg.GetHistoryPath()); err != nil {
		logger.Warn().Err(err).Msg("failed to save history")
	}
	return runErr
}

// Handle implements repl.Handler.
func (c *Console) Handle(input string) bool {
	result, err := c.router.Execute(c.ctx, input)
	if errors.Is(err, command.ErrQuit) {
		return false
	}
	if err != nil {
		fmt.Fprintf(c.out, "Error: %v\n", err)
		return true
	}
	if result != "" {
		fmt.Fprintln(c.out, result)
	}
	return true
}

func (c *Console) Close() error {
	return c.repl.Close()
}
