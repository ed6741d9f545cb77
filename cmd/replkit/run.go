package main

import (
	"context"
	"errors"
	"os"
	"os/signal"

	"github.com/sandevgo/replkit/pkg/log"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the interactive console",
	Long:  `Opens the key/value admin console on the current terminal. Type 'help' for commands, 'quit' or Ctrl+D to leave.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		// logger setup
		var flushLog func()
		ctx, flushLog = setupLogger(ctx)
		defer flushLog()

		logger := log.FromCtx(ctx)

		cons, cleanup, err := NewConsole(ctx)
		if err != nil {
			logger.Error().Err(err).Msg("failed to set up console")
			return err
		}
		defer cleanup()

		if err := cons.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		logger.Info().Msg("session ended")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}
