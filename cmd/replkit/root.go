package main

import (
	"context"
	"os"

	"github.com/sandevgo/replkit/internal/config"
	"github.com/sandevgo/replkit/pkg/log"
	"github.com/spf13/cobra"
)

var (
	debug bool
)

var rootCmd = &cobra.Command{
	Use:   "replkit",
	Short: "replkit — a line-oriented interactive command loop",
	Long:  `replkit is a reusable REPL framework. The bundled demo is a small key/value admin console.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Global flags available to all subcommands
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", config.IsDebug(), "enable debug logging")
}

func setupLogger(ctx context.Context) (context.Context, func()) {
	isDebug := debug || config.IsDebug()
	return log.NewContextWithLogger(ctx, isDebug)
}
