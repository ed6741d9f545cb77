package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/sandevgo/replkit/internal/config"
	"github.com/sandevgo/replkit/internal/service/command"
	"github.com/sandevgo/replkit/internal/storage/sqlite"
	"github.com/sandevgo/replkit/internal/transport/console"
	"github.com/sandevgo/replkit/pkg/log"
	"github.com/sandevgo/replkit/pkg/repl"
)

// NewConsole wires the demo console: config, storage, line source, command
// router. The returned cleanup releases the terminal and the database.
func NewConsole(ctx context.Context) (*console.Console, func(), error) {
	logger := log.FromCtx(ctx)

	// init env
	if err := initEnv(ctx, config.GetRuntimePath()); err != nil {
		return nil, nil, fmt.Errorf("failed to init env: %w", err)
	}

	// 1. Configuration
	cfg := config.NewAppConfig(ctx)

	// 2. Storage
	db, err := sqlite.NewDB(ctx, cfg.GetDatabasePath())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize storage: %w", err)
	}
	kv := sqlite.NewKVRepo(db)

	// 3. Line source (fails outside an interactive terminal)
	source, err := repl.NewReadlineSourceWithLimit(cfg.HistoryLimit)
	if err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("failed to init line source: %w", err)
	}

	// 4. Commands
	router := command.New(command.NewCommands(kv, source))
	router.Register(command.NewHelpCommand(router))

	// 5. Console transport
	cons := console.New(cfg, router, source)

	cleanup := func() {
		if err := cons.Close(); err != nil {
			logger.Error().Err(err).Msg("failed to close console")
		}
		if err := db.Close(); err != nil {
			logger.Error().Err(err).Msg("failed to close database")
		}
	}
	return cons, cleanup, nil
}

func initEnv(ctx context.Context, runtimePath string) error {
	envPath := filepath.Join(runtimePath, ".env")
	if _, err := os.Stat(envPath); os.IsNotExist(err) {
		return nil
	}

	if err := godotenv.Load(envPath); err != nil {
		return fmt.Errorf("failed to load env file: %w", err)
	}
	log.FromCtx(ctx).Debug().Str("path", envPath).Msg("loaded env file")
	return nil
}
