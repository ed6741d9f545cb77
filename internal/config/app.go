package config

import (
	"context"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/sandevgo/replkit/pkg/log"
)

type AppConfig struct {
	RuntimePath string `env:"REPLKIT_RUNTIME_PATH" envDefault:".replkit"`
	// Prompt is displayed verbatim before each read.
	Prompt       string `env:"REPLKIT_PROMPT" envDefault:">>> "`
	HistoryLimit int    `env:"REPLKIT_HISTORY_LIMIT" envDefault:"500"`
}

func NewAppConfig(ctx context.Context) *AppConfig {
	c := &AppConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse App config")
	}
	// Same anchoring as GetRuntimePath, so the env file, the database and
	// the history file share one directory.
	c.RuntimePath = resolveRuntimePath(c.RuntimePath)
	return c
}

func (c AppConfig) GetRuntimePath() string {
	return c.RuntimePath
}

func (c AppConfig) GetHistoryPath() string {
	return filepath.Join(c.RuntimePath, "input_history")
}

func (c AppConfig) GetDatabasePath() string {
	return filepath.Join(c.RuntimePath, "replkit.db")
}
