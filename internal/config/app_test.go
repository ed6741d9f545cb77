package config

import (
	"context"
	"path/filepath"
	"testing"
)

func TestAppConfig_RuntimePathMatchesGetRuntimePath(t *testing.T) {
	t.Setenv("REPLKIT_RUNTIME_PATH", "nested/.replkit-test")

	cfg := NewAppConfig(context.Background())
	if cfg.RuntimePath != GetRuntimePath() {
		t.Errorf("AppConfig path %q, GetRuntimePath %q", cfg.RuntimePath, GetRuntimePath())
	}
	if !filepath.IsAbs(cfg.RuntimePath) {
		t.Errorf("expected home-anchored path, got %q", cfg.RuntimePath)
	}
}

func TestAppConfig_AbsoluteRuntimePathKept(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("REPLKIT_RUNTIME_PATH", dir)

	cfg := NewAppConfig(context.Background())
	if cfg.RuntimePath != dir {
		t.Errorf("expected %q kept as-is, got %q", dir, cfg.RuntimePath)
	}
	if GetRuntimePath() != dir {
		t.Errorf("expected GetRuntimePath %q, got %q", dir, GetRuntimePath())
	}
}

func TestAppConfig_Defaults(t *testing.T) {
	cfg := NewAppConfig(context.Background())
	if cfg.Prompt != ">>> " {
		t.Errorf("expected default prompt, got %q", cfg.Prompt)
	}
	if cfg.HistoryLimit != 500 {
		t.Errorf("expected default history limit 500, got %d", cfg.HistoryLimit)
	}
}
