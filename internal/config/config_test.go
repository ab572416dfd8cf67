// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/jeranaias/bmicalc-tui/internal/bmi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolateHome points the config directory at a fresh temp dir and clears
// every BMICALC_* override for the duration of the test.
func isolateHome(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("BMICALC_HOME", dir)
	for _, key := range []string{
		"BMICALC_THEME", "BMICALC_COMPACT", "BMICALC_CLEAR_RESULT_ON_ERROR",
		"BMICALC_LOG_LEVEL", "BMICALC_LOG_FILE",
	} {
		t.Setenv(key, "")
	}
	return dir
}

// TestConfig_ConcurrentAccess tests that Global() and SetGlobal()
// can be safely called concurrently without race conditions.
// Run with: go test -race -v ./internal/config/
func TestConfig_ConcurrentAccess(t *testing.T) {
	isolateHome(t)
	ResetGlobalForTesting()
	t.Cleanup(ResetGlobalForTesting)

	var wg sync.WaitGroup

	// 50 writers using SetGlobal, 50 readers using Global
	for i := 0; i < 50; i++ {
		wg.Add(2)

		go func() {
			defer wg.Done()
			c := Default()
			c.UI.Theme = "dark"
			SetGlobal(c)
		}()

		go func() {
			defer wg.Done()
			if Global() == nil {
				t.Error("Global() returned nil")
			}
		}()
	}

	wg.Wait()
}

// TestConfig_ConcurrentReload tests reloading into the global config while
// readers call Global, the way the TUI's watcher callback does.
func TestConfig_ConcurrentReload(t *testing.T) {
	isolateHome(t)
	ResetGlobalForTesting()
	t.Cleanup(ResetGlobalForTesting)

	_ = Global()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			if cfg, err := Load(); err == nil {
				SetGlobal(cfg)
			}
		}()
		go func() {
			defer wg.Done()
			if Global() == nil {
				t.Error("Global() returned nil during reload")
			}
		}()
	}
	wg.Wait()
}

func TestConfig_GlobalFallsBackToDefaults(t *testing.T) {
	dir := isolateHome(t)
	ResetGlobalForTesting()
	t.Cleanup(ResetGlobalForTesting)

	// An invalid file must not leave Global() nil.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte("[ui]\nwidth = 5\n"), 0600))

	cfg := Global()
	require.NotNil(t, cfg)
	assert.Equal(t, Default().UI.Width, cfg.UI.Width)
}

func TestConfig_SetGlobalOverwrites(t *testing.T) {
	isolateHome(t)
	ResetGlobalForTesting()
	t.Cleanup(ResetGlobalForTesting)

	first := Default()
	first.UI.Theme = "light"
	SetGlobal(first)
	assert.Equal(t, "light", Global().UI.Theme)

	second := Default()
	second.UI.Theme = "dark"
	SetGlobal(second)
	assert.Equal(t, "dark", Global().UI.Theme)
}

func TestConfig_Default(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "auto", cfg.UI.Theme)
	assert.False(t, cfg.UI.CompactMode)
	assert.False(t, cfg.UI.ShowBands)
	assert.Equal(t, 60, cfg.UI.Width)
	assert.False(t, cfg.Calculator.ClearResultOnError)
	assert.Equal(t, 16, cfg.Calculator.InputCharLimit)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.NoError(t, cfg.Validate())
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		field  string
	}{
		{"bad theme", func(c *Config) { c.UI.Theme = "neon" }, "ui.theme"},
		{"narrow width", func(c *Config) { c.UI.Width = 39 }, "ui.width"},
		{"wide width", func(c *Config) { c.UI.Width = 201 }, "ui.width"},
		{"zero char limit", func(c *Config) { c.Calculator.InputCharLimit = 0 }, "calculator.input_char_limit"},
		{"huge char limit", func(c *Config) { c.Calculator.InputCharLimit = 65 }, "calculator.input_char_limit"},
		{"bad level", func(c *Config) { c.Logging.Level = "trace" }, "logging.level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)

			err := cfg.Validate()
			require.Error(t, err)

			var verrs ValidationErrors
			require.True(t, errors.As(err, &verrs))
			require.Len(t, verrs, 1)
			assert.Equal(t, tt.field, verrs[0].Field)
		})
	}

	t.Run("collects all errors", func(t *testing.T) {
		cfg := Default()
		cfg.UI.Theme = "neon"
		cfg.UI.Width = 1
		cfg.Logging.Level = "loud"

		var verrs ValidationErrors
		require.True(t, errors.As(cfg.Validate(), &verrs))
		assert.Len(t, verrs, 3)
	})

	t.Run("theme is case insensitive", func(t *testing.T) {
		cfg := Default()
		cfg.UI.Theme = "DARK"
		assert.NoError(t, cfg.Validate())
	})
}

func TestConfig_SetDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.SetDefaults()

	assert.Equal(t, Default().Version, cfg.Version)
	assert.Equal(t, "auto", cfg.UI.Theme)
	assert.Equal(t, 60, cfg.UI.Width)
	assert.Equal(t, 16, cfg.Calculator.InputCharLimit)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.NoError(t, cfg.Validate())
}

func TestConfig_EnvOverrides(t *testing.T) {
	isolateHome(t)
	t.Setenv("BMICALC_THEME", "light")
	t.Setenv("BMICALC_COMPACT", "true")
	t.Setenv("BMICALC_CLEAR_RESULT_ON_ERROR", "1")
	t.Setenv("BMICALC_LOG_LEVEL", "debug")
	t.Setenv("BMICALC_LOG_FILE", "/tmp/bmicalc-test.log")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "light", cfg.UI.Theme)
	assert.True(t, cfg.UI.CompactMode)
	assert.True(t, cfg.Calculator.ClearResultOnError)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "/tmp/bmicalc-test.log", cfg.Logging.File)
}

func TestConfig_LoadNoFiles(t *testing.T) {
	isolateHome(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestConfig_LoadTOMLPreferredOverJSON(t *testing.T) {
	dir := isolateHome(t)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"),
		[]byte("[ui]\ntheme = \"dark\"\nshow_bands = true\n"), 0600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.json"),
		[]byte(`{"ui": {"theme": "light"}}`), 0600))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "dark", cfg.UI.Theme)
	assert.True(t, cfg.UI.ShowBands)
	// Unset keys keep their defaults.
	assert.Equal(t, 60, cfg.UI.Width)
}

func TestConfig_LoadJSONFallback(t *testing.T) {
	dir := isolateHome(t)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.json"),
		[]byte(`{"calculator": {"clear_result_on_error": true, "input_char_limit": 8}}`), 0600))

	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.Calculator.ClearResultOnError)
	assert.Equal(t, 8, cfg.Calculator.InputCharLimit)
	assert.Equal(t, bmi.StaleResultClear, cfg.StaleResultPolicy())
}

func TestConfig_LoadBrokenTOMLReportsError(t *testing.T) {
	dir := isolateHome(t)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte("[ui\n"), 0600))

	cfg, err := Load()
	require.Error(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, "auto", cfg.UI.Theme)
}

func TestConfig_LoadFromPathInvalid(t *testing.T) {
	isolateHome(t)
	path := filepath.Join(t.TempDir(), "custom.toml")
	require.NoError(t, os.WriteFile(path, []byte("[ui]\ntheme = \"neon\"\n"), 0600))

	_, err := LoadFromPath(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ui.theme")
}

func TestConfig_SaveRoundTrip(t *testing.T) {
	isolateHome(t)
	dir := t.TempDir()

	cfg := Default()
	cfg.UI.Theme = "light"
	cfg.UI.Width = 80
	cfg.Calculator.ClearResultOnError = true

	tomlPath := filepath.Join(dir, "nested", "config.toml")
	require.NoError(t, SaveTOML(cfg, tomlPath))

	data, err := os.ReadFile(tomlPath)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "# bmicalc configuration file"))

	loaded, err := LoadFromPath(tomlPath)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)

	jsonPath := filepath.Join(dir, "config.json")
	require.NoError(t, SaveJSON(cfg, jsonPath))
	loaded, err = LoadFromPath(jsonPath)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestConfig_GetSet(t *testing.T) {
	cfg := Default()

	v, err := cfg.Get("ui.theme")
	require.NoError(t, err)
	assert.Equal(t, "auto", v)

	require.NoError(t, cfg.Set("ui.theme", "dark"))
	assert.Equal(t, "dark", cfg.UI.Theme)

	require.NoError(t, cfg.Set("ui.compact_mode", "true"))
	assert.True(t, cfg.UI.CompactMode)

	require.NoError(t, cfg.Set("ui.width", "72"))
	assert.Equal(t, 72, cfg.UI.Width)

	require.NoError(t, cfg.Set("calculator.input-char-limit", 10))
	assert.Equal(t, 10, cfg.Calculator.InputCharLimit)

	require.NoError(t, cfg.Set("calculator.clear_result_on_error", true))
	assert.True(t, cfg.Calculator.ClearResultOnError)

	assert.Error(t, cfg.Set("ui.width", "wide"))
	assert.Error(t, cfg.Set("ui.nope", "x"))
	assert.Error(t, cfg.Set("ui", "x"))
	_, err = cfg.Get("")
	assert.Error(t, err)
	_, err = cfg.Get("ui.theme.color")
	assert.Error(t, err)
}

func TestConfig_AllKeysResolve(t *testing.T) {
	cfg := Default()
	for _, key := range GetAllKeys() {
		_, err := cfg.Get(key)
		assert.NoError(t, err, key)
	}
}

func TestConfig_Clone(t *testing.T) {
	orig := Default()
	clone := orig.Clone()
	clone.UI.Theme = "dark"

	assert.Equal(t, "auto", orig.UI.Theme)
	assert.Equal(t, "dark", clone.UI.Theme)
}

func TestConfig_LogLevel(t *testing.T) {
	cfg := Default()
	assert.Equal(t, slog.LevelWarn, cfg.LogLevel())

	cfg.Logging.Level = "DEBUG"
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel())
	cfg.Logging.Level = "info"
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel())
	cfg.Logging.Level = "error"
	assert.Equal(t, slog.LevelError, cfg.LogLevel())
}

func TestConfig_StaleResultPolicy(t *testing.T) {
	cfg := Default()
	assert.Equal(t, bmi.StaleResultKeep, cfg.StaleResultPolicy())
	cfg.Calculator.ClearResultOnError = true
	assert.Equal(t, bmi.StaleResultClear, cfg.StaleResultPolicy())
}

func TestWatch_ReloadsOnSave(t *testing.T) {
	isolateHome(t)
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, SaveTOML(Default(), path))

	reloaded := make(chan *Config, 4)
	w, err := Watch(context.Background(), path, func(cfg *Config, err error) {
		if err == nil {
			reloaded <- cfg
		}
	}, WithDebounce(20*time.Millisecond))
	require.NoError(t, err)
	defer w.Close()

	updated := Default()
	updated.UI.Theme = "dark"
	require.NoError(t, SaveTOML(updated, path))

	select {
	case cfg := <-reloaded:
		assert.Equal(t, "dark", cfg.UI.Theme)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for config reload")
	}
}

func TestWatch_IgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, SaveTOML(Default(), path))

	calls := make(chan struct{}, 4)
	w, err := Watch(context.Background(), path, func(*Config, error) {
		calls <- struct{}{}
	}, WithDebounce(20*time.Millisecond))
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("hi"), 0600))

	select {
	case <-calls:
		t.Fatal("reload triggered by unrelated file")
	case <-time.After(200 * time.Millisecond):
	}
}

func TestWatch_CloseStopsGoroutines(t *testing.T) {
	isolateHome(t)
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, SaveTOML(Default(), path))

	w, err := Watch(context.Background(), path, nil)
	require.NoError(t, err)
	assert.NoError(t, w.Close())
}
