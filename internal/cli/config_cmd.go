// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// config_cmd.go - Configuration loading and the config command.

package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/jeranaias/bmicalc-tui/internal/config"
	"github.com/jeranaias/bmicalc-tui/internal/ui/styles"
)

// =============================================================================
// LOADING
// =============================================================================

// LoadConfig loads the configuration named by --config, or the default
// files, and installs it as config.Global for the rest of the run. A broken
// default file falls back to defaults with a warning; an invalid --config
// file is an error.
func LoadConfig(args Args) error {
	if args.ConfigPath != "" {
		cfg, err := config.LoadFromPath(args.ConfigPath)
		if err != nil {
			return &ConfigError{Path: args.ConfigPath, Err: err}
		}
		config.SetGlobal(cfg)
		return nil
	}

	cfg, err := config.Load()
	if cfg == nil {
		return &ConfigError{Err: err}
	}
	if err != nil {
		fmt.Fprintf(stderr, "Warning: %v (using defaults)\n", err)
	}
	config.SetGlobal(cfg)
	return nil
}

// NeedsConfig reports whether cmd must have a valid configuration to run.
// config path and config init work even when the current file is broken.
func NeedsConfig(cmd Command, args Args) bool {
	switch cmd {
	case CmdHelp, CmdVersion:
		return false
	case CmdConfig:
		sub := strings.ToLower(args.Subcommand)
		return sub != "path" && sub != "init"
	default:
		return true
	}
}

// configFilePath returns the file config set and config init write to:
// --config if given, else an existing TOML or JSON file, else the TOML path.
func configFilePath(args Args) (string, error) {
	if args.ConfigPath != "" {
		return args.ConfigPath, nil
	}
	tomlPath, err := config.ConfigPathTOML()
	if err != nil {
		return "", &ConfigError{Err: err}
	}
	if fileExists(tomlPath) {
		return tomlPath, nil
	}
	jsonPath, err := config.ConfigPathJSON()
	if err != nil {
		return "", &ConfigError{Err: err}
	}
	if fileExists(jsonPath) {
		return jsonPath, nil
	}
	return tomlPath, nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func isJSONPath(path string) bool {
	return strings.HasSuffix(strings.ToLower(path), ".json")
}

// loadFile reads a single config file without environment overrides, so
// that saving it back does not persist them.
func loadFile(path string) (*config.Config, error) {
	cfg := config.Default()
	if !fileExists(path) {
		return cfg, nil
	}
	var err error
	if isJSONPath(path) {
		err = config.LoadJSON(cfg, path)
	} else {
		err = config.LoadTOML(cfg, path)
	}
	if err != nil {
		return nil, &ConfigError{Path: path, Err: err}
	}
	cfg.SetDefaults()
	return cfg, nil
}

func saveFile(cfg *config.Config, path string) error {
	var err error
	if isJSONPath(path) {
		err = config.SaveJSON(cfg, path)
	} else {
		err = config.SaveTOML(cfg, path)
	}
	if err != nil {
		return &ConfigError{Path: path, Err: err}
	}
	return nil
}

// =============================================================================
// CONFIG COMMAND
// =============================================================================

const configExample = "bmicalc config set ui.theme dark"

// HandleConfig handles "config [show|list|get|set|path|init]".
// cfg is the effective configuration; nil means config.Global().
func HandleConfig(args Args, cfg *config.Config) error {
	sub := strings.ToLower(args.Subcommand)
	if cfg == nil && (sub == "" || sub == "show" || sub == "list" || sub == "get") {
		cfg = config.Global()
	}

	switch sub {
	case "", "show":
		return handleConfigShow(args, cfg)
	case "list":
		return handleConfigList(args, cfg)
	case "get":
		return handleConfigGet(args, cfg)
	case "set":
		return handleConfigSet(args)
	case "path":
		return handleConfigPath(args)
	case "init":
		return handleConfigInit(args)
	default:
		return OutputJSON(stdout, args.JSON, "config", func() (interface{}, error) {
			return nil, NewUsageError(fmt.Sprintf("unknown config subcommand %q", args.Subcommand), configExample)
		})
	}
}

func handleConfigShow(args Args, cfg *config.Config) error {
	return OutputJSON(stdout, args.JSON, "config show", func() (interface{}, error) {
		if args.JSON {
			return cfg, nil
		}
		if err := toml.NewEncoder(stdout).Encode(cfg); err != nil {
			return nil, NewCommandError("config", "show", "encoding failed", err)
		}
		return cfg, nil
	})
}

// handleConfigList prints every key in dot notation with its value.
func handleConfigList(args Args, cfg *config.Config) error {
	return OutputJSON(stdout, args.JSON, "config list", func() (interface{}, error) {
		keys := config.GetAllKeys()
		values := make([]ConfigValueData, 0, len(keys))
		for _, key := range keys {
			value, err := cfg.Get(key)
			if err != nil {
				return nil, &ConfigError{Err: err}
			}
			values = append(values, ConfigValueData{Key: key, Value: value})
		}
		if !args.JSON {
			for _, v := range values {
				fmt.Fprintf(stdout, "%s = %v\n", v.Key, v.Value)
			}
		}
		return values, nil
	})
}

func handleConfigGet(args Args, cfg *config.Config) error {
	return OutputJSON(stdout, args.JSON, "config get", func() (interface{}, error) {
		if args.ConfigKey == "" {
			return nil, NewUsageError("config get requires a key", "bmicalc config get ui.theme")
		}
		value, err := cfg.Get(args.ConfigKey)
		if err != nil {
			return nil, &ConfigError{Err: err}
		}
		if !args.JSON {
			fmt.Fprintln(stdout, value)
		}
		return ConfigValueData{Key: args.ConfigKey, Value: value}, nil
	})
}

func handleConfigSet(args Args) error {
	return OutputJSON(stdout, args.JSON, "config set", func() (interface{}, error) {
		if args.ConfigKey == "" || len(args.Raw) < 3 {
			return nil, NewUsageError("config set requires a key and a value", configExample)
		}

		path, err := configFilePath(args)
		if err != nil {
			return nil, err
		}
		cfg, err := loadFile(path)
		if err != nil {
			return nil, err
		}

		if err := cfg.Set(args.ConfigKey, args.ConfigVal); err != nil {
			return nil, &ConfigError{Err: err}
		}
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
		if err := saveFile(cfg, path); err != nil {
			return nil, err
		}

		value, _ := cfg.Get(args.ConfigKey)
		if !args.JSON && !args.Quiet {
			fmt.Fprintln(stdout, styles.RenderSuccess(fmt.Sprintf("%s = %v (saved to %s)", args.ConfigKey, value, path)))
		}
		return ConfigValueData{Key: args.ConfigKey, Value: value}, nil
	})
}

func handleConfigPath(args Args) error {
	return OutputJSON(stdout, args.JSON, "config path", func() (interface{}, error) {
		path, err := configFilePath(args)
		if err != nil {
			return nil, err
		}
		if !args.JSON {
			fmt.Fprintln(stdout, path)
		}
		return ConfigPathData{Path: path, Exists: fileExists(path)}, nil
	})
}

var errConfigExists = errors.New("config file already exists (use --force to overwrite)")

func handleConfigInit(args Args) error {
	return OutputJSON(stdout, args.JSON, "config init", func() (interface{}, error) {
		path, err := configFilePath(args)
		if err != nil {
			return nil, err
		}
		if fileExists(path) && !args.Force {
			return nil, &ConfigError{Path: path, Err: errConfigExists}
		}
		if err := saveFile(config.Default(), path); err != nil {
			return nil, err
		}
		if !args.JSON && !args.Quiet {
			fmt.Fprintln(stdout, styles.RenderSuccess("Wrote default config to "+path))
		}
		return ConfigPathData{Path: path, Exists: true}, nil
	})
}
