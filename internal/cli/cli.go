// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// cli.go - CLI parsing and command routing for bmicalc.
package cli

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"
)

// Version information (can be overridden at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Output destinations. Handlers write here so tests can capture output.
var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// Command represents the CLI command to execute.
type Command int

const (
	CmdTUI Command = iota
	CmdCalc
	CmdPrompt
	CmdBands
	CmdConfig
	CmdVersion
	CmdHelp
)

// String returns the command name as typed on the command line.
func (c Command) String() string {
	switch c {
	case CmdTUI:
		return "tui"
	case CmdCalc:
		return "calc"
	case CmdPrompt:
		return "prompt"
	case CmdBands:
		return "bands"
	case CmdConfig:
		return "config"
	case CmdVersion:
		return "version"
	case CmdHelp:
		return "help"
	default:
		return "unknown"
	}
}

// Args holds parsed CLI arguments.
type Args struct {
	// Global flags
	Quiet      bool
	Verbose    bool
	JSON       bool   // Output in JSON format
	ConfigPath string // --config overrides the default config location
	Compact    bool   // --compact forces ui.compact_mode for this run
	NoColor    bool

	// Command-specific
	Subcommand string
	ConfigKey  string
	ConfigVal  string
	Height     string // raw height text in centimeters
	Weight     string // raw weight text in kilograms
	Force      bool

	// Raw args (remaining after flag parsing)
	Raw []string
}

const usageText = `bmicalc - Body Mass Index calculator for the terminal

Usage:
  bmicalc [global flags] [command]

Commands:
  tui (default)                     Interactive form
  calc --height <cm> --weight <kg>  One-shot calculation (also: calc <cm> <kg>)
  prompt                            Ask for height and weight line by line
  bands                             Print the category band table
  config [subcommand]               Configuration
  version                           Show version information
  help                              Show this help

Config Commands:
  bmicalc config show               Print the effective configuration
  bmicalc config list               Print every key with its value
  bmicalc config get <key>          Print one value (e.g. ui.theme)
  bmicalc config set <key> <value>  Validate and save one value
  bmicalc config path               Print the config file location
  bmicalc config init [--force]     Write a default config file

Global Flags:
  --json                            Output in JSON format
  -q, --quiet                       Minimal output
  -v, --verbose                     Debug logging
  --config <path>                   Use a specific config file
  --compact                         Hide the description and help footer
  --no-color                        Disable colored output

Examples:
  bmicalc calc --height 180 --weight 75
  bmicalc calc 165 52.5 --json
  bmicalc config set ui.theme light

Exit Codes:
  0  success
  1  general error
  2  usage error
  3  configuration error
  4  invalid measurement

Version: %s
`

// PrintUsage prints the usage text.
func PrintUsage() {
	fmt.Fprintf(stdout, usageText, Version)
}

// PrintVersion prints version information.
func PrintVersion() {
	fmt.Fprintf(stdout, "bmicalc version %s\n", Version)
	fmt.Fprintf(stdout, "  Git commit: %s\n", GitCommit)
	fmt.Fprintf(stdout, "  Build date: %s\n", BuildDate)
}

// Parse parses os.Args and returns the command and args.
func Parse() (Command, Args, error) {
	return ParseArgs(os.Args[1:])
}

// ParseArgs parses a command line without the program name.
func ParseArgs(argv []string) (Command, Args, error) {
	remaining, parsedArgs, err := parseGlobalFlags(argv)
	if err != nil {
		return CmdHelp, parsedArgs, err
	}

	// If no remaining args, default to TUI
	if len(remaining) == 0 {
		return CmdTUI, parsedArgs, nil
	}

	cmd := strings.ToLower(remaining[0])
	remaining = remaining[1:]
	parsedArgs.Raw = remaining

	switch cmd {
	case "tui":
		return CmdTUI, parsedArgs, noExtraArgs("tui", remaining)

	case "calc", "c":
		return CmdCalc, parsedArgs, parseCalcArgs(&parsedArgs, remaining)

	case "prompt", "p":
		return CmdPrompt, parsedArgs, noExtraArgs("prompt", remaining)

	case "bands":
		return CmdBands, parsedArgs, noExtraArgs("bands", remaining)

	case "config":
		return CmdConfig, parsedArgs, parseConfigArgs(&parsedArgs, remaining)

	case "version", "--version":
		return CmdVersion, parsedArgs, nil

	case "help", "-h", "--help":
		return CmdHelp, parsedArgs, nil

	default:
		return CmdHelp, parsedArgs, NewUsageError(
			fmt.Sprintf("unknown command %q", cmd),
			"bmicalc help",
		)
	}
}

// parseGlobalFlags extracts global flags from args and returns remaining args.
// Global flags may appear anywhere on the command line.
func parseGlobalFlags(args []string) ([]string, Args, error) {
	var remaining []string
	var parsedArgs Args

	i := 0
	for i < len(args) {
		arg := args[i]

		switch arg {
		case "-q", "--quiet":
			parsedArgs.Quiet = true
		case "-v", "--verbose":
			parsedArgs.Verbose = true
		case "--json":
			parsedArgs.JSON = true
		case "--compact":
			parsedArgs.Compact = true
		case "--no-color":
			parsedArgs.NoColor = true
		case "--config":
			if i+1 >= len(args) {
				return nil, parsedArgs, NewUsageError("--config requires a path", "bmicalc --config ~/bmi.toml")
			}
			i++
			parsedArgs.ConfigPath = args[i]
		default:
			if strings.HasPrefix(arg, "--config=") {
				parsedArgs.ConfigPath = strings.TrimPrefix(arg, "--config=")
			} else {
				remaining = append(remaining, arg)
			}
		}
		i++
	}

	return remaining, parsedArgs, nil
}

const calcExample = "bmicalc calc --height 180 --weight 75"

// parseCalcArgs parses calc command arguments. Values may be given as
// --height/--weight flags or as two positional arguments. Missing values
// stay empty and are reported by validation, not by the parser.
func parseCalcArgs(args *Args, remaining []string) error {
	parser := NewArgParser(remaining, "height", "weight", "H", "W")

	for _, name := range parser.FlagNames() {
		switch name {
		case "height", "H", "weight", "W":
		default:
			return NewUsageError(fmt.Sprintf("unknown calc flag --%s", name), calcExample)
		}
	}

	args.Height = parser.FlagOrDefault("height", parser.Flag("H"))
	args.Weight = parser.FlagOrDefault("weight", parser.Flag("W"))

	positionals := parser.PositionalCount()
	if positionals > 2 {
		return NewUsageError("calc takes at most two values: height and weight", calcExample)
	}
	if positionals > 0 && (parser.HasFlag("height") || parser.HasFlag("H") || parser.HasFlag("weight") || parser.HasFlag("W")) {
		return NewUsageError("give height and weight either as flags or as values, not both", calcExample)
	}
	if positionals > 0 {
		args.Height = parser.Positional(0)
		args.Weight = parser.Positional(1)
	}
	return nil
}

// parseConfigArgs parses config command arguments.
func parseConfigArgs(args *Args, remaining []string) error {
	parser := NewArgParser(remaining)
	for _, name := range parser.FlagNames() {
		if name != "force" && name != "f" {
			return NewUsageError(fmt.Sprintf("unknown config flag --%s", name), "bmicalc config init --force")
		}
	}
	args.Force = parser.BoolFlag("force") || parser.BoolFlag("f")
	args.Subcommand = parser.Subcommand()
	args.ConfigKey = parser.Positional(1)
	args.ConfigVal = parser.Positional(2)
	if parser.PositionalCount() > 3 {
		return NewUsageError("too many arguments for config", "bmicalc config set ui.theme dark")
	}
	return nil
}

func noExtraArgs(cmd string, remaining []string) error {
	if len(remaining) > 0 {
		return NewUsageError(fmt.Sprintf("%s takes no arguments, got %q", cmd, strings.Join(remaining, " ")), "bmicalc "+cmd)
	}
	return nil
}

// =============================================================================
// SIMPLE COMMAND HANDLERS
// =============================================================================

// HandleVersion handles the "version" command with JSON output support.
func HandleVersion(args Args) error {
	if args.JSON {
		data := VersionData{
			Version:   Version,
			GitCommit: GitCommit,
			BuildDate: BuildDate,
			GoVersion: runtime.Version(),
		}
		return NewJSONResponse("version", data).Print(stdout)
	}
	if args.Quiet {
		fmt.Fprintln(stdout, Version)
		return nil
	}
	PrintVersion()
	return nil
}

// HandleHelp handles the "help" command.
func HandleHelp() error {
	PrintUsage()
	return nil
}
