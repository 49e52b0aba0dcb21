// runner is a side-scrolling portfolio runner for the terminal and the desktop.
//
// Usage:
//
//	runner list               - List available variants
//	runner play <variant>     - Play in the terminal
//	runner window <variant>   - Play in a window
//	runner menu               - Pick a variant interactively, then play
//	runner topics             - Print the topic table with links
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--config <path>       - Custom config YAML
//	--assets <dir>        - Load assets from a directory instead of the built-in set
//	--lang <code>         - UI language (default: en)
//	--log-level <level>   - debug, info, warn, error (default: info)
//	--log-file <path>     - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/portfolio-runner/internal/config"
	"github.com/vovakirdan/portfolio-runner/internal/games/runner"
)

var (
	// Global flags
	flagFPS      int
	flagConfig   string
	flagAssets   string
	flagLang     string
	flagLogLevel string
	flagLogFile  string

	// Loaded once before any subcommand runs
	runnerCfg config.RunnerConfig
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "runner",
	Short: "Portfolio Runner - run, jump and collect the story",
	Long: `Portfolio Runner is a small side-scroller: a sprite runs across the
screen, jumps over the ground and collects orbs that open portfolio topics.

Available commands:
  list     - Show all variants
  play     - Play a variant in the terminal
  window   - Play a variant in a desktop window
  menu     - Interactive variant picker
  topics   - Print the topic table

Examples:
  runner list
  runner play flat
  runner window phased
  runner play phased --lang es
  runner window flat --config ./my-runner.yaml --log-level debug`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom runner config YAML")
	rootCmd.PersistentFlags().StringVar(&flagAssets, "assets", "", "Asset directory (default: built-in assets)")
	rootCmd.PersistentFlags().StringVar(&flagLang, "lang", "en", "UI language")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Log file (terminal commands log nowhere without it)")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(topicsCmd)
}

// setup loads the config and hands the global flags to the game package.
func setup(cmd *cobra.Command, args []string) error {
	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}
	if _, err := log.ParseLevel(flagLogLevel); err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	cfg, err := config.LoadRunner(flagConfig)
	if err != nil {
		return err
	}
	runnerCfg = cfg

	runner.SetConfigPath(flagConfig)
	runner.SetAssetDir(flagAssets)
	runner.SetLanguage(flagLang)
	if _, err := runner.RegisterConfigured(cfg); err != nil {
		return fmt.Errorf("failed to register variants: %w", err)
	}
	return nil
}

// openLogger builds the shared logger. Terminal frontends own the screen,
// so without --log-file they log nowhere; the window logs to stderr.
// The returned function closes the log file, if any.
func openLogger(terminal bool) (*log.Logger, func(), error) {
	lvl, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	var w io.Writer = os.Stderr
	closeFn := func() {}
	switch {
	case flagLogFile != "":
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		w = f
		closeFn = func() {
			//nolint:errcheck // Best-effort close on exit
			f.Close()
		}
	case terminal:
		w = io.Discard
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "runner",
		Level:           lvl,
	})
	runner.SetLogger(logger)
	return logger, closeFn, nil
}
