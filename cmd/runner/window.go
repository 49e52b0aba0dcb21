package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/portfolio-runner/internal/core"
	"github.com/vovakirdan/portfolio-runner/internal/platform/gui"
	"github.com/vovakirdan/portfolio-runner/internal/registry"
)

var (
	flagWidth  int
	flagHeight int
	flagMute   bool
)

var windowCmd = &cobra.Command{
	Use:   "window <variant>",
	Short: "Play a variant in a desktop window",
	Long: `Open the specified variant in a resizable window.

Controls:
  F             - Start
  Up            - Jump
  Click/Touch   - Start, then jump
  P/Esc         - Pause

Examples:
  runner window flat
  runner window phased --width 800 --height 600
  runner window flat --mute`,
	Args: cobra.ExactArgs(1),
	RunE: runWindow,
}

func init() {
	windowCmd.Flags().IntVar(&flagWidth, "width", 1280, "Initial window width")
	windowCmd.Flags().IntVar(&flagHeight, "height", 720, "Initial window height")
	windowCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable the jump sound")
}

func runWindow(cmd *cobra.Command, args []string) error {
	id := args[0]
	if !registry.Exists(id) {
		return fmt.Errorf("unknown variant %q (run 'runner list' to see available variants)", id)
	}

	logger, closeLog, err := openLogger(false)
	if err != nil {
		return err
	}
	defer closeLog()

	game, err := registry.Create(id)
	if err != nil {
		return err
	}
	defer closeGame(game, logger)
	session, ok := game.(gui.Session)
	if !ok {
		return fmt.Errorf("variant %q cannot be drawn in a window", id)
	}

	cfg := core.RuntimeConfig{
		WindowW:  flagWidth,
		WindowH:  flagHeight,
		TickRate: flagFPS,
	}
	logger.Info("opening window", "variant", id, "width", cfg.WindowW, "height", cfg.WindowH, "fps", cfg.TickRate)

	return gui.Run(session, cfg, gui.Options{Logger: logger, Mute: flagMute})
}
