package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/portfolio-runner/internal/core"
	"github.com/vovakirdan/portfolio-runner/internal/platform/tui"
	"github.com/vovakirdan/portfolio-runner/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play <variant>",
	Short: "Play a variant in the terminal",
	Long: `Start the specified variant in the terminal.

Controls:
  F          - Start
  Up         - Jump
  Click      - Start, then jump
  P/Esc      - Pause
  Ctrl+S     - Save a text screenshot to ~/.runner/screenshots
  Q/Ctrl+C   - Quit

Examples:
  runner play flat
  runner play phased --fps 30
  runner play flat --log-file runner.log --log-level debug`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	return playInTerminal(args[0])
}

// playInTerminal runs one terminal session of the variant.
func playInTerminal(id string) error {
	if !registry.Exists(id) {
		return fmt.Errorf("unknown variant %q (run 'runner list' to see available variants)", id)
	}

	logger, closeLog, err := openLogger(true)
	if err != nil {
		return err
	}
	defer closeLog()

	game, err := registry.Create(id)
	if err != nil {
		return err
	}
	defer closeGame(game, logger)

	cols, rows := terminalSize()
	logger.Info("starting terminal session", "variant", id, "cols", cols, "rows", rows, "fps", flagFPS)

	err = tui.Run(game, core.RuntimeConfig{TickRate: flagFPS}, tui.Options{
		CellWidth:  runnerCfg.TUI.CellWidth,
		CellHeight: runnerCfg.TUI.CellHeight,
		Cols:       cols,
		Rows:       rows,
		Logger:     logger,
	})
	if err != nil {
		return fmt.Errorf("terminal session failed: %w", err)
	}
	return nil
}

// closeGame releases what a session holds once its frontend has exited.
func closeGame(game registry.Game, logger *log.Logger) {
	c, ok := game.(io.Closer)
	if !ok {
		return
	}
	if err := c.Close(); err != nil {
		logger.Warn("session teardown incomplete", "err", err)
	}
}

// terminalSize returns the size of stdout, or 80x24 when it is not a terminal.
func terminalSize() (int, int) {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return width, height
}
