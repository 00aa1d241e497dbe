package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/platform/desktop"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open the platformer in a native window.

Controls:
  ←/A, →/D     - Move
  ↑/W/Space    - Jump
  P            - Pause
  R            - Restart
  Q/Esc        - Quit

The strip below the level holds touch buttons for left, right and jump.`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func runWindow(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := frontendLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	game, err := newGame(logger)
	if err != nil {
		return err
	}

	cfg := game.Config()
	return desktop.Run(game, runtimeConfig(int(cfg.Canvas.Width), int(cfg.Canvas.Height)), logger)
}
