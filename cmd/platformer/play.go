package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-platformer/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start the platformer in the terminal.

Controls:
  ←/A, →/D     - Move
  ↑/W/Space    - Jump
  P/Esc        - Pause
  R            - Restart
  Ctrl+S       - Save a text screenshot to ~/.platformer/screenshots
  Q/Ctrl+C     - Quit

Terminals only report key presses, so a move or jump stays held for
input.hold_ticks ticks after the last press or auto-repeat.

Examples:
  platformer play
  platformer play --difficulty easy
  platformer play --config ./my-level.yaml --log-file /tmp/platformer.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := frontendLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	game, err := newGame(newLogger(os.Stderr))
	if err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	return tui.Run(game, runtimeConfig(width, height), logger)
}
