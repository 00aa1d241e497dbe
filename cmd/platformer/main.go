// platformer is a minimal 2D platformer: reach the target box at the top of
// the level by jumping across patrolling platforms.
//
// Usage:
//
//	platformer play              - Play in the terminal
//	platformer window            - Play in a desktop window
//	platformer serve             - Start SSH server for remote play
//	platformer snapshot          - Simulate headless and print the final frame
//	platformer config            - Print or check the game configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible platform speeds
//	--config <path>       - Use a custom game config YAML
//	--difficulty <preset> - easy, normal, hard or fixed
//	--log-level <level>   - debug, info, warn or error
//	--log-file <path>     - Write frontend logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		newLogger(os.Stderr).Error(err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "platformer",
	Short: "Platformer - Jump across moving platforms to reach the target",
	Long: `Platformer is a minimal 2D platformer. Move the blue box with the
arrow keys, jump across the patrolling platforms and touch the red target
in the top-left corner.

Available commands:
  play      - Play in the terminal
  window    - Play in a desktop window (keyboard and touch)
  serve     - Start SSH server for remote play
  snapshot  - Simulate headless and print the final frame
  config    - Print or check the game configuration

Examples:
  platformer play
  platformer play --difficulty hard --seed 42
  platformer window
  platformer serve --ssh :2222
  platformer config --check ./configs/platformer.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write frontend logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(snapshotCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the CLI logger at --log-level.
func newLogger(w io.Writer) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "platformer",
	})
	if level, err := log.ParseLevel(flagLogLevel); err == nil {
		logger.SetLevel(level)
	}
	return logger
}

// frontendLogger returns the logger a frontend writes to: --log-file when
// set, otherwise fallback. The returned func closes the file.
func frontendLogger(fallback io.Writer) (*log.Logger, func(), error) {
	if flagLogFile == "" {
		return newLogger(fallback), func() {}, nil
	}
	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return newLogger(f), func() { _ = f.Close() }, nil
}

// loadConfig resolves the game configuration and applies --difficulty.
func loadConfig(logger *log.Logger) (config.PlatformerConfig, error) {
	cfg, source, err := config.Load(flagConfig, logger)
	if err != nil {
		return config.PlatformerConfig{}, err
	}
	logger.Debug("config loaded", "source", source)

	if flagDifficulty != "" {
		preset, err := config.ParsePreset(flagDifficulty)
		if err != nil {
			return config.PlatformerConfig{}, err
		}
		config.ApplyPreset(&cfg, preset)
		logger.Debug("difficulty applied", "preset", preset)
	}
	return cfg, nil
}

// newGame loads the configuration and builds a game from it.
func newGame(logger *log.Logger) (*platformer.Game, error) {
	cfg, err := loadConfig(logger)
	if err != nil {
		return nil, err
	}
	return platformer.New(cfg), nil
}

// runtimeConfig builds the runtime settings from the global flags.
func runtimeConfig(width, height int) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}
