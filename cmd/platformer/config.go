package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/config"
)

var flagCheck string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print or check the game configuration",
	Long: `Print the default configuration, or validate a configuration file.

Examples:
  platformer config > ~/.platformer/configs/platformer.yaml
  platformer config --check ./configs/platformer.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagCheck, "check", "", "Validate this config file instead of printing the default")
}

func runConfig(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	if flagCheck == "" {
		_, err := out.Write(config.DefaultYAML())
		return err
	}

	cfg, err := config.ReadFile(flagCheck)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "%s: ok (%d platforms, canvas %vx%v)\n",
		flagCheck, len(cfg.Platforms), cfg.Canvas.Width, cfg.Canvas.Height)
	return nil
}
