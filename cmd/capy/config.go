package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappy-capy/internal/config"
)

var flagScaled bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration the game would run with, as YAML.
The output is a valid config file and can be edited and passed back
with --config.

Examples:
  capy config > ~/.capy/configs/capy.yaml
  capy config --scaled --tps 30`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagScaled, "scaled", false, "Show values rescaled to --tps")
}

func runConfig(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if flagScaled {
		cfg = cfg.ScaleTo(flagTPS)
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
