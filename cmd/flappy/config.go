package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/emoji-flappy/internal/config"
)

var flagFormat string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration a game would start with, after the config
search path and the difficulty preset are applied.

Search order:
  --config <path>
  ~/.arcade/configs/flappy.yaml (or .toml)
  ./configs/flappy.yaml (or .toml)
  built-in defaults

Examples:
  flappy config
  flappy config --difficulty hard
  flappy config --format toml > ~/.arcade/configs/flappy.toml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagFormat, "format", "yaml", "Output format: yaml or toml")
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	var format config.Format
	switch flagFormat {
	case "yaml", "yml":
		format = config.FormatYAML
	case "toml":
		format = config.FormatTOML
	default:
		return fmt.Errorf("unknown format %q (want yaml or toml)", flagFormat)
	}

	data, err := config.Encode(cfg, format)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
