// flappy is a Flappy Bird-style reflex game for the terminal.
//
// Usage:
//
//	flappy play              - Play in the terminal
//	flappy config            - Print the effective configuration
//	flappy skins             - List available skins
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--config <path>       - Custom config file (.yaml or .toml)
//	--difficulty <name>   - Preset: easy, normal, hard
//	--log-level <level>   - debug, info, warn, error
//	--log-file <path>     - Write logs to a file ("-" for stderr)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/emoji-flappy/internal/config"
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
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappy",
	Short: "Emoji Flappy - flap through the gaps in your terminal",
	Long: `Emoji Flappy is a side-scrolling reflex game. Gravity pulls you down,
each flap pushes you up, and every gap you pass through scores a point.

Available commands:
  play     - Play in the terminal
  config   - Print the effective configuration
  skins    - List available skins

Examples:
  flappy play
  flappy play --difficulty hard --skin block
  flappy config --format toml > flappy.toml
  flappy play --config ./flappy.toml --log-file flappy.log`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a custom config (.yaml or .toml)")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", `Log file ("-" for stderr, empty to discard)`)

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(skinsCmd)
}

// loadConfig resolves the effective config from the config flag and the
// difficulty preset.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, err
	}
	if flagDifficulty != "" {
		if err := config.ApplyPreset(&cfg, config.Preset(flagDifficulty)); err != nil {
			return config.Config{}, err
		}
	}
	return cfg, nil
}
