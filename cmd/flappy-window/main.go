// flappy-window plays Emoji Flappy in a desktop window.
//
// Usage:
//
//	flappy-window [--config path] [--difficulty easy|normal|hard] [--seed n]
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/emoji-flappy/internal/audio"
	"github.com/vovakirdan/emoji-flappy/internal/config"
	"github.com/vovakirdan/emoji-flappy/internal/logging"
	"github.com/vovakirdan/emoji-flappy/internal/platform/window"
)

var (
	flagTPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string
	flagMute       bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappy-window",
	Short: "Play Emoji Flappy in a window",
	Long: `Opens an 800x600 window and starts a game.

Controls:
  Space/Up/W  - Flap (restart after game over)
  R           - Restart after game over
  M           - Toggle sound
  P           - Pause
  Tab         - Runs of this session
  Q/Esc       - Quit`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	rootCmd.Flags().IntVar(&flagTPS, "tps", 60, "Updates per second")
	rootCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "Path to a custom config (.yaml or .toml)")
	rootCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.Flags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.Flags().StringVar(&flagLogFile, "log-file", "-", `Log file ("-" for stderr, empty to discard)`)
	rootCmd.Flags().BoolVar(&flagMute, "mute", false, "Start muted")
}

func run(cmd *cobra.Command, args []string) error {
	logger, closer, err := logging.New(flagLogLevel, flagLogFile)
	if err != nil {
		return err
	}
	defer closer.Close()

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	if flagDifficulty != "" {
		if err := config.ApplyPreset(&cfg, config.Preset(flagDifficulty)); err != nil {
			return err
		}
	}
	if flagMute {
		cfg.Audio.Muted = true
	}

	player, err := audio.Open(cfg.Audio)
	if err != nil {
		logger.Warn("audio disabled", "err", err)
	}
	defer player.Close()

	logger.Info("opening window",
		"width", cfg.Playfield.Width,
		"height", cfg.Playfield.Height,
		"tps", flagTPS,
	)

	return window.Run(window.Options{
		Config: cfg,
		Seed:   flagSeed,
		TPS:    flagTPS,
		Audio:  player,
		Logger: logger,
	})
}
