package main

import (
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/emoji-flappy/internal/audio"
	"github.com/vovakirdan/emoji-flappy/internal/core"
	"github.com/vovakirdan/emoji-flappy/internal/logging"
	"github.com/vovakirdan/emoji-flappy/internal/platform/tui"
	"github.com/vovakirdan/emoji-flappy/internal/skin"
)

var (
	flagSkin    string
	flagNoEmoji bool
	flagMute    bool
	flagNoAudio bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game in the terminal.

Controls:
  Space/Up/W  - Flap (restart after game over)
  R           - Restart after game over
  M           - Toggle sound
  P           - Pause
  Tab         - Runs of this session
  Q/Esc       - Quit

Difficulty options:
  easy   - Wider gaps, slower scroll, sparser obstacles
  normal - The configured values
  hard   - Narrower gaps, faster scroll, denser obstacles

Examples:
  flappy play
  flappy play --difficulty easy
  flappy play --skin ascii --mute
  flappy play --config ./my-flappy.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagSkin, "skin", skin.DefaultID, "Skin to draw with (see 'flappy skins')")
	playCmd.Flags().BoolVar(&flagNoEmoji, "no-emoji", false, "Never draw emoji glyphs")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Start muted")
	playCmd.Flags().BoolVar(&flagNoAudio, "no-audio", false, "Do not open the audio device")
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if flagMute {
		cfg.Audio.Muted = true
	}

	logger, closer, err := logging.New(flagLogLevel, flagLogFile)
	if err != nil {
		return err
	}
	defer closer.Close()

	emojiOK := !flagNoEmoji && emojiSupported()
	sk, err := skin.Resolve(flagSkin, emojiOK)
	if err != nil {
		return err
	}

	var player *audio.Player
	if !flagNoAudio {
		player, err = audio.Open(cfg.Audio)
		if err != nil {
			logger.Warn("audio disabled", "err", err)
		}
		defer player.Close()
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	return tui.Run(tui.Options{
		Config: cfg,
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
		Skin:    sk,
		EmojiOK: emojiOK,
		Audio:   player,
		Logger:  logger,
	})
}

// emojiSupported guesses whether the terminal can draw emoji: it needs a
// UTF-8 locale and must not be the bare Linux console.
func emojiSupported() bool {
	switch os.Getenv("TERM") {
	case "linux", "dumb", "vt100":
		return false
	}
	for _, v := range []string{"LC_ALL", "LC_CTYPE", "LANG"} {
		if val := os.Getenv(v); val != "" {
			val = strings.ToUpper(val)
			return strings.Contains(val, "UTF-8") || strings.Contains(val, "UTF8")
		}
	}
	return true
}
