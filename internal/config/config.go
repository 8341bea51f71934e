// Package config provides YAML/TOML configuration loading, difficulty
// presets and validation for the game.
package config

// Config contains every tunable of a game session. It is built once, validated,
// and passed by value into the session; nothing mutates it afterwards.
type Config struct {
	Playfield Playfield `yaml:"playfield" toml:"playfield"`
	Physics   Physics   `yaml:"physics" toml:"physics"`
	Player    Player    `yaml:"player" toml:"player"`
	Obstacles Obstacles `yaml:"obstacles" toml:"obstacles"`
	Audio     Audio     `yaml:"audio" toml:"audio"`
}

// Playfield defines the world dimensions in pixels.
type Playfield struct {
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`
}

// Physics defines the motion constants. Velocities are px/s, negative is up.
type Physics struct {
	Gravity         float64 `yaml:"gravity" toml:"gravity"`                     // px/s²
	FlapVelocity    float64 `yaml:"flap_velocity" toml:"flap_velocity"`         // velocity set by a flap
	MaxUpVelocity   float64 `yaml:"max_up_velocity" toml:"max_up_velocity"`     // lower clamp bound
	MaxDownVelocity float64 `yaml:"max_down_velocity" toml:"max_down_velocity"` // upper clamp bound
	ScrollSpeed     float64 `yaml:"scroll_speed" toml:"scroll_speed"`           // obstacle speed, px/s
}

// Player defines the player's start position and hitbox.
type Player struct {
	StartX     float64 `yaml:"start_x" toml:"start_x"`
	StartY     float64 `yaml:"start_y" toml:"start_y"`
	HalfExtent float64 `yaml:"half_extent" toml:"half_extent"`
}

// Obstacles defines obstacle geometry and spawn timing.
type Obstacles struct {
	Width       float64 `yaml:"width" toml:"width"`
	MinGap      float64 `yaml:"min_gap" toml:"min_gap"`
	MaxGap      float64 `yaml:"max_gap" toml:"max_gap"`
	Margin      float64 `yaml:"margin" toml:"margin"`             // minimum distance from gap to top/bottom edge
	MinInterval float64 `yaml:"min_interval" toml:"min_interval"` // seconds
	MaxInterval float64 `yaml:"max_interval" toml:"max_interval"` // seconds
}

// Audio defines cue playback settings. Only hosts read these.
type Audio struct {
	Muted      bool    `yaml:"muted" toml:"muted"`
	Volume     float64 `yaml:"volume" toml:"volume"` // 0.0 - 1.0
	SampleRate int     `yaml:"sample_rate" toml:"sample_rate"`
}

// Preset represents a named difficulty level.
type Preset string

const (
	PresetEasy   Preset = "easy"
	PresetNormal Preset = "normal"
	PresetHard   Preset = "hard"
)

// Presets lists the accepted preset names.
func Presets() []Preset {
	return []Preset{PresetEasy, PresetNormal, PresetHard}
}
