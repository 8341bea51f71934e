package skin

import "github.com/vovakirdan/emoji-flappy/internal/core"

// Built-in skin IDs.
const (
	Emoji = "emoji"
	ASCII = "ascii"
	Block = "block"
)

// DefaultID is the skin used when none is requested.
const DefaultID = Emoji

func init() {
	Register(Skin{
		ID:    Emoji,
		Title: "Emoji",
		Looks: map[Tag]Look{
			TagPlayer:       {Glyph: "🐤", Fallback: '@', Color: core.ColorPlayer},
			TagObstacle:     {Glyph: "🟩", Fallback: '#', Color: core.ColorObstacle},
			TagObstacleEdge: {Fallback: '=', Color: core.ColorObstacleEdge},
			TagGround:       {Fallback: '▀', Color: core.ColorGround},
			TagCloud:        {Glyph: "☁", Fallback: '~', Color: core.ColorCloud},
		},
	})
	Register(Skin{
		ID:    ASCII,
		Title: "Plain ASCII",
		Looks: map[Tag]Look{
			TagPlayer:       {Fallback: '@', Color: core.ColorPlayer},
			TagObstacle:     {Fallback: '#', Color: core.ColorObstacle},
			TagObstacleEdge: {Fallback: '=', Color: core.ColorObstacleEdge},
			TagGround:       {Fallback: '-', Color: core.ColorGround},
			TagCloud:        {Fallback: '~', Color: core.ColorCloud},
		},
	})
	Register(Skin{
		ID:    Block,
		Title: "Solid blocks",
		Looks: map[Tag]Look{
			TagPlayer:       {Fallback: '●', Color: core.ColorPlayer},
			TagObstacle:     {Fallback: '█', Color: core.ColorObstacle},
			TagObstacleEdge: {Fallback: '▓', Color: core.ColorObstacleEdge},
			TagGround:       {Fallback: '▀', Color: core.ColorGround},
			TagCloud:        {Fallback: '░', Color: core.ColorCloud},
		},
	})
}
