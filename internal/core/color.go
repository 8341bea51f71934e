package core

// Color is a semantic foreground colour for a screen cell.
// Hosts map it to whatever their output supports (ANSI codes, RGBA).
type Color uint8

// Palette used by skins and HUD drawing.
const (
	ColorDefault Color = iota
	ColorPlayer
	ColorPlayerEye
	ColorObstacle
	ColorObstacleEdge
	ColorGround
	ColorCloud
	ColorText
	ColorAlert
	ColorDim
)

// String returns the palette name of the colour.
func (c Color) String() string {
	switch c {
	case ColorPlayer:
		return "player"
	case ColorPlayerEye:
		return "player-eye"
	case ColorObstacle:
		return "obstacle"
	case ColorObstacleEdge:
		return "obstacle-edge"
	case ColorGround:
		return "ground"
	case ColorCloud:
		return "cloud"
	case ColorText:
		return "text"
	case ColorAlert:
		return "alert"
	case ColorDim:
		return "dim"
	default:
		return "default"
	}
}
