package core

// Color is the semantic colour of a screen cell.
// The platform layer maps each value to a terminal colour.
type Color uint8

// Palette used by the board renderer.
const (
	ColorDefault Color = iota
	ColorGrid
	ColorBorder
	ColorSnakeHead
	ColorSnakeBody
	ColorFood
	ColorParticle
	ColorParticleFade
	ColorHUD
	ColorHighlight
	ColorOverlay
	ColorDanger
)

// String returns the palette name, used in debug output and tests.
func (c Color) String() string {
	switch c {
	case ColorDefault:
		return "default"
	case ColorGrid:
		return "grid"
	case ColorBorder:
		return "border"
	case ColorSnakeHead:
		return "snake-head"
	case ColorSnakeBody:
		return "snake-body"
	case ColorFood:
		return "food"
	case ColorParticle:
		return "particle"
	case ColorParticleFade:
		return "particle-fade"
	case ColorHUD:
		return "hud"
	case ColorHighlight:
		return "highlight"
	case ColorOverlay:
		return "overlay"
	case ColorDanger:
		return "danger"
	default:
		return "unknown"
	}
}
