package snake

import "strings"

// Direction is a unit step on the grid. The zero value is None, which is
// only seen before the first move of a game.
type Direction struct {
	DX, DY int
}

var (
	None  = Direction{}
	Up    = Direction{DX: 0, DY: -1}
	Down  = Direction{DX: 0, DY: 1}
	Left  = Direction{DX: -1, DY: 0}
	Right = Direction{DX: 1, DY: 0}
)

// IsZero reports whether d is None.
func (d Direction) IsZero() bool {
	return d == None
}

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	return Direction{DX: -d.DX, DY: -d.DY}
}

// Reverses reports whether d is a 180° turn from other.
// None never reverses anything.
func (d Direction) Reverses(other Direction) bool {
	return !d.IsZero() && d == other.Opposite()
}

func (d Direction) String() string {
	switch d {
	case None:
		return "none"
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// ParseDirection converts a direction name to a Direction.
func ParseDirection(s string) (Direction, bool) {
	switch strings.ToLower(s) {
	case "up":
		return Up, true
	case "down":
		return Down, true
	case "left":
		return Left, true
	case "right":
		return Right, true
	default:
		return None, false
	}
}
