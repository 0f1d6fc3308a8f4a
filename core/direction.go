package core

// Direction is one agent move command
// Values are the persisted wire encoding and must not be reordered
type Direction uint8

const (
	Up    Direction = 0
	Left  Direction = 1
	Down  Direction = 2
	Right Direction = 3

	// DirectionCount is the number of distinct move commands
	DirectionCount = 4
)

// Unit offsets indexed by Direction
var directionOffsets = [DirectionCount]Point{
	Up:    {0, -1},
	Left:  {-1, 0},
	Down:  {0, 1},
	Right: {1, 0},
}

// Directions lists every command in encoding order
var Directions = [DirectionCount]Direction{Up, Left, Down, Right}

// ParseDirection decodes a stored byte, anything above 2 decodes as Right
func ParseDirection(b byte) Direction {
	if b >= byte(Right) {
		return Right
	}
	return Direction(b)
}

// Offset returns the unit step for d
func (d Direction) Offset() Point {
	if d >= DirectionCount {
		return directionOffsets[Right]
	}
	return directionOffsets[d]
}

// Opposite returns the reverse command
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	default:
		return Left
	}
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Left:
		return "left"
	case Down:
		return "down"
	case Right:
		return "right"
	default:
		return "invalid"
	}
}
