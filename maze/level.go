package maze

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/escape/core"
	"github.com/lixenwraith/escape/parameter"
)

// Load errors, all fatal at startup
var (
	ErrMissingKey   = errors.New("maze: no key tile")
	ErrMissingDoor  = errors.New("maze: no door tile")
	ErrMissingSpawn = errors.New("maze: no spawn tile")
	ErrDuplicate    = errors.New("maze: duplicate singleton tile")
	ErrEmptyLevel   = errors.New("maze: empty level")
	ErrRaggedLevel  = errors.New("maze: rows have different widths")
	ErrOutOfBounds  = errors.New("maze: tile outside level bounds")
	ErrBlockedTile  = errors.New("maze: tile is a wall")
	ErrOverlap      = errors.New("maze: singleton tiles overlap")
	ErrLevelSize    = errors.New("maze: level size out of range")
)

// HazardKind selects hazard behavior
type HazardKind uint8

const (
	HazardPatrol HazardKind = iota
	HazardRotator
)

func (k HazardKind) String() string {
	switch k {
	case HazardPatrol:
		return "patrol"
	case HazardRotator:
		return "rotator"
	default:
		return "unknown"
	}
}

// HazardSpawn describes one hazard placed in the level
// Variant is the authored discriminant (axis for patrols, sprite for rotators)
type HazardSpawn struct {
	Pos     core.Point
	Kind    HazardKind
	Variant uint32
}

// Spec is the mutable description a Level is built from
type Spec struct {
	Width, Height int
	Walls         []core.Point
	Key           *core.Point
	Door          *core.Point
	Spawn         *core.Point
	Hazards       []HazardSpawn
}

// Level is the immutable maze shared read-only by every candidate
type Level struct {
	width, height int
	walls         []bool
	key           core.Point
	door          core.Point
	spawn         core.Point
	hazards       []HazardSpawn
}

// New validates spec and builds a Level
func New(spec Spec) (*Level, error) {
	if spec.Width <= 0 || spec.Height <= 0 {
		return nil, ErrEmptyLevel
	}
	if spec.Width > parameter.MazeMaxSize || spec.Height > parameter.MazeMaxSize {
		return nil, fmt.Errorf("%w: %dx%d", ErrLevelSize, spec.Width, spec.Height)
	}
	if spec.Door == nil {
		return nil, ErrMissingDoor
	}
	if spec.Key == nil {
		return nil, ErrMissingKey
	}
	if spec.Spawn == nil {
		return nil, ErrMissingSpawn
	}

	l := &Level{
		width:   spec.Width,
		height:  spec.Height,
		walls:   make([]bool, spec.Width*spec.Height),
		key:     *spec.Key,
		door:    *spec.Door,
		spawn:   *spec.Spawn,
		hazards: make([]HazardSpawn, len(spec.Hazards)),
	}
	copy(l.hazards, spec.Hazards)

	for _, w := range spec.Walls {
		if !l.InBounds(w) {
			return nil, fmt.Errorf("%w: wall %v", ErrOutOfBounds, w)
		}
		l.walls[l.index(w)] = true
	}

	singletons := []struct {
		name string
		p    core.Point
	}{
		{"door", l.door},
		{"key", l.key},
		{"spawn", l.spawn},
	}
	for i, s := range singletons {
		if !l.InBounds(s.p) {
			return nil, fmt.Errorf("%w: %s %v", ErrOutOfBounds, s.name, s.p)
		}
		if l.IsWall(s.p) {
			return nil, fmt.Errorf("%w: %s %v", ErrBlockedTile, s.name, s.p)
		}
		for _, o := range singletons[:i] {
			if o.p == s.p {
				return nil, fmt.Errorf("%w: %s and %s at %v", ErrOverlap, o.name, s.name, s.p)
			}
		}
	}
	for _, h := range l.hazards {
		if !l.InBounds(h.Pos) {
			return nil, fmt.Errorf("%w: %s hazard %v", ErrOutOfBounds, h.Kind, h.Pos)
		}
		if l.IsWall(h.Pos) {
			return nil, fmt.Errorf("%w: %s hazard %v", ErrBlockedTile, h.Kind, h.Pos)
		}
	}

	return l, nil
}

func (l *Level) index(p core.Point) int {
	return p.Y*l.width + p.X
}

// Size returns width and height in tiles
func (l *Level) Size() (int, int) {
	return l.width, l.height
}

// Width returns the level width in tiles
func (l *Level) Width() int { return l.width }

// Height returns the level height in tiles
func (l *Level) Height() int { return l.height }

// InBounds reports whether p is a tile of this level
func (l *Level) InBounds(p core.Point) bool {
	return p.In(l.width, l.height)
}

// IsWall reports whether p is a wall; out of bounds tiles are not walls
func (l *Level) IsWall(p core.Point) bool {
	if !l.InBounds(p) {
		return false
	}
	return l.walls[l.index(p)]
}

// IsDoor reports whether p is the door tile
func (l *Level) IsDoor(p core.Point) bool {
	return p == l.door
}

// Blocked reports whether p is a wall or outside the level
func (l *Level) Blocked(p core.Point) bool {
	return !l.InBounds(p) || l.walls[l.index(p)]
}

// Key returns the key tile
func (l *Level) Key() core.Point { return l.key }

// Door returns the door tile
func (l *Level) Door() core.Point { return l.door }

// Spawn returns the agent spawn tile
func (l *Level) Spawn() core.Point { return l.spawn }

// Hazards returns a copy of the hazard spawn list
func (l *Level) Hazards() []HazardSpawn {
	out := make([]HazardSpawn, len(l.hazards))
	copy(out, l.hazards)
	return out
}

// WallCount returns the number of wall tiles
func (l *Level) WallCount() int {
	n := 0
	for _, w := range l.walls {
		if w {
			n++
		}
	}
	return n
}
