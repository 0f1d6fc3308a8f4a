package maze

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/lixenwraith/escape/core"
	"github.com/lixenwraith/escape/parameter"
)

// Parse reads a level in the text tile format, one row per line:
//
//	#  wall            S  agent spawn
//	.  floor (or ' ')  K  key
//	V  vertical patrol D  door
//	H  horizontal patrol
//	o  small spike     O  large spike    x  blank spike
//
// Lines starting with ';' are comments. Trailing blank lines are ignored.
func Parse(r io.Reader) (*Level, error) {
	var rows []string

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.HasPrefix(line, ";") {
			continue
		}
		rows = append(rows, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("maze: read level: %w", err)
	}

	for len(rows) > 0 && strings.TrimSpace(rows[len(rows)-1]) == "" {
		rows = rows[:len(rows)-1]
	}
	if len(rows) == 0 {
		return nil, ErrEmptyLevel
	}

	spec := Spec{
		Width:  len([]rune(rows[0])),
		Height: len(rows),
	}

	setOnce := func(slot **core.Point, p core.Point, name string) error {
		if *slot != nil {
			return fmt.Errorf("%w: second %s at %v", ErrDuplicate, name, p)
		}
		*slot = &p
		return nil
	}

	for y, row := range rows {
		runes := []rune(row)
		if len(runes) != spec.Width {
			return nil, fmt.Errorf("%w: row %d has %d tiles, expected %d", ErrRaggedLevel, y, len(runes), spec.Width)
		}

		for x, r := range runes {
			p := core.Point{X: x, Y: y}
			var err error

			switch r {
			case parameter.GlyphWall:
				spec.Walls = append(spec.Walls, p)
			case parameter.GlyphFloor, parameter.GlyphSpace:
			case parameter.GlyphSpawn:
				err = setOnce(&spec.Spawn, p, "spawn")
			case parameter.GlyphKey:
				err = setOnce(&spec.Key, p, "key")
			case parameter.GlyphDoor:
				err = setOnce(&spec.Door, p, "door")
			case parameter.GlyphVerticalPatrol:
				spec.Hazards = append(spec.Hazards, HazardSpawn{Pos: p, Kind: HazardPatrol, Variant: parameter.HazardVerticalPatrol})
			case parameter.GlyphHorizontalPatrol:
				spec.Hazards = append(spec.Hazards, HazardSpawn{Pos: p, Kind: HazardPatrol, Variant: parameter.HazardHorizontalPatrol})
			case parameter.GlyphSmallSpike:
				spec.Hazards = append(spec.Hazards, HazardSpawn{Pos: p, Kind: HazardRotator, Variant: parameter.HazardSmallSpike})
			case parameter.GlyphLargeSpike:
				spec.Hazards = append(spec.Hazards, HazardSpawn{Pos: p, Kind: HazardRotator, Variant: parameter.HazardLargeSpike})
			case parameter.GlyphBlankSpike:
				spec.Hazards = append(spec.Hazards, HazardSpawn{Pos: p, Kind: HazardRotator, Variant: parameter.HazardBlankSpike})
			default:
				err = fmt.Errorf("maze: unknown tile %q at %v", r, p)
			}

			if err != nil {
				return nil, err
			}
		}
	}

	return New(spec)
}

// ParseString is Parse over an in-memory level
func ParseString(s string) (*Level, error) {
	return Parse(strings.NewReader(s))
}

// Format writes l in the text tile format accepted by Parse
func Format(w io.Writer, l *Level) error {
	hazardAt := make(map[core.Point]HazardSpawn, len(l.hazards))
	for _, h := range l.hazards {
		hazardAt[h.Pos] = h
	}

	bw := bufio.NewWriter(w)
	for y := 0; y < l.height; y++ {
		for x := 0; x < l.width; x++ {
			p := core.Point{X: x, Y: y}
			if _, err := bw.WriteRune(l.glyphAt(p, hazardAt)); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// String renders the level in the text tile format
func (l *Level) String() string {
	var sb strings.Builder
	_ = Format(&sb, l)
	return sb.String()
}

func (l *Level) glyphAt(p core.Point, hazardAt map[core.Point]HazardSpawn) rune {
	switch {
	case p == l.spawn:
		return parameter.GlyphSpawn
	case p == l.key:
		return parameter.GlyphKey
	case p == l.door:
		return parameter.GlyphDoor
	}

	if h, ok := hazardAt[p]; ok {
		return HazardGlyph(h)
	}
	if l.IsWall(p) {
		return parameter.GlyphWall
	}
	return parameter.GlyphFloor
}

// HazardGlyph returns the text tile for a hazard spawn
func HazardGlyph(h HazardSpawn) rune {
	if h.Kind == HazardPatrol {
		if h.Variant == parameter.HazardVerticalPatrol {
			return parameter.GlyphVerticalPatrol
		}
		return parameter.GlyphHorizontalPatrol
	}

	switch h.Variant {
	case parameter.HazardSmallSpike:
		return parameter.GlyphSmallSpike
	case parameter.HazardLargeSpike:
		return parameter.GlyphLargeSpike
	default:
		return parameter.GlyphBlankSpike
	}
}
