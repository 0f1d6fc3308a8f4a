package maze

import (
	"errors"
	"strings"
	"testing"

	"github.com/lixenwraith/escape/core"
	"github.com/lixenwraith/escape/parameter"
)

const sampleLevel = `; sample
#########
#S..V..K#
#.#####.#
#..o..H.#
####D####
`

func TestParse_Sample(t *testing.T) {
	l, err := ParseString(sampleLevel)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if w, h := l.Size(); w != 9 || h != 5 {
		t.Errorf("expected 9x5, got %dx%d", w, h)
	}
	if l.Spawn() != (core.Point{X: 1, Y: 1}) {
		t.Errorf("expected spawn (1,1), got %v", l.Spawn())
	}
	if l.Key() != (core.Point{X: 7, Y: 1}) {
		t.Errorf("expected key (7,1), got %v", l.Key())
	}
	if l.Door() != (core.Point{X: 4, Y: 4}) {
		t.Errorf("expected door (4,4), got %v", l.Door())
	}
	if !l.IsDoor(core.Point{X: 4, Y: 4}) || l.IsWall(core.Point{X: 4, Y: 4}) {
		t.Error("door tile should be a door and not a wall")
	}
	if !l.IsWall(core.Point{X: 0, Y: 0}) {
		t.Error("corner should be a wall")
	}
	if l.IsWall(core.Point{X: -1, Y: 0}) {
		t.Error("out of bounds tile should not report as wall")
	}
	if !l.Blocked(core.Point{X: -1, Y: 0}) {
		t.Error("out of bounds tile should be blocked")
	}

	hazards := l.Hazards()
	if len(hazards) != 3 {
		t.Fatalf("expected 3 hazards, got %d", len(hazards))
	}

	want := []HazardSpawn{
		{Pos: core.Point{X: 4, Y: 1}, Kind: HazardPatrol, Variant: parameter.HazardVerticalPatrol},
		{Pos: core.Point{X: 3, Y: 3}, Kind: HazardRotator, Variant: parameter.HazardSmallSpike},
		{Pos: core.Point{X: 6, Y: 3}, Kind: HazardPatrol, Variant: parameter.HazardHorizontalPatrol},
	}
	for i, h := range want {
		if hazards[i] != h {
			t.Errorf("hazard %d: expected %+v, got %+v", i, h, hazards[i])
		}
	}
}

func TestParse_MissingSingletons(t *testing.T) {
	cases := []struct {
		name  string
		level string
		want  error
	}{
		{"no key", "S.D\n", ErrMissingKey},
		{"no door", "S.K\n", ErrMissingDoor},
		{"no spawn", "K.D\n", ErrMissingSpawn},
		{"empty", "\n\n", ErrEmptyLevel},
		{"ragged", "SKD\n..\n", ErrRaggedLevel},
		{"two keys", "SKKD\n", ErrDuplicate},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := ParseString(c.level)
			if !errors.Is(err, c.want) {
				t.Errorf("expected %v, got %v", c.want, err)
			}
		})
	}
}

func TestParse_UnknownTile(t *testing.T) {
	if _, err := ParseString("SK?D\n"); err == nil {
		t.Error("expected error for unknown tile")
	}
}

func TestFormat_RoundTrip(t *testing.T) {
	l, err := ParseString(sampleLevel)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	text := l.String()
	want := strings.Join(strings.Split(sampleLevel, "\n")[1:], "\n")
	if text != want {
		t.Errorf("expected\n%s\ngot\n%s", want, text)
	}

	again, err := ParseString(text)
	if err != nil {
		t.Fatalf("reparse failed: %v", err)
	}
	if again.String() != text {
		t.Error("second round trip changed the level")
	}
}

func TestNew_Validation(t *testing.T) {
	k := core.Point{X: 1, Y: 0}
	d := core.Point{X: 2, Y: 0}
	s := core.Point{X: 0, Y: 0}

	_, err := New(Spec{Width: 3, Height: 1, Key: &k, Door: &d, Spawn: &s, Walls: []core.Point{{X: 1, Y: 0}}})
	if !errors.Is(err, ErrBlockedTile) {
		t.Errorf("expected ErrBlockedTile, got %v", err)
	}

	_, err = New(Spec{Width: 3, Height: 1, Key: &k, Door: &d, Spawn: &s, Walls: []core.Point{{X: 3, Y: 0}}})
	if !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("expected ErrOutOfBounds, got %v", err)
	}

	_, err = New(Spec{Width: 0, Height: 1, Key: &k, Door: &d, Spawn: &s})
	if !errors.Is(err, ErrEmptyLevel) {
		t.Errorf("expected ErrEmptyLevel, got %v", err)
	}
}

func TestNew_Overlap(t *testing.T) {
	a := core.Point{X: 0, Y: 0}
	b := core.Point{X: 1, Y: 0}
	c := core.Point{X: 2, Y: 0}

	tests := []struct {
		name             string
		spawn, key, door core.Point
	}{
		{"spawn on door", a, c, a},
		{"spawn on key", a, a, c},
		{"key on door", a, c, c},
	}

	for _, tt := range tests {
		spawn, key, door := tt.spawn, tt.key, tt.door
		_, err := New(Spec{Width: 3, Height: 1, Spawn: &spawn, Key: &key, Door: &door})
		if !errors.Is(err, ErrOverlap) {
			t.Errorf("%s: expected ErrOverlap, got %v", tt.name, err)
		}
	}

	if _, err := New(Spec{Width: 3, Height: 1, Spawn: &a, Key: &b, Door: &c}); err != nil {
		t.Errorf("expected distinct tiles to load, got %v", err)
	}
}

func TestNew_HazardOnWall(t *testing.T) {
	s := core.Point{X: 0, Y: 0}
	k := core.Point{X: 3, Y: 0}
	d := core.Point{X: 4, Y: 0}
	wall := core.Point{X: 2, Y: 0}

	_, err := New(Spec{
		Width: 5, Height: 1, Spawn: &s, Key: &k, Door: &d,
		Walls:   []core.Point{wall},
		Hazards: []HazardSpawn{{Kind: HazardRotator, Pos: wall}},
	})
	if !errors.Is(err, ErrBlockedTile) {
		t.Errorf("expected ErrBlockedTile for hazard on wall, got %v", err)
	}
}

func TestLevel_HazardsIsCopy(t *testing.T) {
	l, err := ParseString(sampleLevel)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	h := l.Hazards()
	h[0].Pos = core.Point{X: 0, Y: 0}
	if l.Hazards()[0].Pos == (core.Point{X: 0, Y: 0}) {
		t.Error("mutating returned hazards changed the level")
	}
}
