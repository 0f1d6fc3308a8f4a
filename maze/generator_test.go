package maze

import (
	"testing"

	"github.com/lixenwraith/escape/core"
)

// reachable walks open tiles of l from a, doors count as open
func reachable(l *Level, a core.Point) map[core.Point]bool {
	seen := map[core.Point]bool{a: true}
	queue := []core.Point{a}
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		for _, d := range core.Directions {
			n := c.Add(d.Offset())
			if l.Blocked(n) || seen[n] {
				continue
			}
			seen[n] = true
			queue = append(queue, n)
		}
	}
	return seen
}

func TestGenerate_Solvable(t *testing.T) {
	for seed := uint64(1); seed <= 20; seed++ {
		cfg := DefaultGenConfig()
		cfg.Seed = seed

		l, err := Generate(cfg)
		if err != nil {
			t.Fatalf("seed %d: unexpected error: %v", seed, err)
		}

		open := reachable(l, l.Spawn())
		if !open[l.Key()] {
			t.Errorf("seed %d: key %v unreachable from spawn", seed, l.Key())
		}
		if !open[l.Door()] {
			t.Errorf("seed %d: door %v unreachable from spawn", seed, l.Door())
		}

		for _, h := range l.Hazards() {
			if h.Pos == l.Spawn() || h.Pos == l.Key() || h.Pos == l.Door() {
				t.Errorf("seed %d: hazard on singleton tile %v", seed, h.Pos)
			}
			if l.IsWall(h.Pos) {
				t.Errorf("seed %d: hazard inside wall %v", seed, h.Pos)
			}
		}
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	cfg := DefaultGenConfig()
	cfg.Seed = 42

	a, err := Generate(cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := Generate(cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if a.String() != b.String() {
		t.Errorf("same seed produced different levels:\n%s\n%s", a, b)
	}
}

func TestGenerate_OddDimensions(t *testing.T) {
	l, err := Generate(GenConfig{Width: 12, Height: 8, Seed: 7})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if w, h := l.Size(); w != 11 || h != 7 {
		t.Errorf("expected 11x7, got %dx%d", w, h)
	}
	if len(l.Hazards()) != 0 {
		t.Errorf("expected no hazards, got %d", len(l.Hazards()))
	}
}

func TestGenerate_SpikesOffRoute(t *testing.T) {
	cfg := GenConfig{Width: 25, Height: 17, Spikes: 6, Seed: 3}
	l, err := Generate(cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Spikes never move, so the level stays solvable with them treated as walls
	spikes := make(map[core.Point]bool)
	for _, h := range l.Hazards() {
		if h.Kind == HazardRotator {
			spikes[h.Pos] = true
		}
	}

	seen := map[core.Point]bool{l.Spawn(): true}
	queue := []core.Point{l.Spawn()}
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		for _, d := range core.Directions {
			n := c.Add(d.Offset())
			if l.Blocked(n) || seen[n] || spikes[n] {
				continue
			}
			seen[n] = true
			queue = append(queue, n)
		}
	}
	if !seen[l.Key()] || !seen[l.Door()] {
		t.Error("spikes cut the spawn-key-door route")
	}
}
