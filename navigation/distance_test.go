package navigation

import (
	"testing"

	"github.com/lixenwraith/escape/core"
	"github.com/lixenwraith/escape/maze"
)

func openGrid(p core.Point) bool { return false }

func TestSolve_SourceBaseline(t *testing.T) {
	src := core.Point{X: 2, Y: 2}
	f := Solve(5, 5, src, openGrid)

	d, ok := f.Get(src)
	if !ok || d != DistSource {
		t.Errorf("expected source distance %d, got %d (ok=%v)", DistSource, d, ok)
	}

	if f.Reached() != 25 {
		t.Errorf("expected 25 reached tiles, got %d", f.Reached())
	}

	// Open grid: distance is manhattan + 1
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			p := core.Point{X: x, Y: y}
			d, ok := f.Get(p)
			if !ok {
				t.Fatalf("tile %v missing from open field", p)
			}
			if want := p.Manhattan(src) + 1; d != want {
				t.Errorf("tile %v: expected %d, got %d", p, want, d)
			}
		}
	}
}

func TestSolve_StepsByOne(t *testing.T) {
	l, err := maze.ParseString(`#########
#S..#..K#
#.#.#.#.#
#.#...#.#
#.#####.#
#...D...#
#########
`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	fields := NewFields(l)
	f := fields.Key
	w, h := l.Size()

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			p := core.Point{X: x, Y: y}
			d, ok := f.Get(p)

			if l.IsWall(p) {
				if ok {
					t.Errorf("wall %v present in field with %d", p, d)
				}
				continue
			}
			if !ok {
				t.Errorf("open tile %v missing from field", p)
				continue
			}
			if d < 1 {
				t.Errorf("tile %v: distance %d below baseline", p, d)
			}
			if p == f.Source {
				continue
			}

			// Some neighbor is exactly one closer, none is more than one closer
			hasParent := false
			for _, dir := range core.Directions {
				nd, nok := f.Get(p.Add(dir.Offset()))
				if !nok {
					continue
				}
				if nd == d-1 {
					hasParent = true
				}
				if nd < d-1 {
					t.Errorf("tile %v (%d) has neighbor at %d", p, d, nd)
				}
			}
			if !hasParent {
				t.Errorf("tile %v (%d) has no predecessor", p, d)
			}
		}
	}

	// Key at (7,1) to door at (4,5): down the right column then left along the bottom
	if d, _ := fields.Door.Get(l.Key()); d != 8 {
		t.Errorf("expected key tile at door distance 8, got %d", d)
	}
}

func TestSolve_UnreachableAbsent(t *testing.T) {
	l, err := maze.ParseString(`S...#
....#
###.#
..#.#
K.#D.
`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	f := NewFields(l)

	if _, ok := f.KeyDistance(l.Spawn()); ok {
		t.Error("spawn should be unreachable from the sealed key")
	}
	if d, ok := f.KeyDistance(core.Point{X: 1, Y: 3}); !ok || d != 3 {
		t.Errorf("expected (1,3) at key distance 3, got %d (ok=%v)", d, ok)
	}
	if _, ok := f.DoorDistance(core.Point{X: 4, Y: 0}); ok {
		t.Error("wall tile should be absent")
	}
	if d, ok := f.DoorDistance(core.Point{X: 4, Y: 4}); !ok || d != 2 {
		t.Errorf("expected (4,4) at door distance 2, got %d (ok=%v)", d, ok)
	}
}

func TestSolve_OutOfBoundsQueries(t *testing.T) {
	f := Solve(3, 3, core.Point{X: 0, Y: 0}, openGrid)
	if _, ok := f.Get(core.Point{X: 3, Y: 0}); ok {
		t.Error("x == width should be absent")
	}
	if _, ok := f.Get(core.Point{X: 0, Y: -1}); ok {
		t.Error("negative y should be absent")
	}
	if f.Max() != 5 {
		t.Errorf("expected max 5 on 3x3, got %d", f.Max())
	}
}

func TestSolve_BlockedSource(t *testing.T) {
	src := core.Point{X: 1, Y: 1}
	f := Solve(3, 3, src, func(p core.Point) bool { return p == src })
	if f.Reached() != 0 {
		t.Errorf("expected empty field from blocked source, got %d tiles", f.Reached())
	}
}

func TestEstimate_FallsBackToManhattan(t *testing.T) {
	src := core.Point{X: 0, Y: 0}
	wall := func(p core.Point) bool { return p.X == 1 }
	f := Solve(3, 3, src, wall)

	if d := f.Estimate(core.Point{X: 0, Y: 2}); d != 3 {
		t.Errorf("expected field distance 3, got %d", d)
	}
	// (2,2) is behind the wall column
	if d := f.Estimate(core.Point{X: 2, Y: 2}); d != 5 {
		t.Errorf("expected manhattan estimate 5, got %d", d)
	}
}
