package engine

import (
	"math/rand/v2"
	"testing"

	"github.com/lixenwraith/escape/core"
	"github.com/lixenwraith/escape/maze"
	"github.com/lixenwraith/escape/resource"
)

func pt(x, y int) *core.Point { return &core.Point{X: x, Y: y} }

func newController(t *testing.T, spec maze.Spec, budget, size int, mode Mode) *Controller {
	t.Helper()
	level, err := maze.New(spec)
	if err != nil {
		t.Fatalf("unexpected level error: %v", err)
	}
	tun := resource.DefaultTunables()
	tun.FrameBudget = budget
	tun.PopulationSize = size
	ctx, err := resource.New(level, tun)
	if err != nil {
		t.Fatalf("unexpected context error: %v", err)
	}
	return NewController(ctx, rand.New(rand.NewPCG(1, 2)), mode)
}

func open5x5() maze.Spec {
	return maze.Spec{Width: 5, Height: 5, Spawn: pt(0, 0), Key: pt(4, 0), Door: pt(4, 4)}
}

func corridor() maze.Spec {
	return maze.Spec{Width: 3, Height: 1, Spawn: pt(0, 0), Key: pt(1, 0), Door: pt(2, 0)}
}

func mustTick(t *testing.T, c *Controller) Stats {
	t.Helper()
	s, err := c.Tick()
	if err != nil {
		t.Fatalf("unexpected tick error: %v", err)
	}
	return s
}

func TestController_StartsAtFirstGeneration(t *testing.T) {
	c := newController(t, open5x5(), 5, 10, ModeSelective)
	s := c.Stats()
	if s.Frame != 0 || s.Generation != 1 {
		t.Errorf("expected frame 0 generation 1, got %+v", s)
	}
}

func TestController_PauseIsNoOp(t *testing.T) {
	c := newController(t, open5x5(), 5, 10, ModeSelective)
	mustTick(t, c)
	before := c.Snapshots()

	c.SetPaused(true)
	for i := 0; i < 10; i++ {
		s := mustTick(t, c)
		if s.Frame != 1 || s.Generation != 1 {
			t.Fatalf("paused tick changed stats: %+v", s)
		}
	}

	after := c.Snapshots()
	for i := range before {
		if before[i].Pos != after[i].Pos || before[i].StepsToDoor != after[i].StepsToDoor {
			t.Fatalf("paused tick moved candidate %d", i)
		}
	}

	if c.TogglePause() {
		t.Error("expected toggle to unpause")
	}
	if s := mustTick(t, c); s.Frame != 2 {
		t.Errorf("expected frame 2 after resume, got %d", s.Frame)
	}
}

func TestController_GenerationTurnover(t *testing.T) {
	c := newController(t, open5x5(), 5, 10, ModeSelective)

	var reports []Report
	c.OnGeneration(func(r Report) { reports = append(reports, r) })

	for i := 0; i < 4; i++ {
		if s := mustTick(t, c); s.Frame != i+1 || s.Generation != 1 {
			t.Fatalf("tick %d: unexpected stats %+v", i, s)
		}
	}

	s := mustTick(t, c)
	if s.Frame != 0 || s.Generation != 2 {
		t.Fatalf("expected frame 0 generation 2 after budget, got %+v", s)
	}
	if len(reports) != 1 {
		t.Fatalf("expected 1 report, got %d", len(reports))
	}
	r := reports[0]
	if r.Generation != 1 || r.Mode != ModeSelective {
		t.Errorf("unexpected report header %+v", r)
	}
	if r.Summary.Size != 10 {
		t.Errorf("expected summary over 10 candidates, got %d", r.Summary.Size)
	}
	if len(r.Best) != 5 {
		t.Errorf("expected best sequence of length 5, got %d", len(r.Best))
	}

	// New generation starts from spawn
	for i, snap := range c.Snapshots() {
		if snap.StepsToDoor != 0 {
			t.Fatalf("candidate %d not reset after turnover", i)
		}
	}
}

func TestController_RandomMode(t *testing.T) {
	c := newController(t, open5x5(), 3, 10, ModeRandom)

	var got Report
	c.OnGeneration(func(r Report) { got = r })

	for i := 0; i < 3; i++ {
		mustTick(t, c)
	}
	if got.Mode != ModeRandom || got.Generation != 1 {
		t.Errorf("expected random-mode report for generation 1, got %+v", got)
	}
	if s := c.Stats(); s.Generation != 2 || s.Frame != 0 {
		t.Errorf("expected generation 2 frame 0, got %+v", s)
	}

	c.SetMode(ModeSelective)
	if c.Mode() != ModeSelective {
		t.Error("expected selective mode after SetMode")
	}
}

func TestController_AIDisabledHoldsGeneration(t *testing.T) {
	c := newController(t, open5x5(), 3, 5, ModeSelective)
	c.SetAIEnabled(false)

	for i := 0; i < 6; i++ {
		mustTick(t, c)
	}
	s := c.Stats()
	if s.Frame != 6 || s.Generation != 1 {
		t.Errorf("expected frame 6 generation 1 with AI off, got %+v", s)
	}
	for i, snap := range c.Snapshots() {
		if snap.StepsToDoor != 0 {
			t.Errorf("candidate %d stepped with AI off", i)
		}
	}

	// Turnover resumes once AI is back on
	c.SetAIEnabled(true)
	if s := mustTick(t, c); s.Generation != 2 {
		t.Errorf("expected turnover after re-enabling AI, got %+v", s)
	}
}

func TestController_FirstSolveReportedOnce(t *testing.T) {
	c := newController(t, corridor(), 10, 20, ModeSelective)

	var reports []Report
	c.OnGeneration(func(r Report) { reports = append(reports, r) })

	for i := 0; i < 20; i++ {
		mustTick(t, c)
	}
	if len(reports) != 2 {
		t.Fatalf("expected 2 reports, got %d", len(reports))
	}
	if !reports[0].FirstSolve || reports[0].Summary.Completed == 0 {
		t.Errorf("expected first generation to solve the corridor, got %+v", reports[0].Summary)
	}
	if reports[1].FirstSolve {
		t.Error("first solve must be reported only once")
	}
}

func TestController_RestartAndManual(t *testing.T) {
	c := newController(t, open5x5(), 3, 5, ModeSelective)
	for i := 0; i < 7; i++ {
		mustTick(t, c)
	}

	c.Restart()
	if s := c.Stats(); s.Frame != 0 || s.Generation != 1 {
		t.Errorf("expected counters reset, got %+v", s)
	}

	c.ApplyManual(core.Down)
	if got := c.Snapshots()[0].Pos; got != (core.Point{X: 0, Y: 1}) {
		t.Errorf("expected candidate 0 at (0,1), got %v", got)
	}
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    Mode
		wantErr bool
	}{
		{"selective", ModeSelective, false},
		{"RANDOM", ModeRandom, false},
		{"", ModeSelective, false},
		{"greedy", ModeSelective, true},
	}
	for _, tt := range tests {
		got, err := ParseMode(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("%q: expected error=%v, got %v", tt.in, tt.wantErr, err)
		}
		if got != tt.want {
			t.Errorf("%q: expected %v, got %v", tt.in, tt.want, got)
		}
	}
}
