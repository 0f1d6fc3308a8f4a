package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/lixenwraith/escape/engine"
	"github.com/lixenwraith/escape/parameter"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "escape.yaml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestDefault_MatchesParameters(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	e := cfg.Evolution
	if e.PopulationSize != parameter.GAPopulationSize {
		t.Errorf("expected population %d, got %d", parameter.GAPopulationSize, e.PopulationSize)
	}
	if e.FrameBudget != parameter.GAFrameBudget {
		t.Errorf("expected frame budget %d, got %d", parameter.GAFrameBudget, e.FrameBudget)
	}
	if e.MutationProbability != parameter.GAMutationProbability ||
		e.RetentionRate != parameter.GARetentionRate ||
		e.ExplorationRate != parameter.GAExplorationRate {
		t.Errorf("operator rates diverge from parameters: %+v", e)
	}
	if e.FitnessThreshold != parameter.GAFitnessThreshold {
		t.Errorf("expected threshold %v, got %v", parameter.GAFitnessThreshold, e.FitnessThreshold)
	}
	if cfg.Display.FrameInterval != parameter.FrameUpdateInterval {
		t.Errorf("expected frame interval %v, got %v", parameter.FrameUpdateInterval, cfg.Display.FrameInterval)
	}
	if cfg.Display.GamesPerRow != parameter.GamesPerRow {
		t.Errorf("expected games per row %d, got %d", parameter.GamesPerRow, cfg.Display.GamesPerRow)
	}
	if cfg.History.Backend != parameter.HistoryBackend {
		t.Errorf("expected backend %q, got %q", parameter.HistoryBackend, cfg.History.Backend)
	}
	if cfg.Mode() != engine.ModeSelective {
		t.Errorf("expected selective mode, got %v", cfg.Mode())
	}
}

func TestLoad_PartialOverride(t *testing.T) {
	path := writeFile(t, `
evolution:
  population_size: 50
  mode: random
display:
  slow_delay: 1s
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Evolution.PopulationSize != 50 {
		t.Errorf("expected population 50, got %d", cfg.Evolution.PopulationSize)
	}
	if cfg.Evolution.FrameBudget != parameter.GAFrameBudget {
		t.Errorf("unset key should keep default, got %d", cfg.Evolution.FrameBudget)
	}
	if cfg.Mode() != engine.ModeRandom {
		t.Errorf("expected random mode, got %v", cfg.Mode())
	}
	if cfg.Display.SlowDelay != time.Second {
		t.Errorf("expected 1s slow delay, got %v", cfg.Display.SlowDelay)
	}

	tun := cfg.Tunables()
	if tun.PopulationSize != 50 || tun.Threshold != parameter.GAFitnessThreshold {
		t.Errorf("unexpected tunables %+v", tun)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"zero population", "evolution:\n  population_size: 0\n"},
		{"zero budget", "evolution:\n  frame_budget: 0\n"},
		{"rates over 100", "evolution:\n  retention_rate: 60\n  exploration_rate: 50\n"},
		{"mutation over 1000", "evolution:\n  mutation_probability: 1001\n"},
		{"unknown mode", "evolution:\n  mode: greedy\n"},
		{"unknown backend", "history:\n  backend: redis\n"},
		{"tiny generated level", "level:\n  width: 3\n"},
		{"volume over 1", "audio:\n  volume: 2\n"},
		{"zero frame skip", "display:\n  frame_skip: 0\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeFile(t, tt.body))
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("expected ErrInvalid, got %v", err)
			}
		})
	}
}

func TestLoad_Errors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
	if _, err := Load(writeFile(t, "evolution: [")); err == nil {
		t.Error("expected error for malformed yaml")
	}
}

func TestWriteYAML_RoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Evolution.Workers = 4
	cfg.Level.Path = "levels/one.txt"

	path := filepath.Join(t.TempDir(), "dump.yaml")
	if err := cfg.WriteYAML(path); err != nil {
		t.Fatalf("unexpected write error: %v", err)
	}

	back, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected load error: %v", err)
	}
	if back.Evolution.Workers != 4 || back.Level.Path != "levels/one.txt" {
		t.Errorf("dump did not round trip: %+v", back)
	}
	if back.Display.FrameInterval != cfg.Display.FrameInterval {
		t.Errorf("expected frame interval %v, got %v", cfg.Display.FrameInterval, back.Display.FrameInterval)
	}
}
