// Package config loads run configuration from YAML layered over embedded defaults
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/escape/engine"
	"github.com/lixenwraith/escape/maze"
	"github.com/lixenwraith/escape/resource"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// ErrInvalid wraps every validation failure
var ErrInvalid = errors.New("config: invalid")

// Config holds all run configuration
type Config struct {
	Evolution EvolutionConfig `yaml:"evolution"`
	Level     LevelConfig     `yaml:"level"`
	Display   DisplayConfig   `yaml:"display"`
	History   HistoryConfig   `yaml:"history"`
	Audio     AudioConfig     `yaml:"audio"`
}

// EvolutionConfig holds population and operator settings
type EvolutionConfig struct {
	PopulationSize      int     `yaml:"population_size"`
	FrameBudget         int     `yaml:"frame_budget"`
	Workers             int     `yaml:"workers"`
	MutationProbability float64 `yaml:"mutation_probability"` // Per mille
	RetentionRate       float64 `yaml:"retention_rate"`       // Percent
	ExplorationRate     float64 `yaml:"exploration_rate"`     // Percent
	WeightScale         float64 `yaml:"weight_scale"`
	FitnessThreshold    float64 `yaml:"fitness_threshold"`
	Mode                string  `yaml:"mode"`
	Seed                uint64  `yaml:"seed"`
}

// LevelConfig selects a level file or the generator settings
type LevelConfig struct {
	Path     string  `yaml:"path"`
	Width    int     `yaml:"width"`
	Height   int     `yaml:"height"`
	Braiding float64 `yaml:"braiding"`
	Patrols  int     `yaml:"patrols"`
	Spikes   int     `yaml:"spikes"`
	Seed     uint64  `yaml:"seed"`
}

// DisplayConfig holds viewer timing and layout
type DisplayConfig struct {
	FrameInterval time.Duration `yaml:"frame_interval"`
	SlowDelay     time.Duration `yaml:"slow_delay"`
	FrameSkip     int           `yaml:"frame_skip"`
	GamesPerRow   int           `yaml:"games_per_row"`
	Draw          bool          `yaml:"draw"`
	Multi         bool          `yaml:"multi"`
}

// HistoryConfig selects the run history store
type HistoryConfig struct {
	Backend string `yaml:"backend"`
	Path    string `yaml:"path"`
	Plot    string `yaml:"plot"`
}

// AudioConfig toggles the sound cues
type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"`
}

// Default returns the embedded defaults
func Default() *Config {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		panic(fmt.Sprintf("config: embedded defaults: %v", err))
	}
	return cfg
}

// Load reads path over the embedded defaults and validates the result
// Empty path yields the defaults
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Only keys present in the file overwrite defaults
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks ranges and enumerations
func (c *Config) Validate() error {
	e := c.Evolution
	switch {
	case e.PopulationSize < 1:
		return fmt.Errorf("%w: population_size %d < 1", ErrInvalid, e.PopulationSize)
	case e.FrameBudget < 1:
		return fmt.Errorf("%w: frame_budget %d < 1", ErrInvalid, e.FrameBudget)
	case e.Workers < 1:
		return fmt.Errorf("%w: workers %d < 1", ErrInvalid, e.Workers)
	case e.MutationProbability < 0 || e.MutationProbability > 1000:
		return fmt.Errorf("%w: mutation_probability %v outside [0,1000]", ErrInvalid, e.MutationProbability)
	case e.RetentionRate < 0 || e.RetentionRate > 100:
		return fmt.Errorf("%w: retention_rate %v outside [0,100]", ErrInvalid, e.RetentionRate)
	case e.ExplorationRate < 0 || e.ExplorationRate > 100:
		return fmt.Errorf("%w: exploration_rate %v outside [0,100]", ErrInvalid, e.ExplorationRate)
	case e.RetentionRate+e.ExplorationRate > 100:
		return fmt.Errorf("%w: retention_rate + exploration_rate > 100", ErrInvalid)
	case e.WeightScale <= 0:
		return fmt.Errorf("%w: weight_scale %v <= 0", ErrInvalid, e.WeightScale)
	case e.FitnessThreshold <= 0:
		return fmt.Errorf("%w: fitness_threshold %v <= 0", ErrInvalid, e.FitnessThreshold)
	}
	if _, err := engine.ParseMode(e.Mode); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	if c.Level.Path == "" && (c.Level.Width < 5 || c.Level.Height < 5) {
		return fmt.Errorf("%w: generated level %dx%d smaller than 5x5", ErrInvalid, c.Level.Width, c.Level.Height)
	}
	if c.Level.Braiding < 0 || c.Level.Braiding > 1 {
		return fmt.Errorf("%w: braiding %v outside [0,1]", ErrInvalid, c.Level.Braiding)
	}

	if c.Display.FrameInterval <= 0 {
		return fmt.Errorf("%w: frame_interval %v <= 0", ErrInvalid, c.Display.FrameInterval)
	}
	if c.Display.SlowDelay <= 0 {
		return fmt.Errorf("%w: slow_delay %v <= 0", ErrInvalid, c.Display.SlowDelay)
	}
	if c.Display.FrameSkip < 1 {
		return fmt.Errorf("%w: frame_skip %d < 1", ErrInvalid, c.Display.FrameSkip)
	}
	if c.Display.GamesPerRow < 1 {
		return fmt.Errorf("%w: games_per_row %d < 1", ErrInvalid, c.Display.GamesPerRow)
	}

	switch c.History.Backend {
	case "memory", "sqlite":
	default:
		return fmt.Errorf("%w: history backend %q (memory|sqlite)", ErrInvalid, c.History.Backend)
	}

	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("%w: audio volume %v outside [0,1]", ErrInvalid, c.Audio.Volume)
	}
	return nil
}

// Tunables converts the evolution section for the run context
func (c *Config) Tunables() resource.Tunables {
	e := c.Evolution
	return resource.Tunables{
		PopulationSize:      e.PopulationSize,
		FrameBudget:         e.FrameBudget,
		Workers:             e.Workers,
		MutationProbability: e.MutationProbability,
		RetentionRate:       e.RetentionRate,
		ExplorationRate:     e.ExplorationRate,
		WeightScale:         e.WeightScale,
		Threshold:           e.FitnessThreshold,
	}
}

// GenConfig converts the level section for the generator
func (c *Config) GenConfig() maze.GenConfig {
	return maze.GenConfig{
		Width:    c.Level.Width,
		Height:   c.Level.Height,
		Braiding: c.Level.Braiding,
		Patrols:  c.Level.Patrols,
		Spikes:   c.Level.Spikes,
		Seed:     c.Level.Seed,
	}
}

// Mode returns the parsed turnover mode; Validate guarantees it parses
func (c *Config) Mode() engine.Mode {
	m, _ := engine.ParseMode(c.Evolution.Mode)
	return m
}

// WriteYAML writes the configuration to a YAML file
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
