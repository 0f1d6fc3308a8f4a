package engine

import (
	"fmt"
	"strings"
)

// Mode selects how a finished generation is replaced
type Mode uint8

const (
	// ModeSelective evolves the next generation by selection, crossover and mutation
	ModeSelective Mode = iota
	// ModeRandom discards the generation for fresh random candidates
	ModeRandom
)

func (m Mode) String() string {
	switch m {
	case ModeSelective:
		return "selective"
	case ModeRandom:
		return "random"
	default:
		return "unknown"
	}
}

// ParseMode reads a mode name, case-insensitive
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "selective", "":
		return ModeSelective, nil
	case "random":
		return ModeRandom, nil
	default:
		return ModeSelective, fmt.Errorf("engine: unknown mode %q", s)
	}
}
