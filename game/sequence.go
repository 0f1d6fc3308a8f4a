package game

import (
	"math/rand/v2"

	"github.com/lixenwraith/escape/core"
	"github.com/lixenwraith/escape/genetic"
)

// Sequence is a candidate's genome: one direction per frame
type Sequence []core.Direction

// RandomDirection draws a uniform direction
func RandomDirection(rng *rand.Rand) core.Direction {
	return core.Direction(rng.IntN(core.DirectionCount))
}

// RandomSequence returns a uniform random sequence of length n
func RandomSequence(n int, rng *rand.Rand) Sequence {
	return genetic.RandomSolution[Sequence](n, RandomDirection, rng)
}

// At returns the direction for frame, Up when frame is outside the sequence
func (s Sequence) At(frame int) core.Direction {
	if frame < 0 || frame >= len(s) {
		return core.Up
	}
	return s[frame]
}

// Encode writes the sequence in the wire encoding, one byte per frame
func (s Sequence) Encode() []byte {
	out := make([]byte, len(s))
	for i, d := range s {
		out[i] = byte(d)
	}
	return out
}

// DecodeSequence reads the wire encoding
func DecodeSequence(b []byte) Sequence {
	s := make(Sequence, len(b))
	for i, v := range b {
		s[i] = core.ParseDirection(v)
	}
	return s
}

// String renders the sequence as U/L/D/R letters
func (s Sequence) String() string {
	out := make([]byte, len(s))
	for i, d := range s {
		out[i] = "ULDR"[d&3]
	}
	return string(out)
}
