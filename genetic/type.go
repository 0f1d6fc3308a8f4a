package genetic

import (
	"math/rand/v2"
)

// --- Core Type Constraints ---

// Numeric constrains types to numeric values for fitness scores
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// --- Core Data Structures ---

// PoolStats contains statistical information about a scored pool
type PoolStats[F Numeric] struct {
	Size         int
	BestScore    F
	WorstScore   F
	AverageScore float64
	Diversity    float64 // Mean per-locus allele spread (0-1)
}

// --- Core Operators as Interfaces ---

// Selector picks a parent index for reproduction
type Selector interface {
	Sample(rng *rand.Rand) int
}

// Combiner defines the recombination operator for creating new solutions
type Combiner[S any] interface {
	// Combine creates one offspring from two parents
	Combine(a, b S, rng *rand.Rand) S
}

// Perturbator defines the mutation operator for introducing variation
type Perturbator[S any] interface {
	// Perturb modifies a solution in-place
	// The rate parameter is the per-locus probability of change (0-1)
	Perturb(solution *S, rate float64, rng *rand.Rand)
}

// AlleleFunc draws one random gene value
type AlleleFunc[T any] func(rng *rand.Rand) T

// NewRand returns a PCG-backed source; seed 0 draws a random seed
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(seed, seed))
}
