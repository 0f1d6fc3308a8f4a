package genetic

// Package genetic provides the generic operators of a generational genetic algorithm
// 1. Has zero knowledge of maze or game types
// 2. Works on slice-encoded solutions through type parameters
// 3. Takes an injected random source in every operation that draws

import (
	"math/rand/v2"
)

// --- Concrete Operator Implementations ---

var (
	_ Combiner[[]uint8]    = SinglePointCombiner[[]uint8, uint8]{}
	_ Perturbator[[]uint8] = (*RandomResetPerturbator[[]uint8, uint8])(nil)
	_ Selector             = (*WeightedSampler)(nil)
)

// SinglePointCombiner performs single-point crossover
// The child takes [0,k) from parent A and [k,len) from parent B
type SinglePointCombiner[S ~[]T, T any] struct{}

// Combine draws a split in [0, len) and builds the child
func (SinglePointCombiner[S, T]) Combine(a, b S, rng *rand.Rand) S {
	length := min(len(a), len(b))
	if length == 0 {
		return make(S, 0)
	}
	return SplitAt(a, b, rng.IntN(length))
}

// SplitAt builds the crossover child for a fixed split index
// k is clamped into [0, len]
func SplitAt[S ~[]T, T any](a, b S, k int) S {
	length := min(len(a), len(b))
	k = max(0, min(k, length))

	child := make(S, length)
	copy(child[:k], a[:k])
	copy(child[k:], b[k:length])
	return child
}

// RandomResetPerturbator replaces each locus with a fresh allele with probability rate
type RandomResetPerturbator[S ~[]T, T any] struct {
	Allele AlleleFunc[T]
}

// Perturb mutates the solution in place
func (rp *RandomResetPerturbator[S, T]) Perturb(solution *S, rate float64, rng *rand.Rand) {
	if solution == nil || rate <= 0 {
		return
	}
	for i := range *solution {
		if rng.Float64() < rate {
			(*solution)[i] = rp.Allele(rng)
		}
	}
}

// RandomSolution fills a new solution of the given length with random alleles
func RandomSolution[S ~[]T, T any](length int, allele AlleleFunc[T], rng *rand.Rand) S {
	s := make(S, length)
	for i := range s {
		s[i] = allele(rng)
	}
	return s
}
