package genetic

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"sort"
)

var (
	// ErrZeroWeights is returned when no entry can ever be drawn
	ErrZeroWeights = errors.New("genetic: all sampler weights are zero")
	// ErrNegativeWeight is returned for weights below zero or NaN
	ErrNegativeWeight = errors.New("genetic: negative sampler weight")
)

// WeightedSampler draws indices with probability proportional to their weight
// Zero-weight entries are never drawn
type WeightedSampler struct {
	cumulative []float64
	total      float64
}

// NewWeightedSampler builds a sampler over weights
func NewWeightedSampler(weights []float64) (*WeightedSampler, error) {
	s := &WeightedSampler{cumulative: make([]float64, len(weights))}

	for i, w := range weights {
		if w < 0 || w != w {
			return nil, fmt.Errorf("%w: index %d = %v", ErrNegativeWeight, i, w)
		}
		s.total += w
		s.cumulative[i] = s.total
	}

	if s.total <= 0 {
		return nil, ErrZeroWeights
	}
	return s, nil
}

// Sample spins the wheel once
func (s *WeightedSampler) Sample(rng *rand.Rand) int {
	spin := rng.Float64() * s.total
	idx := sort.Search(len(s.cumulative), func(i int) bool {
		return s.cumulative[i] > spin
	})
	if idx >= len(s.cumulative) {
		// Float rounding at the top of the wheel
		idx = len(s.cumulative) - 1
		for idx > 0 && s.cumulative[idx] == s.cumulative[idx-1] {
			idx--
		}
	}
	return idx
}

// Len returns the number of entries
func (s *WeightedSampler) Len() int {
	return len(s.cumulative)
}

// Normalize scales scores into [0, scale] by dividing by the maximum score
// Returns all zeros when the maximum is not positive
func Normalize[F Numeric](scores []F, scale float64) []float64 {
	weights := make([]float64, len(scores))

	best := 0.0
	for _, v := range scores {
		if float64(v) > best {
			best = float64(v)
		}
	}
	if best <= 0 {
		return weights
	}

	for i, v := range scores {
		w := float64(v) / best * scale
		if w < 0 {
			w = 0
		}
		weights[i] = w
	}
	return weights
}
