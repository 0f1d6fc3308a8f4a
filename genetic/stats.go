package genetic

import (
	"cmp"
	"slices"
)

// ComputeStats summarizes the scores of a pool
func ComputeStats[F Numeric](scores []F) PoolStats[F] {
	stats := PoolStats[F]{Size: len(scores)}
	if len(scores) == 0 {
		return stats
	}

	stats.BestScore = scores[0]
	stats.WorstScore = scores[0]
	sum := 0.0
	for _, v := range scores {
		stats.BestScore = max(stats.BestScore, v)
		stats.WorstScore = min(stats.WorstScore, v)
		sum += float64(v)
	}
	stats.AverageScore = sum / float64(len(scores))
	return stats
}

// Diversity measures allele spread across a pool
// For every locus, 1 - (share of the most common allele), rescaled so that a
// uniform spread over alleles distinct values reads 1; averaged over loci
func Diversity[S ~[]T, T comparable](pool []S, alleles int) float64 {
	if len(pool) < 2 || alleles < 2 {
		return 0
	}

	length := len(pool[0])
	for _, s := range pool[1:] {
		length = min(length, len(s))
	}
	if length == 0 {
		return 0
	}

	ceiling := 1 - 1/float64(alleles)
	counts := make(map[T]int, alleles)
	total := 0.0

	for locus := 0; locus < length; locus++ {
		clear(counts)
		top := 0
		for _, s := range pool {
			counts[s[locus]]++
			top = max(top, counts[s[locus]])
		}
		spread := 1 - float64(top)/float64(len(pool))
		total += min(spread/ceiling, 1)
	}
	return total / float64(length)
}

// RankDescending returns indices ordered by descending score
// Ties keep their original relative order
func RankDescending[F Numeric](scores []F) []int {
	order := make([]int, len(scores))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		return cmp.Compare(scores[b], scores[a])
	})
	return order
}
