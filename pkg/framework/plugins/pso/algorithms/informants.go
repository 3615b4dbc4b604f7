package algorithms

import (
	"golang.org/x/exp/rand"
)

// sampleInformants returns k distinct indices in [0, n) excluding self.
// When k covers every other particle they are returned in swarm order.
func sampleInformants(rng *rand.Rand, n, self, k int) []int {
	if k <= 0 || n <= 1 {
		return nil
	}
	if k >= n-1 {
		others := make([]int, 0, n-1)
		for i := 0; i < n; i++ {
			if i != self {
				others = append(others, i)
			}
		}
		return others
	}

	// Partial Fisher-Yates over [0, n-1), shifting draws at or above self by one.
	pool := make([]int, n-1)
	for i := range pool {
		pool[i] = i
	}
	for i := 0; i < k; i++ {
		j := i + rng.Intn(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	chosen := pool[:k]
	for i, idx := range chosen {
		if idx >= self {
			chosen[i] = idx + 1
		}
	}
	return chosen
}

// fittest returns the index of the entry with the lowest personal best
// value among the given indices, preferring the lowest index on ties.
// Returns -1 for an empty selection.
func fittest(bestValues []float64, indices []int) int {
	best := -1
	for _, idx := range indices {
		if best < 0 || bestValues[idx] < bestValues[best] ||
			(bestValues[idx] == bestValues[best] && idx < best) {
			best = idx
		}
	}
	return best
}
