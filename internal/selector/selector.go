package selector

import (
	"math/rand/v2"

	"mealbot/internal/recipe"
)

// Pick returns min(n, len(subset)) distinct records chosen uniformly at
// random without replacement. The returned order is the shuffle order, not
// the subset order. The input slice is never modified.
func Pick(subset []recipe.Record, n int) []recipe.Record {
	return pick(subset, n, rand.IntN)
}

// pick takes the random source as a parameter so tests can fix it.
func pick(subset []recipe.Record, n int, intN func(int) int) []recipe.Record {
	if n <= 0 || len(subset) == 0 {
		return nil
	}
	if n > len(subset) {
		n = len(subset)
	}

	// Partial Fisher-Yates over a copy: after i swaps the first i elements
	// are a uniform sample without replacement.
	shuffled := make([]recipe.Record, len(subset))
	copy(shuffled, subset)
	for i := 0; i < n; i++ {
		j := i + intN(len(shuffled)-i)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}
	return shuffled[:n:n]
}
