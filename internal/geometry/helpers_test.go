package geometry

import "math/rand"

// testRnd returns a throwaway RNG for Hit calls in tests that exercise
// purely analytic (non-stochastic) primitives.
func testRnd() *rand.Rand {
	return rand.New(rand.NewSource(1))
}
