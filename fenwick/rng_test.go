package fenwick

import (
	rng "github.com/leesper/go_rng"
	"gonum.org/v1/gonum/floats"
)

// testRNG is the subset of a uniform generator the randomized tests use.
type testRNG interface {
	Int64Range(a, b int64) int64
	Int64n(n int64) int64
}

func newTestRNG(seed int64) testRNG {
	return rng.NewUniformGenerator(seed)
}

// randomValues returns n values in [-1000, 1000).
func randomValues(r testRNG, n int) []int64 {
	vs := make([]int64, n)
	for i := range vs {
		vs[i] = r.Int64Range(-1000, 1000)
	}
	return vs
}

// cumSum returns the inclusive prefix sums of vs. The test values are
// small enough for float64 sums to be exact.
func cumSum(vs []int64) []int64 {
	fs := make([]float64, len(vs))
	for i, v := range vs {
		fs[i] = float64(v)
	}
	floats.CumSum(fs, fs)
	out := make([]int64, len(vs))
	for i, f := range fs {
		out[i] = int64(f)
	}
	return out
}
