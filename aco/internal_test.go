package aco

import (
	"math"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/antcolony/matrix"
)

func TestRNGFromSeed_ZeroMapsToDefault(t *testing.T) {
	require.Equal(t, rngFromSeed(0).Uint64(), rngFromSeed(int64(defaultRNGSeed)).Uint64())
	require.NotEqual(t, rngFromSeed(1).Uint64(), rngFromSeed(2).Uint64())
}

func TestDeriveRNG_StreamsDiffer(t *testing.T) {
	base := rngFromSeed(5)
	a := deriveRNG(base, 0)
	b := deriveRNG(base, 0)
	require.NotEqual(t, a.Uint64(), b.Uint64())

	// Same parent state and stream: same child.
	x := deriveRNG(rngFromSeed(5), 3)
	y := deriveRNG(rngFromSeed(5), 3)
	require.Equal(t, x.Uint64(), y.Uint64())
	require.Equal(t, deriveSeed(1, 2), deriveSeed(1, 2))
	require.NotEqual(t, deriveSeed(1, 2), deriveSeed(1, 3))
}

func TestHeuristicMatrix(t *testing.T) {
	dist, err := matrix.FromRows([][]float64{
		{0, 2, 0},
		{4, 0, 1},
		{0, 1, 0},
	})
	require.NoError(t, err)

	eta, err := heuristicMatrix(dist, 2)
	require.NoError(t, err)
	v, _ := eta.At(0, 1)
	require.InDelta(t, 0.25, v, 1e-15)
	v, _ = eta.At(1, 0)
	require.InDelta(t, 1.0/16, v, 1e-15)
	v, _ = eta.At(0, 2)
	require.Equal(t, 0.0, v) // zero distance
	v, _ = eta.At(1, 1)
	require.Equal(t, 0.0, v) // diagonal
}

func ones(t *testing.T, n int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFilled(n, n, 1)
	require.NoError(t, err)
	return m
}

func TestConstructor_ZeroPheromoneNeverChosen(t *testing.T) {
	pher := ones(t, 3)
	require.NoError(t, pher.Set(0, 1, 0))
	c := newConstructor(3, 1, ones(t, 3), pher, true, 0)

	rng := rngFromSeed(9)
	var i int
	for i = 0; i < 50; i++ {
		tour, err := c.build(rng)
		require.NoError(t, err)
		require.Equal(t, []int{0, 2, 1, 0}, tour.Cities)
	}
}

func TestConstructor_OpenToursCoverEveryStart(t *testing.T) {
	c := newConstructor(4, 1, ones(t, 4), ones(t, 4), false, 0)
	rng := rngFromSeed(3)
	starts := map[int]bool{}
	var i int
	for i = 0; i < 200; i++ {
		tour, err := c.build(rng)
		require.NoError(t, err)
		require.NoError(t, ValidatePermutation(tour.Cities, 4))
		starts[tour.Cities[0]] = true
	}
	require.Len(t, starts, 4)
}

func TestConstructor_Degenerate(t *testing.T) {
	zero, err := matrix.NewDense(3, 3)
	require.NoError(t, err)
	c := newConstructor(3, 1, ones(t, 3), zero, true, 0)
	_, err = c.build(rngFromSeed(1))
	require.ErrorIs(t, err, ErrDegenerateProbability)

	// α=0 ignores pheromone entirely, so the same matrix is usable.
	c = newConstructor(3, 0, ones(t, 3), zero, true, 0)
	_, err = c.build(rngFromSeed(1))
	require.NoError(t, err)
}

func TestIterationStats(t *testing.T) {
	s := iterationStats(VariantNBest, 4, []Ant{{Cost: 3}, {Cost: 1}, {Cost: 2}}, 0.5)
	require.Equal(t, 4, s.Iteration)
	require.Equal(t, 0.5, s.BestCost)
	require.Equal(t, 1.0, s.IterationBest)
	require.InDelta(t, 2.0, s.Mean, 1e-15)
	require.InDelta(t, 1.0, s.StdDev, 1e-15)
	require.Equal(t, 3, s.Ants)
	require.Equal(t, VariantNBest, s.Variant)

	one := iterationStats(VariantBestSoFar, 0, []Ant{{Cost: 7}}, 7)
	require.Equal(t, 0.0, one.StdDev)

	empty := iterationStats(VariantBestSoFar, 0, nil, math.Inf(1))
	require.True(t, math.IsInf(empty.IterationBest, 1))
	require.True(t, math.IsNaN(empty.Mean))
}

func TestWorkerPool(t *testing.T) {
	const jobs = 100
	wp := newWorkerPool[int, int](4, jobs)
	wp.Start(func(_ int, job int) int { return job * job })
	var i int
	for i = 0; i < jobs; i++ {
		wp.AddJob(i)
	}
	wp.Close()
	wp.Wait()

	got := make([]int, 0, jobs)
	for r := range wp.CollectResults() {
		got = append(got, r)
	}
	sort.Ints(got)
	require.Len(t, got, jobs)
	require.Equal(t, 99*99, got[jobs-1])
}
