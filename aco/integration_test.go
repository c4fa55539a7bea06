package aco_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/antcolony/aco"
	"github.com/katalvlaran/antcolony/matrix"
)

// convergenceOpts mirrors the classic four-city sanity run.
func convergenceOpts(v aco.Variant) aco.Options {
	opts := aco.DefaultOptions(v)
	opts.Seed = seedDet
	opts.NumAnts = 20
	opts.Iterations = 200
	opts.Decay = 0.9
	opts.Alpha = 1
	opts.Beta = 2
	opts.ReportEvery = 0
	return opts
}

func TestIntegration_FourCitiesBestSoFar(t *testing.T) {
	const optimum = 3.0 // open path along three unit sides
	_, res := mustRun(t, unitSquare(t), convergenceOpts(aco.VariantBestSoFar))
	require.LessOrEqual(t, res.Cost, 1.15*optimum)
	require.NoError(t, aco.ValidateTour(res.Tour, 4, 0))
}

func TestIntegration_FourCitiesNBest(t *testing.T) {
	const optimum = 4.0 // perimeter
	_, res := mustRun(t, unitSquare(t), convergenceOpts(aco.VariantNBest))
	require.LessOrEqual(t, res.Cost, 1.15*optimum)
	require.NoError(t, aco.ValidateTour(res.Tour, 4, 0))
}

func TestIntegration_NBestAgainstBruteForce(t *testing.T) {
	const n = 7
	dist := randomPoints(t, n, 21)
	optimum := bruteForceClosed(t, dist, n)

	_, res := mustRun(t, dist, convergenceOpts(aco.VariantNBest))
	require.LessOrEqual(t, res.Cost, 1.15*optimum)
	require.GreaterOrEqual(t, res.Cost, optimum-1e-9)
}

// bruteForceClosed enumerates every closed tour starting at city 0.
func bruteForceClosed(t *testing.T, dist matrix.Matrix, n int) float64 {
	t.Helper()
	var (
		best = math.Inf(1)
		used = make([]bool, n)
		walk func(cur, depth int, acc float64)
	)
	used[0] = true
	walk = func(cur, depth int, acc float64) {
		if acc >= best {
			return
		}
		if depth == n {
			if total := acc + at(t, dist, cur, 0); total < best {
				best = total
			}
			return
		}
		var v int
		for v = 0; v < n; v++ {
			if used[v] {
				continue
			}
			used[v] = true
			walk(v, depth+1, acc+at(t, dist, cur, v))
			used[v] = false
		}
	}
	walk(0, 1, 0)

	return best
}
