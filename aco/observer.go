package aco

import (
	"fmt"
	"io"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// IterationStats summarizes one iteration for observers.
type IterationStats struct {
	Variant       Variant // reinforcement policy of the colony
	Iteration     int     // 0-based iteration index
	BestCost      float64 // best-known cost after this iteration
	IterationBest float64 // cheapest ant of this iteration (+Inf without ants)
	Mean          float64 // mean ant cost (NaN without ants)
	StdDev        float64 // sample standard deviation (0 with fewer than two ants)
	Ants          int     // number of ants evaluated
}

// Observer receives progress reports. Observers must not retain the colony
// and have no effect on solver state.
type Observer interface {
	OnIteration(s IterationStats)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(s IterationStats)

// OnIteration implements Observer.
func (f ObserverFunc) OnIteration(s IterationStats) { f(s) }

// NewWriterObserver prints "Iteration <i>: <cost>" lines to w. The cost is
// the best-known cost for VariantBestSoFar and the iteration's shortest tour
// for VariantNBest, matching what each policy reinforces.
func NewWriterObserver(w io.Writer) Observer {
	return ObserverFunc(func(s IterationStats) {
		cost := s.BestCost
		if s.Variant == VariantNBest {
			cost = s.IterationBest
		}
		fmt.Fprintf(w, "Iteration %d: %v\n", s.Iteration, cost)
	})
}

// iterationStats computes the summary for a finished iteration.
//
// Complexity: O(len(ants)).
func iterationStats(v Variant, index int, ants []Ant, bestCost float64) IterationStats {
	s := IterationStats{
		Variant:       v,
		Iteration:     index,
		BestCost:      bestCost,
		IterationBest: math.Inf(1),
		Mean:          math.NaN(),
		Ants:          len(ants),
	}
	if len(ants) == 0 {
		return s
	}

	costs := make([]float64, len(ants))
	var i int
	for i = range ants {
		costs[i] = ants[i].Cost
	}
	s.IterationBest = floats.Min(costs)
	s.Mean = stat.Mean(costs, nil)
	if len(costs) > 1 {
		s.StdDev = stat.StdDev(costs, nil)
	}

	return s
}
