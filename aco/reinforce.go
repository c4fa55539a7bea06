// Package aco - reinforcement policies.
//
// A Reinforcer mutates the pheromone matrix once per iteration, after every
// ant of that iteration has been constructed and evaluated. The two policies
// differ in which tours deposit, how much, and whether the matrix is
// symmetrized; see BestSoFarReinforcer and NBestReinforcer.
package aco

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/antcolony/matrix"
)

// Iteration is the input of a Reinforcer.
type Iteration struct {
	// Index is the 0-based iteration number.
	Index int

	// Ants holds this iteration's tours in ant order.
	Ants []Ant

	// Best and BestCost are the best-known solution after this iteration.
	// Best is empty and BestCost is +Inf until an ant has run.
	Best     Tour
	BestCost float64

	// Distances is the colony's distance matrix.
	Distances matrix.Matrix
}

// Reinforcer evaporates and deposits pheromone for one iteration.
type Reinforcer interface {
	Apply(pher *matrix.Dense, it Iteration) error
}

// BestSoFarReinforcer reinforces the best tour of the whole run.
//
//  1. Evaporate: τ ← τ·Decay.
//  2. Deposit, once per ant of the iteration: τ[i][i+1] += Q/BestCost for
//     i in [0, C−2]. The indices are tour positions, not the cities at those
//     positions (replicates reference update rule).
//  3. Symmetrize: τ ← τ + τᵀ. Magnitudes compound from one iteration to the
//     next unless evaporation dominates.
//
// The deposit is skipped when Q/BestCost is not a positive finite number:
// before any ant has run (BestCost=+Inf) or for a zero-cost best tour.
type BestSoFarReinforcer struct {
	Decay float64
	Q     float64
}

// Apply implements Reinforcer.
func (r BestSoFarReinforcer) Apply(pher *matrix.Dense, it Iteration) error {
	if err := checkPheromones(pher); err != nil {
		return err
	}
	if err := matrix.ScaleInPlace(pher, r.Decay); err != nil {
		return pheromoneErr("evaporate", err)
	}

	inc := r.Q / it.BestCost
	if len(it.Ants) > 0 && len(it.Best.Cities) > 0 && inc > 0 && !math.IsInf(inc, 0) {
		var (
			n   = pher.Rows()
			ant int
			i   int
		)
		for ant = 0; ant < len(it.Ants); ant++ {
			for i = 0; i < n-1; i++ {
				if err := pher.AddAt(i, i+1, inc); err != nil {
					return pheromoneErr("deposit", err)
				}
			}
		}
	}

	if err := matrix.AddTransposeInPlace(pher); err != nil {
		return pheromoneErr("symmetrize", err)
	}

	return nil
}

// NBestReinforcer reinforces the cheapest tours of the current iteration.
//
//  1. Rank ants by cost, ascending and stable (ties keep ant order).
//  2. Each of the first N tours deposits 1/d[from][to] on every edge it uses.
//     Edges of zero length deposit nothing.
//  3. Evaporate once: τ ← τ·Decay.
//
// The matrix is not symmetrized.
type NBestReinforcer struct {
	Decay float64
	N     int
}

// Apply implements Reinforcer.
func (r NBestReinforcer) Apply(pher *matrix.Dense, it Iteration) error {
	if err := checkPheromones(pher); err != nil {
		return err
	}
	if err := matrix.ValidateSquare(it.Distances); err != nil {
		return fmt.Errorf("distances: %w", shapeErr(err))
	}
	if it.Distances.Rows() != pher.Rows() {
		return fmt.Errorf("%w: %d cities, pheromone %dx%d",
			ErrDimensionMismatch, it.Distances.Rows(), pher.Rows(), pher.Cols())
	}

	ranked := slices.Clone(it.Ants)
	slices.SortStableFunc(ranked, func(a, b Ant) int { return cmp.Compare(a.Cost, b.Cost) })
	if len(ranked) > r.N {
		ranked = ranked[:r.N]
	}

	var (
		a   Ant
		e   Edge
		d   float64
		inc float64
		err error
	)
	for _, a = range ranked {
		for _, e = range a.Tour.Edges() {
			if d, err = edgeCost(it.Distances, e.From, e.To); err != nil {
				return err
			}
			inc = 1.0 / d
			if math.IsInf(inc, 0) {
				continue
			}
			if err = pher.AddAt(e.From, e.To, inc); err != nil {
				return pheromoneErr("deposit", err)
			}
		}
	}

	if err = matrix.ScaleInPlace(pher, r.Decay); err != nil {
		return pheromoneErr("evaporate", err)
	}

	return nil
}

// newReinforcer selects the policy for opts.Variant.
func newReinforcer(opts Options) (Reinforcer, error) {
	switch opts.Variant {
	case VariantBestSoFar:
		return BestSoFarReinforcer{Decay: opts.Decay, Q: opts.Q}, nil
	case VariantNBest:
		return NBestReinforcer{Decay: opts.Decay, N: opts.NBest}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedVariant, opts.Variant)
	}
}

// checkPheromones rejects a nil or non-square pheromone matrix.
func checkPheromones(pher *matrix.Dense) error {
	if err := matrix.ValidateSquare(pher); err != nil {
		return fmt.Errorf("pheromones: %w", shapeErr(err))
	}

	return nil
}

// pheromoneErr tags a matrix policy failure with ErrNonFinitePheromone while
// keeping the matrix sentinel reachable.
func pheromoneErr(stage string, err error) error {
	return fmt.Errorf("%s: %w: %w", stage, ErrNonFinitePheromone, err)
}
