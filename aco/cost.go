// Package aco - path evaluation.
//
// TourCost is a pure function of a tour and a distance matrix: the sum of
// distance[u][v] over the tour's edges. It re-checks every edge even when
// the matrix was validated upfront, so it is safe on caller-built tours.
package aco

import (
	"fmt"
	"math"

	"github.com/katalvlaran/antcolony/matrix"
)

// TourCost returns the sum of distances along t.Edges().
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare for a bad matrix;
//   - ErrDimensionMismatch for fewer than two cities or an index out of range;
//   - ErrIncompleteGraph for an infinite edge, ErrNegativeWeight, ErrInvalidDistance (NaN).
//
// Complexity: O(len(t.Cities)).
func TourCost(dist matrix.Matrix, t Tour) (float64, error) {
	if err := matrix.ValidateSquare(dist); err != nil {
		return 0, shapeErr(err)
	}
	if len(t.Cities) < 2 {
		return 0, ErrDimensionMismatch
	}

	var (
		sum float64
		w   float64
		err error
		i   int
	)
	for i = 0; i+1 < len(t.Cities); i++ {
		if w, err = edgeCost(dist, t.Cities[i], t.Cities[i+1]); err != nil {
			return 0, err
		}
		sum += w
	}

	return sum, nil
}

// edgeCost fetches the weight for a single directed edge u→v with strict validation.
//
// Complexity: O(1).
func edgeCost(m matrix.Matrix, u, v int) (float64, error) {
	n := m.Rows()
	if u < 0 || u >= n || v < 0 || v >= n {
		return 0, fmt.Errorf("%w: edge (%d,%d) outside [0,%d)", ErrDimensionMismatch, u, v, n)
	}
	w, err := m.At(u, v)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrDimensionMismatch, err)
	}
	switch {
	case math.IsNaN(w):
		return 0, fmt.Errorf("%w at (%d,%d)", ErrInvalidDistance, u, v)
	case math.IsInf(w, 0):
		return 0, fmt.Errorf("%w at (%d,%d)", ErrIncompleteGraph, u, v)
	case w < 0:
		return 0, fmt.Errorf("%w at (%d,%d)", ErrNegativeWeight, u, v)
	}

	return w, nil
}
