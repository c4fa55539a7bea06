// Package aco - input validation.
//
// Helpers here fail fast, before a colony allocates its pheromone matrix.
// They are deterministic and side-effect free, and return only sentinels
// from types.go (wrapped with coordinates where that helps).
package aco

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/antcolony/matrix"
)

// validateDistances checks shape and value domain of a distance matrix and
// returns its order C.
//
// Contract:
//   - non-nil, square, C ≥ 2;
//   - off-diagonal: not NaN, not negative, not ±Inf;
//   - diagonal: exactly 0 or +Inf (self moves are never candidates, so the
//     value is never read by construction or evaluation).
//
// Complexity: O(C²).
func validateDistances(dist matrix.Matrix) (int, error) {
	// Stage 1: shape.
	if err := matrix.ValidateSquare(dist); err != nil {
		return 0, shapeErr(err)
	}
	n := dist.Rows()
	if n < 2 {
		return 0, ErrTooFewCities
	}

	// Stage 2: values.
	var (
		i, j int
		v    float64
		err  error
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if v, err = dist.At(i, j); err != nil {
				return 0, fmt.Errorf("%w: %v", ErrDimensionMismatch, err)
			}
			if math.IsNaN(v) {
				return 0, fmt.Errorf("%w at (%d,%d)", ErrInvalidDistance, i, j)
			}
			if i == j {
				if v != 0 && !math.IsInf(v, 1) {
					return 0, fmt.Errorf("%w at (%d,%d): %v", ErrBadDiagonal, i, j, v)
				}
				continue
			}
			if v < 0 {
				return 0, fmt.Errorf("%w at (%d,%d): %v", ErrNegativeWeight, i, j, v)
			}
			if math.IsInf(v, 0) {
				return 0, fmt.Errorf("%w at (%d,%d)", ErrIncompleteGraph, i, j)
			}
		}
	}

	return n, nil
}

// shapeErr maps a matrix.ValidateSquare failure to the aco sentinel.
func shapeErr(err error) error {
	switch {
	case errors.Is(err, matrix.ErrNilMatrix):
		return ErrNilMatrix
	case errors.Is(err, matrix.ErrNonSquare):
		return fmt.Errorf("%w: %v", ErrNonSquare, err)
	default:
		return err
	}
}

// validateLabels enforces len(labels)==n and non-empty entries.
// A nil slice means "no labels" and is accepted.
//
// Complexity: O(n).
func validateLabels(labels []string, n int) error {
	if labels == nil {
		return nil
	}
	if len(labels) != n {
		return fmt.Errorf("%w: %d labels for %d cities", ErrLabelMismatch, len(labels), n)
	}
	var i int
	for i = range labels {
		if labels[i] == "" {
			return fmt.Errorf("%w: empty label at %d", ErrLabelMismatch, i)
		}
	}

	return nil
}

// validateStartCity verifies that start ∈ [0, n).
//
// Complexity: O(1).
func validateStartCity(n, start int) error {
	if start < 0 || start >= n {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrStartOutOfRange, start, n)
	}

	return nil
}

// copyDistances materializes dist into a *matrix.Dense with the distance
// policy, so the colony never observes later mutations by the caller.
//
// Complexity: O(C²).
func copyDistances(dist matrix.Matrix, n int) (*matrix.Dense, error) {
	rows := make([][]float64, n)
	var (
		i, j int
		err  error
	)
	for i = 0; i < n; i++ {
		rows[i] = make([]float64, n)
		for j = 0; j < n; j++ {
			if rows[i][j], err = dist.At(i, j); err != nil {
				return nil, fmt.Errorf("%w: %v", ErrDimensionMismatch, err)
			}
		}
	}

	return matrix.FromRows(rows)
}
