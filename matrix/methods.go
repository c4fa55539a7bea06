// SPDX-License-Identifier: MIT

// Package matrix - in-place kernels.
//
// ScaleInPlace and AddTransposeInPlace mutate a *Dense without reallocating
// its buffer; they are all-or-nothing with respect to the numeric policy.
package matrix

import "fmt"

const (
	opScaleInPlace        = "ScaleInPlace"
	opAddTransposeInPlace = "AddTransposeInPlace"
)

// matrixErrorf wraps an underlying error with the given tag.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ScaleInPlace multiplies every element of d by alpha.
// This is the evaporation step for pheromone matrices.
//
// Errors: ErrNilMatrix, ErrNaNInf (nothing is written in that case).
// Complexity: O(r·c) time, O(r·c) staging space.
func ScaleInPlace(d *Dense, alpha float64) error {
	if d == nil {
		return matrixErrorf(opScaleInPlace, ErrNilMatrix)
	}
	if err := d.Apply(func(_, _ int, v float64) float64 { return v * alpha }); err != nil {
		return matrixErrorf(opScaleInPlace, err)
	}

	return nil
}

// AddTransposeInPlace performs d ← d + dᵀ on a square matrix.
// The diagonal doubles; every off-diagonal pair (i,j),(j,i) becomes a_ij + a_ji.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrNaNInf (nothing is written in that case).
// Complexity: O(n²) time, O(n²) staging space.
func AddTransposeInPlace(d *Dense) error {
	if d == nil {
		return matrixErrorf(opAddTransposeInPlace, ErrNilMatrix)
	}
	if d.r != d.c {
		return matrixErrorf(opAddTransposeInPlace, ErrNonSquare)
	}
	// Snapshot first: the callback reads the transpose of the original values.
	snap := append([]float64(nil), d.data...)
	n := d.r
	if err := d.Apply(func(i, j int, v float64) float64 { return v + snap[j*n+i] }); err != nil {
		return matrixErrorf(opAddTransposeInPlace, err)
	}

	return nil
}
