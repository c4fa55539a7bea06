// SPDX-License-Identifier: MIT

// Package matrix provides the dense numeric storage used by the ant colony engine.
//
// The package offers:
//
//   - Matrix, a minimal interface over a two-dimensional float64 array with
//     bounds-checked At/Set and deep Clone.
//   - Dense, a row-major implementation with an explicit numeric policy:
//     strict matrices reject NaN and ±Inf on every write, distance matrices
//     accept ±Inf (used as a "no self move" diagonal sentinel) but never NaN.
//   - In-place kernels (ScaleInPlace, AddTransposeInPlace) that mutate a
//     pheromone matrix without reallocating it.
//   - Centralized validators returning sentinel errors from errors.go.
//
// All loops run in fixed row-major order, so results are deterministic.
package matrix
