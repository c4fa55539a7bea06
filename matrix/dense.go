// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Enforce a numeric policy from a single source of truth:
//     strict (NaN and ±Inf rejected) or distance (±Inf accepted, NaN rejected).
//
// Complexity quicksheet:
//   - NewDense/NewFilled/FromRows: O(r*c); At/Set: O(1); Clone: O(r*c).

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt       = "At"       // method tag used in error wrappers
	ctxSet      = "Set"      // method tag used in error wrappers
	ctxApply    = "Apply"    // method tag used in error wrappers
	ctxFromRows = "FromRows" // ctor tag for FromRows
	ctxFilled   = "Filled"   // ctor tag for NewFilled
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Keeps the sentinel reachable through %w.
//
// Complexity: O(1).
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//   - allowInf relaxes the numeric policy to accept ±Inf; NaN is always rejected.
type Dense struct {
	r, c     int       // row and column counts (>0)
	data     []float64 // contiguous row-major storage (len == r*c)
	allowInf bool      // distance policy: accept ±Inf on writes
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix with the strict numeric policy.
//
// Errors:
//   - ErrInvalidDimensions (rows<=0 or cols<=0).
//
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	// Validate shape.
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	// make() zero-fills the buffer deterministically.
	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// NewFilled creates an r×c strict matrix with every element set to v.
// It is the natural constructor for a uniform pheromone matrix.
//
// Errors:
//   - ErrInvalidDimensions (rows<=0 or cols<=0).
//   - ErrNaNInf (v not finite).
//
// Complexity: O(r*c).
func NewFilled(rows, cols int, v float64) (*Dense, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil, denseErrorf(ctxFilled, rows, cols, ErrNaNInf)
	}
	m, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	var idx int
	for idx = range m.data {
		m.data[idx] = v
	}

	return m, nil
}

// FromRows copies a row-major [][]float64 into a new Dense with the distance
// policy (±Inf accepted, NaN rejected).
//
// Contract:
//   - len(rows) > 0, len(rows[0]) > 0, every row has the same length.
//
// Errors:
//   - ErrInvalidDimensions (empty input).
//   - ErrDimensionMismatch (ragged rows), wrapped with the offending row.
//   - ErrNaNInf (a NaN cell), wrapped with coordinates.
//
// Complexity: O(r*c).
func FromRows(rows [][]float64) (*Dense, error) {
	// Stage 1: shape.
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrInvalidDimensions
	}
	var (
		r = len(rows)
		c = len(rows[0])
		i int
		j int
	)
	for i = 0; i < r; i++ {
		if len(rows[i]) != c {
			return nil, denseErrorf(ctxFromRows, i, len(rows[i]), ErrDimensionMismatch)
		}
	}

	// Stage 2: copy with NaN guard.
	m := &Dense{r: r, c: c, data: make([]float64, r*c), allowInf: true}
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if math.IsNaN(rows[i][j]) {
				return nil, denseErrorf(ctxFromRows, i, j, ErrNaNInf)
			}
			m.data[i*c+j] = rows[i][j]
		}
	}

	return m, nil
}

// Rows returns the number of rows in the matrix.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns in the matrix.
func (m *Dense) Cols() int { return m.c }

// Shape returns (rows, cols).
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// AllowsInf reports whether the matrix uses the distance policy.
func (m *Dense) AllowsInf() bool { return m.allowInf }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
//
// Complexity: O(1).
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// admit checks v against the numeric policy.
func (m *Dense) admit(v float64) bool {
	if math.IsNaN(v) {
		return false
	}
	if math.IsInf(v, 0) {
		return m.allowInf
	}

	return true
}

// At retrieves the element at (row, col).
//
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	idx, err := m.indexOf(ctxAt, row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col) after bounds and policy checks.
//
// Errors: ErrOutOfRange, ErrNaNInf (wrapped with coordinates).
//
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	idx, err := m.indexOf(ctxSet, row, col)
	if err != nil {
		return err
	}
	if !m.admit(v) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[idx] = v

	return nil
}

// AddAt performs m[row,col] += delta under the same checks as Set.
// The element is left unchanged when the sum violates the policy.
//
// Complexity: O(1).
func (m *Dense) AddAt(row, col int, delta float64) error {
	idx, err := m.indexOf(ctxSet, row, col)
	if err != nil {
		return err
	}
	sum := m.data[idx] + delta
	if !m.admit(sum) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[idx] = sum

	return nil
}

// Clone returns a deep copy of the Dense matrix, keeping its numeric policy.
//
// Complexity: O(r*c).
func (m *Dense) Clone() Matrix {
	return m.CloneDense()
}

// CloneDense is Clone with a concrete return type.
func (m *Dense) CloneDense() *Dense {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, data: cp, allowInf: m.allowInf}
}

// RawData returns a copy of the flat row-major buffer.
func (m *Dense) RawData() []float64 {
	return append([]float64(nil), m.data...)
}

// String implements fmt.Stringer for easy debugging.
//
// Complexity: O(r*c).
func (m *Dense) String() string {
	var (
		sb   strings.Builder
		i, j int
	)
	for i = 0; i < m.r; i++ {
		sb.WriteString(_fmtRowOpen)
		for j = 0; j < m.c; j++ {
			sb.WriteString(fmt.Sprintf("%g", m.data[i*m.c+j]))
			if j < m.c-1 {
				sb.WriteString(_fmtSep)
			}
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}

// Apply replaces each element with f(i,j,v) in-place.
//
// Behavior highlights:
//   - Deterministic row-major order.
//   - All-or-nothing: new values are staged and committed only when every one
//     passes the numeric policy.
//
// Errors: ErrNaNInf (wrapped with the first offending coordinates).
//
// Complexity: O(r*c) time, O(r*c) staging space.
func (m *Dense) Apply(f func(i, j int, v float64) float64) error {
	var (
		i, j, base int
		nv         float64
		staged     = make([]float64, len(m.data))
	)
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			nv = f(i, j, m.data[base+j])
			if !m.admit(nv) {
				return denseErrorf(ctxApply, i, j, ErrNaNInf)
			}
			staged[base+j] = nv
		}
	}
	copy(m.data, staged)

	return nil
}
