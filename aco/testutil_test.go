// Package aco_test holds helpers shared by the colony tests: small fixed
// instances, a seeded random instance builder and a NaN-carrying matrix that
// matrix.FromRows would refuse to build.
package aco_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"github.com/katalvlaran/antcolony/aco"
	"github.com/katalvlaran/antcolony/matrix"
)

const (
	// seedDet is the seed used by every determinism check.
	seedDet = int64(42)

	// epsTiny is the tolerance for exact-arithmetic comparisons.
	epsTiny = 1e-12
)

// denseFrom builds a distance matrix or fails the test.
func denseFrom(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.FromRows(rows)
	require.NoError(t, err)

	return m
}

// triangle is the 3-city instance with d(0,1)=2, d(1,2)=6, d(0,2)=9.
func triangle(t testing.TB) *matrix.Dense {
	return denseFrom(t, [][]float64{
		{0, 2, 9},
		{2, 0, 6},
		{9, 6, 0},
	})
}

// unitSquare is the 4-city unit square; the optimal open path costs 3 and the
// optimal closed tour costs 4.
func unitSquare(t testing.TB) *matrix.Dense {
	d := math.Sqrt2
	return denseFrom(t, [][]float64{
		{0, 1, d, 1},
		{1, 0, 1, d},
		{d, 1, 0, 1},
		{1, d, 1, 0},
	})
}

// randomPoints returns the Euclidean distance matrix of n seeded points in
// the unit square.
func randomPoints(t testing.TB, n int, seed uint64) *matrix.Dense {
	t.Helper()
	var (
		r    = rand.New(rand.NewSource(seed))
		xs   = make([]float64, n)
		ys   = make([]float64, n)
		rows = make([][]float64, n)
		i, j int
	)
	for i = 0; i < n; i++ {
		xs[i], ys[i] = r.Float64(), r.Float64()
	}
	for i = 0; i < n; i++ {
		rows[i] = make([]float64, n)
		for j = 0; j < n; j++ {
			if i != j {
				rows[i][j] = math.Hypot(xs[i]-xs[j], ys[i]-ys[j])
			}
		}
	}

	return denseFrom(t, rows)
}

// mustRun builds a colony and runs it to completion.
func mustRun(t testing.TB, dist matrix.Matrix, opts aco.Options) (*aco.Colony, aco.Result) {
	t.Helper()
	c, err := aco.New(dist, nil, opts)
	require.NoError(t, err)
	res, err := c.Run(context.Background())
	require.NoError(t, err)

	return c, res
}

// rawMatrix is a bare matrix.Matrix without any numeric policy.
type rawMatrix struct{ a [][]float64 }

var _ matrix.Matrix = rawMatrix{}

func (m rawMatrix) Rows() int { return len(m.a) }
func (m rawMatrix) Cols() int {
	if len(m.a) == 0 {
		return 0
	}
	return len(m.a[0])
}
func (m rawMatrix) At(i, j int) (float64, error) {
	if i < 0 || i >= m.Rows() || j < 0 || j >= m.Cols() {
		return 0, matrix.ErrOutOfRange
	}
	return m.a[i][j], nil
}
func (m rawMatrix) Set(i, j int, v float64) error {
	if i < 0 || i >= m.Rows() || j < 0 || j >= m.Cols() {
		return matrix.ErrOutOfRange
	}
	m.a[i][j] = v
	return nil
}
func (m rawMatrix) Clone() matrix.Matrix {
	cp := make([][]float64, len(m.a))
	var i int
	for i = range m.a {
		cp[i] = append([]float64(nil), m.a[i]...)
	}
	return rawMatrix{a: cp}
}

// requireSymmetric fails unless m equals its transpose exactly.
func requireSymmetric(t testing.TB, m *matrix.Dense) {
	t.Helper()
	require.NoError(t, matrix.ValidateSymmetric(m, 0))
}

// at reads one entry or fails the test.
func at(t testing.TB, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}
