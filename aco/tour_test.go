package aco_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/antcolony/aco"
)

func TestTour_EdgesAndLen(t *testing.T) {
	open := aco.Tour{Cities: []int{2, 0, 1}}
	require.Equal(t, 3, open.Len())
	require.Equal(t, []aco.Edge{{From: 2, To: 0}, {From: 0, To: 1}}, open.Edges())

	closed := aco.Tour{Cities: []int{0, 2, 1, 0}, Closed: true}
	require.Equal(t, 3, closed.Len())
	require.Len(t, closed.Edges(), 3)
	require.Equal(t, aco.Edge{From: 1, To: 0}, closed.Edges()[2])

	require.Nil(t, aco.Tour{Cities: []int{0}}.Edges())
}

func TestTour_CloneIsIndependent(t *testing.T) {
	src := aco.Tour{Cities: []int{0, 1, 2}}
	cp := src.Clone()
	cp.Cities[0] = 9
	require.Equal(t, 0, src.Cities[0])
}

func TestTour_Format(t *testing.T) {
	tour := aco.Tour{Cities: []int{0, 2, 1}}
	require.Equal(t, "0 -> 2 -> 1", tour.String())
	require.Equal(t, "A -> C -> B", tour.Format([]string{"A", "B", "C"}))
	// Short label slices fall back to indices.
	require.Equal(t, "A -> 2 -> B", tour.Format([]string{"A", "B"}))
}

func TestValidatePermutation(t *testing.T) {
	require.NoError(t, aco.ValidatePermutation([]int{2, 0, 1}, 3))
	require.ErrorIs(t, aco.ValidatePermutation([]int{0, 0, 1}, 3), aco.ErrDimensionMismatch)
	require.ErrorIs(t, aco.ValidatePermutation([]int{0, 1, 3}, 3), aco.ErrDimensionMismatch)
	require.ErrorIs(t, aco.ValidatePermutation([]int{0, 1}, 3), aco.ErrDimensionMismatch)
}

func TestValidateTour(t *testing.T) {
	require.NoError(t, aco.ValidateTour(aco.Tour{Cities: []int{1, 0, 2}}, 3, 0))
	require.NoError(t, aco.ValidateTour(aco.Tour{Cities: []int{1, 0, 2, 1}, Closed: true}, 3, 1))

	// Closed tours must return to the start.
	require.ErrorIs(t,
		aco.ValidateTour(aco.Tour{Cities: []int{1, 0, 2, 0}, Closed: true}, 3, 1),
		aco.ErrDimensionMismatch)
	require.ErrorIs(t,
		aco.ValidateTour(aco.Tour{Cities: []int{1, 0, 2}, Closed: true}, 3, 1),
		aco.ErrDimensionMismatch)
	require.ErrorIs(t,
		aco.ValidateTour(aco.Tour{Cities: []int{0, 1, 2, 0}, Closed: true}, 3, 5),
		aco.ErrStartOutOfRange)
}
