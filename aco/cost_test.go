package aco_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/antcolony/aco"
)

func TestTourCost_OpenPath(t *testing.T) {
	cost, err := aco.TourCost(triangle(t), aco.Tour{Cities: []int{0, 1, 2}})
	require.NoError(t, err)
	require.Equal(t, 8.0, cost)
}

func TestTourCost_ClosedTour(t *testing.T) {
	cost, err := aco.TourCost(triangle(t), aco.Tour{Cities: []int{0, 1, 2, 0}, Closed: true})
	require.NoError(t, err)
	require.Equal(t, 17.0, cost)
}

func TestTourCost_NoRounding(t *testing.T) {
	cost, err := aco.TourCost(unitSquare(t), aco.Tour{Cities: []int{0, 2}})
	require.NoError(t, err)
	require.Equal(t, math.Sqrt2, cost)
}

func TestTourCost_Errors(t *testing.T) {
	_, err := aco.TourCost(nil, aco.Tour{Cities: []int{0, 1}})
	require.ErrorIs(t, err, aco.ErrNilMatrix)

	_, err = aco.TourCost(triangle(t), aco.Tour{Cities: []int{0}})
	require.ErrorIs(t, err, aco.ErrDimensionMismatch)

	_, err = aco.TourCost(triangle(t), aco.Tour{Cities: []int{0, 3}})
	require.ErrorIs(t, err, aco.ErrDimensionMismatch)

	inf := denseFrom(t, [][]float64{{0, math.Inf(1)}, {1, 0}})
	_, err = aco.TourCost(inf, aco.Tour{Cities: []int{0, 1}})
	require.ErrorIs(t, err, aco.ErrIncompleteGraph)

	neg := denseFrom(t, [][]float64{{0, -1}, {1, 0}})
	_, err = aco.TourCost(neg, aco.Tour{Cities: []int{0, 1}})
	require.ErrorIs(t, err, aco.ErrNegativeWeight)

	nan := rawMatrix{a: [][]float64{{0, math.NaN()}, {1, 0}}}
	_, err = aco.TourCost(nan, aco.Tour{Cities: []int{0, 1}})
	require.ErrorIs(t, err, aco.ErrInvalidDistance)

	rect := rawMatrix{a: [][]float64{{0, 1, 2}, {1, 0, 2}}}
	_, err = aco.TourCost(rect, aco.Tour{Cities: []int{0, 1}})
	require.ErrorIs(t, err, aco.ErrNonSquare)
}
