package aco

import (
	"errors"
	"fmt"
)

// Input-shape errors, returned by New before any iteration runs.
var (
	// ErrNilMatrix is returned when the distance (or pheromone) matrix is nil.
	ErrNilMatrix = errors.New("aco: nil matrix")

	// ErrNonSquare is returned when the distance matrix is not C×C.
	ErrNonSquare = errors.New("aco: distance matrix is not square")

	// ErrTooFewCities is returned when the matrix has fewer than two cities.
	ErrTooFewCities = errors.New("aco: at least two cities are required")

	// ErrLabelMismatch is returned when the label count differs from the matrix
	// order, or when a label is empty.
	ErrLabelMismatch = errors.New("aco: city labels do not match the distance matrix")

	// ErrNegativeWeight is returned for a negative off-diagonal distance.
	ErrNegativeWeight = errors.New("aco: negative distance")

	// ErrIncompleteGraph is returned for an infinite off-diagonal distance.
	ErrIncompleteGraph = errors.New("aco: infinite distance between distinct cities")

	// ErrInvalidDistance is returned for a NaN distance.
	ErrInvalidDistance = errors.New("aco: NaN distance")

	// ErrBadDiagonal is returned when a self-distance is neither 0 nor +Inf.
	ErrBadDiagonal = errors.New("aco: self-distance must be 0 or +Inf")

	// ErrDimensionMismatch is returned for malformed tours.
	ErrDimensionMismatch = errors.New("aco: dimension mismatch")

	// ErrStartOutOfRange is returned when the start city is not in [0, C).
	ErrStartOutOfRange = errors.New("aco: start city out of range")
)

// Configuration errors.
var (
	// ErrInvalidOptions wraps every option-domain violation.
	ErrInvalidOptions = errors.New("aco: invalid options")

	// ErrUnsupportedVariant is returned for an unknown reinforcement variant.
	ErrUnsupportedVariant = errors.New("aco: unsupported variant")
)

// Runtime errors, returned by Run.
var (
	// ErrDegenerateProbability is returned when every candidate move of an ant
	// scores zero, so no next city can be drawn.
	ErrDegenerateProbability = errors.New("aco: all candidate moves have zero probability")

	// ErrNonFinitePheromone is returned when reinforcement would store NaN or ±Inf.
	ErrNonFinitePheromone = errors.New("aco: pheromone overflow")
)

// Variant selects the reinforcement policy.
type Variant int

const (
	// VariantBestSoFar reinforces the best tour found across the whole run.
	VariantBestSoFar Variant = iota

	// VariantNBest reinforces the NBest cheapest tours of each iteration.
	VariantNBest
)

// String implements fmt.Stringer.
func (v Variant) String() string {
	switch v {
	case VariantBestSoFar:
		return "best-so-far"
	case VariantNBest:
		return "n-best"
	default:
		return fmt.Sprintf("Variant(%d)", int(v))
	}
}

// ParseVariant maps "best-so-far"/"a" and "n-best"/"b" to a Variant.
func ParseVariant(s string) (Variant, error) {
	switch s {
	case "best-so-far", "a", "A":
		return VariantBestSoFar, nil
	case "n-best", "b", "B":
		return VariantNBest, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedVariant, s)
	}
}

// Ant is one tour built during an iteration together with its cost.
type Ant struct {
	Tour Tour
	Cost float64
}

// Result is the outcome of Colony.Run.
type Result struct {
	// Tour is the best tour found. Empty when no ant ran.
	Tour Tour

	// Cost is the cost of Tour, +Inf when no ant ran.
	Cost float64

	// Iterations is the number of completed iterations (less than
	// Options.Iterations when EarlyStop triggered).
	Iterations int

	// History[k] is the best-known cost after iteration k; non-increasing.
	History []float64
}
