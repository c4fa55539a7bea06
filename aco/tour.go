// Package aco - tour model and structural checks.
//
// A Tour is a sequence of city indices. Open tours (best-so-far variant) are
// permutations of {0..C-1}. Closed tours (n-best variant) follow the layout
// len(Cities)==C+1 with Cities[0]==Cities[C]==start.
//
// The helpers here never touch a distance matrix.
package aco

import (
	"fmt"
	"strings"
)

// Edge is a directed move between two cities.
type Edge struct {
	From, To int
}

// Tour is an ordered visitation of cities.
type Tour struct {
	// Cities lists visited city indices in order. Closed tours repeat the
	// start city at the end.
	Cities []int

	// Closed reports whether the tour returns to its start.
	Closed bool
}

// Len returns the number of distinct cities the tour visits.
func (t Tour) Len() int {
	if t.Closed && len(t.Cities) > 0 {
		return len(t.Cities) - 1
	}

	return len(t.Cities)
}

// Edges returns the consecutive directed edges: C−1 for an open tour over
// C cities, C for a closed one.
//
// Complexity: O(C).
func (t Tour) Edges() []Edge {
	if len(t.Cities) < 2 {
		return nil
	}
	out := make([]Edge, len(t.Cities)-1)
	var i int
	for i = range out {
		out[i] = Edge{From: t.Cities[i], To: t.Cities[i+1]}
	}

	return out
}

// Clone returns a tour that does not share storage with t.
func (t Tour) Clone() Tour {
	return Tour{Cities: append([]int(nil), t.Cities...), Closed: t.Closed}
}

// String renders the tour as "0 -> 2 -> 1".
func (t Tour) String() string {
	return t.Format(nil)
}

// Format renders the tour with labels[i] in place of index i when labels
// cover every city; otherwise it falls back to indices.
func (t Tour) Format(labels []string) string {
	var (
		sb strings.Builder
		i  int
		c  int
	)
	for i, c = range t.Cities {
		if i > 0 {
			sb.WriteString(" -> ")
		}
		if c >= 0 && c < len(labels) {
			sb.WriteString(labels[c])
		} else {
			sb.WriteString(fmt.Sprint(c))
		}
	}

	return sb.String()
}

// ValidatePermutation checks that perm is a permutation of {0..n-1}.
//
// Complexity: O(n) time, O(n) space.
func ValidatePermutation(perm []int, n int) error {
	if n <= 0 || len(perm) != n {
		return ErrDimensionMismatch
	}
	seen := make([]bool, n)

	var (
		i int
		v int
	)
	for i = 0; i < n; i++ {
		v = perm[i]
		// Out-of-range element or duplicate violates the bijection.
		if v < 0 || v >= n || seen[v] {
			return fmt.Errorf("%w: position %d holds %d", ErrDimensionMismatch, i, v)
		}
		seen[v] = true
	}

	return nil
}

// ValidateTour enforces the tour invariants for n cities.
//
//   - open:   Cities is a permutation of {0..n-1}; start is ignored.
//   - closed: len==n+1, Cities[0]==Cities[n]==start, Cities[:n] is a permutation.
//
// Complexity: O(n).
func ValidateTour(t Tour, n int, start int) error {
	if !t.Closed {
		return ValidatePermutation(t.Cities, n)
	}
	if n <= 0 || len(t.Cities) != n+1 {
		return ErrDimensionMismatch
	}
	if start < 0 || start >= n {
		return ErrStartOutOfRange
	}
	if t.Cities[0] != start || t.Cities[n] != start {
		return fmt.Errorf("%w: tour must start and end at %d", ErrDimensionMismatch, start)
	}

	return ValidatePermutation(t.Cities[:n], n)
}
