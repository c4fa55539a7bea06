// Package aco - stochastic path construction.
//
// One ant builds one tour:
//  1. pick the start (random for open tours, fixed for closed ones);
//  2. C−1 times, score every unvisited city v from the current city u and
//     draw the next city from the normalized scores (weighted choice);
//  3. closed tours append the start again.
//
// Scores are (τ_uv/τmax)^α · η_uv where η_uv = (1/d_uv)^β is precomputed once
// per colony and τmax is the largest candidate pheromone on row u. Dividing by
// τmax leaves the distribution unchanged and keeps Pow finite on matrices
// that grow every iteration. Non-finite scores count as zero.
package aco

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"

	"github.com/katalvlaran/antcolony/matrix"
)

// constructor holds read-only inputs shared by all ants of an iteration plus
// the per-ant scratch buffers. A constructor is used by one goroutine at a time.
type constructor struct {
	n      int
	alpha  float64
	eta    *matrix.Dense // heuristic desirability (1/d)^β, finite, zero where undefined
	pher   *matrix.Dense // read-only during construction
	closed bool
	start  int // fixed start for closed tours; ignored for open tours

	// scratch
	unvisited []int
	scores    []float64
}

// newConstructor allocates scratch space for tours over n cities.
func newConstructor(n int, alpha float64, eta, pher *matrix.Dense, closed bool, start int) *constructor {
	return &constructor{
		n:         n,
		alpha:     alpha,
		eta:       eta,
		pher:      pher,
		closed:    closed,
		start:     start,
		unvisited: make([]int, 0, n),
		scores:    make([]float64, 0, n),
	}
}

// heuristicMatrix computes η[u][v] = (1/d[u][v])^β for u≠v, and 0 on the
// diagonal or wherever the value is not finite (zero distance with β>0).
//
// Complexity: O(C²).
func heuristicMatrix(dist *matrix.Dense, beta float64) (*matrix.Dense, error) {
	n := dist.Rows()
	eta, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, err
	}
	var (
		u, v int
		d, h float64
	)
	for u = 0; u < n; u++ {
		for v = 0; v < n; v++ {
			if u == v {
				continue
			}
			d, _ = dist.At(u, v) // safe: validated shape
			h = math.Pow(1.0/d, beta)
			if math.IsNaN(h) || math.IsInf(h, 0) {
				continue // treated as a zero-probability move
			}
			if err = eta.Set(u, v, h); err != nil {
				return nil, err
			}
		}
	}

	return eta, nil
}

// build constructs one tour using rng.
//
// Errors: ErrDegenerateProbability when every candidate scores zero.
//
// Complexity: O(C²).
func (c *constructor) build(rng *rand.Rand) (Tour, error) {
	var (
		size  = c.n
		start = c.start
		i     int
	)
	if c.closed {
		size++
	} else {
		start = rng.Intn(c.n)
	}
	cities := make([]int, 0, size)
	cities = append(cities, start)

	// Seed the candidate list with every city but the start, ascending.
	c.unvisited = c.unvisited[:0]
	for i = 0; i < c.n; i++ {
		if i != start {
			c.unvisited = append(c.unvisited, i)
		}
	}

	var (
		cur  = start
		pick int
		err  error
	)
	for step := 1; step < c.n; step++ {
		if pick, err = c.next(cur, rng); err != nil {
			return Tour{}, fmt.Errorf("step %d from city %d: %w", step, cur, err)
		}
		cur = c.unvisited[pick]
		cities = append(cities, cur)
		// Remove in place, keeping ascending order for the next draw.
		c.unvisited = append(c.unvisited[:pick], c.unvisited[pick+1:]...)
	}
	if c.closed {
		cities = append(cities, start)
	}

	return Tour{Cities: cities, Closed: c.closed}, nil
}

// next scores the current candidates from city u and returns the drawn
// position inside c.unvisited.
//
// Complexity: O(len(unvisited)).
func (c *constructor) next(u int, rng *rand.Rand) (int, error) {
	var (
		k     int
		v     int
		tau   float64
		tmax  float64
		ratio float64
		s     float64
		total float64
	)

	// Stage 1: largest candidate pheromone on row u.
	for _, v = range c.unvisited {
		tau, _ = c.pher.At(u, v) // safe: u,v < n
		if tau > tmax {
			tmax = tau
		}
	}

	// Stage 2: unnormalized scores.
	c.scores = c.scores[:0]
	for _, v = range c.unvisited {
		tau, _ = c.pher.At(u, v)
		ratio = 0
		if tmax > 0 {
			ratio = tau / tmax
		}
		s, _ = c.eta.At(u, v)
		s *= math.Pow(ratio, c.alpha)
		if math.IsNaN(s) || math.IsInf(s, 0) || s < 0 {
			s = 0
		}
		c.scores = append(c.scores, s)
		total += s
	}
	if !(total > 0) || math.IsInf(total, 0) {
		return 0, ErrDegenerateProbability
	}

	// Stage 3: weighted draw against the running cumulative sum.
	var (
		r    = rng.Float64() * total
		acc  float64
		last = -1
	)
	for k, s = range c.scores {
		if s == 0 {
			continue
		}
		acc += s
		last = k
		if r < acc {
			return k, nil
		}
	}

	// Rounding left r at or beyond the final sum: take the last positive candidate.
	return last, nil
}
