// Package aco - the optimization loop.
//
// A Colony owns a private copy of the distance matrix, the heuristic matrix
// η, and the pheromone matrix τ. Run resets τ and the best-known solution,
// then repeats:
//  1. derive one RNG stream per ant, in ant order;
//  2. construct and evaluate every ant (sequentially or on a worker pool);
//  3. update the best-known tour with a strict "<" in ant order;
//  4. apply the variant's Reinforcer;
//  5. record history, notify the Observer on stride, check early stop.
package aco

import (
	"context"
	"fmt"
	"math"

	"golang.org/x/exp/rand"

	"github.com/katalvlaran/antcolony/matrix"
)

// Colony is a configured solver. It is not safe for concurrent use; Run
// itself may use Options.Workers goroutines internally.
type Colony struct {
	opts       Options
	n          int
	dist       *matrix.Dense
	eta        *matrix.Dense
	labels     []string
	pher       *matrix.Dense
	tau0       float64
	reinforcer Reinforcer

	best     Tour
	bestCost float64
}

// New validates inputs and prepares a colony.
//
// labels may be nil; otherwise it must hold one non-empty name per city.
// The distance matrix is copied; later changes by the caller are not seen.
//
// Complexity: O(C²).
func New(dist matrix.Matrix, labels []string, opts Options) (*Colony, error) {
	// Stage 1: options, then inputs.
	if err := validateOptions(opts); err != nil {
		return nil, err
	}
	n, err := validateDistances(dist)
	if err != nil {
		return nil, err
	}
	if err = validateLabels(labels, n); err != nil {
		return nil, err
	}
	if opts.Variant == VariantNBest {
		if err = validateStartCity(n, opts.StartCity); err != nil {
			return nil, err
		}
	}

	// Stage 2: private matrices.
	c := &Colony{opts: opts, n: n, bestCost: math.Inf(1)}
	if c.dist, err = copyDistances(dist, n); err != nil {
		return nil, err
	}
	if c.eta, err = heuristicMatrix(c.dist, opts.Beta); err != nil {
		return nil, err
	}
	if labels != nil {
		c.labels = append([]string(nil), labels...)
	}

	// Stage 3: pheromone and policy.
	c.tau0 = opts.InitialPheromone
	if c.tau0 == 0 {
		c.tau0 = 1
		if opts.Variant == VariantNBest {
			c.tau0 = 1.0 / float64(n)
		}
	}
	if c.pher, err = matrix.NewFilled(n, n, c.tau0); err != nil {
		return nil, err
	}
	if c.reinforcer, err = newReinforcer(opts); err != nil {
		return nil, err
	}

	return c, nil
}

// Run executes the optimization loop and returns the best tour found.
//
// Every call starts from the initial pheromone and an empty best, and
// re-seeds from Options.Seed unless Options.Source is set. On error the
// returned Result is zero-valued; ctx cancellation returns ctx.Err().
//
// Complexity: O(Iterations · NumAnts · C²).
func (c *Colony) Run(ctx context.Context) (Result, error) {
	if err := c.reset(); err != nil {
		return Result{}, err
	}

	var base *rand.Rand
	if c.opts.Source != nil {
		base = rand.New(c.opts.Source)
	} else {
		base = rngFromSeed(c.opts.Seed)
	}

	var (
		history = make([]float64, 0, c.opts.Iterations)
		ctors   = c.constructors()
		rngs    = make([]*rand.Rand, c.opts.NumAnts)
		ants    []Ant
		stale   int
		it      int
		ant     int
		err     error
	)
	for it = 0; it < c.opts.Iterations; it++ {
		if err = ctx.Err(); err != nil {
			return Result{}, err
		}

		// Stage 1: per-ant streams, always in ant order.
		for ant = range rngs {
			rngs[ant] = deriveRNG(base, uint64(ant))
		}

		// Stage 2: construct and evaluate.
		ants, err = c.runAnts(ctors, rngs)
		if err != nil {
			return Result{}, fmt.Errorf("iteration %d: %w", it, err)
		}

		// Stage 3: best-known update, first-seen wins on ties.
		improved := false
		for ant = range ants {
			if ants[ant].Cost < c.bestCost {
				c.best = ants[ant].Tour.Clone()
				c.bestCost = ants[ant].Cost
				improved = true
			}
		}

		// Stage 4: reinforcement.
		if err = c.reinforcer.Apply(c.pher, Iteration{
			Index:     it,
			Ants:      ants,
			Best:      c.best,
			BestCost:  c.bestCost,
			Distances: c.dist,
		}); err != nil {
			return Result{}, fmt.Errorf("iteration %d: %w", it, err)
		}

		// Stage 5: bookkeeping.
		history = append(history, c.bestCost)
		if c.opts.Observer != nil && c.opts.ReportEvery > 0 && it%c.opts.ReportEvery == 0 {
			c.opts.Observer.OnIteration(iterationStats(c.opts.Variant, it, ants, c.bestCost))
		}
		if improved {
			stale = 0
		} else {
			stale++
		}
		if c.opts.EarlyStop > 0 && stale >= c.opts.EarlyStop {
			it++
			break
		}
	}

	return Result{
		Tour:       c.best.Clone(),
		Cost:       c.bestCost,
		Iterations: it,
		History:    history,
	}, nil
}

// reset restores the initial pheromone and clears the best-known solution.
func (c *Colony) reset() error {
	pher, err := matrix.NewFilled(c.n, c.n, c.tau0)
	if err != nil {
		return err
	}
	c.pher = pher
	c.best = Tour{}
	c.bestCost = math.Inf(1)

	return nil
}

// workers is the effective construction parallelism.
func (c *Colony) workers() int {
	w := c.opts.Workers
	if w < 1 {
		w = 1
	}
	if w > c.opts.NumAnts && c.opts.NumAnts > 0 {
		w = c.opts.NumAnts
	}

	return w
}

// constructors allocates one scratch constructor per worker.
func (c *Colony) constructors() []*constructor {
	var (
		closed = c.opts.Variant == VariantNBest
		out    = make([]*constructor, c.workers())
		i      int
	)
	for i = range out {
		out[i] = newConstructor(c.n, c.opts.Alpha, c.eta, c.pher, closed, c.opts.StartCity)
	}

	return out
}

// antResult carries one worker's output back to the collector.
type antResult struct {
	idx int
	ant Ant
	err error
}

// runAnts builds and evaluates one tour per RNG stream. The output slice is
// indexed by ant, whatever the completion order.
func (c *Colony) runAnts(ctors []*constructor, rngs []*rand.Rand) ([]Ant, error) {
	ants := make([]Ant, len(rngs))
	if len(rngs) == 0 {
		return ants, nil
	}

	// Constructors read τ; reset may have swapped the matrix since allocation.
	var i int
	for i = range ctors {
		ctors[i].pher = c.pher
	}

	if len(ctors) == 1 {
		var r antResult
		for i = range rngs {
			if r = c.runAnt(ctors[0], i, rngs[i]); r.err != nil {
				return nil, r.err
			}
			ants[i] = r.ant
		}
		return ants, nil
	}

	pool := newWorkerPool[int, antResult](len(ctors), len(rngs))
	pool.Start(func(worker int, idx int) antResult {
		return c.runAnt(ctors[worker], idx, rngs[idx])
	})
	for i = range rngs {
		pool.AddJob(i)
	}
	pool.Close()
	pool.Wait()

	// Report the lowest failing ant so errors do not depend on scheduling.
	var (
		firstErr error
		errIdx   = len(rngs)
	)
	for r := range pool.CollectResults() {
		if r.err != nil {
			if r.idx < errIdx {
				firstErr, errIdx = r.err, r.idx
			}
			continue
		}
		ants[r.idx] = r.ant
	}
	if firstErr != nil {
		return nil, firstErr
	}

	return ants, nil
}

// runAnt constructs and evaluates the tour of ant idx.
func (c *Colony) runAnt(ctor *constructor, idx int, rng *rand.Rand) antResult {
	t, err := ctor.build(rng)
	if err != nil {
		return antResult{idx: idx, err: fmt.Errorf("ant %d: %w", idx, err)}
	}
	cost, err := TourCost(c.dist, t)
	if err != nil {
		return antResult{idx: idx, err: fmt.Errorf("ant %d: %w", idx, err)}
	}

	return antResult{idx: idx, ant: Ant{Tour: t, Cost: cost}}
}

// Pheromones returns a copy of the current pheromone matrix.
func (c *Colony) Pheromones() *matrix.Dense {
	return c.pher.CloneDense()
}

// Best returns the best-known tour and cost of the last Run.
func (c *Colony) Best() (Tour, float64) {
	return c.best.Clone(), c.bestCost
}

// Labels returns a copy of the city labels, or nil when none were given.
func (c *Colony) Labels() []string {
	if c.labels == nil {
		return nil
	}
	return append([]string(nil), c.labels...)
}

// Size returns the number of cities.
func (c *Colony) Size() int { return c.n }
