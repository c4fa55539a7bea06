// Package aco implements Ant Colony Optimization for the travelling-salesman
// family of problems over a complete weighted graph given as a distance matrix.
//
// A Colony owns two matrices: an immutable copy of the distances and a mutable
// pheromone matrix. Every iteration a number of ants build tours city by city,
// choosing the next unvisited city v from the current city u with probability
// proportional to
//
//	pheromone[u][v]^Alpha · (1/distance[u][v])^Beta
//
// Tours are evaluated, the best-known tour is updated (strict <, first seen
// wins) and a reinforcement policy evaporates and deposits pheromone:
//
//   - VariantBestSoFar: open tours from a random start. Evaporate, deposit
//     Q/cost(best) once per ant along the positional band (i, i+1), then add
//     the transpose to the matrix.
//
//   - VariantNBest: closed tours from a fixed start. The NBest cheapest tours
//     of the iteration deposit 1/distance on each of their edges, then the
//     matrix evaporates.
//
// Randomness is owned by the colony: a seeded golang.org/x/exp/rand stream
// from which one independent sub-stream per ant is derived. Runs are
// reproducible for a fixed seed, regardless of Options.Workers.
//
// The package does not log. Progress is delivered to an optional Observer.
// Errors are sentinels from types.go, matched with errors.Is.
//
// Complexity per iteration: O(NumAnts · C²) for construction plus O(C²) for
// reinforcement, C being the number of cities.
package aco
