// Package antcolony is an Ant Colony Optimization toolkit for
// travelling-salesman style problems over a distance matrix.
//
// The module is organized as:
//
//	matrix/   - Dense matrix with a strict (pheromone) or distance numeric
//	            policy, validators and the in-place ops the colony needs
//	aco/      - the colony: options, tour construction, evaluation, the
//	            best-so-far and n-best reinforcement policies, observers
//	dataset/  - tab-delimited distance files and city label lists
//	cmd/aco   - command-line driver with progress output
//	examples/ - a runnable drone patrol scenario
//
// Quick start:
//
//	opts := aco.DefaultOptions(aco.VariantNBest)
//	colony, err := aco.New(dist, labels, opts)
//	if err != nil { ... }
//	res, err := colony.Run(ctx)
//	fmt.Println(res.Tour.Format(labels), res.Cost)
package antcolony
