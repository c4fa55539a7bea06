// Package aco - RNG utilities.
//
// Goals:
//   - Determinism: same seed ⇒ identical tours across runs and worker counts.
//   - Encapsulation: a single RNG factory; no time-based sources anywhere.
//
// Concurrency:
//   - rand.Rand is NOT goroutine-safe. Every ant owns its stream, derived
//     sequentially from the colony stream before construction starts.
package aco

import "golang.org/x/exp/rand"

// defaultRNGSeed is the fixed "zero" seed used when callers pass seed==0.
const defaultRNGSeed uint64 = 1

// rngFromSeed returns a deterministic *rand.Rand over a PCG source.
// Policy: seed==0 ⇒ defaultRNGSeed; otherwise the seed bits verbatim.
//
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	s := uint64(seed)
	if seed == 0 {
		s = defaultRNGSeed
	}

	return rand.New(rand.NewSource(s))
}

// deriveSeed mixes a parent seed and a stream identifier into a new 64-bit seed
// with a SplitMix64 finalizer, so neighbouring streams are decorrelated.
//
// Complexity: O(1).
func deriveSeed(parent uint64, stream uint64) uint64 {
	var x uint64
	x = parent ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return x
}

// deriveRNG creates an independent stream from base and a stream identifier.
// base.Uint64() is consumed once, so repeated derivations with the same
// stream id still differ. base==nil uses defaultRNGSeed as the parent.
//
// Complexity: O(1).
func deriveRNG(base *rand.Rand, stream uint64) *rand.Rand {
	parent := defaultRNGSeed
	if base != nil {
		parent = base.Uint64()
	}

	return rand.New(rand.NewSource(deriveSeed(parent, stream)))
}
