package aco

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-playground/validator/v10"
	"golang.org/x/exp/rand"
)

// Options configures a Colony. Start from DefaultOptions and override fields.
//
// Struct tags are checked by validator/v10; variant-specific rules
// (Q for best-so-far, NBest for n-best) are checked by validateOptions.
type Options struct {
	// Variant selects the reinforcement policy.
	Variant Variant

	// NumAnts is the number of tours built per iteration. Zero is accepted and
	// turns every iteration into a pure evaporation step.
	NumAnts int `validate:"gte=0"`

	// Iterations bounds the optimization loop.
	Iterations int `validate:"gt=0"`

	// Decay is the multiplicative evaporation factor, in (0, 1].
	Decay float64 `validate:"gt=0,lte=1"`

	// Alpha is the pheromone exponent.
	Alpha float64 `validate:"gte=0"`

	// Beta is the distance exponent.
	Beta float64 `validate:"gte=0"`

	// Q is the deposit constant of VariantBestSoFar; must be > 0 for that variant.
	Q float64 `validate:"gte=0"`

	// NBest is the number of ants reinforcing under VariantNBest; must be ≥ 1
	// for that variant. Values above NumAnts reinforce every ant.
	NBest int `validate:"gte=0"`

	// StartCity is the fixed start of VariantNBest tours.
	StartCity int `validate:"gte=0"`

	// InitialPheromone overrides the uniform initial trail when > 0.
	// Zero selects the variant default: 1 for best-so-far, 1/C for n-best.
	InitialPheromone float64 `validate:"gte=0"`

	// ReportEvery is the Observer stride in iterations; 0 disables reporting.
	ReportEvery int `validate:"gte=0"`

	// EarlyStop ends the run after this many consecutive iterations without a
	// strict improvement of the best cost; 0 disables.
	EarlyStop int `validate:"gte=0"`

	// Workers is the number of goroutines constructing tours; 0 and 1 run
	// sequentially. Results do not depend on this value.
	Workers int `validate:"gte=0"`

	// Seed feeds the colony RNG; 0 selects a fixed default seed.
	Seed int64

	// Source, when non-nil, replaces the seeded RNG source. The colony then
	// continues the caller's stream across runs instead of re-seeding.
	Source rand.Source

	// Observer receives IterationStats every ReportEvery iterations.
	Observer Observer
}

// DefaultOptions returns the defaults of the chosen variant.
//
//   - best-so-far: 10 ants, 100 iterations, decay 0.95, alpha 1, beta 1, q 1,
//     reporting every 10 iterations.
//   - n-best: 10 ants, 5 reinforcing, 100 iterations, decay 0.95, alpha 1,
//     beta 1, start city 0, reporting every 100 iterations.
func DefaultOptions(v Variant) Options {
	opts := Options{
		Variant:    v,
		NumAnts:    10,
		Iterations: 100,
		Decay:      0.95,
		Alpha:      1,
		Beta:       1,
	}
	switch v {
	case VariantBestSoFar:
		opts.Q = 1
		opts.ReportEvery = 10
	case VariantNBest:
		opts.NBest = 5
		opts.ReportEvery = 100
	}

	return opts
}

// validate is safe for concurrent use and caches struct metadata.
var validate = validator.New(validator.WithRequiredStructEnabled())

// validateOptions checks field domains, then variant-specific rules.
//
// Complexity: O(1).
func validateOptions(opts Options) error {
	// Stage 1: tag rules.
	if err := validate.Struct(opts); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("%w: %s violates %s%s (got %v)",
				ErrInvalidOptions, fe.Field(), fe.Tag(), paramSuffix(fe.Param()), fe.Value())
		}
		return fmt.Errorf("%w: %v", ErrInvalidOptions, err)
	}

	// Stage 2: +Inf slips through gte; reject it explicitly.
	var (
		names  = [...]string{"Alpha", "Beta", "Q", "InitialPheromone"}
		values = [...]float64{opts.Alpha, opts.Beta, opts.Q, opts.InitialPheromone}
		i      int
	)
	for i = range values {
		if math.IsInf(values[i], 0) {
			return fmt.Errorf("%w: %s must be finite", ErrInvalidOptions, names[i])
		}
	}

	// Stage 3: variant rules.
	switch opts.Variant {
	case VariantBestSoFar:
		if opts.Q <= 0 {
			return fmt.Errorf("%w: Q must be > 0 for %s", ErrInvalidOptions, opts.Variant)
		}
	case VariantNBest:
		if opts.NBest < 1 {
			return fmt.Errorf("%w: NBest must be >= 1 for %s", ErrInvalidOptions, opts.Variant)
		}
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedVariant, opts.Variant)
	}

	return nil
}

func paramSuffix(p string) string {
	if p == "" {
		return ""
	}
	return "=" + p
}
