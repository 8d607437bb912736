// SPDX-License-Identifier: MIT

// Package matrix: functional configuration of the numeric policy.
//
// Options are resolved once at construction and stored on the Matrix; every
// matrix derived from it (arithmetic results, conversions, factors) inherits
// the receiver's policy, the same way Clone carries a policy forward. Use
// (*Matrix).With to re-configure an existing value without copying entries.
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the relative tolerance used for pivot selection in
	// LU/Det/Inverse and for the singular-value cutoff in PseudoInverse.
	DefaultEpsilon = 1e-12

	// DefaultValidateNaNInf controls finite-only validation in constructors and Apply.
	// Off by default: NaN and ±Inf propagate with IEEE-754 semantics.
	DefaultValidateNaNInf = false

	// DefaultWorkers is the goroutine limit for Mul; 1 means sequential.
	DefaultWorkers = 1
)

// ---------- Internal panic messages ----------

const (
	panicEpsilonInvalid = "matrix: WithEpsilon: eps must be finite, non-negative"
	panicWorkersInvalid = "matrix: WithWorkers: n must be >= 1"
)

// Option mutates Options. Constructors panic only on nonsensical values.
type Option func(*Options)

// Options is the resolved numeric policy. Fields are unexported; public
// entry points accept ...Option and resolve them via gatherOptions.
type Options struct {
	eps            float64 // >= 0
	validateNaNInf bool
	workers        int // >= 1
}

// WithEpsilon sets the relative tolerance for pivots and singular values.
// A pivot p is rejected when |p| <= eps * max|a_ij|; eps == 0 rejects only
// exact zeros. Panics when eps is negative, NaN or Inf.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithValidateNaNInf rejects NaN/±Inf entries in constructors and Apply with ErrNaNInf.
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf lets NaN/±Inf through (default).
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// WithWorkers bounds the number of goroutines Mul uses to compute result rows.
// n == 1 runs sequentially. Results are bit-identical for every n.
// Panics when n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = n }
}

// defaultOptions returns the documented defaults.
func defaultOptions() Options {
	return Options{
		eps:            DefaultEpsilon,
		validateNaNInf: DefaultValidateNaNInf,
		workers:        DefaultWorkers,
	}
}

// gatherOptions applies user setters on top of base in order (last writer wins).
func gatherOptions(base Options, user ...Option) Options {
	o := base
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}
