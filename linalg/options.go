// SPDX-License-Identifier: MIT

// Package linalg: functional configuration for the numeric policy.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that applies setters over defaults.
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - No dead switches: each option changes exactly one documented behavior
//     and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//
// Consumers:
//   - ApproxEqual / ApproxEqualMat / ApproxEqualQuat and InverseChecked read eps.
//   - QuatFromMat3 / QuatFromMat4 read threshold.
//   - Slerp reads slerpFallback.
package linalg

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the absolute tolerance used by approximate comparisons
	// and by InverseChecked to declare a determinant singular.
	DefaultEpsilon = 1e-6

	// DefaultThreshold is the branch threshold of QuatFromMat3: a diagonal
	// combination strictly greater than it is extracted with the direct sqrt
	// form, otherwise the off-diagonal form is used.
	DefaultThreshold = 0.0

	// DefaultSlerpFallback keeps Slerp on the plain formula. Parallel or
	// antiparallel inputs then yield the NaN quaternion.
	DefaultSlerpFallback = false
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicEpsilonInvalid   = "linalg: WithEpsilon: eps must be finite, non-negative"
	panicThresholdInvalid = "linalg: WithThreshold: threshold must be finite"
)

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	eps           float64 // >= 0; DefaultEpsilon
	threshold     float64 // finite; DefaultThreshold
	slerpFallback bool    // DefaultSlerpFallback
}

// WithEpsilon sets the absolute tolerance eps.
//
// Behavior highlights:
//   - Panics with a stable message when eps is negative, NaN or ±Inf.
//
// Notes:
//   - float32 data rarely supports eps below 1e-6.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithThreshold sets the QuatFromMat3 branch threshold.
// Panics when threshold is NaN or ±Inf.
func WithThreshold(threshold float64) Option {
	if math.IsNaN(threshold) || math.IsInf(threshold, 0) {
		panic(panicThresholdInvalid)
	}

	return func(o *Options) { o.threshold = threshold }
}

// WithSlerpFallback makes Slerp switch to normalized linear interpolation
// when the endpoints are parallel or antiparallel, or sin(angle) <= eps.
func WithSlerpFallback() Option {
	return func(o *Options) { o.slerpFallback = true }
}

// defaultOptions returns the zero-configuration policy.
func defaultOptions() Options {
	return Options{
		eps:           DefaultEpsilon,
		threshold:     DefaultThreshold,
		slerpFallback: DefaultSlerpFallback,
	}
}

// gatherOptions applies setters over defaults in order; nil setters are skipped.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

// Epsilon reports the effective tolerance.
func (o Options) Epsilon() float64 { return o.eps }

// Threshold reports the effective QuatFromMat3 threshold.
func (o Options) Threshold() float64 { return o.threshold }

// SlerpFallback reports whether the Slerp fallback is enabled.
func (o Options) SlerpFallback() bool { return o.slerpFallback }

// NewOptions resolves opts over the defaults. It exists for callers that want
// to inspect the effective policy.
func NewOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}
