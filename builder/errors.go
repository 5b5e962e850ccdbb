// SPDX-License-Identifier: MIT
// Package: planarity/builder
//
// errors.go: sentinel errors for the builder package.
//
// Callers branch with errors.Is; constructors attach context with %w and the
// family name as prefix, e.g. "Cycle: n=2 < min=3: builder: parameter too small".

package builder

import "errors"

// ErrTooFewVertices indicates a size parameter below the family minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic family built without WithSeed/WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a structural failure such as a nil constructor.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrOptionViolation indicates a meaningless parameter that is not a size,
// e.g. an unknown Platonic solid.
var ErrOptionViolation = errors.New("builder: invalid option value")
