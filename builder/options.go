// SPDX-License-Identifier: MIT
// Package: planarity/builder
//
// options.go: functional options for builderConfig.
//
// Option constructors validate eagerly and panic on nil arguments; a
// BuilderOption itself never fails.

package builder

import "math/rand"

// BuilderOption mutates a builderConfig before constructors run.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the vertex ID scheme.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) {
		c.idFn = fn
	}
}

// WithRand uses r for every stochastic decision. r is shared, not copied.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed installs a fresh RNG seeded with seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithWeightFn sets the edge weight distribution.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *builderConfig) {
		c.weightFn = fn
	}
}

// WithPartitionPrefix sets the ID prefixes of the CompleteBipartite sides.
// Empty prefixes revert to "L" and "R".
func WithPartitionPrefix(left, right string) BuilderOption {
	return func(c *builderConfig) {
		c.leftPrefix, c.rightPrefix = left, right
	}
}
