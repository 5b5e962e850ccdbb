// SPDX-License-Identifier: MIT
// Package: planarity/builder
//
// config.go: the private configuration resolved from BuilderOption values.

package builder

import "math/rand"

// builderConfig holds everything a Constructor may consult.
type builderConfig struct {
	// idFn maps a zero-based index to a vertex ID.
	idFn IDFn
	// rng drives stochastic families; nil keeps deterministic families deterministic.
	rng *rand.Rand
	// weightFn draws an edge weight; consulted only for weighted graphs.
	weightFn WeightFn

	leftPrefix  string
	rightPrefix string
}

const (
	defaultLeftPrefix  = "L"
	defaultRightPrefix = "R"
)

// newBuilderConfig applies opts over the defaults. Empty partition prefixes
// fall back to the defaults so bipartite IDs never collide.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:        DefaultIDFn,
		weightFn:    DefaultWeightFn,
		leftPrefix:  defaultLeftPrefix,
		rightPrefix: defaultRightPrefix,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.leftPrefix == "" {
		cfg.leftPrefix = defaultLeftPrefix
	}
	if cfg.rightPrefix == "" {
		cfg.rightPrefix = defaultRightPrefix
	}

	return cfg
}
