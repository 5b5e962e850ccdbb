// SPDX-License-Identifier: MIT
// Package: planarity/builder
//
// weight_fn.go: edge weight distributions.
//
// Weights only matter for weighted graphs; planarity ignores them, but the
// generator writes them to weighted edge lists.

package builder

import (
	"fmt"
	"math/rand"
)

// DefaultEdgeWeight is drawn by DefaultWeightFn.
const DefaultEdgeWeight int64 = 1

// WeightFn draws one edge weight. rng may be nil.
type WeightFn func(rng *rand.Rand) int64

// DefaultWeightFn always returns DefaultEdgeWeight.
func DefaultWeightFn(_ *rand.Rand) int64 {
	return DefaultEdgeWeight
}

// ConstantWeightFn always returns value. Panics if value < 0.
func ConstantWeightFn(value int64) WeightFn {
	if value < 0 {
		panic(fmt.Sprintf("ConstantWeightFn: value must be ≥ 0, got %d", value))
	}
	return func(_ *rand.Rand) int64 {
		return value
	}
}

// UniformWeightFn draws uniformly from [min,max]. Without an RNG it returns
// min so that unseeded builds stay deterministic. Panics unless 0 ≤ min ≤ max.
func UniformWeightFn(min, max int64) WeightFn {
	if min < 0 || max < min {
		panic(fmt.Sprintf("UniformWeightFn: require 0 ≤ min ≤ max, got min=%d, max=%d", min, max))
	}
	return func(rng *rand.Rand) int64 {
		if rng == nil || max == min {
			return min
		}
		return min + rng.Int63n(max-min+1)
	}
}

// WithConstantWeight selects ConstantWeightFn(w).
func WithConstantWeight(w int64) BuilderOption {
	return WithWeightFn(ConstantWeightFn(w))
}

// WithUniformWeight selects UniformWeightFn(min, max).
func WithUniformWeight(min, max int64) BuilderOption {
	return WithWeightFn(UniformWeightFn(min, max))
}
