// SPDX-License-Identifier: MIT
// Package: ugraph/builder
//
// weight_fn.go - numeric edge payload distributions.
//
// Contract:
//   • WeightFn constructors validate and PANIC on meaningless parameters.
//   • A WeightFn fed a nil RNG yields DefaultEdgeWeight.
//   • Weights turns a WeightFn into an EdgeFn[float64] for Apply; the RNG
//     comes from WithSeed/WithRand and is consumed once per pair.

package builder

import (
	"fmt"
	"math"
	"math/rand"
)

// DefaultEdgeWeight is the weight produced when no randomness is configured.
const DefaultEdgeWeight float64 = 1

// WeightFn draws one edge weight from rng.
type WeightFn func(rng *rand.Rand) float64

// DefaultWeightFn always returns DefaultEdgeWeight.
func DefaultWeightFn(_ *rand.Rand) float64 {
	return DefaultEdgeWeight
}

// ConstantWeightFn returns a WeightFn that always yields value.
// Panics if value < 0.
func ConstantWeightFn(value float64) WeightFn {
	if value < 0 {
		panic(fmt.Sprintf("builder: ConstantWeightFn(value=%g < 0)", value))
	}

	return func(_ *rand.Rand) float64 {
		return value
	}
}

// UniformWeightFn samples uniformly in [min, max).
// Panics unless 0 ≤ min ≤ max.
func UniformWeightFn(min, max float64) WeightFn {
	if min < 0 || max < min {
		panic(fmt.Sprintf("builder: UniformWeightFn(min=%g, max=%g)", min, max))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultEdgeWeight
		}
		if max == min {
			return min
		}

		return min + rng.Float64()*(max-min)
	}
}

// NormalWeightFn samples N(mean, stddev), rounded to the nearest integer and
// clipped at 0. Panics if stddev < 0.
func NormalWeightFn(mean, stddev float64) WeightFn {
	if stddev < 0 {
		panic(fmt.Sprintf("builder: NormalWeightFn(stddev=%g < 0)", stddev))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultEdgeWeight
		}
		sample := rng.NormFloat64()*stddev + mean
		if sample < 0 {
			return 0
		}

		return math.Round(sample)
	}
}

// ExponentialWeightFn samples Exp(rate) rounded to the nearest integer.
// Panics if rate ≤ 0.
func ExponentialWeightFn(rate float64) WeightFn {
	if rate <= 0 {
		panic(fmt.Sprintf("builder: ExponentialWeightFn(rate=%g ≤ 0)", rate))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultEdgeWeight
		}

		return math.Round(rng.ExpFloat64() / rate)
	}
}

// Weights adapts dist into an EdgeFn usable with Apply. The RNG configured by
// opts (if any) is captured; each call to the returned EdgeFn draws once, so
// the same seed and Topology give the same weights in pair emission order.
// A nil dist falls back to DefaultWeightFn.
//
// Example:
//
//	w := builder.Weights(builder.UniformWeightFn(1, 10), builder.WithSeed(7))
//	err := builder.Apply(g, topo, builder.DefaultIDFn, nil, w)
func Weights(dist WeightFn, opts ...BuilderOption) EdgeFn[float64] {
	if dist == nil {
		dist = DefaultWeightFn
	}
	cfg := newBuilderConfig(opts...)

	return func(int, int) float64 {
		return dist(cfg.rng)
	}
}
