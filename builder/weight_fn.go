package builder

import (
	"fmt"
	"math"
	"math/rand"
)

// DefaultEdgeWeight is the weight DefaultWeightFn assigns.
const DefaultEdgeWeight float64 = 1

// WeightFn draws the weight of the next generated edge. rng may be nil.
type WeightFn func(rng *rand.Rand) float64

// DefaultWeightFn always returns DefaultEdgeWeight.
func DefaultWeightFn(_ *rand.Rand) float64 {
	return DefaultEdgeWeight
}

// ConstantWeightFn always returns value. Panics unless value > 0.
func ConstantWeightFn(value float64) WeightFn {
	if !(value > 0) || math.IsInf(value, 0) {
		panic(fmt.Sprintf("ConstantWeightFn: value must be a positive finite number, got %g", value))
	}
	return func(_ *rand.Rand) float64 { return value }
}

// UniformWeightFn draws from U[min, max] rounded to one decimal, never
// below 0.1. Without a random source it returns min. Panics unless
// 0 < min ≤ max.
func UniformWeightFn(min, max float64) WeightFn {
	if !(min > 0) || max < min || math.IsInf(max, 0) {
		panic(fmt.Sprintf("UniformWeightFn: require 0 < min ≤ max, got min=%g, max=%g", min, max))
	}
	return func(rng *rand.Rand) float64 {
		if rng == nil || max == min {
			return min
		}
		w := math.Round((min+rng.Float64()*(max-min))*10) / 10
		return math.Max(w, 0.1)
	}
}
