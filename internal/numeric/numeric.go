// Copyright ©2014 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package numeric holds small numeric coercion helpers shared between
// dptype and expr, grounded on floats.go's style of small, single-purpose
// free functions over bounds rather than methods on a type lattice.
package numeric

import "math"

// Clamp restricts v to [min, max].
func Clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// IntRangeAdd returns the bounds of a+b given a ∈ [aMin, aMax] and
// b ∈ [bMin, bMax], matching dptype's Integer Add rule (spec.md §4.B).
func IntRangeAdd(aMin, aMax, bMin, bMax int64) (min, max int64) {
	return aMin + bMin, aMax + bMax
}

// FloatRangeAdd returns the bounds of a+b given a ∈ [aMin, aMax] and
// b ∈ [bMin, bMax], matching dptype's Float Add rule (spec.md §4.B).
func FloatRangeAdd(aMin, aMax, bMin, bMax float64) (min, max float64) {
	return aMin + bMin, aMax + bMax
}

// Reachable computes the interval [max(v-s, tMin), min(v+s, tMax)] that a
// scalar value v of sensitivity s and declared bounds [tMin, tMax] can
// actually occupy under a single-record change (spec.md §4.D).
func Reachable(v, s, tMin, tMax float64) (min, max float64) {
	return math.Max(v-s, tMin), math.Min(v+s, tMax)
}

// Corners evaluates combine at the four combinations of {aMin, aMax} x
// {bMin, bMax} and returns the maximum absolute deviation from center —
// the "four corner" over-approximation of spec.md §4.D for operators
// (Mul, TrueDiv, FloorDiv) with no closed-form sensitivity formula.
func Corners(aMin, aMax, bMin, bMax, center float64, combine func(a, b float64) float64) float64 {
	vals := [4]float64{
		combine(aMin, bMin),
		combine(aMin, bMax),
		combine(aMax, bMin),
		combine(aMax, bMax),
	}
	max := 0.0
	for _, v := range vals {
		if d := math.Abs(v - center); d > max {
			max = d
		}
	}
	return max
}
