// Copyright ©2014 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dptype implements the closed set of value-type descriptors the
// query engine tracks alongside every expression node: numeric scalars
// carrying [min, max] bounds, arrays of such scalars, booleans and
// categoricals. Arithmetic on the numeric variants is a set of free
// functions over the Numeric interface rather than methods on an inheritance
// lattice, matching the closed-sum-types design in spec.md §9.
package dptype

// MaxInt is the default absolute bound for an unbounded Integer, matching
// the source's 2**31-1.
const MaxInt int64 = 1<<31 - 1

// Type is implemented by every value-type descriptor: Integer, Float,
// Array, Boolean and Categorical. The isType marker keeps the sum closed
// to this package.
type Type interface {
	isType()
	String() string
}

// Numeric is the subset of Type that supports arithmetic and DP release:
// Integer, Float and Array(numeric). Bounds are always reported as
// float64 regardless of the underlying kind, since sensitivity arithmetic
// is done in floating point throughout the expression algebra.
type Numeric interface {
	Type
	isNumeric()

	// Min and Max report the type's inclusive value bounds.
	Min() float64
	Max() float64

	// Range, AbsMin and AbsMax are derived from Min/Max per spec.md §3.
	Range() float64
	AbsMin() float64
	AbsMax() float64

	// DP calibrates value with the given sensitivity under privacy
	// budget epsilon and clamps the result to [Min, Max]. Returns
	// errs.ErrNotReleasable for Array, whose elements must be
	// collapsed by Sum before release.
	DP(value, sensitivity, epsilon float64) (float64, error)
}

func absMinMax(min, max float64) (absmin, absmax float64) {
	a, b := abs(min), abs(max)
	if a < b {
		return a, b
	}
	return b, a
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
