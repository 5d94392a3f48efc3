// Copyright ©2014 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dptype

import (
	"fmt"

	"github.com/kiprotect/dwork/internal/numeric"
	"github.com/kiprotect/dwork/mech"
)

// Integer represents integer data bounded to [Min, Max]. The zero value
// is not a valid Integer; use NewInteger or IntegerDefault.
type Integer struct {
	min, max int64
}

// NewInteger returns an Integer bounded to [min, max]. Panics if
// min > max, matching the eager-construction-failure policy of spec.md
// §7 — a malformed bound is a programmer error, not a runtime one.
func NewInteger(min, max int64) Integer {
	if min > max {
		panic(fmt.Sprintf("dptype: invalid Integer bounds [%d, %d]", min, max))
	}
	return Integer{min: min, max: max}
}

// IntegerDefault returns an Integer with the default unbounded range
// [-MaxInt, MaxInt].
func IntegerDefault() Integer {
	return Integer{min: -MaxInt, max: MaxInt}
}

func (Integer) isType()    {}
func (Integer) isNumeric() {}

func (i Integer) Min() float64 { return float64(i.min) }
func (i Integer) Max() float64 { return float64(i.max) }

// MinInt and MaxInt report the bounds as the integers they actually are,
// for callers (such as Sum) that need exact integer arithmetic.
func (i Integer) MinInt() int64 { return i.min }
func (i Integer) MaxInt() int64 { return i.max }

func (i Integer) Range() float64 { return i.Max() - i.Min() }

func (i Integer) AbsMin() float64 {
	min, _ := absMinMax(i.Min(), i.Max())
	return min
}

func (i Integer) AbsMax() float64 {
	_, max := absMinMax(i.Min(), i.Max())
	return max
}

func (i Integer) String() string {
	return fmt.Sprintf("Integer[%d, %d]", i.min, i.max)
}

// DP calibrates value by adding symmetric geometric noise scaled by
// sensitivity, then clamps to [Min, Max].
func (i Integer) DP(value, sensitivity, epsilon float64) (float64, error) {
	noise := mech.Geometric{Epsilon: epsilon, Symmetric: true}.Sample()
	out := value + float64(noise)*sensitivity
	return numeric.Clamp(out, i.Min(), i.Max()), nil
}

// Sum returns the type of a collapsed Array(Integer). When n is non-nil
// the bounds are widened to [min*n, max*n]; otherwise they reset to the
// default unbounded range, per spec.md §4.B.
func (i Integer) Sum(n *int64) Integer {
	if n == nil {
		return IntegerDefault()
	}
	return NewInteger(i.min*(*n), i.max*(*n))
}

var _ Numeric = Integer{}
