// Copyright ©2014 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dptype

import (
	"fmt"
	"math"

	"github.com/kiprotect/dwork/internal/numeric"
	"github.com/kiprotect/dwork/mech"
)

// Float represents floating point data bounded to [Min, Max]. The zero
// value is not a valid Float; use NewFloat or FloatDefault.
type Float struct {
	min, max float64
}

// NewFloat returns a Float bounded to [min, max]. Panics if min > max.
func NewFloat(min, max float64) Float {
	if min > max {
		panic(fmt.Sprintf("dptype: invalid Float bounds [%v, %v]", min, max))
	}
	return Float{min: min, max: max}
}

// FloatDefault returns a Float with the default unbounded range
// [-Inf, +Inf].
func FloatDefault() Float {
	return Float{min: math.Inf(-1), max: math.Inf(1)}
}

func (Float) isType()    {}
func (Float) isNumeric() {}

func (f Float) Min() float64 { return f.min }
func (f Float) Max() float64 { return f.max }

func (f Float) Range() float64 { return f.max - f.min }

func (f Float) AbsMin() float64 {
	min, _ := absMinMax(f.min, f.max)
	return min
}

func (f Float) AbsMax() float64 {
	_, max := absMinMax(f.min, f.max)
	return max
}

func (f Float) String() string {
	return fmt.Sprintf("Float[%v, %v]", f.min, f.max)
}

// DP calibrates value by adding Laplace noise scaled by sensitivity, then
// clamps to [Min, Max].
func (f Float) DP(value, sensitivity, epsilon float64) (float64, error) {
	noise := mech.Laplace{Epsilon: epsilon}.Sample()
	out := value + noise*sensitivity
	return numeric.Clamp(out, f.min, f.max), nil
}

// Sum returns the type of a collapsed Array(Float). When n is non-nil the
// bounds are widened to [min*n, max*n]; otherwise they reset to the
// default unbounded range, per spec.md §4.B.
func (f Float) Sum(n *int64) Float {
	if n == nil {
		return FloatDefault()
	}
	nf := float64(*n)
	return NewFloat(f.min*nf, f.max*nf)
}

var _ Numeric = Float{}
