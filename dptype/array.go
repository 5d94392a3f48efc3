// Copyright ©2014 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dptype

import (
	"fmt"

	"github.com/kiprotect/dwork/errs"
)

// Array represents a homogeneous array of a numeric element type. Arrays
// are themselves Numeric — array-ness is contagious under arithmetic
// (spec.md §4.B) — but cannot be released directly; a Sum must collapse
// an Array to its element type first.
type Array struct {
	Elem Numeric
}

// NewArray returns an Array of the given element type.
func NewArray(elem Numeric) Array {
	return Array{Elem: elem}
}

func (Array) isType()    {}
func (Array) isNumeric() {}

func (a Array) Min() float64    { return a.Elem.Min() }
func (a Array) Max() float64    { return a.Elem.Max() }
func (a Array) Range() float64  { return a.Elem.Range() }
func (a Array) AbsMin() float64 { return a.Elem.AbsMin() }
func (a Array) AbsMax() float64 { return a.Elem.AbsMax() }

func (a Array) String() string {
	return fmt.Sprintf("Array(%s)", a.Elem)
}

// DP is undefined for Array: arrays cannot be released in this form, only
// their collapsed Sum can.
func (a Array) DP(value, sensitivity, epsilon float64) (float64, error) {
	return 0, fmt.Errorf("dptype: Array.DP: %w", errs.ErrNotReleasable)
}

// Sum returns the type of the array's element after collapsing, widening
// bounds by n when known.
func (a Array) Sum(n *int64) (Numeric, error) {
	switch elem := a.Elem.(type) {
	case Integer:
		return elem.Sum(n), nil
	case Float:
		return elem.Sum(n), nil
	default:
		return nil, fmt.Errorf("dptype: Array.Sum: element type %s: %w", a.Elem, errs.ErrTypeMismatch)
	}
}

var _ Numeric = Array{}
