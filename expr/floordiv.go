// Copyright ©2014 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expr

import (
	"fmt"
	"math"

	"github.com/kiprotect/dwork/dptype"
	"github.com/kiprotect/dwork/table"
)

// FloorDiv represents the floor quotient of two expressions. Its
// sensitivity follows the same structure as TrueDiv, with // replacing /
// (spec.md §4.D).
type FloorDiv struct {
	binary
}

// NewFloorDiv builds left // right.
func NewFloorDiv(left, right any) (*FloorDiv, error) {
	l, r := ToExpression(left), ToExpression(right)
	b, err := typeCheck(dptype.FloorDiv, l, r)
	if err != nil {
		return nil, err
	}
	return &FloorDiv{binary: b}, nil
}

func (d *FloorDiv) Sensitivity() (float64, error) {
	return divSensitivity(&d.binary)
}

func (d *FloorDiv) String() string { return fmt.Sprintf("(%v // %v)", d.left, d.right) }

func (d *FloorDiv) True() (Value, error) {
	lv, err := d.left.True()
	if err != nil {
		return Value{}, err
	}
	rv, err := d.right.True()
	if err != nil {
		return Value{}, err
	}
	return applyValueOp("FloorDiv", valueOp{
		scalarScalar: func(l, r float64) float64 { return math.Floor(l / r) },
		arrayArray:   func(l, r table.Column) table.Column { return l.FloorDiv(r) },
		arrayScalar:  func(l table.Column, r float64) table.Column { return l.FloorDivScalar(r) },
		scalarArray:  func(l float64, r table.Column) table.Column { return r.ScalarFloorDiv(l) },
	}, lv, rv)
}

func (d *FloorDiv) DP(epsilon float64) (Value, error) {
	return nodeDP(d.typ, d.IsDP(), d.True, d.Sensitivity, epsilon)
}

var _ Expression = (*FloorDiv)(nil)
