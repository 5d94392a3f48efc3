// Copyright ©2014 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expr

import (
	"fmt"

	"github.com/kiprotect/dwork/dptype"
	"github.com/kiprotect/dwork/table"
)

// Add represents the sum of two expressions. Both operands are coerced
// to Expression and must be numeric; construction fails with
// TypeMismatch otherwise.
type Add struct {
	binary
}

// NewAdd builds left + right.
func NewAdd(left, right any) (*Add, error) {
	l, r := ToExpression(left), ToExpression(right)
	b, err := typeCheck(dptype.Add, l, r)
	if err != nil {
		return nil, err
	}
	return &Add{binary: b}, nil
}

func (a *Add) Sensitivity() (float64, error) { return maxSensitivity(a.left, a.right) }

func (a *Add) String() string { return fmt.Sprintf("(%v + %v)", a.left, a.right) }

func (a *Add) True() (Value, error) {
	lv, err := a.left.True()
	if err != nil {
		return Value{}, err
	}
	rv, err := a.right.True()
	if err != nil {
		return Value{}, err
	}
	return applyValueOp("Add", valueOp{
		scalarScalar: func(l, r float64) float64 { return l + r },
		arrayArray:   func(l, r table.Column) table.Column { return l.Add(r) },
		arrayScalar:  func(l table.Column, r float64) table.Column { return l.AddScalar(r) },
		scalarArray:  func(l float64, r table.Column) table.Column { return r.AddScalar(l) },
	}, lv, rv)
}

func (a *Add) DP(epsilon float64) (Value, error) {
	return nodeDP(a.typ, a.IsDP(), a.True, a.Sensitivity, epsilon)
}

var _ Expression = (*Add)(nil)
