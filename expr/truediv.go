// Copyright ©2014 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expr

import (
	"fmt"

	"github.com/kiprotect/dwork/dptype"
	"github.com/kiprotect/dwork/table"
)

// TrueDiv represents the quotient of two expressions. The sensitivity of
// a quotient is bounded only when the divisor is bounded away from zero;
// Sensitivity returns ErrInfiniteSensitivity otherwise.
type TrueDiv struct {
	binary
}

// NewTrueDiv builds left / right.
func NewTrueDiv(left, right any) (*TrueDiv, error) {
	l, r := ToExpression(left), ToExpression(right)
	b, err := typeCheck(dptype.TrueDiv, l, r)
	if err != nil {
		return nil, err
	}
	return &TrueDiv{binary: b}, nil
}

// Sensitivity implements the four sensitivity rules of spec.md §4.D for
// TrueDiv, after checking the divisor's reachable range does not
// straddle zero.
func (d *TrueDiv) Sensitivity() (float64, error) {
	return divSensitivity(&d.binary)
}

func (d *TrueDiv) String() string { return fmt.Sprintf("(%v / %v)", d.left, d.right) }

func (d *TrueDiv) True() (Value, error) {
	lv, err := d.left.True()
	if err != nil {
		return Value{}, err
	}
	rv, err := d.right.True()
	if err != nil {
		return Value{}, err
	}
	return applyValueOp("TrueDiv", valueOp{
		scalarScalar: func(l, r float64) float64 { return l / r },
		arrayArray:   func(l, r table.Column) table.Column { return l.Div(r) },
		arrayScalar:  func(l table.Column, r float64) table.Column { return l.DivScalar(r) },
		scalarArray:  func(l float64, r table.Column) table.Column { return r.ScalarDiv(l) },
	}, lv, rv)
}

func (d *TrueDiv) DP(epsilon float64) (Value, error) {
	return nodeDP(d.typ, d.IsDP(), d.True, d.Sensitivity, epsilon)
}

var _ Expression = (*TrueDiv)(nil)

// divSensitivity implements the shared TrueDiv/FloorDiv sensitivity
// table of spec.md §4.D: the same four cases as Mul (by which operand is
// an array), using ratios instead of products, after the zero-straddle
// check on the divisor.
func divSensitivity(b *binary) (float64, error) {
	ls, err := b.left.Sensitivity()
	if err != nil {
		return 0, err
	}
	rs, err := b.right.Sensitivity()
	if err != nil {
		return 0, err
	}
	lv, err := b.left.True()
	if err != nil {
		return 0, err
	}
	rv, err := b.right.True()
	if err != nil {
		return 0, err
	}
	lt := b.left.Type().(dptype.Numeric)
	rt := b.right.Type().(dptype.Numeric)

	if err := checkDivisorFinite(rt, rv, rs); err != nil {
		return 0, err
	}

	switch {
	case lv.Kind == KindScalar && rv.Kind == KindScalar:
		lMin, lMax := reachable(lv.Scalar, ls, lt)
		rMin, rMax := reachable(rv.Scalar, rs, rt)
		center := lv.Scalar / rv.Scalar
		return corners(lMin, lMax, rMin, rMax, center, func(a, b float64) float64 { return a / b }), nil
	case lv.Kind == KindArray && rv.Kind == KindScalar:
		rMin, rMax := reachable(rv.Scalar, rs, rt)
		return lt.AbsMax() / minAbs(rMin, rMax), nil
	case lv.Kind == KindScalar && rv.Kind == KindArray:
		lMin, lMax := reachable(lv.Scalar, ls, lt)
		return maxAbs(lMin, lMax) / rt.AbsMin(), nil
	case lv.Kind == KindArray && rv.Kind == KindArray:
		return lt.AbsMax() / rt.AbsMin(), nil
	default:
		return 0, fmt.Errorf("expr: Div: unsupported value combination %v, %v", lv, rv)
	}
}
