// Copyright ©2014 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expr

import (
	"fmt"

	"github.com/kiprotect/dwork/dptype"
	"github.com/kiprotect/dwork/table"
)

// Mul represents the product of two expressions.
type Mul struct {
	binary
}

// NewMul builds left * right.
func NewMul(left, right any) (*Mul, error) {
	l, r := ToExpression(left), ToExpression(right)
	b, err := typeCheck(dptype.Mul, l, r)
	if err != nil {
		return nil, err
	}
	return &Mul{binary: b}, nil
}

// Sensitivity implements the four sensitivity rules of spec.md §4.D for
// Mul, selected by which operands are arrays vs scalars: the
// scalar-scalar case takes the maximum deviation over the four corner
// products of the operands' reachable intervals (a safe
// over-approximation, not the tight bound — preserved from the source
// per spec.md §9); the mixed cases scale one operand's sensitivity by
// the other's reachable magnitude; array-array multiplies the two
// sensitivities directly.
func (m *Mul) Sensitivity() (float64, error) {
	ls, err := m.left.Sensitivity()
	if err != nil {
		return 0, err
	}
	rs, err := m.right.Sensitivity()
	if err != nil {
		return 0, err
	}
	lv, err := m.left.True()
	if err != nil {
		return 0, err
	}
	rv, err := m.right.True()
	if err != nil {
		return 0, err
	}
	lt := m.left.Type().(dptype.Numeric)
	rt := m.right.Type().(dptype.Numeric)

	switch {
	case lv.Kind == KindScalar && rv.Kind == KindScalar:
		lMin, lMax := reachable(lv.Scalar, ls, lt)
		rMin, rMax := reachable(rv.Scalar, rs, rt)
		center := lv.Scalar * rv.Scalar
		return corners(lMin, lMax, rMin, rMax, center, func(a, b float64) float64 { return a * b }), nil
	case lv.Kind == KindArray && rv.Kind == KindScalar:
		rMin, rMax := reachable(rv.Scalar, rs, rt)
		return ls * maxAbs(rMin, rMax), nil
	case lv.Kind == KindScalar && rv.Kind == KindArray:
		lMin, lMax := reachable(lv.Scalar, ls, lt)
		return rs * maxAbs(lMin, lMax), nil
	case lv.Kind == KindArray && rv.Kind == KindArray:
		return ls * rs, nil
	default:
		return 0, fmt.Errorf("expr: Mul: unsupported value combination %v, %v", lv, rv)
	}
}

func (m *Mul) String() string { return fmt.Sprintf("(%v * %v)", m.left, m.right) }

func (m *Mul) True() (Value, error) {
	lv, err := m.left.True()
	if err != nil {
		return Value{}, err
	}
	rv, err := m.right.True()
	if err != nil {
		return Value{}, err
	}
	return applyValueOp("Mul", valueOp{
		scalarScalar: func(l, r float64) float64 { return l * r },
		arrayArray:   func(l, r table.Column) table.Column { return l.Mul(r) },
		arrayScalar:  func(l table.Column, r float64) table.Column { return l.MulScalar(r) },
		scalarArray:  func(l float64, r table.Column) table.Column { return r.MulScalar(l) },
	}, lv, rv)
}

func (m *Mul) DP(epsilon float64) (Value, error) {
	return nodeDP(m.typ, m.IsDP(), m.True, m.Sensitivity, epsilon)
}

var _ Expression = (*Mul)(nil)
