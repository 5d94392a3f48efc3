// Copyright ©2014 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expr

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/kiprotect/dwork/dptype"
	"github.com/kiprotect/dwork/errs"
	"github.com/kiprotect/dwork/internal/numeric"
	"github.com/kiprotect/dwork/table"
)

// binary holds the state every BinaryExpression shares: both operands
// coerced to Expression, and the result type checked eagerly at
// construction so a malformed tree never escapes the builder (spec.md
// §7).
type binary struct {
	left, right Expression
	typ         dptype.Numeric
}

// typeCheck dispatches the operator's type-level arithmetic and reports
// TypeMismatch if either operand is non-numeric.
func typeCheck(op func(a, b dptype.Numeric) (dptype.Numeric, error), left, right Expression) (binary, error) {
	lt, ok := left.Type().(dptype.Numeric)
	if !ok {
		slog.Debug("expr: binary operand type mismatch", "side", "left", "type", left.Type())
		return binary{}, fmt.Errorf("expr: left operand type %s: %w", left.Type(), errs.ErrTypeMismatch)
	}
	rt, ok := right.Type().(dptype.Numeric)
	if !ok {
		slog.Debug("expr: binary operand type mismatch", "side", "right", "type", right.Type())
		return binary{}, fmt.Errorf("expr: right operand type %s: %w", right.Type(), errs.ErrTypeMismatch)
	}
	typ, err := op(lt, rt)
	if err != nil {
		return binary{}, err
	}
	return binary{left: left, right: right, typ: typ}, nil
}

func (b binary) Type() dptype.Type { return b.typ }

func (b binary) IsDP() bool { return b.left.IsDP() && b.right.IsDP() }

// maxSensitivity is the shared Add/Sub sensitivity rule: the larger of
// the two operand sensitivities.
func maxSensitivity(left, right Expression) (float64, error) {
	ls, err := left.Sensitivity()
	if err != nil {
		return 0, err
	}
	rs, err := right.Sensitivity()
	if err != nil {
		return 0, err
	}
	return math.Max(ls, rs), nil
}

// valueOp is the elementwise/scalar dispatch table for a binary
// operator's True() computation.
type valueOp struct {
	scalarScalar func(l, r float64) float64
	arrayArray   func(l, r table.Column) table.Column
	arrayScalar  func(l table.Column, r float64) table.Column
	scalarArray  func(l float64, r table.Column) table.Column
}

func applyValueOp(name string, op valueOp, lv, rv Value) (Value, error) {
	switch {
	case lv.Kind == KindScalar && rv.Kind == KindScalar:
		return Value{Kind: KindScalar, Scalar: op.scalarScalar(lv.Scalar, rv.Scalar)}, nil
	case lv.Kind == KindArray && rv.Kind == KindArray:
		return Value{Kind: KindArray, Array: op.arrayArray(lv.Array, rv.Array)}, nil
	case lv.Kind == KindArray && rv.Kind == KindScalar:
		return Value{Kind: KindArray, Array: op.arrayScalar(lv.Array, rv.Scalar)}, nil
	case lv.Kind == KindScalar && rv.Kind == KindArray:
		return Value{Kind: KindArray, Array: op.scalarArray(lv.Scalar, rv.Array)}, nil
	default:
		return Value{}, fmt.Errorf("expr: %s: unsupported value combination %v, %v", name, lv, rv)
	}
}

// reachable computes the interval [max(v-s, t.Min()), min(v+s, t.Max())]
// that a scalar value v of sensitivity s and type t can actually occupy
// under a single-record change (spec.md §4.D).
func reachable(v, s float64, t dptype.Numeric) (min, max float64) {
	return numeric.Reachable(v, s, t.Min(), t.Max())
}

// corners is the "four corner" over-approximation of spec.md §4.D for Mul
// and TrueDiv/FloorDiv on two scalars; it delegates to numeric.Corners.
func corners(aMin, aMax, bMin, bMax, center float64, combine func(a, b float64) float64) float64 {
	return numeric.Corners(aMin, aMax, bMin, bMax, center, combine)
}

// checkDivisorFinite reports ErrInfiniteSensitivity if the divisor's
// reachable range (or, when the divisor is an array, its declared type
// range) straddles zero, per spec.md §4.D.
func checkDivisorFinite(rt dptype.Numeric, rv Value, rs float64) error {
	if rt.Max() > 0 && rt.Min() < 0 {
		return fmt.Errorf("expr: divisor type %s straddles zero: %w", rt, errs.ErrInfiniteSensitivity)
	}
	if rv.Kind == KindScalar {
		rvMin, rvMax := reachable(rv.Scalar, rs, rt)
		if rvMax > 0 && rvMin < 0 {
			return fmt.Errorf("expr: divisor value %v ± %v straddles zero: %w", rv.Scalar, rs, errs.ErrInfiniteSensitivity)
		}
	}
	return nil
}

func maxAbs(a, b float64) float64 {
	return math.Max(math.Abs(a), math.Abs(b))
}

func minAbs(a, b float64) float64 {
	return math.Min(math.Abs(a), math.Abs(b))
}

func nodeDP(typ dptype.Numeric, isDP bool, trueVal func() (Value, error), sensitivity func() (float64, error), epsilon float64) (Value, error) {
	if isDP {
		return trueVal()
	}
	tv, err := trueVal()
	if err != nil {
		return Value{}, err
	}
	if tv.Kind != KindScalar {
		return Value{}, fmt.Errorf("expr: DP: %w", errs.ErrNotReleasable)
	}
	s, err := sensitivity()
	if err != nil {
		return Value{}, err
	}
	out, err := typ.DP(tv.Scalar, s, epsilon)
	if err != nil {
		return Value{}, err
	}
	return Value{Kind: KindScalar, Scalar: out}, nil
}
