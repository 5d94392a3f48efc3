// Copyright ©2014 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expr

import (
	"fmt"

	"github.com/kiprotect/dwork/dptype"
)

// Constant is an exact, un-noised literal. Its sensitivity is always
// zero and its DP release is simply its true value, since a constant
// carries no information about any individual record.
type Constant struct {
	typ dptype.Type
	val float64
}

// ConstInt lifts an integer literal to a Constant of type Integer with
// the default unbounded range — not a tight [v, v] bound — matching the
// source, where Constant.type returns a bare Integer(). A constant is
// exact and carries zero sensitivity regardless of its declared bounds;
// those bounds only matter when the constant is later combined with a
// bounded operand (e.g. as the divisor in TrueDiv/FloorDiv, spec.md §4.D).
func ConstInt(v int64) Constant {
	return Constant{typ: dptype.IntegerDefault(), val: float64(v)}
}

// ConstFloat lifts a floating point literal to a Constant of type Float
// with the default unbounded range, for the same reason as ConstInt.
func ConstFloat(v float64) Constant {
	return Constant{typ: dptype.FloatDefault(), val: v}
}

func (c Constant) Type() dptype.Type { return c.typ }

func (c Constant) String() string { return fmt.Sprintf("Constant(%v : %s)", c.val, c.typ) }

func (c Constant) True() (Value, error) {
	return Value{Kind: KindScalar, Scalar: c.val}, nil
}

func (c Constant) Sensitivity() (float64, error) { return 0, nil }

func (c Constant) IsDP() bool { return false }

func (c Constant) DP(epsilon float64) (Value, error) {
	return c.True()
}

var _ Expression = Constant{}
