// Copyright ©2014 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dptype

import (
	"fmt"

	"github.com/kiprotect/dwork/errs"
	"github.com/kiprotect/dwork/internal/numeric"
)

// op names the arithmetic operator for error messages and for the
// default-bounds dispatch table below.
type op int

const (
	opAdd op = iota
	opSub
	opMul
	opTrueDiv
	opFloorDiv
)

func (o op) String() string {
	switch o {
	case opAdd:
		return "+"
	case opSub:
		return "-"
	case opMul:
		return "*"
	case opTrueDiv:
		return "/"
	case opFloorDiv:
		return "//"
	default:
		return "?"
	}
}

// Add returns the type of a + b.
func Add(a, b Numeric) (Numeric, error) { return apply(opAdd, a, b) }

// Sub returns the type of a - b.
func Sub(a, b Numeric) (Numeric, error) { return apply(opSub, a, b) }

// Mul returns the type of a * b.
func Mul(a, b Numeric) (Numeric, error) { return apply(opMul, a, b) }

// TrueDiv returns the type of a / b.
func TrueDiv(a, b Numeric) (Numeric, error) { return apply(opTrueDiv, a, b) }

// FloorDiv returns the type of a // b.
func FloorDiv(a, b Numeric) (Numeric, error) { return apply(opFloorDiv, a, b) }

// apply implements the arithmetic dispatch of spec.md §4.B: array-ness is
// contagious (an Array operand lifts the other side and the result stays
// an Array); otherwise the result is the "widest" scalar kind (Float if
// either operand is Float, else Integer), with precise bounds only where
// the source gives a formula (Integer/Float Add, Float Sub) and default
// unbounded bounds everywhere else.
func apply(o op, a, b Numeric) (Numeric, error) {
	aArr, aIsArr := a.(Array)
	bArr, bIsArr := b.(Array)
	if aIsArr || bIsArr {
		ae, be := a, b
		if aIsArr {
			ae = aArr.Elem
		}
		if bIsArr {
			be = bArr.Elem
		}
		elem, err := apply(o, ae, be)
		if err != nil {
			return nil, err
		}
		return NewArray(elem), nil
	}

	aInt, aIsInt := a.(Integer)
	bInt, bIsInt := b.(Integer)
	_, aIsFlt := a.(Float)
	_, bIsFlt := b.(Float)
	if !aIsInt && !aIsFlt {
		return nil, fmt.Errorf("dptype: %s %s %s: %w", a, o, b, errs.ErrTypeMismatch)
	}
	if !bIsInt && !bIsFlt {
		return nil, fmt.Errorf("dptype: %s %s %s: %w", a, o, b, errs.ErrTypeMismatch)
	}

	widestFloat := aIsFlt || bIsFlt

	switch o {
	case opAdd:
		if widestFloat {
			min, max := numeric.FloatRangeAdd(a.Min(), a.Max(), b.Min(), b.Max())
			return NewFloat(min, max), nil
		}
		min, max := numeric.IntRangeAdd(aInt.min, aInt.max, bInt.min, bInt.max)
		return NewInteger(min, max), nil
	case opSub:
		if widestFloat {
			return NewFloat(a.Min()-b.Max(), a.Max()-b.Min()), nil
		}
		return IntegerDefault(), nil
	case opMul, opTrueDiv, opFloorDiv:
		if widestFloat {
			return FloatDefault(), nil
		}
		return IntegerDefault(), nil
	default:
		return nil, fmt.Errorf("dptype: unknown operator")
	}
}
