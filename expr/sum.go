// Copyright ©2014 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expr

import (
	"fmt"

	"github.com/kiprotect/dwork/dptype"
	"github.com/kiprotect/dwork/errs"
)

// Sum collapses an Array(numeric) expression to its element type,
// summing every row. Its sensitivity is the child's sensitivity: the
// per-element sensitivity of a per-row projection becomes the
// per-record sensitivity of the sum (spec.md §4.D). This rule is only
// correct when child is a per-row projection of attributes — spec.md §9
// flags Sum as a primitive operator over attributes rather than a
// closure over arbitrary array expressions. NewSum accepts any
// Array-typed child and does not check that it is such a projection.
type Sum struct {
	child   Expression
	sumType dptype.Numeric
}

// NewSum builds Sum(child). child's type must be Array(numeric);
// construction reads child's true array once to learn its length, so
// the collapsed type's bounds can be widened by that length when known
// (spec.md §4.B) — the same re-evaluation of True() that Sum.True()
// will perform again later, which is safe since evaluation is
// idempotent (spec.md §3, Lifecycle).
func NewSum(child Expression) (*Sum, error) {
	arr, ok := child.Type().(dptype.Array)
	if !ok {
		return nil, fmt.Errorf("expr: Sum: child type %s: %w", child.Type(), errs.ErrTypeMismatch)
	}
	tv, err := child.True()
	if err != nil {
		return nil, err
	}
	if tv.Kind != KindArray {
		return nil, fmt.Errorf("expr: Sum: child did not produce an array: %w", errs.ErrTypeMismatch)
	}
	n := int64(tv.Array.Len())
	sumType, err := arr.Sum(&n)
	if err != nil {
		return nil, err
	}
	return &Sum{child: child, sumType: sumType}, nil
}

func (s *Sum) Type() dptype.Type { return s.sumType }

func (s *Sum) String() string { return fmt.Sprintf("Sum(%v)", s.child) }

func (s *Sum) True() (Value, error) {
	tv, err := s.child.True()
	if err != nil {
		return Value{}, err
	}
	if tv.Kind != KindArray {
		return Value{}, fmt.Errorf("expr: Sum: child did not produce an array: %w", errs.ErrTypeMismatch)
	}
	return Value{Kind: KindScalar, Scalar: tv.Array.Sum()}, nil
}

func (s *Sum) Sensitivity() (float64, error) { return s.child.Sensitivity() }

func (s *Sum) IsDP() bool { return s.child.IsDP() }

func (s *Sum) DP(epsilon float64) (Value, error) {
	if s.child.IsDP() {
		return s.True()
	}
	tv, err := s.True()
	if err != nil {
		return Value{}, err
	}
	sens, err := s.Sensitivity()
	if err != nil {
		return Value{}, err
	}
	out, err := s.sumType.DP(tv.Scalar, sens, epsilon)
	if err != nil {
		return Value{}, err
	}
	return Value{Kind: KindScalar, Scalar: out}, nil
}

var _ Expression = (*Sum)(nil)
