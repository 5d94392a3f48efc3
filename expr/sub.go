// Copyright ©2014 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expr

import (
	"fmt"

	"github.com/kiprotect/dwork/dptype"
	"github.com/kiprotect/dwork/table"
)

// Sub represents the difference of two expressions.
type Sub struct {
	binary
}

// NewSub builds left - right.
func NewSub(left, right any) (*Sub, error) {
	l, r := ToExpression(left), ToExpression(right)
	b, err := typeCheck(dptype.Sub, l, r)
	if err != nil {
		return nil, err
	}
	return &Sub{binary: b}, nil
}

func (s *Sub) Sensitivity() (float64, error) { return maxSensitivity(s.left, s.right) }

func (s *Sub) String() string { return fmt.Sprintf("(%v - %v)", s.left, s.right) }

func (s *Sub) True() (Value, error) {
	lv, err := s.left.True()
	if err != nil {
		return Value{}, err
	}
	rv, err := s.right.True()
	if err != nil {
		return Value{}, err
	}
	return applyValueOp("Sub", valueOp{
		scalarScalar: func(l, r float64) float64 { return l - r },
		arrayArray:   func(l, r table.Column) table.Column { return l.Sub(r) },
		arrayScalar:  func(l table.Column, r float64) table.Column { return l.SubScalar(r) },
		scalarArray:  func(l float64, r table.Column) table.Column { return r.ScalarSub(l) },
	}, lv, rv)
}

func (s *Sub) DP(epsilon float64) (Value, error) {
	return nodeDP(s.typ, s.IsDP(), s.True, s.Sensitivity, epsilon)
}

var _ Expression = (*Sub)(nil)
