// Copyright ©2014 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expr

import "github.com/kiprotect/dwork/dptype"

// Length is the row count of a dataset: an Integer of sensitivity 1
// under the add/remove neighbour model (spec.md §4.D).
type Length struct {
	ds DatasetView
}

// NewLength builds the row-count expression for ds.
func NewLength(ds DatasetView) *Length {
	return &Length{ds: ds}
}

func (l *Length) Type() dptype.Type { return dptype.NewInteger(0, dptype.MaxInt) }

func (l *Length) String() string { return "Length()" }

func (l *Length) True() (Value, error) {
	return Value{Kind: KindScalar, Scalar: float64(l.ds.Len())}, nil
}

func (l *Length) Sensitivity() (float64, error) { return 1, nil }

func (l *Length) IsDP() bool { return false }

func (l *Length) DP(epsilon float64) (Value, error) {
	tv, err := l.True()
	if err != nil {
		return Value{}, err
	}
	typ := l.Type().(dptype.Integer)
	out, err := typ.DP(tv.Scalar, 1, epsilon)
	if err != nil {
		return Value{}, err
	}
	return Value{Kind: KindScalar, Scalar: out}, nil
}

var _ Expression = (*Length)(nil)
