// Copyright ©2014 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dptype

import "github.com/kiprotect/dwork/errs"

// Boolean represents boolean data. DP release for Boolean is reserved for
// randomized response (package rr) and is not implemented in the core.
type Boolean struct{}

func (Boolean) isType() {}

func (Boolean) String() string { return "Boolean" }

// DP is not implemented; randomized response lives in the rr package and
// is never wired into the core expression algebra.
func (Boolean) DP(value, sensitivity, epsilon float64) (float64, error) {
	return 0, errs.ErrNotImplemented
}

var _ Type = Boolean{}
