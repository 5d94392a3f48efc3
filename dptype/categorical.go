// Copyright ©2014 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dptype

// Categorical represents categorical data. It carries no DP method: the
// source declares it without one, and the core reserves categorical
// release for the same randomized-response extension point as Boolean.
type Categorical struct{}

func (Categorical) isType() {}

func (Categorical) String() string { return "Categorical" }

var _ Type = Categorical{}
