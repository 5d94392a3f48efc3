// Copyright ©2014 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mech

import "testing"

func TestLaplaceNonDegenerate(t *testing.T) {
	l := Laplace{Epsilon: 0.5}
	seen := map[float64]bool{}
	for i := 0; i < 10; i++ {
		seen[l.Sample()] = true
	}
	if len(seen) < 3 {
		t.Errorf("got %d distinct draws in 10 trials, want >= 3", len(seen))
	}
}

func TestGeometricNonDegenerate(t *testing.T) {
	g := Geometric{Epsilon: 0.5, Symmetric: true}
	seen := map[int64]bool{}
	for i := 0; i < 10; i++ {
		seen[g.Sample()] = true
	}
	if len(seen) < 2 {
		t.Errorf("got %d distinct draws in 10 trials, want >= 2", len(seen))
	}
}

func TestGeometricAsymmetricNeverNegative(t *testing.T) {
	g := Geometric{Epsilon: 0.5, Symmetric: false}
	for i := 0; i < 50; i++ {
		if v := g.Sample(); v < 0 {
			t.Errorf("asymmetric geometric draw %d is negative", v)
		}
	}
}
