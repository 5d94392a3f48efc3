// Copyright ©2014 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mech

import (
	"math"
	"math/rand"
)

// Laplace draws zero-mean Laplace noise scaled by 1/Epsilon. It is the
// calibration mechanism for real-valued queries: adding a Laplace(0, s/ε)
// draw to a query of sensitivity s yields an ε-differentially private
// release.
type Laplace struct {
	// Epsilon is the privacy-loss parameter. Must be greater than 0.
	Epsilon float64

	// Src is the entropy source. If nil, the package-level global
	// source is used.
	Src *rand.Rand
}

// Sample returns a draw from Laplace(0, 1/Epsilon), implemented as a
// signed exponential: draw u in [0,1) uniformly, compute -ln(1-u)/ε, and
// flip the sign with probability 1/2.
func (l Laplace) Sample() float64 {
	rnd := source(l.Src)
	if rnd.Float64() > 0.5 {
		return exponential(l.Epsilon, rnd)
	}
	return -exponential(l.Epsilon, rnd)
}

// exponential draws from the one-sided exponential distribution with
// rate epsilon, used as the building block for Laplace noise.
func exponential(epsilon float64, rnd *rand.Rand) float64 {
	return -math.Log(1-rnd.Float64()) / epsilon
}
