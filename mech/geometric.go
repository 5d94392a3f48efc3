// Copyright ©2014 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mech

import (
	"math"
	"math/rand"
)

// Geometric draws noise from the (optionally symmetric) two-sided
// geometric distribution, the integer analogue of the Laplace mechanism.
type Geometric struct {
	// Epsilon is the privacy-loss parameter. Must be greater than 0.
	Epsilon float64

	// Symmetric selects the two-sided geometric distribution. If false,
	// only non-negative magnitudes are returned.
	Symmetric bool

	// Src is the entropy source. If nil, the package-level global
	// source is used.
	Src *rand.Rand
}

// Sample returns an integer draw. With probability (1-e^-ε)/(1+e^-ε) when
// Symmetric (else 1-e^-ε) it returns 0. Otherwise it samples a magnitude
// k = ceil(ln(1-v) / ln(p)) with p = e^-ε and v ~ U(0,1), signing it
// uniformly when Symmetric.
func (g Geometric) Sample() int64 {
	rnd := source(g.Src)
	p := math.Exp(-g.Epsilon)

	if g.Symmetric {
		if rnd.Float64() < (1-p)/(1+p) {
			return 0
		}
	} else if rnd.Float64() > p {
		return 0
	}

	v := 1.0 - p + p*rnd.Float64()
	k := math.Log(1-v) / math.Log(p)
	sign := int64(1)
	if g.Symmetric && rnd.Float64() < 0.5 {
		sign = -1
	}
	return sign * int64(k)
}
