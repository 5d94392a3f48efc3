// Copyright ©2014 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mech implements the noise mechanisms that calibrate a true
// value into a differentially private release: the Laplace mechanism
// for reals and the symmetric geometric mechanism for integers.
package mech

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	mrand "math/rand"
)

// global is the process-wide entropy source used whenever a mechanism's
// Src field is left nil. Tests swap it out with SetGlobalSource to get a
// deterministic sequence.
var global *mrand.Rand

// init seeds global from the OS's cryptographic entropy source
// (spec.md §5: "production code draws from a high-quality PRNG seeded
// from an OS entropy source at startup"). A time-seeded PRNG is
// guessable and collidable across processes started close together,
// which a DP noise mechanism cannot tolerate.
func init() {
	global = mrand.New(mrand.NewSource(seedFromOS()))
}

// seedFromOS reads a seed from crypto/rand.
func seedFromOS() int64 {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		panic(fmt.Sprintf("mech: reading OS entropy source: %v", err))
	}
	return int64(binary.LittleEndian.Uint64(buf[:]))
}

// SetGlobalSource replaces the process-wide entropy source. Intended for
// tests that need a reproducible noise sequence; production code should
// leave the default in place.
func SetGlobalSource(src *mrand.Rand) {
	global = src
}

// source returns src if non-nil, else the package's global source,
// mirroring distuv's "if p.Source != nil" fallback idiom.
func source(src *mrand.Rand) *mrand.Rand {
	if src != nil {
		return src
	}
	return global
}
