// Copyright ©2014 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rr is an extension point for randomized-response mechanisms,
// an alternative to the Laplace/geometric noise addition mech implements.
// It is intentionally unimplemented: spec.md's Non-goals exclude it, and
// original_source carries no randomized-response implementation to port
// from. The package exists only to give the extension a named, importable
// home with the signature a future implementation would fill in.
package rr

import "github.com/kiprotect/dwork/errs"

// RandomizedResponse reports a caller's true boolean answer with
// probability e^epsilon/(1+e^epsilon), and its negation otherwise — the
// standard randomized-response mechanism for a single binary question.
// Not implemented; always returns errs.ErrNotImplemented.
func RandomizedResponse(epsilon float64) (bool, error) {
	return false, errs.ErrNotImplemented
}
