// Copyright ©2014 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package errs collects the sentinel error kinds raised by the dwork
// query engine. Every failure surfaced by dptype, expr, schema or dataset
// wraps one of these with fmt.Errorf's %w verb, so callers can test for a
// kind with errors.Is regardless of the message attached at the call site.
package errs

import "errors"

var (
	// ErrTypeMismatch is raised when an operator is applied to a type it
	// cannot act on (e.g. Add on Categorical, or Sum on a non-Array).
	ErrTypeMismatch = errors.New("dwork: type mismatch")

	// ErrInfiniteSensitivity is raised when the reachable range of a
	// division's divisor straddles zero, so no finite sensitivity bound
	// exists.
	ErrInfiniteSensitivity = errors.New("dwork: infinite sensitivity")

	// ErrNotReleasable is raised when DP is called on a node whose type
	// cannot be released directly: an Array-valued node such as an
	// Attribute, an un-summed arithmetic result or a Condition's mask.
	// Boolean.DP reports ErrNotImplemented instead.
	ErrNotReleasable = errors.New("dwork: not releasable")

	// ErrUnsupportedIndex is raised when a dataset is indexed by
	// something that is neither a column name nor a Condition.
	ErrUnsupportedIndex = errors.New("dwork: unsupported index")

	// ErrSchemaMismatch is raised when a column name is absent from a
	// schema, either directly or through a dangling alias.
	ErrSchemaMismatch = errors.New("dwork: schema mismatch")

	// ErrNotImplemented marks a declared but intentionally unimplemented
	// extension point (randomized response for Boolean/Categorical DP).
	ErrNotImplemented = errors.New("dwork: not implemented")
)
