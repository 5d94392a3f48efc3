// Copyright ©2014 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dwork implements a differentially private query engine: a
// schema-typed dataset, an expression algebra over its columns that
// tracks per-node sensitivity alongside its true value, and the Laplace
// and symmetric-geometric mechanisms (package mech) used to release a
// noised value under a caller-chosen privacy budget epsilon.
//
// A query is built by indexing a dataset.Dataset with a column name to
// get an *expr.Attribute, combining attributes and constants with the
// expr package's binary operators and Sum/Length, and finally calling
// DP(epsilon) on the resulting expression. Every node in that tree
// reports its own Type, True value, Sensitivity and whether it is
// already differentially private, so sensitivity never has to be
// tracked by the caller.
//
// Subpackages:
//
//	dptype   the closed set of value-type descriptors (Integer, Float,
//	         Array, Boolean, Categorical) and their arithmetic
//	expr     the expression tree: constants, attributes, binary
//	         operators, Sum, Length and filter Conditions
//	table    an in-memory columnar backing store for Dataset
//	schema   the column name -> dptype.Type declaration a Dataset is
//	         built against
//	dataset  Dataset and GroupedDataset, the query entry points
//	mech     the Laplace and symmetric-geometric noise mechanisms
//	errs     the sentinel errors returned across package boundaries
//	rr       an unimplemented randomized-response extension point
package dwork
