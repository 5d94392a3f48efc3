// Copyright ©2014 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package expr implements the expression algebra: a tree of polymorphic
// nodes — constants, column references, binary operators, aggregations
// and filter conditions — each of which computes, compositionally, a
// type, a true value, a sensitivity and a differentially private
// release. See spec.md §4.D.
package expr

import (
	"fmt"

	"github.com/kiprotect/dwork/dptype"
	"github.com/kiprotect/dwork/table"
)

// Kind tags the payload carried by a Value.
type Kind int

const (
	// KindScalar values carry a single float64 in Scalar.
	KindScalar Kind = iota
	// KindArray values carry a table.Column in Array.
	KindArray
	// KindMask values carry a table.Mask in Mask, produced only by
	// Condition nodes.
	KindMask
)

// Value is the tagged payload returned by Expression.True: either a
// scalar, a backing array column, or (for conditions only) a boolean
// mask. Expression nodes never interpret a backing column's storage
// directly — they call the documented Column operations (spec.md §9).
type Value struct {
	Kind   Kind
	Scalar float64
	Array  table.Column
	Mask   table.Mask
}

func (v Value) String() string {
	switch v.Kind {
	case KindScalar:
		return fmt.Sprintf("%v", v.Scalar)
	case KindArray:
		return fmt.Sprintf("Array(len=%d)", v.Array.Len())
	case KindMask:
		return fmt.Sprintf("Mask(len=%d, count=%d)", v.Mask.Len(), v.Mask.Count())
	default:
		return "<invalid value>"
	}
}

// Expression is implemented by every node in the expression tree:
// Constant, Attribute, Length, Sum, the binary operators and Condition.
// Nodes are immutable after construction; re-evaluation is idempotent
// modulo the non-determinism of the noise sampler inside DP.
type Expression interface {
	// Type reports the expression's value-range-carrying type.
	Type() dptype.Type

	// True computes the exact, non-private value of the expression.
	True() (Value, error)

	// Sensitivity reports the maximum change in True() under a single
	// record add/remove.
	Sensitivity() (float64, error)

	// IsDP reports whether True() already satisfies differential
	// privacy — true for compound nodes iff true for every operand.
	IsDP() bool

	// DP returns a differentially private release of the expression
	// under privacy budget epsilon.
	DP(epsilon float64) (Value, error)
}

// DatasetView is the minimal capability an Attribute, Length or
// Condition needs from its parent dataset: resolving a column's declared
// type and true values, and reporting row count. Datasets implement this
// interface structurally; expr never imports the dataset package,
// keeping the dependency direction the other way around (spec.md §9,
// "shared dataset references").
type DatasetView interface {
	ColumnType(name string) (dptype.Type, error)
	ColumnValues(name string) (table.Column, error)
	Len() int
}

// ToExpression lifts a Go value to an Expression. Supported kinds are
// int, int64, float64 and Expression itself (returned unchanged). Any other
// kind is a programmer error and panics, matching spec.md §7's policy
// that malformed trees never escape the builder — a literal's kind is
// known at compile time in Go, unlike the source's runtime isinstance
// check.
func ToExpression(v any) Expression {
	switch x := v.(type) {
	case Expression:
		return x
	case int64:
		return ConstInt(x)
	case int:
		return ConstInt(int64(x))
	case float64:
		return ConstFloat(x)
	default:
		panic(fmt.Sprintf("expr: cannot lift %T to an Expression", v))
	}
}
