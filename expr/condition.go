// Copyright ©2014 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expr

import (
	"fmt"

	"github.com/kiprotect/dwork/dptype"
	"github.com/kiprotect/dwork/errs"
	"github.com/kiprotect/dwork/table"
)

// CompareOp names a comparison operator usable to build a Condition.
type CompareOp int

const (
	GT CompareOp = iota
	LT
	GE
	LE
	EQ
	NE
)

func (o CompareOp) String() string {
	switch o {
	case GT:
		return ">"
	case LT:
		return "<"
	case GE:
		return ">="
	case LE:
		return "<="
	case EQ:
		return "=="
	case NE:
		return "!="
	default:
		return "?"
	}
}

// Condition is produced by comparing an Attribute against a literal. Its
// type is Array(Boolean); it is never itself released as a DP value —
// conditions feed filter indexing only (spec.md §4.D).
type Condition struct {
	attr    *Attribute
	op      CompareOp
	operand float64
}

// NewCondition builds attr <op> operand.
func NewCondition(attr *Attribute, op CompareOp, operand float64) *Condition {
	return &Condition{attr: attr, op: op, operand: operand}
}

func (c *Condition) Type() dptype.Type { return dptype.NewArray(booleanElem{}) }

func (c *Condition) String() string { return fmt.Sprintf("(%v %v %v)", c.attr, c.op, c.operand) }

// booleanElem represents Boolean as a degenerate [0, 1] numeric so it
// can sit in an Array's element slot: dptype.Array requires a Numeric
// element (spec.md's closed type algebra has no separate Array-of-any),
// while the source itself builds Array(Boolean()) for a condition's type
// despite its own Array constructor checking for Numeric — one of the
// cross-revision inconsistencies spec.md's Design Notes call out.
// Conditions never feed this type into arithmetic; True() returns the
// mask directly.
type booleanElem struct{}

func (booleanElem) isType()    {}
func (booleanElem) isNumeric() {}
func (booleanElem) String() string { return "Boolean" }
func (booleanElem) Min() float64   { return 0 }
func (booleanElem) Max() float64   { return 1 }
func (booleanElem) Range() float64 { return 1 }
func (booleanElem) AbsMin() float64 { return 0 }
func (booleanElem) AbsMax() float64 { return 1 }
func (booleanElem) DP(value, sensitivity, epsilon float64) (float64, error) {
	return 0, errs.ErrNotImplemented
}

func (c *Condition) True() (Value, error) {
	col, err := c.attr.ds.ColumnValues(c.attr.column)
	if err != nil {
		return Value{}, err
	}
	var mask table.Mask
	switch c.op {
	case GT:
		mask = col.GT(c.operand)
	case LT:
		mask = col.LT(c.operand)
	case GE:
		mask = col.GE(c.operand)
	case LE:
		mask = col.LE(c.operand)
	case EQ:
		mask = col.EQ(c.operand)
	case NE:
		mask = col.NE(c.operand)
	default:
		return Value{}, fmt.Errorf("expr: condition: unknown operator %v", c.op)
	}
	return Value{Kind: KindMask, Mask: mask}, nil
}

func (c *Condition) Sensitivity() (float64, error) { return 0, nil }

func (c *Condition) IsDP() bool { return false }

// DP always fails: conditions are never released, only used to filter.
func (c *Condition) DP(epsilon float64) (Value, error) {
	return Value{}, fmt.Errorf("expr: condition: %w", errs.ErrNotReleasable)
}

var _ Expression = (*Condition)(nil)
