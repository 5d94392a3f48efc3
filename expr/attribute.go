// Copyright ©2014 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expr

import (
	"fmt"
	"log/slog"

	"github.com/kiprotect/dwork/dptype"
	"github.com/kiprotect/dwork/errs"
)

// Attribute is a named column viewed as an expression leaf. Its
// sensitivity is the neighbour-swap bound on the column's declared
// range; it cannot be released directly (arrays are not DP values until
// a Sum collapses them).
type Attribute struct {
	ds     DatasetView
	column string
	elem   dptype.Numeric
}

// NewAttribute binds column on ds, resolving its declared type eagerly
// so a misspelled column name fails at construction rather than at
// query time.
func NewAttribute(ds DatasetView, column string) (*Attribute, error) {
	t, err := ds.ColumnType(column)
	if err != nil {
		return nil, err
	}
	elem, ok := t.(dptype.Numeric)
	if !ok {
		slog.Debug("expr: attribute type mismatch", "column", column, "type", t)
		return nil, fmt.Errorf("expr: attribute %q: type %s: %w", column, t, errs.ErrTypeMismatch)
	}
	return &Attribute{ds: ds, column: column, elem: elem}, nil
}

// Column reports the bound column name.
func (a *Attribute) Column() string { return a.column }

func (a *Attribute) String() string { return fmt.Sprintf("Attribute(%s)", a.column) }

func (a *Attribute) Type() dptype.Type { return dptype.NewArray(a.elem) }

func (a *Attribute) True() (Value, error) {
	col, err := a.ds.ColumnValues(a.column)
	if err != nil {
		return Value{}, err
	}
	return Value{Kind: KindArray, Array: col}, nil
}

// Sensitivity is the attribute's declared range: the maximum change in
// any single value under a neighbour swap.
func (a *Attribute) Sensitivity() (float64, error) {
	return a.elem.Range(), nil
}

func (a *Attribute) IsDP() bool { return false }

// DP always fails: an Array cannot be released directly. Callers must
// wrap the attribute in Sum first.
func (a *Attribute) DP(epsilon float64) (Value, error) {
	return Value{}, fmt.Errorf("expr: attribute %q: %w", a.column, errs.ErrNotReleasable)
}

var _ Expression = (*Attribute)(nil)
