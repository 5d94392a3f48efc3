// Copyright ©2014 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dataset adapts a schema and a backing table into the indexing
// surface the expression algebra queries against: column lookup by name,
// row filtering by condition, row count, and (for GroupedDataset) group-by
// enumeration with small-group suppression (spec.md §4.E).
package dataset

import (
	"fmt"

	"github.com/kiprotect/dwork/dptype"
	"github.com/kiprotect/dwork/errs"
	"github.com/kiprotect/dwork/expr"
	"github.com/kiprotect/dwork/schema"
	"github.com/kiprotect/dwork/table"
)

// Dataset pairs a Schema with a backing Table. It satisfies
// expr.DatasetView structurally, without expr importing this package
// (spec.md §9 "shared dataset references").
type Dataset struct {
	schema *schema.Schema
	table  *table.Table
}

// New builds a Dataset from a schema and a backing table. The table's
// column set need not cover every schema column: only columns actually
// referenced by a query are resolved, matching the source's lazy
// attribute binding.
func New(s *schema.Schema, t *table.Table) *Dataset {
	return &Dataset{schema: s, table: t}
}

// ColumnType implements expr.DatasetView.
func (d *Dataset) ColumnType(name string) (dptype.Type, error) {
	return d.schema.Lookup(name)
}

// ColumnValues implements expr.DatasetView.
func (d *Dataset) ColumnValues(name string) (table.Column, error) {
	return d.table.Column(name)
}

// Len implements expr.DatasetView, reporting the dataset's row count.
func (d *Dataset) Len() int { return d.table.Len() }

// Column binds column as an expression leaf, failing if it is absent from
// the schema or is not a numeric column (spec.md §4.D, Attribute).
func (d *Dataset) Column(column string) (*expr.Attribute, error) {
	return expr.NewAttribute(d, column)
}

// Length returns the dataset's row count as a releasable expression.
func (d *Dataset) Length() *expr.Length {
	return expr.NewLength(d)
}

// Where builds a row-filtered view of the dataset selecting only the rows
// where cond holds. cond must have been built against this same dataset;
// passing a condition built against another dataset or table produces
// undefined results, matching spec.md §4.E's scoping assumption that a
// Condition is only ever applied to the dataset it was derived from.
func (d *Dataset) Where(cond *expr.Condition) (*Dataset, error) {
	v, err := cond.True()
	if err != nil {
		return nil, err
	}
	if v.Kind != expr.KindMask {
		return nil, fmt.Errorf("dataset: condition did not produce a mask: %w", errs.ErrTypeMismatch)
	}
	return &Dataset{schema: d.schema, table: d.table.Select(v.Mask)}, nil
}

// Index implements spec.md §4.E's `ds[key]` indexing operation in its two
// supported forms: a string column name (returning an *expr.Attribute) or
// an *expr.Condition (returning a row-filtered *Dataset). Any other key
// kind is rejected with ErrUnsupportedIndex, matching the source's
// explicit refusal of arbitrary index types.
func (d *Dataset) Index(key any) (any, error) {
	switch k := key.(type) {
	case string:
		return d.Column(k)
	case *expr.Condition:
		return d.Where(k)
	default:
		return nil, fmt.Errorf("dataset: index %v (%T): %w", key, key, errs.ErrUnsupportedIndex)
	}
}

var _ expr.DatasetView = (*Dataset)(nil)
