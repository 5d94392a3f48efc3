// Copyright ©2014 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package table implements a reference in-memory columnar backing store
// for a Dataset: a column-oriented table of named float64 columns, plus
// the row-count, selection and group-by enumeration the dataset adaptor
// requires of any backing table (spec.md §6). Numeric reductions and
// elementwise arithmetic are built on gonum.org/v1/gonum/floats, the same
// way the expression algebra treats a backing column as an opaque vector
// (spec.md §9 "Backing-table polymorphism").
package table

import (
	"fmt"
	"sort"
)

// Table is a column-oriented, row-aligned collection of named columns.
// All columns in a Table share the same length.
type Table struct {
	columns map[string]Column
	rows    int
}

// New builds a Table from named columns. All columns must have equal
// length; New panics otherwise, since a ragged table is a construction
// error, not a query-time one.
func New(columns map[string]Column) *Table {
	rows := -1
	for name, c := range columns {
		if rows == -1 {
			rows = c.Len()
		} else if c.Len() != rows {
			panic(fmt.Sprintf("table: column %q has length %d, want %d", name, c.Len(), rows))
		}
	}
	if rows == -1 {
		rows = 0
	}
	cp := make(map[string]Column, len(columns))
	for k, v := range columns {
		cp[k] = v
	}
	return &Table{columns: cp, rows: rows}
}

// Len reports the row count.
func (t *Table) Len() int { return t.rows }

// Column returns the named column, or an error if it is not present.
func (t *Table) Column(name string) (Column, error) {
	c, ok := t.columns[name]
	if !ok {
		return Column{}, fmt.Errorf("table: unknown column %q", name)
	}
	return c, nil
}

// Select returns a new Table containing only the rows where mask is true,
// sharing no storage with the receiver.
func (t *Table) Select(mask Mask) *Table {
	out := make(map[string]Column, len(t.columns))
	for name, c := range t.columns {
		out[name] = c.Select(mask)
	}
	return New(out)
}

// Group is one partition produced by GroupBy: the key tuple (the grouped
// columns' shared values) and the row indices belonging to the group.
type Group struct {
	Key  []float64
	rows []int
}

// GroupBy partitions the table's rows by the tuple of values in the named
// columns, returning groups sorted by the string form of their key
// (fmt.Sprint, compared lexically, not numerically) for deterministic
// iteration order (grounded on gonum/stat's use of sort for reproducible
// output).
func (t *Table) GroupBy(keys []string) ([]Group, error) {
	cols := make([]Column, len(keys))
	for i, k := range keys {
		c, err := t.Column(k)
		if err != nil {
			return nil, err
		}
		cols[i] = c
	}

	index := map[string]*Group{}
	var order []string
	for row := 0; row < t.rows; row++ {
		key := make([]float64, len(cols))
		for i, c := range cols {
			key[i] = c.values[row]
		}
		k := fmt.Sprint(key)
		g, ok := index[k]
		if !ok {
			g = &Group{Key: key}
			index[k] = g
			order = append(order, k)
		}
		g.rows = append(g.rows, row)
	}

	sort.Strings(order)
	groups := make([]Group, len(order))
	for i, k := range order {
		groups[i] = *index[k]
	}
	return groups, nil
}

// Rows returns the row indices belonging to the group.
func (g Group) Rows() []int { return g.rows }

// Subtable returns a Table restricted to this group's rows.
func (t *Table) Subtable(g Group) *Table {
	mask := make(Mask, t.rows)
	for _, r := range g.rows {
		mask[r] = true
	}
	return t.Select(mask)
}
