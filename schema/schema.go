// Copyright ©2014 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package schema declares the column-to-type mapping a Dataset is built
// against. A Schema is constructed once and read-only at query time,
// mirroring the Python source's class-level DataSchema declaration but
// expressed as an explicit, data-driven value rather than relying on a
// metaclass to collect attributes.
package schema

import (
	"fmt"
	"log/slog"

	"github.com/kiprotect/dwork/dptype"
	"github.com/kiprotect/dwork/errs"
)

// Column is a single (name, type) pair in a schema declaration.
type Column struct {
	Name string
	Type dptype.Type
}

// Schema is a finite, insertion-order-irrelevant mapping from column name
// to type descriptor, with an optional alias map duplicating entries
// under alternate keys.
type Schema struct {
	attributes map[string]dptype.Type
}

// New builds a Schema from an ordered list of columns and an alias map
// from internal name to external (alias) name. Aliases are resolved
// eagerly: a dangling alias (one pointing at a column not in columns)
// fails construction with ErrSchemaMismatch, so malformed schemas never
// reach query time.
func New(columns []Column, aliases map[string]string) (*Schema, error) {
	attrs := make(map[string]dptype.Type, len(columns)+len(aliases))
	for _, c := range columns {
		attrs[c.Name] = c.Type
	}
	for internal, external := range aliases {
		t, ok := attrs[internal]
		if !ok {
			slog.Debug("schema: dangling alias", "internal", internal, "external", external)
			return nil, fmt.Errorf("schema: alias %q -> %q: column %q: %w", internal, external, internal, errs.ErrSchemaMismatch)
		}
		attrs[external] = t
	}
	return &Schema{attributes: attrs}, nil
}

// Lookup returns the type declared for column, or ErrSchemaMismatch if
// the column (and any alias pointing at it) is unknown.
func (s *Schema) Lookup(column string) (dptype.Type, error) {
	t, ok := s.attributes[column]
	if !ok {
		return nil, fmt.Errorf("schema: column %q: %w", column, errs.ErrSchemaMismatch)
	}
	return t, nil
}

// Columns returns the set of column names declared in the schema,
// including aliases, in no particular order.
func (s *Schema) Columns() []string {
	out := make([]string, 0, len(s.attributes))
	for name := range s.attributes {
		out = append(out, name)
	}
	return out
}
