// Copyright ©2014 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package schema

import (
	"errors"
	"testing"

	"github.com/kiprotect/dwork/dptype"
	"github.com/kiprotect/dwork/errs"
)

func TestLookupKnownColumn(t *testing.T) {
	s, err := New([]Column{
		{Name: "Weight", Type: dptype.NewInteger(0, 200)},
	}, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	typ, err := s.Lookup("Weight")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if typ.(dptype.Integer).MaxInt() != 200 {
		t.Errorf("got %v, want max 200", typ)
	}
}

func TestLookupUnknownColumn(t *testing.T) {
	s, err := New(nil, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	_, err = s.Lookup("Nope")
	if !errors.Is(err, errs.ErrSchemaMismatch) {
		t.Errorf("got %v, want ErrSchemaMismatch", err)
	}
}

func TestAliasResolvesToSameType(t *testing.T) {
	s, err := New(
		[]Column{{Name: "wt", Type: dptype.NewInteger(0, 200)}},
		map[string]string{"wt": "Weight"},
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := s.Lookup("Weight"); err != nil {
		t.Errorf("Lookup(alias): %v", err)
	}
}

func TestDanglingAliasFailsConstruction(t *testing.T) {
	_, err := New(nil, map[string]string{"wt": "Weight"})
	if !errors.Is(err, errs.ErrSchemaMismatch) {
		t.Errorf("got %v, want ErrSchemaMismatch", err)
	}
}
