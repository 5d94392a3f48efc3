// Copyright ©2014 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expr

import (
	"errors"
	"testing"

	"github.com/kiprotect/dwork/dptype"
	"github.com/kiprotect/dwork/errs"
	"github.com/kiprotect/dwork/table"
)

// fakeDataset is a minimal DatasetView for testing expr in isolation,
// without depending on the dataset package (which itself depends on expr).
type fakeDataset struct {
	types  map[string]dptype.Type
	values map[string]table.Column
	length int
}

func (f *fakeDataset) ColumnType(name string) (dptype.Type, error) {
	t, ok := f.types[name]
	if !ok {
		return nil, errs.ErrSchemaMismatch
	}
	return t, nil
}

func (f *fakeDataset) ColumnValues(name string) (table.Column, error) {
	c, ok := f.values[name]
	if !ok {
		return table.Column{}, errs.ErrSchemaMismatch
	}
	return c, nil
}

func (f *fakeDataset) Len() int { return f.length }

func newFakeDataset() *fakeDataset {
	return &fakeDataset{
		types: map[string]dptype.Type{
			"Weight": dptype.NewInteger(0, 200),
		},
		values: map[string]table.Column{
			"Weight": table.NewColumn([]float64{10, 20, 30, 40}),
		},
		length: 4,
	}
}

func TestConstantSensitivityIsZero(t *testing.T) {
	c := ConstInt(5)
	s, err := c.Sensitivity()
	if err != nil {
		t.Fatalf("Sensitivity: %v", err)
	}
	if s != 0 {
		t.Errorf("Sensitivity() = %v, want 0", s)
	}
	if c.IsDP() {
		t.Errorf("IsDP() = true, want false")
	}
}

func TestConstantDefaultBoundsNotTight(t *testing.T) {
	c := ConstFloat(1.0)
	f, ok := c.Type().(dptype.Float)
	if !ok {
		t.Fatalf("Type() = %T, want dptype.Float", c.Type())
	}
	if f.Min() >= 0 {
		t.Errorf("ConstFloat(1.0).Type().Min() = %v, want < 0 (unbounded default, not a tight [1,1])", f.Min())
	}
}

func TestAttributeSensitivityIsColumnRange(t *testing.T) {
	ds := newFakeDataset()
	a, err := NewAttribute(ds, "Weight")
	if err != nil {
		t.Fatalf("NewAttribute: %v", err)
	}
	s, err := a.Sensitivity()
	if err != nil {
		t.Fatalf("Sensitivity: %v", err)
	}
	if s != 200 {
		t.Errorf("Sensitivity() = %v, want 200", s)
	}
}

func TestAttributeUnknownColumnFails(t *testing.T) {
	ds := newFakeDataset()
	_, err := NewAttribute(ds, "Nope")
	if !errors.Is(err, errs.ErrSchemaMismatch) {
		t.Errorf("got %v, want ErrSchemaMismatch", err)
	}
}

func TestAttributeDPNotReleasable(t *testing.T) {
	ds := newFakeDataset()
	a, err := NewAttribute(ds, "Weight")
	if err != nil {
		t.Fatalf("NewAttribute: %v", err)
	}
	_, err = a.DP(0.5)
	if !errors.Is(err, errs.ErrNotReleasable) {
		t.Errorf("got %v, want ErrNotReleasable", err)
	}
}

func TestSumTrueMatchesColumnSum(t *testing.T) {
	ds := newFakeDataset()
	a, err := NewAttribute(ds, "Weight")
	if err != nil {
		t.Fatalf("NewAttribute: %v", err)
	}
	s, err := NewSum(a)
	if err != nil {
		t.Fatalf("NewSum: %v", err)
	}
	v, err := s.True()
	if err != nil {
		t.Fatalf("True: %v", err)
	}
	if v.Scalar != 100 {
		t.Errorf("True() = %v, want 100", v.Scalar)
	}
}

func TestAddTypeMismatchOnCategorical(t *testing.T) {
	ds := newFakeDataset()
	weight, err := NewAttribute(ds, "Weight")
	if err != nil {
		t.Fatalf("NewAttribute: %v", err)
	}
	bad := constantType{typ: dptype.Categorical{}}
	if _, err := NewAdd(weight, bad); !errors.Is(err, errs.ErrTypeMismatch) {
		t.Errorf("got %v, want ErrTypeMismatch", err)
	}
}

// constantType is a minimal Expression stub exposing an arbitrary type,
// used only to exercise typeCheck's TypeMismatch path against a
// non-numeric operand.
type constantType struct {
	typ dptype.Type
}

func (c constantType) Type() dptype.Type { return c.typ }
func (c constantType) True() (Value, error) { return Value{}, nil }
func (c constantType) Sensitivity() (float64, error) { return 0, nil }
func (c constantType) IsDP() bool { return false }
func (c constantType) DP(float64) (Value, error) { return Value{}, nil }

var _ Expression = constantType{}

func TestConditionTrueProducesMask(t *testing.T) {
	ds := newFakeDataset()
	weight, err := NewAttribute(ds, "Weight")
	if err != nil {
		t.Fatalf("NewAttribute: %v", err)
	}
	cond := NewCondition(weight, GT, 15)
	v, err := cond.True()
	if err != nil {
		t.Fatalf("True: %v", err)
	}
	if v.Kind != KindMask {
		t.Fatalf("Kind = %v, want KindMask", v.Kind)
	}
	if v.Mask.Count() != 3 {
		t.Errorf("Mask.Count() = %d, want 3", v.Mask.Count())
	}
}

func TestConditionNotReleasable(t *testing.T) {
	ds := newFakeDataset()
	weight, err := NewAttribute(ds, "Weight")
	if err != nil {
		t.Fatalf("NewAttribute: %v", err)
	}
	cond := NewCondition(weight, GT, 15)
	_, err = cond.DP(0.5)
	if !errors.Is(err, errs.ErrNotReleasable) {
		t.Errorf("got %v, want ErrNotReleasable", err)
	}
}

func TestLengthSensitivityIsOne(t *testing.T) {
	ds := newFakeDataset()
	l := NewLength(ds)
	s, err := l.Sensitivity()
	if err != nil {
		t.Fatalf("Sensitivity: %v", err)
	}
	if s != 1 {
		t.Errorf("Sensitivity() = %v, want 1", s)
	}
	v, err := l.True()
	if err != nil {
		t.Fatalf("True: %v", err)
	}
	if v.Scalar != 4 {
		t.Errorf("True() = %v, want 4", v.Scalar)
	}
}
