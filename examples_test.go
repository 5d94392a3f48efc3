// Copyright ©2014 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dwork_test

import (
	"errors"
	"testing"

	"github.com/kiprotect/dwork/dataset"
	"github.com/kiprotect/dwork/dptype"
	"github.com/kiprotect/dwork/errs"
	"github.com/kiprotect/dwork/expr"
	"github.com/kiprotect/dwork/schema"
	"github.com/kiprotect/dwork/table"
)

// exampleDataset builds a 740-row dataset with Weight and Height columns
// bounded to [0, 200] and an Age column bounded to [0, 120], matching the
// shape spec.md §8 measures its end-to-end scenarios against. Values are
// generated deterministically so every scenario's expectations below are
// derived from the same construction, not hand-copied magic numbers.
func exampleDataset(t *testing.T) *dataset.Dataset {
	t.Helper()
	const rows = 740
	weight := make([]float64, rows)
	height := make([]float64, rows)
	age := make([]float64, rows)
	for i := 0; i < rows; i++ {
		weight[i] = float64((i * 79) % 201)
		height[i] = float64((i * 131) % 201)
		age[i] = float64((i * 17) % 121)
	}

	s, err := schema.New([]schema.Column{
		{Name: "Weight", Type: dptype.NewInteger(0, 200)},
		{Name: "Height", Type: dptype.NewInteger(0, 200)},
		{Name: "Age", Type: dptype.NewInteger(0, 120)},
	}, nil)
	if err != nil {
		t.Fatalf("schema.New: %v", err)
	}

	tab := table.New(map[string]table.Column{
		"Weight": table.NewColumn(weight),
		"Height": table.NewColumn(height),
		"Age":    table.NewColumn(age),
	})

	return dataset.New(s, tab)
}

func withinRange(t *testing.T, name string, got, lo, hi float64) {
	t.Helper()
	if got < lo || got > hi {
		t.Errorf("%s = %v, want within [%v, %v]", name, got, lo, hi)
	}
}

func distinctDraws(t *testing.T, name string, draw func() (float64, error), n int) int {
	t.Helper()
	seen := map[float64]bool{}
	for i := 0; i < n; i++ {
		v, err := draw()
		if err != nil {
			t.Fatalf("%s: draw %d: %v", name, i, err)
		}
		seen[v] = true
	}
	return len(seen)
}

// TestS1SimpleSum: (ds["Weight"] + ds["Height"]).sum().
func TestS1SimpleSum(t *testing.T) {
	ds := exampleDataset(t)
	weight, err := ds.Column("Weight")
	if err != nil {
		t.Fatalf("Column(Weight): %v", err)
	}
	height, err := ds.Column("Height")
	if err != nil {
		t.Fatalf("Column(Height): %v", err)
	}
	add, err := expr.NewAdd(weight, height)
	if err != nil {
		t.Fatalf("NewAdd: %v", err)
	}
	sum, err := expr.NewSum(add)
	if err != nil {
		t.Fatalf("NewSum: %v", err)
	}

	if sum.IsDP() {
		t.Errorf("IsDP() = true, want false")
	}

	wv, _ := weight.True()
	hv, _ := height.True()
	want := 0.0
	for i := 0; i < wv.Array.Len(); i++ {
		want += wv.Array.Values()[i] + hv.Array.Values()[i]
	}

	tv, err := sum.True()
	if err != nil {
		t.Fatalf("True: %v", err)
	}
	if tv.Scalar != want {
		t.Errorf("True() = %v, want %v", tv.Scalar, want)
	}

	sens, err := sum.Sensitivity()
	if err != nil {
		t.Fatalf("Sensitivity: %v", err)
	}
	// Add/Sub sensitivity is max(ls, rs) (spec.md §4.D's operator table);
	// both Weight and Height have range 200, so the sum's per-record
	// sensitivity is 200, not the two ranges' total.
	if sens != 200 {
		t.Errorf("Sensitivity() = %v, want 200", sens)
	}

	n := distinctDraws(t, "S1", func() (float64, error) {
		v, err := sum.DP(0.5)
		return v.Scalar, err
	}, 10)
	if n < 3 {
		t.Errorf("distinct DP draws = %d, want >= 3", n)
	}
}

// TestS2ComplexExpression: (1.0 + ds["Weight"] - 2.0*ds["Height"]).sum().
func TestS2ComplexExpression(t *testing.T) {
	ds := exampleDataset(t)
	weight, err := ds.Column("Weight")
	if err != nil {
		t.Fatalf("Column(Weight): %v", err)
	}
	height, err := ds.Column("Height")
	if err != nil {
		t.Fatalf("Column(Height): %v", err)
	}

	one := expr.ConstFloat(1.0)
	two := expr.ConstFloat(2.0)

	scaledHeight, err := expr.NewMul(two, height)
	if err != nil {
		t.Fatalf("NewMul: %v", err)
	}
	added, err := expr.NewAdd(one, weight)
	if err != nil {
		t.Fatalf("NewAdd: %v", err)
	}
	sub, err := expr.NewSub(added, scaledHeight)
	if err != nil {
		t.Fatalf("NewSub: %v", err)
	}
	sum, err := expr.NewSum(sub)
	if err != nil {
		t.Fatalf("NewSum: %v", err)
	}

	wv, _ := weight.True()
	hv, _ := height.True()
	want := 0.0
	for i := 0; i < wv.Array.Len(); i++ {
		want += 1.0 + wv.Array.Values()[i] - 2.0*hv.Array.Values()[i]
	}

	tv, err := sum.True()
	if err != nil {
		t.Fatalf("True: %v", err)
	}
	if tv.Scalar != want {
		t.Errorf("True() = %v, want %v", tv.Scalar, want)
	}

	sens, err := sum.Sensitivity()
	if err != nil {
		t.Fatalf("Sensitivity: %v", err)
	}
	if sens != 400 {
		t.Errorf("Sensitivity() = %v, want 400 (dominated by the scaled Height term)", sens)
	}
}

// TestS3Mean: ds["Weight"].sum() / ds.len().
func TestS3Mean(t *testing.T) {
	ds := exampleDataset(t)
	weight, err := ds.Column("Weight")
	if err != nil {
		t.Fatalf("Column(Weight): %v", err)
	}
	sum, err := expr.NewSum(weight)
	if err != nil {
		t.Fatalf("NewSum: %v", err)
	}
	length := ds.Length()

	mean, err := expr.NewTrueDiv(sum, length)
	if err != nil {
		t.Fatalf("NewTrueDiv: %v", err)
	}

	wv, _ := weight.True()
	total := 0.0
	for _, v := range wv.Array.Values() {
		total += v
	}
	want := total / float64(ds.Len())

	tv, err := mean.True()
	if err != nil {
		t.Fatalf("True: %v", err)
	}
	if tv.Scalar != want {
		t.Errorf("True() = %v, want %v", tv.Scalar, want)
	}

	// Division sensitivity: (S+sS)/(n-sN) - S/n, with sS = 200 (the
	// Weight attribute's range) and sN = 1 (Length's sensitivity).
	sS, sN := 200.0, 1.0
	wantSens := (total+sS)/(float64(ds.Len())-sN) - total/float64(ds.Len())

	sens, err := mean.Sensitivity()
	if err != nil {
		t.Fatalf("Sensitivity: %v", err)
	}
	if sens != wantSens {
		t.Errorf("Sensitivity() = %v, want %v", sens, wantSens)
	}
}

// TestS4Filtering: ds[ds["Age"] > 30].
func TestS4Filtering(t *testing.T) {
	ds := exampleDataset(t)
	age, err := ds.Column("Age")
	if err != nil {
		t.Fatalf("Column(Age): %v", err)
	}
	cond := expr.NewCondition(age, expr.GT, 30)
	dsf, err := ds.Where(cond)
	if err != nil {
		t.Fatalf("Where: %v", err)
	}

	lenAll := ds.Length()
	lenFiltered := dsf.Length()

	allVal, err := lenAll.True()
	if err != nil {
		t.Fatalf("True: %v", err)
	}
	filteredVal, err := lenFiltered.True()
	if err != nil {
		t.Fatalf("True: %v", err)
	}

	av, _ := age.True()
	want := 0
	for _, v := range av.Array.Values() {
		if v > 30 {
			want++
		}
	}
	if filteredVal.Scalar != float64(want) {
		t.Errorf("filtered length = %v, want %v", filteredVal.Scalar, want)
	}
	if filteredVal.Scalar >= allVal.Scalar {
		t.Errorf("filtered length %v not strictly less than total %v", filteredVal.Scalar, allVal.Scalar)
	}
}

// TestS5InfiniteSensitivity: ds["Weight"].sum() / to_expr(1.0) must fail
// with InfiniteSensitivity because the Float constant divisor's declared
// bounds straddle zero.
func TestS5InfiniteSensitivity(t *testing.T) {
	ds := exampleDataset(t)
	weight, err := ds.Column("Weight")
	if err != nil {
		t.Fatalf("Column(Weight): %v", err)
	}
	sum, err := expr.NewSum(weight)
	if err != nil {
		t.Fatalf("NewSum: %v", err)
	}
	one := expr.ConstFloat(1.0)

	div, err := expr.NewTrueDiv(sum, one)
	if err != nil {
		t.Fatalf("NewTrueDiv: %v", err)
	}

	_, err = div.Sensitivity()
	if !errors.Is(err, errs.ErrInfiniteSensitivity) {
		t.Errorf("Sensitivity() error = %v, want ErrInfiniteSensitivity", err)
	}
}

// TestS6GroupBy: ds.group_by(by=["Weight"]) yields partitions whose total
// row count equals len(ds), each with Height.sum().dp(epsilon) lying
// within the clamped Integer type range.
func TestS6GroupBy(t *testing.T) {
	ds := exampleDataset(t)
	grouped := ds.GroupBy("Weight").WithThreshold(0)

	groups, err := grouped.Groups()
	if err != nil {
		t.Fatalf("Groups: %v", err)
	}

	total := 0
	for _, g := range groups {
		height, err := g.Dataset.Column("Height")
		if err != nil {
			t.Fatalf("Column(Height): %v", err)
		}
		sum, err := expr.NewSum(height)
		if err != nil {
			t.Fatalf("NewSum: %v", err)
		}
		dp, err := sum.DP(0.5)
		if err != nil {
			t.Fatalf("DP: %v", err)
		}
		sumType := sum.Type().(dptype.Integer)
		withinRange(t, "group Height.sum().dp", dp.Scalar, sumType.Min(), sumType.Max())
		total += g.Dataset.Len()
	}

	if total != ds.Len() {
		t.Errorf("sum of group sizes = %d, want %d", total, ds.Len())
	}
}

// TestSuppressionWithholdsSmallGroups verifies the default-threshold
// GroupedDataset withholds groups smaller than DefaultSuppressionThreshold
// and reports how many it withheld.
func TestSuppressionWithholdsSmallGroups(t *testing.T) {
	tab := table.New(map[string]table.Column{
		"Bucket": table.NewColumn([]float64{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 2, 2}),
	})
	s, err := schema.New([]schema.Column{
		{Name: "Bucket", Type: dptype.NewInteger(0, 10)},
	}, nil)
	if err != nil {
		t.Fatalf("schema.New: %v", err)
	}
	ds := dataset.New(s, tab)

	grouped := ds.GroupBy("Bucket")
	groups, err := grouped.Groups()
	if err != nil {
		t.Fatalf("Groups: %v", err)
	}
	if len(groups) != 1 {
		t.Errorf("len(groups) = %d, want 1 (the group of size 2 is suppressed)", len(groups))
	}
	if grouped.SuppressedGroups != 1 {
		t.Errorf("SuppressedGroups = %d, want 1", grouped.SuppressedGroups)
	}
}

// TestUnsupportedIndexKind exercises dataset.Dataset.Index's rejection of
// an index that is neither a column name nor a Condition.
func TestUnsupportedIndexKind(t *testing.T) {
	ds := exampleDataset(t)
	_, err := ds.Index(42)
	if !errors.Is(err, errs.ErrUnsupportedIndex) {
		t.Errorf("Index(42) error = %v, want ErrUnsupportedIndex", err)
	}
}
