// Copyright ©2014 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Column is a vector of row-aligned numeric values. It is the opaque
// "backing column" type referenced by spec.md's Attribute: expression
// nodes treat it only through the documented operations, never through
// its storage representation.
type Column struct {
	values []float64
}

// NewColumn copies values into a new Column.
func NewColumn(values []float64) Column {
	return Column{values: append([]float64(nil), values...)}
}

// NewIntColumn copies an integer-valued column, stored as float64 since
// every true value and sensitivity computation in the expression algebra
// operates in floating point (spec.md §4.D). Values up to 2^53 survive
// the conversion exactly.
func NewIntColumn(values []int64) Column {
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = float64(v)
	}
	return Column{values: out}
}

// Len reports the number of values.
func (c Column) Len() int { return len(c.values) }

// Values returns the column's values. Callers must not mutate the
// returned slice.
func (c Column) Values() []float64 { return c.values }

// Sum returns the sum of the column's values.
func (c Column) Sum() float64 { return floats.Sum(c.values) }

// Min returns the minimum value in the column.
func (c Column) Min() float64 { return floats.Min(c.values) }

// Max returns the maximum value in the column.
func (c Column) Max() float64 { return floats.Max(c.values) }

// Abs returns a new column of |v| for every value v.
func (c Column) Abs() Column {
	out := make([]float64, len(c.values))
	for i, v := range c.values {
		out[i] = math.Abs(v)
	}
	return Column{values: out}
}

// Select returns a new column containing only the rows where mask is
// true.
func (c Column) Select(mask Mask) Column {
	out := make([]float64, 0, len(c.values))
	for i, v := range c.values {
		if i < len(mask) && mask[i] {
			out = append(out, v)
		}
	}
	return Column{values: out}
}

// Add returns the elementwise sum of c and other.
func (c Column) Add(other Column) Column {
	dst := append([]float64(nil), c.values...)
	floats.Add(dst, other.values)
	return Column{values: dst}
}

// Sub returns the elementwise difference c - other.
func (c Column) Sub(other Column) Column {
	dst := make([]float64, len(c.values))
	return Column{values: floats.SubTo(dst, c.values, other.values)}
}

// Mul returns the elementwise product of c and other.
func (c Column) Mul(other Column) Column {
	dst := make([]float64, len(c.values))
	return Column{values: floats.MulTo(dst, c.values, other.values)}
}

// Div returns the elementwise quotient c / other.
func (c Column) Div(other Column) Column {
	dst := make([]float64, len(c.values))
	return Column{values: floats.DivTo(dst, c.values, other.values)}
}

// FloorDiv returns the elementwise floor quotient c // other.
func (c Column) FloorDiv(other Column) Column {
	out := make([]float64, len(c.values))
	for i := range c.values {
		out[i] = math.Floor(c.values[i] / other.values[i])
	}
	return Column{values: out}
}

// AddScalar returns c + s elementwise.
func (c Column) AddScalar(s float64) Column {
	out := append([]float64(nil), c.values...)
	floats.AddConst(s, out)
	return Column{values: out}
}

// SubScalar returns c - s elementwise.
func (c Column) SubScalar(s float64) Column { return c.AddScalar(-s) }

// ScalarSub returns s - c elementwise.
func (c Column) ScalarSub(s float64) Column {
	out := make([]float64, len(c.values))
	for i, v := range c.values {
		out[i] = s - v
	}
	return Column{values: out}
}

// MulScalar returns c * s elementwise.
func (c Column) MulScalar(s float64) Column {
	out := append([]float64(nil), c.values...)
	floats.Scale(s, out)
	return Column{values: out}
}

// DivScalar returns c / s elementwise.
func (c Column) DivScalar(s float64) Column { return c.MulScalar(1 / s) }

// ScalarDiv returns s / c elementwise.
func (c Column) ScalarDiv(s float64) Column {
	out := make([]float64, len(c.values))
	for i, v := range c.values {
		out[i] = s / v
	}
	return Column{values: out}
}

// FloorDivScalar returns c // s elementwise.
func (c Column) FloorDivScalar(s float64) Column {
	out := make([]float64, len(c.values))
	for i, v := range c.values {
		out[i] = math.Floor(v / s)
	}
	return Column{values: out}
}

// ScalarFloorDiv returns s // c elementwise.
func (c Column) ScalarFloorDiv(s float64) Column {
	out := make([]float64, len(c.values))
	for i, v := range c.values {
		out[i] = math.Floor(s / v)
	}
	return Column{values: out}
}

// Mask is a boolean row selector, the result of comparing a column
// against a scalar.
type Mask []bool

// Len reports the number of rows covered by the mask.
func (m Mask) Len() int { return len(m) }

// Count reports how many rows are selected.
func (m Mask) Count() int {
	n := 0
	for _, v := range m {
		if v {
			n++
		}
	}
	return n
}

func (c Column) compare(cmp func(float64) bool) Mask {
	out := make(Mask, len(c.values))
	for i, v := range c.values {
		out[i] = cmp(v)
	}
	return out
}

// GT returns a mask selecting values greater than s.
func (c Column) GT(s float64) Mask { return c.compare(func(v float64) bool { return v > s }) }

// LT returns a mask selecting values less than s.
func (c Column) LT(s float64) Mask { return c.compare(func(v float64) bool { return v < s }) }

// GE returns a mask selecting values greater than or equal to s.
func (c Column) GE(s float64) Mask { return c.compare(func(v float64) bool { return v >= s }) }

// LE returns a mask selecting values less than or equal to s.
func (c Column) LE(s float64) Mask { return c.compare(func(v float64) bool { return v <= s }) }

// EQ returns a mask selecting values equal to s.
func (c Column) EQ(s float64) Mask { return c.compare(func(v float64) bool { return v == s }) }

// NE returns a mask selecting values not equal to s.
func (c Column) NE(s float64) Mask { return c.compare(func(v float64) bool { return v != s }) }
