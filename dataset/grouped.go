// Copyright ©2014 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dataset

import "log/slog"

// DefaultSuppressionThreshold is the minimum group size released by
// GroupedDataset.Groups when no explicit threshold is configured
// (spec.md §9 redesign flag: small groups leak membership and so are
// suppressed rather than released with noisy-but-recoverable counts).
const DefaultSuppressionThreshold = 10

// GroupedDataset partitions a Dataset by the tuple of values in a set of
// grouping columns, yielding one child Dataset per distinct key. Groups
// smaller than Threshold are withheld from iteration entirely: their
// members never appear in any per-group query result.
type GroupedDataset struct {
	parent    *Dataset
	keys      []string
	threshold int

	// SuppressedGroups counts groups withheld by the last call to Groups
	// because their row count fell below Threshold.
	SuppressedGroups int
}

// GroupBy partitions ds by the named columns using the default
// suppression threshold. Use WithThreshold to override it.
func (d *Dataset) GroupBy(columns ...string) *GroupedDataset {
	return &GroupedDataset{parent: d, keys: columns, threshold: DefaultSuppressionThreshold}
}

// WithThreshold returns a copy of g using threshold in place of the
// default minimum group size. A threshold of 0 or less disables
// suppression entirely.
func (g *GroupedDataset) WithThreshold(threshold int) *GroupedDataset {
	return &GroupedDataset{parent: g.parent, keys: g.keys, threshold: threshold}
}

// Group is one surviving partition: the grouping columns' shared values
// and the child Dataset restricted to that group's rows.
type Group struct {
	Key     []float64
	Dataset *Dataset
}

// Groups enumerates the dataset's partitions in deterministic key order,
// omitting any group whose row count is below g's threshold. Each call
// recomputes SuppressedGroups and logs the suppressed count at Debug
// level — never the suppressed keys, so a query can't use suppression
// itself as an oracle for which small groups exist (spec.md §4.E).
func (g *GroupedDataset) Groups() ([]Group, error) {
	raw, err := g.parent.table.GroupBy(g.keys)
	if err != nil {
		return nil, err
	}

	g.SuppressedGroups = 0
	out := make([]Group, 0, len(raw))
	for _, rg := range raw {
		if g.threshold > 0 && len(rg.Rows()) < g.threshold {
			g.SuppressedGroups++
			continue
		}
		out = append(out, Group{
			Key:     rg.Key,
			Dataset: &Dataset{schema: g.parent.schema, table: g.parent.table.Subtable(rg)},
		})
	}

	if g.SuppressedGroups > 0 {
		slog.Debug("dataset: suppressed small groups",
			"count", g.SuppressedGroups,
			"threshold", g.threshold,
			"total_groups", len(raw))
	}
	return out, nil
}
