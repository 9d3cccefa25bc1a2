// Copyright 2024
// SPDX-License-Identifier: Apache-2.0
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
package table

import "github.com/quantfill/stocksheet/data"

// MergeOuter joins two tables on the shared key column with full outer join
// semantics: every key from either side appears exactly once in the result,
// and columns present on only one side are left nil for rows absent from
// that side.
//
// The merge is deterministic: result rows keep the left table's order
// followed by right-only keys in the right table's order, and result
// columns keep the left order followed by right columns not already
// present. Callers merging more than two tables apply MergeOuter pairwise,
// left to right, with the accumulator always on the left.
func MergeOuter(left, right *Table, key string) *Table {
	if left == nil {
		return right
	}
	if right == nil {
		return left
	}

	columns := make([]string, len(left.Columns), len(left.Columns)+len(right.Columns))
	copy(columns, left.Columns)

	seen := make(map[string]bool, len(columns))
	for _, col := range columns {
		seen[col] = true
	}

	for _, col := range right.Columns {
		if !seen[col] {
			columns = append(columns, col)
			seen[col] = true
		}
	}

	merged := &Table{Columns: columns, Rows: make([]Row, 0, len(left.Rows)+len(right.Rows))}

	index := make(map[string]Row, len(left.Rows))
	for _, leftRow := range left.Rows {
		row := make(Row, len(columns))
		for col, val := range leftRow {
			row[col] = val
		}
		merged.Rows = append(merged.Rows, row)
		index[data.FormatValue(row[key])] = row
	}

	for _, rightRow := range right.Rows {
		keyVal := data.FormatValue(rightRow[key])
		if existing, ok := index[keyVal]; ok {
			for col, val := range rightRow {
				if col == key {
					continue
				}
				existing[col] = val
			}
			continue
		}

		row := make(Row, len(columns))
		for col, val := range rightRow {
			row[col] = val
		}
		merged.Rows = append(merged.Rows, row)
		index[keyVal] = row
	}

	return merged
}

// ConcatOuter stacks tables vertically, unioning their columns in
// first-seen order. Rows are never combined; it is the Symbol+Date flavor
// of the merger, where the batch key is unique across the stacked tables
// because each carries a different symbol.
func ConcatOuter(tables ...*Table) *Table {
	combined := New()

	seen := make(map[string]bool)
	for _, tbl := range tables {
		if tbl == nil {
			continue
		}
		for _, col := range tbl.Columns {
			if !seen[col] {
				seen[col] = true
				combined.Columns = append(combined.Columns, col)
			}
		}
		combined.Rows = append(combined.Rows, tbl.Rows...)
	}

	return combined
}
