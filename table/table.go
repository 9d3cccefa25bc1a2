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

// Package table implements the reshaping core: normalizing raw API payloads
// into tables or flat records, outer-joining partial tables, deduplicating
// and aggregating long-form records, and pivoting long tables to wide.
package table

import "errors"

// ErrNoData marks a payload that parsed correctly but contains nothing for
// the requested symbol. Callers skip the item and continue the batch.
var ErrNoData = errors.New("no data in payload")

// Row holds one table row. Cells for columns absent from the row read as
// nil, which is how outer joins represent missing values.
type Row map[string]any

// Table is an ordered-column, in-memory table. Column order is significant
// and preserved through merges and writes; row values are scalars or nil.
type Table struct {
	Columns []string
	Rows    []Row
}

// New creates an empty table with the given column order.
func New(columns ...string) *Table {
	return &Table{Columns: columns, Rows: make([]Row, 0, 16)}
}

// Append adds a row built from values in column order. Extra values are
// dropped; missing trailing values leave their cells unset.
func (tbl *Table) Append(values ...any) {
	row := make(Row, len(tbl.Columns))
	for idx, col := range tbl.Columns {
		if idx >= len(values) {
			break
		}
		row[col] = values[idx]
	}
	tbl.Rows = append(tbl.Rows, row)
}

// HasColumn reports whether the table contains the named column.
func (tbl *Table) HasColumn(name string) bool {
	for _, col := range tbl.Columns {
		if col == name {
			return true
		}
	}
	return false
}

// AddColumn appends a new column populated uniformly with value. Adding an
// existing column overwrites its cells instead.
func (tbl *Table) AddColumn(name string, value any) {
	if !tbl.HasColumn(name) {
		tbl.Columns = append(tbl.Columns, name)
	}
	for _, row := range tbl.Rows {
		row[name] = value
	}
}

// Cell returns the value stored at (rowIdx, column), or nil when the cell
// was never populated.
func (tbl *Table) Cell(rowIdx int, column string) any {
	if rowIdx < 0 || rowIdx >= len(tbl.Rows) {
		return nil
	}
	return tbl.Rows[rowIdx][column]
}

// NumRows returns the number of rows in the table.
func (tbl *Table) NumRows() int {
	return len(tbl.Rows)
}
