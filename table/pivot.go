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

// Pivot reshapes a long table into a wide one: each distinct Attribute
// becomes its own column and each (Symbol, Date) pair becomes exactly one
// row, with nil cells for combinations never observed.
//
// The input must already have a unique (Symbol, Date, Attribute) key; run
// DedupAggregate first. Row order follows first appearance of each
// (Symbol, Date) pair and column order follows first appearance of each
// attribute. No sort is imposed beyond that; callers wanting sorted output
// sort explicitly.
func Pivot(records []data.FlatRecord) *Table {
	wide := New(SymbolColumn, DateColumn)

	attrSeen := make(map[string]bool)
	rowIndex := make(map[string]Row, len(records))

	for _, rec := range records {
		if !attrSeen[rec.Attribute] {
			attrSeen[rec.Attribute] = true
			wide.Columns = append(wide.Columns, rec.Attribute)
		}

		rowKey := rec.Symbol + "\x1f" + rec.Date
		row, ok := rowIndex[rowKey]
		if !ok {
			row = Row{SymbolColumn: rec.Symbol, DateColumn: rec.Date}
			rowIndex[rowKey] = row
			wide.Rows = append(wide.Rows, row)
		}

		row[rec.Attribute] = rec.Value
	}

	return wide
}

// Unpivot flattens a wide table back into long-form records, dropping nil
// cells. It is the inverse of Pivot over observed keys and exists mainly so
// an already-pivoted artifact can be re-derived and verified.
func Unpivot(wide *Table) []data.FlatRecord {
	records := make([]data.FlatRecord, 0, len(wide.Rows)*len(wide.Columns))

	for _, row := range wide.Rows {
		symbol := data.FormatValue(row[SymbolColumn])
		date := data.FormatValue(row[DateColumn])

		for _, col := range wide.Columns {
			if col == SymbolColumn || col == DateColumn {
				continue
			}
			if value, ok := row[col]; ok && value != nil {
				records = append(records, data.FlatRecord{
					Symbol:    symbol,
					Date:      date,
					Attribute: col,
					Value:     value,
				})
			}
		}
	}

	return records
}
