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

// AttributeColumn and ValueColumn name the long-form columns next to
// Symbol and Date.
const (
	AttributeColumn = "Attribute"
	ValueColumn     = "Value"
)

// FromRecords lays out long-form records as a four-column table in record
// order.
func FromRecords(records []data.FlatRecord) *Table {
	tbl := New(SymbolColumn, DateColumn, AttributeColumn, ValueColumn)
	for _, rec := range records {
		tbl.Append(rec.Symbol, rec.Date, rec.Attribute, rec.Value)
	}
	return tbl
}

// ToRecords reads a four-column long table back into records, converting
// Symbol, Date and Attribute cells to their string forms. It is the
// inverse of FromRecords and is used when a written artifact is re-read
// for the pivot pass or an export.
func ToRecords(tbl *Table) []data.FlatRecord {
	records := make([]data.FlatRecord, 0, len(tbl.Rows))
	for _, row := range tbl.Rows {
		records = append(records, data.FlatRecord{
			Symbol:    data.FormatValue(row[SymbolColumn]),
			Date:      data.FormatValue(row[DateColumn]),
			Attribute: data.FormatValue(row[AttributeColumn]),
			Value:     row[ValueColumn],
		})
	}
	return records
}
