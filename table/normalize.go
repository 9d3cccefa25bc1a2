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

import (
	"fmt"
	"sort"

	"github.com/quantfill/stocksheet/data"
)

// DateColumn is the join key shared by every series-shape partial table.
const DateColumn = "Date"

// SymbolColumn is appended to every consolidated table.
const SymbolColumn = "Symbol"

// NormalizeSeries converts a series-shape payload into a consolidated
// partial table for one symbol. Each dataset becomes a group of columns
// named "{label} {i}" for the non-date fields of its rows; datasets are
// outer-merged on Date pairwise, left to right, so every date observed in
// any dataset yields exactly one row. A Symbol column is appended last.
//
// A payload with no datasets, or whose datasets all have empty values,
// returns ErrNoData; callers skip the symbol and continue.
func NormalizeSeries(payload *data.SeriesPayload, symbol string) (*Table, error) {
	if payload == nil || len(payload.Datasets) == 0 {
		return nil, ErrNoData
	}

	var consolidated *Table

	for _, dataset := range payload.Datasets {
		if len(dataset.Values) == 0 {
			continue
		}

		columns := []string{DateColumn}
		for i := 1; i < len(dataset.Values[0]); i++ {
			columns = append(columns, fmt.Sprintf("%s %d", dataset.Label, i))
		}

		partial := New(columns...)
		for _, values := range dataset.Values {
			partial.Append(values...)
		}

		if consolidated == nil {
			consolidated = partial
		} else {
			consolidated = MergeOuter(consolidated, partial, DateColumn)
		}
	}

	if consolidated == nil {
		return nil, ErrNoData
	}

	consolidated.AddColumn(SymbolColumn, symbol)

	return consolidated, nil
}

// NormalizeAttributes flattens an attribute-shape payload into one
// FlatRecord per (attribute, date, value) leaf, tagged with the symbol.
// Attribute names are taken as-is; readings for the same attribute from
// different stat types land under the same name.
//
// The decoded maps carry no order, so attributes and dates are emitted in
// sorted order to keep batch output deterministic. An empty payload yields
// an empty slice, never an error.
func NormalizeAttributes(payload data.AttributePayload, symbol string) []data.FlatRecord {
	records := make([]data.FlatRecord, 0, len(payload)*8)

	attributes := make([]string, 0, len(payload))
	for attribute := range payload {
		attributes = append(attributes, attribute)
	}
	sort.Strings(attributes)

	for _, attribute := range attributes {
		values := payload[attribute]

		dates := make([]string, 0, len(values))
		for date := range values {
			dates = append(dates, date)
		}
		sort.Strings(dates)

		for _, date := range dates {
			records = append(records, data.FlatRecord{
				Symbol:    symbol,
				Date:      date,
				Attribute: attribute,
				Value:     values[date],
			})
		}
	}

	return records
}
