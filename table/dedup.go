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
	"github.com/quantfill/stocksheet/data"
	"github.com/rs/zerolog/log"
)

// DedupAggregate cleans a long table so that (Symbol, Date, Attribute) is a
// unique key, in two explicit stages:
//
//  1. rows that are exact duplicates across all four fields are dropped --
//     these are duplicate fetches, the same reading reported twice;
//  2. remaining rows are grouped by (Symbol, Date, Attribute) and the Value
//     reduced by arithmetic mean -- these are genuinely conflicting
//     readings, resolved by averaging rather than rejected.
//
// The result preserves first-seen key order and the operation is
// idempotent.
func DedupAggregate(records []data.FlatRecord) []data.FlatRecord {
	deduped := dropExactDuplicates(records)

	order := make([]string, 0, len(deduped))
	groups := make(map[string][]data.FlatRecord, len(deduped))

	for _, rec := range deduped {
		key := rec.Key()
		if _, ok := groups[key]; !ok {
			order = append(order, key)
		}
		groups[key] = append(groups[key], rec)
	}

	out := make([]data.FlatRecord, 0, len(order))
	for _, key := range order {
		out = append(out, reduceGroup(groups[key]))
	}

	return out
}

func dropExactDuplicates(records []data.FlatRecord) []data.FlatRecord {
	seen := make(map[string]bool, len(records))
	out := make([]data.FlatRecord, 0, len(records))

	for _, rec := range records {
		fullKey := rec.Key() + "\x1f" + data.FormatValue(rec.Value)
		if seen[fullKey] {
			continue
		}
		seen[fullKey] = true
		out = append(out, rec)
	}

	return out
}

// reduceGroup collapses conflicting records at one key into a single
// record. Numeric values (nulls skipped) are averaged; a group with no
// numeric member keeps its first value. Mixed groups average the numeric
// members and drop the rest with a debug log.
func reduceGroup(group []data.FlatRecord) data.FlatRecord {
	result := group[0]
	if len(group) == 1 {
		return result
	}

	var (
		sum        float64
		numNumeric int
	)

	for _, rec := range group {
		if rec.Value == nil {
			continue
		}
		if val, ok := rec.Float(); ok {
			sum += val
			numNumeric++
		} else {
			log.Debug().Str("Symbol", rec.Symbol).Str("DateStr", rec.Date).Str("Attribute", rec.Attribute).
				Msg("dropping non-numeric value from conflicting group")
		}
	}

	if numNumeric > 0 {
		result.Value = sum / float64(numNumeric)
	}

	return result
}
