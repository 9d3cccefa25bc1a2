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
package data

import (
	"fmt"
	"strconv"
)

// FlatRecord is the universal intermediate representation of one observed
// value: a single attribute reading for a symbol on a date. Date is kept in
// the API's native format and never parsed. Value is a scalar (number or
// string) or nil.
type FlatRecord struct {
	Symbol    string `json:"symbol"`
	Date      string `json:"date"`
	Attribute string `json:"attribute"`
	Value     any    `json:"value"`
}

// Key returns the grouping key used by the aggregation and pivot steps.
func (rec *FlatRecord) Key() string {
	return rec.Symbol + "\x1f" + rec.Date + "\x1f" + rec.Attribute
}

// Float returns the record value as a float64. The second return is false
// when the value is nil or not numeric.
func (rec *FlatRecord) Float() (float64, bool) {
	return FloatValue(rec.Value)
}

// FloatValue coerces a cell value to float64. JSON numbers decode as
// float64; integers and numeric strings are accepted as well since the
// upstream API is not consistent about quoting.
func FloatValue(v any) (float64, bool) {
	switch val := v.(type) {
	case float64:
		return val, true
	case float32:
		return float64(val), true
	case int:
		return float64(val), true
	case int64:
		return float64(val), true
	case string:
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			return f, true
		}
		return 0, false
	default:
		return 0, false
	}
}

// FormatValue renders a cell value for text sinks. nil becomes the empty
// string; floats drop their trailing zeros so 100.0 round-trips as "100".
func FormatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(val), 'f', -1, 32)
	default:
		return fmt.Sprintf("%v", val)
	}
}
