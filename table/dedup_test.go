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
package table_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/quantfill/stocksheet/data"
	"github.com/quantfill/stocksheet/table"
)

func rec(symbol, date, attribute string, value any) data.FlatRecord {
	return data.FlatRecord{Symbol: symbol, Date: date, Attribute: attribute, Value: value}
}

var _ = Describe("DedupAggregate", func() {
	It("collapses exact duplicates to a single row without averaging", func() {
		records := []data.FlatRecord{
			rec("ABC", "2024Q1", "eps", 5.0),
			rec("ABC", "2024Q1", "eps", 5.0),
		}

		out := table.DedupAggregate(records)

		Expect(out).To(HaveLen(1))
		Expect(out[0].Value).To(Equal(5.0))
	})

	It("drops exact duplicates before averaging conflicting readings", func() {
		// two identical readings of 5 count once; the third, conflicting
		// reading of 11 averages against a single 5, not two
		records := []data.FlatRecord{
			rec("ABC", "2024Q1", "eps", 5.0),
			rec("ABC", "2024Q1", "eps", 5.0),
			rec("ABC", "2024Q1", "eps", 11.0),
		}

		out := table.DedupAggregate(records)

		Expect(out).To(HaveLen(1))
		Expect(out[0].Value).To(Equal(8.0))
	})

	It("averages conflicting values at the same key", func() {
		records := []data.FlatRecord{
			rec("ABC", "2024Q1", "eps", 10.0),
			rec("ABC", "2024Q1", "eps", 20.0),
		}

		out := table.DedupAggregate(records)

		Expect(out).To(HaveLen(1))
		Expect(out[0].Value).To(Equal(15.0))
	})

	It("is idempotent", func() {
		records := []data.FlatRecord{
			rec("ABC", "2024Q1", "eps", 10.0),
			rec("ABC", "2024Q1", "eps", 20.0),
			rec("ABC", "2024Q2", "eps", 7.0),
			rec("DEF", "2024Q1", "sales", 100.0),
		}

		once := table.DedupAggregate(records)
		twice := table.DedupAggregate(once)

		Expect(twice).To(Equal(once))
	})

	It("preserves first-seen key order", func() {
		records := []data.FlatRecord{
			rec("DEF", "2024Q1", "sales", 100.0),
			rec("ABC", "2024Q2", "eps", 7.0),
			rec("ABC", "2024Q1", "eps", 5.0),
			rec("DEF", "2024Q1", "sales", 200.0),
		}

		out := table.DedupAggregate(records)

		Expect(out).To(HaveLen(3))
		Expect(out[0].Symbol).To(Equal("DEF"))
		Expect(out[0].Value).To(Equal(150.0))
		Expect(out[1].Date).To(Equal("2024Q2"))
		Expect(out[2].Date).To(Equal("2024Q1"))
	})

	It("keeps distinct keys untouched", func() {
		records := []data.FlatRecord{
			rec("ABC", "2024Q1", "eps", 5.0),
			rec("ABC", "2024Q1", "sales", 1000.0),
			rec("ABC", "2024Q2", "eps", 6.0),
		}

		Expect(table.DedupAggregate(records)).To(Equal(records))
	})

	It("skips nulls when averaging and keeps them when nothing else exists", func() {
		records := []data.FlatRecord{
			rec("ABC", "2024Q1", "eps", nil),
			rec("ABC", "2024Q1", "eps", 10.0),
			rec("ABC", "2024Q2", "eps", nil),
		}

		out := table.DedupAggregate(records)

		Expect(out).To(HaveLen(2))
		Expect(out[0].Value).To(Equal(10.0))
		Expect(out[1].Value).To(BeNil())
	})

	It("keeps the first value when a group has no numeric member", func() {
		records := []data.FlatRecord{
			rec("ABC", "2024Q1", "auditor", "KPMG"),
			rec("ABC", "2024Q1", "auditor", "EY"),
		}

		out := table.DedupAggregate(records)

		Expect(out).To(HaveLen(1))
		Expect(out[0].Value).To(Equal("KPMG"))
	})

	It("averages numeric strings the way the sheet reader produces them", func() {
		records := []data.FlatRecord{
			rec("ABC", "2024Q1", "eps", "10"),
			rec("ABC", "2024Q1", "eps", "20"),
		}

		out := table.DedupAggregate(records)

		Expect(out).To(HaveLen(1))
		Expect(out[0].Value).To(Equal(15.0))
	})
})
