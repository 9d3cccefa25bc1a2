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

var _ = Describe("Pivot", func() {
	It("turns each distinct attribute into a column keyed by (Symbol, Date)", func() {
		records := []data.FlatRecord{
			rec("ABC", "2024Q1", "eps", 5.0),
			rec("ABC", "2024Q1", "sales", 1000.0),
			rec("ABC", "2024Q2", "eps", 6.0),
			rec("DEF", "2024Q1", "eps", 2.0),
		}

		wide := table.Pivot(records)

		Expect(wide.Columns).To(Equal([]string{"Symbol", "Date", "eps", "sales"}))
		Expect(wide.NumRows()).To(Equal(3))

		Expect(wide.Cell(0, "Symbol")).To(Equal("ABC"))
		Expect(wide.Cell(0, "Date")).To(Equal("2024Q1"))
		Expect(wide.Cell(0, "eps")).To(Equal(5.0))
		Expect(wide.Cell(0, "sales")).To(Equal(1000.0))

		// combinations never observed stay nil
		Expect(wide.Cell(1, "sales")).To(BeNil())
		Expect(wide.Cell(2, "sales")).To(BeNil())
		Expect(wide.Cell(2, "Symbol")).To(Equal("DEF"))
	})

	It("keeps first-seen row and column order", func() {
		records := []data.FlatRecord{
			rec("DEF", "2024Q2", "sales", 9.0),
			rec("ABC", "2024Q1", "eps", 5.0),
			rec("DEF", "2024Q2", "eps", 3.0),
		}

		wide := table.Pivot(records)

		Expect(wide.Columns).To(Equal([]string{"Symbol", "Date", "sales", "eps"}))
		Expect(wide.Cell(0, "Symbol")).To(Equal("DEF"))
		Expect(wide.Cell(1, "Symbol")).To(Equal("ABC"))
	})

	It("produces an empty two-column table from no records", func() {
		wide := table.Pivot(nil)
		Expect(wide.Columns).To(Equal([]string{"Symbol", "Date"}))
		Expect(wide.NumRows()).To(BeZero())
	})

	It("round-trips the key set through Unpivot", func() {
		records := table.DedupAggregate([]data.FlatRecord{
			rec("ABC", "2024Q1", "eps", 5.0),
			rec("ABC", "2024Q1", "sales", 1000.0),
			rec("ABC", "2024Q2", "eps", 6.0),
			rec("DEF", "2024Q1", "eps", 2.0),
			rec("DEF", "2024Q1", "eps", 4.0),
		})

		back := table.Unpivot(table.Pivot(records))

		// no key added or lost
		keys := func(recs []data.FlatRecord) []string {
			out := make([]string, len(recs))
			for idx := range recs {
				out[idx] = recs[idx].Key()
			}
			return out
		}
		Expect(keys(back)).To(ConsistOf(keys(records)))
	})
})

var _ = Describe("FromRecords and ToRecords", func() {
	It("round-trips long-form records through the four-column layout", func() {
		records := []data.FlatRecord{
			rec("ABC", "2024Q1", "eps", 5.0),
			rec("DEF", "2024Q2", "sales", 9.0),
		}

		tbl := table.FromRecords(records)
		Expect(tbl.Columns).To(Equal([]string{"Symbol", "Date", "Attribute", "Value"}))
		Expect(table.ToRecords(tbl)).To(Equal(records))
	})
})
