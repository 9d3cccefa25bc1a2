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
package sink_test

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/quantfill/stocksheet/data"
	"github.com/quantfill/stocksheet/sink"
)

var exportRecords = []data.FlatRecord{
	{Symbol: "ABC", Date: "2024Q1", Attribute: "eps", Value: 5.0},
	{Symbol: "ABC", Date: "2024Q1", Attribute: "auditor", Value: "KPMG"},
	{Symbol: "DEF", Date: "2024Q2", Attribute: "eps", Value: nil},
}

var _ = Describe("WriteCSV", func() {
	It("writes one row per record with the long-form header", func() {
		fn := filepath.Join(GinkgoT().TempDir(), "stats.csv")
		Expect(sink.WriteCSV(fn, exportRecords)).To(Succeed())

		content, err := os.ReadFile(fn)
		Expect(err).NotTo(HaveOccurred())
		Expect(string(content)).To(HavePrefix("Symbol,Date,Attribute,Value\n"))
		Expect(string(content)).To(ContainSubstring("ABC,2024Q1,eps,5\n"))
		Expect(string(content)).To(ContainSubstring("ABC,2024Q1,auditor,KPMG\n"))
		Expect(string(content)).To(ContainSubstring("DEF,2024Q2,eps,\n"))
	})
})

var _ = Describe("WriteParquet", func() {
	It("produces a non-empty parquet file", func() {
		fn := filepath.Join(GinkgoT().TempDir(), "stats.parquet")
		Expect(sink.WriteParquet(fn, exportRecords)).To(Succeed())

		info, err := os.Stat(fn)
		Expect(err).NotTo(HaveOccurred())
		Expect(info.Size()).To(BeNumerically(">", 0))
	})
})

var _ = Describe("ExportPath", func() {
	It("derives a slugged file name beside the artifact", func() {
		out := sink.ExportPath(filepath.Join("out", "HistoricalStats.xlsx"), "Historical Data", ".csv")
		Expect(out).To(Equal(filepath.Join("out", "historicalstats-historical-data.csv")))
	})
})
