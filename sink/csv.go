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
package sink

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/gosimple/slug"
	"github.com/quantfill/stocksheet/data"
)

type csvRecord struct {
	Symbol    string `csv:"Symbol"`
	Date      string `csv:"Date"`
	Attribute string `csv:"Attribute"`
	Value     string `csv:"Value"`
}

// WriteCSV exports long-form records to a CSV file with the same four
// columns as the unpivoted sheet.
func WriteCSV(fn string, records []data.FlatRecord) error {
	rows := make([]*csvRecord, 0, len(records))
	for _, rec := range records {
		rows = append(rows, &csvRecord{
			Symbol:    rec.Symbol,
			Date:      rec.Date,
			Attribute: rec.Attribute,
			Value:     data.FormatValue(rec.Value),
		})
	}

	fh, err := os.Create(fn)
	if err != nil {
		return fmt.Errorf("creating csv file: %w", err)
	}
	defer fh.Close()

	if err := gocsv.MarshalFile(&rows, fh); err != nil {
		return fmt.Errorf("writing csv file: %w", err)
	}

	return nil
}

// ExportPath derives an export file name beside an artifact from the
// artifact's base name and the sheet being exported, e.g.
// (out/HistoricalStats.xlsx, "Historical Data", ".csv") →
// out/historicalstats-historical-data.csv.
func ExportPath(artifactPath, sheet, ext string) string {
	base := strings.TrimSuffix(filepath.Base(artifactPath), filepath.Ext(artifactPath))
	return filepath.Join(filepath.Dir(artifactPath), slug.Make(base+" "+sheet)+ext)
}
