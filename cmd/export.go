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
package cmd

import (
	"github.com/quantfill/stocksheet/sink"
	"github.com/quantfill/stocksheet/table"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	exportFormat string
	exportSheet  string
)

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export <artifact.xlsx>",
	Short: "Export a long-form sheet to CSV or parquet",
	Long: `The export sub-command reads a long-form (Symbol, Date, Attribute, Value)
sheet from an existing workbook and writes it next to the workbook as a CSV
or parquet file named after the artifact and sheet.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		artifact := args[0]

		longTable, err := sink.ReadSheet(artifact, exportSheet)
		if err != nil {
			log.Fatal().Err(err).Str("FileName", artifact).Msg("could not read artifact")
		}

		for _, col := range []string{table.SymbolColumn, table.DateColumn, table.AttributeColumn, table.ValueColumn} {
			if !longTable.HasColumn(col) {
				log.Fatal().Str("SheetName", exportSheet).Str("Column", col).
					Msg("sheet is not long-form, required column missing")
			}
		}

		records := table.ToRecords(longTable)

		switch exportFormat {
		case "csv":
			out := sink.ExportPath(artifact, exportSheet, ".csv")
			if err := sink.WriteCSV(out, records); err != nil {
				log.Fatal().Err(err).Str("FileName", out).Msg("csv export failed")
			}
			log.Info().Str("FileName", out).Int("NumRecords", len(records)).Msg("exported csv")
		case "parquet":
			out := sink.ExportPath(artifact, exportSheet, ".parquet")
			if err := sink.WriteParquet(out, records); err != nil {
				log.Fatal().Err(err).Str("FileName", out).Msg("parquet export failed")
			}
		default:
			log.Fatal().Str("Format", exportFormat).Msg("unknown export format, expected csv or parquet")
		}
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVar(&exportFormat, "format", "csv", "export format: csv or parquet")
	exportCmd.Flags().StringVar(&exportSheet, "sheet", "Historical Data", "sheet to export")
}
