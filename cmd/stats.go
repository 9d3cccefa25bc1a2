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
	"context"

	"github.com/quantfill/stocksheet/data"
	"github.com/quantfill/stocksheet/indianapi"
	"github.com/quantfill/stocksheet/pipeline"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	statsPivot bool
	statsSheet string
	statsTypes []string
)

// statsCmd represents the stats command
var statsCmd = &cobra.Command{
	Use:   "stats <symbol>...",
	Short: "Export historical fundamental statistics for the given symbols",
	Long: `The stats sub-command fetches every configured category of fundamental data
(quarterly results, balance sheet, cash flow, ratios, shareholding patterns,
...) for each symbol and writes the accumulated records long-form -- one row
per (Symbol, Date, Attribute, Value) -- as a sheet of HistoricalStats.xlsx.

With --pivot the freshly written sheet is rewritten in place as a wide
table: exact duplicate records are dropped, conflicting readings at the
same (Symbol, Date, Attribute) key are averaged, and each attribute becomes
its own column.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := baseConfig()
		cfg.Symbols = args
		cfg.SheetName = statsSheet

		if len(statsTypes) > 0 {
			for _, statType := range statsTypes {
				if _, ok := data.StatTypes[statType]; !ok {
					log.Fatal().Str("StatType", statType).Msg("unknown stat type, run stocksheet stattypes for the list")
				}
			}
			cfg.StatTypes = statsTypes
		}

		client := indianapi.New(cfg.APIKey, cfg.RateLimit)
		ctx := log.Logger.WithContext(context.Background())

		workflow := pipeline.Stats
		if statsPivot {
			workflow = pipeline.PivotStats
		}

		if _, err := workflow(ctx, client, cfg); err != nil {
			log.Fatal().Err(err).Msg("stats workflow failed")
		}
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)

	statsCmd.Flags().BoolVar(&statsPivot, "pivot", false, "rewrite the sheet wide, one column per attribute")
	statsCmd.Flags().StringVar(&statsSheet, "sheet", "Historical Data", "sheet name to write in the output workbook")
	statsCmd.Flags().StringSliceVar(&statsTypes, "types", nil, "stat types to fetch (default all)")
}
