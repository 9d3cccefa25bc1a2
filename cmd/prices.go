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

	"github.com/quantfill/stocksheet/indianapi"
	"github.com/quantfill/stocksheet/pipeline"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	pricesPeriod  string
	pricesFilter  string
	pricesSheet   string
	pricesSymbols string
	pricesMax     int
)

// pricesCmd represents the prices command
var pricesCmd = &cobra.Command{
	Use:   "prices",
	Short: "Export consolidated historical price data for all symbols in the input workbook",
	Long: `The prices sub-command reads ticker symbols from the AllIndices sheet of the
input workbook and fetches each symbol's historical price series. All series
for a symbol are outer joined on date into one consolidated table, the
per-symbol tables are stacked, and the result is written as a single sheet
of StockData.xlsx in the output directory.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := baseConfig()
		cfg.SymbolsPath = pricesSymbols
		cfg.Period = pricesPeriod
		cfg.Filter = pricesFilter
		cfg.SheetName = pricesSheet
		cfg.MaxSymbols = pricesMax

		client := indianapi.New(cfg.APIKey, cfg.RateLimit)
		ctx := log.Logger.WithContext(context.Background())

		if _, err := pipeline.Prices(ctx, client, cfg); err != nil {
			log.Fatal().Err(err).Msg("prices workflow failed")
		}
	},
}

func init() {
	rootCmd.AddCommand(pricesCmd)

	pricesCmd.Flags().StringVar(&pricesSymbols, "symbols", "Inputfiles/StockSymbols.xlsx", "workbook containing the AllIndices sheet with a Symbol column")
	pricesCmd.Flags().StringVar(&pricesPeriod, "period", "5yr", "price history period (e.g. 1yr, 5yr, max)")
	pricesCmd.Flags().StringVar(&pricesFilter, "filter", "default", "price series filter")
	pricesCmd.Flags().StringVar(&pricesSheet, "sheet", "Sheet1", "sheet name to write in the output workbook")
	pricesCmd.Flags().IntVar(&pricesMax, "maxSymbols", 200, "maximum number of symbols to process")
}

// baseConfig builds the pipeline configuration shared by all workflows. The
// API key is a configuration error when missing: the run aborts before any
// partial output is attempted.
func baseConfig() *pipeline.Config {
	cfg := pipeline.DefaultConfig()
	cfg.APIKey = viper.GetString("api.key")
	cfg.OutputDir = viper.GetString("output.dir")
	cfg.RateLimit = viper.GetInt("api.rate_limit")

	if cfg.APIKey == "" {
		log.Fatal().Msg("api key is missing, set it with stocksheet init, the config file, or STOCKSHEET_API_KEY")
	}

	return cfg
}
