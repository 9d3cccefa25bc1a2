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
package pipeline

import (
	"context"
	"errors"
	"path/filepath"

	"github.com/quantfill/stocksheet/data"
	"github.com/quantfill/stocksheet/indianapi"
	"github.com/quantfill/stocksheet/sink"
	"github.com/quantfill/stocksheet/table"
	"github.com/rs/zerolog"
)

// PricesArtifact is the file name of the consolidated price workbook.
const PricesArtifact = "StockData.xlsx"

// Prices runs the consolidated price workflow: read symbols from the input
// workbook, fetch each symbol's series payload, normalize it into a
// Date-keyed partial table, stack the per-symbol tables, and write the
// result as one sheet. Symbols with missing or malformed data are skipped.
func Prices(ctx context.Context, client *indianapi.Client, cfg *Config) (*data.RunSummary, error) {
	ctx, summary := newRun(ctx, "prices")
	defer func() { finishRun(ctx, summary) }()

	logger := zerolog.Ctx(ctx)

	symbols, err := sink.ReadSymbols(cfg.SymbolsPath, cfg.MaxSymbols)
	if err != nil {
		return summary, err
	}

	partials := make([]*table.Table, 0, len(symbols))

	for _, symbol := range symbols {
		logger.Info().Str("Symbol", symbol).Str("Period", cfg.Period).Str("Filter", cfg.Filter).
			Msg("processing symbol")

		payload, err := client.HistoricalData(ctx, symbol, cfg.Period, cfg.Filter)
		if err != nil {
			logger.Warn().Err(err).Str("Symbol", symbol).Msg("fetch failed, skipping symbol")
			summary.NumSkipped++
			continue
		}

		if payload.Series == nil {
			logger.Warn().Str("Symbol", symbol).Msg("response is not a series payload, skipping symbol")
			summary.NumSkipped++
			continue
		}

		consolidated, err := table.NormalizeSeries(payload.Series, symbol)
		if err != nil {
			if errors.Is(err, table.ErrNoData) {
				logger.Info().Str("Symbol", symbol).Msg("no data found for symbol, skipping")
			} else {
				logger.Warn().Err(err).Str("Symbol", symbol).Msg("normalize failed, skipping symbol")
			}
			summary.NumSkipped++
			continue
		}

		partials = append(partials, consolidated)
		summary.NumSymbols++
		summary.NumRecords += consolidated.NumRows()
	}

	if len(partials) == 0 {
		logger.Warn().Msg("no data to save")
		return summary, nil
	}

	artifact := filepath.Join(cfg.OutputDir, PricesArtifact)
	if err := sink.WriteSheet(artifact, cfg.SheetName, table.ConcatOuter(partials...)); err != nil {
		return summary, err
	}

	logger.Info().Str("FileName", artifact).Str("SheetName", cfg.SheetName).Msg("wrote consolidated price data")
	return summary, nil
}
