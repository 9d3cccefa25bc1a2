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
	"path/filepath"

	"github.com/quantfill/stocksheet/data"
	"github.com/quantfill/stocksheet/indianapi"
	"github.com/quantfill/stocksheet/sink"
	"github.com/quantfill/stocksheet/table"
	"github.com/rs/zerolog"
)

// StatsArtifact is the file name of the fundamental stats workbook.
const StatsArtifact = "HistoricalStats.xlsx"

// Stats runs the long-form fundamentals workflow: for every configured
// symbol and stat type, fetch the attribute payload, flatten it into
// (Symbol, Date, Attribute, Value) records, and write the accumulated long
// table as one sheet. Per-item failures are logged and skipped.
func Stats(ctx context.Context, client *indianapi.Client, cfg *Config) (*data.RunSummary, error) {
	ctx, summary := newRun(ctx, "stats")
	defer func() { finishRun(ctx, summary) }()

	records, err := collectStats(ctx, client, cfg, summary)
	if err != nil {
		return summary, err
	}

	logger := zerolog.Ctx(ctx)

	if len(records) == 0 {
		logger.Warn().Msg("no data to save")
		return summary, nil
	}

	artifact := filepath.Join(cfg.OutputDir, StatsArtifact)
	if err := sink.WriteSheet(artifact, cfg.SheetName, table.FromRecords(records)); err != nil {
		return summary, err
	}

	logger.Info().Str("FileName", artifact).Str("SheetName", cfg.SheetName).Msg("wrote historical stats")
	return summary, nil
}

// PivotStats runs the stats workflow and then pivots the freshly written
// sheet in place: the long table is read back from the artifact,
// deduplicated and mean-aggregated so (Symbol, Date, Attribute) is unique,
// reshaped wide, and the same sheet replaced with the wide form.
func PivotStats(ctx context.Context, client *indianapi.Client, cfg *Config) (*data.RunSummary, error) {
	summary, err := Stats(ctx, client, cfg)
	if err != nil || summary.NumRecords == 0 {
		return summary, err
	}

	logger := zerolog.Ctx(ctx)
	artifact := filepath.Join(cfg.OutputDir, StatsArtifact)

	longTable, err := sink.ReadSheet(artifact, cfg.SheetName)
	if err != nil {
		return summary, err
	}

	cleaned := table.DedupAggregate(table.ToRecords(longTable))
	wide := table.Pivot(cleaned)

	if err := sink.ReplaceSheet(artifact, cfg.SheetName, wide); err != nil {
		return summary, err
	}

	logger.Info().Str("FileName", artifact).Str("SheetName", cfg.SheetName).
		Int("NumAttributes", len(wide.Columns)-2).Int("NumRows", wide.NumRows()).
		Msg("pivoted stats saved back to artifact")

	return summary, nil
}

func collectStats(ctx context.Context, client *indianapi.Client, cfg *Config, summary *data.RunSummary) ([]data.FlatRecord, error) {
	logger := zerolog.Ctx(ctx)

	records := make([]data.FlatRecord, 0, 1024)

	for _, symbol := range cfg.Symbols {
		logger.Info().Str("Symbol", symbol).Msg("processing symbol")
		numBefore := len(records)

		for _, statType := range cfg.statTypes() {
			payload, err := client.HistoricalStats(ctx, symbol, statType)
			if err != nil {
				logger.Warn().Err(err).Str("Symbol", symbol).Str("StatType", statType).
					Msg("fetch failed, skipping stat type")
				summary.NumSkipped++
				continue
			}

			if payload.Attributes == nil {
				logger.Warn().Str("Symbol", symbol).Str("StatType", statType).
					Msg("response is not an attribute payload, skipping stat type")
				summary.NumSkipped++
				continue
			}

			flattened := table.NormalizeAttributes(payload.Attributes, symbol)
			if len(flattened) == 0 {
				logger.Info().Str("Symbol", symbol).Str("StatType", statType).
					Msg("no data available for symbol and stat type")
			}

			records = append(records, flattened...)
		}

		if len(records) > numBefore {
			summary.NumSymbols++
		}
	}

	summary.NumRecords = len(records)
	return records, nil
}
