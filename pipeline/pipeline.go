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

// Package pipeline orchestrates the three batch workflows: consolidated
// prices, long-form fundamental stats, and the pivoted second pass over the
// stats artifact. Workflows are fully sequential; a failed or empty fetch
// is logged and skipped, never aborting the batch. All configuration is
// passed in explicitly.
package pipeline

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/quantfill/stocksheet/data"
	"github.com/rs/zerolog"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Config carries everything a workflow needs. Nothing below cmd reads
// flags, environment variables or config files.
type Config struct {
	APIKey string

	// SymbolsPath locates the input workbook for the prices workflow
	// (sheet AllIndices, column Symbol). The stats workflows instead take
	// their symbols from Symbols.
	SymbolsPath string
	Symbols     []string

	OutputDir string
	SheetName string

	// Period and Filter qualify the /historical_data query.
	Period string
	Filter string

	// MaxSymbols caps how many symbols the prices workflow processes.
	MaxSymbols int

	// StatTypes lists the fundamental categories fetched per symbol;
	// empty means all known types.
	StatTypes []string

	// RateLimit is the maximum API requests per minute.
	RateLimit int
}

// DefaultConfig returns the defaults the original exports used: a five
// year default-filter price window, all stat types, and a 200 symbol cap.
func DefaultConfig() *Config {
	return &Config{
		Period:     "5yr",
		Filter:     "default",
		MaxSymbols: 200,
		SheetName:  "Historical Data",
		StatTypes:  data.AllStatTypeKeys(),
		RateLimit:  60,
	}
}

func (cfg *Config) statTypes() []string {
	if len(cfg.StatTypes) == 0 {
		return data.AllStatTypeKeys()
	}
	return cfg.StatTypes
}

// newRun binds a fresh run ID into the context logger and starts a
// summary.
func newRun(ctx context.Context, workflow string) (context.Context, *data.RunSummary) {
	summary := &data.RunSummary{
		StartTime: time.Now(),
		RunID:     uuid.New(),
		Workflow:  workflow,
	}

	logger := zerolog.Ctx(ctx).With().
		Str("RunID", summary.RunID.String()).
		Str("Workflow", workflow).
		Logger()

	return logger.WithContext(ctx), summary
}

// finishRun stamps the end time and logs the run outcome.
func finishRun(ctx context.Context, summary *data.RunSummary) {
	summary.EndTime = time.Now()

	printer := message.NewPrinter(language.English)
	zerolog.Ctx(ctx).Info().
		Str("NumRecords", printer.Sprintf("%d", summary.NumRecords)).
		Int("NumSymbols", summary.NumSymbols).
		Int("NumSkipped", summary.NumSkipped).
		Dur("Elapsed", summary.EndTime.Sub(summary.StartTime)).
		Msg("run finished")
}
