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
package data

import (
	"time"

	"github.com/google/uuid"
)

// RunSummary captures the outcome of one pipeline invocation.
type RunSummary struct {
	StartTime  time.Time
	EndTime    time.Time
	NumRecords int
	NumSymbols int
	NumSkipped int
	RunID      uuid.UUID
	Workflow   string
}

// StatType identifies one category of fundamental data served by the
// /historical_stats endpoint.
type StatType struct {
	Key         string
	Name        string
	Description string
}

const (
	QuarterResultsKey        = "quarter_results"
	YoyResultsKey            = "yoy_results"
	BalanceSheetKey          = "balancesheet"
	CashflowKey              = "cashflow"
	RatiosKey                = "ratios"
	ShareholdingQuarterlyKey = "shareholding_pattern_quarterly"
	ShareholdingYearlyKey    = "shareholding_pattern_yearly"
)

var StatTypes = map[string]*StatType{
	QuarterResultsKey: {
		Key:         QuarterResultsKey,
		Name:        "Quarterly Results",
		Description: "Quarterly income statement figures: sales, expenses, operating profit, net profit and EPS.",
	},
	YoyResultsKey: {
		Key:         YoyResultsKey,
		Name:        "Year-over-Year Results",
		Description: "Annual income statement figures compared year over year.",
	},
	BalanceSheetKey: {
		Key:         BalanceSheetKey,
		Name:        "Balance Sheet",
		Description: "Share capital, reserves, borrowings, fixed assets and other balance sheet line items.",
	},
	CashflowKey: {
		Key:         CashflowKey,
		Name:        "Cash Flow",
		Description: "Cash from operating, investing and financing activities.",
	},
	RatiosKey: {
		Key:         RatiosKey,
		Name:        "Ratios",
		Description: "Valuation and efficiency ratios such as debtor days, inventory turnover and ROCE.",
	},
	ShareholdingQuarterlyKey: {
		Key:         ShareholdingQuarterlyKey,
		Name:        "Shareholding Pattern (Quarterly)",
		Description: "Promoter, FII, DII and public shareholding percentages by quarter.",
	},
	ShareholdingYearlyKey: {
		Key:         ShareholdingYearlyKey,
		Name:        "Shareholding Pattern (Yearly)",
		Description: "Promoter, FII, DII and public shareholding percentages by year.",
	},
}

// AllStatTypeKeys returns the stat type keys in their canonical fetch order.
func AllStatTypeKeys() []string {
	return []string{
		QuarterResultsKey,
		YoyResultsKey,
		BalanceSheetKey,
		CashflowKey,
		RatiosKey,
		ShareholdingQuarterlyKey,
		ShareholdingYearlyKey,
	}
}
