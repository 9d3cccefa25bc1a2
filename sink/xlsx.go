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

// Package sink persists finished tables. The primary artifact is an xlsx
// workbook where each named sheet holds one table; long-form records can
// additionally be exported to parquet or CSV.
package sink

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/quantfill/stocksheet/table"
	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"
)

// SymbolsSheet is the sheet a symbols workbook must contain.
const SymbolsSheet = "AllIndices"

// SymbolsColumn is the required column within SymbolsSheet.
const SymbolsColumn = "Symbol"

const scratchSheet = "__stocksheet_scratch__"

// WriteSheet writes tbl as the only sheet of the artifact at path, fully
// replacing any artifact already there. The workbook is assembled in a temp
// file beside the destination and published with a rename so a reader never
// observes a missing or half-written artifact.
func WriteSheet(path, sheet string, tbl *table.Table) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	book := excelize.NewFile()
	defer func() {
		if err := book.Close(); err != nil {
			log.Error().Err(err).Str("FileName", path).Msg("could not close workbook")
		}
	}()

	if _, err := book.NewSheet(sheet); err != nil {
		return fmt.Errorf("creating sheet %q: %w", sheet, err)
	}

	if err := writeRows(book, sheet, tbl); err != nil {
		return err
	}

	if sheet != "Sheet1" {
		if err := book.DeleteSheet("Sheet1"); err != nil {
			return fmt.Errorf("removing default sheet: %w", err)
		}
	}

	return publish(book, path)
}

// ReplaceSheet replaces the named sheet inside an existing artifact,
// leaving any other sheets untouched. It exists for the pivot workflow,
// which rewrites the sheet it just produced as a second pass over the same
// artifact. The rewritten workbook is still published via temp-then-rename.
func ReplaceSheet(path, sheet string, tbl *table.Table) error {
	book, err := excelize.OpenFile(path)
	if err != nil {
		return fmt.Errorf("opening artifact %s: %w", path, err)
	}
	defer func() {
		if err := book.Close(); err != nil {
			log.Error().Err(err).Str("FileName", path).Msg("could not close workbook")
		}
	}()

	// a workbook must always hold at least one sheet, so park a scratch
	// sheet while the target is dropped and rebuilt
	if _, err := book.NewSheet(scratchSheet); err != nil {
		return fmt.Errorf("creating scratch sheet: %w", err)
	}

	if err := book.DeleteSheet(sheet); err != nil {
		return fmt.Errorf("dropping sheet %q: %w", sheet, err)
	}

	if _, err := book.NewSheet(sheet); err != nil {
		return fmt.Errorf("recreating sheet %q: %w", sheet, err)
	}

	if err := writeRows(book, sheet, tbl); err != nil {
		return err
	}

	if err := book.DeleteSheet(scratchSheet); err != nil {
		return fmt.Errorf("removing scratch sheet: %w", err)
	}

	return publish(book, path)
}

// ReadSheet loads a named sheet back into a table. The first row is taken
// as the header; cells that parse as numbers come back as float64, empty
// cells as nil.
func ReadSheet(path, sheet string) (*table.Table, error) {
	book, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening artifact %s: %w", path, err)
	}
	defer func() {
		if err := book.Close(); err != nil {
			log.Error().Err(err).Str("FileName", path).Msg("could not close workbook")
		}
	}()

	rows, err := book.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q: %w", sheet, err)
	}

	if len(rows) == 0 {
		return table.New(), nil
	}

	tbl := table.New(rows[0]...)
	for _, cells := range rows[1:] {
		values := make([]any, len(cells))
		for idx, cell := range cells {
			values[idx] = parseCell(cell)
		}
		tbl.Append(values...)
	}

	return tbl, nil
}

// ReadSymbols reads the unique, non-empty symbols from the AllIndices sheet
// of a symbols workbook, capped at max. A missing workbook, sheet or Symbol
// column is a configuration error and fatal to the run.
func ReadSymbols(path string, max int) ([]string, error) {
	tbl, err := ReadSheet(path, SymbolsSheet)
	if err != nil {
		return nil, err
	}

	if !tbl.HasColumn(SymbolsColumn) {
		return nil, fmt.Errorf("sheet %q in %s has no %q column", SymbolsSheet, path, SymbolsColumn)
	}

	seen := make(map[string]bool, len(tbl.Rows))
	symbols := make([]string, 0, len(tbl.Rows))

	for _, row := range tbl.Rows {
		symbol, _ := row[SymbolsColumn].(string)
		if symbol == "" || seen[symbol] {
			continue
		}
		seen[symbol] = true
		symbols = append(symbols, symbol)
		if max > 0 && len(symbols) >= max {
			break
		}
	}

	return symbols, nil
}

func writeRows(book *excelize.File, sheet string, tbl *table.Table) error {
	header := make([]any, len(tbl.Columns))
	for idx, col := range tbl.Columns {
		header[idx] = col
	}

	if err := book.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("writing header row: %w", err)
	}

	for rowIdx, row := range tbl.Rows {
		values := make([]any, len(tbl.Columns))
		for colIdx, col := range tbl.Columns {
			values[colIdx] = row[col]
		}

		cell, err := excelize.CoordinatesToCellName(1, rowIdx+2)
		if err != nil {
			return fmt.Errorf("computing cell name: %w", err)
		}

		if err := book.SetSheetRow(sheet, cell, &values); err != nil {
			return fmt.Errorf("writing row %d: %w", rowIdx+2, err)
		}
	}

	return nil
}

// publish saves the workbook to a temp file in the destination directory
// and renames it over the final path.
func publish(book *excelize.File, path string) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp.*"+filepath.Ext(path))
	if err != nil {
		return fmt.Errorf("creating temp artifact: %w", err)
	}

	tmpName := tmp.Name()
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temp artifact: %w", err)
	}

	if err := book.SaveAs(tmpName); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("saving artifact: %w", err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("publishing artifact: %w", err)
	}

	return nil
}

func parseCell(cell string) any {
	if cell == "" {
		return nil
	}
	if num, err := strconv.ParseFloat(cell, 64); err == nil {
		return num
	}
	return cell
}
