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
	"github.com/quantfill/stocksheet/data"
	"github.com/rs/zerolog/log"
	"github.com/xitongsys/parquet-go-source/local"
	"github.com/xitongsys/parquet-go/parquet"
	"github.com/xitongsys/parquet-go/writer"
)

type parquetRecord struct {
	Symbol    string   `parquet:"name=symbol, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY"`
	Date      string   `parquet:"name=date, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY"`
	Attribute string   `parquet:"name=attribute, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY"`
	Value     *float64 `parquet:"name=value, type=DOUBLE"`
	ValueText string   `parquet:"name=value_text, type=BYTE_ARRAY, convertedtype=UTF8"`
}

// WriteParquet exports long-form records to a parquet file. Numeric values
// land in the value column; non-numeric values are kept verbatim in
// value_text so nothing is lost on export.
func WriteParquet(fn string, records []data.FlatRecord) error {
	fh, err := local.NewLocalFileWriter(fn)
	if err != nil {
		log.Error().Err(err).Str("FileName", fn).Msg("cannot create local file")
		return err
	}
	defer fh.Close()

	pw, err := writer.NewParquetWriter(fh, new(parquetRecord), 4)
	if err != nil {
		log.Error().Err(err).Str("FileName", fn).Msg("cannot create parquet writer")
		return err
	}

	pw.RowGroupSize = 128 * 1024 * 1024 // 128M
	pw.PageSize = 8 * 1024              // 8k
	pw.CompressionType = parquet.CompressionCodec_ZSTD

	for _, rec := range records {
		row := parquetRecord{
			Symbol:    rec.Symbol,
			Date:      rec.Date,
			Attribute: rec.Attribute,
		}

		if val, ok := rec.Float(); ok {
			row.Value = &val
		} else {
			row.ValueText = data.FormatValue(rec.Value)
		}

		if err := pw.Write(row); err != nil {
			log.Error().Err(err).
				Str("Symbol", rec.Symbol).Str("DateStr", rec.Date).Str("Attribute", rec.Attribute).
				Msg("parquet write failed for record")
		}
	}

	if err := pw.WriteStop(); err != nil {
		log.Error().Err(err).Str("FileName", fn).Msg("parquet write failed")
		return err
	}

	log.Info().Int("NumRecords", len(records)).Str("FileName", fn).Msg("parquet write finished")
	return nil
}
