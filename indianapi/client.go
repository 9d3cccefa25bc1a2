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

// Package indianapi wraps the stock.indianapi.in REST endpoints used by the
// pipelines. The client only fetches and decodes; all reshaping happens in
// the table package.
package indianapi

import (
	"context"
	"fmt"

	"github.com/go-resty/resty/v2"
	"github.com/quantfill/stocksheet/data"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

const defaultBaseURL = "https://stock.indianapi.in"

// Client talks to the indianapi.in stock API. The API key is supplied
// explicitly; the client never reads ambient configuration.
type Client struct {
	resty   *resty.Client
	limiter *rate.Limiter
}

// New creates a client authenticated with apiKey. requestsPerMinute bounds
// the request rate; values <= 0 fall back to 60.
func New(apiKey string, requestsPerMinute int) *Client {
	if requestsPerMinute <= 0 {
		requestsPerMinute = 60
	}

	return &Client{
		resty:   resty.New().SetBaseURL(defaultBaseURL).SetHeader("X-Api-Key", apiKey),
		limiter: rate.NewLimiter(rate.Limit(float64(requestsPerMinute)/61.0), 1),
	}
}

// SetBaseURL points the client at a different API host. Used by tests.
func (client *Client) SetBaseURL(baseURL string) {
	client.resty.SetBaseURL(baseURL)
}

// HistoricalData fetches the price time series for a symbol over the given
// period (e.g. "5yr") and filter (e.g. "default"). The response decodes to
// the series-shape payload.
func (client *Client) HistoricalData(ctx context.Context, symbol, period, filter string) (*data.Payload, error) {
	return client.get(ctx, "/historical_data", map[string]string{
		"stock_name": symbol,
		"period":     period,
		"filter":     filter,
	})
}

// HistoricalStats fetches one category of fundamental data for a symbol.
// The response decodes to the attribute-shape payload.
func (client *Client) HistoricalStats(ctx context.Context, symbol, statType string) (*data.Payload, error) {
	return client.get(ctx, "/historical_stats", map[string]string{
		"stock_name": symbol,
		"stats":      statType,
	})
}

func (client *Client) get(ctx context.Context, path string, params map[string]string) (*data.Payload, error) {
	logger := zerolog.Ctx(ctx)

	if err := client.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	resp, err := client.resty.R().
		SetContext(ctx).
		SetQueryParams(params).
		Get(path)
	if err != nil {
		logger.Error().Err(err).Str("Path", path).Msg("request to indianapi failed")
		return nil, err
	}

	if resp.StatusCode() >= 300 {
		logger.Error().Int("StatusCode", resp.StatusCode()).Str("URL", resp.Request.URL).
			Msg("indianapi returned an invalid HTTP response")
		return nil, fmt.Errorf("indianapi returned status %d", resp.StatusCode())
	}

	payload, err := data.DecodePayload(resp.Body())
	if err != nil {
		logger.Error().Err(err).Str("Path", path).Msg("could not decode indianapi response")
		return nil, err
	}

	return payload, nil
}
