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
package indianapi_test

import (
	"context"
	"net/http"
	"net/http/httptest"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/quantfill/stocksheet/indianapi"
)

var _ = Describe("Client", func() {
	var (
		server  *httptest.Server
		client  *indianapi.Client
		lastReq *http.Request
		status  int
		body    string
	)

	BeforeEach(func() {
		status = http.StatusOK
		body = `{"datasets": []}`

		server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			lastReq = r
			w.WriteHeader(status)
			_, _ = w.Write([]byte(body))
		}))

		client = indianapi.New("test-key", 6000)
		client.SetBaseURL(server.URL)
	})

	AfterEach(func() {
		server.Close()
	})

	Describe("HistoricalData", func() {
		It("sends the api key header and query parameters", func() {
			body = `{"datasets": [{"label": "Close", "values": [["2024-01-01", 100]]}]}`

			payload, err := client.HistoricalData(context.Background(), "COCHINSHIP", "5yr", "default")
			Expect(err).NotTo(HaveOccurred())

			Expect(lastReq.URL.Path).To(Equal("/historical_data"))
			Expect(lastReq.Header.Get("X-Api-Key")).To(Equal("test-key"))
			Expect(lastReq.URL.Query().Get("stock_name")).To(Equal("COCHINSHIP"))
			Expect(lastReq.URL.Query().Get("period")).To(Equal("5yr"))
			Expect(lastReq.URL.Query().Get("filter")).To(Equal("default"))

			Expect(payload.Series).NotTo(BeNil())
			Expect(payload.Series.Datasets).To(HaveLen(1))
		})

		It("returns an error for non-2xx responses", func() {
			status = http.StatusForbidden
			body = `{"error": "invalid key"}`

			_, err := client.HistoricalData(context.Background(), "COCHINSHIP", "5yr", "default")
			Expect(err).To(MatchError(ContainSubstring("403")))
		})

		It("returns an error for malformed JSON", func() {
			body = `{"datasets": [`

			_, err := client.HistoricalData(context.Background(), "COCHINSHIP", "5yr", "default")
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("HistoricalStats", func() {
		It("decodes the attribute payload", func() {
			body = `{"eps": {"2024Q1": 5}}`

			payload, err := client.HistoricalStats(context.Background(), "DIXON", "quarter_results")
			Expect(err).NotTo(HaveOccurred())

			Expect(lastReq.URL.Path).To(Equal("/historical_stats"))
			Expect(lastReq.URL.Query().Get("stock_name")).To(Equal("DIXON"))
			Expect(lastReq.URL.Query().Get("stats")).To(Equal("quarter_results"))

			Expect(payload.Attributes).To(HaveKey("eps"))
		})

		It("decodes a null body as an empty attribute payload", func() {
			body = `null`

			payload, err := client.HistoricalStats(context.Background(), "DIXON", "cashflow")
			Expect(err).NotTo(HaveOccurred())
			Expect(payload.Attributes).To(BeEmpty())
		})
	})
})
