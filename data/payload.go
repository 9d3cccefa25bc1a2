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
	"errors"

	"github.com/goccy/go-json"
)

var ErrUnknownShape = errors.New("payload does not match any known shape")

// SeriesPayload is the /historical_data response shape: a list of labelled
// datasets where each value row starts with a date followed by one or more
// numeric fields.
type SeriesPayload struct {
	Datasets []Dataset `json:"datasets"`
}

type Dataset struct {
	Label  string  `json:"label"`
	Values [][]any `json:"values"`
}

// AttributePayload is the /historical_stats response shape: a map of
// attribute name to {date: value}.
type AttributePayload map[string]map[string]any

// Payload is the tagged union of the two response shapes the API produces.
// Exactly one of Series or Attributes is set.
type Payload struct {
	Series     *SeriesPayload
	Attributes AttributePayload
}

// DecodePayload sniffs the shape of a raw API response and decodes it into
// the matching Payload case. A document with a top-level "datasets" key is
// a series payload; any other JSON object whose values are date→value maps
// is an attribute payload. A JSON null decodes to an empty attribute
// payload (the API returns null when it has nothing for a stat type).
func DecodePayload(raw []byte) (*Payload, error) {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(raw, &probe); err != nil {
		return nil, err
	}

	if probe == nil {
		return &Payload{Attributes: AttributePayload{}}, nil
	}

	if _, ok := probe["datasets"]; ok {
		var series SeriesPayload
		if err := json.Unmarshal(raw, &series); err != nil {
			return nil, err
		}
		return &Payload{Series: &series}, nil
	}

	attrs := make(AttributePayload, len(probe))
	for name, rawValues := range probe {
		var values map[string]any
		if err := json.Unmarshal(rawValues, &values); err != nil {
			return nil, ErrUnknownShape
		}
		attrs[name] = values
	}

	return &Payload{Attributes: attrs}, nil
}
