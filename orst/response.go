// Copyright 2026 Syafiq Hadzir
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package orst

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/k3a/html2text"
)

// ResultsPerPage is the fixed page size of the lookup endpoint.
const ResultsPerPage = 10

// page is one validated page of lookup results.
type page struct {
	totalCount int
	words      []string
}

// totalPages derives the page count from the total record count.
func (p *page) totalPages() int {
	return (p.totalCount + ResultsPerPage - 1) / ResultsPerPage
}

// parsePage validates and decodes a raw response body. The endpoint
// returns a two-element array [total_count, [words...]]; anything else
// is a malformed response. Headword records occasionally embed HTML
// markup (highlight spans, entities), which is flattened to plain text
// here before normalization sees it.
func parsePage(body []byte) (*page, error) {
	var envelope []json.RawMessage
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if len(envelope) != 2 {
		return nil, fmt.Errorf("%w: expected 2 elements, got %d", ErrMalformedResponse, len(envelope))
	}

	var totalCount int
	if err := json.Unmarshal(envelope[0], &totalCount); err != nil {
		return nil, fmt.Errorf("%w: total count: %v", ErrMalformedResponse, err)
	}
	if totalCount < 0 {
		return nil, fmt.Errorf("%w: negative total count %d", ErrMalformedResponse, totalCount)
	}

	var raw []string
	if err := json.Unmarshal(envelope[1], &raw); err != nil {
		return nil, fmt.Errorf("%w: word list: %v", ErrMalformedResponse, err)
	}

	words := make([]string, 0, len(raw))
	for _, r := range raw {
		w := r
		if strings.ContainsAny(w, "<&") {
			w = html2text.HTML2Text(w)
		}
		words = append(words, w)
	}

	return &page{
		totalCount: totalCount,
		words:      words,
	}, nil
}
