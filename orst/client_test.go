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
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syafiqhadzir/orstsync/internal/cache"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testOptions(baseURL string) *ClientOptions {
	return &ClientOptions{
		BaseURL:     baseURL,
		Delay:       0,
		Timeout:     5 * time.Second,
		MaxRetries:  2,
		BackoffBase: time.Millisecond,
	}
}

// pagedHandler serves a fixed word list for one segment, ten per page.
func pagedHandler(t *testing.T, segment string, words []string, calls *atomic.Int64) http.HandlerFunc {
	t.Helper()
	return func(w http.ResponseWriter, r *http.Request) {
		if calls != nil {
			calls.Add(1)
		}
		require.Equal(t, segment, r.URL.Query().Get("domain"))

		pageNum := 1
		fmt.Sscanf(r.URL.Query().Get("page"), "%d", &pageNum)

		lo := (pageNum - 1) * ResultsPerPage
		hi := lo + ResultsPerPage
		if lo > len(words) {
			lo = len(words)
		}
		if hi > len(words) {
			hi = len(words)
		}

		body, err := json.Marshal([]any{len(words), words[lo:hi]})
		require.NoError(t, err)
		w.Write(body)
	}
}

// TestClient_FetchSegment pages through a multi-page segment.
func TestClient_FetchSegment(t *testing.T) {
	t.Parallel()

	words := make([]string, 0, 25)
	for i := 0; i < 25; i++ {
		words = append(words, fmt.Sprintf("กา%d", i))
	}

	srv := httptest.NewServer(pagedHandler(t, "ก", words, nil))
	defer srv.Close()

	c := NewClient(nil, testLogger(), testOptions(srv.URL))
	got, err := c.FetchSegment(context.Background(), "ก")
	require.NoError(t, err)
	assert.Equal(t, words, got)
}

// TestClient_CacheShortCircuit checks that a second fetch is served from
// the cache without touching the network.
func TestClient_CacheShortCircuit(t *testing.T) {
	t.Parallel()

	var calls atomic.Int64
	srv := httptest.NewServer(pagedHandler(t, "ข", []string{"ขา", "ของ"}, &calls))
	defer srv.Close()

	store, err := cache.NewStore(t.TempDir())
	require.NoError(t, err)

	c := NewClient(store, testLogger(), testOptions(srv.URL))

	first, err := c.FetchSegment(context.Background(), "ข")
	require.NoError(t, err)
	require.Equal(t, int64(1), calls.Load())

	second, err := c.FetchSegment(context.Background(), "ข")
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, int64(1), calls.Load(), "cache hit must not issue a request")
}

// TestClient_RetriesTransient checks that 5xx responses are retried up
// to the attempt budget and then succeed.
func TestClient_RetriesTransient(t *testing.T) {
	t.Parallel()

	var calls atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) <= 2 {
			http.Error(w, "unavailable", http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte(`[1,["ขา"]]`))
	}))
	defer srv.Close()

	c := NewClient(nil, testLogger(), testOptions(srv.URL))
	got, err := c.FetchSegment(context.Background(), "ข")
	require.NoError(t, err)
	assert.Equal(t, []string{"ขา"}, got)
	assert.Equal(t, int64(3), calls.Load())
}

// TestClient_RetriesExhausted checks that persistent transient failures
// surface after the attempt budget is spent.
func TestClient_RetriesExhausted(t *testing.T) {
	t.Parallel()

	var calls atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.Error(w, "unavailable", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := NewClient(nil, testLogger(), testOptions(srv.URL))
	_, err := c.FetchSegment(context.Background(), "ข")
	require.Error(t, err)
	assert.True(t, IsTransient(err), "exhausted retries should remain transient: %v", err)
	assert.Equal(t, int64(3), calls.Load(), "initial attempt plus two retries")
}

// TestClient_PermanentNoRetry checks that non-rate-limit 4xx statuses
// fail immediately.
func TestClient_PermanentNoRetry(t *testing.T) {
	t.Parallel()

	var calls atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.Error(w, "forbidden", http.StatusForbidden)
	}))
	defer srv.Close()

	c := NewClient(nil, testLogger(), testOptions(srv.URL))
	_, err := c.FetchSegment(context.Background(), "ข")

	var pe *PermanentError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, http.StatusForbidden, pe.Status)
	assert.Equal(t, int64(1), calls.Load(), "permanent failures must not be retried")
}

// TestClient_MalformedNotCached checks that structurally invalid
// payloads are retried and never written to the cache.
func TestClient_MalformedNotCached(t *testing.T) {
	t.Parallel()

	var calls atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) <= 1 {
			w.Write([]byte(`{"unexpected": true}`))
			return
		}
		w.Write([]byte(`[1,["ขา"]]`))
	}))
	defer srv.Close()

	store, err := cache.NewStore(t.TempDir())
	require.NoError(t, err)

	c := NewClient(store, testLogger(), testOptions(srv.URL))
	got, err := c.FetchSegment(context.Background(), "ข")
	require.NoError(t, err)
	assert.Equal(t, []string{"ขา"}, got)
	assert.Equal(t, int64(2), calls.Load())

	// Only the valid response may be cached.
	body, err := store.Get(cache.Fingerprint("ข", 1))
	require.NoError(t, err)
	assert.JSONEq(t, `[1,["ขา"]]`, string(body))
}

// TestClient_ContextCancelled checks that cancellation aborts the fetch.
func TestClient_ContextCancelled(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unavailable", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := NewClient(nil, testLogger(), testOptions(srv.URL))
	_, err := c.FetchSegment(ctx, "ข")
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled) || IsTransient(err), "got %v", err)
}

// TestParsePage tests response structure validation.
func TestParsePage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string

		expectedTotal int
		expectedWords []string
		err           error
	}{
		{
			name:          "valid",
			body:          `[12,["กา","ก่า"]]`,
			expectedTotal: 12,
			expectedWords: []string{"กา", "ก่า"},
		},
		{
			name:          "empty page",
			body:          `[0,[]]`,
			expectedTotal: 0,
			expectedWords: []string{},
		},
		{
			name:          "html stripped from records",
			body:          `[1,["<em>กา</em>"]]`,
			expectedTotal: 1,
			expectedWords: []string{"กา"},
		},
		{
			name: "not an array",
			body: `{"total": 1}`,
			err:  ErrMalformedResponse,
		},
		{
			name: "wrong arity",
			body: `[1,["กา"],true]`,
			err:  ErrMalformedResponse,
		},
		{
			name: "non-integer total",
			body: `["many",["กา"]]`,
			err:  ErrMalformedResponse,
		},
		{
			name: "negative total",
			body: `[-1,[]]`,
			err:  ErrMalformedResponse,
		},
		{
			name: "non-string words",
			body: `[1,[42]]`,
			err:  ErrMalformedResponse,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			p, err := parsePage([]byte(tc.body))
			if tc.err != nil {
				require.ErrorIs(t, err, tc.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expectedTotal, p.totalCount)
			assert.Equal(t, tc.expectedWords, p.words)
		})
	}
}

// TestPage_TotalPages tests page math.
func TestPage_TotalPages(t *testing.T) {
	t.Parallel()

	tests := []struct {
		total    int
		expected int
	}{
		{0, 0},
		{1, 1},
		{10, 1},
		{11, 2},
		{25, 3},
	}

	for _, tc := range tests {
		tc := tc
		p := &page{totalCount: tc.total}
		if got := p.totalPages(); got != tc.expected {
			t.Errorf("totalPages(%d): got %d, want %d", tc.total, got, tc.expected)
		}
	}
}
