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
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/time/rate"

	"github.com/syafiqhadzir/orstsync/internal/cache"
)

const (
	// DefaultBaseURL is the production lookup endpoint.
	DefaultBaseURL = "https://dictionary.orst.go.th/Lookup/lookupDomain.php"

	userAgent = "orstsync/1.0 (https://github.com/syafiqhadzir/orstsync)"
)

// ClientOptions configure a Client.
type ClientOptions struct {
	// BaseURL overrides the lookup endpoint (for testing).
	BaseURL string

	// Delay is the politeness delay between network calls. Cache hits
	// skip the delay entirely.
	Delay time.Duration

	// Timeout bounds each HTTP request.
	Timeout time.Duration

	// MaxRetries is the maximum number of retry attempts after the
	// first try of a page fetch.
	MaxRetries int

	// BackoffBase is the initial retry delay, doubled on each attempt.
	BackoffBase time.Duration
}

// DefaultClientOptions match the reference crawler configuration.
var DefaultClientOptions = &ClientOptions{
	BaseURL:     DefaultBaseURL,
	Delay:       200 * time.Millisecond,
	Timeout:     30 * time.Second,
	MaxRetries:  3,
	BackoffBase: time.Second,
}

// Client fetches headword records per alphabet segment.
type Client struct {
	baseURL     string
	http        *http.Client
	limiter     *rate.Limiter
	store       *cache.Store
	maxRetries  int
	backoffBase time.Duration
	log         *slog.Logger
}

// NewClient returns a Client memoizing responses in store. A nil store
// disables caching.
func NewClient(store *cache.Store, logger *slog.Logger, options *ClientOptions) *Client {
	if options == nil {
		options = DefaultClientOptions
	}
	baseURL := options.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	limiter := rate.NewLimiter(rate.Inf, 1)
	if options.Delay > 0 {
		limiter = rate.NewLimiter(rate.Every(options.Delay), 1)
	}

	return &Client{
		baseURL:     baseURL,
		http:        &http.Client{Timeout: options.Timeout},
		limiter:     limiter,
		store:       store,
		maxRetries:  options.MaxRetries,
		backoffBase: options.BackoffBase,
		log:         logger.With("component", "orst"),
	}
}

// FetchSegment fetches every headword record for one alphabet segment,
// paging through the endpoint. Transient page failures are retried with
// exponential backoff; exhausting retries or hitting a permanent failure
// surfaces the typed error to the caller.
func (c *Client) FetchSegment(ctx context.Context, segment string) ([]string, error) {
	first, err := c.fetchPage(ctx, segment, 1)
	if err != nil {
		return nil, err
	}

	words := append([]string{}, first.words...)
	for pageNum := 2; pageNum <= first.totalPages(); pageNum++ {
		p, err := c.fetchPage(ctx, segment, pageNum)
		if err != nil {
			return nil, err
		}
		words = append(words, p.words...)
	}

	c.log.Debug("segment fetched",
		slog.String("segment", segment),
		slog.Int("pages", first.totalPages()),
		slog.Int("words", len(words)),
	)
	return words, nil
}

// fetchPage returns one validated page, preferring the cache. A cache
// hit short-circuits the network path entirely, including the politeness
// delay. Network fetches run inside a bounded retry loop.
func (c *Client) fetchPage(ctx context.Context, segment string, pageNum int) (*page, error) {
	fp := cache.Fingerprint(segment, pageNum)

	if c.store != nil {
		body, err := c.store.Get(fp)
		switch {
		case err == nil:
			p, perr := parsePage(body)
			if perr != nil {
				// A cached entry that no longer parses means the cache
				// was tampered with or the schema moved on; refetch.
				c.log.Warn("discarding unparseable cache entry", slog.String("fingerprint", fp))
			} else {
				return p, nil
			}
		case errors.Is(err, cache.ErrMiss):
		default:
			return nil, fmt.Errorf("response cache: %w", err)
		}
	}

	body, err := c.fetchWithRetry(ctx, segment, pageNum)
	if err != nil {
		return nil, err
	}

	p, err := parsePage(body)
	if err != nil {
		// Validated above in fetchWithRetry; kept as a guard.
		return nil, &PermanentError{Err: err}
	}

	if c.store != nil {
		if err := c.store.Put(fp, body); err != nil {
			// Cache write failures degrade to uncached operation.
			c.log.Warn("cache write failed", slog.String("fingerprint", fp), slog.String("error", err.Error()))
		}
	}
	return p, nil
}

// fetchWithRetry drives a bounded retry loop around fetchOnce. Each
// attempt classifies its failure as retryable or fatal; retryable
// failures back off exponentially until the attempt budget is spent.
func (c *Client) fetchWithRetry(ctx context.Context, segment string, pageNum int) ([]byte, error) {
	backoff := c.backoffBase
	var lastErr error

	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			c.log.Warn("retrying page fetch",
				slog.String("segment", segment),
				slog.Int("page", pageNum),
				slog.Int("attempt", attempt),
				slog.Duration("backoff", backoff),
				slog.String("error", lastErr.Error()),
			)
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return nil, &TransientError{Err: ctx.Err()}
			}
			backoff *= 2
		}

		body, err := c.fetchOnce(ctx, segment, pageNum)
		if err == nil {
			return body, nil
		}
		if !IsTransient(err) {
			return nil, err
		}
		if ctx.Err() != nil {
			return nil, &TransientError{Err: ctx.Err()}
		}
		lastErr = err
	}

	return nil, fmt.Errorf("retries exhausted for %s page %d: %w", segment, pageNum, lastErr)
}

// fetchOnce performs a single rate-limited HTTP request and validates
// the response structure. Invalid payloads are reported as transient so
// flaky gateway pages get retried, but they are never cached.
func (c *Client) fetchOnce(ctx context.Context, segment string, pageNum int) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, &TransientError{Err: err}
	}

	q := url.Values{}
	q.Set("domain", segment)
	q.Set("page", strconv.Itoa(pageNum))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, &PermanentError{Err: fmt.Errorf("creating request: %w", err)}
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json, text/javascript, */*; q=0.01")
	req.Header.Set("Accept-Language", "th-TH,th;q=0.9,en;q=0.8")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &TransientError{Err: err}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
		return nil, &TransientError{Status: resp.StatusCode}
	default:
		return nil, &PermanentError{Status: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransientError{Err: fmt.Errorf("reading body: %w", err)}
	}

	if _, err := parsePage(body); err != nil {
		return nil, &TransientError{Err: err}
	}
	return body, nil
}
