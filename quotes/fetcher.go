// Package quotes fetches the motivational phrase shown on the task screen.
package quotes

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

const (
	// FallbackQuote is returned on any fetch failure; no error escapes.
	FallbackQuote = "A persistência é o caminho do êxito."

	// missingQuote is returned when the endpoint answers without a text.
	missingQuote = "Frase não encontrada"

	cacheKey = "fraseMotivacional"

	requestTimeout = 10 * time.Second
)

// Fetcher performs one GET against the quote endpoint and caches the
// result under a fixed key for its own lifetime. No retry, no refresh.
type Fetcher struct {
	client *http.Client
	url    string
	log    zerolog.Logger

	lock  sync.Mutex
	cache map[string]string
}

// FetcherOption defines a function type to modify the Fetcher instance.
type FetcherOption func(*Fetcher)

// WithHTTPClient sets the HTTP client (primarily for testing)
func WithHTTPClient(c *http.Client) FetcherOption {
	return func(f *Fetcher) {
		f.client = c
	}
}

func NewFetcher(url string, log zerolog.Logger, options ...FetcherOption) *Fetcher {
	f := &Fetcher{
		client: &http.Client{Timeout: requestTimeout},
		url:    url,
		log:    log,
		cache:  make(map[string]string),
	}
	for _, opt := range options {
		opt(f)
	}
	return f
}

// Fetch returns the cached quote, fetching it on first use. Any failure
// resolves to FallbackQuote.
func (f *Fetcher) Fetch(ctx context.Context) string {
	f.lock.Lock()
	defer f.lock.Unlock()

	if quote, ok := f.cache[cacheKey]; ok {
		return quote
	}
	quote := f.fetch(ctx)
	f.cache[cacheKey] = quote
	return quote
}

func (f *Fetcher) fetch(ctx context.Context) string {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, nil)
	if err != nil {
		f.log.Error().Err(err).Msg("quote request build failed")
		return FallbackQuote
	}

	resp, err := f.client.Do(req)
	if err != nil {
		f.log.Error().Err(err).Msg("quote fetch failed")
		return FallbackQuote
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		f.log.Error().Int("status", resp.StatusCode).Msg("quote endpoint returned non-success status")
		return FallbackQuote
	}

	var body struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		f.log.Error().Err(err).Msg("quote decode failed")
		return FallbackQuote
	}
	if body.Text == "" {
		return missingQuote
	}
	return body.Text
}
