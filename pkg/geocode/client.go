// Package geocode resolves street addresses to coordinates via the Kakao
// local address search API, memoizing outcomes per run.
package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/time/rate"
)

const (
	defaultBaseURL = "https://dapi.kakao.com"
	searchPath     = "/v2/local/search/address.json"
	defaultTimeout = 5 * time.Second
)

// ErrorKind classifies a failed lookup.
type ErrorKind int

const (
	// ErrNone marks a resolved outcome.
	ErrNone ErrorKind = iota
	// ErrNetwork covers transport errors, timeouts and non-2xx responses.
	ErrNetwork
	// ErrNoResult means the service matched zero addresses.
	ErrNoResult
	// ErrMalformed means the response was missing expected fields.
	ErrMalformed
)

// String returns the kind name for logging.
func (k ErrorKind) String() string {
	switch k {
	case ErrNone:
		return "none"
	case ErrNetwork:
		return "network_failure"
	case ErrNoResult:
		return "no_result"
	case ErrMalformed:
		return "malformed_response"
	default:
		return "unknown"
	}
}

const (
	detailNoResult  = "address not found"
	detailMalformed = "unexpected response shape"
)

// Outcome is the result of resolving one address: either a coordinate or
// a classified failure, never both.
type Outcome struct {
	Latitude  float64
	Longitude float64
	Resolved  bool
	Kind      ErrorKind
	Detail    string
}

func resolvedOutcome(lat, lon float64) Outcome {
	return Outcome{Latitude: lat, Longitude: lon, Resolved: true}
}

func failedOutcome(kind ErrorKind, detail string) Outcome {
	return Outcome{Kind: kind, Detail: detail}
}

// Client resolves normalized addresses against an external geocoder.
type Client interface {
	// Geocode resolves a non-empty normalized address. The outcome is
	// read from and stored into the given per-run cache, keyed by the
	// address text; a cached outcome is returned without a network call.
	Geocode(ctx context.Context, address string, cache *Cache) Outcome

	// Credentialed reports whether an API credential is configured.
	Credentialed() bool
}

// Option configures the Kakao client.
type Option func(*kakaoClient)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *kakaoClient) {
		c.httpClient = hc
	}
}

// WithBaseURL overrides the Kakao API base URL.
func WithBaseURL(u string) Option {
	return func(c *kakaoClient) {
		c.baseURL = u
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *kakaoClient) {
		c.httpClient.Timeout = d
	}
}

// WithRateLimit sets the requests-per-second pacing for API calls.
func WithRateLimit(rps float64) Option {
	return func(c *kakaoClient) {
		c.limiter = rate.NewLimiter(rate.Limit(rps), 1)
	}
}

type kakaoClient struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	limiter    *rate.Limiter
}

// NewClient creates a Kakao geocoding client with the given REST API key.
func NewClient(apiKey string, opts ...Option) Client {
	c := &kakaoClient{
		httpClient: &http.Client{Timeout: defaultTimeout},
		baseURL:    defaultBaseURL,
		apiKey:     apiKey,
		limiter:    rate.NewLimiter(rate.Inf, 1),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *kakaoClient) Credentialed() bool {
	return c.apiKey != ""
}

func (c *kakaoClient) Geocode(ctx context.Context, address string, cache *Cache) Outcome {
	if out, ok := cache.Get(address); ok {
		return out
	}

	out := c.search(ctx, address)
	cache.Put(address, out)
	return out
}

// kakaoResponse is the JSON shape of a Kakao address search response.
type kakaoResponse struct {
	Documents []kakaoDocument `json:"documents"`
}

type kakaoDocument struct {
	Address *kakaoAddress `json:"address"`
}

// kakaoAddress carries coordinates as numeric strings: x is longitude,
// y is latitude.
type kakaoAddress struct {
	X string `json:"x"`
	Y string `json:"y"`
}

// search issues a single lookup; a failure is final, no retries.
func (c *kakaoClient) search(ctx context.Context, address string) Outcome {
	if err := c.limiter.Wait(ctx); err != nil {
		return failedOutcome(ErrNetwork, "request failed: "+err.Error())
	}

	params := url.Values{"query": {address}}
	reqURL := c.baseURL + searchPath + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return failedOutcome(ErrNetwork, "request failed: "+err.Error())
	}
	req.Header.Set("Authorization", "KakaoAK "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return failedOutcome(ErrNetwork, "request failed: "+err.Error())
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return failedOutcome(ErrNetwork, fmt.Sprintf("request failed: status %d", resp.StatusCode))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return failedOutcome(ErrNetwork, "request failed: "+err.Error())
	}

	var kr kakaoResponse
	if err := json.Unmarshal(body, &kr); err != nil {
		return failedOutcome(ErrMalformed, detailMalformed)
	}

	if len(kr.Documents) == 0 {
		return failedOutcome(ErrNoResult, detailNoResult)
	}

	addr := kr.Documents[0].Address
	if addr == nil {
		return failedOutcome(ErrMalformed, detailMalformed)
	}

	lat, latErr := strconv.ParseFloat(addr.Y, 64)
	lon, lonErr := strconv.ParseFloat(addr.X, 64)
	if latErr != nil || lonErr != nil {
		return failedOutcome(ErrMalformed, detailMalformed)
	}

	return resolvedOutcome(lat, lon)
}
