package apollo

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	json "github.com/goccy/go-json"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/enrichlens/backend/internal/domain"
)

const (
	// DefaultBaseURL is the production Apollo API root
	DefaultBaseURL = "https://api.apollo.io/api/v1"

	// DefaultTimeout bounds one request round trip when none is configured
	DefaultTimeout = 30 * time.Second

	// maxResponseBytes caps how much of a response body is read
	maxResponseBytes = 4 << 20

	userAgent = "EnrichLens/1.0"

	// truncatedMarker ends an error body that was cut at the size cap
	truncatedMarker = "... [truncated]"
)

var (
	// ErrResponseTooLarge is returned when a 200 body exceeds the size cap
	ErrResponseTooLarge = errors.New("response body exceeds size limit")

	// ErrNotObject is returned when a 200 body is valid JSON but not a single object
	ErrNotObject = errors.New("response is not a JSON object")
)

// Client handles communication with the Apollo enrichment API.
// It holds no API key: the key travels with each call.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *slog.Logger
	maxBody    int64
}

// NewClient creates a new Apollo API client
func NewClient(baseURL string, timeout time.Duration) *Client {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &Client{
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		baseURL: strings.TrimRight(baseURL, "/"),
		logger:  slog.New(slog.DiscardHandler),
		maxBody: maxResponseBytes,
	}
}

// SetLogger sets the logger used for per-request debug lines
func (c *Client) SetLogger(logger *slog.Logger) {
	if logger != nil {
		c.logger = logger
	}
}

// SetTransport replaces the underlying round tripper, keeping the timeout
func (c *Client) SetTransport(rt http.RoundTripper) {
	c.httpClient.Transport = rt
}

// EnrichCompany enriches an organization by domain
func (c *Client) EnrichCompany(ctx context.Context, apiKey string, req domain.CompanyRequest) domain.Result {
	return c.enrich(ctx, apiKey, req)
}

// EnrichContact matches a person by email
func (c *Client) EnrichContact(ctx context.Context, apiKey string, req domain.PersonRequest) domain.Result {
	return c.enrich(ctx, apiKey, req)
}

// enrich performs the call and converts its outcome into a Result.
// Panics below this point surface as unexpected failures.
func (c *Client) enrich(ctx context.Context, apiKey string, req domain.Request) (result domain.Result) {
	defer func() {
		if r := recover(); r != nil {
			c.logger.Error("apollo request panicked", "kind", req.Kind().String(), "panic", r)
			result = domain.NewFailure(fmt.Errorf("panic: %v", r))
		}
	}()

	envelope, err := c.post(ctx, apiKey, req)
	return domain.ResultFrom(req.Kind(), envelope, err)
}

// post sends the request body and decodes a 200 response into a generic envelope
func (c *Client) post(ctx context.Context, apiKey string, req domain.Request) (map[string]any, error) {
	payload, err := json.Marshal(req.Body())
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	endpoint := c.baseURL + req.Endpoint()
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Cache-Control", "no-cache")
	httpReq.Header.Set("X-Api-Key", apiKey)
	httpReq.Header.Set("User-Agent", userAgent)

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.logger.Debug("apollo request failed",
			"endpoint", req.Endpoint(),
			"key", MaskKey(apiKey),
			"duration", time.Since(start),
			"error", err,
		)
		return nil, &domain.TransportError{Err: err}
	}
	defer resp.Body.Close()

	body, truncated, err := readLimitedBody(resp.Body, c.maxBody)
	if err != nil {
		return nil, &domain.TransportError{Err: fmt.Errorf("failed to read response: %w", err)}
	}

	c.logger.Debug("apollo request",
		"endpoint", req.Endpoint(),
		"key", MaskKey(apiKey),
		"status", resp.StatusCode,
		"duration", time.Since(start),
		"truncated", truncated,
	)

	if resp.StatusCode != http.StatusOK {
		text := string(body)
		if truncated {
			text += truncatedMarker
		}
		return nil, &domain.APIError{StatusCode: resp.StatusCode, Body: text}
	}
	if truncated {
		return nil, fmt.Errorf("%w (%d bytes)", ErrResponseTooLarge, c.maxBody)
	}

	envelope, err := decodeEnvelope(body)
	if err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return envelope, nil
}

// decodeEnvelope decodes exactly one JSON object, keeping numbers in their
// literal form
func decodeEnvelope(body []byte) (map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var envelope map[string]any
	if err := dec.Decode(&envelope); err != nil {
		return nil, err
	}
	if envelope == nil {
		return nil, ErrNotObject
	}

	var trailing json.RawMessage
	if err := dec.Decode(&trailing); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: trailing data after object", ErrNotObject)
	}
	return envelope, nil
}

// readLimitedBody reads at most limit bytes from r and reports whether
// more were available
func readLimitedBody(r io.Reader, limit int64) ([]byte, bool, error) {
	body, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return nil, false, err
	}
	if int64(len(body)) > limit {
		return body[:limit], true, nil
	}
	return body, false, nil
}

// MaskKey keeps the first four characters of an API key for log correlation
func MaskKey(key string) string {
	key = strings.TrimSpace(key)
	if len(key) <= 4 {
		return strings.Repeat("*", len(key))
	}
	return key[:4] + strings.Repeat("*", 4)
}
