// Package upstream is the HTTP client for the remote directory API. All real
// work (persistence, search ranking, credential checks, claim approval)
// happens on the other side of this client; the gateway only shapes requests
// and normalizes responses.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/localspot/directory-gateway/internal/api/metrics"
	"github.com/localspot/directory-gateway/internal/core/domain"
)

const defaultTimeout = 15 * time.Second

// TokenSource yields the session's current bearer token, or "" when
// anonymous. The session service is the canonical implementation.
type TokenSource func() string

// Client talks to the remote directory API. It implements ports.AuthAPI and
// ports.DirectoryAPI.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
	logger  zerolog.Logger
}

// NewClient creates a Client for the API at baseURL (without a trailing
// slash). tokens may be nil while wiring auth-only flows.
func NewClient(baseURL string, tokens TokenSource, logger zerolog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: defaultTimeout},
		tokens:  tokens,
		logger:  logger,
	}
}

// do issues a request and decodes a 2xx JSON body into out (skipped when out
// is nil). Non-2xx answers become *domain.TransportError carrying the
// server's message. op labels the call in metrics and logs.
func (c *Client) do(ctx context.Context, op, method, path string, query url.Values, body, out any) error {
	var payload io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s request: %w", op, err)
		}
		payload = bytes.NewReader(raw)
	}

	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, target, payload)
	if err != nil {
		return fmt.Errorf("build %s request: %w", op, err)
	}
	req.Header.Set("Content-Type", "application/json")
	// The bearer header is attached whenever a token exists, including on
	// the unauthenticated auth endpoints. Header construction is shared
	// across every call.
	if c.tokens != nil {
		if token := c.tokens(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		metrics.UpstreamRequestDuration.WithLabelValues(op, "error").Observe(time.Since(start).Seconds())
		return &domain.TransportError{Message: fmt.Sprintf("%s: request failed: %v", op, err)}
	}
	defer resp.Body.Close()
	metrics.UpstreamRequestDuration.WithLabelValues(op, strconv.Itoa(resp.StatusCode)).Observe(time.Since(start).Seconds())

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read %s response: %w", op, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Warn().Str("operation", op).Int("status", resp.StatusCode).Msg("upstream rejected request")
		return &domain.TransportError{StatusCode: resp.StatusCode, Message: errorMessage(raw)}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return domain.ErrMalformedResponse
	}
	return nil
}

// errorMessage extracts the server-provided error text from a response body.
// The remote API is inconsistent: some endpoints answer with a bare string,
// some with {"error": "..."} or {"message": "..."}  and some with plain text.
func errorMessage(raw []byte) string {
	body := strings.TrimSpace(string(raw))
	if body == "" {
		return ""
	}

	var quoted string
	if json.Unmarshal(raw, &quoted) == nil {
		return quoted
	}

	var envelope struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if json.Unmarshal(raw, &envelope) == nil {
		if envelope.Error != "" {
			return envelope.Error
		}
		if envelope.Message != "" {
			return envelope.Message
		}
	}
	return body
}
