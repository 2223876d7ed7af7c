// Package remote implements the RemoteAPI port against the attendance
// service's HTTP API. Authentication is a DRF-style token header on every
// call except login; non-2xx responses are translated into
// *domain.RemoteError carrying the server-provided message when one can be
// decoded, else an operation-specific fallback.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/heatseek/attendance-system/internal/core/domain"
)

const defaultTimeout = 30 * time.Second

// Client talks to the remote persistence service.
type Client struct {
	baseURL string
	http    *http.Client
	log     zerolog.Logger
}

// NewClient builds a Client for the given base URL (e.g.
// "https://heatseek-api.onrender.com"). A zero timeout falls back to
// defaultTimeout.
func NewClient(baseURL string, timeout time.Duration, log zerolog.Logger) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		log:     log,
	}
}

// errorBody is the union of the error envelopes the service uses: login
// failures carry "message", DRF validation failures carry "detail".
type errorBody struct {
	Message string `json:"message"`
	Detail  string `json:"detail"`
}

// do performs one request. A non-empty token is sent as the Authorization
// header. out, when non-nil, receives the decoded 2xx response body. fallback
// is the error message used when the server provides none.
func (c *Client) do(ctx context.Context, method, path, token string, body, out any, fallback string) error {
	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Token "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &domain.RemoteError{StatusCode: 0, Message: fallback}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		message := fallback
		var eb errorBody
		if decodeErr := json.NewDecoder(resp.Body).Decode(&eb); decodeErr == nil {
			switch {
			case eb.Message != "":
				message = eb.Message
			case eb.Detail != "":
				message = eb.Detail
			}
		}
		c.log.Debug().Int("status", resp.StatusCode).Str("path", path).Str("message", message).Msg("remote call rejected")
		return &domain.RemoteError{StatusCode: resp.StatusCode, Message: message}
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func escape(segment string) string {
	return url.PathEscape(segment)
}
