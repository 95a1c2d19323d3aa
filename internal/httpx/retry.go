// Package httpx wraps net/http with the retry and error-shaping policy
// shared by the hand-rolled HTTP clients (ollama, platform upload, object
// storage). SDK-backed providers keep their SDK retries.
package httpx

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/pixl-sh/pixl-nodes/logging"
)

// MaxAttempts bounds retries for rate limits, timeouts and connection
// failures. Auth errors and server errors fail fast.
const MaxAttempts = 3

// StatusError is returned for non-2xx responses that are not retried. Body
// holds the response body so callers can apply service specific shaping.
type StatusError struct {
	StatusCode int
	Message    string
	Body       []byte
}

func (e *StatusError) Error() string { return e.Message }

// Do executes the request produced by build, retrying rate limits, timeouts
// and connection failures with exponential backoff. The builder runs once per
// attempt so request bodies can be re-created. On success the response body
// bytes are returned.
func Do(ctx context.Context, client *http.Client, logger logging.Logger, build func(ctx context.Context) (*http.Request, error)) ([]byte, error) {
	if client == nil {
		client = http.DefaultClient
	}
	if logger == nil {
		logger = logging.NoOpLogger{}
	}

	var lastErr error

	for attempt := 0; attempt < MaxAttempts; attempt++ {
		req, err := build(ctx)
		if err != nil {
			return nil, err
		}

		resp, err := client.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			lastErr = shapeTransportError(err)
			if attempt < MaxAttempts-1 {
				logger.Warn("httpx.retry", "attempt", attempt+1, "error", err.Error())
				if err := sleep(ctx, backoff(attempt)); err != nil {
					return nil, err
				}
				continue
			}
			return nil, lastErr
		}

		body, readErr := io.ReadAll(resp.Body)
		resp.Body.Close()

		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			if readErr != nil {
				return nil, fmt.Errorf("read response body: %w", readErr)
			}
			return body, nil
		}

		switch {
		case resp.StatusCode == http.StatusUnauthorized:
			return nil, &StatusError{StatusCode: resp.StatusCode,
				Message: "authentication failed: invalid API key", Body: body}
		case resp.StatusCode == http.StatusForbidden:
			return nil, &StatusError{StatusCode: resp.StatusCode,
				Message: "access forbidden: check your API key permissions or account status", Body: body}
		case resp.StatusCode == http.StatusTooManyRequests:
			lastErr = &StatusError{StatusCode: resp.StatusCode,
				Message: "rate limit exceeded: please wait a moment and try again", Body: body}
			if attempt < MaxAttempts-1 {
				delay := retryAfter(resp, attempt)
				logger.Warn("httpx.rate_limited", "attempt", attempt+1, "retry_in", delay.String())
				if err := sleep(ctx, delay); err != nil {
					return nil, err
				}
				continue
			}
			return nil, lastErr
		case resp.StatusCode >= 500:
			return nil, &StatusError{StatusCode: resp.StatusCode,
				Message: fmt.Sprintf("server error (%d): the provider may be experiencing issues", resp.StatusCode), Body: body}
		default:
			return nil, &StatusError{StatusCode: resp.StatusCode,
				Message: apiErrorMessage(resp.StatusCode, body), Body: body}
		}
	}

	if lastErr != nil {
		return nil, lastErr
	}
	return nil, fmt.Errorf("request failed after %d attempts", MaxAttempts)
}

// apiErrorMessage extracts a provider error message from a JSON error body,
// falling back to a truncated body dump.
func apiErrorMessage(status int, body []byte) string {
	var payload struct {
		Message string `json:"message"`
		Error   struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		if payload.Error.Message != "" {
			return fmt.Sprintf("API error: %s", payload.Error.Message)
		}
		if payload.Message != "" {
			return fmt.Sprintf("API error: %s", payload.Message)
		}
	}
	snippet := string(body)
	if len(snippet) > 200 {
		snippet = snippet[:200]
	}
	return fmt.Sprintf("API request failed with status %d: %s", status, snippet)
}

func shapeTransportError(err error) error {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return fmt.Errorf("request timed out: the API may be slow or unresponsive: %w", err)
	}
	return fmt.Errorf("connection failed: unable to reach API endpoint: %w", err)
}

func retryAfter(resp *http.Response, attempt int) time.Duration {
	if v := resp.Header.Get("Retry-After"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs >= 0 {
			return time.Duration(secs) * time.Second
		}
	}
	return backoff(attempt)
}

func backoff(attempt int) time.Duration {
	return time.Duration(1<<attempt) * time.Second
}

func sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
