package location

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"
)

const maxLookupAttempts = 4

// lookupError is a lookup the endpoint refused: an HTTP error status, or a
// 200 answer whose status field is "fail" (private address, invalid query).
type lookupError struct {
	Code    int
	Message string
	// Time until the endpoint's rate-limit window resets, when it said so.
	Wait time.Duration
}

func (e *lookupError) Error() string {
	if e.Code == http.StatusOK {
		return fmt.Sprintf("lookup failed: %s", e.Message)
	}
	return fmt.Sprintf("lookup status %d: %s", e.Code, e.Message)
}

func (e *lookupError) temporary() bool {
	return e.Code == http.StatusTooManyRequests || e.Code >= 500
}

// rateLimitWait reads ip-api's X-Rl (requests left in the window) and X-Ttl
// (seconds until the window resets). Zero while requests remain or when the
// headers are absent.
func rateLimitWait(h http.Header) time.Duration {
	if rl := h.Get("X-Rl"); rl != "" && rl != "0" {
		return 0
	}
	ttl, err := strconv.Atoi(strings.TrimSpace(h.Get("X-Ttl")))
	if err != nil || ttl <= 0 {
		return 0
	}
	return time.Duration(ttl) * time.Second
}

// lookup makes one request and decodes the answer.
func (p *IPGeoLocationProvider) lookup(ctx context.Context) (ipgeoResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.endpoint, nil)
	if err != nil {
		return ipgeoResponse{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "mappulator-service/1.0")

	resp, err := p.session.Do(req)
	if err != nil {
		return ipgeoResponse{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return ipgeoResponse{}, &lookupError{
			Code:    resp.StatusCode,
			Message: strings.TrimSpace(string(b)),
			Wait:    rateLimitWait(resp.Header),
		}
	}

	var decoded ipgeoResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return ipgeoResponse{}, fmt.Errorf("decode response: %w", err)
	}
	if decoded.Status != "success" {
		msg := decoded.Message
		if msg == "" {
			msg = fmt.Sprintf("status %q", decoded.Status)
		}
		return ipgeoResponse{}, &lookupError{Code: resp.StatusCode, Message: msg}
	}

	return decoded, nil
}

// lookupWithRetry repeats lookup on network errors, 429 and 5xx. A 429 that
// carries the rate-limit headers waits for the window to reset (capped by
// maxWait); anything else backs off exponentially.
func (p *IPGeoLocationProvider) lookupWithRetry(ctx context.Context) (ipgeoResponse, error) {
	backoff := p.backoff

	var lastErr error
	for attempt := 1; attempt <= maxLookupAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return ipgeoResponse{}, err
		}

		res, err := p.lookup(ctx)
		if err == nil {
			return res, nil
		}
		lastErr = err

		wait := backoff
		var le *lookupError
		var netErr net.Error
		switch {
		case errors.As(err, &le):
			if !le.temporary() {
				return ipgeoResponse{}, err
			}
			if le.Wait > 0 {
				wait = min(le.Wait, p.maxWait)
			}
		case errors.As(err, &netErr):
		default:
			return ipgeoResponse{}, err
		}

		if attempt == maxLookupAttempts {
			break
		}

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ipgeoResponse{}, ctx.Err()
		case <-timer.C:
		}
		backoff *= 2
	}

	return ipgeoResponse{}, lastErr
}
