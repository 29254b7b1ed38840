package summaryapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"syscall"
	"time"

	"github.com/yanqian/summarizer-console/internal/domain/summarizer"
)

const (
	defaultBaseURL       = "http://localhost:8000"
	defaultSummarizePath = "/api/v1/summarize"
	defaultHealthPath    = "/health"
	errorBodyLimit       = 1 << 20
)

// Config locates the summarization backend.
type Config struct {
	BaseURL       string
	SummarizePath string
	HealthPath    string
	HealthTimeout time.Duration
}

// Health is the backend's health probe body.
type Health struct {
	Status string `json:"status"`
}

// Client talks to the model-serving backend.
type Client struct {
	baseURL       string
	summarizePath string
	healthPath    string
	healthTimeout time.Duration
	httpClient    *http.Client
}

// NewClient builds an API client. The summarize call carries no client level
// timeout; callers bound it through the request context.
func NewClient(cfg Config) *Client {
	base := strings.TrimSpace(cfg.BaseURL)
	if base == "" {
		base = defaultBaseURL
	}
	return &Client{
		baseURL:       strings.TrimRight(base, "/"),
		summarizePath: firstNonEmpty(cfg.SummarizePath, defaultSummarizePath),
		healthPath:    firstNonEmpty(cfg.HealthPath, defaultHealthPath),
		healthTimeout: cfg.HealthTimeout,
		httpClient:    &http.Client{},
	}
}

// Summarize posts the request and decodes the success body. Failures are
// returned as *summarizer.CallError.
func (c *Client) Summarize(ctx context.Context, req summarizer.Request) (summarizer.Response, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return summarizer.Response{}, fmt.Errorf("encode summarize request: %w", err)
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+c.summarizePath, bytes.NewReader(payload))
	if err != nil {
		return summarizer.Response{}, fmt.Errorf("build summarize request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return summarizer.Response{}, transportError(ctx, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return summarizer.Response{}, statusError(resp)
	}

	var out summarizer.Response
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		if ctx.Err() != nil {
			return summarizer.Response{}, transportError(ctx, err)
		}
		return summarizer.Response{}, &summarizer.CallError{
			Reason: summarizer.ReasonDecode,
			Err:    fmt.Errorf("decode summarize response: %w", err),
		}
	}
	return out, nil
}

// Health probes the backend's health endpoint.
func (c *Client) Health(ctx context.Context) (Health, error) {
	if c.healthTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.healthTimeout)
		defer cancel()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+c.healthPath, nil)
	if err != nil {
		return Health{}, fmt.Errorf("build health request: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Health{}, transportError(ctx, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return Health{}, statusError(resp)
	}
	var out Health
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return Health{}, &summarizer.CallError{
			Reason: summarizer.ReasonDecode,
			Err:    fmt.Errorf("decode health response: %w", err),
		}
	}
	return out, nil
}

type errorBody struct {
	Detail json.RawMessage `json:"detail"`
}

// statusError reads an optional {"detail": "..."} body. Non string details
// (such as validation error lists) fall back to the status code message.
func statusError(resp *http.Response) error {
	callErr := &summarizer.CallError{Reason: summarizer.ReasonHTTPStatus, StatusCode: resp.StatusCode}
	var body errorBody
	if err := json.NewDecoder(io.LimitReader(resp.Body, errorBodyLimit)).Decode(&body); err != nil || len(body.Detail) == 0 {
		return callErr
	}
	var detail string
	if err := json.Unmarshal(body.Detail, &detail); err == nil {
		callErr.Detail = strings.TrimSpace(detail)
	}
	return callErr
}

func transportError(ctx context.Context, err error) error {
	reason := summarizer.ReasonTransport
	switch {
	case ctx.Err() != nil, errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		reason = summarizer.ReasonCancelled
	case isUnreachable(err):
		reason = summarizer.ReasonUnreachable
	}
	return &summarizer.CallError{Reason: reason, Err: err}
}

// isUnreachable reports failures to establish a connection at all.
func isUnreachable(err error) bool {
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return true
	}
	if errors.Is(err, syscall.ECONNREFUSED) || errors.Is(err, syscall.EHOSTUNREACH) || errors.Is(err, syscall.ENETUNREACH) {
		return true
	}
	var opErr *net.OpError
	return errors.As(err, &opErr) && opErr.Op == "dial"
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
