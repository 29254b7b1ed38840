package summaryapi

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/summarizer-console/internal/domain/summarizer"
)

func TestSummarizePostsPayload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/v1/summarize", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.JSONEq(t, `{"text":"a b c d e","length":"short","model":"t5-small"}`, string(body))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"summary":"X","original_word_count":50,"summary_word_count":10,"compression_ratio":5.0}`))
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL + "/"})
	resp, err := client.Summarize(context.Background(), summarizer.Request{Text: "a b c d e", Length: summarizer.LengthShort, Model: "t5-small"})
	require.NoError(t, err)
	require.Equal(t, summarizer.Response{Summary: "X", OriginalWordCount: 50, SummaryWordCount: 10, CompressionRatio: 5}, resp)
}

func TestSummarizeStatusErrors(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		wantDetail string
	}{
		{name: "string detail", status: http.StatusInternalServerError, body: `{"detail":"Model overloaded"}`, wantDetail: "Model overloaded"},
		{name: "unparsable body", status: http.StatusServiceUnavailable, body: `<html>bad gateway</html>`},
		{name: "empty body", status: http.StatusBadGateway},
		{name: "validation list detail", status: http.StatusUnprocessableEntity, body: `{"detail":[{"loc":["body","text"],"msg":"too short"}]}`},
		{name: "missing detail", status: http.StatusBadRequest, body: `{"error":"nope"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			_, err := NewClient(Config{BaseURL: server.URL}).Summarize(context.Background(), summarizer.Request{Text: "x"})
			var callErr *summarizer.CallError
			require.ErrorAs(t, err, &callErr)
			require.Equal(t, summarizer.ReasonHTTPStatus, callErr.Reason)
			require.Equal(t, tt.status, callErr.StatusCode)
			require.Equal(t, tt.wantDetail, callErr.Detail)
		})
	}
}

func TestSummarizeKeepsLongDetail(t *testing.T) {
	detail := "Internal Server Error: " + strings.Repeat("x", 5000)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"detail": detail})
	}))
	defer server.Close()

	_, err := NewClient(Config{BaseURL: server.URL}).Summarize(context.Background(), summarizer.Request{Text: "x"})
	var callErr *summarizer.CallError
	require.ErrorAs(t, err, &callErr)
	require.Equal(t, http.StatusInternalServerError, callErr.StatusCode)
	require.Equal(t, detail, callErr.Detail)
}

func TestSummarizeDecodeFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"summary":`))
	}))
	defer server.Close()

	_, err := NewClient(Config{BaseURL: server.URL}).Summarize(context.Background(), summarizer.Request{Text: "x"})
	var callErr *summarizer.CallError
	require.ErrorAs(t, err, &callErr)
	require.Equal(t, summarizer.ReasonDecode, callErr.Reason)
	require.Contains(t, callErr.Error(), "decode summarize response")
}

func TestSummarizeUnreachable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	addr := server.URL
	server.Close()

	_, err := NewClient(Config{BaseURL: addr}).Summarize(context.Background(), summarizer.Request{Text: "x"})
	var callErr *summarizer.CallError
	require.ErrorAs(t, err, &callErr)
	require.Equal(t, summarizer.ReasonUnreachable, callErr.Reason)
}

func TestSummarizeCancelled(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-release:
		}
	}))
	defer server.Close()
	defer close(release)

	ctx, cancel := context.WithCancelCause(context.Background())
	go func() {
		time.Sleep(50 * time.Millisecond)
		cancel(summarizer.ErrDeadlineExceeded)
	}()

	_, err := NewClient(Config{BaseURL: server.URL}).Summarize(ctx, summarizer.Request{Text: "x"})
	var callErr *summarizer.CallError
	require.ErrorAs(t, err, &callErr)
	require.Equal(t, summarizer.ReasonCancelled, callErr.Reason)
	require.ErrorIs(t, err, summarizer.ErrDeadlineExceeded)
}

func TestHealth(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/health", r.URL.Path)
		_ = json.NewEncoder(w).Encode(Health{Status: "ok"})
	}))
	defer server.Close()

	health, err := NewClient(Config{BaseURL: server.URL, HealthTimeout: time.Second}).Health(context.Background())
	require.NoError(t, err)
	require.Equal(t, "ok", health.Status)
}

func TestHealthUnavailable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	_, err := NewClient(Config{BaseURL: server.URL}).Health(context.Background())
	var callErr *summarizer.CallError
	require.ErrorAs(t, err, &callErr)
	require.Equal(t, http.StatusServiceUnavailable, callErr.StatusCode)
}

func TestIsUnreachable(t *testing.T) {
	require.False(t, isUnreachable(errors.New("tls: handshake failure")))
	require.False(t, isUnreachable(io.ErrUnexpectedEOF))
}
