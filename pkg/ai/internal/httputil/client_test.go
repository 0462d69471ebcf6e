// ABOUTME: Tests for the shared HTTP client: headers, default no-retry, opt-in retry, SSE streaming
// ABOUTME: Uses httptest.NewServer for deterministic, isolated test scenarios

package httputil

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientDoSendsHeadersAndBody(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "test-value", r.Header.Get("X-Custom"))
		body, _ := io.ReadAll(r.Body)
		_, _ = w.Write(body)
	}))
	t.Cleanup(srv.Close)

	client := NewClient(srv.URL, map[string]string{"X-Custom": "test-value"}, Options{})
	resp, err := client.Do(context.Background(), http.MethodPost, "/echo", bytes.NewReader([]byte("hello")))
	require.NoError(t, err)
	defer resp.Body.Close()

	got, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "hello", string(got))
	assert.Equal(t, srv.URL, client.BaseURL())
}

func TestClientDoDoesNotRetryByDefault(t *testing.T) {
	t.Parallel()

	var attempts atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		attempts.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	t.Cleanup(srv.Close)

	client := NewClient(srv.URL, nil, Options{})
	resp, err := client.Do(context.Background(), http.MethodPost, "/", bytes.NewReader(nil))
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	assert.Equal(t, int32(1), attempts.Load())
}

func TestClientDoRetriesWhenEnabled(t *testing.T) {
	t.Parallel()

	var attempts atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		assert.Equal(t, "payload", string(body), "body must be rewound between attempts")
		if attempts.Add(1) == 1 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(srv.Close)

	client := NewClient(srv.URL, nil, Options{MaxRetries: 2})
	resp, err := client.Do(context.Background(), http.MethodPost, "/", bytes.NewReader([]byte("payload")))
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, int32(2), attempts.Load())
}

func TestClientStreamSSE(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/event-stream")
		_, _ = w.Write([]byte("data: one\n\ndata: two\n\n"))
	}))
	t.Cleanup(srv.Close)

	client := NewClient(srv.URL, nil, Options{})
	reader, resp, err := client.StreamSSE(context.Background(), http.MethodPost, "/", nil)
	require.NoError(t, err)
	defer resp.Body.Close()

	ev, err := reader.Next()
	require.NoError(t, err)
	assert.Equal(t, "one", ev.Data)
	ev, err = reader.Next()
	require.NoError(t, err)
	assert.Equal(t, "two", ev.Data)
}

func TestNewClientDefaults(t *testing.T) {
	t.Parallel()

	c := NewClient("http://x", nil, Options{MaxRetries: -3})
	assert.Equal(t, 5*time.Minute, c.httpClient.Timeout)
	assert.Equal(t, 0, c.maxRetries)

	c = NewClient("http://x", nil, Options{Timeout: time.Second})
	assert.Equal(t, time.Second, c.httpClient.Timeout)
}

func TestBackoffIsCapped(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 500*time.Millisecond, backoff(0))
	assert.Equal(t, time.Second, backoff(1))
	assert.Equal(t, 10*time.Second, backoff(10))
}
