package ratelimit

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"knapsackd/pkg/requestcontext"
)

type failingStore struct{}

func (failingStore) Allow(ctx context.Context, key string, limit int, window time.Duration) (*Result, error) {
	return nil, errors.New("store unavailable")
}

func testMiddleware(store Store, limit int) http.Handler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	m := NewMiddleware(store, logger, limit, time.Minute)
	return m.Limit(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
}

func doRequest(handler http.Handler, ip string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/solve", nil)
	req = req.WithContext(requestcontext.WithClientMetadata(req.Context(), ip, "test"))
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	return w
}

func TestMiddlewareLimit(t *testing.T) {
	t.Run("throttles a client past the limit", func(t *testing.T) {
		handler := testMiddleware(NewInMemoryStore(), 2)

		assert.Equal(t, http.StatusOK, doRequest(handler, "1.2.3.4").Code)
		assert.Equal(t, http.StatusOK, doRequest(handler, "1.2.3.4").Code)

		w := doRequest(handler, "1.2.3.4")
		require.Equal(t, http.StatusTooManyRequests, w.Code)
		assert.NotEmpty(t, w.Header().Get("Retry-After"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
		assert.Equal(t, "rate_limited", body["error"])
	})

	t.Run("clients are limited separately", func(t *testing.T) {
		handler := testMiddleware(NewInMemoryStore(), 1)

		assert.Equal(t, http.StatusOK, doRequest(handler, "1.2.3.4").Code)
		assert.Equal(t, http.StatusOK, doRequest(handler, "5.6.7.8").Code)
		assert.Equal(t, http.StatusTooManyRequests, doRequest(handler, "1.2.3.4").Code)
	})

	t.Run("sets rate limit headers on allowed requests", func(t *testing.T) {
		handler := testMiddleware(NewInMemoryStore(), 5)

		w := doRequest(handler, "1.2.3.4")
		assert.Equal(t, "5", w.Header().Get("X-RateLimit-Limit"))
		assert.Equal(t, "4", w.Header().Get("X-RateLimit-Remaining"))
		assert.NotEmpty(t, w.Header().Get("X-RateLimit-Reset"))
	})

	t.Run("fails open when the store errors", func(t *testing.T) {
		handler := testMiddleware(failingStore{}, 1)

		assert.Equal(t, http.StatusOK, doRequest(handler, "1.2.3.4").Code)
		assert.Equal(t, http.StatusOK, doRequest(handler, "1.2.3.4").Code)
	})
}
