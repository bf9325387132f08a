package requestid

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"knapsackd/pkg/requestcontext"
)

func TestRequestID(t *testing.T) {
	t.Run("mints a UUID when none is supplied", func(t *testing.T) {
		var fromCtx string
		handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fromCtx = requestcontext.RequestID(r.Context())
		}))

		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		require.NotEmpty(t, fromCtx)
		_, err := uuid.Parse(fromCtx)
		assert.NoError(t, err)
		assert.Equal(t, fromCtx, w.Header().Get(Header))
	})

	t.Run("propagates an incoming ID", func(t *testing.T) {
		var fromCtx string
		handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fromCtx = requestcontext.RequestID(r.Context())
		}))

		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set(Header, "caller-supplied-id")
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, r)

		assert.Equal(t, "caller-supplied-id", fromCtx)
		assert.Equal(t, "caller-supplied-id", w.Header().Get(Header))
	})
}
