package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T, limits Limits) http.Handler {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := New(logger, nil, limits)

	r := chi.NewRouter()
	h.Register(r)
	return r
}

func postSolve(t *testing.T, router http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/solve", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHandleSolve(t *testing.T) {
	router := newTestRouter(t, Limits{})

	t.Run("solves a valid request", func(t *testing.T) {
		w := postSolve(t, router, `{
			"items": [
				{"name": "A", "weight": 2, "value": 3},
				{"name": "B", "weight": 3, "value": 4},
				{"name": "C", "weight": 4, "value": 5},
				{"name": "D", "weight": 5, "value": 6}
			],
			"max_weight": 5,
			"population_size": 6,
			"generations": 50,
			"crossover_rate": 0.53,
			"mutation_rate": 0.013,
			"seed": 7
		}`)

		require.Equal(t, http.StatusOK, w.Code)

		var resp SolveResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.LessOrEqual(t, resp.TotalWeight, 5)
		assert.LessOrEqual(t, resp.TotalValue, 7)
		assert.NotNil(t, resp.SelectedItems)
	})

	t.Run("identical seeded requests return identical bodies", func(t *testing.T) {
		body := `{
			"items": [
				{"name": "A", "weight": 2, "value": 3},
				{"name": "B", "weight": 3, "value": 4},
				{"name": "C", "weight": 4, "value": 5}
			],
			"max_weight": 5,
			"seed": 99
		}`

		first := postSolve(t, router, body)
		second := postSolve(t, router, body)
		require.Equal(t, http.StatusOK, first.Code)
		assert.Equal(t, first.Body.String(), second.Body.String())
	})

	t.Run("applies documented defaults when fields are absent", func(t *testing.T) {
		w := postSolve(t, router, `{"items": [{"name": "A", "weight": 2, "value": 3}], "seed": 1}`)
		require.Equal(t, http.StatusOK, w.Code)

		var resp SolveResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		// Default cap of 15 fits the single item comfortably.
		assert.Equal(t, 3, resp.TotalValue)
		assert.Equal(t, 2, resp.TotalWeight)
	})

	t.Run("missing items fails validation", func(t *testing.T) {
		w := postSolve(t, router, `{"max_weight": 5}`)
		require.Equal(t, http.StatusBadRequest, w.Code)

		var body map[string]string
		require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
		assert.Equal(t, "validation_error", body["error"])
		assert.NotEmpty(t, body["error_description"])
	})

	t.Run("empty items list fails validation", func(t *testing.T) {
		w := postSolve(t, router, `{"items": []}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("malformed JSON is a bad request", func(t *testing.T) {
		w := postSolve(t, router, `{"items": [`)
		require.Equal(t, http.StatusBadRequest, w.Code)

		var body map[string]string
		require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
		assert.Equal(t, "bad_request", body["error"])
	})

	t.Run("non-integer weight is a bad request", func(t *testing.T) {
		w := postSolve(t, router, `{"items": [{"name": "A", "weight": "heavy", "value": 3}]}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("out-of-range rate fails validation", func(t *testing.T) {
		w := postSolve(t, router, `{
			"items": [{"name": "A", "weight": 2, "value": 3}],
			"mutation_rate": 2.0
		}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("negative item weight fails validation", func(t *testing.T) {
		w := postSolve(t, router, `{"items": [{"name": "A", "weight": -2, "value": 3}]}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unnamed item fails validation", func(t *testing.T) {
		w := postSolve(t, router, `{"items": [{"name": "  ", "weight": 2, "value": 3}]}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("wrong method is rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/solve", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	})
}

func TestHandleSolveLimits(t *testing.T) {
	router := newTestRouter(t, Limits{MaxGenerations: 100, MaxPopulation: 50})

	t.Run("generations over the ceiling are rejected", func(t *testing.T) {
		w := postSolve(t, router, `{
			"items": [{"name": "A", "weight": 2, "value": 3}],
			"generations": 101
		}`)
		require.Equal(t, http.StatusBadRequest, w.Code)

		var body map[string]string
		require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
		assert.Equal(t, "validation_error", body["error"])
	})

	t.Run("population over the ceiling is rejected", func(t *testing.T) {
		w := postSolve(t, router, `{
			"items": [{"name": "A", "weight": 2, "value": 3}],
			"population_size": 51
		}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("work within the ceilings passes", func(t *testing.T) {
		w := postSolve(t, router, `{
			"items": [{"name": "A", "weight": 2, "value": 3}],
			"generations": 100,
			"population_size": 50,
			"seed": 3
		}`)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestNoFeasibleSolution(t *testing.T) {
	router := newTestRouter(t, Limits{})

	w := postSolve(t, router, `{
		"items": [{"name": "anvil", "weight": 100, "value": 1000}],
		"max_weight": -1,
		"seed": 5
	}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp SolveResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Empty(t, resp.SelectedItems)
	assert.Zero(t, resp.TotalValue)
	assert.Zero(t, resp.TotalWeight)
}
