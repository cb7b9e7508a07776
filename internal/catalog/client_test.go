package catalog_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shoplite_back_end/internal/catalog"
)

func TestClientRetriesTransientFailures(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := catalog.NewClient(srv.URL).AllProducts(context.Background())
	assert.ErrorIs(t, err, catalog.ErrUnavailable)
	assert.Equal(t, int32(3), calls.Load(), "retry budget is 3 total attempts")
}

func TestClientRecoversWithinBudget(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id":1,"title":"Backpack","price":109.95,"category":"men's clothing"}]`))
	}))
	defer srv.Close()

	products, err := catalog.NewClient(srv.URL).AllProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Backpack", products[0].Title)
	assert.Equal(t, int32(2), calls.Load())
}

func TestClientDoesNotRetryNotFound(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := catalog.NewClient(srv.URL).ProductByID(context.Background(), 999)
	assert.ErrorIs(t, err, catalog.ErrNotFound)
	assert.Equal(t, int32(1), calls.Load(), "a definitive 404 must not be retried")
}

func TestClientTreatsEmptyBodyAsMiss(t *testing.T) {
	t.Parallel()

	// The real remote answers 200 with an empty body for unknown product ids.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	_, err := catalog.NewClient(srv.URL).ProductByID(context.Background(), 999)
	assert.ErrorIs(t, err, catalog.ErrNotFound)
}

func TestClientCategories(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/products/categories", r.URL.Path)
		w.Write([]byte(`["electronics","jewelery"]`))
	}))
	defer srv.Close()

	categories, err := catalog.NewClient(srv.URL).Categories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"electronics", "jewelery"}, categories)
}
