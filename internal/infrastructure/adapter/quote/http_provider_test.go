package quote

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "papertrader/internal/domain/error"
	"papertrader/internal/infrastructure/adapter/logger"
)

func TestHTTPProviderLookup(t *testing.T) {
	ctx := context.Background()

	t.Run("Successful lookup", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/stock/NFLX/quote", r.URL.Path)
			assert.Equal(t, "test-key", r.URL.Query().Get("token"))

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"symbol":"NFLX","companyName":"Netflix, Inc.","latestPrice":500.25}`))
		}))
		defer server.Close()

		provider := NewHTTPProvider(server.URL, "test-key", time.Second, logger.NewNoopLogger())

		quote, err := provider.Lookup(ctx, "NFLX")

		require.NoError(t, err)
		assert.Equal(t, "NFLX", quote.Symbol)
		assert.Equal(t, "Netflix, Inc.", quote.Name)
		assert.Equal(t, "500.25", quote.Price.StringFixed(2))
	})

	t.Run("Unknown symbol maps 404", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		provider := NewHTTPProvider(server.URL, "test-key", time.Second, logger.NewNoopLogger())

		_, err := provider.Lookup(ctx, "ZZZZ")

		assert.ErrorIs(t, err, errs.ErrSymbolNotFound)
	})

	t.Run("Server errors map to quote unavailable", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		provider := NewHTTPProvider(server.URL, "test-key", time.Second, logger.NewNoopLogger())

		_, err := provider.Lookup(ctx, "NFLX")

		assert.ErrorIs(t, err, errs.ErrQuoteUnavailable)
	})

	t.Run("Malformed body maps to quote unavailable", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`not json`))
		}))
		defer server.Close()

		provider := NewHTTPProvider(server.URL, "test-key", time.Second, logger.NewNoopLogger())

		_, err := provider.Lookup(ctx, "NFLX")

		assert.ErrorIs(t, err, errs.ErrQuoteUnavailable)
	})

	t.Run("Non-positive price rejected", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"symbol":"NFLX","companyName":"Netflix, Inc.","latestPrice":0}`))
		}))
		defer server.Close()

		provider := NewHTTPProvider(server.URL, "test-key", time.Second, logger.NewNoopLogger())

		_, err := provider.Lookup(ctx, "NFLX")

		assert.ErrorIs(t, err, errs.ErrQuoteUnavailable)
	})

	t.Run("Slow provider times out", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(200 * time.Millisecond)
		}))
		defer server.Close()

		provider := NewHTTPProvider(server.URL, "test-key", 50*time.Millisecond, logger.NewNoopLogger())

		_, err := provider.Lookup(ctx, "NFLX")

		assert.ErrorIs(t, err, errs.ErrQuoteUnavailable)
	})
}
