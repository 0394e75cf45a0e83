package coingecko

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/NastyaGoryachaya/crypto-viewer/internal/config"
	"github.com/NastyaGoryachaya/crypto-viewer/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return NewClient(config.CoinGeckoConfig{
		BaseURL:   srv.URL + "/api/v3",
		Timeout:   2 * time.Second,
		UserAgent: "crypto-viewer-test",
		APIKey:    "demo-key",
	}, slog.Default())
}

const marketsBody = `[
	{"id":"bitcoin","symbol":"btc","name":"Bitcoin","image":"https://img/btc.png","market_cap_rank":1,
	 "current_price":350000.5,"market_cap":7e12,"total_volume":1e11,"high_24h":351000,"low_24h":340000,
	 "price_change_percentage_24h":1.25,"price_change_percentage_7d_in_currency":-3.5},
	{"id":"ethereum","symbol":"eth","name":"Ethereum","image":"https://img/eth.png","market_cap_rank":2,
	 "current_price":18000,"market_cap":2e12,"total_volume":5e10,"high_24h":null,"low_24h":null,
	 "price_change_percentage_24h":-0.5}
]`

func TestListMarkets_Success(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v3/coins/markets", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "brl", q.Get("vs_currency"))
		assert.Equal(t, "18", q.Get("per_page"))
		assert.Equal(t, "market_cap_desc", q.Get("order"))
		assert.Equal(t, "24h,7d", q.Get("price_change_percentage"))
		assert.Equal(t, "crypto-viewer-test", r.Header.Get("User-Agent"))
		assert.Equal(t, "demo-key", r.Header.Get("x-cg-demo-api-key"))
		_, _ = w.Write([]byte(marketsBody))
	})

	got, err := c.ListMarkets(context.Background(), "BRL", 18)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "bitcoin", got[0].ID)
	assert.Equal(t, 350000.5, got[0].CurrentPrice)
	assert.Equal(t, -3.5, got[0].PriceChangePercentage7d)
	assert.Equal(t, 0.0, got[1].High24h)
}

func TestListMarkets_Empty(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	})

	_, err := c.ListMarkets(context.Background(), "usd", 18)
	assert.ErrorIs(t, err, domain.ErrEmptyResult)
}

func TestListMarkets_StatusClassification(t *testing.T) {
	cases := []struct {
		status  int
		want    error
		notWant error
	}{
		{http.StatusTooManyRequests, domain.ErrRateLimited, domain.ErrUpstream},
		{http.StatusInternalServerError, domain.ErrUpstream, domain.ErrRateLimited},
		{http.StatusNotFound, domain.ErrUpstream, domain.ErrRateLimited},
	}
	for _, tc := range cases {
		tc := tc
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(tc.status)
		})
		_, err := c.ListMarkets(context.Background(), "usd", 18)
		require.Error(t, err)
		assert.ErrorIs(t, err, tc.want, "status %d", tc.status)
		assert.False(t, errors.Is(err, tc.notWant), "status %d", tc.status)

		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, tc.status, apiErr.StatusCode)
	}
}

func TestListMarkets_MalformedBody(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{not json`))
	})
	_, err := c.ListMarkets(context.Background(), "usd", 18)
	assert.ErrorIs(t, err, domain.ErrUpstream)
}

func TestListMarkets_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	base := srv.URL
	srv.Close()

	c := NewClient(config.CoinGeckoConfig{BaseURL: base, Timeout: time.Second}, slog.Default())
	_, err := c.ListMarkets(context.Background(), "usd", 18)
	assert.ErrorIs(t, err, domain.ErrNetwork)
}

func TestListMarkets_ContextDeadline(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	})
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := c.ListMarkets(ctx, "usd", 18)
	assert.ErrorIs(t, err, domain.ErrNetwork)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestSearchCoins_NoMatchesSkipsMarkets(t *testing.T) {
	var marketsCalls atomic.Int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/v3/search":
			assert.Equal(t, "zzzz", r.URL.Query().Get("query"))
			_, _ = w.Write([]byte(`{"coins":[]}`))
		default:
			marketsCalls.Add(1)
			_, _ = w.Write([]byte(`[]`))
		}
	})

	got, err := c.SearchCoins(context.Background(), " zzzz ", "usd")
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
	assert.Zero(t, marketsCalls.Load())
}

func TestSearchCoins_FetchesDetailsForIDs(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/v3/search":
			_, _ = w.Write([]byte(`{"coins":[{"id":"bitcoin"},{"id":"ethereum"}]}`))
		case "/api/v3/coins/markets":
			assert.Equal(t, "bitcoin,ethereum", r.URL.Query().Get("ids"))
			assert.Equal(t, "eur", r.URL.Query().Get("vs_currency"))
			_, _ = w.Write([]byte(marketsBody))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	})

	got, err := c.SearchCoins(context.Background(), "coin", "eur")
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestSearchCoins_LimitsIDs(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/v3/search":
			_, _ = w.Write([]byte(`{"coins":[{"id":"a"},{"id":"b"},{"id":"c"}]}`))
		case "/api/v3/coins/markets":
			assert.Equal(t, "a,b", r.URL.Query().Get("ids"))
			_, _ = w.Write([]byte(`[]`))
		}
	})
	c.cfg.SearchLimit = 2

	got, err := c.SearchCoins(context.Background(), "x", "usd")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSearchCoins_RateLimited(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})
	_, err := c.SearchCoins(context.Background(), "btc", "usd")
	assert.ErrorIs(t, err, domain.ErrRateLimited)
}

func TestFetchPriceSeries_SortedAscending(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v3/coins/bitcoin/market_chart", r.URL.Path)
		assert.Equal(t, "30", r.URL.Query().Get("days"))
		assert.Equal(t, "usd", r.URL.Query().Get("vs_currency"))
		_, _ = w.Write([]byte(`{
			"prices":[[1700000200000, 3.0],[1700000000000, 1.0],[1700000100000, 2.0]],
			"total_volumes":[[1700000000000, 10.0]]
		}`))
	})

	got, err := c.FetchPriceSeries(context.Background(), "bitcoin", "USD", 30)
	require.NoError(t, err)
	assert.Equal(t, []domain.PricePoint{
		{TimestampMs: 1700000000000, Price: 1},
		{TimestampMs: 1700000100000, Price: 2},
		{TimestampMs: 1700000200000, Price: 3},
	}, got)
}

func TestFetchPriceSeries_UpstreamError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})
	_, err := c.FetchPriceSeries(context.Background(), "bitcoin", "usd", 7)
	assert.ErrorIs(t, err, domain.ErrUpstream)
}
