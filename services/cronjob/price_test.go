package cronjob

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"fundrr-backend/services/config"

	"github.com/stretchr/testify/require"
)

func newPriceFeed(url string) *PriceCronjob {
	return NewPriceCronjob(&config.PriceFeedConfig{
		Enabled:         true,
		URL:             url,
		IntervalSeconds: 60,
	})
}

func TestPricePoll(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"solana": {"usd": 31.25}}`))
	}))
	defer server.Close()

	feed := newPriceFeed(server.URL)
	_, ok := feed.Value()
	require.False(t, ok)

	require.NoError(t, feed.Call())
	price, ok := feed.Value()
	require.True(t, ok)
	require.Equal(t, 31.25, price)
}

func TestPricePollFailureKeepsPreviousValue(t *testing.T) {
	var failing atomic.Bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if failing.Load() {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		w.Write([]byte(`{"solana": {"usd": 31.25}}`))
	}))
	defer server.Close()

	feed := newPriceFeed(server.URL)
	require.NoError(t, feed.Call())

	failing.Store(true)
	require.Error(t, feed.Call())
	price, ok := feed.Value()
	require.True(t, ok)
	require.Equal(t, 31.25, price)
}

func TestPricePollRejectsBadDocument(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"unexpected": true}`))
	}))
	defer server.Close()

	feed := newPriceFeed(server.URL)
	require.Error(t, feed.Call())
	_, ok := feed.Value()
	require.False(t, ok)
}

func TestPriceFeedDisabledWithoutURL(t *testing.T) {
	feed := NewPriceCronjob(&config.PriceFeedConfig{Enabled: true})
	require.False(t, feed.Enabled())

	feed = NewPriceCronjob(&config.PriceFeedConfig{Enabled: false, URL: "http://localhost"})
	require.False(t, feed.Enabled())
}
