package scrape

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPageServer(t *testing.T, hits *int32) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/page", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(hits, 1)
		_, _ = w.Write([]byte("<html><body>hello</body></html>"))
	})
	mux.HandleFunc("/missing", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})
	mux.HandleFunc("/broken", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	mux.HandleFunc("/moved", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/page", http.StatusFound)
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestFetch(t *testing.T) {
	var hits int32
	srv := newPageServer(t, &hits)
	client := NewClient(&ClientConfig{Timeout: 5 * time.Second})
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		body, found, err := client.Fetch(ctx, srv.URL+"/page")
		require.NoError(t, err)
		assert.True(t, found)
		assert.Contains(t, body, "hello")
	})

	t.Run("not found is not an error", func(t *testing.T) {
		body, found, err := client.Fetch(ctx, srv.URL+"/missing")
		require.NoError(t, err)
		assert.False(t, found)
		assert.Empty(t, body)
	})

	t.Run("server error", func(t *testing.T) {
		_, found, err := client.Fetch(ctx, srv.URL+"/broken")
		require.ErrorIs(t, err, ErrUnexpectedStatus)
		assert.False(t, found)
	})

	t.Run("follows redirects", func(t *testing.T) {
		body, found, err := client.Fetch(ctx, srv.URL+"/moved")
		require.NoError(t, err)
		assert.True(t, found)
		assert.Contains(t, body, "hello")
	})

	t.Run("transport failure", func(t *testing.T) {
		_, _, err := client.Fetch(ctx, "http://127.0.0.1:1/unreachable")
		require.Error(t, err)
	})
}

func TestFetchCachesPages(t *testing.T) {
	var hits int32
	srv := newPageServer(t, &hits)
	client := NewClient(&ClientConfig{CacheTTL: time.Minute})
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, found, err := client.Fetch(ctx, srv.URL+"/page")
		require.NoError(t, err)
		require.True(t, found)
	}

	assert.Equal(t, int32(1), atomic.LoadInt32(&hits))
}

func TestFetchHonorsContext(t *testing.T) {
	var hits int32
	srv := newPageServer(t, &hits)
	client := NewClient(nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := client.Fetch(ctx, srv.URL+"/page")
	require.Error(t, err)
}
