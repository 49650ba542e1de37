package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetch(t *testing.T) {
	var userAgent string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userAgent = r.Header.Get("User-Agent")
		switch r.URL.Path {
		case "/ok":
			_, _ = w.Write([]byte("image bytes"))
		case "/big":
			_, _ = w.Write([]byte(strings.Repeat("x", 64)))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	data, err := Fetch(context.Background(), srv.URL+"/ok", FetchOptions{})
	require.NoError(t, err)
	assert.Equal(t, "image bytes", string(data))
	assert.True(t, strings.HasPrefix(userAgent, "themer/"), userAgent)

	_, err = Fetch(context.Background(), srv.URL+"/missing", FetchOptions{})
	assert.ErrorContains(t, err, "HTTP 404")

	_, err = Fetch(context.Background(), srv.URL+"/big", FetchOptions{MaxBytes: 10})
	assert.ErrorContains(t, err, "exceeds 10 bytes")

	data, err = Fetch(context.Background(), srv.URL+"/big", FetchOptions{MaxBytes: 64, Client: srv.Client()})
	require.NoError(t, err)
	assert.Len(t, data, 64)
}

func TestFetchCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Fetch(ctx, "http://127.0.0.1:1/never", FetchOptions{})
	assert.ErrorContains(t, err, "request failed")
}
