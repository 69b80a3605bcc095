package remote_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"record-importer/core/reconcile"
	"record-importer/core/remote"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestClient_FetchUsers(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(`[{"id":1,"name":"Ana","email":"a@x.com"}]`))
	}))
	defer srv.Close()

	client := remote.NewClient(remote.Config{BaseURL: srv.URL + "/", TimeoutSeconds: 2})
	records, err := client.FetchUsers(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "/users", gotPath)
	assert.Equal(t, []reconcile.Record{{"id": float64(1), "name": "Ana", "email": "a@x.com"}}, records)
}

func TestClient_FetchPostsEmpty(t *testing.T) {
	srv := newServer(t, http.StatusOK, `[]`)
	client := remote.NewClient(remote.Config{BaseURL: srv.URL})

	records, err := client.FetchPosts(context.Background())
	assert.NoError(t, err)
	assert.Empty(t, records)
}

func TestClient_Errors(t *testing.T) {
	t.Run("HTTPError", func(t *testing.T) {
		srv := newServer(t, http.StatusNotFound, `{}`)
		_, err := remote.NewClient(remote.Config{BaseURL: srv.URL}).Fetch(context.Background(), "users")

		var httpErr *remote.HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusNotFound, httpErr.StatusCode)
	})

	t.Run("DecodeError", func(t *testing.T) {
		srv := newServer(t, http.StatusOK, `{"id":1}`)
		_, err := remote.NewClient(remote.Config{BaseURL: srv.URL}).Fetch(context.Background(), "users")

		var decodeErr *remote.DecodeError
		assert.ErrorAs(t, err, &decodeErr)
	})

	t.Run("NullElement", func(t *testing.T) {
		srv := newServer(t, http.StatusOK, `[{"id":1}, null]`)
		_, err := remote.NewClient(remote.Config{BaseURL: srv.URL}).Fetch(context.Background(), "users")

		var decodeErr *remote.DecodeError
		assert.ErrorAs(t, err, &decodeErr)
	})

	t.Run("NetworkError", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		url := srv.URL
		srv.Close()

		_, err := remote.NewClient(remote.Config{BaseURL: url, TimeoutSeconds: 1}).Fetch(context.Background(), "users")

		var netErr *remote.NetworkError
		assert.ErrorAs(t, err, &netErr)
	})

	t.Run("CancelledContext", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := remote.NewClient(remote.Config{BaseURL: "http://127.0.0.1:1"}).Fetch(ctx, "users")
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("Timeout", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(500 * time.Millisecond)
			_, _ = w.Write([]byte(`[]`))
		}))
		defer srv.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		_, err := remote.NewClient(remote.Config{BaseURL: srv.URL}).Fetch(ctx, "users")
		var netErr *remote.NetworkError
		assert.ErrorAs(t, err, &netErr)
	})
}

func TestResource(t *testing.T) {
	srv := newServer(t, http.StatusOK, `[{"id":3}]`)
	source := remote.Resource(remote.NewClient(remote.Config{BaseURL: srv.URL}), remote.ResourcePosts)

	records, err := source.Fetch(context.Background())
	require.NoError(t, err)
	assert.Len(t, records, 1)
}
