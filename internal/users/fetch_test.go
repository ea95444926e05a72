package users

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		fmt.Fprint(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestFetch_Success(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t, http.StatusOK, `[
		{"name":"Leanne","username":"Bret","email":"a@b.com","address":{"city":"Gwenborough"}},
		{"name":"Ervin","username":"Antonette","email":"c@d.com","address":{"city":"Wisokyburgh"}}
	]`)

	records, err := NewFetcher(srv.Client(), srv.URL).Fetch(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"Leanne", "Ervin"}, names(t, records))
}

func TestFetch_Errors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name        string
		status      int
		body        string
		expectMsg   string
		expectMatch func(error) bool
	}{
		{
			name:      "server error",
			status:    http.StatusInternalServerError,
			body:      `{"error":"boom"}`,
			expectMsg: "API returned status code 500",
			expectMatch: func(err error) bool {
				var e *HTTPStatusError
				return errors.As(err, &e) && e.StatusCode == 500
			},
		},
		{
			name:      "not found with valid data",
			status:    http.StatusNotFound,
			body:      `[{"name":"Leanne"}]`,
			expectMsg: "API returned status code 404",
			expectMatch: func(err error) bool {
				var e *HTTPStatusError
				return errors.As(err, &e)
			},
		},
		{
			name:      "created is not success",
			status:    http.StatusCreated,
			body:      `[{"name":"Leanne"}]`,
			expectMsg: "API returned status code 201",
			expectMatch: func(err error) bool {
				var e *HTTPStatusError
				return errors.As(err, &e)
			},
		},
		{
			name:      "invalid json",
			status:    http.StatusOK,
			body:      `not json`,
			expectMsg: "Failed to parse JSON response",
			expectMatch: func(err error) bool {
				var e *DecodeError
				return errors.As(err, &e)
			},
		},
		{
			name:      "empty array",
			status:    http.StatusOK,
			body:      `[]`,
			expectMsg: "API returned empty or unexpected data",
			expectMatch: func(err error) bool {
				var e *SchemaError
				return errors.As(err, &e)
			},
		},
		{
			name:      "object instead of array",
			status:    http.StatusOK,
			body:      `{"name":"Leanne"}`,
			expectMsg: "API returned empty or unexpected data",
			expectMatch: func(err error) bool {
				var e *SchemaError
				return errors.As(err, &e)
			},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			srv := newTestServer(t, tc.status, tc.body)

			records, err := NewFetcher(srv.Client(), srv.URL).Fetch(context.Background())

			require.Error(t, err)
			assert.Nil(t, records)
			assert.Equal(t, tc.expectMsg, err.Error())
			assert.True(t, tc.expectMatch(err), "unexpected error type %T", err)
			assert.True(t, IsReportable(err))
		})
	}
}

func TestFetch_NetworkErrors(t *testing.T) {
	t.Parallel()

	t.Run("connection refused", func(t *testing.T) {
		t.Parallel()
		srv := httptest.NewServer(http.NotFoundHandler())
		url := srv.URL
		srv.Close()

		_, err := NewFetcher(&http.Client{Timeout: time.Second}, url).Fetch(context.Background())

		var netErr *NetworkError
		require.True(t, errors.As(err, &netErr), "expected NetworkError, got %v", err)
		assert.Contains(t, err.Error(), "Network error while calling API: ")
		assert.NotNil(t, netErr.Unwrap())
	})

	t.Run("timeout", func(t *testing.T) {
		t.Parallel()
		release := make(chan struct{})
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-release:
			case <-r.Context().Done():
			}
		}))
		t.Cleanup(srv.Close)
		t.Cleanup(func() { close(release) })

		client := srv.Client()
		client.Timeout = 50 * time.Millisecond
		_, err := NewFetcher(client, srv.URL).Fetch(context.Background())

		var netErr *NetworkError
		require.True(t, errors.As(err, &netErr), "expected NetworkError, got %v", err)
		assert.Contains(t, err.Error(), "Client.Timeout")
	})

	t.Run("invalid url", func(t *testing.T) {
		t.Parallel()

		_, err := NewFetcher(http.DefaultClient, "://missing-scheme").Fetch(context.Background())

		var netErr *NetworkError
		require.True(t, errors.As(err, &netErr), "expected NetworkError, got %v", err)
	})

	t.Run("missing client", func(t *testing.T) {
		t.Parallel()

		_, err := NewFetcher(nil, "http://example.invalid").Fetch(context.Background())

		var netErr *NetworkError
		require.True(t, errors.As(err, &netErr), "expected NetworkError, got %v", err)
	})
}

func TestIsReportable(t *testing.T) {
	assert.True(t, IsReportable(&UsageError{Message: "x"}))
	assert.True(t, IsReportable(fmt.Errorf("wrapped: %w", &SchemaError{})))
	assert.False(t, IsReportable(errors.New("something else")))
	assert.False(t, IsReportable(nil))
}
