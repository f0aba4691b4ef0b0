package clients

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/todo-service/internal/adapters/http/middleware"
	"github.com/jsamuelsen/todo-service/internal/platform/config"
)

func defaultConfig() *Config {
	return &Config{
		ServiceName: "todo-api",
		Timeout:     5 * time.Second,
		Transport: config.TransportConfig{
			MaxIdleConns:        10,
			MaxIdleConnsPerHost: 2,
			IdleConnTimeout:     time.Second,
		},
	}
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := defaultConfig()
	cfg.BaseURL = server.URL

	client, err := New(cfg)
	require.NoError(t, err)

	return client
}

// closeBody is a test helper that closes the response body and fails the test on error.
func closeBody(t *testing.T, resp *http.Response) {
	t.Helper()
	if err := resp.Body.Close(); err != nil {
		t.Errorf("failed to close response body: %v", err)
	}
}

func TestNew_RequiresConfig(t *testing.T) {
	_, err := New(nil)
	assert.ErrorContains(t, err, "config is required")
}

func TestNew_RequiresServiceName(t *testing.T) {
	cfg := defaultConfig()
	cfg.ServiceName = ""

	_, err := New(cfg)
	assert.ErrorContains(t, err, "service name is required")
}

func TestNew_DefaultsTimeout(t *testing.T) {
	cfg := defaultConfig()
	cfg.Timeout = 0

	client, err := New(cfg)
	require.NoError(t, err)
	assert.Equal(t, defaultTimeout, client.http.Timeout)
}

func TestClient_RequestIDPropagation(t *testing.T) {
	var received string

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		received = r.Header.Get(middleware.HeaderRequestID)
		w.WriteHeader(http.StatusOK)
	})

	ctx := middleware.ContextWithRequestID(context.Background(), "tui-request-123")

	resp, err := client.Get(ctx, "/todos")
	require.NoError(t, err)
	defer closeBody(t, resp)

	assert.Equal(t, "tui-request-123", received)
}

func TestClient_NoRetryOnServerError(t *testing.T) {
	var attempts int32

	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		atomic.AddInt32(&attempts, 1)
		w.WriteHeader(http.StatusInternalServerError)
	})

	resp, err := client.Get(context.Background(), "/todos")
	require.NoError(t, err)
	defer closeBody(t, resp)

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, int32(1), atomic.LoadInt32(&attempts))
}

func TestClient_TransportFailure(t *testing.T) {
	cfg := defaultConfig()
	cfg.BaseURL = "http://127.0.0.1:1"

	client, err := New(cfg)
	require.NoError(t, err)

	_, err = client.Get(context.Background(), "/todos")
	require.ErrorIs(t, err, ErrRequestFailed)
	assert.Contains(t, err.Error(), "GET /todos")
}

func TestClient_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(500 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	cfg := defaultConfig()
	cfg.BaseURL = server.URL
	cfg.Timeout = 50 * time.Millisecond

	client, err := New(cfg)
	require.NoError(t, err)

	_, err = client.Get(context.Background(), "/todos")
	require.ErrorIs(t, err, ErrRequestFailed)
}

func TestClient_ContextCancellation(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(500 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	})

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := client.Get(ctx, "/todos")
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestClient_Methods(t *testing.T) {
	type received struct {
		method      string
		path        string
		contentType string
		body        string
	}

	tests := []struct {
		name string
		call func(*Client) (*http.Response, error)
		want received
	}{
		{
			name: "post",
			call: func(c *Client) (*http.Response, error) {
				return c.Post(context.Background(), "/todos", strings.NewReader(`{"text":"a"}`))
			},
			want: received{http.MethodPost, "/api/todos", "application/json", `{"text":"a"}`},
		},
		{
			name: "patch",
			call: func(c *Client) (*http.Response, error) {
				return c.Patch(context.Background(), "todos/1", strings.NewReader(`{"completed":true}`))
			},
			want: received{http.MethodPatch, "/api/todos/1", "application/json", `{"completed":true}`},
		},
		{
			name: "delete",
			call: func(c *Client) (*http.Response, error) {
				return c.Delete(context.Background(), "/todos/1")
			},
			want: received{http.MethodDelete, "/api/todos/1", "", ""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got received

			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				body, _ := io.ReadAll(r.Body)
				got = received{r.Method, r.URL.Path, r.Header.Get("Content-Type"), string(body)}
				w.WriteHeader(http.StatusOK)
			}))
			defer server.Close()

			cfg := defaultConfig()
			cfg.BaseURL = server.URL + "/api/"

			client, err := New(cfg)
			require.NoError(t, err)

			resp, err := tt.call(client)
			require.NoError(t, err)
			defer closeBody(t, resp)

			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClient_BuildURL(t *testing.T) {
	cfg := defaultConfig()
	cfg.BaseURL = "http://localhost:5000/api"

	client, err := New(cfg)
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:5000/api/todos", client.buildURL("/todos"))
	assert.Equal(t, "http://localhost:5000/api/todos", client.buildURL("todos"))

	cfg.BaseURL = "http://localhost:5000/api/"
	client, err = New(cfg)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:5000/api/todos", client.buildURL("/todos"))
}
