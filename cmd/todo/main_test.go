package main

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/todo-service/internal/adapters/clients"
	"github.com/jsamuelsen/todo-service/internal/adapters/clients/acl"
	"github.com/jsamuelsen/todo-service/internal/frontend"
)

func newTestAPI(t *testing.T, handler http.Handler) *acl.TodoAPIClient {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := clients.New(&clients.Config{BaseURL: server.URL, ServiceName: acl.ServiceName, Logger: discardLogger()})
	require.NoError(t, err)

	return acl.NewTodoAPIClient(acl.TodoAPIClientConfig{Client: client, Logger: discardLogger()})
}

func newTestController(t *testing.T, handler http.Handler) *frontend.Controller {
	t.Helper()

	return frontend.NewController(newTestAPI(t, handler), discardLogger())
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestPrintList(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /todos", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `[
			{"id":"1","text":"Done thing","completed":true,"createdAt":"2026-01-02T00:00:00Z","updatedAt":"2026-01-02T00:00:00Z"},
			{"id":"2","text":"Open thing","completed":false,"createdAt":"2026-01-01T00:00:00Z","updatedAt":"2026-01-01T00:00:00Z"}
		]`)
	})
	mux.HandleFunc("GET /quotes/random", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `{"id":"q","text":"Stay hungry.","author":"Steve Jobs"}`)
	})

	var out bytes.Buffer

	require.NoError(t, printList(context.Background(), newTestController(t, mux), &out))

	text := out.String()
	assert.Contains(t, text, "Stay hungry.")
	assert.Contains(t, text, "Steve Jobs")
	assert.Less(t, bytes.Index(out.Bytes(), []byte("Open thing")), bytes.Index(out.Bytes(), []byte("Done thing")),
		"incomplete todos are listed first")
}

func TestPrintList_QuoteFailureIsNotFatal(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /todos", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `[]`)
	})
	mux.HandleFunc("GET /quotes/random", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = io.WriteString(w, `{"message":"No quotes found","code":"NOT_FOUND"}`)
	})

	var out bytes.Buffer

	require.NoError(t, printList(context.Background(), newTestController(t, mux), &out))
	assert.Contains(t, out.String(), "Nothing here yet")
}

func TestPrintList_TodosFailure(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	var out bytes.Buffer

	err := printList(context.Background(), newTestController(t, handler), &out)
	require.Error(t, err)
	assert.Equal(t, frontend.MessageLoadFailed, err.Error())
	assert.Contains(t, out.String(), frontend.MessageLoadFailed)
}

func TestCheckHealth(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `{"status":"ok","timestamp":"2026-01-01T00:00:00Z"}`)
	})

	var out bytes.Buffer

	require.NoError(t, checkHealth(context.Background(), newTestAPI(t, mux), &out))
	assert.Contains(t, out.String(), "todo-api: healthy")
}

func TestCheckHealth_Unhealthy(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "server error",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusServiceUnavailable)
			},
		},
		{
			name: "unexpected status",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = io.WriteString(w, `{"status":"degraded"}`)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer

			err := checkHealth(context.Background(), newTestAPI(t, tt.handler), &out)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "unhealthy")
			assert.Contains(t, out.String(), "todo-api: unhealthy")
		})
	}
}
