package acl

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/jsamuelsen/todo-service/internal/adapters/clients"
)

// BaseAdapter provides request plumbing shared by API adapters.
type BaseAdapter struct {
	client      *clients.Client
	serviceName string
}

// NewBaseAdapter creates a new base adapter with the given client and service name.
func NewBaseAdapter(client *clients.Client, serviceName string) BaseAdapter {
	return BaseAdapter{
		client:      client,
		serviceName: serviceName,
	}
}

// ServiceName returns the name of the remote service.
func (a *BaseAdapter) ServiceName() string {
	return a.serviceName
}

// target names the entity a call addresses, for not-found errors.
type target struct {
	entity string
	id     string
}

// do issues one request and maps failures to domain errors.
// On success the caller must close the returned body.
func (a *BaseAdapter) do(ctx context.Context, method, path string, body any, t target) (io.ReadCloser, error) {
	var reader io.Reader

	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encoding request: %w", err)
		}

		reader = bytes.NewReader(raw)
	}

	resp, err := a.client.Send(ctx, method, path, reader)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return nil, err
		}

		return nil, MapHTTPError(nil, err, a.serviceName, t.entity, t.id)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		defer func() { _ = resp.Body.Close() }()

		return nil, MapHTTPError(resp, nil, a.serviceName, t.entity, t.id)
	}

	return resp.Body, nil
}

// DecodeResponse reads and decodes a JSON response body into the target type.
// Closes the body after reading.
func DecodeResponse[T any](body io.ReadCloser) (*T, error) {
	if body == nil {
		return nil, errors.New("response body is nil")
	}
	defer func() { _ = body.Close() }()

	var result T
	if err := json.NewDecoder(body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	return &result, nil
}

// TranslateSlice applies translate to every item. A nil input yields an empty slice.
func TranslateSlice[E any, D any](items []E, translate func(E) D) []D {
	result := make([]D, 0, len(items))

	for _, item := range items {
		result = append(result, translate(item))
	}

	return result
}
