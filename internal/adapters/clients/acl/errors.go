package acl

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/jsamuelsen/todo-service/internal/adapters/http/dto"
	"github.com/jsamuelsen/todo-service/internal/domain"
)

// maxErrorBody caps how much of an error response is read.
const maxErrorBody = 64 << 10

// ParseErrorResponse attempts to parse an error envelope.
// Returns nil if the body is empty or cannot be parsed.
func ParseErrorResponse(body io.Reader) *dto.ErrorResponse {
	if body == nil {
		return nil
	}

	var errResp dto.ErrorResponse
	if err := json.NewDecoder(io.LimitReader(body, maxErrorBody)).Decode(&errResp); err != nil {
		return nil
	}

	if errResp.Code == "" && errResp.Message == "" {
		return nil
	}

	return &errResp
}

// MapHTTPError maps a failed call to a domain error.
//
// clientErr is a transport error (no response); otherwise resp is a non-2xx
// response whose body is parsed for the server's message. entity and id
// describe what the call addressed and populate [domain.NotFoundError].
func MapHTTPError(resp *http.Response, clientErr error, serviceName, entity, id string) error {
	if clientErr != nil {
		return domain.NewUnavailableError(serviceName, clientErr.Error())
	}

	if resp == nil {
		return domain.NewUnavailableError(serviceName, "no response received")
	}

	if resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices {
		return nil
	}

	return mapStatusCode(resp.StatusCode, ParseErrorResponse(resp.Body), serviceName, entity, id)
}

func mapStatusCode(status int, errResp *dto.ErrorResponse, serviceName, entity, id string) error {
	message := fmt.Sprintf("HTTP %d", status)
	if errResp != nil && errResp.Message != "" {
		message = errResp.Message
	}

	switch {
	case status == http.StatusNotFound:
		return domain.NewNotFoundError(entity, id)

	case status == http.StatusBadRequest, status == http.StatusUnprocessableEntity:
		if errResp != nil {
			for field := range errResp.Details {
				return domain.NewValidationError(field, message)
			}
		}

		return domain.NewValidationError("", message)

	default:
		return domain.NewUnavailableError(serviceName, message)
	}
}
