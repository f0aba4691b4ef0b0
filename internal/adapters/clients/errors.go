// Package clients provides HTTP client adapters for the todo API.
package clients

import "errors"

// ErrRequestFailed is returned when no response was received.
// The transport error is wrapped for context; callers translate it to a domain error.
var ErrRequestFailed = errors.New("request failed")
