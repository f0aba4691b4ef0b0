// Package acl translates between the todo API's wire format and domain types.
//
// Adapters here are the only code on the client side that knows about the
// JSON envelope served by the API. Callers depend on [ports.TodoAPI] and only
// ever see domain values and domain errors:
//   - 404 → [domain.ErrNotFound]
//   - 400/422 → [domain.ErrValidation], carrying the server's message
//   - 5xx and transport failures → [domain.ErrUnavailable]
//
// Nothing in this package retries. A failed call is reported exactly once.
package acl
