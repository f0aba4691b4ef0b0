package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jsamuelsen/todo-service/internal/domain"
)

// MaxQuoteBatch caps the number of quotes accepted in one POST.
const MaxQuoteBatch = 1000

// QuoteResponse is the wire shape of a quote.
type QuoteResponse struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Author    string    `json:"author,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewQuoteResponse converts a domain quote.
func NewQuoteResponse(q *domain.Quote) QuoteResponse {
	return QuoteResponse{
		ID:        q.ID,
		Text:      q.Text,
		Author:    q.Author,
		CreatedAt: q.CreatedAt.UTC(),
		UpdatedAt: q.UpdatedAt.UTC(),
	}
}

// NewQuoteResponses converts a batch.
func NewQuoteResponses(quotes []*domain.Quote) []QuoteResponse {
	out := make([]QuoteResponse, 0, len(quotes))
	for _, q := range quotes {
		out = append(out, NewQuoteResponse(q))
	}

	return out
}

// ToDomain converts a decoded quote back into the domain type.
func (r QuoteResponse) ToDomain() domain.Quote {
	return domain.Quote{
		ID:        r.ID,
		Text:      r.Text,
		Author:    r.Author,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

// QuoteRequest is one quote as posted by clients and as stored in seed files.
type QuoteRequest struct {
	Text   string `json:"text"`
	Author string `json:"author,omitempty"`
}

// ToInput converts the request for the application layer.
func (r QuoteRequest) ToInput() domain.QuoteInput {
	return domain.QuoteInput{Text: r.Text, Author: r.Author}
}

// CreateQuotesRequest is the batch form of POST /quotes.
type CreateQuotesRequest struct {
	Quotes []QuoteRequest `json:"quotes" validate:"max=1000"`
}

// Inputs converts every item for the application layer.
func (r CreateQuotesRequest) Inputs() []domain.QuoteInput {
	out := make([]domain.QuoteInput, 0, len(r.Quotes))
	for _, q := range r.Quotes {
		out = append(out, q.ToInput())
	}

	return out
}

// DecodeCreateQuotes decodes POST /quotes. A body whose "quotes" member is a
// JSON array is a batch; any other object is a single quote.
func DecodeCreateQuotes(body []byte) (single *QuoteRequest, batch *CreateQuotesRequest, err error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil || fields == nil {
		return nil, nil, fmt.Errorf("%w: body must be a JSON object", ErrBinding)
	}

	if raw, ok := fields["quotes"]; ok && bytes.HasPrefix(bytes.TrimSpace(raw), []byte("[")) {
		var req CreateQuotesRequest
		if err := json.Unmarshal(body, &req); err != nil {
			return nil, nil, fmt.Errorf("%w: %w", ErrBinding, err)
		}

		if err := Validate(req); err != nil {
			return nil, nil, err
		}

		return nil, &req, nil
	}

	var req QuoteRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrBinding, err)
	}

	return &req, nil, nil
}

// LoadQuoteFile parses a seed file: a JSON array of quotes.
func LoadQuoteFile(data []byte) ([]domain.QuoteInput, error) {
	var items []QuoteRequest
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBinding, err)
	}

	return CreateQuotesRequest{Quotes: items}.Inputs(), nil
}

// HealthResponse is the body of GET /api/health.
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}
