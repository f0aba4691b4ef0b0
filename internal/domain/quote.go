package domain

import (
	"strconv"
	"strings"
	"time"
)

// EntityQuote is the entity name used in quote errors.
const EntityQuote = "quote"

// Quote represents a quotation with its author.
// This is a domain entity - it has no knowledge of external systems.
type Quote struct {
	// ID is assigned by the store on creation.
	ID string

	// Text is the quotation itself. Never empty after trimming.
	Text string

	// Author is who said or wrote the quote. Optional.
	Author string

	// CreatedAt and UpdatedAt are managed by the store.
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewQuote builds a quote ready for insertion.
// Text and author are trimmed; an empty text is a validation error.
func NewQuote(text, author string) (*Quote, error) {
	normalized, err := NormalizeText(text, "text is required")
	if err != nil {
		return nil, err
	}

	return &Quote{
		Text:   normalized,
		Author: strings.TrimSpace(author),
	}, nil
}

// QuoteInput is an unvalidated quote as received from a caller.
type QuoteInput struct {
	Text   string
	Author string
}

// NewQuotes validates a batch. Any invalid item rejects the whole batch, and the
// returned error names the offending index.
func NewQuotes(inputs []QuoteInput) ([]*Quote, error) {
	if len(inputs) == 0 {
		return nil, NewValidationError("quotes", "at least one quote is required")
	}

	quotes := make([]*Quote, 0, len(inputs))

	for i, in := range inputs {
		q, err := NewQuote(in.Text, in.Author)
		if err != nil {
			return nil, NewValidationErrorWithValue(
				"quotes",
				"quote "+strconv.Itoa(i)+": text is required",
				in.Text,
			)
		}

		quotes = append(quotes, q)
	}

	return quotes, nil
}

// NormalizeText trims s and fails with a validation error for the "text" field
// carrying msg when nothing remains.
func NormalizeText(s, msg string) (string, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return "", NewValidationErrorWithValue("text", msg, s)
	}

	return trimmed, nil
}
