package app

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/todo-service/internal/domain"
	"github.com/jsamuelsen/todo-service/internal/mocks"
)

// discardLogger returns a logger that discards all output.
func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newQuoteService(t *testing.T, setup func(*mocks.MockQuoteRepository)) *QuoteService {
	t.Helper()

	repo := mocks.NewMockQuoteRepository(t)
	if setup != nil {
		setup(repo)
	}

	return NewQuoteService(QuoteServiceConfig{
		Repository: repo,
		Logger:     discardLogger(),
	})
}

func TestNewQuoteService_PanicsWithoutRepository(t *testing.T) {
	assert.Panics(t, func() {
		NewQuoteService(QuoteServiceConfig{Logger: slog.Default()})
	})
}

func TestNewQuoteService_DefaultsLogger(t *testing.T) {
	svc := NewQuoteService(QuoteServiceConfig{
		Repository: mocks.NewMockQuoteRepository(t),
	})

	require.NotNil(t, svc)
	assert.NotNil(t, svc.logger)
}

func TestQuoteService_GetRandomQuote(t *testing.T) {
	tests := []struct {
		name          string
		setupMock     func(*mocks.MockQuoteRepository)
		expectedQuote *domain.Quote
		errCheck      func(error) bool
	}{
		{
			name: "success",
			setupMock: func(m *mocks.MockQuoteRepository) {
				m.EXPECT().Random(mock.Anything).
					Return(&domain.Quote{ID: "q-1", Text: "Stay hungry", Author: "Jobs"}, nil)
			},
			expectedQuote: &domain.Quote{ID: "q-1", Text: "Stay hungry", Author: "Jobs"},
		},
		{
			name: "empty collection",
			setupMock: func(m *mocks.MockQuoteRepository) {
				m.EXPECT().Random(mock.Anything).
					Return(nil, domain.NewNotFoundError(domain.EntityQuote, ""))
			},
			errCheck: domain.IsNotFound,
		},
		{
			name: "store failure is wrapped",
			setupMock: func(m *mocks.MockQuoteRepository) {
				m.EXPECT().Random(mock.Anything).
					Return(nil, errors.New("connection reset"))
			},
			errCheck: func(err error) bool {
				return err != nil && err.Error() == "sampling quote: connection reset"
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newQuoteService(t, tt.setupMock)

			quote, err := svc.GetRandomQuote(context.Background())

			if tt.errCheck != nil {
				require.Error(t, err)
				assert.True(t, tt.errCheck(err))
				assert.Nil(t, quote)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expectedQuote, quote)
			}
		})
	}
}

func TestQuoteService_CreateQuote(t *testing.T) {
	t.Run("trims before storing", func(t *testing.T) {
		svc := newQuoteService(t, func(m *mocks.MockQuoteRepository) {
			m.EXPECT().Create(mock.Anything, &domain.Quote{Text: "Be kind", Author: "Anon"}).
				Return(&domain.Quote{ID: "q-9", Text: "Be kind", Author: "Anon"}, nil)
		})

		quote, err := svc.CreateQuote(context.Background(), domain.QuoteInput{Text: "  Be kind ", Author: " Anon"})

		require.NoError(t, err)
		assert.Equal(t, "q-9", quote.ID)
	})

	t.Run("whitespace text never reaches the store", func(t *testing.T) {
		svc := newQuoteService(t, nil)

		_, err := svc.CreateQuote(context.Background(), domain.QuoteInput{Text: "   "})

		require.Error(t, err)
		assert.True(t, domain.IsValidation(err))
	})
}

func TestQuoteService_CreateQuotes(t *testing.T) {
	t.Run("stores the batch in one call", func(t *testing.T) {
		svc := newQuoteService(t, func(m *mocks.MockQuoteRepository) {
			m.EXPECT().CreateMany(mock.Anything, mock.MatchedBy(func(qs []*domain.Quote) bool {
				return len(qs) == 2 && qs[0].Text == "a" && qs[1].Text == "b"
			})).Return([]*domain.Quote{{ID: "1", Text: "a"}, {ID: "2", Text: "b"}}, nil).Once()
		})

		created, err := svc.CreateQuotes(context.Background(), []domain.QuoteInput{{Text: "a"}, {Text: " b "}})

		require.NoError(t, err)
		assert.Len(t, created, 2)
	})

	t.Run("one bad item rejects the batch", func(t *testing.T) {
		svc := newQuoteService(t, nil)

		_, err := svc.CreateQuotes(context.Background(), []domain.QuoteInput{{Text: "a"}, {Text: ""}})

		require.Error(t, err)
		assert.True(t, domain.IsValidation(err))
	})

	t.Run("empty batch rejected", func(t *testing.T) {
		svc := newQuoteService(t, nil)

		_, err := svc.CreateQuotes(context.Background(), []domain.QuoteInput{})

		assert.True(t, domain.IsValidation(err))
	})

	t.Run("store failure", func(t *testing.T) {
		storeErr := errors.New("bulk write failed")
		svc := newQuoteService(t, func(m *mocks.MockQuoteRepository) {
			m.EXPECT().CreateMany(mock.Anything, mock.Anything).Return(nil, storeErr)
		})

		_, err := svc.CreateQuotes(context.Background(), []domain.QuoteInput{{Text: "a"}})

		require.ErrorIs(t, err, storeErr)
	})
}
