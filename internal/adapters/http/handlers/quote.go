package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/todo-service/internal/adapters/http/dto"
	"github.com/jsamuelsen/todo-service/internal/app"
)

// Generic messages for unexpected quote failures.
const (
	msgFetchQuoteFailed   = "Failed to fetch random quote"
	msgInsertQuotesFailed = "Failed to insert quotes"
)

// QuoteHandler handles quote endpoints.
type QuoteHandler struct {
	service *app.QuoteService
}

// NewQuoteHandler creates a new quote handler.
func NewQuoteHandler(service *app.QuoteService) *QuoteHandler {
	return &QuoteHandler{service: service}
}

// GetRandomQuote handles GET /api/quotes/random.
//
// @Summary Get a random quote
// @Tags quotes
// @Produce json
// @Success 200 {object} dto.QuoteResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/quotes/random [get]
func (h *QuoteHandler) GetRandomQuote(c *gin.Context) {
	quote, err := h.service.GetRandomQuote(c.Request.Context())
	if err != nil {
		dto.HandleError(c, err, msgFetchQuoteFailed)
		return
	}

	c.JSON(http.StatusOK, dto.NewQuoteResponse(quote))
}

// CreateQuotes handles POST /api/quotes with either one quote or {"quotes": [...]}.
//
// @Summary Insert one quote or a batch
// @Tags quotes
// @Accept json
// @Produce json
// @Success 201 {object} dto.QuoteResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/quotes [post]
func (h *QuoteHandler) CreateQuotes(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		dto.HandleError(c, bindingErr(err), msgInsertQuotesFailed)
		return
	}

	single, batch, err := dto.DecodeCreateQuotes(body)
	if err != nil {
		dto.HandleError(c, err, msgInsertQuotesFailed)
		return
	}

	ctx := c.Request.Context()

	if batch != nil {
		quotes, err := h.service.CreateQuotes(ctx, batch.Inputs())
		if err != nil {
			dto.HandleError(c, err, msgInsertQuotesFailed)
			return
		}

		c.JSON(http.StatusCreated, dto.NewQuoteResponses(quotes))

		return
	}

	quote, err := h.service.CreateQuote(ctx, single.ToInput())
	if err != nil {
		dto.HandleError(c, err, msgInsertQuotesFailed)
		return
	}

	c.JSON(http.StatusCreated, dto.NewQuoteResponse(quote))
}

// RegisterQuoteRoutes registers quote routes on rg.
func (h *QuoteHandler) RegisterQuoteRoutes(rg *gin.RouterGroup) {
	quotes := rg.Group("/quotes")
	quotes.GET("/random", h.GetRandomQuote)
	quotes.POST("", h.CreateQuotes)
}
