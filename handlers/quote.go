package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"stayhub/services/quote"
	"stayhub/utils"
)

// QuoteHandler serves cart pricing quotes.
type QuoteHandler struct {
	calculator *quote.Calculator
	policy     quote.Policy
	logger     *zap.Logger
}

// NewQuoteHandler creates a QuoteHandler with the given cart policy.
func NewQuoteHandler(calculator *quote.Calculator, policy quote.Policy, logger *zap.Logger) *QuoteHandler {
	return &QuoteHandler{calculator: calculator, policy: policy, logger: logger}
}

// Quote handles GET /api/quote.
func (h *QuoteHandler) Quote(c *gin.Context) {
	for _, param := range []string{"propertyId", "checkIn", "checkOut"} {
		if c.Query(param) == "" {
			utils.JSONError(c, http.StatusBadRequest, param+" is required")
			return
		}
	}

	items, err := quote.ParseCart(c.Query("cart"), h.policy)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.calculator.Quote(items)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, quote.ErrMissingCart) || errors.Is(err, quote.ErrInvalidCart) {
			status = http.StatusBadRequest
		}
		utils.JSONError(c, status, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "quote": result})
}
