package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"stayhub/services/search"
	"stayhub/utils"
)

// SearchHandler serves availability searches.
type SearchHandler struct {
	aggregator *search.Aggregator
	logger     *zap.Logger
}

// NewSearchHandler creates a SearchHandler.
func NewSearchHandler(aggregator *search.Aggregator, logger *zap.Logger) *SearchHandler {
	return &SearchHandler{aggregator: aggregator, logger: logger}
}

// Search handles POST /api/search.
func (h *SearchHandler) Search(c *gin.Context) {
	var input struct {
		StartDate string `json:"startDate"`
		EndDate   string `json:"endDate"`
		Guests    int    `json:"guests"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	results, err := h.aggregator.Search(c.Request.Context(), input.StartDate, input.EndDate, input.Guests)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, search.ErrMissingParameter) || errors.Is(err, search.ErrInvalidRange) {
			status = http.StatusBadRequest
		}
		utils.JSONError(c, status, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": results})
}
