package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"stayhub/utils"
)

// CatalogInvalidator drops cached catalog data ahead of TTL expiry.
// Satisfied by catalog.CachedSource.
type CatalogInvalidator interface {
	Invalidate(ctx context.Context) error
}

// CatalogHandler exposes operational controls over the room catalog.
type CatalogHandler struct {
	cache  CatalogInvalidator
	logger *zap.Logger
}

// NewCatalogHandler creates a CatalogHandler. cache may be nil when the
// deployment runs without a catalog cache.
func NewCatalogHandler(cache CatalogInvalidator, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{cache: cache, logger: logger}
}

// Invalidate handles POST /api/catalog/invalidate. Used after upstream
// inventory changes so searches stop serving stale rooms.
func (h *CatalogHandler) Invalidate(c *gin.Context) {
	if h.cache == nil {
		c.JSON(http.StatusOK, gin.H{"success": true, "invalidated": false})
		return
	}
	if err := h.cache.Invalidate(c.Request.Context()); err != nil {
		h.logger.Error("catalog cache invalidation failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "cache invalidation failed")
		return
	}
	h.logger.Info("catalog cache invalidated")
	c.JSON(http.StatusOK, gin.H{"success": true, "invalidated": true})
}
