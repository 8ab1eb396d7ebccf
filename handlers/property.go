package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"stayhub/services/pms"
	"stayhub/utils"
)

// PropertyHandler proxies read-only property-management lookups with
// per-property credential injection.
type PropertyHandler struct {
	pms    *pms.Client
	logger *zap.Logger
}

// NewPropertyHandler creates a PropertyHandler.
func NewPropertyHandler(client *pms.Client, logger *zap.Logger) *PropertyHandler {
	return &PropertyHandler{pms: client, logger: logger}
}

// Details handles GET /api/properties/:id.
func (h *PropertyHandler) Details(c *gin.Context) {
	details, err := h.pms.FetchHotelDetails(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": details})
}

// RoomTypes handles GET /api/properties/:id/room-types.
func (h *PropertyHandler) RoomTypes(c *gin.Context) {
	roomTypes, err := h.pms.FetchRoomTypes(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": roomTypes})
}

// RatePlans handles GET /api/properties/:id/rate-plans.
func (h *PropertyHandler) RatePlans(c *gin.Context) {
	start := c.Query("start")
	end := c.Query("end")
	if start == "" || end == "" {
		utils.JSONError(c, http.StatusBadRequest, "start and end are required")
		return
	}

	plans, err := h.pms.FetchRatePlans(c.Request.Context(), c.Param("id"), start, end)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": plans})
}

func (h *PropertyHandler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, pms.ErrNoCredential):
		utils.JSONError(c, http.StatusNotFound, "unknown property")
	case errors.Is(err, pms.ErrUpstream):
		h.logger.Error("PMS call failed", zap.Error(err))
		utils.JSONError(c, http.StatusBadGateway, "property system unavailable")
	default:
		h.logger.Error("property lookup failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "property lookup failed")
	}
}
