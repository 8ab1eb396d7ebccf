package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"stayhub/database/repository"
	"stayhub/models"
	"stayhub/utils"
)

// ContactHandler stores and lists contact-form submissions.
type ContactHandler struct {
	contacts repository.ContactRepository
	logger   *zap.Logger
}

// NewContactHandler creates a ContactHandler.
func NewContactHandler(contacts repository.ContactRepository, logger *zap.Logger) *ContactHandler {
	return &ContactHandler{contacts: contacts, logger: logger}
}

// Create handles POST /api/contacts.
func (h *ContactHandler) Create(c *gin.Context) {
	var input struct {
		Name    string `json:"name" binding:"required"`
		Email   string `json:"email" binding:"required,email"`
		Phone   string `json:"phone"`
		Message string `json:"message" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	contact := &models.Contact{
		Name:    input.Name,
		Email:   input.Email,
		Phone:   input.Phone,
		Message: input.Message,
	}
	if err := h.contacts.Insert(c.Request.Context(), contact); err != nil {
		h.logger.Error("insert contact failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to save contact")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": contact})
}

// List handles GET /api/contacts.
func (h *ContactHandler) List(c *gin.Context) {
	contacts, err := h.contacts.List(c.Request.Context())
	if err != nil {
		h.logger.Error("list contacts failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to load contacts")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": contacts})
}
