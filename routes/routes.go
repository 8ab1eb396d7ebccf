package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"stayhub/handlers"
	"stayhub/utils"
)

// Handlers collects the route handlers wired in main.
type Handlers struct {
	Search   *handlers.SearchHandler
	Quote    *handlers.QuoteHandler
	Payment  *handlers.PaymentHandler
	Property *handlers.PropertyHandler
	Contact  *handlers.ContactHandler
	Catalog  *handlers.CatalogHandler
}

// RegisterRoutes registers all API endpoints.
func RegisterRoutes(r *gin.Engine, h *Handlers) {
	api := r.Group("/api")
	{
		api.POST("/search", h.Search.Search)
		api.GET("/quote", h.Quote.Quote)

		api.POST("/payments/bill", h.Payment.CreateBill)
		api.POST("/payments/callback", h.Payment.Callback)
		api.GET("/payments/redirect", h.Payment.Redirect)
		api.GET("/payments/:billId", h.Payment.Status)

		api.GET("/properties/:id", h.Property.Details)
		api.GET("/properties/:id/room-types", h.Property.RoomTypes)
		api.GET("/properties/:id/rate-plans", h.Property.RatePlans)

		api.POST("/contacts", h.Contact.Create)
		api.GET("/contacts", h.Contact.List)

		api.POST("/catalog/invalidate", h.Catalog.Invalidate)
	}

	RegisterHealthRoute(r)
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "dependencies": utils.GetHealthStatus()})
	})
}
