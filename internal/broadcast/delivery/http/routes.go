package http

import (
	"broadcast-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers the channel authorization endpoint. The realtime
// client calls it with the wire channel name before completing a private or
// presence subscription.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	bc := r.Group("/broadcasting")
	bc.Use(mw.Auth())
	{
		bc.POST("/auth", h.AuthorizeChannel)
	}
}
