package http

import (
	"github.com/gin-gonic/gin"

	"broadcast-srv/internal/middleware"
)

// RegisterRoutes mounts the demo routes. Login is public; everything else
// sits behind the redirecting auth middleware so an expired browser session
// lands back on /login.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	r.GET("/login", h.Login)

	authed := r.Group("")
	authed.Use(mw.AuthRedirect("/login"))
	{
		authed.GET("/", h.Index)
		authed.POST("/switch-user", h.SwitchUser)
		authed.POST("/public-event", h.PublicEvent)
		authed.POST("/private-event", h.PrivateEvent)
		authed.POST("/presence-event", h.PresenceEvent)
		authed.POST("/model-event", h.ModelEvent)
		authed.POST("/notification", h.Notification)
	}
}
