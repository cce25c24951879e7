package http

import (
	"context"

	"github.com/gin-gonic/gin"

	"broadcast-srv/internal/model"
	"broadcast-srv/pkg/response"
	"broadcast-srv/pkg/scope"
)

// Login authenticates as the first seeded demo user.
// @Summary Login as the default demo user
// @Description Issues a session for the first seeded user, sets the auth cookie and redirects to the index.
// @Tags Demo
// @Success 303
// @Failure 404 {object} response.Resp "No seeded users"
// @Router /login [get]
func (h *Handler) Login(c *gin.Context) {
	ctx := c.Request.Context()

	sess, err := h.uc.Login(ctx)
	if err != nil {
		response.ErrorWithMap(c, err, notFoundMapping)
		return
	}

	h.setSessionCookie(c, sess.Token)
	response.Redirect(c, "/")
}

// SwitchUser re-issues the session as another user.
// @Summary Switch the demo session to another user
// @Description Issues a fresh session token for the given user id, replaces the auth cookie and redirects to the index.
// @Tags Demo
// @Accept json
// @Param request body switchUserReq true "Target user"
// @Success 303
// @Failure 404 {object} response.Resp "Unknown user"
// @Router /switch-user [post]
func (h *Handler) SwitchUser(c *gin.Context) {
	ctx := c.Request.Context()

	var req switchUserReq
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	sess, err := h.uc.SwitchUser(ctx, req.UserID)
	if err != nil {
		response.ErrorWithMap(c, err, notFoundMapping)
		return
	}

	h.setSessionCookie(c, sess.Token)
	response.Redirect(c, "/")
}

// Index returns the demo page data.
// @Summary Demo index data
// @Description Current principal, their post, and all principals ordered by id.
// @Tags Demo
// @Produce json
// @Success 200 {object} response.Resp{data=indexResp}
// @Failure 404 {object} response.Resp "Principal owns no post"
// @Router / [get]
func (h *Handler) Index(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := h.principal(c)
	if !ok {
		return
	}

	out, err := h.uc.Index(ctx, sc)
	if err != nil {
		response.ErrorWithMap(c, err, notFoundMapping)
		return
	}

	response.OK(c, newIndexResp(out))
}

// PublicEvent dispatches a PublicAnnouncement.
// @Summary Trigger a public announcement
// @Tags Demo
// @Success 303
// @Router /public-event [post]
func (h *Handler) PublicEvent(c *gin.Context) {
	h.trigger(c, h.uc.TriggerPublicEvent)
}

// PrivateEvent dispatches an OrderStatusUpdate on the principal's orders
// channel.
// @Summary Trigger a private order status update
// @Tags Demo
// @Success 303
// @Router /private-event [post]
func (h *Handler) PrivateEvent(c *gin.Context) {
	h.trigger(c, h.uc.TriggerPrivateEvent)
}

// PresenceEvent dispatches a ChatMessage on the chat room.
// @Summary Trigger a presence chat message
// @Tags Demo
// @Success 303
// @Router /presence-event [post]
func (h *Handler) PresenceEvent(c *gin.Context) {
	h.trigger(c, h.uc.TriggerPresenceEvent)
}

// ModelEvent rewrites the owned post, which broadcasts its own update.
// @Summary Trigger a model-change broadcast
// @Tags Demo
// @Success 303
// @Failure 404 {object} response.Resp "Principal owns no post"
// @Router /model-event [post]
func (h *Handler) ModelEvent(c *gin.Context) {
	h.trigger(c, h.uc.TriggerModelEvent)
}

// Notification sends a DemoNotification to the current principal.
// @Summary Trigger a direct notification
// @Tags Demo
// @Success 303
// @Router /notification [post]
func (h *Handler) Notification(c *gin.Context) {
	h.trigger(c, h.uc.TriggerNotification)
}

func (h *Handler) trigger(c *gin.Context, fn func(ctx context.Context, sc model.Scope) error) {
	ctx := c.Request.Context()

	sc, ok := h.principal(c)
	if !ok {
		return
	}

	if err := fn(ctx, sc); err != nil {
		response.ErrorWithMap(c, err, notFoundMapping)
		return
	}

	response.Redirect(c, "/")
}

func (h *Handler) principal(c *gin.Context) (model.Scope, bool) {
	payload, ok := scope.GetPayloadFromContext(c.Request.Context())
	if !ok {
		response.Unauthorized(c)
		return model.Scope{}, false
	}

	return model.Scope{UserID: payload.UserID, Name: payload.Name, JTI: payload.JTI}, true
}

func (h *Handler) setSessionCookie(c *gin.Context, token string) {
	c.SetCookie(h.cookie.Name, token, h.cookie.MaxAge, "/", h.cookie.Domain, h.cookie.Secure, h.cookie.HttpOnly)
}
