package http

import (
	"net/http"

	"broadcast-srv/internal/broadcast"
	"broadcast-srv/internal/model"
	"broadcast-srv/pkg/response"
	"broadcast-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

type authorizeReq struct {
	ChannelName string `json:"channel_name" form:"channel_name"`
}

type authorizeResp struct {
	ChannelData *broadcast.PresenceMember `json:"channel_data,omitempty"`
}

// AuthorizeChannel evaluates a channel subscription attempt for the current
// principal.
// @Summary Authorize channel subscription
// @Description Decide whether the authenticated principal may subscribe to the named channel. Presence channels return member data.
// @Tags Broadcasting
// @Accept json
// @Produce json
// @Param request body authorizeReq true "Wire channel name"
// @Success 200 {object} authorizeResp
// @Failure 403 {object} response.Resp "Subscription denied"
// @Router /broadcasting/auth [post]
func (h *Handler) AuthorizeChannel(c *gin.Context) {
	ctx := c.Request.Context()

	payload, ok := scope.GetPayloadFromContext(ctx)
	if !ok {
		response.Unauthorized(c)
		return
	}
	principal := &model.Scope{UserID: payload.UserID, Name: payload.Name, JTI: payload.JTI}

	var req authorizeReq
	if err := c.ShouldBind(&req); err != nil {
		response.Forbidden(c)
		return
	}

	ch := broadcast.ParseWire(req.ChannelName)
	decision, err := h.authz.Authorize(ctx, principal, ch.Name)
	if err != nil && err != broadcast.ErrChannelRequired {
		h.l.Errorf(ctx, "internal.broadcast.delivery.http.AuthorizeChannel: %v", err)
	}
	if !decision.Allowed {
		// Denials are silent refusals, not application errors.
		response.Forbidden(c)
		return
	}

	c.JSON(http.StatusOK, authorizeResp{ChannelData: decision.Member})
}
