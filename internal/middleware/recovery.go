package middleware

import (
	"github.com/gin-gonic/gin"

	"broadcast-srv/pkg/discord"
	pkgLog "broadcast-srv/pkg/log"
	"broadcast-srv/pkg/response"
)

// Recovery converts panics into the 500 envelope and reports them to the
// ops webhook.
func Recovery(l pkgLog.Logger, discordClient discord.IDiscord) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				ctx := c.Request.Context()
				l.Errorf(ctx, "Panic recovered: %v | Method: %s | Path: %s",
					err, c.Request.Method, c.Request.URL.Path)

				response.PanicError(c, err, discordClient)
				c.Abort()
			}
		}()
		c.Next()
	}
}
