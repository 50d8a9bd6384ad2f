package middleware

import (
	"fmt"

	"automation-srv/pkg/discord"
	"automation-srv/pkg/log"
	"automation-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// Recovery recovers from handler panics, logs them and alerts Discord when configured.
func Recovery(logger log.Logger, discordClient discord.IDiscord) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				ctx := c.Request.Context()
				logger.Errorf(ctx, "middleware.Recovery: panic recovered: %v | Method: %s | Path: %s",
					r, c.Request.Method, c.Request.URL.Path)

				if discordClient != nil {
					desc := fmt.Sprintf("%s %s", c.Request.Method, c.Request.URL.Path)
					if err := discordClient.SendError(ctx, "HTTP handler panic", desc, fmt.Errorf("%v", r)); err != nil {
						logger.Warnf(ctx, "middleware.Recovery: discord: %v", err)
					}
				}

				response.InternalError(c)
				c.Abort()
			}
		}()
		c.Next()
	}
}
