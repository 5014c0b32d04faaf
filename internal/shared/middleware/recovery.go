package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// Recovery turns a panic into the generic failure page.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Error().
					Str("request_id", c.GetString(RequestIDKey)).
					Interface("error", err).
					Msg("Panic recovered")

				c.HTML(http.StatusInternalServerError, "error", gin.H{
					"title":   "Error",
					"message": "Internal server error",
				})
				c.Abort()
			}
		}()

		c.Next()
	}
}
