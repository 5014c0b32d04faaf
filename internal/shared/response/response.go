// Package response renders the non-form outcomes shared by every
// workflow: the "not found" page and the generic failure page. Validation
// failures never come through here; the handlers re-render their own
// forms for those.
package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// NotFound renders the distinct not-found page.
func NotFound(c *gin.Context, message string) {
	c.HTML(http.StatusNotFound, "error", gin.H{
		"title":   "Not Found",
		"message": message,
	})
}

// Internal logs the store or transport fault and renders the generic
// failure page with no partial data. The underlying error is not shown to
// the user.
func Internal(c *gin.Context, err error) {
	log.Error().
		Err(err).
		Str("request_id", c.GetString("request_id")).
		Str("path", c.Request.URL.Path).
		Msg("request failed")

	c.HTML(http.StatusInternalServerError, "error", gin.H{
		"title":   "Error",
		"message": "Internal server error",
	})
}
