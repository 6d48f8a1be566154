package middleware

import (
	"mime"
	"net/http"

	"cinema-scheduler/internal/handler/httperr"
	"cinema-scheduler/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

var errUnsupportedMediaType = errs.New("unsupported media type")

// RequireJSON rejects request bodies that are not declared as JSON.
func RequireJSON() gin.HandlerFunc {
	return func(c *gin.Context) {
		mediaType, _, err := mime.ParseMediaType(c.GetHeader("Content-Type"))
		if err != nil || mediaType != gin.MIMEJSON {
			httperr.AbortWithError(c, http.StatusUnsupportedMediaType,
				errs.Wrapf(errUnsupportedMediaType, "content type %q", c.GetHeader("Content-Type")),
				"Content-Type must be application/json", nil)
			return
		}
		c.Next()
	}
}
