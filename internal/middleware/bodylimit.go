package middleware

import (
	"net/http"

	"github.com/dfryer1193/imgserve/api"
	"github.com/gin-gonic/gin"
)

// BodyLimit caps request bodies at limit bytes. Requests that announce a larger
// Content-Length are rejected before the handler runs; streamed bodies fail on
// read with *http.MaxBytesError.
func BodyLimit(limit int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > limit {
			c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, api.ErrorResponse{
				Status:  api.StatusError,
				Message: "Image exceeds the upload size limit",
			})
			return
		}

		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit)
		c.Next()
	}
}
