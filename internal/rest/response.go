package rest

import (
	"errors"
	"net/http"

	"github.com/dfryer1193/imgserve/api"
	"github.com/dfryer1193/imgserve/images/domain"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

const (
	msgUnsupportedFormat = "Unsupported image format"
	msgInvalidKey        = "Invalid image name"
	msgNotFound          = "Image has not been uploaded yet"
	msgTooLarge          = "Image exceeds the upload size limit"
	msgNotAnImage        = "Upload body must be an image"
)

type operation int

const (
	opRead operation = iota
	opWrite
)

// classify maps err to an HTTP status and a client-facing message. Key errors
// are forbidden on writes and indistinguishable from missing images on reads.
func classify(err error, op operation) (int, string) {
	var maxBytes *http.MaxBytesError

	switch {
	case errors.Is(err, domain.ErrUnsupportedFormat), errors.Is(err, domain.ErrInvalidKey):
		if op == opRead {
			return http.StatusNotFound, msgNotFound
		}
		if errors.Is(err, domain.ErrInvalidKey) {
			return http.StatusForbidden, msgInvalidKey
		}
		return http.StatusForbidden, msgUnsupportedFormat
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, msgNotFound
	case errors.Is(err, domain.ErrPayloadTooLarge), errors.As(err, &maxBytes):
		return http.StatusRequestEntityTooLarge, msgTooLarge
	case errors.Is(err, domain.ErrUnsupportedMediaType):
		return http.StatusUnsupportedMediaType, msgNotAnImage
	default:
		return http.StatusInternalServerError, err.Error()
	}
}

func respondError(c *gin.Context, err error, op operation) {
	status, message := classify(err, op)
	if status >= http.StatusInternalServerError {
		log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Request failed")
	}

	_ = c.Error(err)
	c.AbortWithStatusJSON(status, api.ErrorResponse{
		Status:  api.StatusError,
		Message: message,
	})
}
