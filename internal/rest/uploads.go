package rest

import (
	"io"
	"net/http"

	"github.com/dfryer1193/imgserve/api"
	"github.com/dfryer1193/imgserve/images/application"
	"github.com/dfryer1193/imgserve/images/domain"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type ImageHandler struct {
	uploads    *application.UploadService
	transforms *application.TransformService
}

func NewImageHandler(uploads *application.UploadService, transforms *application.TransformService) *ImageHandler {
	return &ImageHandler{
		uploads:    uploads,
		transforms: transforms,
	}
}

// Upload stores the raw request body under the image name.
//
// @Summary     Upload an image
// @Description Stores the request body under {image}, replacing any previous upload.
// @Tags        uploads
// @Accept      png,jpeg
// @Produce     json
// @Param       image path string true "Image name ending in .png or .jpg"
// @Success     200 {object} api.UploadResponse
// @Failure     403 {object} api.ErrorResponse
// @Failure     413 {object} api.ErrorResponse
// @Failure     415 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /uploads/{image} [post]
func (h *ImageHandler) Upload(c *gin.Context) {
	key, ok := uploadKey(c)
	if !ok {
		return
	}

	content, err := io.ReadAll(c.Request.Body)
	if err != nil {
		respondError(c, err, opWrite)
		return
	}

	size, err := h.uploads.Upload(c.Request.Context(), &domain.StoredImage{Key: key, Content: content}, c.ContentType())
	if err != nil {
		respondError(c, err, opWrite)
		return
	}

	c.JSON(http.StatusOK, api.UploadResponse{
		Status: api.StatusOK,
		Size:   size,
	})
}

// ValidateUpload rejects a bad image name or content type before the body is
// read, so those errors win over the size limit.
func (h *ImageHandler) ValidateUpload(c *gin.Context) {
	key, ok := parseUpload(c)
	if !ok {
		return
	}

	c.Set(uploadKeyContext, key)
	c.Next()
}

const uploadKeyContext = "upload_key"

func uploadKey(c *gin.Context) (domain.Key, bool) {
	if v, ok := c.Get(uploadKeyContext); ok {
		return v.(domain.Key), true
	}
	return parseUpload(c)
}

func parseUpload(c *gin.Context) (domain.Key, bool) {
	key, err := domain.ParseKey(c.Param("image"))
	if err != nil {
		respondError(c, err, opWrite)
		return domain.Key{}, false
	}

	if err := application.ValidateContentType(c.GetHeader("Content-Type")); err != nil {
		respondError(c, err, opWrite)
		return domain.Key{}, false
	}
	return key, true
}

// Head reports whether an image has been uploaded.
//
// @Summary Check an image exists
// @Tags    uploads
// @Param   image path string true "Image name"
// @Success 200
// @Failure 404
// @Router  /uploads/{image} [head]
func (h *ImageHandler) Head(c *gin.Context) {
	key, err := domain.ParseKey(c.Param("image"))
	if err != nil {
		c.Status(http.StatusNotFound)
		return
	}

	exists, err := h.uploads.Exists(c.Request.Context(), key)
	if err != nil {
		log.Error().Err(err).Str("key", key.Name).Msg("Failed to check image")
		c.Status(http.StatusInternalServerError)
		return
	}
	if !exists {
		c.Status(http.StatusNotFound)
		return
	}

	c.Status(http.StatusOK)
}

// Get streams an uploaded image, transformed by the query parameters.
//
// @Summary     Download an image
// @Description Without query parameters the stored bytes are returned unchanged.
// @Tags        uploads
// @Produce     png,jpeg
// @Param       image     path  string  true  "Image name"
// @Param       width     query integer false "Target width in pixels"
// @Param       height    query integer false "Target height in pixels"
// @Param       blur      query number  false "Gaussian blur sigma"
// @Param       sharpen   query number  false "Sharpen sigma"
// @Param       greyscale query boolean false "Convert to greyscale"
// @Param       flip      query boolean false "Mirror vertically"
// @Param       flop      query boolean false "Mirror horizontally"
// @Success     200 {file} binary
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /uploads/{image} [get]
func (h *ImageHandler) Get(c *gin.Context) {
	key, err := domain.ParseKey(c.Param("image"))
	if err != nil {
		respondError(c, err, opRead)
		return
	}

	req := application.ParseTransformRequest(c.Request.URL.Query())
	rc, err := h.transforms.Render(c.Request.Context(), key, req)
	if err != nil {
		respondError(c, err, opRead)
		return
	}
	defer rc.Close()

	c.DataFromReader(http.StatusOK, -1, key.Format.ContentType(), rc, nil)
}

// Info returns the recorded metadata of an upload.
//
// @Summary Upload metadata
// @Tags    uploads
// @Produce json
// @Param   image path string true "Image name"
// @Success 200 {object} api.UploadInfo
// @Failure 404 {object} api.ErrorResponse
// @Router  /uploads/{image}/info [get]
func (h *ImageHandler) Info(c *gin.Context) {
	key, err := domain.ParseKey(c.Param("image"))
	if err != nil {
		respondError(c, err, opRead)
		return
	}

	rec, err := h.uploads.Info(c.Request.Context(), key)
	if err != nil {
		respondError(c, err, opRead)
		return
	}
	if rec == nil {
		respondError(c, domain.ErrNotFound, opRead)
		return
	}

	c.JSON(http.StatusOK, api.UploadInfo{
		Key:         rec.Key,
		Size:        rec.Size,
		SHA256:      rec.SHA256,
		ContentType: rec.ContentType,
		UpdatedAt:   rec.UpdatedAt,
		CreatedAt:   rec.CreatedAt,
	})
}
