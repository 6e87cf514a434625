package rest

import (
	"net/http"

	_ "github.com/dfryer1193/imgserve/internal/docs"
	"github.com/dfryer1193/imgserve/internal/middleware"
	"github.com/dfryer1193/imgserve/images/domain"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const defaultMaxUploadBytes = 10 << 20

type Handlers struct {
	Images         *ImageHandler
	Thumbnails     *ThumbnailHandler
	Health         *HealthHandler
	MaxUploadBytes int64
}

func NewApi(router *gin.Engine, h Handlers) {
	maxUploadBytes := h.MaxUploadBytes
	if maxUploadBytes <= 0 {
		maxUploadBytes = defaultMaxUploadBytes
	}

	uploads := router.Group("/uploads")
	{
		uploads.POST("/:image", h.Images.ValidateUpload, middleware.BodyLimit(maxUploadBytes), h.Images.Upload)
		uploads.HEAD("/:image", h.Images.Head)
		uploads.GET("/:image", h.Images.Get)
		uploads.GET("/:image/info", h.Images.Info)
	}

	router.GET("/thumbnail.png", h.Thumbnails.Raster(domain.FormatPNG))
	router.GET("/thumbnail.jpg", h.Thumbnails.Raster(domain.FormatJPEG))
	router.GET("/thumbnail.svg", h.Thumbnails.SVG)

	router.GET("/healthz", h.Health.Health)

	docs := ginSwagger.WrapHandler(swaggerFiles.Handler)
	router.GET("/api-docs/*any", func(c *gin.Context) {
		if c.Param("any") == "/" {
			c.Redirect(http.StatusMovedPermanently, "/api-docs/index.html")
			return
		}
		docs(c)
	})
}
