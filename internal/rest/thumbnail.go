package rest

import (
	"bytes"
	"net/http"

	"github.com/dfryer1193/imgserve/images/application"
	"github.com/dfryer1193/imgserve/images/domain"
	"github.com/gin-gonic/gin"
)

const svgContentType = "image/svg+xml"

type ThumbnailHandler struct {
	renderer     *application.PlaceholderRenderer
	maxDimension int
}

func NewThumbnailHandler(renderer *application.PlaceholderRenderer, maxDimension int) *ThumbnailHandler {
	return &ThumbnailHandler{
		renderer:     renderer,
		maxDimension: maxDimension,
	}
}

// Raster returns the handler for /thumbnail.png or /thumbnail.jpg.
//
// @Summary     Placeholder thumbnail
// @Description Draws a crossed-out placeholder labelled with its dimensions. Malformed numbers fall back to their defaults.
// @Tags        thumbnails
// @Produce     png,jpeg
// @Param       format    path  string  true  "png or jpg" Enums(png, jpg)
// @Param       width     query integer false "Width in pixels"   default(300)
// @Param       height    query integer false "Height in pixels"  default(200)
// @Param       border    query integer false "Border in pixels"  default(5)
// @Param       bgcolor   query string  false "Background color"  default(#fcfcfc)
// @Param       fgcolor   query string  false "Foreground color"  default(#ddd)
// @Param       textcolor query string  false "Label color"       default(#aaa)
// @Param       textsize  query integer false "Label font size"   default(24)
// @Success     200 {file} binary
// @Router      /thumbnail.{format} [get]
func (h *ThumbnailHandler) Raster(format domain.Format) gin.HandlerFunc {
	return func(c *gin.Context) {
		spec := application.ParsePlaceholderSpec(c.Request.URL.Query(), h.maxDimension)

		var buf bytes.Buffer
		if err := h.renderer.Render(&buf, spec, format); err != nil {
			respondError(c, err, opRead)
			return
		}

		c.Data(http.StatusOK, format.ContentType(), buf.Bytes())
	}
}

// SVG returns the vector markup the raster thumbnails are drawn from.
//
// @Summary  Placeholder thumbnail as SVG
// @Tags     thumbnails
// @Produce  image/svg+xml
// @Param    width     query integer false "Width in pixels"  default(300)
// @Param    height    query integer false "Height in pixels" default(200)
// @Param    border    query integer false "Border in pixels" default(5)
// @Param    bgcolor   query string  false "Background color" default(#fcfcfc)
// @Param    fgcolor   query string  false "Foreground color" default(#ddd)
// @Param    textcolor query string  false "Label color"      default(#aaa)
// @Param    textsize  query integer false "Label font size"  default(24)
// @Success  200 {string} string
// @Router   /thumbnail.svg [get]
func (h *ThumbnailHandler) SVG(c *gin.Context) {
	spec := application.ParsePlaceholderSpec(c.Request.URL.Query(), h.maxDimension)
	c.Data(http.StatusOK, svgContentType, application.NewLayout(spec).SVG())
}
