package rest

import (
	"context"
	"net/http"
	"sort"
	"time"

	"github.com/dfryer1193/imgserve/api"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

const healthTimeout = 2 * time.Second

// HealthCheck probes one dependency.
type HealthCheck func(ctx context.Context) error

type HealthHandler struct {
	checks map[string]HealthCheck
}

func NewHealthHandler(checks map[string]HealthCheck) *HealthHandler {
	return &HealthHandler{checks: checks}
}

// Health godoc
//
// @Summary Liveness and dependency check
// @Tags    health
// @Produce json
// @Success 200 {object} api.HealthResponse
// @Failure 503 {object} api.HealthResponse
// @Router  /healthz [get]
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthTimeout)
	defer cancel()

	names := make([]string, 0, len(h.checks))
	for name := range h.checks {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if err := h.checks[name](ctx); err != nil {
			log.Warn().Err(err).Str("check", name).Msg("Health check failed")
			c.JSON(http.StatusServiceUnavailable, api.HealthResponse{
				Status:  api.StatusUnhealthy,
				Message: name + ": " + err.Error(),
			})
			return
		}
	}

	c.JSON(http.StatusOK, api.HealthResponse{Status: api.StatusOK})
}
