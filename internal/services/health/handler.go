package health

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"smarthrms/internal/shared/server/respond"
	"smarthrms/internal/shared/telemetry"
)

// Handler exposes the health endpoint.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches GET /health.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/health", h.status)
}

func (h *Handler) status(c *gin.Context) {
	st := h.Svc.Status(c.Request.Context())
	if !st.OK {
		telemetry.Warn("health.degraded", map[string]any{"storage": st.Storage, "error": st.Error})
		respond.JSON(c, http.StatusServiceUnavailable, st)
		return
	}
	respond.OK(c, st)
}
