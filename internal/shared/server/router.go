package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"smarthrms/internal/shared/config"
	"smarthrms/internal/shared/metrics"
	"smarthrms/internal/shared/server/middleware"
	"smarthrms/internal/shared/server/respond"
)

// RouteRegistrar is implemented by every domain handler.
type RouteRegistrar interface {
	RegisterRoutes(rg *gin.RouterGroup)
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(cfg config.Config, handlers ...RouteRegistrar) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigin),
		middleware.RateLimit(middleware.RateLimitConfig{
			GroupFor: groupFor,
			Rules: map[string]middleware.RateLimitRule{
				middleware.StaffingGroup: {Rate: cfg.RateLimitRPS, Burst: cfg.RateLimitBurst},
			},
		}),
	)

	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api/v1")
	for _, h := range handlers {
		if h != nil {
			h.RegisterRoutes(api)
		}
	}

	r.NoRoute(func(c *gin.Context) {
		respond.Error(c, http.StatusNotFound, "not_found", "route not found", nil)
	})

	return r
}

func groupFor(c *gin.Context) string {
	// Ranking and gap routes score the whole roster per request.
	switch c.FullPath() {
	case "/api/v1/tasks/:id/candidates", "/api/v1/tasks/:id/matches/:employeeId", "/api/v1/skills/gaps":
		return middleware.StaffingGroup
	default:
		return ""
	}
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
