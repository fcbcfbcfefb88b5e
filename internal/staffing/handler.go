package staffing

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"smarthrms/internal/shared/server/middleware"
	"smarthrms/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches staffing routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/tasks/:id/candidates", h.candidates)
	rg.GET("/tasks/:id/matches/:employeeId", h.match)
	rg.GET("/skills/gaps", h.gaps)
}

func (h *Handler) candidates(c *gin.Context) {
	taskID := c.Param("id")
	c.Set(middleware.TaskIDKey, taskID)

	topN := 0
	if v := c.Query("top"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed <= 0 {
			respond.Error(c, http.StatusBadRequest, "validation_error", "top must be a positive integer", nil)
			return
		}
		topN = parsed
	}

	ranking, err := h.Svc.Candidates(c.Request.Context(), taskID, topN)
	if err != nil {
		writeError(c, err, "failed to rank candidates")
		return
	}
	respond.OK(c, ranking)
}

func (h *Handler) match(c *gin.Context) {
	taskID := c.Param("id")
	employeeID := c.Param("employeeId")
	c.Set(middleware.TaskIDKey, taskID)
	c.Set(middleware.EmployeeIDKey, employeeID)

	m, err := h.Svc.MatchEmployee(c.Request.Context(), taskID, employeeID)
	if err != nil {
		writeError(c, err, "failed to score match")
		return
	}
	respond.OK(c, m)
}

func (h *Handler) gaps(c *gin.Context) {
	report, err := h.Svc.Gaps(c.Request.Context())
	if err != nil {
		writeError(c, err, "failed to analyze skill gaps")
		return
	}
	respond.OK(c, report)
}

func writeError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrTaskNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "task not found", nil)
	case errors.Is(err, ErrEmployeeNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "employee not found", nil)
	case errors.Is(err, ErrInvalidInput):
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
	default:
		respond.Error(c, http.StatusBadGateway, "upstream_error", fallback, nil)
	}
}
