package tasks

import (
	"errors"
	"net/http"

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

// RegisterRoutes attaches task routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/tasks", h.create)
	rg.GET("/tasks", h.list)
	rg.GET("/tasks/:id", h.get)
	rg.PATCH("/tasks/:id", h.update)
	rg.DELETE("/tasks/:id", h.delete)
	rg.POST("/tasks/:id/assign", h.assign)
}

func (h *Handler) create(c *gin.Context) {
	var req createRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	task, err := h.Svc.Create(c.Request.Context(), req.toInput())
	if err != nil {
		writeError(c, err, "failed to create task")
		return
	}
	c.Set(middleware.TaskIDKey, task.ID)
	respond.JSON(c, http.StatusCreated, task)
}

func (h *Handler) list(c *gin.Context) {
	list, err := h.Svc.List(c.Request.Context())
	if err != nil {
		writeError(c, err, "failed to list tasks")
		return
	}
	if status := Status(c.Query("status")); status != "" {
		filtered := make([]Task, 0, len(list))
		for _, t := range list {
			if t.Status == status {
				filtered = append(filtered, t)
			}
		}
		list = filtered
	}
	respond.List(c, list)
}

func (h *Handler) get(c *gin.Context) {
	id := c.Param("id")
	c.Set(middleware.TaskIDKey, id)
	task, err := h.Svc.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, err, "failed to fetch task")
		return
	}
	respond.OK(c, task)
}

func (h *Handler) update(c *gin.Context) {
	id := c.Param("id")
	c.Set(middleware.TaskIDKey, id)
	var req updateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	task, err := h.Svc.Update(c.Request.Context(), id, req.toInput())
	if err != nil {
		writeError(c, err, "failed to update task")
		return
	}
	respond.OK(c, task)
}

func (h *Handler) assign(c *gin.Context) {
	id := c.Param("id")
	c.Set(middleware.TaskIDKey, id)
	var req assignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	c.Set(middleware.EmployeeIDKey, req.EmployeeID)
	task, err := h.Svc.Assign(c.Request.Context(), id, req.EmployeeID)
	if err != nil {
		writeError(c, err, "failed to assign task")
		return
	}
	respond.OK(c, task)
}

func (h *Handler) delete(c *gin.Context) {
	id := c.Param("id")
	c.Set(middleware.TaskIDKey, id)
	if err := h.Svc.Delete(c.Request.Context(), id); err != nil {
		writeError(c, err, "failed to delete task")
		return
	}
	respond.NoContent(c)
}

func writeError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "task not found", nil)
	case errors.Is(err, ErrEmployeeNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "employee not found", nil)
	case errors.Is(err, ErrInvalidTransition):
		respond.Error(c, http.StatusConflict, "invalid_transition", err.Error(), nil)
	case errors.Is(err, ErrInvalidInput):
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", fallback, nil)
	}
}
