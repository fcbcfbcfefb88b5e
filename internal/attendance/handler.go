package attendance

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

// RegisterRoutes attaches attendance routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/attendance/check-in", h.checkIn)
	rg.POST("/attendance/check-out", h.checkOut)
	rg.GET("/attendance", h.list)
}

type checkRequest struct {
	EmployeeID string `json:"employeeId"`
}

func (h *Handler) checkIn(c *gin.Context) {
	var req checkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	c.Set(middleware.EmployeeIDKey, req.EmployeeID)
	rec, err := h.Svc.CheckIn(c.Request.Context(), req.EmployeeID)
	if err != nil {
		writeError(c, err, "failed to check in")
		return
	}
	respond.JSON(c, http.StatusCreated, rec)
}

func (h *Handler) checkOut(c *gin.Context) {
	var req checkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	c.Set(middleware.EmployeeIDKey, req.EmployeeID)
	rec, err := h.Svc.CheckOut(c.Request.Context(), req.EmployeeID)
	if err != nil {
		writeError(c, err, "failed to check out")
		return
	}
	respond.OK(c, rec)
}

func (h *Handler) list(c *gin.Context) {
	records, err := h.Svc.List(c.Request.Context(), Filter{
		EmployeeID: c.Query("employeeId"),
		Date:       c.Query("date"),
	})
	if err != nil {
		writeError(c, err, "failed to list attendance")
		return
	}
	respond.List(c, records)
}

func writeError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrEmployeeNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "employee not found", nil)
	case errors.Is(err, ErrAlreadyCheckedIn), errors.Is(err, ErrAlreadyCheckedOut), errors.Is(err, ErrNotCheckedIn):
		respond.Error(c, http.StatusConflict, "conflict", err.Error(), nil)
	case errors.Is(err, ErrInvalidInput):
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", fallback, nil)
	}
}
