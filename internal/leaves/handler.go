package leaves

import (
	"context"
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

// RegisterRoutes attaches leave routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/leaves", h.submit)
	rg.GET("/leaves", h.list)
	rg.POST("/leaves/:id/approve", h.approve)
	rg.POST("/leaves/:id/reject", h.reject)
}

type submitRequest struct {
	EmployeeID string `json:"employeeId"`
	Type       string `json:"type"`
	StartDate  string `json:"startDate"`
	EndDate    string `json:"endDate"`
	Reason     string `json:"reason"`
}

type reviewRequest struct {
	ReviewedBy string `json:"reviewedBy"`
}

func (h *Handler) submit(c *gin.Context) {
	var req submitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	c.Set(middleware.EmployeeIDKey, req.EmployeeID)
	leave, err := h.Svc.Submit(c.Request.Context(), SubmitInput{
		EmployeeID: req.EmployeeID,
		Type:       Type(req.Type),
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
		Reason:     req.Reason,
	})
	if err != nil {
		writeError(c, err, "failed to submit leave request")
		return
	}
	respond.JSON(c, http.StatusCreated, leave)
}

func (h *Handler) list(c *gin.Context) {
	list, err := h.Svc.List(c.Request.Context(), Status(c.Query("status")))
	if err != nil {
		writeError(c, err, "failed to list leave requests")
		return
	}
	respond.List(c, list)
}

func (h *Handler) approve(c *gin.Context) {
	h.review(c, h.Svc.Approve)
}

func (h *Handler) reject(c *gin.Context) {
	h.review(c, h.Svc.Reject)
}

func (h *Handler) review(c *gin.Context, action func(ctx context.Context, id, reviewer string) (Request, error)) {
	var req reviewRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
			return
		}
	}
	leave, err := action(c.Request.Context(), c.Param("id"), req.ReviewedBy)
	if err != nil {
		writeError(c, err, "failed to review leave request")
		return
	}
	respond.OK(c, leave)
}

func writeError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "leave request not found", nil)
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
