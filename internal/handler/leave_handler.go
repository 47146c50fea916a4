package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/krismos64/SmartPlanning-sub005/internal/dto"
	"github.com/krismos64/SmartPlanning-sub005/internal/models"
	"github.com/krismos64/SmartPlanning-sub005/internal/service"
	appErrors "github.com/krismos64/SmartPlanning-sub005/pkg/errors"
	"github.com/krismos64/SmartPlanning-sub005/pkg/response"
)

type leaveManager interface {
	List(ctx context.Context, query dto.ListLeavesQuery) ([]models.Leave, *models.Pagination, error)
	Create(ctx context.Context, req dto.CreateLeaveRequest) (*models.Leave, error)
	Decide(ctx context.Context, id string, req dto.DecideLeaveRequest) (*models.Leave, error)
}

// LeaveHandler exposes leave request endpoints.
type LeaveHandler struct {
	service leaveManager
}

// NewLeaveHandler constructs the handler.
func NewLeaveHandler(svc *service.LeaveService) *LeaveHandler {
	return &LeaveHandler{service: svc}
}

// List godoc
// @Summary List leave requests
// @Tags Leaves
// @Produce json
// @Param employeeId query string false "Employee ID"
// @Param status query string false "pending, approved or rejected"
// @Param from query string false "From date YYYY-MM-DD"
// @Param to query string false "To date YYYY-MM-DD"
// @Success 200 {object} response.Envelope
// @Router /leaves [get]
func (h *LeaveHandler) List(c *gin.Context) {
	var query dto.ListLeavesQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid leave query"))
		return
	}

	leaves, pagination, err := h.service.List(c.Request.Context(), query)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, leaves, pagination)
}

// Create godoc
// @Summary File a leave request
// @Tags Leaves
// @Accept json
// @Produce json
// @Param payload body dto.CreateLeaveRequest true "Leave payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /leaves [post]
func (h *LeaveHandler) Create(c *gin.Context) {
	var req dto.CreateLeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid leave payload"))
		return
	}

	leave, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, leave)
}

// Decide godoc
// @Summary Approve or reject a pending leave
// @Tags Leaves
// @Accept json
// @Produce json
// @Param id path string true "Leave ID"
// @Param payload body dto.DecideLeaveRequest true "Decision payload"
// @Success 200 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /leaves/{id}/decision [post]
func (h *LeaveHandler) Decide(c *gin.Context) {
	var req dto.DecideLeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid decision payload"))
		return
	}

	leave, err := h.service.Decide(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, leave, nil)
}
