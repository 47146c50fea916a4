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

type employeeManager interface {
	List(ctx context.Context, query dto.ListEmployeesQuery) ([]models.Employee, *models.Pagination, error)
	Get(ctx context.Context, id string) (*models.Employee, error)
	Create(ctx context.Context, req dto.CreateEmployeeRequest) (*models.Employee, error)
	Update(ctx context.Context, id string, req dto.UpdateEmployeeRequest) (*models.Employee, error)
	Deactivate(ctx context.Context, id string) error
}

// EmployeeHandler exposes employee management endpoints.
type EmployeeHandler struct {
	service employeeManager
}

// NewEmployeeHandler constructs the handler.
func NewEmployeeHandler(svc *service.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{service: svc}
}

// List godoc
// @Summary List employees
// @Tags Employees
// @Produce json
// @Param companyId query string false "Company ID"
// @Param teamId query string false "Team ID"
// @Param search query string false "Name or email search"
// @Param active query bool false "Active filter"
// @Success 200 {object} response.Envelope
// @Router /employees [get]
func (h *EmployeeHandler) List(c *gin.Context) {
	var query dto.ListEmployeesQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid employee query"))
		return
	}

	employees, pagination, err := h.service.List(c.Request.Context(), query)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, employees, pagination)
}

// Get godoc
// @Summary Get employee by ID
// @Tags Employees
// @Produce json
// @Param id path string true "Employee ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /employees/{id} [get]
func (h *EmployeeHandler) Get(c *gin.Context) {
	employee, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, employee, nil)
}

// Create godoc
// @Summary Register a new employee
// @Tags Employees
// @Accept json
// @Produce json
// @Param payload body dto.CreateEmployeeRequest true "Employee payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /employees [post]
func (h *EmployeeHandler) Create(c *gin.Context) {
	var req dto.CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid employee payload"))
		return
	}

	employee, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, employee)
}

// Update godoc
// @Summary Update an employee
// @Tags Employees
// @Accept json
// @Produce json
// @Param id path string true "Employee ID"
// @Param payload body dto.UpdateEmployeeRequest true "Employee payload"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /employees/{id} [put]
func (h *EmployeeHandler) Update(c *gin.Context) {
	var req dto.UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid employee payload"))
		return
	}

	employee, err := h.service.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, employee, nil)
}

// Deactivate godoc
// @Summary Deactivate an employee
// @Tags Employees
// @Param id path string true "Employee ID"
// @Success 204
// @Failure 404 {object} response.Envelope
// @Router /employees/{id} [delete]
func (h *EmployeeHandler) Deactivate(c *gin.Context) {
	if err := h.service.Deactivate(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
