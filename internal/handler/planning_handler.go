package handler

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/krismos64/SmartPlanning-sub005/internal/dto"
	"github.com/krismos64/SmartPlanning-sub005/internal/service"
	appErrors "github.com/krismos64/SmartPlanning-sub005/pkg/errors"
	"github.com/krismos64/SmartPlanning-sub005/pkg/jobs"
	"github.com/krismos64/SmartPlanning-sub005/pkg/response"
)

const maxBatchEmployees = 512

type planningOrchestrator interface {
	Generate(ctx context.Context, req dto.GeneratePlanningRequest, generatedBy string) (*dto.GeneratePlanningResponse, error)
	GenerateForCompany(ctx context.Context, companyID string, week, year int, persist bool, generatedBy string) (*dto.GeneratePlanningResponse, error)
	Publish(ctx context.Context, scheduleID, employeeID string) error
	Export(ctx context.Context, query dto.PlanningExportQuery, title, footer string) ([]byte, string, error)
}

type jobDispatcher interface {
	Enqueue(job jobs.Job) error
}

// PlanningHandler exposes schedule generation endpoints.
type PlanningHandler struct {
	service     planningOrchestrator
	queue       jobDispatcher
	exportTitle string
	exportNote  string
}

// NewPlanningHandler constructs the handler. The queue is optional; without
// it async company generation is rejected.
func NewPlanningHandler(svc *service.PlanningService, queue *jobs.Queue, exportTitle, exportNote string) *PlanningHandler {
	h := &PlanningHandler{service: svc, exportTitle: exportTitle, exportNote: exportNote}
	if queue != nil {
		h.queue = queue
	}
	return h
}

// Generate godoc
// @Summary Generate weekly schedules for an explicit roster
// @Description Runs the generation engine on the employees in the payload. Weeks already cached for an employee are reused and flagged fromCache.
// @Tags Planning
// @Accept json
// @Produce json
// @Param payload body dto.GeneratePlanningRequest true "Generation payload"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /planning/generate [post]
func (h *PlanningHandler) Generate(c *gin.Context) {
	var req dto.GeneratePlanningRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid generation payload"))
		return
	}
	if len(req.Employees) > maxBatchEmployees {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "employees exceeds supported batch size"))
		return
	}

	result, err := h.service.Generate(c.Request.Context(), req, h.generatedBy(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result, nil)
}

// GenerateForCompany godoc
// @Summary Generate weekly schedules for a whole company
// @Description Loads the company's active roster, constraints and approved leaves, then runs the generation engine.
// @Tags Planning
// @Produce json
// @Param id path string true "Company ID"
// @Param week query int true "ISO week number"
// @Param year query int true "Year"
// @Param persist query bool false "Persist drafts"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /companies/{id}/planning/generate [post]
func (h *PlanningHandler) GenerateForCompany(c *gin.Context) {
	var query dto.CompanyPlanningQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid planning query"))
		return
	}

	if query.Async {
		h.enqueueCompanyGeneration(c, query)
		return
	}

	result, err := h.service.GenerateForCompany(c.Request.Context(), c.Param("id"), query.Week, query.Year, query.Persist, h.generatedBy(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result, nil)
}

// Publish godoc
// @Summary Publish a draft schedule
// @Description Flips a persisted draft to published and invalidates the employee's cached weeks.
// @Tags Planning
// @Accept json
// @Produce json
// @Param id path string true "Schedule ID"
// @Param payload body object true "Employee reference"
// @Success 204
// @Failure 409 {object} response.Envelope
// @Router /planning/schedules/{id}/publish [post]
func (h *PlanningHandler) Publish(c *gin.Context) {
	var payload struct {
		EmployeeID string `json:"employeeId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "employeeId required"))
		return
	}

	if err := h.service.Publish(c.Request.Context(), c.Param("id"), payload.EmployeeID); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// Export godoc
// @Summary Export one week of persisted schedules
// @Description Renders the persisted schedules of a week as CSV or PDF.
// @Tags Planning
// @Produce application/octet-stream
// @Param week query int true "ISO week number"
// @Param year query int true "Year"
// @Param format query string false "csv or pdf" default(csv)
// @Success 200 {file} binary
// @Failure 404 {object} response.Envelope
// @Router /planning/export [get]
func (h *PlanningHandler) Export(c *gin.Context) {
	var query dto.PlanningExportQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid export query"))
		return
	}

	payload, filename, err := h.service.Export(c.Request.Context(), query, h.exportTitle, h.exportNote)
	if err != nil {
		response.Error(c, err)
		return
	}

	contentType := "text/csv"
	if strings.HasSuffix(filename, ".pdf") {
		contentType = "application/pdf"
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, contentType, payload)
}

func (h *PlanningHandler) enqueueCompanyGeneration(c *gin.Context, query dto.CompanyPlanningQuery) {
	if h.queue == nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "async generation is not enabled"))
		return
	}
	jobID := uuid.NewString()
	err := h.queue.Enqueue(jobs.Job{
		ID:   jobID,
		Type: "company_generation",
		Payload: service.CompanyGenerationPayload{
			CompanyID:   c.Param("id"),
			Week:        query.Week,
			Year:        query.Year,
			GeneratedBy: h.generatedBy(c),
		},
	})
	if err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to enqueue generation"))
		return
	}
	response.JSON(c, http.StatusAccepted, gin.H{"jobId": jobID}, nil)
}

func (h *PlanningHandler) generatedBy(c *gin.Context) string {
	if claims := claimsFromContext(c); claims != nil {
		return claims.UserID
	}
	return ""
}
