package handler

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/krismos64/SmartPlanning-sub005/internal/dto"
	internalmiddleware "github.com/krismos64/SmartPlanning-sub005/internal/middleware"
	"github.com/krismos64/SmartPlanning-sub005/internal/models"
)

type planningOrchestratorMock struct {
	captured    dto.GeneratePlanningRequest
	generatedBy string
	publishedID string
	employeeID  string
	exportQuery dto.PlanningExportQuery
}

func (m *planningOrchestratorMock) Generate(_ context.Context, req dto.GeneratePlanningRequest, generatedBy string) (*dto.GeneratePlanningResponse, error) {
	m.captured = req
	m.generatedBy = generatedBy
	return &dto.GeneratePlanningResponse{Week: req.Week, Year: req.Year}, nil
}

func (m *planningOrchestratorMock) GenerateForCompany(_ context.Context, _ string, week, year int, _ bool, generatedBy string) (*dto.GeneratePlanningResponse, error) {
	m.generatedBy = generatedBy
	return &dto.GeneratePlanningResponse{Week: week, Year: year}, nil
}

func (m *planningOrchestratorMock) Publish(_ context.Context, scheduleID, employeeID string) error {
	m.publishedID = scheduleID
	m.employeeID = employeeID
	return nil
}

func (m *planningOrchestratorMock) Export(_ context.Context, query dto.PlanningExportQuery, _, _ string) ([]byte, string, error) {
	m.exportQuery = query
	return []byte("Employee,Monday\n"), "planning-2025-W10.csv", nil
}

func validPlanningPayload() []byte {
	return []byte(`{"week":10,"year":2025,"employees":[{"id":"emp-1","contractHours":35}],"persist":true}`)
}

func TestPlanningGenerateSuccess(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockSvc := &planningOrchestratorMock{}
	handler := &PlanningHandler{service: mockSvc}

	req, _ := http.NewRequest(http.MethodPost, "/planning/generate", bytes.NewReader(validPlanningPayload()))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set(internalmiddleware.ContextUserKey, &models.JWTClaims{UserID: "user-1", Role: models.RoleManager})
	c.Request = req

	handler.Generate(c)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, 10, mockSvc.captured.Week)
	require.Equal(t, 2025, mockSvc.captured.Year)
	require.True(t, mockSvc.captured.Persist)
	require.Equal(t, "user-1", mockSvc.generatedBy)
}

func TestPlanningGenerateMalformedPayload(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := &PlanningHandler{service: &planningOrchestratorMock{}}

	req, _ := http.NewRequest(http.MethodPost, "/planning/generate", bytes.NewReader([]byte(`{"week":`)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Generate(c)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPlanningGenerateRequiresRole(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := &PlanningHandler{service: &planningOrchestratorMock{}}
	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set(internalmiddleware.ContextUserKey, &models.JWTClaims{UserID: "emp-1", Role: models.RoleEmployee})
		c.Next()
	})
	router.POST("/planning/generate", internalmiddleware.RequireRoles(models.RoleAdmin, models.RoleDirector, models.RoleManager), handler.Generate)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/planning/generate", bytes.NewReader(validPlanningPayload()))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusForbidden, w.Code)
}

func TestPlanningPublish(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockSvc := &planningOrchestratorMock{}
	handler := &PlanningHandler{service: mockSvc}
	router := gin.New()
	router.POST("/planning/schedules/:id/publish", handler.Publish)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/planning/schedules/sched-1/publish", bytes.NewReader([]byte(`{"employeeId":"emp-1"}`)))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusNoContent, w.Code)
	require.Equal(t, "sched-1", mockSvc.publishedID)
	require.Equal(t, "emp-1", mockSvc.employeeID)
}

func TestPlanningExport(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockSvc := &planningOrchestratorMock{}
	handler := &PlanningHandler{service: mockSvc}
	router := gin.New()
	router.GET("/planning/export", handler.Export)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/planning/export?week=10&year=2025&format=csv", nil)

	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, 10, mockSvc.exportQuery.Week)
	require.Equal(t, "text/csv", w.Header().Get("Content-Type"))
	require.Contains(t, w.Header().Get("Content-Disposition"), "planning-2025-W10.csv")
}
