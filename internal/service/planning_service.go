package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/krismos64/SmartPlanning-sub005/internal/dto"
	"github.com/krismos64/SmartPlanning-sub005/internal/models"
	"github.com/krismos64/SmartPlanning-sub005/internal/planning"
	appErrors "github.com/krismos64/SmartPlanning-sub005/pkg/errors"
	"github.com/krismos64/SmartPlanning-sub005/pkg/export"
)

type planningScheduleRepository interface {
	Upsert(ctx context.Context, schedule *models.WeeklySchedule) error
	FindByWeek(ctx context.Context, week, year int) ([]models.WeeklySchedule, error)
	Publish(ctx context.Context, id string) error
}

type planningEmployeeRepository interface {
	FindActiveByCompany(ctx context.Context, companyID string) ([]models.Employee, error)
}

type planningLeaveRepository interface {
	FindApprovedInRange(ctx context.Context, employeeIDs []string, from, to time.Time) ([]models.Leave, error)
}

type planningCompanyRepository interface {
	FindByID(ctx context.Context, id string) (*models.Company, error)
}

type planningCache interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	DeleteByPattern(ctx context.Context, pattern string) error
}

type cacheMetrics interface {
	RecordCacheLookup(hit bool)
}

// PlanningServiceConfig tunes service behaviour.
type PlanningServiceConfig struct {
	CandidateMode bool
	CacheTTL      time.Duration
}

// PlanningService orchestrates schedule generation: cache consultation, the
// engine invocation, draft persistence and exports.
type PlanningService struct {
	engine    *planning.Engine
	schedules planningScheduleRepository
	employees planningEmployeeRepository
	leaves    planningLeaveRepository
	companies planningCompanyRepository
	cache     planningCache
	metrics   cacheMetrics
	csv       *export.CSVExporter
	pdf       *export.PDFExporter
	validator *validator.Validate
	logger    *zap.Logger
	config    PlanningServiceConfig
}

// NewPlanningService constructs a PlanningService.
func NewPlanningService(
	engine *planning.Engine,
	schedules planningScheduleRepository,
	employees planningEmployeeRepository,
	leaves planningLeaveRepository,
	companies planningCompanyRepository,
	cache planningCache,
	metrics cacheMetrics,
	validate *validator.Validate,
	logger *zap.Logger,
	config PlanningServiceConfig,
) *PlanningService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PlanningService{
		engine:    engine,
		schedules: schedules,
		employees: employees,
		leaves:    leaves,
		companies: companies,
		cache:     cache,
		metrics:   metrics,
		csv:       export.NewCSVExporter(),
		pdf:       export.NewPDFExporter(),
		validator: validate,
		logger:    logger,
		config:    config,
	}
}

var weekdayNames = map[string]time.Weekday{
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sunday":    time.Sunday,
}

func parseWeekday(name string) (time.Weekday, bool) {
	wd, ok := weekdayNames[strings.ToLower(strings.TrimSpace(name))]
	return wd, ok
}

// Generate validates the request, consults the cache per employee, runs the
// engine for the remainder and optionally persists drafts.
func (s *PlanningService) Generate(ctx context.Context, req dto.GeneratePlanningRequest, generatedBy string) (*dto.GeneratePlanningResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid planning request")
	}

	engineReq, err := s.toEngineRequest(req)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, err.Error())
	}

	response := &dto.GeneratePlanningResponse{
		Week:    req.Week,
		Year:    req.Year,
		Results: make(map[string]dto.EmployeePlanningResult, len(req.Employees)),
	}

	// Cache consultation happens per employee: a week already generated for
	// one employee is reused verbatim, the rest go through the engine.
	var pending []planning.EmployeeInput
	for _, emp := range engineReq.Employees {
		var cached dto.EmployeePlanningResult
		key := planningCacheKey(emp.ID, req.Year, req.Week)
		if s.cache != nil && s.cache.Get(ctx, key, &cached) == nil {
			if s.metrics != nil {
				s.metrics.RecordCacheLookup(true)
			}
			cached.FromCache = true
			response.Results[emp.ID] = cached
			continue
		}
		if s.metrics != nil {
			s.metrics.RecordCacheLookup(false)
		}
		pending = append(pending, emp)
	}

	start := time.Now()
	if len(pending) > 0 || len(response.Results) == 0 {
		engineReq.Employees = pending
		batch, err := s.engine.Generate(engineReq)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrGeneration.Code, appErrors.ErrGeneration.Status, "schedule generation failed")
		}
		response.Warnings = batch.Warnings
		for _, d := range batch.Dates {
			response.Dates = append(response.Dates, d.Format("2006-01-02"))
		}

		for id, res := range batch.Results {
			out := toEmployeeResult(res)
			response.Results[id] = out

			if s.cache != nil && !res.Failed {
				key := planningCacheKey(id, req.Year, req.Week)
				if err := s.cache.Set(ctx, key, out, s.config.CacheTTL); err != nil {
					s.logger.Warn("failed to cache schedule", zap.String("employee_id", id), zap.Error(err))
				}
			}
			if req.Persist {
				if err := s.persistDraft(ctx, req.Week, req.Year, generatedBy, res); err != nil {
					s.logger.Error("failed to persist schedule draft", zap.String("employee_id", id), zap.Error(err))
					response.Warnings = append(response.Warnings, fmt.Sprintf("draft for employee %s was not persisted", id))
				}
			}
		}
	}
	if len(response.Dates) == 0 {
		for _, d := range planning.WeekDates(req.Week, req.Year) {
			response.Dates = append(response.Dates, d.Format("2006-01-02"))
		}
	}

	response.DurationMS = time.Since(start).Milliseconds()
	return response, nil
}

// GenerateForCompany assembles the roster, constraints and approved leaves
// for a whole company and runs the generation pipeline on them.
func (s *PlanningService) GenerateForCompany(ctx context.Context, companyID string, week, year int, persist bool, generatedBy string) (*dto.GeneratePlanningResponse, error) {
	company, err := s.companies.FindByID(ctx, companyID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrNotFound.Code, appErrors.ErrNotFound.Status, "company not found")
	}

	employees, err := s.employees.FindActiveByCompany(ctx, companyID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load employees")
	}
	if len(employees) == 0 {
		return nil, appErrors.Clone(appErrors.ErrValidation, "company has no active employees")
	}

	dates := planning.WeekDates(week, year)
	ids := make([]string, 0, len(employees))
	for _, emp := range employees {
		ids = append(ids, emp.ID)
	}
	leaves, err := s.leaves.FindApprovedInRange(ctx, ids, dates[0], dates[6])
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load leaves")
	}

	req := dto.GeneratePlanningRequest{
		Week:        week,
		Year:        year,
		Constraints: companyConstraintsInput(company),
		Persist:     persist,
	}
	exceptionsByEmployee := leavesToExceptions(leaves, dates)
	for _, emp := range employees {
		input := dto.EmployeePlanningInput{
			ID:            emp.ID,
			ContractHours: emp.ContractHours,
			RestDay:       emp.RestDay,
			Exceptions:    exceptionsByEmployee[emp.ID],
		}
		if len(emp.Preferences) > 0 {
			var prefs dto.PreferencesInput
			if err := json.Unmarshal(emp.Preferences, &prefs); err != nil {
				s.logger.Warn("ignoring malformed employee preferences", zap.String("employee_id", emp.ID), zap.Error(err))
			} else {
				input.Preferences = &prefs
			}
		}
		req.Employees = append(req.Employees, input)
	}

	return s.Generate(ctx, req, generatedBy)
}

// Publish flips a persisted draft to published and drops cached copies of
// the affected employee's weeks.
func (s *PlanningService) Publish(ctx context.Context, scheduleID, employeeID string) error {
	if err := s.schedules.Publish(ctx, scheduleID); err != nil {
		return appErrors.Wrap(err, appErrors.ErrConflict.Code, appErrors.ErrConflict.Status, "schedule is not publishable")
	}
	if s.cache != nil && employeeID != "" {
		if err := s.cache.DeleteByPattern(ctx, fmt.Sprintf("planning:%s:*", employeeID)); err != nil {
			s.logger.Warn("failed to invalidate schedule cache", zap.String("employee_id", employeeID), zap.Error(err))
		}
	}
	return nil
}

// Export renders the persisted schedules of one week as CSV or PDF.
func (s *PlanningService) Export(ctx context.Context, query dto.PlanningExportQuery, title, footer string) ([]byte, string, error) {
	if err := s.validator.Struct(query); err != nil {
		return nil, "", appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid export query")
	}

	schedules, err := s.schedules.FindByWeek(ctx, query.Week, query.Year)
	if err != nil {
		return nil, "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load schedules")
	}
	if len(schedules) == 0 {
		return nil, "", appErrors.Clone(appErrors.ErrNotFound, "no schedules persisted for that week")
	}

	dataset := buildScheduleDataset(schedules)
	switch query.Format {
	case "pdf":
		payload, err := s.pdf.Render(dataset, title, footer)
		if err != nil {
			return nil, "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render pdf")
		}
		return payload, fmt.Sprintf("planning-%d-W%02d.pdf", query.Year, query.Week), nil
	default:
		payload, err := s.csv.Render(dataset)
		if err != nil {
			return nil, "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render csv")
		}
		return payload, fmt.Sprintf("planning-%d-W%02d.csv", query.Year, query.Week), nil
	}
}

func planningCacheKey(employeeID string, year, week int) string {
	return fmt.Sprintf("planning:%s:%d:%d", employeeID, year, week)
}

func (s *PlanningService) toEngineRequest(req dto.GeneratePlanningRequest) (planning.Request, error) {
	out := planning.Request{
		Week:          req.Week,
		Year:          req.Year,
		CandidateMode: s.config.CandidateMode,
	}
	if req.CandidateMode != nil {
		out.CandidateMode = *req.CandidateMode
	}

	if req.Constraints != nil {
		c := planning.CompanyConstraints{
			OpenHours:           req.Constraints.OpenHours,
			MinHoursPerDay:      req.Constraints.MinHoursPerDay,
			MaxHoursPerDay:      req.Constraints.MaxHoursPerDay,
			MandatoryLunchBreak: req.Constraints.MandatoryLunchBreak,
			LunchBreakMinutes:   req.Constraints.LunchBreakMinutes,
			MinStaffPerSlot:     req.Constraints.MinStaffPerSlot,
		}
		if req.Constraints.OpenDays != nil {
			c.OpenDays = make([]time.Weekday, 0, len(req.Constraints.OpenDays))
			for _, name := range req.Constraints.OpenDays {
				wd, ok := parseWeekday(name)
				if !ok {
					return planning.Request{}, fmt.Errorf("unknown open day %q", name)
				}
				c.OpenDays = append(c.OpenDays, wd)
			}
		}
		out.Constraints = &c
	}

	for _, emp := range req.Employees {
		input := planning.EmployeeInput{
			ID:            emp.ID,
			ContractHours: emp.ContractHours,
		}
		for _, ex := range emp.Exceptions {
			input.Exceptions = append(input.Exceptions, planning.Exception{
				Date: ex.Date,
				Type: planning.ExceptionType(ex.Type),
			})
		}
		if emp.RestDay != nil {
			wd, ok := parseWeekday(*emp.RestDay)
			if !ok {
				return planning.Request{}, fmt.Errorf("unknown rest day %q for employee %s", *emp.RestDay, emp.ID)
			}
			input.RestDay = &wd
		}
		if emp.Preferences != nil {
			prefs := planning.Preferences{
				PreferredHours:     emp.Preferences.PreferredHours,
				AllowSplitShifts:   emp.Preferences.AllowSplitShifts,
				MaxConsecutiveDays: emp.Preferences.MaxConsecutiveDays,
			}
			for _, name := range emp.Preferences.PreferredDays {
				wd, ok := parseWeekday(name)
				if !ok {
					return planning.Request{}, fmt.Errorf("unknown preferred day %q for employee %s", name, emp.ID)
				}
				prefs.PreferredDays = append(prefs.PreferredDays, wd)
			}
			input.Preferences = &prefs
		}
		out.Employees = append(out.Employees, input)
	}
	return out, nil
}

func toEmployeeResult(res *planning.EmployeeResult) dto.EmployeePlanningResult {
	return dto.EmployeePlanningResult{
		EmployeeID:    res.EmployeeID,
		Days:          res.Days,
		TotalHours:    res.TotalHours,
		Strategy:      string(res.Strategy),
		Warnings:      res.Warnings,
		Errors:        res.Errors,
		Failed:        res.Failed,
		FailureReason: res.FailureReason,
		Fallback:      res.Fallback,
	}
}

func (s *PlanningService) persistDraft(ctx context.Context, week, year int, generatedBy string, res *planning.EmployeeResult) error {
	days, err := json.Marshal(res.Days)
	if err != nil {
		return fmt.Errorf("marshal schedule days: %w", err)
	}
	record := &models.WeeklySchedule{
		EmployeeID: res.EmployeeID,
		Week:       week,
		Year:       year,
		Days:       days,
		TotalHours: res.TotalHours,
		Strategy:   string(res.Strategy),
		Status:     models.ScheduleDraft,
	}
	if generatedBy != "" {
		record.GeneratedBy = &generatedBy
	}
	return s.schedules.Upsert(ctx, record)
}

func companyConstraintsInput(company *models.Company) *dto.CompanyConstraintsInput {
	return &dto.CompanyConstraintsInput{
		OpenDays:            company.OpenDays,
		OpenHours:           company.OpenHours,
		MinHoursPerDay:      company.MinHoursPerDay,
		MaxHoursPerDay:      company.MaxHoursPerDay,
		MandatoryLunchBreak: company.MandatoryLunchBreak,
		LunchBreakMinutes:   company.LunchBreakMinutes,
		MinStaffPerSlot:     company.MinStaffPerSlot,
	}
}

// leavesToExceptions expands approved leaves into per-day dated exceptions
// clipped to the target week.
func leavesToExceptions(leaves []models.Leave, dates [7]time.Time) map[string][]dto.ExceptionInput {
	out := make(map[string][]dto.ExceptionInput)
	for _, leave := range leaves {
		for _, d := range dates {
			day := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
			if day.Before(truncateDay(leave.StartDate)) || day.After(truncateDay(leave.EndDate)) {
				continue
			}
			out[leave.EmployeeID] = append(out[leave.EmployeeID], dto.ExceptionInput{
				Date: day.Format("2006-01-02"),
				Type: string(leave.Type),
			})
		}
	}
	return out
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func buildScheduleDataset(schedules []models.WeeklySchedule) export.Dataset {
	headers := []string{"Employee", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday", "Total Hours"}
	dataset := export.Dataset{Headers: headers}

	for _, schedule := range schedules {
		var days planning.DaySchedule
		if err := json.Unmarshal(schedule.Days, &days); err != nil {
			days = nil
		}
		row := map[string]string{
			"Employee":    schedule.EmployeeID,
			"Total Hours": fmt.Sprintf("%.1f", schedule.TotalHours),
		}
		for i, wd := range planning.Weekdays {
			row[headers[i+1]] = formatSlots(days[wd])
		}
		dataset.Rows = append(dataset.Rows, row)
	}
	return dataset
}

func formatSlots(slots []planning.TimeSlot) string {
	if len(slots) == 0 {
		return "-"
	}
	parts := make([]string, 0, len(slots))
	for _, slot := range slots {
		if slot.IsLunchBreak {
			continue
		}
		parts = append(parts, slot.Start+"-"+slot.End)
	}
	if len(parts) == 0 {
		return "-"
	}
	return strings.Join(parts, " / ")
}
