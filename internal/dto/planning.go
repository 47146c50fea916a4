package dto

import "github.com/krismos64/SmartPlanning-sub005/internal/planning"

// EmployeePlanningInput describes one employee inside a generation request.
type EmployeePlanningInput struct {
	ID            string            `json:"id" validate:"required"`
	ContractHours float64           `json:"contractHours" validate:"required,gt=0,lte=80"`
	Exceptions    []ExceptionInput  `json:"exceptions" validate:"omitempty,dive"`
	Preferences   *PreferencesInput `json:"preferences"`
	RestDay       *string           `json:"restDay" validate:"omitempty,oneof=monday tuesday wednesday thursday friday saturday sunday"`
}

// ExceptionInput is a dated availability override.
type ExceptionInput struct {
	Date string `json:"date" validate:"required,datetime=2006-01-02"`
	Type string `json:"type" validate:"required,oneof=vacation sick unavailable training reduced"`
}

// PreferencesInput carries optional scheduling wishes.
type PreferencesInput struct {
	PreferredDays      []string `json:"preferredDays" validate:"omitempty,dive,oneof=monday tuesday wednesday thursday friday saturday sunday"`
	PreferredHours     []string `json:"preferredHours" validate:"omitempty,dive,len=11"`
	AllowSplitShifts   *bool    `json:"allowSplitShifts"`
	MaxConsecutiveDays int      `json:"maxConsecutiveDays" validate:"omitempty,min=1,max=7"`
}

// CompanyConstraintsInput mirrors the engine's company-wide rules.
type CompanyConstraintsInput struct {
	OpenDays            []string `json:"openDays" validate:"omitempty,dive,oneof=monday tuesday wednesday thursday friday saturday sunday"`
	OpenHours           []string `json:"openHours" validate:"omitempty,dive,len=11"`
	MinHoursPerDay      float64  `json:"minHoursPerDay" validate:"omitempty,gt=0"`
	MaxHoursPerDay      float64  `json:"maxHoursPerDay" validate:"omitempty,gt=0"`
	MandatoryLunchBreak bool     `json:"mandatoryLunchBreak"`
	LunchBreakMinutes   int      `json:"lunchBreakMinutes" validate:"omitempty,min=15,max=180"`
	MinStaffPerSlot     int      `json:"minStaffPerSlot" validate:"omitempty,min=0"`
}

// GeneratePlanningRequest asks for one week of schedules.
type GeneratePlanningRequest struct {
	Week          int                      `json:"week" validate:"required"`
	Year          int                      `json:"year" validate:"required,min=1"`
	Employees     []EmployeePlanningInput  `json:"employees" validate:"required,min=1,dive"`
	Constraints   *CompanyConstraintsInput `json:"constraints"`
	CandidateMode *bool                    `json:"candidateMode"`
	Persist       bool                     `json:"persist"`
}

// EmployeePlanningResult is the per-employee outcome in the response.
type EmployeePlanningResult struct {
	EmployeeID    string               `json:"employeeId"`
	Days          planning.DaySchedule `json:"days"`
	TotalHours    float64              `json:"totalHours"`
	Strategy      string               `json:"strategy"`
	Warnings      []string             `json:"warnings,omitempty"`
	Errors        []string             `json:"errors,omitempty"`
	Failed        bool                 `json:"failed,omitempty"`
	FailureReason string               `json:"failureReason,omitempty"`
	Fallback      bool                 `json:"fallback,omitempty"`
	FromCache     bool                 `json:"fromCache,omitempty"`
}

// GeneratePlanningResponse returns the batch outcome.
type GeneratePlanningResponse struct {
	Week       int                               `json:"week"`
	Year       int                               `json:"year"`
	Dates      []string                          `json:"dates"`
	Results    map[string]EmployeePlanningResult `json:"results"`
	Warnings   []string                          `json:"warnings,omitempty"`
	DurationMS int64                             `json:"durationMs"`
}

// CompanyPlanningQuery schedules a whole company roster for one week.
type CompanyPlanningQuery struct {
	Week    int  `form:"week" json:"week" validate:"required"`
	Year    int  `form:"year" json:"year" validate:"required,min=1"`
	Persist bool `form:"persist" json:"persist"`
	Async   bool `form:"async" json:"async"`
}

// PlanningExportQuery selects the persisted week to export.
type PlanningExportQuery struct {
	Week   int    `form:"week" json:"week" validate:"required"`
	Year   int    `form:"year" json:"year" validate:"required,min=1"`
	Format string `form:"format" json:"format" validate:"omitempty,oneof=csv pdf"`
}
