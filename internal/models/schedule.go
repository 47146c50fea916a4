package models

import (
	"encoding/json"
	"time"
)

// ScheduleStatus tracks a generated schedule through review.
type ScheduleStatus string

const (
	ScheduleDraft     ScheduleStatus = "draft"
	SchedulePublished ScheduleStatus = "published"
)

// WeeklySchedule is one employee's persisted schedule for a given ISO week.
// Days holds the JSON-encoded weekday-to-slots map produced by the engine.
type WeeklySchedule struct {
	ID          string          `db:"id" json:"id"`
	EmployeeID  string          `db:"employee_id" json:"employee_id"`
	Week        int             `db:"week" json:"week"`
	Year        int             `db:"year" json:"year"`
	Days        json.RawMessage `db:"days" json:"days"`
	TotalHours  float64         `db:"total_hours" json:"total_hours"`
	Strategy    string          `db:"strategy" json:"strategy"`
	Status      ScheduleStatus  `db:"status" json:"status"`
	GeneratedBy *string         `db:"generated_by" json:"generated_by,omitempty"`
	CreatedAt   time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time       `db:"updated_at" json:"updated_at"`
}

// ScheduleFilter describes query params for listing weekly schedules.
type ScheduleFilter struct {
	EmployeeID string
	Week       int
	Year       int
	Status     *ScheduleStatus
	Page       int
	PageSize   int
	SortBy     string
	SortOrder  string
}
