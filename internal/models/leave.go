package models

import "time"

// LeaveType mirrors the planning engine's exception taxonomy.
type LeaveType string

const (
	LeaveVacation    LeaveType = "vacation"
	LeaveSick        LeaveType = "sick"
	LeaveUnavailable LeaveType = "unavailable"
	LeaveTraining    LeaveType = "training"
	LeaveReduced     LeaveType = "reduced"
)

// LeaveStatus tracks the approval workflow.
type LeaveStatus string

const (
	LeavePending  LeaveStatus = "pending"
	LeaveApproved LeaveStatus = "approved"
	LeaveRejected LeaveStatus = "rejected"
)

// Leave is a dated absence request for one employee. Only approved leaves
// feed the generation pipeline as exceptions.
type Leave struct {
	ID         string      `db:"id" json:"id"`
	EmployeeID string      `db:"employee_id" json:"employee_id"`
	Type       LeaveType   `db:"type" json:"type"`
	Status     LeaveStatus `db:"status" json:"status"`
	StartDate  time.Time   `db:"start_date" json:"start_date"`
	EndDate    time.Time   `db:"end_date" json:"end_date"`
	Reason     *string     `db:"reason" json:"reason,omitempty"`
	CreatedAt  time.Time   `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time   `db:"updated_at" json:"updated_at"`
}

// LeaveFilter captures filtering options for listing leaves.
type LeaveFilter struct {
	EmployeeID string
	Status     *LeaveStatus
	From       *time.Time
	To         *time.Time
	Page       int
	PageSize   int
	SortBy     string
	SortOrder  string
}
