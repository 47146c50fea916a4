package dto

// CreateLeaveRequest files a dated absence request.
type CreateLeaveRequest struct {
	EmployeeID string  `json:"employeeId" validate:"required,uuid4"`
	Type       string  `json:"type" validate:"required,oneof=vacation sick unavailable training reduced"`
	StartDate  string  `json:"startDate" validate:"required,datetime=2006-01-02"`
	EndDate    string  `json:"endDate" validate:"required,datetime=2006-01-02"`
	Reason     *string `json:"reason" validate:"omitempty,max=500"`
}

// DecideLeaveRequest approves or rejects a pending leave.
type DecideLeaveRequest struct {
	Status string `json:"status" validate:"required,oneof=approved rejected"`
}

// ListLeavesQuery filters leave listings.
type ListLeavesQuery struct {
	EmployeeID string `form:"employeeId" json:"employeeId"`
	Status     string `form:"status" json:"status" validate:"omitempty,oneof=pending approved rejected"`
	From       string `form:"from" json:"from" validate:"omitempty,datetime=2006-01-02"`
	To         string `form:"to" json:"to" validate:"omitempty,datetime=2006-01-02"`
	Page       int    `form:"page" json:"page"`
	PageSize   int    `form:"pageSize" json:"pageSize"`
}
