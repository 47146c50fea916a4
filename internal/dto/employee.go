package dto

import "encoding/json"

// CreateEmployeeRequest registers a new staff member.
type CreateEmployeeRequest struct {
	CompanyID     string          `json:"companyId" validate:"required,uuid4"`
	TeamID        *string         `json:"teamId" validate:"omitempty,uuid4"`
	FullName      string          `json:"fullName" validate:"required,min=2,max=120"`
	Email         string          `json:"email" validate:"required,email"`
	ContractHours float64         `json:"contractHours" validate:"required,gt=0,lte=80"`
	RestDay       *string         `json:"restDay" validate:"omitempty,oneof=monday tuesday wednesday thursday friday saturday sunday"`
	Preferences   json.RawMessage `json:"preferences"`
}

// UpdateEmployeeRequest patches mutable employee fields.
type UpdateEmployeeRequest struct {
	TeamID        *string         `json:"teamId" validate:"omitempty,uuid4"`
	FullName      *string         `json:"fullName" validate:"omitempty,min=2,max=120"`
	ContractHours *float64        `json:"contractHours" validate:"omitempty,gt=0,lte=80"`
	RestDay       *string         `json:"restDay" validate:"omitempty,oneof=monday tuesday wednesday thursday friday saturday sunday"`
	Preferences   json.RawMessage `json:"preferences"`
	Active        *bool           `json:"active"`
}

// ListEmployeesQuery filters employee listings.
type ListEmployeesQuery struct {
	CompanyID string `form:"companyId" json:"companyId"`
	TeamID    string `form:"teamId" json:"teamId"`
	Search    string `form:"search" json:"search"`
	Active    *bool  `form:"active" json:"active"`
	Page      int    `form:"page" json:"page"`
	PageSize  int    `form:"pageSize" json:"pageSize"`
}
