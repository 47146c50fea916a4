package models

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// JSONDocument holds a free-form JSONB column payload that stays opaque at
// the storage layer. An empty document round-trips as SQL NULL.
type JSONDocument []byte

// Value returns the raw JSON for persistence, or NULL when empty.
func (d JSONDocument) Value() (driver.Value, error) {
	if len(d) == 0 {
		return nil, nil
	}
	return []byte(d), nil
}

// Scan reads JSONB payloads; NULL yields a nil document.
func (d *JSONDocument) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*d = nil
	case []byte:
		*d = append((*d)[:0], v...)
	case string:
		*d = JSONDocument(v)
	default:
		return fmt.Errorf("unsupported type %T for JSONDocument", value)
	}
	return nil
}

// MarshalJSON renders the document as-is, or JSON null when empty.
func (d JSONDocument) MarshalJSON() ([]byte, error) {
	if len(d) == 0 {
		return []byte("null"), nil
	}
	return d, nil
}

// UnmarshalJSON keeps the raw bytes without reshaping them.
func (d *JSONDocument) UnmarshalJSON(data []byte) error {
	*d = append((*d)[:0], data...)
	return nil
}

// Employee represents a staff member eligible for schedule generation.
// Preferences is a free-form JSON document matching the planning engine's
// preference shape; the column is nullable, so it is carried as a
// JSONDocument rather than a bare json.RawMessage.
type Employee struct {
	ID            string       `db:"id" json:"id"`
	CompanyID     string       `db:"company_id" json:"company_id"`
	TeamID        *string      `db:"team_id" json:"team_id,omitempty"`
	UserID        *string      `db:"user_id" json:"user_id,omitempty"`
	FullName      string       `db:"full_name" json:"full_name"`
	Email         string       `db:"email" json:"email"`
	ContractHours float64      `db:"contract_hours" json:"contract_hours"`
	RestDay       *string      `db:"rest_day" json:"rest_day,omitempty"`
	Preferences   JSONDocument `db:"preferences" json:"preferences,omitempty"`
	Active        bool         `db:"active" json:"active"`
	CreatedAt     time.Time    `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time    `db:"updated_at" json:"updated_at"`
}

// EmployeeFilter captures filtering options for listing employees.
type EmployeeFilter struct {
	CompanyID string
	TeamID    string
	Search    string
	Active    *bool
	Page      int
	PageSize  int
	SortBy    string
	SortOrder string
}
