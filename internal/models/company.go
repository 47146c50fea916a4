package models

import (
	"time"

	"github.com/lib/pq"
)

// Company represents a client organisation and its operating rules. Open
// days are stored as lowercase weekday names; open hours as "HH:MM-HH:MM"
// ranges.
type Company struct {
	ID                  string         `db:"id" json:"id"`
	Name                string         `db:"name" json:"name"`
	OpenDays            pq.StringArray `db:"open_days" json:"open_days"`
	OpenHours           pq.StringArray `db:"open_hours" json:"open_hours"`
	MinHoursPerDay      float64        `db:"min_hours_per_day" json:"min_hours_per_day"`
	MaxHoursPerDay      float64        `db:"max_hours_per_day" json:"max_hours_per_day"`
	MandatoryLunchBreak bool           `db:"mandatory_lunch_break" json:"mandatory_lunch_break"`
	LunchBreakMinutes   int            `db:"lunch_break_minutes" json:"lunch_break_minutes"`
	MinStaffPerSlot     int            `db:"min_staff_per_slot" json:"min_staff_per_slot"`
	CreatedAt           time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt           time.Time      `db:"updated_at" json:"updated_at"`
}

// Team groups employees under one manager inside a company.
type Team struct {
	ID        string    `db:"id" json:"id"`
	CompanyID string    `db:"company_id" json:"company_id"`
	Name      string    `db:"name" json:"name"`
	ManagerID *string   `db:"manager_id" json:"manager_id,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}
