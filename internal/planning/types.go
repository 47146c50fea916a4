// Package planning implements the weekly schedule generation engine: a pure,
// synchronous computation that turns a roster of employees with contractual
// hours, absence exceptions and preferences into conflict-free daily time
// slots for a target week. The package owns no persistent state and performs
// no I/O; caching and storage are the caller's concern.
package planning

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// ExceptionType classifies a dated override of normal availability.
type ExceptionType string

const (
	ExceptionVacation    ExceptionType = "vacation"
	ExceptionSick        ExceptionType = "sick"
	ExceptionUnavailable ExceptionType = "unavailable"
	ExceptionTraining    ExceptionType = "training"
	ExceptionReduced     ExceptionType = "reduced"
)

// Blocking reports whether the exception forbids scheduling on its date.
// Training and reduced exceptions are recorded but do not block a day.
func (t ExceptionType) Blocking() bool {
	switch t {
	case ExceptionVacation, ExceptionSick, ExceptionUnavailable:
		return true
	default:
		return false
	}
}

// Exception is a dated availability override, date in YYYY-MM-DD form.
type Exception struct {
	Date string        `json:"date"`
	Type ExceptionType `json:"type"`
}

// Preferences carries an employee's scheduling wishes. All fields optional.
type Preferences struct {
	PreferredDays      []time.Weekday `json:"preferredDays,omitempty"`
	PreferredHours     []string       `json:"preferredHours,omitempty"` // "HH:MM-HH:MM"
	AllowSplitShifts   *bool          `json:"allowSplitShifts,omitempty"`
	MaxConsecutiveDays int            `json:"maxConsecutiveDays,omitempty"`
}

// SplitAllowed reports the split-shift policy; unset means allowed.
func (p *Preferences) SplitAllowed() bool {
	if p == nil || p.AllowSplitShifts == nil {
		return true
	}
	return *p.AllowSplitShifts
}

// EmployeeInput is one employee's contribution to a generation request.
type EmployeeInput struct {
	ID            string        `json:"id"`
	ContractHours float64       `json:"contractHours"`
	Exceptions    []Exception   `json:"exceptions,omitempty"`
	Preferences   *Preferences  `json:"preferences,omitempty"`
	RestDay       *time.Weekday `json:"restDay,omitempty"`
}

// CompanyConstraints captures company-wide operating rules. A nil OpenDays
// slice leaves every weekday open; a non-nil empty slice closes the company
// entirely. MinStaffPerSlot is informational only and never enforced here.
type CompanyConstraints struct {
	OpenDays            []time.Weekday `json:"openDays,omitempty"`
	OpenHours           []string       `json:"openHours,omitempty"` // "HH:MM-HH:MM"
	MinHoursPerDay      float64        `json:"minHoursPerDay,omitempty"`
	MaxHoursPerDay      float64        `json:"maxHoursPerDay,omitempty"`
	MandatoryLunchBreak bool           `json:"mandatoryLunchBreak,omitempty"`
	LunchBreakMinutes   int            `json:"lunchBreakMinutes,omitempty"`
	MinStaffPerSlot     int            `json:"minStaffPerSlot,omitempty"`
}

// Defaults applied when a constraint field is unset.
const (
	DefaultMinHoursPerDay     = 2.0
	DefaultMaxHoursPerDay     = 8.0
	DefaultLunchBreakMinutes  = 60
	DefaultMaxConsecutiveDays = 5
	DefaultOpenWindow         = "09:00-17:00"

	// lunchThresholdHours is the worked-hours mark past which a mandatory
	// lunch break is inserted into the day.
	lunchThresholdHours = 6.0
)

func (c *CompanyConstraints) minHours() float64 {
	if c == nil || c.MinHoursPerDay <= 0 {
		return DefaultMinHoursPerDay
	}
	return c.MinHoursPerDay
}

func (c *CompanyConstraints) maxHours() float64 {
	if c == nil || c.MaxHoursPerDay <= 0 {
		return DefaultMaxHoursPerDay
	}
	return c.MaxHoursPerDay
}

func (c *CompanyConstraints) lunchMinutes() int {
	if c == nil || c.LunchBreakMinutes <= 0 {
		return DefaultLunchBreakMinutes
	}
	return c.LunchBreakMinutes
}

// openWindow returns the day's scheduling window in minutes since midnight.
// The first configured open-hour range wins; 09:00-17:00 otherwise.
func (c *CompanyConstraints) openWindow() (start, end int) {
	if c != nil {
		for _, r := range c.OpenHours {
			if s, e, ok := parseRange(r); ok {
				return s, e
			}
		}
	}
	s, e, _ := parseRange(DefaultOpenWindow)
	return s, e
}

// TimeSlot is one contiguous interval within a day. Start and End use the
// 24-hour "HH:MM" form and Start < End always holds for emitted slots.
// Lunch slots contribute nothing to worked-hours totals.
type TimeSlot struct {
	Start        string `json:"start"`
	End          string `json:"end"`
	IsLunchBreak bool   `json:"isLunchBreak,omitempty"`
}

// Hours returns the slot's span in hours, lunch or not.
func (s TimeSlot) Hours() float64 {
	start, ok1 := parseClock(s.Start)
	end, ok2 := parseClock(s.End)
	if !ok1 || !ok2 || end <= start {
		return 0
	}
	return float64(end-start) / 60.0
}

// DaySchedule maps every weekday to its ordered slot list. A schedule always
// carries all 7 weekday keys; a rest day or blocked day holds an empty list.
type DaySchedule map[time.Weekday][]TimeSlot

// NewDaySchedule returns a schedule with all 7 weekdays keyed and empty.
func NewDaySchedule() DaySchedule {
	d := make(DaySchedule, 7)
	for _, wd := range Weekdays {
		d[wd] = []TimeSlot{}
	}
	return d
}

// WorkedHours sums non-lunch slot hours across the week.
func (d DaySchedule) WorkedHours() float64 {
	var total float64
	for _, slots := range d {
		total += workedHours(slots)
	}
	return total
}

var weekdayByName = map[string]time.Weekday{
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sunday":    time.Sunday,
}

// MarshalJSON encodes weekday keys as lowercase English day names, the form
// clients and the storage layer exchange schedules in.
func (d DaySchedule) MarshalJSON() ([]byte, error) {
	out := make(map[string][]TimeSlot, len(d))
	for wd, slots := range d {
		out[strings.ToLower(wd.String())] = slots
	}
	return json.Marshal(out)
}

// UnmarshalJSON accepts lowercase (or mixed-case) English day names as keys.
func (d *DaySchedule) UnmarshalJSON(data []byte) error {
	var raw map[string][]TimeSlot
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	out := make(DaySchedule, len(raw))
	for name, slots := range raw {
		wd, ok := weekdayByName[strings.ToLower(name)]
		if !ok {
			return fmt.Errorf("unknown weekday %q", name)
		}
		out[wd] = slots
	}
	*d = out
	return nil
}

func workedHours(slots []TimeSlot) float64 {
	var total float64
	for _, s := range slots {
		if !s.IsLunchBreak {
			total += s.Hours()
		}
	}
	return total
}

// Request asks the engine for one week of schedules for a set of employees.
type Request struct {
	Week          int                 `json:"week"`
	Year          int                 `json:"year"`
	Employees     []EmployeeInput     `json:"employees"`
	Constraints   *CompanyConstraints `json:"constraints,omitempty"`
	CandidateMode bool                `json:"candidateMode,omitempty"`
}

// EmployeeResult is the per-employee outcome: either a generated schedule or
// a fallback one, with advisory warnings either way. Partial failure is a
// value, not a thrown error, so batch semantics stay explicit.
type EmployeeResult struct {
	EmployeeID    string       `json:"employeeId"`
	Days          DaySchedule  `json:"days"`
	TotalHours    float64      `json:"totalHours"`
	Strategy      StrategyName `json:"strategy"`
	Warnings      []string     `json:"warnings,omitempty"`
	Errors        []string     `json:"errors,omitempty"`
	Failed        bool         `json:"failed,omitempty"`
	FailureReason string       `json:"failureReason,omitempty"`
	Fallback      bool         `json:"fallback,omitempty"`
}

// BatchResult aggregates per-employee results for one generation call.
type BatchResult struct {
	Week     int                        `json:"week"`
	Year     int                        `json:"year"`
	Dates    [7]time.Time               `json:"dates"`
	Results  map[string]*EmployeeResult `json:"results"`
	Warnings []string                   `json:"warnings,omitempty"`
	Duration time.Duration              `json:"-"`
}
