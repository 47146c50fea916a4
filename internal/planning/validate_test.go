package planning

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValidateScheduleWithinToleranceIsClean(t *testing.T) {
	emp := EmployeeInput{ID: "emp-1", ContractHours: 35}
	days := buildWeek(distributionStrategy{}, emp, allOpen, nil)

	report := validateSchedule(emp, days)

	assert.Empty(t, report.Warnings)
	assert.Empty(t, report.Errors)
}

func TestValidateScheduleHoursDeviationWarning(t *testing.T) {
	emp := EmployeeInput{ID: "emp-1", ContractHours: 40}
	days := NewDaySchedule()
	days[time.Monday] = []TimeSlot{{Start: "09:00", End: "17:00"}}

	report := validateSchedule(emp, days)

	assert.Len(t, report.Warnings, 1)
	assert.Contains(t, report.Warnings[0], "deviates")
}

func TestValidateScheduleInterDayRestWarning(t *testing.T) {
	emp := EmployeeInput{ID: "emp-1", ContractHours: 16}
	days := NewDaySchedule()
	days[time.Monday] = []TimeSlot{{Start: "14:00", End: "23:00"}}
	days[time.Tuesday] = []TimeSlot{{Start: "06:00", End: "13:00"}}

	report := validateSchedule(emp, days)

	found := false
	for _, w := range report.Warnings {
		if strings.Contains(w, "rest") {
			found = true
		}
	}
	assert.True(t, found, "expected an inter-day rest warning, got %v", report.Warnings)
}

func TestValidateScheduleSplitShiftPolicyError(t *testing.T) {
	emp := EmployeeInput{
		ID:            "emp-1",
		ContractHours: 8,
		Preferences:   &Preferences{AllowSplitShifts: boolPtr(false)},
	}
	days := NewDaySchedule()
	days[time.Monday] = []TimeSlot{
		{Start: "09:00", End: "12:00"},
		{Start: "13:00", End: "18:00"},
	}

	report := validateSchedule(emp, days)

	assert.Len(t, report.Errors, 1)
	assert.Contains(t, report.Errors[0], "split shifts are disallowed")
}

func TestInterDayRestRollsOverMidnight(t *testing.T) {
	today := []TimeSlot{{Start: "10:00", End: "18:00"}}
	tomorrow := []TimeSlot{{Start: "09:00", End: "17:00"}}

	rest, ok := interDayRest(today, tomorrow)

	assert.True(t, ok)
	assert.InDelta(t, 15.0, rest, 0.001)

	_, ok = interDayRest(today, nil)
	assert.False(t, ok)
}

func TestFallbackScheduleShape(t *testing.T) {
	emp := EmployeeInput{ID: "emp-1", ContractHours: 35}

	days := fallbackSchedule(emp, allOpen)

	worked := 0
	for _, wd := range Weekdays {
		if len(days[wd]) == 0 {
			continue
		}
		worked++
		assert.Len(t, days[wd], 1)
		assert.Equal(t, "09:00", days[wd][0].Start)
	}
	assert.Equal(t, 5, worked)
	assert.InDelta(t, 35.0, days.WorkedHours(), 0.001)
}

func TestFallbackScheduleCapsDailyHours(t *testing.T) {
	emp := EmployeeInput{ID: "emp-1", ContractHours: 60}

	days := fallbackSchedule(emp, allOpen)

	for _, wd := range Weekdays {
		assert.LessOrEqual(t, workedHours(days[wd]), 8.0)
	}
	assert.InDelta(t, 40.0, days.WorkedHours(), 0.001)
}

func TestFallbackScheduleClosedCompany(t *testing.T) {
	emp := EmployeeInput{ID: "emp-1", ContractHours: 35}

	days := fallbackSchedule(emp, [7]bool{})

	for _, wd := range Weekdays {
		assert.Empty(t, days[wd])
	}
}
