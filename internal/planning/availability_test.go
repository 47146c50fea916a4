package planning

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func weekdayPtr(d time.Weekday) *time.Weekday { return &d }

func TestAvailabilityRuleOrder(t *testing.T) {
	dates := WeekDates(10, 2025)
	c := &CompanyConstraints{
		OpenDays: []time.Weekday{time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday},
	}
	emp := EmployeeInput{
		ID:      "emp-1",
		RestDay: weekdayPtr(time.Wednesday),
		Exceptions: []Exception{
			{Date: dateKey(dates[0]), Type: ExceptionVacation},
			{Date: dateKey(dates[1]), Type: ExceptionTraining},
		},
	}

	open := availability(emp, dates, c)

	assert.False(t, open[0], "Monday blocked by vacation")
	assert.True(t, open[1], "training does not block Tuesday")
	assert.False(t, open[2], "Wednesday is the rest day")
	assert.True(t, open[3])
	assert.True(t, open[4])
	assert.False(t, open[5], "Saturday outside open days")
	assert.False(t, open[6], "Sunday outside open days")
}

func TestAvailabilityEmptyOpenDaysClosesEverything(t *testing.T) {
	dates := WeekDates(10, 2025)
	c := &CompanyConstraints{OpenDays: []time.Weekday{}}

	open := availability(EmployeeInput{ID: "emp-1"}, dates, c)

	for i := range open {
		assert.False(t, open[i])
	}
}

func TestAvailabilityNilConstraintsLeavesWeekOpen(t *testing.T) {
	dates := WeekDates(10, 2025)

	open := availability(EmployeeInput{ID: "emp-1"}, dates, nil)

	for i := range open {
		assert.True(t, open[i])
	}
}

func TestUsableDaysNarrowsToPreferredWithFallback(t *testing.T) {
	open := [7]bool{true, true, true, true, true, false, false}

	emp := EmployeeInput{Preferences: &Preferences{
		PreferredDays: []time.Weekday{time.Tuesday, time.Thursday},
	}}
	assert.Equal(t, []int{1, 3}, usableDays(emp, open))

	// Preferred day unavailable: fall back to the full availability list.
	emp.Preferences.PreferredDays = []time.Weekday{time.Saturday}
	assert.Equal(t, []int{0, 1, 2, 3, 4}, usableDays(emp, open))

	emp.Preferences = nil
	assert.Equal(t, []int{0, 1, 2, 3, 4}, usableDays(emp, open))
}
