package planning

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func fullWeek() DaySchedule {
	days := NewDaySchedule()
	for _, wd := range Weekdays {
		days[wd] = []TimeSlot{{Start: "09:00", End: "17:00"}}
	}
	return days
}

func TestLimitConsecutiveDaysWipesSixthDay(t *testing.T) {
	days := fullWeek()

	limitConsecutiveDays(days, 5)

	assert.Empty(t, days[time.Saturday], "sixth consecutive day is wiped")
	assert.NotEmpty(t, days[time.Sunday], "the wipe resets the run")
	for _, wd := range Weekdays[:5] {
		assert.NotEmpty(t, days[wd])
	}
}

func TestLimitConsecutiveDaysRespectsExistingBreaks(t *testing.T) {
	days := fullWeek()
	days[time.Wednesday] = []TimeSlot{}

	limitConsecutiveDays(days, 5)

	assert.NotEmpty(t, days[time.Saturday])
	assert.NotEmpty(t, days[time.Sunday])
}

func TestLimitConsecutiveDaysZeroLimitUsesDefault(t *testing.T) {
	days := fullWeek()

	limitConsecutiveDays(days, 0)

	assert.Empty(t, days[time.Saturday])
	assert.NotEmpty(t, days[time.Sunday])
}

func TestMaxConsecutiveForPrefersEmployeeSetting(t *testing.T) {
	emp := EmployeeInput{Preferences: &Preferences{MaxConsecutiveDays: 3}}
	assert.Equal(t, 3, maxConsecutiveFor(emp))

	assert.Equal(t, DefaultMaxConsecutiveDays, maxConsecutiveFor(EmployeeInput{}))
}
