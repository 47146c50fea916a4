package planning

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var allOpen = [7]bool{true, true, true, true, true, true, true}

func TestPreferencesStrategyFillsPreferredDaysFirst(t *testing.T) {
	emp := EmployeeInput{
		ID:            "emp-1",
		ContractHours: 16,
		Preferences: &Preferences{
			PreferredDays: []time.Weekday{time.Friday, time.Saturday},
		},
	}

	plan := preferencesStrategy{}.Allocate(emp, allOpen, nil)

	assert.Positive(t, plan[4], "Friday gets hours first")
	assert.Positive(t, plan[5], "Saturday gets hours first")
}

func TestConcentrationStrategyMinimizesWorkedDays(t *testing.T) {
	emp := EmployeeInput{ID: "emp-1", ContractHours: 20}

	plan := concentrationStrategy{}.Allocate(emp, allOpen, nil)

	assert.Len(t, plan, 3)
	assert.InDelta(t, 8.0, plan[0], 0.001)
	assert.InDelta(t, 8.0, plan[1], 0.001)
	assert.InDelta(t, 4.0, plan[2], 0.001)
}

func TestScoreCandidateEvenFullWeek(t *testing.T) {
	emp := EmployeeInput{ID: "emp-1", ContractHours: 35}
	days := buildWeek(distributionStrategy{}, emp, allOpen, nil)

	// 50 hours-fit + 0 preferred days + 0 preferred ranges + 20 variance bonus.
	assert.InDelta(t, 70.0, scoreCandidate(emp, days), 0.001)
}

func TestScoreCandidateRewardsPreferredDays(t *testing.T) {
	emp := EmployeeInput{
		ID:            "emp-1",
		ContractHours: 16,
		Preferences: &Preferences{
			PreferredDays: []time.Weekday{time.Monday, time.Tuesday},
		},
	}
	days := NewDaySchedule()
	days[time.Monday] = []TimeSlot{{Start: "09:00", End: "17:00"}}
	days[time.Tuesday] = []TimeSlot{{Start: "09:00", End: "17:00"}}

	// 50 fit + 20 preferred days + 0 ranges + 20 variance bonus.
	assert.InDelta(t, 90.0, scoreCandidate(emp, days), 0.001)
}

func TestScoreCandidatePenalizesGapsWhenSplitDisallowed(t *testing.T) {
	emp := EmployeeInput{
		ID:            "emp-1",
		ContractHours: 8,
		Preferences:   &Preferences{AllowSplitShifts: boolPtr(false)},
	}

	gapless := NewDaySchedule()
	gapless[time.Monday] = []TimeSlot{{Start: "09:00", End: "17:00"}}

	gapped := NewDaySchedule()
	gapped[time.Monday] = []TimeSlot{
		{Start: "09:00", End: "13:00"},
		{Start: "14:00", End: "18:00"},
	}

	assert.InDelta(t, scoreCandidate(emp, gapless)-5, scoreCandidate(emp, gapped), 0.001)
}

func TestBestCandidateStableTieKeepsDistribution(t *testing.T) {
	emp := EmployeeInput{ID: "emp-1", ContractHours: 35}

	days, name, score := bestCandidate(emp, allOpen, nil)

	assert.Equal(t, StrategyDistribution, name)
	assert.InDelta(t, 35.0, days.WorkedHours(), 0.001)
	assert.InDelta(t, 70.0, score, 0.001)
}

func TestCountGapsToleratesShortPauses(t *testing.T) {
	slots := []TimeSlot{
		{Start: "09:00", End: "12:00"},
		{Start: "12:10", End: "14:00"},
		{Start: "15:00", End: "17:00"},
	}

	assert.Equal(t, 1, countGaps(slots, splitGapToleranceMinutes))
}

func TestVariance(t *testing.T) {
	assert.InDelta(t, 0.0, variance([]float64{7, 7, 7}), 0.001)
	assert.InDelta(t, 4.0, variance([]float64{8, 8, 8, 8, 3}), 0.001)
	assert.InDelta(t, 0.0, variance(nil), 0.001)
}
