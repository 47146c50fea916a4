package planning

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func planTotal(plan map[int]float64) float64 {
	var total float64
	for _, h := range plan {
		total += h
	}
	return total
}

func TestDistributeHoursEvenShare(t *testing.T) {
	plan := distributeHours(35, []int{0, 1, 2, 3, 4}, 2, 8)

	assert.Len(t, plan, 5)
	for day, hours := range plan {
		assert.InDelta(t, 7.0, hours, 0.001, "day %d", day)
	}
	assert.InDelta(t, 35.0, planTotal(plan), 0.001)
}

func TestDistributeHoursTopUpRescuesTinyShares(t *testing.T) {
	plan := distributeHours(3, []int{0, 1, 2, 3, 4}, 2, 8)

	assert.InDelta(t, 3.0, planTotal(plan), 0.001)
	assert.InDelta(t, 3.0, plan[0], 0.001)
}

func TestDistributeHoursLastChunkMayUndercutMinimum(t *testing.T) {
	plan := distributeHours(0.5, []int{0, 1, 2}, 2, 8)

	assert.InDelta(t, 0.5, plan[0], 0.001)
	assert.InDelta(t, 0.5, planTotal(plan), 0.001)
}

func TestDistributeHoursCapsAtMaxPerDay(t *testing.T) {
	plan := distributeHours(42, []int{0, 1, 2, 3, 4}, 2, 8)

	for day, hours := range plan {
		assert.LessOrEqual(t, hours, 8.0, "day %d", day)
	}
	assert.InDelta(t, 40.0, planTotal(plan), 0.001)
}

func TestDistributeHoursEmptyInputs(t *testing.T) {
	assert.Empty(t, distributeHours(0, []int{0, 1}, 2, 8))
	assert.Empty(t, distributeHours(35, nil, 2, 8))
}

func TestConcentrateHoursFillsFewestDays(t *testing.T) {
	plan := concentrateHours(20, []int{0, 1, 2, 3, 4}, 8)

	assert.InDelta(t, 8.0, plan[0], 0.001)
	assert.InDelta(t, 8.0, plan[1], 0.001)
	assert.InDelta(t, 4.0, plan[2], 0.001)
	assert.NotContains(t, plan, 3)
	assert.NotContains(t, plan, 4)
}
