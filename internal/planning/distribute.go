package planning

import "math"

// distributeHours apportions the weekly contracted hours across the given
// weekday indices, walking them in the order supplied. The even share is
// min(maxHours, ceil(hours/len(days))); a day is skipped when its chunk
// would land under minHours unless it is the last remaining chunk. A second
// top-up pass spends any leftover on days still under maxHours. The result
// may deviate from the contract; the validator checks the ±10% tolerance.
func distributeHours(hours float64, days []int, minH, maxH float64) map[int]float64 {
	plan := make(map[int]float64, len(days))
	if hours <= 0 || len(days) == 0 {
		return plan
	}

	share := math.Min(maxH, math.Ceil(hours/float64(len(days))))
	remaining := hours

	for _, day := range days {
		if remaining <= 0 {
			break
		}
		chunk := math.Min(share, math.Min(remaining, maxH))
		if chunk < minH && chunk < remaining {
			continue
		}
		plan[day] = chunk
		remaining -= chunk
	}

	// Rounding and skipped days can leave a remainder; top up whatever
	// still has headroom under maxHours.
	for _, day := range days {
		if remaining <= 0 {
			break
		}
		headroom := maxH - plan[day]
		if headroom <= 0 {
			continue
		}
		add := math.Min(headroom, remaining)
		plan[day] += add
		remaining -= add
	}

	return plan
}

// concentrateHours fills the fewest possible days at maxHours each before
// touching the next one, creating long uninterrupted rest stretches.
func concentrateHours(hours float64, days []int, maxH float64) map[int]float64 {
	plan := make(map[int]float64, len(days))
	remaining := hours
	for _, day := range days {
		if remaining <= 0 {
			break
		}
		chunk := math.Min(maxH, remaining)
		plan[day] = chunk
		remaining -= chunk
	}
	return plan
}
