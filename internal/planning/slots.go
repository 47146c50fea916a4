package planning

const (
	splitChunkMinutes = 240 // longest uninterrupted stretch in split mode
	splitGapMinutes   = 30  // pause between split-shift chunks
)

// buildDaySlots converts one day's allocated hours into concrete time slots
// inside the company's open window. Slots never overrun the window; hours
// lost to clipping are not redistributed.
func buildDaySlots(hours float64, prefs *Preferences, c *CompanyConstraints) []TimeSlot {
	if hours <= 0 {
		return []TimeSlot{}
	}

	winStart, winEnd := c.openWindow()
	start := slotStart(prefs, winStart, winEnd)
	if start >= winEnd {
		return []TimeSlot{}
	}

	needLunch := c != nil && c.MandatoryLunchBreak && hours >= lunchThresholdHours
	if prefs.SplitAllowed() {
		return buildSplitSlots(hours, start, winEnd, needLunch, c.lunchMinutes())
	}
	return buildContinuousSlots(hours, start, winEnd, needLunch, c.lunchMinutes())
}

// slotStart picks the first preferred-hour-range start that falls inside the
// open window, defaulting to the window's own start.
func slotStart(prefs *Preferences, winStart, winEnd int) int {
	if prefs != nil {
		for _, r := range prefs.PreferredHours {
			if s, _, ok := parseRange(r); ok && s >= winStart && s < winEnd {
				return s
			}
		}
	}
	return winStart
}

// buildContinuousSlots emits one uninterrupted work span, split around a
// lunch slot at its temporal midpoint when the lunch condition holds.
func buildContinuousSlots(hours float64, start, winEnd int, lunch bool, lunchMin int) []TimeSlot {
	dur := hoursToMinutes(hours)

	if !lunch {
		end := min(start+dur, winEnd)
		if end <= start {
			return []TimeSlot{}
		}
		return []TimeSlot{{Start: formatClock(start), End: formatClock(end)}}
	}

	mid := start + dur/2
	if mid >= winEnd {
		// Window too tight to place the break; clip to a plain span.
		return []TimeSlot{{Start: formatClock(start), End: formatClock(winEnd)}}
	}

	slots := []TimeSlot{{Start: formatClock(start), End: formatClock(mid)}}

	lunchEnd := min(mid+lunchMin, winEnd)
	slots = append(slots, TimeSlot{Start: formatClock(mid), End: formatClock(lunchEnd), IsLunchBreak: true})
	if lunchEnd >= winEnd {
		return slots
	}

	afternoonEnd := min(start+dur+lunchMin, winEnd)
	if afternoonEnd > lunchEnd {
		slots = append(slots, TimeSlot{Start: formatClock(lunchEnd), End: formatClock(afternoonEnd)})
	}
	return slots
}

// buildSplitSlots carves the allocated hours into chunks of at most four
// hours separated by 30-minute gaps, placing the lunch slot adjacent to the
// middle chunk. Carving stops once the window end is reached.
func buildSplitSlots(hours float64, start, winEnd int, lunch bool, lunchMin int) []TimeSlot {
	remaining := hoursToMinutes(hours)
	chunkCount := (remaining + splitChunkMinutes - 1) / splitChunkMinutes
	lunchAfter := (chunkCount - 1) / 2

	slots := make([]TimeSlot, 0, chunkCount+1)
	cursor := start
	lunchPlaced := false

	for idx := 0; remaining > 0 && cursor < winEnd; idx++ {
		chunk := min(splitChunkMinutes, remaining)
		end := cursor + chunk
		clipped := false
		if end > winEnd {
			end = winEnd
			clipped = true
		}
		if end <= cursor {
			break
		}
		slots = append(slots, TimeSlot{Start: formatClock(cursor), End: formatClock(end)})
		remaining -= end - cursor
		if clipped || remaining <= 0 {
			break
		}

		if lunch && !lunchPlaced && idx == lunchAfter {
			lunchEnd := min(end+lunchMin, winEnd)
			if lunchEnd > end {
				slots = append(slots, TimeSlot{Start: formatClock(end), End: formatClock(lunchEnd), IsLunchBreak: true})
			}
			cursor = lunchEnd
			lunchPlaced = true
			continue
		}
		cursor = end + splitGapMinutes
	}
	return slots
}
