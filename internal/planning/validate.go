package planning

import (
	"fmt"
	"math"
)

const (
	// hoursTolerance is the accepted relative deviation between scheduled
	// and contracted weekly hours.
	hoursTolerance = 0.10

	// minInterDayRestHours is the advisory rest target between the last
	// slot of one day and the first slot of the next.
	minInterDayRestHours = 11.0

	// splitGapToleranceMinutes is the longest intra-day pause allowed when
	// split shifts are disallowed.
	splitGapToleranceMinutes = 15
)

// ValidationReport carries the advisory outcome of the post-generation
// checks. Warnings never block a schedule; errors flag a policy breach the
// caller should surface.
type ValidationReport struct {
	Warnings []string `json:"warnings,omitempty"`
	Errors   []string `json:"errors,omitempty"`
}

// validateSchedule re-checks a finished week against the soft legal and
// preference targets: weekly hours tolerance, inter-day rest, and the
// split-shift policy.
func validateSchedule(emp EmployeeInput, days DaySchedule) ValidationReport {
	var report ValidationReport

	total := days.WorkedHours()
	if emp.ContractHours > 0 {
		deviation := math.Abs(total-emp.ContractHours) / emp.ContractHours
		if deviation > hoursTolerance {
			report.Warnings = append(report.Warnings, fmt.Sprintf(
				"scheduled %.1fh deviates more than %.0f%% from the %.1fh contract",
				total, hoursTolerance*100, emp.ContractHours))
		}
	}

	for i := 0; i < len(Weekdays)-1; i++ {
		rest, ok := interDayRest(days[Weekdays[i]], days[Weekdays[i+1]])
		if ok && rest < minInterDayRestHours {
			report.Warnings = append(report.Warnings, fmt.Sprintf(
				"only %.1fh rest between %s and %s (target %.0fh)",
				rest, Weekdays[i], Weekdays[i+1], minInterDayRestHours))
		}
	}

	if !emp.Preferences.SplitAllowed() {
		for _, wd := range Weekdays {
			if gaps := countGaps(days[wd], splitGapToleranceMinutes); gaps > 0 {
				report.Errors = append(report.Errors, fmt.Sprintf(
					"%s has %d gap(s) over %d minutes although split shifts are disallowed",
					wd, gaps, splitGapToleranceMinutes))
			}
		}
	}

	return report
}

// interDayRest measures the hours between the last slot end of one day and
// the first slot start of the following day, rolling over midnight.
func interDayRest(today, tomorrow []TimeSlot) (float64, bool) {
	if len(today) == 0 || len(tomorrow) == 0 {
		return 0, false
	}
	lastEnd, ok1 := parseClock(today[len(today)-1].End)
	firstStart, ok2 := parseClock(tomorrow[0].Start)
	if !ok1 || !ok2 {
		return 0, false
	}
	return float64((24*60-lastEnd)+firstStart) / 60.0, true
}

// fallbackSchedule places the employee on up to five consecutive available
// weekdays starting 09:00, each day capped at min(8, remaining hours). No
// split logic and no lunch logic; it exists so a structurally failed
// generation still yields a complete 7-weekday result.
func fallbackSchedule(emp EmployeeInput, open [7]bool) DaySchedule {
	days := NewDaySchedule()
	remaining := emp.ContractHours
	used := 0

	start, _ := parseClock("09:00")
	for i, wd := range Weekdays {
		if remaining <= 0 || used >= 5 {
			break
		}
		if !open[i] {
			continue
		}
		hours := math.Min(8, remaining)
		end := start + hoursToMinutes(hours)
		days[wd] = []TimeSlot{{Start: formatClock(start), End: formatClock(end)}}
		remaining -= hours
		used++
	}
	return days
}
