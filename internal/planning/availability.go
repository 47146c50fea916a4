package planning

import "time"

// availability flags each weekday (indexed like Weekdays) as schedulable or
// not for one employee. Rules apply in order, first match wins: company open
// days, the employee's mandatory rest day, then blocking dated exceptions.
func availability(emp EmployeeInput, dates [7]time.Time, c *CompanyConstraints) [7]bool {
	var open [7]bool

	for i, wd := range Weekdays {
		if c != nil && c.OpenDays != nil && !containsWeekday(c.OpenDays, wd) {
			continue
		}
		if emp.RestDay != nil && *emp.RestDay == wd {
			continue
		}
		if hasBlockingException(emp.Exceptions, dates[i]) {
			continue
		}
		open[i] = true
	}
	return open
}

func containsWeekday(days []time.Weekday, wd time.Weekday) bool {
	for _, d := range days {
		if d == wd {
			return true
		}
	}
	return false
}

func hasBlockingException(exceptions []Exception, date time.Time) bool {
	key := dateKey(date)
	for _, ex := range exceptions {
		if ex.Date == key && ex.Type.Blocking() {
			return true
		}
	}
	return false
}

// usableDays narrows the available weekday indices to the employee's
// preferred days when that intersection is non-empty, falling back to the
// full availability list otherwise. Indices come back in calendar order.
func usableDays(emp EmployeeInput, open [7]bool) []int {
	available := make([]int, 0, 7)
	for i := range Weekdays {
		if open[i] {
			available = append(available, i)
		}
	}

	if emp.Preferences == nil || len(emp.Preferences.PreferredDays) == 0 {
		return available
	}

	preferred := make([]int, 0, len(available))
	for _, i := range available {
		if containsWeekday(emp.Preferences.PreferredDays, Weekdays[i]) {
			preferred = append(preferred, i)
		}
	}
	if len(preferred) == 0 {
		return available
	}
	return preferred
}

// capDays bounds the number of days handed to a planner so a distribution
// never spreads wider than the consecutive-day cap; otherwise the limiter
// would truncate the tail of the week and silently lose planned hours.
func capDays(days []int, limit int) []int {
	if limit > 0 && len(days) > limit {
		return days[:limit]
	}
	return days
}
