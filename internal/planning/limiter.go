package planning

// limitConsecutiveDays caps runs of consecutive working days in a single
// forward greedy pass: the moment a run would exceed the limit, that day's
// slots are wiped and the count resets. Earlier days are never reconsidered
// in favor of later ones.
func limitConsecutiveDays(days DaySchedule, maxConsecutive int) {
	if maxConsecutive <= 0 {
		maxConsecutive = DefaultMaxConsecutiveDays
	}

	run := 0
	for _, wd := range Weekdays {
		if len(days[wd]) == 0 {
			run = 0
			continue
		}
		run++
		if run > maxConsecutive {
			days[wd] = []TimeSlot{}
			run = 0
		}
	}
}

func maxConsecutiveFor(emp EmployeeInput) int {
	if emp.Preferences != nil && emp.Preferences.MaxConsecutiveDays > 0 {
		return emp.Preferences.MaxConsecutiveDays
	}
	return DefaultMaxConsecutiveDays
}
