package planning

import "time"

// Weekdays lists the scheduling week in calendar order, Monday first. The
// table is read-only shared configuration, safe across concurrent callers.
var Weekdays = [7]time.Weekday{
	time.Monday,
	time.Tuesday,
	time.Wednesday,
	time.Thursday,
	time.Friday,
	time.Saturday,
	time.Sunday,
}

// WeekDates resolves a (week, year) pair into the 7 calendar dates of that
// week, Monday through Sunday. The numbering is an approximation of ISO
// weeks: start from January 1, offset by whole weeks, then snap back to the
// preceding Monday. Out-of-range week numbers (0, negative, >53) yield a
// plausible adjacent range instead of an error, matching the tolerant
// contract of the generation pipeline.
func WeekDates(week, year int) [7]time.Time {
	jan1 := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	approx := jan1.AddDate(0, 0, (week-1)*7)

	// Days since the most recent Monday; Go counts Sunday as 0.
	back := (int(approx.Weekday()) + 6) % 7
	monday := approx.AddDate(0, 0, -back)

	var dates [7]time.Time
	for i := range dates {
		dates[i] = monday.AddDate(0, 0, i)
	}
	return dates
}

// dateKey renders a date in the YYYY-MM-DD form used by exceptions.
func dateKey(t time.Time) string {
	return t.Format("2006-01-02")
}
