package planning

import "math"

// StrategyName identifies one of the interchangeable allocation heuristics.
type StrategyName string

const (
	StrategyDistribution  StrategyName = "distribution"
	StrategyPreferences   StrategyName = "preferences"
	StrategyConcentration StrategyName = "concentration"
)

// Strategy apportions an employee's contracted hours across the open
// weekdays. The default pipeline runs Distribution alone; candidate mode
// runs every registered strategy and keeps the best-scoring week.
type Strategy interface {
	Name() StrategyName
	Allocate(emp EmployeeInput, open [7]bool, c *CompanyConstraints) map[int]float64
}

// strategies in stable generation order; ties during scoring keep the
// earliest candidate.
var strategies = []Strategy{
	distributionStrategy{},
	preferencesStrategy{},
	concentrationStrategy{},
}

// distributionStrategy spreads hours evenly over the usable days in
// calendar order, honoring the per-day min/max bounds.
type distributionStrategy struct{}

func (distributionStrategy) Name() StrategyName { return StrategyDistribution }

func (distributionStrategy) Allocate(emp EmployeeInput, open [7]bool, c *CompanyConstraints) map[int]float64 {
	days := capDays(usableDays(emp, open), maxConsecutiveFor(emp))
	return distributeHours(emp.ContractHours, days, c.minHours(), c.maxHours())
}

// preferencesStrategy fills the employee's preferred days first, spilling
// onto the remaining available days only once those are exhausted.
type preferencesStrategy struct{}

func (preferencesStrategy) Name() StrategyName { return StrategyPreferences }

func (preferencesStrategy) Allocate(emp EmployeeInput, open [7]bool, c *CompanyConstraints) map[int]float64 {
	var preferred, others []int
	for i := range Weekdays {
		if !open[i] {
			continue
		}
		if emp.Preferences != nil && containsWeekday(emp.Preferences.PreferredDays, Weekdays[i]) {
			preferred = append(preferred, i)
		} else {
			others = append(others, i)
		}
	}
	order := capDays(append(preferred, others...), maxConsecutiveFor(emp))
	return distributeHours(emp.ContractHours, order, c.minHours(), c.maxHours())
}

// concentrationStrategy packs the fewest possible days at maxHours each to
// carve out long uninterrupted rest stretches.
type concentrationStrategy struct{}

func (concentrationStrategy) Name() StrategyName { return StrategyConcentration }

func (concentrationStrategy) Allocate(emp EmployeeInput, open [7]bool, c *CompanyConstraints) map[int]float64 {
	days := capDays(usableDays(emp, open), maxConsecutiveFor(emp))
	return concentrateHours(emp.ContractHours, days, c.maxHours())
}

// buildWeek turns a strategy's hour allocation into a full 7-day schedule
// and applies the consecutive-day limiter.
func buildWeek(s Strategy, emp EmployeeInput, open [7]bool, c *CompanyConstraints) DaySchedule {
	days := NewDaySchedule()
	for idx, hours := range s.Allocate(emp, open, c) {
		days[Weekdays[idx]] = buildDaySlots(hours, emp.Preferences, c)
	}
	limitConsecutiveDays(days, maxConsecutiveFor(emp))
	return days
}

// bestCandidate generates one candidate week per strategy, scores each and
// retains the highest; earlier strategies win ties.
func bestCandidate(emp EmployeeInput, open [7]bool, c *CompanyConstraints) (DaySchedule, StrategyName, float64) {
	var (
		best      DaySchedule
		bestName  StrategyName
		bestScore = math.Inf(-1)
	)
	for _, s := range strategies {
		days := buildWeek(s, emp, open, c)
		score := scoreCandidate(emp, days)
		if score > bestScore {
			best, bestName, bestScore = days, s.Name(), score
		}
	}
	return best, bestName, bestScore
}

// scoreCandidate rates a candidate week: closeness to contracted hours,
// preferred days and hour ranges actually used, gap penalties when split
// shifts are disallowed, and evenness of the daily load.
func scoreCandidate(emp EmployeeInput, days DaySchedule) float64 {
	var score float64

	total := days.WorkedHours()
	if emp.ContractHours > 0 {
		score += 50 * (1 - math.Abs(total-emp.ContractHours)/emp.ContractHours)
	}

	var daysWorked, preferredWorked int
	var daily []float64
	for _, wd := range Weekdays {
		worked := workedHours(days[wd])
		if worked <= 0 {
			continue
		}
		daysWorked++
		daily = append(daily, worked)
		if emp.Preferences != nil && containsWeekday(emp.Preferences.PreferredDays, wd) {
			preferredWorked++
		}
	}
	if daysWorked > 0 {
		score += 20 * float64(preferredWorked) / float64(daysWorked)
	}

	var totalSlots, inPreferred int
	for _, wd := range Weekdays {
		for _, slot := range days[wd] {
			if slot.IsLunchBreak {
				continue
			}
			totalSlots++
			if slotInPreferredRange(slot, emp.Preferences) {
				inPreferred++
			}
		}
	}
	if totalSlots > 0 {
		score += 15 * float64(inPreferred) / float64(totalSlots)
	}

	if !emp.Preferences.SplitAllowed() {
		for _, wd := range Weekdays {
			score -= 5 * float64(countGaps(days[wd], splitGapToleranceMinutes))
		}
	}

	score += math.Max(0, 20-variance(daily))
	return score
}

func slotInPreferredRange(slot TimeSlot, prefs *Preferences) bool {
	if prefs == nil {
		return false
	}
	s, ok1 := parseClock(slot.Start)
	e, ok2 := parseClock(slot.End)
	if !ok1 || !ok2 {
		return false
	}
	for _, r := range prefs.PreferredHours {
		if rs, re, ok := parseRange(r); ok && s >= rs && e <= re {
			return true
		}
	}
	return false
}

// countGaps counts pauses longer than the tolerance between consecutive
// slots of a day; lunch slots occupy time and therefore close gaps.
func countGaps(slots []TimeSlot, toleranceMinutes int) int {
	gaps := 0
	for i := 1; i < len(slots); i++ {
		prevEnd, ok1 := parseClock(slots[i-1].End)
		nextStart, ok2 := parseClock(slots[i].Start)
		if ok1 && ok2 && nextStart-prevEnd > toleranceMinutes {
			gaps++
		}
	}
	return gaps
}

func variance(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	mean := sum / float64(len(values))
	var sq float64
	for _, v := range values {
		sq += (v - mean) * (v - mean)
	}
	return sq / float64(len(values))
}
