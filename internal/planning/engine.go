package planning

import (
	"fmt"
	"time"

	"go.uber.org/zap"
)

// DefaultSlowThreshold is the advisory duration past which a generation run
// is classified as slow when reported to monitoring.
const DefaultSlowThreshold = 100 * time.Millisecond

// FailureEvent describes a per-employee or batch-level generation failure
// for the monitoring collaborator.
type FailureEvent struct {
	Operation  string
	EmployeeID string
	Week       int
	Year       int
	Err        error
}

// PerformanceSample is one invocation's timing report.
type PerformanceSample struct {
	Operation     string
	Duration      time.Duration
	EmployeeCount int
	Success       bool
	Slow          bool
}

// Reporter receives best-effort monitoring events. Implementations must be
// fire-and-forget: they may never alter or block the computed result.
type Reporter interface {
	ReportFailure(FailureEvent)
	ReportPerformance(PerformanceSample)
}

// NopReporter discards every event.
type NopReporter struct{}

func (NopReporter) ReportFailure(FailureEvent) {}

func (NopReporter) ReportPerformance(PerformanceSample) {}

// BatchError is the only error class the engine surfaces to its caller: a
// failure outside the per-employee boundary, such as a malformed top-level
// request. Everything narrower degrades into warnings or fallbacks.
type BatchError struct {
	Op  string
	Err error
}

func (e *BatchError) Error() string {
	return fmt.Sprintf("planning %s: %v", e.Op, e.Err)
}

func (e *BatchError) Unwrap() error { return e.Err }

// EngineConfig tunes engine behaviour.
type EngineConfig struct {
	SlowThreshold time.Duration
}

// Engine generates weekly schedules. It holds no mutable state between
// calls; a single instance is safe for concurrent use.
type Engine struct {
	reporter Reporter
	logger   *zap.Logger
	slow     time.Duration
}

// NewEngine constructs an engine with the given monitoring collaborator.
func NewEngine(reporter Reporter, logger *zap.Logger, cfg EngineConfig) *Engine {
	if reporter == nil {
		reporter = NopReporter{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.SlowThreshold <= 0 {
		cfg.SlowThreshold = DefaultSlowThreshold
	}
	return &Engine{reporter: reporter, logger: logger, slow: cfg.SlowThreshold}
}

// Generate synthesizes one week of schedules for every employee in the
// request. Employees are processed independently: a failure for one yields
// a fallback schedule for that employee and never aborts the batch. The
// returned error is non-nil only for a malformed top-level request.
func (e *Engine) Generate(req Request) (*BatchResult, error) {
	start := time.Now()

	if req.Year <= 0 {
		err := &BatchError{Op: "generate", Err: fmt.Errorf("year %d is not a valid calendar year", req.Year)}
		e.reporter.ReportFailure(FailureEvent{Operation: "generate", Week: req.Week, Year: req.Year, Err: err})
		return nil, err
	}

	result := &BatchResult{
		Week:    req.Week,
		Year:    req.Year,
		Dates:   WeekDates(req.Week, req.Year),
		Results: make(map[string]*EmployeeResult, len(req.Employees)),
	}

	if req.Week < 1 || req.Week > 53 {
		result.Warnings = append(result.Warnings, fmt.Sprintf(
			"week %d is outside the nominal 1-53 range; dates resolved best-effort", req.Week))
	}
	if len(req.Employees) == 0 {
		result.Warnings = append(result.Warnings, "request contains no employees")
		result.Duration = time.Since(start)
		e.reportRun(result, true)
		return result, nil
	}

	failures := 0
	for _, emp := range req.Employees {
		res := e.generateEmployee(req, emp, result.Dates)
		if res.Failed {
			failures++
		}
		result.Results[emp.ID] = res
	}

	result.Duration = time.Since(start)
	e.reportRun(result, failures == 0)
	return result, nil
}

// generateEmployee runs the full per-employee pipeline behind a recovery
// boundary, substituting the fallback schedule on any structural failure.
func (e *Engine) generateEmployee(req Request, emp EmployeeInput, dates [7]time.Time) (res *EmployeeResult) {
	open := availability(emp, dates, req.Constraints)

	defer func() {
		if r := recover(); r != nil {
			err := fmt.Errorf("schedule generation panicked: %v", r)
			e.reporter.ReportFailure(FailureEvent{
				Operation: "generate_employee", EmployeeID: emp.ID,
				Week: req.Week, Year: req.Year, Err: err,
			})
			e.logger.Error("employee generation failed, using fallback",
				zap.String("employee_id", emp.ID), zap.Error(err))
			res = e.fallbackResult(emp, open, err)
		}
	}()

	if emp.ContractHours > 0 && len(usableDays(emp, open)) == 0 {
		err := fmt.Errorf("no usable days for %.1f contracted hours", emp.ContractHours)
		e.reporter.ReportFailure(FailureEvent{
			Operation: "generate_employee", EmployeeID: emp.ID,
			Week: req.Week, Year: req.Year, Err: err,
		})
		return e.fallbackResult(emp, open, err)
	}

	var (
		days DaySchedule
		name StrategyName
	)
	if req.CandidateMode {
		days, name, _ = bestCandidate(emp, open, req.Constraints)
	} else {
		days = buildWeek(distributionStrategy{}, emp, open, req.Constraints)
		name = StrategyDistribution
	}

	report := validateSchedule(emp, days)
	return &EmployeeResult{
		EmployeeID: emp.ID,
		Days:       days,
		TotalHours: days.WorkedHours(),
		Strategy:   name,
		Warnings:   report.Warnings,
		Errors:     report.Errors,
	}
}

func (e *Engine) fallbackResult(emp EmployeeInput, open [7]bool, cause error) *EmployeeResult {
	days := fallbackSchedule(emp, open)
	return &EmployeeResult{
		EmployeeID:    emp.ID,
		Days:          days,
		TotalHours:    days.WorkedHours(),
		Strategy:      StrategyDistribution,
		Failed:        true,
		FailureReason: cause.Error(),
		Fallback:      true,
	}
}

func (e *Engine) reportRun(result *BatchResult, success bool) {
	slow := result.Duration > e.slow
	e.reporter.ReportPerformance(PerformanceSample{
		Operation:     "generate",
		Duration:      result.Duration,
		EmployeeCount: len(result.Results),
		Success:       success,
		Slow:          slow,
	})
	if slow {
		e.logger.Warn("slow schedule generation",
			zap.Duration("duration", result.Duration),
			zap.Int("employees", len(result.Results)),
			zap.Int("week", result.Week),
			zap.Int("year", result.Year))
	}
}
