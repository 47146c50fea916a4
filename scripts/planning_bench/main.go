// Command planning_bench runs the schedule generation engine on a synthetic
// roster and prints timing percentiles. Useful for sizing PLANNING_WORKERS
// and the slow-run threshold before a rollout.
package main

import (
	"flag"
	"fmt"
	"log"
	"sort"
	"time"

	"github.com/krismos64/SmartPlanning-sub005/internal/planning"
)

func main() {
	var (
		employees  int
		iterations int
		candidate  bool
	)
	flag.IntVar(&employees, "employees", 100, "employees per batch")
	flag.IntVar(&iterations, "iterations", 20, "number of batches to run")
	flag.BoolVar(&candidate, "candidate", false, "enable multi-strategy candidate mode")
	flag.Parse()

	engine := planning.NewEngine(planning.NopReporter{}, nil, planning.EngineConfig{})
	req := syntheticRequest(employees, candidate)

	durations := make([]time.Duration, 0, iterations)
	for i := 0; i < iterations; i++ {
		start := time.Now()
		if _, err := engine.Generate(req); err != nil {
			log.Fatalf("generation failed: %v", err)
		}
		durations = append(durations, time.Since(start))
	}

	sort.Slice(durations, func(i, j int) bool { return durations[i] < durations[j] })
	fmt.Printf("employees=%d iterations=%d candidate=%v\n", employees, iterations, candidate)
	fmt.Printf("p50=%s p90=%s max=%s\n",
		durations[len(durations)/2],
		durations[len(durations)*9/10],
		durations[len(durations)-1])
}

func syntheticRequest(employees int, candidate bool) planning.Request {
	req := planning.Request{
		Week:          10,
		Year:          2025,
		CandidateMode: candidate,
		Constraints: &planning.CompanyConstraints{
			OpenDays: []time.Weekday{
				time.Monday, time.Tuesday, time.Wednesday,
				time.Thursday, time.Friday, time.Saturday,
			},
			OpenHours:           []string{"08:00-20:00"},
			MandatoryLunchBreak: true,
		},
	}

	hours := []float64{20, 28, 35, 39}
	for i := 0; i < employees; i++ {
		emp := planning.EmployeeInput{
			ID:            fmt.Sprintf("emp-%04d", i),
			ContractHours: hours[i%len(hours)],
		}
		if i%3 == 0 {
			rest := time.Weekday((i / 3) % 7)
			emp.RestDay = &rest
		}
		req.Employees = append(req.Employees, emp)
	}
	return req
}
