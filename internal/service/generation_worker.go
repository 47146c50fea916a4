package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/krismos64/SmartPlanning-sub005/pkg/jobs"
)

// CompanyGenerationPayload is the queue payload for asynchronous company-wide
// schedule generation.
type CompanyGenerationPayload struct {
	CompanyID   string
	Week        int
	Year        int
	GeneratedBy string
}

// GenerationWorker consumes queued company generation jobs. Results are
// always persisted as drafts; clients pick them up through the export and
// schedule endpoints.
type GenerationWorker struct {
	planning *PlanningService
	logger   *zap.Logger
}

// NewGenerationWorker constructs a worker.
func NewGenerationWorker(planning *PlanningService, logger *zap.Logger) *GenerationWorker {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GenerationWorker{planning: planning, logger: logger}
}

// Handle processes a queue job.
func (w *GenerationWorker) Handle(ctx context.Context, job jobs.Job) error {
	payload, ok := job.Payload.(CompanyGenerationPayload)
	if !ok {
		return fmt.Errorf("job %s carries unexpected payload %T", job.ID, job.Payload)
	}

	resp, err := w.planning.GenerateForCompany(ctx, payload.CompanyID, payload.Week, payload.Year, true, payload.GeneratedBy)
	if err != nil {
		return err
	}
	w.logger.Info("async company generation finished",
		zap.String("job_id", job.ID),
		zap.String("company_id", payload.CompanyID),
		zap.Int("week", payload.Week),
		zap.Int("year", payload.Year),
		zap.Int("employees", len(resp.Results)),
		zap.Int("warnings", len(resp.Warnings)))
	return nil
}
