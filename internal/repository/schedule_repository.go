package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/krismos64/SmartPlanning-sub005/internal/models"
)

// ScheduleRepository manages persistence for generated weekly schedules.
type ScheduleRepository struct {
	db *sqlx.DB
}

// NewScheduleRepository constructs a ScheduleRepository.
func NewScheduleRepository(db *sqlx.DB) *ScheduleRepository {
	return &ScheduleRepository{db: db}
}

const scheduleColumns = "id, employee_id, week, year, days, total_hours, strategy, status, generated_by, created_at, updated_at"

// List returns weekly schedules matching filters along with total count.
func (r *ScheduleRepository) List(ctx context.Context, filter models.ScheduleFilter) ([]models.WeeklySchedule, int, error) {
	base := "FROM weekly_schedules WHERE 1=1"
	var conditions []string
	var args []interface{}

	if filter.EmployeeID != "" {
		conditions = append(conditions, fmt.Sprintf("employee_id = $%d", len(args)+1))
		args = append(args, filter.EmployeeID)
	}
	if filter.Week > 0 {
		conditions = append(conditions, fmt.Sprintf("week = $%d", len(args)+1))
		args = append(args, filter.Week)
	}
	if filter.Year > 0 {
		conditions = append(conditions, fmt.Sprintf("year = $%d", len(args)+1))
		args = append(args, filter.Year)
	}
	if filter.Status != nil {
		conditions = append(conditions, fmt.Sprintf("status = $%d", len(args)+1))
		args = append(args, *filter.Status)
	}

	if len(conditions) > 0 {
		base += " AND " + strings.Join(conditions, " AND ")
	}

	order := strings.ToUpper(filter.SortOrder)
	if order != "ASC" && order != "DESC" {
		order = "DESC"
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	size := filter.PageSize
	if size <= 0 || size > 100 {
		size = 20
	}
	offset := (page - 1) * size

	query := fmt.Sprintf("SELECT %s %s ORDER BY year %s, week %s LIMIT %d OFFSET %d", scheduleColumns, base, order, order, size, offset)
	var schedules []models.WeeklySchedule
	if err := r.db.SelectContext(ctx, &schedules, query, args...); err != nil {
		return nil, 0, fmt.Errorf("list weekly schedules: %w", err)
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) %s", base)
	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("count weekly schedules: %w", err)
	}

	return schedules, total, nil
}

// FindByWeek returns every persisted schedule for a (week, year) pair.
func (r *ScheduleRepository) FindByWeek(ctx context.Context, week, year int) ([]models.WeeklySchedule, error) {
	query := fmt.Sprintf("SELECT %s FROM weekly_schedules WHERE week = $1 AND year = $2 ORDER BY employee_id ASC", scheduleColumns)
	var schedules []models.WeeklySchedule
	if err := r.db.SelectContext(ctx, &schedules, query, week, year); err != nil {
		return nil, fmt.Errorf("find schedules for week: %w", err)
	}
	return schedules, nil
}

// Upsert stores a schedule draft, replacing any previous draft for the same
// employee and week. Published schedules are never overwritten.
func (r *ScheduleRepository) Upsert(ctx context.Context, schedule *models.WeeklySchedule) error {
	if schedule.ID == "" {
		schedule.ID = uuid.NewString()
	}
	if schedule.Status == "" {
		schedule.Status = models.ScheduleDraft
	}
	now := time.Now().UTC()
	if schedule.CreatedAt.IsZero() {
		schedule.CreatedAt = now
	}
	schedule.UpdatedAt = now

	const query = `INSERT INTO weekly_schedules (id, employee_id, week, year, days, total_hours, strategy, status, generated_by, created_at, updated_at)
		VALUES (:id, :employee_id, :week, :year, :days, :total_hours, :strategy, :status, :generated_by, :created_at, :updated_at)
		ON CONFLICT (employee_id, week, year) WHERE status = 'draft'
		DO UPDATE SET days = EXCLUDED.days, total_hours = EXCLUDED.total_hours, strategy = EXCLUDED.strategy, generated_by = EXCLUDED.generated_by, updated_at = EXCLUDED.updated_at`
	if _, err := r.db.NamedExecContext(ctx, query, schedule); err != nil {
		return fmt.Errorf("upsert weekly schedule: %w", err)
	}
	return nil
}

// Publish flips a draft schedule to published.
func (r *ScheduleRepository) Publish(ctx context.Context, id string) error {
	const query = `UPDATE weekly_schedules SET status = $2, updated_at = $3 WHERE id = $1 AND status = $4`
	res, err := r.db.ExecContext(ctx, query, id, models.SchedulePublished, time.Now().UTC(), models.ScheduleDraft)
	if err != nil {
		return fmt.Errorf("publish weekly schedule: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("publish weekly schedule: no draft with id %s", id)
	}
	return nil
}

// Delete removes a schedule record.
func (r *ScheduleRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM weekly_schedules WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("delete weekly schedule: %w", err)
	}
	return nil
}
