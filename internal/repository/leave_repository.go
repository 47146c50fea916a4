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

// LeaveRepository manages persistence for leave requests.
type LeaveRepository struct {
	db *sqlx.DB
}

// NewLeaveRepository constructs a LeaveRepository.
func NewLeaveRepository(db *sqlx.DB) *LeaveRepository {
	return &LeaveRepository{db: db}
}

const leaveColumns = "id, employee_id, type, status, start_date, end_date, reason, created_at, updated_at"

// List returns leaves matching filters along with total count.
func (r *LeaveRepository) List(ctx context.Context, filter models.LeaveFilter) ([]models.Leave, int, error) {
	base := "FROM leaves WHERE 1=1"
	var conditions []string
	var args []interface{}

	if filter.EmployeeID != "" {
		conditions = append(conditions, fmt.Sprintf("employee_id = $%d", len(args)+1))
		args = append(args, filter.EmployeeID)
	}
	if filter.Status != nil {
		conditions = append(conditions, fmt.Sprintf("status = $%d", len(args)+1))
		args = append(args, *filter.Status)
	}
	if filter.From != nil {
		conditions = append(conditions, fmt.Sprintf("end_date >= $%d", len(args)+1))
		args = append(args, *filter.From)
	}
	if filter.To != nil {
		conditions = append(conditions, fmt.Sprintf("start_date <= $%d", len(args)+1))
		args = append(args, *filter.To)
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

	query := fmt.Sprintf("SELECT %s %s ORDER BY start_date %s LIMIT %d OFFSET %d", leaveColumns, base, order, size, offset)
	var leaves []models.Leave
	if err := r.db.SelectContext(ctx, &leaves, query, args...); err != nil {
		return nil, 0, fmt.Errorf("list leaves: %w", err)
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) %s", base)
	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("count leaves: %w", err)
	}

	return leaves, total, nil
}

// FindByID fetches a leave by ID.
func (r *LeaveRepository) FindByID(ctx context.Context, id string) (*models.Leave, error) {
	query := fmt.Sprintf("SELECT %s FROM leaves WHERE id = $1", leaveColumns)
	var leave models.Leave
	if err := r.db.GetContext(ctx, &leave, query, id); err != nil {
		return nil, err
	}
	return &leave, nil
}

// FindApprovedInRange returns approved leaves overlapping the given window
// for a set of employees. The generation pipeline turns them into dated
// exceptions.
func (r *LeaveRepository) FindApprovedInRange(ctx context.Context, employeeIDs []string, from, to time.Time) ([]models.Leave, error) {
	if len(employeeIDs) == 0 {
		return nil, nil
	}
	query, args, err := sqlx.In(
		fmt.Sprintf("SELECT %s FROM leaves WHERE employee_id IN (?) AND status = ? AND start_date <= ? AND end_date >= ?", leaveColumns),
		employeeIDs, models.LeaveApproved, to, from,
	)
	if err != nil {
		return nil, fmt.Errorf("build leave range query: %w", err)
	}
	query = r.db.Rebind(query)

	var leaves []models.Leave
	if err := r.db.SelectContext(ctx, &leaves, query, args...); err != nil {
		return nil, fmt.Errorf("list approved leaves: %w", err)
	}
	return leaves, nil
}

// Create inserts a new leave record in pending status.
func (r *LeaveRepository) Create(ctx context.Context, leave *models.Leave) error {
	if leave.ID == "" {
		leave.ID = uuid.NewString()
	}
	if leave.Status == "" {
		leave.Status = models.LeavePending
	}
	now := time.Now().UTC()
	if leave.CreatedAt.IsZero() {
		leave.CreatedAt = now
	}
	leave.UpdatedAt = now

	const query = `INSERT INTO leaves (id, employee_id, type, status, start_date, end_date, reason, created_at, updated_at)
		VALUES (:id, :employee_id, :type, :status, :start_date, :end_date, :reason, :created_at, :updated_at)`
	if _, err := r.db.NamedExecContext(ctx, query, leave); err != nil {
		return fmt.Errorf("create leave: %w", err)
	}
	return nil
}

// UpdateStatus moves a leave through the approval workflow.
func (r *LeaveRepository) UpdateStatus(ctx context.Context, id string, status models.LeaveStatus) error {
	const query = `UPDATE leaves SET status = $2, updated_at = $3 WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, id, status, time.Now().UTC()); err != nil {
		return fmt.Errorf("update leave status: %w", err)
	}
	return nil
}
