package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/krismos64/SmartPlanning-sub005/internal/dto"
	"github.com/krismos64/SmartPlanning-sub005/internal/models"
	appErrors "github.com/krismos64/SmartPlanning-sub005/pkg/errors"
)

type leaveRepository interface {
	List(ctx context.Context, filter models.LeaveFilter) ([]models.Leave, int, error)
	FindByID(ctx context.Context, id string) (*models.Leave, error)
	Create(ctx context.Context, leave *models.Leave) error
	UpdateStatus(ctx context.Context, id string, status models.LeaveStatus) error
}

type leaveCacheInvalidator interface {
	DeleteByPattern(ctx context.Context, pattern string) error
}

// LeaveService provides leave request use cases.
type LeaveService struct {
	repo      leaveRepository
	cache     leaveCacheInvalidator
	validator *validator.Validate
	logger    *zap.Logger
}

// NewLeaveService constructs a LeaveService. The cache is optional; when set,
// approving a leave drops the employee's cached schedule weeks.
func NewLeaveService(repo leaveRepository, cache leaveCacheInvalidator, validate *validator.Validate, logger *zap.Logger) *LeaveService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LeaveService{repo: repo, cache: cache, validator: validate, logger: logger}
}

// List returns leaves with pagination metadata.
func (s *LeaveService) List(ctx context.Context, query dto.ListLeavesQuery) ([]models.Leave, *models.Pagination, error) {
	if err := s.validator.Struct(query); err != nil {
		return nil, nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid leave query")
	}

	filter := models.LeaveFilter{
		EmployeeID: query.EmployeeID,
		Page:       query.Page,
		PageSize:   query.PageSize,
	}
	if query.Status != "" {
		status := models.LeaveStatus(query.Status)
		filter.Status = &status
	}
	if query.From != "" {
		if from, err := time.Parse("2006-01-02", query.From); err == nil {
			filter.From = &from
		}
	}
	if query.To != "" {
		if to, err := time.Parse("2006-01-02", query.To); err == nil {
			filter.To = &to
		}
	}

	leaves, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list leaves")
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	size := filter.PageSize
	if size <= 0 || size > 100 {
		size = 20
	}
	return leaves, &models.Pagination{Page: page, PageSize: size, TotalCount: total}, nil
}

// Create files a new leave request in pending status.
func (s *LeaveService) Create(ctx context.Context, req dto.CreateLeaveRequest) (*models.Leave, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid leave payload")
	}

	start, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, "invalid start date")
	}
	end, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, "invalid end date")
	}
	if end.Before(start) {
		return nil, appErrors.Clone(appErrors.ErrValidation, "end date precedes start date")
	}

	leave := &models.Leave{
		EmployeeID: req.EmployeeID,
		Type:       models.LeaveType(req.Type),
		Status:     models.LeavePending,
		StartDate:  start,
		EndDate:    end,
		Reason:     req.Reason,
	}
	if err := s.repo.Create(ctx, leave); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create leave")
	}
	return leave, nil
}

// Decide approves or rejects a pending leave request.
func (s *LeaveService) Decide(ctx context.Context, id string, req dto.DecideLeaveRequest) (*models.Leave, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid decision payload")
	}

	leave, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "leave not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load leave")
	}
	if leave.Status != models.LeavePending {
		return nil, appErrors.Clone(appErrors.ErrConflict, "leave has already been decided")
	}

	status := models.LeaveStatus(req.Status)
	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update leave")
	}
	leave.Status = status

	// An approved absence changes availability, so cached schedule weeks for
	// the employee are stale from here on.
	if status == models.LeaveApproved && s.cache != nil {
		pattern := fmt.Sprintf("planning:%s:*", leave.EmployeeID)
		if err := s.cache.DeleteByPattern(ctx, pattern); err != nil {
			s.logger.Warn("failed to invalidate schedule cache", zap.String("employee_id", leave.EmployeeID), zap.Error(err))
		}
	}
	return leave, nil
}
