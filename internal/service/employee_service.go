package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/krismos64/SmartPlanning-sub005/internal/dto"
	"github.com/krismos64/SmartPlanning-sub005/internal/models"
	appErrors "github.com/krismos64/SmartPlanning-sub005/pkg/errors"
)

type employeeRepository interface {
	List(ctx context.Context, filter models.EmployeeFilter) ([]models.Employee, int, error)
	FindByID(ctx context.Context, id string) (*models.Employee, error)
	Create(ctx context.Context, employee *models.Employee) error
	Update(ctx context.Context, employee *models.Employee) error
	Deactivate(ctx context.Context, id string) error
}

// EmployeeService provides employee management use cases.
type EmployeeService struct {
	repo      employeeRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewEmployeeService constructs an EmployeeService.
func NewEmployeeService(repo employeeRepository, validate *validator.Validate, logger *zap.Logger) *EmployeeService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EmployeeService{repo: repo, validator: validate, logger: logger}
}

// List returns employees with pagination metadata.
func (s *EmployeeService) List(ctx context.Context, query dto.ListEmployeesQuery) ([]models.Employee, *models.Pagination, error) {
	filter := models.EmployeeFilter{
		CompanyID: query.CompanyID,
		TeamID:    query.TeamID,
		Search:    query.Search,
		Active:    query.Active,
		Page:      query.Page,
		PageSize:  query.PageSize,
	}
	employees, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list employees")
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	size := filter.PageSize
	if size <= 0 || size > 100 {
		size = 20
	}
	return employees, &models.Pagination{Page: page, PageSize: size, TotalCount: total}, nil
}

// Get fetches one employee by ID.
func (s *EmployeeService) Get(ctx context.Context, id string) (*models.Employee, error) {
	employee, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "employee not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load employee")
	}
	return employee, nil
}

// Create registers a new employee.
func (s *EmployeeService) Create(ctx context.Context, req dto.CreateEmployeeRequest) (*models.Employee, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid employee payload")
	}

	employee := &models.Employee{
		CompanyID:     req.CompanyID,
		TeamID:        req.TeamID,
		FullName:      req.FullName,
		Email:         req.Email,
		ContractHours: req.ContractHours,
		RestDay:       req.RestDay,
		Preferences:   models.JSONDocument(req.Preferences),
		Active:        true,
	}
	if err := s.repo.Create(ctx, employee); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create employee")
	}
	return employee, nil
}

// Update patches mutable fields of an existing employee.
func (s *EmployeeService) Update(ctx context.Context, id string, req dto.UpdateEmployeeRequest) (*models.Employee, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid employee payload")
	}

	employee, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.TeamID != nil {
		employee.TeamID = req.TeamID
	}
	if req.FullName != nil {
		employee.FullName = *req.FullName
	}
	if req.ContractHours != nil {
		employee.ContractHours = *req.ContractHours
	}
	if req.RestDay != nil {
		employee.RestDay = req.RestDay
	}
	if req.Preferences != nil {
		employee.Preferences = models.JSONDocument(req.Preferences)
	}
	if req.Active != nil {
		employee.Active = *req.Active
	}

	if err := s.repo.Update(ctx, employee); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update employee")
	}
	return employee, nil
}

// Deactivate marks an employee inactive, removing them from future rosters.
func (s *EmployeeService) Deactivate(ctx context.Context, id string) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Deactivate(ctx, id); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to deactivate employee")
	}
	return nil
}
