package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/krismos64/SmartPlanning-sub005/internal/models"
)

// CompanyRepository manages persistence for companies and teams.
type CompanyRepository struct {
	db *sqlx.DB
}

// NewCompanyRepository constructs a CompanyRepository.
func NewCompanyRepository(db *sqlx.DB) *CompanyRepository {
	return &CompanyRepository{db: db}
}

const companyColumns = "id, name, open_days, open_hours, min_hours_per_day, max_hours_per_day, mandatory_lunch_break, lunch_break_minutes, min_staff_per_slot, created_at, updated_at"

// FindByID fetches a company by ID.
func (r *CompanyRepository) FindByID(ctx context.Context, id string) (*models.Company, error) {
	query := fmt.Sprintf("SELECT %s FROM companies WHERE id = $1", companyColumns)
	var company models.Company
	if err := r.db.GetContext(ctx, &company, query, id); err != nil {
		return nil, err
	}
	return &company, nil
}

// Create inserts a new company record.
func (r *CompanyRepository) Create(ctx context.Context, company *models.Company) error {
	if company.ID == "" {
		company.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if company.CreatedAt.IsZero() {
		company.CreatedAt = now
	}
	company.UpdatedAt = now

	const query = `INSERT INTO companies (id, name, open_days, open_hours, min_hours_per_day, max_hours_per_day, mandatory_lunch_break, lunch_break_minutes, min_staff_per_slot, created_at, updated_at)
		VALUES (:id, :name, :open_days, :open_hours, :min_hours_per_day, :max_hours_per_day, :mandatory_lunch_break, :lunch_break_minutes, :min_staff_per_slot, :created_at, :updated_at)`
	if _, err := r.db.NamedExecContext(ctx, query, company); err != nil {
		return fmt.Errorf("create company: %w", err)
	}
	return nil
}

// Update modifies an existing company record.
func (r *CompanyRepository) Update(ctx context.Context, company *models.Company) error {
	company.UpdatedAt = time.Now().UTC()
	const query = `UPDATE companies SET name = :name, open_days = :open_days, open_hours = :open_hours, min_hours_per_day = :min_hours_per_day, max_hours_per_day = :max_hours_per_day, mandatory_lunch_break = :mandatory_lunch_break, lunch_break_minutes = :lunch_break_minutes, min_staff_per_slot = :min_staff_per_slot, updated_at = :updated_at WHERE id = :id`
	if _, err := r.db.NamedExecContext(ctx, query, company); err != nil {
		return fmt.Errorf("update company: %w", err)
	}
	return nil
}

// ListTeams returns every team of a company.
func (r *CompanyRepository) ListTeams(ctx context.Context, companyID string) ([]models.Team, error) {
	const query = `SELECT id, company_id, name, manager_id, created_at, updated_at FROM teams WHERE company_id = $1 ORDER BY name ASC`
	var teams []models.Team
	if err := r.db.SelectContext(ctx, &teams, query, companyID); err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	return teams, nil
}

// CreateTeam inserts a new team record.
func (r *CompanyRepository) CreateTeam(ctx context.Context, team *models.Team) error {
	if team.ID == "" {
		team.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if team.CreatedAt.IsZero() {
		team.CreatedAt = now
	}
	team.UpdatedAt = now

	const query = `INSERT INTO teams (id, company_id, name, manager_id, created_at, updated_at)
		VALUES (:id, :company_id, :name, :manager_id, :created_at, :updated_at)`
	if _, err := r.db.NamedExecContext(ctx, query, team); err != nil {
		return fmt.Errorf("create team: %w", err)
	}
	return nil
}
