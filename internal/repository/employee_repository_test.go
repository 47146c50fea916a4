package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krismos64/SmartPlanning-sub005/internal/models"
)

func newRepoMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return sqlx.NewDb(db, "sqlmock"), mock, func() { db.Close() }
}

func employeeRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "company_id", "team_id", "user_id", "full_name", "email", "contract_hours", "rest_day", "preferences", "active", "created_at", "updated_at"})
}

func TestEmployeeRepositoryList(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewEmployeeRepository(db)

	rows := employeeRows().
		AddRow("e1", "c1", nil, nil, "Alice Martin", "alice@example.com", 35.0, nil, nil, true, time.Now(), time.Now())
	mock.ExpectQuery(regexp.QuoteMeta("SELECT " + employeeColumns + " FROM employees WHERE 1=1 ORDER BY created_at DESC LIMIT 20 OFFSET 0")).
		WillReturnRows(rows)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM employees WHERE 1=1")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	list, total, err := repo.List(context.Background(), models.EmployeeFilter{})
	require.NoError(t, err)
	assert.Len(t, list, 1)
	assert.Equal(t, 1, total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEmployeeRepositoryListFiltersByCompany(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewEmployeeRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM employees WHERE 1=1 AND company_id = $1")).
		WithArgs("c1").
		WillReturnRows(employeeRows())
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM employees WHERE 1=1 AND company_id = $1")).
		WithArgs("c1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	_, total, err := repo.List(context.Background(), models.EmployeeFilter{CompanyID: "c1"})
	require.NoError(t, err)
	assert.Equal(t, 0, total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEmployeeRepositoryFindActiveByCompany(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewEmployeeRepository(db)

	rows := employeeRows().
		AddRow("e1", "c1", nil, nil, "Alice Martin", "alice@example.com", 35.0, nil, nil, true, time.Now(), time.Now()).
		AddRow("e2", "c1", nil, nil, "Bob Durand", "bob@example.com", 28.0, nil, nil, true, time.Now(), time.Now())
	mock.ExpectQuery(regexp.QuoteMeta("FROM employees WHERE company_id = $1 AND active = TRUE ORDER BY full_name ASC")).
		WithArgs("c1").
		WillReturnRows(rows)

	employees, err := repo.FindActiveByCompany(context.Background(), "c1")
	require.NoError(t, err)
	assert.Len(t, employees, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEmployeeRepositoryCreateAndDeactivate(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewEmployeeRepository(db)

	mock.ExpectExec("INSERT INTO employees").
		WithArgs(sqlmock.AnyArg(), "c1", sqlmock.AnyArg(), sqlmock.AnyArg(), "Alice Martin", "alice@example.com", 35.0, sqlmock.AnyArg(), sqlmock.AnyArg(), true, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.Create(context.Background(), &models.Employee{
		CompanyID:     "c1",
		FullName:      "Alice Martin",
		Email:         "alice@example.com",
		ContractHours: 35,
		Active:        true,
	})
	require.NoError(t, err)

	mock.ExpectExec("UPDATE employees SET active = FALSE").
		WithArgs("e1", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, repo.Deactivate(context.Background(), "e1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
