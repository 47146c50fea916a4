package repository

import (
	"context"
	"encoding/json"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krismos64/SmartPlanning-sub005/internal/models"
)

func scheduleRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "employee_id", "week", "year", "days", "total_hours", "strategy", "status", "generated_by", "created_at", "updated_at"})
}

func TestScheduleRepositoryFindByWeek(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewScheduleRepository(db)

	rows := scheduleRows().
		AddRow("s1", "e1", 22, 2025, []byte(`{}`), 35.0, "distribution", "draft", nil, time.Now(), time.Now())
	mock.ExpectQuery(regexp.QuoteMeta("FROM weekly_schedules WHERE week = $1 AND year = $2 ORDER BY employee_id ASC")).
		WithArgs(22, 2025).
		WillReturnRows(rows)

	schedules, err := repo.FindByWeek(context.Background(), 22, 2025)
	require.NoError(t, err)
	assert.Len(t, schedules, 1)
	assert.Equal(t, "e1", schedules[0].EmployeeID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestScheduleRepositoryUpsert(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewScheduleRepository(db)

	mock.ExpectExec("INSERT INTO weekly_schedules").
		WithArgs(sqlmock.AnyArg(), "e1", 22, 2025, sqlmock.AnyArg(), 35.0, "distribution", "draft", sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.Upsert(context.Background(), &models.WeeklySchedule{
		EmployeeID: "e1",
		Week:       22,
		Year:       2025,
		Days:       json.RawMessage(`{}`),
		TotalHours: 35,
		Strategy:   "distribution",
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestScheduleRepositoryPublishRequiresDraft(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewScheduleRepository(db)

	mock.ExpectExec("UPDATE weekly_schedules SET status = ").
		WithArgs("s1", models.SchedulePublished, sqlmock.AnyArg(), models.ScheduleDraft).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Publish(context.Background(), "s1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no draft")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLeaveRepositoryCreateDefaultsToPending(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewLeaveRepository(db)

	mock.ExpectExec("INSERT INTO leaves").
		WithArgs(sqlmock.AnyArg(), "e1", models.LeaveVacation, models.LeavePending, sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	leave := &models.Leave{
		EmployeeID: "e1",
		Type:       models.LeaveVacation,
		StartDate:  time.Date(2025, 5, 26, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2025, 5, 27, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, repo.Create(context.Background(), leave))
	assert.Equal(t, models.LeavePending, leave.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}
