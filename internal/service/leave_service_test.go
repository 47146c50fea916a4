package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krismos64/SmartPlanning-sub005/internal/dto"
	"github.com/krismos64/SmartPlanning-sub005/internal/models"
	appErrors "github.com/krismos64/SmartPlanning-sub005/pkg/errors"
)

type stubLeaveStore struct {
	leaves   map[string]*models.Leave
	created  []*models.Leave
	statuses map[string]models.LeaveStatus
}

func newStubLeaveStore() *stubLeaveStore {
	return &stubLeaveStore{
		leaves:   make(map[string]*models.Leave),
		statuses: make(map[string]models.LeaveStatus),
	}
}

func (s *stubLeaveStore) List(_ context.Context, _ models.LeaveFilter) ([]models.Leave, int, error) {
	out := make([]models.Leave, 0, len(s.leaves))
	for _, leave := range s.leaves {
		out = append(out, *leave)
	}
	return out, len(out), nil
}

func (s *stubLeaveStore) FindByID(_ context.Context, id string) (*models.Leave, error) {
	leave, ok := s.leaves[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	copied := *leave
	return &copied, nil
}

func (s *stubLeaveStore) Create(_ context.Context, leave *models.Leave) error {
	s.created = append(s.created, leave)
	return nil
}

func (s *stubLeaveStore) UpdateStatus(_ context.Context, id string, status models.LeaveStatus) error {
	s.statuses[id] = status
	s.leaves[id].Status = status
	return nil
}

type patternRecorder struct {
	patterns []string
}

func (p *patternRecorder) DeleteByPattern(_ context.Context, pattern string) error {
	p.patterns = append(p.patterns, pattern)
	return nil
}

func TestLeaveCreateDefaultsToPending(t *testing.T) {
	store := newStubLeaveStore()
	svc := NewLeaveService(store, nil, nil, nil)

	leave, err := svc.Create(context.Background(), dto.CreateLeaveRequest{
		EmployeeID: "0b7e915e-3f83-4a7c-9d3f-0d2a9b8c3f11",
		Type:       "vacation",
		StartDate:  "2025-03-03",
		EndDate:    "2025-03-05",
	})
	require.NoError(t, err)
	assert.Equal(t, models.LeavePending, leave.Status)
	assert.Equal(t, models.LeaveVacation, leave.Type)
	require.Len(t, store.created, 1)
}

func TestLeaveCreateRejectsInvertedRange(t *testing.T) {
	svc := NewLeaveService(newStubLeaveStore(), nil, nil, nil)

	_, err := svc.Create(context.Background(), dto.CreateLeaveRequest{
		EmployeeID: "0b7e915e-3f83-4a7c-9d3f-0d2a9b8c3f11",
		Type:       "sick",
		StartDate:  "2025-03-05",
		EndDate:    "2025-03-03",
	})
	require.Error(t, err)

	var appErr *appErrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
}

func TestLeaveApprovalInvalidatesCache(t *testing.T) {
	store := newStubLeaveStore()
	store.leaves["leave-1"] = &models.Leave{
		ID:         "leave-1",
		EmployeeID: "emp-1",
		Type:       models.LeaveVacation,
		Status:     models.LeavePending,
		StartDate:  time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC),
	}
	recorder := &patternRecorder{}
	svc := NewLeaveService(store, recorder, nil, nil)

	leave, err := svc.Decide(context.Background(), "leave-1", dto.DecideLeaveRequest{Status: "approved"})
	require.NoError(t, err)
	assert.Equal(t, models.LeaveApproved, leave.Status)
	assert.Equal(t, []string{"planning:emp-1:*"}, recorder.patterns)
}

func TestLeaveRejectionKeepsCache(t *testing.T) {
	store := newStubLeaveStore()
	store.leaves["leave-1"] = &models.Leave{
		ID:         "leave-1",
		EmployeeID: "emp-1",
		Status:     models.LeavePending,
	}
	recorder := &patternRecorder{}
	svc := NewLeaveService(store, recorder, nil, nil)

	leave, err := svc.Decide(context.Background(), "leave-1", dto.DecideLeaveRequest{Status: "rejected"})
	require.NoError(t, err)
	assert.Equal(t, models.LeaveRejected, leave.Status)
	assert.Empty(t, recorder.patterns)
}

func TestLeaveDecideConflictsWhenAlreadyDecided(t *testing.T) {
	store := newStubLeaveStore()
	store.leaves["leave-1"] = &models.Leave{
		ID:         "leave-1",
		EmployeeID: "emp-1",
		Status:     models.LeaveApproved,
	}
	svc := NewLeaveService(store, nil, nil, nil)

	_, err := svc.Decide(context.Background(), "leave-1", dto.DecideLeaveRequest{Status: "rejected"})
	require.Error(t, err)

	var appErr *appErrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, appErrors.ErrConflict.Code, appErr.Code)
}

func TestLeaveDecideNotFound(t *testing.T) {
	svc := NewLeaveService(newStubLeaveStore(), nil, nil, nil)

	_, err := svc.Decide(context.Background(), "missing", dto.DecideLeaveRequest{Status: "approved"})
	require.Error(t, err)

	var appErr *appErrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErr.Code)
}
