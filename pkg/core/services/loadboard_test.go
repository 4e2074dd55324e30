package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/swapdesk/swapdesk/pkg/clients/swapapi"
	"github.com/swapdesk/swapdesk/pkg/core/board"
	"github.com/swapdesk/swapdesk/pkg/core/model"
)

func TestLoadBoard_EmployeeAppliesRelevance(t *testing.T) {
	now := time.Now()
	api := &fakeAPI{
		shiftList: []model.ShiftSwapRequest{
			{ID: "s1", RequesterUserID: "emp1", Status: model.StatusPending, CreatedAt: now},
			{ID: "s2", RequesterUserID: "emp2", Status: model.StatusPending, CreatedAt: now},
		},
		dayOffList: []model.DayOffSwapRequest{
			{ID: "d1", RequesterUserID: "emp1", Status: model.StatusPending, CreatedAt: now},
		},
	}

	viewer := board.Viewer{Role: model.RoleEmployee, UserID: "emp1"}
	b, err := LoadBoard(context.Background(), api, zap.NewNop(), viewer)

	require.NoError(t, err)
	require.Len(t, b.ShiftRequests, 1)
	assert.Equal(t, "s1", b.ShiftRequests[0].ID)
	assert.Len(t, b.DayOffRequests, 1)
}

func TestLoadBoard_CompanyUsesCombinedEndpoint(t *testing.T) {
	api := &fakeAPI{
		allShift:  []model.ShiftSwapRequest{{ID: "s1", Status: model.StatusPending}},
		allDayOff: []model.DayOffSwapRequest{{ID: "d1", Status: model.StatusApproved}},
	}

	viewer := board.Viewer{Role: model.RoleCompany, UserID: "c1"}
	b, err := LoadBoard(context.Background(), api, zap.NewNop(), viewer)

	require.NoError(t, err)
	assert.Len(t, b.ShiftRequests, 1)
	assert.Len(t, b.DayOffRequests, 1)
	assert.Equal(t, 0, api.listShiftCalls)
}

func TestLoadBoard_UnauthorizedPropagates(t *testing.T) {
	api := &fakeAPI{err: swapapi.ErrUnauthorized}

	viewer := board.Viewer{Role: model.RoleSupervisor, UserID: "sup1"}
	b, err := LoadBoard(context.Background(), api, zap.NewNop(), viewer)

	require.ErrorIs(t, err, swapapi.ErrUnauthorized)
	assert.Nil(t, b)
}

func TestBoard_SelectorsAreDerivedOnDemand(t *testing.T) {
	now := time.Now()
	api := &fakeAPI{
		allShift: []model.ShiftSwapRequest{
			{ID: "s1", RequesterName: "Sara Ali", Reason: "clinic", Status: model.StatusPending, CreatedAt: now},
			{ID: "s2", RequesterName: "Bob Jones", Reason: "travel", Status: model.StatusApproved, CreatedAt: now.Add(time.Hour)},
		},
	}

	viewer := board.Viewer{Role: model.RoleCompany, UserID: "c1"}
	b, err := LoadBoard(context.Background(), api, zap.NewNop(), viewer)
	require.NoError(t, err)

	stats := b.Stats()
	assert.Equal(t, 2, stats.Total)
	assert.Equal(t, 1, stats.Pending)
	assert.Equal(t, 1, stats.Approved)

	shiftOut, _ := b.Filter(board.Query{Search: "sara"})
	require.Len(t, shiftOut, 1)
	assert.Equal(t, "s1", shiftOut[0].ID)

	recent := b.Recent(1)
	require.Len(t, recent, 1)
	assert.Equal(t, "s2", recent[0].ID)

	// Selectors never mutate the snapshot
	assert.Len(t, b.ShiftRequests, 2)
}

func TestValidateCredentials_PerRoleFetch(t *testing.T) {
	api := &fakeAPI{}

	err := ValidateCredentials(context.Background(), api, zap.NewNop(), model.RoleEmployee)
	require.NoError(t, err)
	assert.Equal(t, 1, api.listShiftCalls)

	err = ValidateCredentials(context.Background(), api, zap.NewNop(), model.Role("intern"))
	require.ErrorIs(t, err, ErrPrecondition)
}
