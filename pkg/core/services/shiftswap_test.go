package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/swapdesk/swapdesk/pkg/core/model"
)

func validShiftForm() ShiftSwapForm {
	return ShiftSwapForm{
		Reason:         "dentist appointment",
		ShiftStartTime: time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC),
		ShiftEndTime:   time.Date(2025, 3, 10, 17, 0, 0, 0, time.UTC),
	}
}

func TestSubmitShiftSwap_Valid(t *testing.T) {
	api := &fakeAPI{}

	err := SubmitShiftSwap(context.Background(), api, zap.NewNop(), validShiftForm())

	require.NoError(t, err)
	assert.Equal(t, 1, api.createShiftCalls)
}

func TestSubmitShiftSwap_MissingShiftEndTime_NoNetworkCall(t *testing.T) {
	api := &fakeAPI{}
	form := validShiftForm()
	form.ShiftEndTime = time.Time{}

	err := SubmitShiftSwap(context.Background(), api, zap.NewNop(), form)

	require.ErrorIs(t, err, ErrValidation)
	assert.Contains(t, err.Error(), "Please fill in all required fields")
	assert.Equal(t, 0, api.totalCalls())
}

func TestSubmitShiftSwap_MissingReason_NoNetworkCall(t *testing.T) {
	api := &fakeAPI{}
	form := validShiftForm()
	form.Reason = ""

	err := SubmitShiftSwap(context.Background(), api, zap.NewNop(), form)

	require.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, 0, api.totalCalls())
}

func TestSubmitShiftSwap_EndBeforeStart(t *testing.T) {
	api := &fakeAPI{}
	form := validShiftForm()
	form.ShiftEndTime = form.ShiftStartTime.Add(-time.Hour)

	err := SubmitShiftSwap(context.Background(), api, zap.NewNop(), form)

	require.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, 0, api.totalCalls())
}

func TestSubmitShiftSwap_IncompleteOvertimeWindow(t *testing.T) {
	api := &fakeAPI{}
	form := validShiftForm()
	otStart := form.ShiftEndTime.Add(time.Hour)
	form.OvertimeStartTime = &otStart
	// No overtime end

	err := SubmitShiftSwap(context.Background(), api, zap.NewNop(), form)

	require.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, 0, api.totalCalls())
}

func TestSubmitShiftSwap_CompleteOvertimeWindow(t *testing.T) {
	api := &fakeAPI{}
	form := validShiftForm()
	otStart := form.ShiftEndTime.Add(time.Hour)
	otEnd := otStart.Add(2 * time.Hour)
	form.OvertimeStartTime = &otStart
	form.OvertimeEndTime = &otEnd

	err := SubmitShiftSwap(context.Background(), api, zap.NewNop(), form)

	require.NoError(t, err)
	assert.Equal(t, 1, api.createShiftCalls)
}

func ownPendingRequest(requesterID string) model.ShiftSwapRequest {
	return model.ShiftSwapRequest{
		ID:              "req1",
		RequesterUserID: requesterID,
		Status:          model.StatusPending,
	}
}

func TestDeleteShiftSwap_OwnUntouchedRequest(t *testing.T) {
	api := &fakeAPI{}

	err := DeleteShiftSwap(context.Background(), api, zap.NewNop(), "emp1", ownPendingRequest("emp1"))

	require.NoError(t, err)
	assert.Equal(t, 1, api.deleteShiftCalls)
}

func TestDeleteShiftSwap_NotRequester(t *testing.T) {
	api := &fakeAPI{}

	err := DeleteShiftSwap(context.Background(), api, zap.NewNop(), "emp2", ownPendingRequest("emp1"))

	require.ErrorIs(t, err, ErrPrecondition)
	assert.Equal(t, 0, api.totalCalls())
}

func TestDeleteShiftSwap_RequestHasOffers(t *testing.T) {
	api := &fakeAPI{}
	req := ownPendingRequest("emp1")
	req.Offers = []model.SwapOffer{{ID: "o1", OffererUserID: "emp9", Status: model.OfferOffered}}

	err := DeleteShiftSwap(context.Background(), api, zap.NewNop(), "emp1", req)

	require.ErrorIs(t, err, ErrPrecondition)
	assert.Equal(t, 0, api.totalCalls())
}

func TestDeleteShiftSwap_DecidedRequest_NoNetworkCall(t *testing.T) {
	api := &fakeAPI{}
	req := ownPendingRequest("emp1")
	req.Status = model.StatusApproved
	// No offers recorded; the status alone must block the call

	err := DeleteShiftSwap(context.Background(), api, zap.NewNop(), "emp1", req)

	require.ErrorIs(t, err, ErrPrecondition)
	assert.Equal(t, 0, api.totalCalls())
}

func TestUpdateShiftSwap_DecidedRequest_NoNetworkCall(t *testing.T) {
	api := &fakeAPI{}
	req := ownPendingRequest("emp1")
	req.Status = model.StatusRejected

	err := UpdateShiftSwap(context.Background(), api, zap.NewNop(), "emp1", req, validShiftForm())

	require.ErrorIs(t, err, ErrPrecondition)
	assert.Equal(t, 0, api.totalCalls())
}

func TestUpdateShiftSwap_OwnUntouchedRequest(t *testing.T) {
	api := &fakeAPI{}

	err := UpdateShiftSwap(context.Background(), api, zap.NewNop(), "emp1", ownPendingRequest("emp1"), validShiftForm())

	require.NoError(t, err)
	assert.Equal(t, 1, api.updateShiftCalls)
}

func TestUpdateShiftSwap_InvalidFormAfterPreconditions(t *testing.T) {
	api := &fakeAPI{}
	form := validShiftForm()
	form.Reason = ""

	err := UpdateShiftSwap(context.Background(), api, zap.NewNop(), "emp1", ownPendingRequest("emp1"), form)

	require.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, 0, api.totalCalls())
}

func TestSubmitDayOffSwap_Valid(t *testing.T) {
	api := &fakeAPI{}
	form := DayOffSwapForm{
		OriginalDayOff:  "2025-03-10",
		RequestedDayOff: "2025-03-17",
		ShiftStartTime:  time.Date(2025, 3, 11, 9, 0, 0, 0, time.UTC),
		ShiftEndTime:    time.Date(2025, 3, 11, 17, 0, 0, 0, time.UTC),
	}

	err := SubmitDayOffSwap(context.Background(), api, zap.NewNop(), form)

	require.NoError(t, err)
	assert.Equal(t, 1, api.createDayOffCalls)
}

func TestSubmitDayOffSwap_SameDates(t *testing.T) {
	api := &fakeAPI{}
	form := DayOffSwapForm{
		OriginalDayOff:  "2025-03-10",
		RequestedDayOff: "2025-03-10",
		ShiftStartTime:  time.Date(2025, 3, 11, 9, 0, 0, 0, time.UTC),
		ShiftEndTime:    time.Date(2025, 3, 11, 17, 0, 0, 0, time.UTC),
	}

	err := SubmitDayOffSwap(context.Background(), api, zap.NewNop(), form)

	require.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, 0, api.totalCalls())
}

func TestDeleteDayOffSwap_DecidedRequest_NoNetworkCall(t *testing.T) {
	api := &fakeAPI{}
	req := model.DayOffSwapRequest{
		ID:              "d1",
		RequesterUserID: "emp1",
		Status:          model.StatusApproved,
	}

	err := DeleteDayOffSwap(context.Background(), api, zap.NewNop(), "emp1", req)

	require.ErrorIs(t, err, ErrPrecondition)
	assert.Equal(t, 0, api.totalCalls())
}

func TestDeleteDayOffSwap_RequestHasMatches(t *testing.T) {
	api := &fakeAPI{}
	req := model.DayOffSwapRequest{
		ID:              "d1",
		RequesterUserID: "emp1",
		Status:          model.StatusMatched,
		Matches:         []model.DayOffMatch{{ID: "m1", MatcherUserID: "emp9", Status: model.OfferOffered}},
	}

	err := DeleteDayOffSwap(context.Background(), api, zap.NewNop(), "emp1", req)

	require.ErrorIs(t, err, ErrPrecondition)
	assert.Equal(t, 0, api.totalCalls())
}
