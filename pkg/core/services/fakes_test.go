package services

import (
	"context"
	"io"

	"github.com/swapdesk/swapdesk/pkg/clients/swapapi"
	"github.com/swapdesk/swapdesk/pkg/core/model"
)

// fakeAPI records every call so tests can assert that validation failures
// issue zero network calls.
type fakeAPI struct {
	err error

	createShiftCalls  int
	updateShiftCalls  int
	deleteShiftCalls  int
	createDayOffCalls int
	deleteDayOffCalls int
	uploadCalls       int
	processCalls      int
	rosterCalls       int

	statusUpdates  []swapapi.StatusUpdate
	acceptedOffers [][2]string
	acceptedMatch  [][2]string
	processInputs  []swapapi.ProcessInput

	shiftList  []model.ShiftSwapRequest
	dayOffList []model.DayOffSwapRequest
	allShift   []model.ShiftSwapRequest
	allDayOff  []model.DayOffSwapRequest

	listShiftCalls int
	uploadInserted int
}

func (f *fakeAPI) totalCalls() int {
	return f.createShiftCalls + f.updateShiftCalls + f.deleteShiftCalls +
		f.createDayOffCalls + f.deleteDayOffCalls + f.uploadCalls + f.processCalls +
		f.rosterCalls + len(f.statusUpdates) + len(f.acceptedOffers) +
		len(f.acceptedMatch) + f.listShiftCalls
}

func (f *fakeAPI) CreateShiftSwap(ctx context.Context, input swapapi.ShiftSwapInput) error {
	f.createShiftCalls++
	return f.err
}

func (f *fakeAPI) UpdateShiftSwap(ctx context.Context, id string, input swapapi.ShiftSwapInput) error {
	f.updateShiftCalls++
	return f.err
}

func (f *fakeAPI) DeleteShiftSwap(ctx context.Context, id string) error {
	f.deleteShiftCalls++
	return f.err
}

func (f *fakeAPI) CreateDayOffSwap(ctx context.Context, input swapapi.DayOffSwapInput) error {
	f.createDayOffCalls++
	return f.err
}

func (f *fakeAPI) DeleteDayOffSwap(ctx context.Context, id string) error {
	f.deleteDayOffCalls++
	return f.err
}

func (f *fakeAPI) SetShiftSwapStatus(ctx context.Context, update swapapi.StatusUpdate) error {
	f.statusUpdates = append(f.statusUpdates, update)
	return f.err
}

func (f *fakeAPI) SetDayOffSwapStatus(ctx context.Context, update swapapi.StatusUpdate) error {
	f.statusUpdates = append(f.statusUpdates, update)
	return f.err
}

func (f *fakeAPI) AcceptSpecificOffer(ctx context.Context, requestID, offerID string) error {
	f.acceptedOffers = append(f.acceptedOffers, [2]string{requestID, offerID})
	return f.err
}

func (f *fakeAPI) AcceptMatch(ctx context.Context, requestID, matchID string) error {
	f.acceptedMatch = append(f.acceptedMatch, [2]string{requestID, matchID})
	return f.err
}

func (f *fakeAPI) ProcessRequest(ctx context.Context, input swapapi.ProcessInput) error {
	f.processCalls++
	f.processInputs = append(f.processInputs, input)
	return f.err
}

func (f *fakeAPI) CreateEmployeeID(ctx context.Context, input swapapi.EmployeeIDInput) error {
	f.rosterCalls++
	return f.err
}

func (f *fakeAPI) DeleteEmployeeID(ctx context.Context, id string) error {
	f.rosterCalls++
	return f.err
}

func (f *fakeAPI) UploadEmployeeIDs(ctx context.Context, filename string, content io.Reader) (int, error) {
	f.uploadCalls++
	return f.uploadInserted, f.err
}

func (f *fakeAPI) ListShiftSwaps(ctx context.Context) ([]model.ShiftSwapRequest, error) {
	f.listShiftCalls++
	return f.shiftList, f.err
}

func (f *fakeAPI) ListDayOffSwaps(ctx context.Context) ([]model.DayOffSwapRequest, error) {
	return f.dayOffList, f.err
}

func (f *fakeAPI) ListMyDayOffSwaps(ctx context.Context) ([]model.DayOffSwapRequest, error) {
	return f.dayOffList, f.err
}

func (f *fakeAPI) CompanyAllRequests(ctx context.Context) (*swapapi.AllRequests, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &swapapi.AllRequests{ShiftRequests: f.allShift, DayOffRequests: f.allDayOff}, nil
}
