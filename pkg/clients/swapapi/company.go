package swapapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/swapdesk/swapdesk/pkg/core/model"
)

// AllRequests holds both request collections for the whole company
type AllRequests struct {
	ShiftRequests  []model.ShiftSwapRequest  `json:"shiftRequests"`
	DayOffRequests []model.DayOffSwapRequest `json:"dayOffRequests"`
}

type allRequestsResponse struct {
	apiResponse
	AllRequests
}

// CompanyAllRequests fetches every request in the company in one call
func (c *Client) CompanyAllRequests(ctx context.Context) (*AllRequests, error) {
	var resp allRequestsResponse
	if err := c.do(ctx, http.MethodGet, "/api/employee-requests/company/all-requests", nil, &resp); err != nil {
		return nil, fmt.Errorf("failed to fetch company requests: %w", err)
	}
	return &resp.AllRequests, nil
}

// ProcessAction is the company-side decision on a pending request
type ProcessAction string

const (
	ProcessApprove ProcessAction = "approve"
	ProcessReject  ProcessAction = "reject"
)

// ProcessInput is the payload for the company approval endpoint. SupervisorID
// accompanies an approve, RejectionReason a reject.
type ProcessInput struct {
	RequestID       string        `json:"requestId"`
	Action          ProcessAction `json:"action"`
	SupervisorID    string        `json:"supervisorId,omitempty"`
	RejectionReason string        `json:"rejectionReason,omitempty"`
}

// ProcessRequest approves or rejects a request through the company path
func (c *Client) ProcessRequest(ctx context.Context, input ProcessInput) error {
	var resp apiResponse
	return c.do(ctx, http.MethodPost, "/api/employee-requests/process", input, &resp)
}
