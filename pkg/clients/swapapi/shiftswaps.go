package swapapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/swapdesk/swapdesk/pkg/core/model"
)

// ShiftSwapInput is the payload for creating or updating a shift swap request
type ShiftSwapInput struct {
	Reason            string     `json:"reason"`
	ShiftStartTime    time.Time  `json:"shiftStartTime"`
	ShiftEndTime      time.Time  `json:"shiftEndTime"`
	OvertimeStartTime *time.Time `json:"overtimeStartTime,omitempty"`
	OvertimeEndTime   *time.Time `json:"overtimeEndTime,omitempty"`
	ReceiverUserID    string     `json:"receiverUserId,omitempty"`
}

// StatusUpdate is the payload for the status endpoints. Comment carries the
// rejection reason or approval note; SupervisorID is required by the server
// when approving a non-moderator's request.
type StatusUpdate struct {
	RequestID    string              `json:"requestId"`
	Status       model.RequestStatus `json:"status"`
	Comment      string              `json:"comment,omitempty"`
	SupervisorID string              `json:"supervisorId,omitempty"`
}

type shiftListResponse struct {
	apiResponse
	Requests []model.ShiftSwapRequest `json:"requests"`
}

// ListShiftSwaps fetches the shift swap requests visible to the session's
// role. Relevance narrowing beyond what the server applies happens in the
// board package.
func (c *Client) ListShiftSwaps(ctx context.Context) ([]model.ShiftSwapRequest, error) {
	var resp shiftListResponse
	if err := c.do(ctx, http.MethodGet, "/api/shift-swap-requests", nil, &resp); err != nil {
		return nil, fmt.Errorf("failed to fetch shift swap requests: %w", err)
	}
	return resp.Requests, nil
}

// CreateShiftSwap submits a new shift swap request
func (c *Client) CreateShiftSwap(ctx context.Context, input ShiftSwapInput) error {
	var resp apiResponse
	return c.do(ctx, http.MethodPost, "/api/shift-swap-requests/", input, &resp)
}

// UpdateShiftSwap replaces an existing request's fields
func (c *Client) UpdateShiftSwap(ctx context.Context, id string, input ShiftSwapInput) error {
	var resp apiResponse
	return c.do(ctx, http.MethodPut, "/api/shift-swap-requests/update/"+url.PathEscape(id), input, &resp)
}

// DeleteShiftSwap removes a request
func (c *Client) DeleteShiftSwap(ctx context.Context, id string) error {
	var resp apiResponse
	return c.do(ctx, http.MethodDelete, "/api/shift-swap-requests/delete/"+url.PathEscape(id), nil, &resp)
}

// SetShiftSwapStatus moves a request to a new status (approve/reject path)
func (c *Client) SetShiftSwapStatus(ctx context.Context, update StatusUpdate) error {
	var resp apiResponse
	return c.do(ctx, http.MethodPut, "/api/shift-swap-requests/status", update, &resp)
}

// AcceptSpecificOffer accepts one peer offer out of a request's negotiation
// history. Requester-only; the server rejects anyone else.
func (c *Client) AcceptSpecificOffer(ctx context.Context, requestID, offerID string) error {
	body := map[string]string{
		"requestId": requestID,
		"offerId":   offerID,
	}
	var resp apiResponse
	return c.do(ctx, http.MethodPost, "/api/shift-swap-requests/accept-specific-offer", body, &resp)
}
