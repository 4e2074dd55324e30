package swapapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/swapdesk/swapdesk/pkg/core/model"
)

// DayOffSwapInput is the payload for creating a day-off swap request. The
// shift window is required alongside the day-off exchange.
type DayOffSwapInput struct {
	OriginalDayOff    string     `json:"originalDayOff"`
	RequestedDayOff   string     `json:"requestedDayOff"`
	ShiftStartTime    time.Time  `json:"shiftStartTime"`
	ShiftEndTime      time.Time  `json:"shiftEndTime"`
	OvertimeStartTime *time.Time `json:"overtimeStartTime,omitempty"`
	OvertimeEndTime   *time.Time `json:"overtimeEndTime,omitempty"`
	Comment           string     `json:"comment,omitempty"`
}

type dayOffListResponse struct {
	apiResponse
	Requests []model.DayOffSwapRequest `json:"requests"`
}

// ListMyDayOffSwaps fetches the day-off swap requests the employee
// participates in.
func (c *Client) ListMyDayOffSwaps(ctx context.Context) ([]model.DayOffSwapRequest, error) {
	var resp dayOffListResponse
	if err := c.do(ctx, http.MethodGet, "/api/day-off-swap-requests/my", nil, &resp); err != nil {
		return nil, fmt.Errorf("failed to fetch day-off swap requests: %w", err)
	}
	return resp.Requests, nil
}

// ListDayOffSwaps fetches the day-off swap requests visible to the session's
// role.
func (c *Client) ListDayOffSwaps(ctx context.Context) ([]model.DayOffSwapRequest, error) {
	var resp dayOffListResponse
	if err := c.do(ctx, http.MethodGet, "/api/day-off-swap-requests/", nil, &resp); err != nil {
		return nil, fmt.Errorf("failed to fetch day-off swap requests: %w", err)
	}
	return resp.Requests, nil
}

// CreateDayOffSwap submits a new day-off swap request
func (c *Client) CreateDayOffSwap(ctx context.Context, input DayOffSwapInput) error {
	var resp apiResponse
	return c.do(ctx, http.MethodPost, "/api/day-off-swap-requests/", input, &resp)
}

// DeleteDayOffSwap removes a request
func (c *Client) DeleteDayOffSwap(ctx context.Context, id string) error {
	var resp apiResponse
	return c.do(ctx, http.MethodDelete, "/api/day-off-swap-requests/delete/"+url.PathEscape(id), nil, &resp)
}

// SetDayOffSwapStatus moves a request to a new status (approve/reject path)
func (c *Client) SetDayOffSwapStatus(ctx context.Context, update StatusUpdate) error {
	var resp apiResponse
	return c.do(ctx, http.MethodPut, "/api/day-off-swap-requests/status", update, &resp)
}

// AcceptMatch accepts one proposed match on a day-off swap request.
// Requester-only; the server rejects anyone else.
func (c *Client) AcceptMatch(ctx context.Context, requestID, matchID string) error {
	body := map[string]string{
		"requestId": requestID,
		"matchId":   matchID,
	}
	var resp apiResponse
	return c.do(ctx, http.MethodPost, "/api/day-off-swap-requests/accept-match", body, &resp)
}
