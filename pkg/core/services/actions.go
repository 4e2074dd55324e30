package services

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/swapdesk/swapdesk/pkg/clients/swapapi"
	"github.com/swapdesk/swapdesk/pkg/core/board"
	"github.com/swapdesk/swapdesk/pkg/core/model"
)

// StatusAPI defines the API operations for approve/reject dispatch
type StatusAPI interface {
	SetShiftSwapStatus(ctx context.Context, update swapapi.StatusUpdate) error
	SetDayOffSwapStatus(ctx context.Context, update swapapi.StatusUpdate) error
}

// NegotiationAPI defines the API operations for accepting peer offers/matches
type NegotiationAPI interface {
	AcceptSpecificOffer(ctx context.Context, requestID, offerID string) error
	AcceptMatch(ctx context.Context, requestID, matchID string) error
}

// CompanyAPI defines the company approval-path API operations
type CompanyAPI interface {
	ProcessRequest(ctx context.Context, input swapapi.ProcessInput) error
}

// ApproveRequest dispatches an approve for a single request. Approving a
// non-moderator's request requires a selected supervisor; this is checked
// locally and no call is made when it fails.
func ApproveRequest(
	ctx context.Context,
	api StatusAPI,
	logger *zap.Logger,
	kind board.Kind,
	requestID string,
	requesterPosition model.Position,
	supervisorID string,
	comment string,
) error {
	if requesterPosition != model.PositionModerator && supervisorID == "" {
		return preconditionError("Please select a supervisor before approving")
	}

	logger.Info("Approving request",
		zap.String("kind", string(kind)),
		zap.String("request_id", requestID),
		zap.String("supervisor_id", supervisorID))

	update := swapapi.StatusUpdate{
		RequestID:    requestID,
		Status:       model.StatusApproved,
		Comment:      comment,
		SupervisorID: supervisorID,
	}
	return dispatchStatus(ctx, api, kind, update)
}

// RejectRequest dispatches a reject. A non-empty reason is required; this is
// checked locally and no call is made when it fails.
func RejectRequest(
	ctx context.Context,
	api StatusAPI,
	logger *zap.Logger,
	kind board.Kind,
	requestID string,
	reason string,
) error {
	if strings.TrimSpace(reason) == "" {
		return preconditionError("A rejection reason is required")
	}

	logger.Info("Rejecting request",
		zap.String("kind", string(kind)),
		zap.String("request_id", requestID))

	update := swapapi.StatusUpdate{
		RequestID: requestID,
		Status:    model.StatusRejected,
		Comment:   reason,
	}
	return dispatchStatus(ctx, api, kind, update)
}

func dispatchStatus(ctx context.Context, api StatusAPI, kind board.Kind, update swapapi.StatusUpdate) error {
	if kind == board.KindDayOff {
		return api.SetDayOffSwapStatus(ctx, update)
	}
	return api.SetShiftSwapStatus(ctx, update)
}

// AcceptOffer accepts one peer offer on the viewer's own shift swap request
func AcceptOffer(ctx context.Context, api NegotiationAPI, logger *zap.Logger, viewerID string, request model.ShiftSwapRequest, offerID string) error {
	if request.RequesterUserID != viewerID {
		return preconditionError("only the requester can accept an offer")
	}

	logger.Info("Accepting offer",
		zap.String("request_id", request.ID),
		zap.String("offer_id", offerID))

	return api.AcceptSpecificOffer(ctx, request.ID, offerID)
}

// AcceptDayOffMatch accepts one proposed match on the viewer's own day-off
// swap request.
func AcceptDayOffMatch(ctx context.Context, api NegotiationAPI, logger *zap.Logger, viewerID string, request model.DayOffSwapRequest, matchID string) error {
	if request.RequesterUserID != viewerID {
		return preconditionError("only the requester can accept a match")
	}

	logger.Info("Accepting match",
		zap.String("request_id", request.ID),
		zap.String("match_id", matchID))

	return api.AcceptMatch(ctx, request.ID, matchID)
}

// ProcessRequest approves or rejects through the company path, with the same
// local preconditions as the direct status endpoints.
func ProcessRequest(
	ctx context.Context,
	api CompanyAPI,
	logger *zap.Logger,
	requestID string,
	action swapapi.ProcessAction,
	requesterPosition model.Position,
	supervisorID string,
	rejectionReason string,
) error {
	switch action {
	case swapapi.ProcessApprove:
		if requesterPosition != model.PositionModerator && supervisorID == "" {
			return preconditionError("Please select a supervisor before approving")
		}
	case swapapi.ProcessReject:
		if strings.TrimSpace(rejectionReason) == "" {
			return preconditionError("A rejection reason is required")
		}
	default:
		return preconditionError("unknown action: " + string(action))
	}

	logger.Info("Processing request",
		zap.String("request_id", requestID),
		zap.String("action", string(action)))

	return api.ProcessRequest(ctx, swapapi.ProcessInput{
		RequestID:       requestID,
		Action:          action,
		SupervisorID:    supervisorID,
		RejectionReason: rejectionReason,
	})
}
