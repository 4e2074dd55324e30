package services

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/swapdesk/swapdesk/pkg/clients/swapapi"
	"github.com/swapdesk/swapdesk/pkg/core/model"
)

var validate = validator.New()

// ShiftSwapAPI defines the API operations for shift swap submissions
type ShiftSwapAPI interface {
	CreateShiftSwap(ctx context.Context, input swapapi.ShiftSwapInput) error
	UpdateShiftSwap(ctx context.Context, id string, input swapapi.ShiftSwapInput) error
	DeleteShiftSwap(ctx context.Context, id string) error
}

// ShiftSwapForm is the locally-validated form for a shift swap request
type ShiftSwapForm struct {
	Reason            string    `validate:"required"`
	ShiftStartTime    time.Time `validate:"required"`
	ShiftEndTime      time.Time `validate:"required,gtfield=ShiftStartTime"`
	OvertimeStartTime *time.Time
	OvertimeEndTime   *time.Time
	ReceiverUserID    string
}

// ValidateShiftSwapForm checks required fields and time ordering. The
// overtime window is optional but must be complete and ordered when present.
func ValidateShiftSwapForm(form ShiftSwapForm) error {
	if err := validate.Struct(form); err != nil {
		return validationError(RequiredFieldsMessage)
	}
	if (form.OvertimeStartTime == nil) != (form.OvertimeEndTime == nil) {
		return validationError(RequiredFieldsMessage)
	}
	if form.OvertimeStartTime != nil && !form.OvertimeEndTime.After(*form.OvertimeStartTime) {
		return validationError(RequiredFieldsMessage)
	}
	return nil
}

// SubmitShiftSwap validates the form and submits it. On a validation failure
// no network call is made.
func SubmitShiftSwap(ctx context.Context, api ShiftSwapAPI, logger *zap.Logger, form ShiftSwapForm) error {
	if err := ValidateShiftSwapForm(form); err != nil {
		logger.Debug("Shift swap form rejected locally", zap.Error(err))
		return err
	}

	logger.Info("Submitting shift swap request",
		zap.Time("shift_start", form.ShiftStartTime),
		zap.Time("shift_end", form.ShiftEndTime))

	return api.CreateShiftSwap(ctx, toShiftSwapInput(form))
}

// UpdateShiftSwap edits an existing request. Only the requester may edit, and
// only while the request has no recorded offers and nothing has been
// accepted.
func UpdateShiftSwap(ctx context.Context, api ShiftSwapAPI, logger *zap.Logger, viewerID string, current model.ShiftSwapRequest, form ShiftSwapForm) error {
	if err := canModifyShiftSwap(viewerID, current); err != nil {
		return err
	}
	if err := ValidateShiftSwapForm(form); err != nil {
		logger.Debug("Shift swap form rejected locally", zap.Error(err))
		return err
	}

	logger.Info("Updating shift swap request", zap.String("request_id", current.ID))
	return api.UpdateShiftSwap(ctx, current.ID, toShiftSwapInput(form))
}

// DeleteShiftSwap removes the viewer's own request under the same
// preconditions as editing.
func DeleteShiftSwap(ctx context.Context, api ShiftSwapAPI, logger *zap.Logger, viewerID string, current model.ShiftSwapRequest) error {
	if err := canModifyShiftSwap(viewerID, current); err != nil {
		return err
	}

	logger.Info("Deleting shift swap request", zap.String("request_id", current.ID))
	return api.DeleteShiftSwap(ctx, current.ID)
}

func canModifyShiftSwap(viewerID string, r model.ShiftSwapRequest) error {
	if r.RequesterUserID != viewerID {
		return preconditionError("only the requester can modify this request")
	}
	if r.Status != model.StatusPending {
		return preconditionError("only a pending request can be modified")
	}
	if len(r.Offers) > 0 || r.HasAcceptedOffer() {
		return preconditionError("this request already has offers and can no longer be modified")
	}
	return nil
}

func toShiftSwapInput(form ShiftSwapForm) swapapi.ShiftSwapInput {
	return swapapi.ShiftSwapInput{
		Reason:            form.Reason,
		ShiftStartTime:    form.ShiftStartTime,
		ShiftEndTime:      form.ShiftEndTime,
		OvertimeStartTime: form.OvertimeStartTime,
		OvertimeEndTime:   form.OvertimeEndTime,
		ReceiverUserID:    form.ReceiverUserID,
	}
}
