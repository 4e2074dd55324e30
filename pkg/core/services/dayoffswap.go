package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/swapdesk/swapdesk/pkg/clients/swapapi"
	"github.com/swapdesk/swapdesk/pkg/core/model"
)

// DayOffSwapAPI defines the API operations for day-off swap submissions
type DayOffSwapAPI interface {
	CreateDayOffSwap(ctx context.Context, input swapapi.DayOffSwapInput) error
	DeleteDayOffSwap(ctx context.Context, id string) error
}

// DayOffSwapForm is the locally-validated form for a day-off swap request.
// The shift window is required alongside the day-off exchange.
type DayOffSwapForm struct {
	OriginalDayOff    string    `validate:"required,datetime=2006-01-02"`
	RequestedDayOff   string    `validate:"required,datetime=2006-01-02"`
	ShiftStartTime    time.Time `validate:"required"`
	ShiftEndTime      time.Time `validate:"required,gtfield=ShiftStartTime"`
	OvertimeStartTime *time.Time
	OvertimeEndTime   *time.Time
	Comment           string
}

// ValidateDayOffSwapForm checks required fields and time ordering
func ValidateDayOffSwapForm(form DayOffSwapForm) error {
	if err := validate.Struct(form); err != nil {
		return validationError(RequiredFieldsMessage)
	}
	if form.OriginalDayOff == form.RequestedDayOff {
		return validationError("The requested day off must differ from the original day off")
	}
	if (form.OvertimeStartTime == nil) != (form.OvertimeEndTime == nil) {
		return validationError(RequiredFieldsMessage)
	}
	if form.OvertimeStartTime != nil && !form.OvertimeEndTime.After(*form.OvertimeStartTime) {
		return validationError(RequiredFieldsMessage)
	}
	return nil
}

// SubmitDayOffSwap validates the form and submits it. On a validation failure
// no network call is made.
func SubmitDayOffSwap(ctx context.Context, api DayOffSwapAPI, logger *zap.Logger, form DayOffSwapForm) error {
	if err := ValidateDayOffSwapForm(form); err != nil {
		logger.Debug("Day-off swap form rejected locally", zap.Error(err))
		return err
	}

	logger.Info("Submitting day-off swap request",
		zap.String("original", form.OriginalDayOff),
		zap.String("requested", form.RequestedDayOff))

	return api.CreateDayOffSwap(ctx, swapapi.DayOffSwapInput{
		OriginalDayOff:    form.OriginalDayOff,
		RequestedDayOff:   form.RequestedDayOff,
		ShiftStartTime:    form.ShiftStartTime,
		ShiftEndTime:      form.ShiftEndTime,
		OvertimeStartTime: form.OvertimeStartTime,
		OvertimeEndTime:   form.OvertimeEndTime,
		Comment:           form.Comment,
	})
}

// DeleteDayOffSwap removes the viewer's own request. Only the requester may
// delete, and only while the request has no recorded matches and nothing has
// been accepted.
func DeleteDayOffSwap(ctx context.Context, api DayOffSwapAPI, logger *zap.Logger, viewerID string, current model.DayOffSwapRequest) error {
	if current.RequesterUserID != viewerID {
		return preconditionError("only the requester can modify this request")
	}
	if current.Status != model.StatusPending {
		return preconditionError("only a pending request can be modified")
	}
	if len(current.Matches) > 0 || current.HasAcceptedMatch() {
		return preconditionError("this request already has matches and can no longer be modified")
	}

	logger.Info("Deleting day-off swap request", zap.String("request_id", current.ID))
	return api.DeleteDayOffSwap(ctx, current.ID)
}
