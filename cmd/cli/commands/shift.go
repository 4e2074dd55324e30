package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/swapdesk/swapdesk/pkg/core/board"
	"github.com/swapdesk/swapdesk/pkg/core/model"
	"github.com/swapdesk/swapdesk/pkg/core/services"
	"github.com/swapdesk/swapdesk/pkg/session"
)

// ShiftCmd creates the shift command group
func ShiftCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shift",
		Short: "Manage shift swap requests",
	}

	cmd.AddCommand(shiftCreateCmd(app))
	cmd.AddCommand(shiftUpdateCmd(app))
	cmd.AddCommand(shiftDeleteCmd(app))
	cmd.AddCommand(shiftAcceptOfferCmd(app))
	cmd.AddCommand(shiftApproveCmd(app))
	cmd.AddCommand(shiftRejectCmd(app))

	return cmd
}

// shiftFormFromFlags reads the create/update flags into a form
func shiftFormFromFlags(cmd *cobra.Command) (services.ShiftSwapForm, error) {
	reason, _ := cmd.Flags().GetString("reason")
	start, _ := cmd.Flags().GetString("start")
	end, _ := cmd.Flags().GetString("end")
	otStart, _ := cmd.Flags().GetString("overtime-start")
	otEnd, _ := cmd.Flags().GetString("overtime-end")
	receiver, _ := cmd.Flags().GetString("receiver")

	var form services.ShiftSwapForm
	var err error
	form.Reason = reason
	form.ReceiverUserID = receiver
	if form.ShiftStartTime, err = parseTimeFlag(start); err != nil {
		return form, err
	}
	if form.ShiftEndTime, err = parseTimeFlag(end); err != nil {
		return form, err
	}
	if form.OvertimeStartTime, err = parseOptionalTimeFlag(otStart); err != nil {
		return form, err
	}
	if form.OvertimeEndTime, err = parseOptionalTimeFlag(otEnd); err != nil {
		return form, err
	}
	return form, nil
}

func addShiftFormFlags(cmd *cobra.Command) {
	cmd.Flags().String("reason", "", "Why the shift needs to be swapped")
	cmd.Flags().String("start", "", "Shift start time (2006-01-02 15:04)")
	cmd.Flags().String("end", "", "Shift end time (2006-01-02 15:04)")
	cmd.Flags().String("overtime-start", "", "Optional overtime start time")
	cmd.Flags().String("overtime-end", "", "Optional overtime end time")
	cmd.Flags().String("receiver", "", "Optional specific colleague to swap with")
}

func shiftCreateCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Submit a new shift swap request",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			form, err := shiftFormFromFlags(cmd)
			if err != nil {
				return err
			}

			api, sess, err := app.ActiveAPI()
			if err != nil {
				return err
			}

			if err := services.SubmitShiftSwap(app.Ctx, api, app.Logger, form); err != nil {
				return app.HandleAPIError(sess, err)
			}

			fmt.Println("\n✓ Shift swap request submitted")
			return app.reloadAndShow(sess)
		},
	}
	addShiftFormFlags(cmd)
	return cmd
}

func shiftUpdateCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <request_id>",
		Short: "Edit one of your own pending shift swap requests",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			form, err := shiftFormFromFlags(cmd)
			if err != nil {
				return err
			}

			api, sess, err := app.ActiveAPI()
			if err != nil {
				return err
			}

			current, err := app.findShiftRequest(api, sess, args[0])
			if err != nil {
				return err
			}

			if err := services.UpdateShiftSwap(app.Ctx, api, app.Logger, sess.Profile.ID, *current, form); err != nil {
				return app.HandleAPIError(sess, err)
			}

			fmt.Println("\n✓ Shift swap request updated")
			return app.reloadAndShow(sess)
		},
	}
	addShiftFormFlags(cmd)
	return cmd
}

func shiftDeleteCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <request_id>",
		Short: "Delete one of your own shift swap requests",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			api, sess, err := app.ActiveAPI()
			if err != nil {
				return err
			}

			current, err := app.findShiftRequest(api, sess, args[0])
			if err != nil {
				return err
			}

			if err := services.DeleteShiftSwap(app.Ctx, api, app.Logger, sess.Profile.ID, *current); err != nil {
				return app.HandleAPIError(sess, err)
			}

			fmt.Println("\n✓ Shift swap request deleted")
			return app.reloadAndShow(sess)
		},
	}
}

func shiftAcceptOfferCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "accept-offer <request_id> <offer_id>",
		Short: "Accept a specific peer offer on your request",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			api, sess, err := app.ActiveAPI()
			if err != nil {
				return err
			}

			current, err := app.findShiftRequest(api, sess, args[0])
			if err != nil {
				return err
			}

			if err := services.AcceptOffer(app.Ctx, api, app.Logger, sess.Profile.ID, *current, args[1]); err != nil {
				return app.HandleAPIError(sess, err)
			}

			fmt.Println("\n✓ Offer accepted")
			return app.reloadAndShow(sess)
		},
	}
}

func shiftApproveCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "approve <request_id>",
		Short: "Approve a shift swap request (supervisor)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			supervisorID, _ := cmd.Flags().GetString("supervisor")
			comment, _ := cmd.Flags().GetString("comment")

			api, sess, err := app.ActiveAPI()
			if err != nil {
				return err
			}

			current, err := app.findShiftRequest(api, sess, args[0])
			if err != nil {
				return err
			}

			err = services.ApproveRequest(app.Ctx, api, app.Logger,
				board.KindShift, current.ID, current.RequesterPosition, supervisorID, comment)
			if err != nil {
				return app.HandleAPIError(sess, err)
			}

			fmt.Println("\n✓ Request approved")
			return app.reloadAndShow(sess)
		},
	}
	cmd.Flags().String("supervisor", "", "Supervisor assigned to the approval (required unless the requester is a moderator)")
	cmd.Flags().String("comment", "", "Optional approval note")
	return cmd
}

func shiftRejectCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reject <request_id>",
		Short: "Reject a shift swap request (supervisor)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reason, _ := cmd.Flags().GetString("reason")

			api, sess, err := app.ActiveAPI()
			if err != nil {
				return err
			}

			err = services.RejectRequest(app.Ctx, api, app.Logger, board.KindShift, args[0], reason)
			if err != nil {
				return app.HandleAPIError(sess, err)
			}

			fmt.Println("\n✓ Request rejected")
			return app.reloadAndShow(sess)
		},
	}
	cmd.Flags().String("reason", "", "Reason shown to the requester (required)")
	return cmd
}

// findShiftRequest loads a fresh board and looks a request up by ID, so
// preconditions are checked against current server state rather than a stale
// listing.
func (app *AppContext) findShiftRequest(api services.BoardFetcher, sess session.Session, id string) (*model.ShiftSwapRequest, error) {
	b, err := services.LoadBoard(app.Ctx, api, app.Logger, Viewer(sess))
	if err != nil {
		return nil, app.HandleAPIError(sess, err)
	}
	for i := range b.ShiftRequests {
		if b.ShiftRequests[i].ID == id {
			return &b.ShiftRequests[i], nil
		}
	}
	return nil, fmt.Errorf("shift swap request not found: %s", id)
}

func (app *AppContext) findDayOffRequest(api services.BoardFetcher, sess session.Session, id string) (*model.DayOffSwapRequest, error) {
	b, err := services.LoadBoard(app.Ctx, api, app.Logger, Viewer(sess))
	if err != nil {
		return nil, app.HandleAPIError(sess, err)
	}
	for i := range b.DayOffRequests {
		if b.DayOffRequests[i].ID == id {
			return &b.DayOffRequests[i], nil
		}
	}
	return nil, fmt.Errorf("day-off swap request not found: %s", id)
}
