package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/swapdesk/swapdesk/pkg/core/board"
	"github.com/swapdesk/swapdesk/pkg/core/services"
)

// DayOffCmd creates the dayoff command group
func DayOffCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dayoff",
		Short: "Manage day-off swap requests",
	}

	cmd.AddCommand(dayOffCreateCmd(app))
	cmd.AddCommand(dayOffDeleteCmd(app))
	cmd.AddCommand(dayOffAcceptMatchCmd(app))
	cmd.AddCommand(dayOffApproveCmd(app))
	cmd.AddCommand(dayOffRejectCmd(app))

	return cmd
}

func dayOffCreateCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Submit a new day-off swap request",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			original, _ := cmd.Flags().GetString("original")
			requested, _ := cmd.Flags().GetString("requested")
			start, _ := cmd.Flags().GetString("start")
			end, _ := cmd.Flags().GetString("end")
			otStart, _ := cmd.Flags().GetString("overtime-start")
			otEnd, _ := cmd.Flags().GetString("overtime-end")
			comment, _ := cmd.Flags().GetString("comment")

			form := services.DayOffSwapForm{
				OriginalDayOff:  original,
				RequestedDayOff: requested,
				Comment:         comment,
			}
			var err error
			if form.ShiftStartTime, err = parseTimeFlag(start); err != nil {
				return err
			}
			if form.ShiftEndTime, err = parseTimeFlag(end); err != nil {
				return err
			}
			if form.OvertimeStartTime, err = parseOptionalTimeFlag(otStart); err != nil {
				return err
			}
			if form.OvertimeEndTime, err = parseOptionalTimeFlag(otEnd); err != nil {
				return err
			}

			api, sess, err := app.ActiveAPI()
			if err != nil {
				return err
			}

			if err := services.SubmitDayOffSwap(app.Ctx, api, app.Logger, form); err != nil {
				return app.HandleAPIError(sess, err)
			}

			fmt.Println("\n✓ Day-off swap request submitted")
			return app.reloadAndShow(sess)
		},
	}

	cmd.Flags().String("original", "", "Currently assigned day off (2006-01-02)")
	cmd.Flags().String("requested", "", "Desired day off (2006-01-02)")
	cmd.Flags().String("start", "", "Shift start time (2006-01-02 15:04)")
	cmd.Flags().String("end", "", "Shift end time (2006-01-02 15:04)")
	cmd.Flags().String("overtime-start", "", "Optional overtime start time")
	cmd.Flags().String("overtime-end", "", "Optional overtime end time")
	cmd.Flags().String("comment", "", "Optional note for the approvers")

	return cmd
}

func dayOffDeleteCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <request_id>",
		Short: "Delete one of your own day-off swap requests",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			api, sess, err := app.ActiveAPI()
			if err != nil {
				return err
			}

			current, err := app.findDayOffRequest(api, sess, args[0])
			if err != nil {
				return err
			}

			if err := services.DeleteDayOffSwap(app.Ctx, api, app.Logger, sess.Profile.ID, *current); err != nil {
				return app.HandleAPIError(sess, err)
			}

			fmt.Println("\n✓ Day-off swap request deleted")
			return app.reloadAndShow(sess)
		},
	}
}

func dayOffAcceptMatchCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "accept-match <request_id> <match_id>",
		Short: "Accept a proposed match on your request",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			api, sess, err := app.ActiveAPI()
			if err != nil {
				return err
			}

			current, err := app.findDayOffRequest(api, sess, args[0])
			if err != nil {
				return err
			}

			if err := services.AcceptDayOffMatch(app.Ctx, api, app.Logger, sess.Profile.ID, *current, args[1]); err != nil {
				return app.HandleAPIError(sess, err)
			}

			fmt.Println("\n✓ Match accepted")
			return app.reloadAndShow(sess)
		},
	}
}

func dayOffApproveCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "approve <request_id>",
		Short: "Approve a day-off swap request (supervisor)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			supervisorID, _ := cmd.Flags().GetString("supervisor")
			comment, _ := cmd.Flags().GetString("comment")

			api, sess, err := app.ActiveAPI()
			if err != nil {
				return err
			}

			current, err := app.findDayOffRequest(api, sess, args[0])
			if err != nil {
				return err
			}

			err = services.ApproveRequest(app.Ctx, api, app.Logger,
				board.KindDayOff, current.ID, current.RequesterPosition, supervisorID, comment)
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

func dayOffRejectCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reject <request_id>",
		Short: "Reject a day-off swap request (supervisor)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reason, _ := cmd.Flags().GetString("reason")

			api, sess, err := app.ActiveAPI()
			if err != nil {
				return err
			}

			err = services.RejectRequest(app.Ctx, api, app.Logger, board.KindDayOff, args[0], reason)
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
