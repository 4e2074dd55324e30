package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/swapdesk/swapdesk/pkg/clients/swapapi"
	"github.com/swapdesk/swapdesk/pkg/core/model"
	"github.com/swapdesk/swapdesk/pkg/core/services"
)

// ProcessCmd creates the company approval-path command
func ProcessCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "process <request_id>",
		Short: "Approve or reject a request through the company path",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			action, _ := cmd.Flags().GetString("action")
			supervisorID, _ := cmd.Flags().GetString("supervisor")
			reason, _ := cmd.Flags().GetString("reason")

			api, sess, err := app.ActiveAPI()
			if err != nil {
				return err
			}
			if sess.Role != model.RoleCompany {
				return fmt.Errorf("the process command is only available to a company session (active role: %s)", sess.Role)
			}

			// The requester's position decides whether a supervisor must be
			// selected, so look the request up first. One fetch covers both
			// kinds.
			b, err := services.LoadBoard(app.Ctx, api, app.Logger, Viewer(sess))
			if err != nil {
				return app.HandleAPIError(sess, err)
			}
			position, found := requesterPosition(b, args[0])
			if !found {
				return fmt.Errorf("request not found: %s", args[0])
			}

			err = services.ProcessRequest(app.Ctx, api, app.Logger,
				args[0], swapapi.ProcessAction(action), position, supervisorID, reason)
			if err != nil {
				return app.HandleAPIError(sess, err)
			}

			if action == string(swapapi.ProcessApprove) {
				fmt.Println("\n✓ Request approved")
			} else {
				fmt.Println("\n✓ Request rejected")
			}
			return app.reloadAndShow(sess)
		},
	}

	cmd.Flags().String("action", "", "approve or reject (required)")
	cmd.Flags().String("supervisor", "", "Supervisor assigned to an approval")
	cmd.Flags().String("reason", "", "Reason accompanying a rejection")
	cmd.MarkFlagRequired("action")

	return cmd
}

// requesterPosition finds a request of either kind on the board and returns
// its requester's position.
func requesterPosition(b *services.Board, id string) (model.Position, bool) {
	for _, r := range b.ShiftRequests {
		if r.ID == id {
			return r.RequesterPosition, true
		}
	}
	for _, r := range b.DayOffRequests {
		if r.ID == id {
			return r.RequesterPosition, true
		}
	}
	return "", false
}
