package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/swapdesk/swapdesk/pkg/core/board"
	"github.com/swapdesk/swapdesk/pkg/core/services"
)

// BoardCmd creates the board command: the role-scoped request dashboard
func BoardCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "board",
		Short: "Show the swap request board for the active role",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			search, _ := cmd.Flags().GetString("search")
			status, _ := cmd.Flags().GetString("status")
			kind, _ := cmd.Flags().GetString("type")
			recent, _ := cmd.Flags().GetInt("recent")

			api, sess, err := app.ActiveAPI()
			if err != nil {
				return err
			}

			app.Logger.Debug("board command",
				zap.String("role", string(sess.Role)),
				zap.String("search", search),
				zap.String("status", status),
				zap.String("type", kind))

			b, err := services.LoadBoard(app.Ctx, api, app.Logger, Viewer(sess))
			if err != nil {
				return app.HandleAPIError(sess, err)
			}

			query := board.Query{Search: search, Status: status, Type: board.Kind(kind)}
			shiftReqs, dayOffReqs := b.Filter(query)

			fmt.Printf("\nRequest board (%s)\n\n", sess.Role)

			if len(shiftReqs) > 0 {
				fmt.Printf("Shift swap requests:\n")
				for _, r := range shiftReqs {
					fmt.Printf("  %-26s %-16s %-20s %s\n",
						r.ID, r.Status, r.RequesterName, r.Reason)
				}
				fmt.Println()
			}

			if len(dayOffReqs) > 0 {
				fmt.Printf("Day-off swap requests:\n")
				for _, r := range dayOffReqs {
					fmt.Printf("  %-26s %-16s %-20s %s -> %s\n",
						r.ID, r.Status, r.RequesterName, r.OriginalDayOff, r.RequestedDayOff)
				}
				fmt.Println()
			}

			if len(shiftReqs) == 0 && len(dayOffReqs) == 0 {
				fmt.Println("No requests match the current filters.")
				fmt.Println()
			}

			if recent > 0 {
				fmt.Printf("Most recent requests:\n")
				for _, e := range b.Recent(recent) {
					fmt.Printf("  [%-6s] %-26s %-16s %s\n", e.Kind, e.ID, e.Status, e.Summary)
				}
				fmt.Println()
			}

			printStats(b.Stats())
			return nil
		},
	}

	cmd.Flags().String("search", "", "Free-text filter over reason and participant names")
	cmd.Flags().String("status", board.StatusAll, "Status filter (all, pending, offers_received, matched, approved, rejected)")
	cmd.Flags().String("type", string(board.KindAll), "Request type filter (all, shift, dayoff)")
	cmd.Flags().Int("recent", 0, "Also show the N most recently created requests across both kinds")

	return cmd
}

func printBoardSummary(b *services.Board) {
	fmt.Printf("\nBoard refreshed: %d shift, %d day-off requests\n",
		len(b.ShiftRequests), len(b.DayOffRequests))
	printStats(b.Stats())
}

func printStats(s board.Stats) {
	fmt.Printf("Summary:\n")
	fmt.Printf("  Total:    %d\n", s.Total)
	fmt.Printf("  Pending:  %d\n", s.Pending)
	fmt.Printf("  Approved: %d\n", s.Approved)
	fmt.Printf("  Rejected: %d\n", s.Rejected)
	if s.Other > 0 {
		fmt.Printf("  Other:    %d\n", s.Other)
	}
	fmt.Println()
}
