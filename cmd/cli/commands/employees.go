package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/swapdesk/swapdesk/pkg/core/model"
	"github.com/swapdesk/swapdesk/pkg/core/services"
	"github.com/swapdesk/swapdesk/pkg/excel"
)

// EmployeesCmd creates the employees command group (company roster)
func EmployeesCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "employees",
		Short: "Manage the company's registered employee IDs",
	}

	cmd.AddCommand(employeesListCmd(app))
	cmd.AddCommand(employeesAddCmd(app))
	cmd.AddCommand(employeesDeleteCmd(app))
	cmd.AddCommand(employeesImportCmd(app))
	cmd.AddCommand(employeesTemplateCmd(app))

	return cmd
}

func employeesListCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registered employee IDs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			api, sess, err := app.ActiveAPI()
			if err != nil {
				return err
			}

			records, err := api.ListEmployeeIDs(app.Ctx)
			if err != nil {
				return app.HandleAPIError(sess, err)
			}

			fmt.Printf("\nFound %d employee IDs:\n\n", len(records))
			for _, rec := range records {
				fmt.Printf("  %-26s %-12s %-12s %s\n",
					rec.ID, rec.EmployeeID, rec.Position, rec.Name)
			}
			return nil
		},
	}
}

func employeesAddCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <employee_id> <name>",
		Short: "Register a single employee ID",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			position, _ := cmd.Flags().GetString("position")
			name := strings.Join(args[1:], " ")

			api, sess, err := app.ActiveAPI()
			if err != nil {
				return err
			}

			err = services.AddEmployeeID(app.Ctx, api, app.Logger, args[0], name, model.Position(position))
			if err != nil {
				return app.HandleAPIError(sess, err)
			}

			fmt.Printf("\n✓ Employee ID %s registered\n", strings.ToUpper(args[0]))
			return nil
		},
	}
	cmd.Flags().String("position", string(model.PositionExpert), "Position (expert, moderator, supervisor, sme)")
	return cmd
}

func employeesDeleteCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <record_id>",
		Short: "Remove one employee ID record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			api, sess, err := app.ActiveAPI()
			if err != nil {
				return err
			}

			if err := services.RemoveEmployeeID(app.Ctx, api, app.Logger, args[0]); err != nil {
				return app.HandleAPIError(sess, err)
			}

			fmt.Println("\n✓ Employee ID record removed")
			return nil
		},
	}
}

func employeesImportCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <file.xlsx>",
		Short: "Bulk-upload employee IDs from a spreadsheet",
		Long: `Upload a spreadsheet to the bulk-import endpoint. The file is sent as-is;
the server parses it and reports how many rows were inserted.

With --preview the sheet is opened locally first to show what will be sent.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			preview, _ := cmd.Flags().GetBool("preview")

			if preview {
				p, err := excel.PreviewFile(args[0])
				if err != nil {
					return err
				}
				fmt.Printf("\nSheet %q: %d data rows\n", p.Sheet, p.RowCount)
				for _, row := range p.Sample {
					fmt.Printf("  %s\n", strings.Join(row, " | "))
				}
				fmt.Println()
			}

			api, sess, err := app.ActiveAPI()
			if err != nil {
				return err
			}

			inserted, err := services.ImportEmployeeIDs(app.Ctx, api, app.Logger, args[0])
			if err != nil {
				return app.HandleAPIError(sess, err)
			}

			fmt.Printf("\n✓ Import complete: %d employee IDs inserted\n", inserted)
			return nil
		},
	}
	cmd.Flags().Bool("preview", false, "Show a local summary of the sheet before uploading")
	return cmd
}

func employeesTemplateCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "template [path]",
		Short: "Write an empty import spreadsheet with the expected columns",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "employee_ids_template.xlsx"
			if len(args) > 0 {
				path = args[0]
			}

			if err := excel.WriteTemplate(path); err != nil {
				return err
			}

			fmt.Printf("\n✓ Template written to %s\n", path)
			return nil
		},
	}
	return cmd
}

// SupervisorsCmd creates the supervisors listing command
func SupervisorsCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "supervisors",
		Short: "List supervisors selectable as approvers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			api, sess, err := app.ActiveAPI()
			if err != nil {
				return err
			}

			supervisors, err := api.ListSupervisors(app.Ctx)
			if err != nil {
				return app.HandleAPIError(sess, err)
			}

			fmt.Printf("\nFound %d supervisors:\n\n", len(supervisors))
			for _, s := range supervisors {
				fmt.Printf("  %-26s %-12s %s\n", s.ID, s.EmployeeID, s.FullName)
			}
			return nil
		},
	}
}

// StatsCmd creates the stats command
func StatsCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show status counts for the active role's requests",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			api, sess, err := app.ActiveAPI()
			if err != nil {
				return err
			}

			b, err := services.LoadBoard(app.Ctx, api, app.Logger, Viewer(sess))
			if err != nil {
				return app.HandleAPIError(sess, err)
			}

			fmt.Printf("\nRequest stats (%s)\n\n", sess.Role)
			printStats(b.Stats())
			return nil
		},
	}
}
