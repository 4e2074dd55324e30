package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/swapdesk/swapdesk/pkg/core/model"
	"github.com/swapdesk/swapdesk/pkg/session"
)

// LogoutCmd creates the logout command
func LogoutCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "logout [role]",
		Short: "Clear stored credentials for one role, or for all roles",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				if err := app.Sessions.ClearAll(); err != nil {
					return fmt.Errorf("failed to clear sessions: %w", err)
				}
				fmt.Println("✓ Logged out of all roles")
				return nil
			}

			role := model.Role(strings.ToLower(args[0]))
			if !role.IsValid() {
				return fmt.Errorf("unknown role %q", args[0])
			}
			if err := app.Sessions.Clear(role); err != nil {
				return fmt.Errorf("failed to clear session: %w", err)
			}
			fmt.Printf("✓ Logged out of %s\n", role)
			return nil
		},
	}
}

// WhoamiCmd creates the whoami command
func WhoamiCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the resolved session and stored roles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess := app.Sessions.Resolve()

			switch sess.State {
			case session.Authenticated:
				fmt.Printf("Active role: %s\n", sess.Role)
				if sess.Profile.FullName != "" {
					fmt.Printf("Name:        %s\n", sess.Profile.FullName)
				}
				if sess.Profile.EmployeeID != "" {
					fmt.Printf("Employee ID: %s\n", sess.Profile.EmployeeID)
				}
				if sess.Profile.CompanyName != "" {
					fmt.Printf("Company:     %s\n", sess.Profile.CompanyName)
				}
			case session.Anonymous:
				fmt.Println("Not logged in.")
			default:
				fmt.Println("Session store could not be read.")
			}

			// Show any other roles with stored credentials, in precedence order
			others := make([]string, 0)
			for _, role := range model.RolePrecedence {
				if role == sess.Role {
					continue
				}
				if _, ok, err := app.Sessions.Get(role); err == nil && ok {
					others = append(others, string(role))
				}
			}
			if len(others) > 0 {
				fmt.Printf("Other stored roles: %s\n", strings.Join(others, ", "))
			}
			return nil
		},
	}
}
