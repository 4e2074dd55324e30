package commands

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/swapdesk/swapdesk/pkg/core/model"
	"github.com/swapdesk/swapdesk/pkg/core/services"
	"github.com/swapdesk/swapdesk/pkg/session"
)

// LoginCmd creates the login command. The token is validated against the API
// before it is stored.
func LoginCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login <role>",
		Short: "Store and validate credentials for a role (company, supervisor, employee, moderator)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			role := model.Role(strings.ToLower(args[0]))
			if !role.IsValid() {
				return fmt.Errorf("unknown role %q (expected company, supervisor, employee or moderator)", args[0])
			}

			token, _ := cmd.Flags().GetString("token")
			profileJSON, _ := cmd.Flags().GetString("profile")

			if token == "" {
				token = os.Getenv("SWAPDESK_TOKEN")
			}
			if token == "" {
				fmt.Print("Paste the bearer token for this role: ")
				scanner := bufio.NewScanner(os.Stdin)
				if scanner.Scan() {
					token = strings.TrimSpace(scanner.Text())
				}
			}
			if token == "" {
				return fmt.Errorf("a token is required (flag --token, env SWAPDESK_TOKEN, or prompt)")
			}

			var profile model.Profile
			if profileJSON != "" {
				if err := json.Unmarshal([]byte(profileJSON), &profile); err != nil {
					return fmt.Errorf("failed to parse profile JSON: %w", err)
				}
			}

			app.Logger.Info("Validating login", zap.String("role", string(role)))

			api := app.APIClient(token)
			if err := services.ValidateCredentials(app.Ctx, api, app.Logger, role); err != nil {
				return app.HandleAPIError(session.Session{Role: role}, err)
			}

			if err := app.Sessions.Save(role, session.Credentials{Token: token, Profile: profile}); err != nil {
				return fmt.Errorf("failed to store credentials: %w", err)
			}

			fmt.Printf("\n✓ Logged in as %s", role)
			if profile.FullName != "" {
				fmt.Printf(" (%s)", profile.FullName)
			}
			fmt.Println()

			active := app.Sessions.Resolve()
			if active.State == session.Authenticated && active.Role != role {
				fmt.Printf("Note: credentials for %s take precedence; commands will run as %s until you log out of it.\n",
					active.Role, active.Role)
			}
			return nil
		},
	}

	cmd.Flags().String("token", "", "Bearer token issued for this role")
	cmd.Flags().String("profile", "", "Profile snapshot as JSON (stored for display only)")

	return cmd
}
