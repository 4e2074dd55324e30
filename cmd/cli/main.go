package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/swapdesk/swapdesk/cmd/cli/commands"
	"github.com/swapdesk/swapdesk/internal/config"
	"github.com/swapdesk/swapdesk/pkg/session"
	"github.com/swapdesk/swapdesk/pkg/utils/logging"
)

var (
	verbose bool
	// app is allocated up front so command constructors hold a stable
	// pointer; its fields are populated in PersistentPreRunE
	app = &commands.AppContext{}
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "swapdesk",
		Short: "Swapdesk CLI - coordinate shift and day-off swaps",
		Long:  `A CLI client for the swap coordination API: browse the request board per role, submit and negotiate shift or day-off swaps, and manage the company roster.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initApp()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app.Logger != nil {
				app.Logger.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show info-level logs on the console")

	// Add all commands
	rootCmd.AddCommand(commands.LoginCmd(app))
	rootCmd.AddCommand(commands.LogoutCmd(app))
	rootCmd.AddCommand(commands.WhoamiCmd(app))
	rootCmd.AddCommand(commands.BoardCmd(app))
	rootCmd.AddCommand(commands.ShiftCmd(app))
	rootCmd.AddCommand(commands.DayOffCmd(app))
	rootCmd.AddCommand(commands.ProcessCmd(app))
	rootCmd.AddCommand(commands.EmployeesCmd(app))
	rootCmd.AddCommand(commands.SupervisorsCmd(app))
	rootCmd.AddCommand(commands.StatsCmd(app))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// initApp sets up logger, config, and the session store
func initApp() error {
	app.Ctx = context.Background()

	var err error
	app.Logger, err = logging.InitLogger(verbose)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	app.Logger.Debug("Loading configuration")
	app.Cfg, err = config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	sessionPath := app.Cfg.SessionFile
	if sessionPath == "" {
		sessionPath, err = session.DefaultPath()
		if err != nil {
			return fmt.Errorf("failed to locate session file: %w", err)
		}
	}
	app.Sessions = session.NewStore(sessionPath)

	app.Logger.Debug("Application initialized",
		zap.String("api_base_url", app.Cfg.APIBaseURL),
		zap.String("session_file", sessionPath))

	return nil
}
