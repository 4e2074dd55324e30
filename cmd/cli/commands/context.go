package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/swapdesk/swapdesk/internal/config"
	"github.com/swapdesk/swapdesk/pkg/clients/swapapi"
	"github.com/swapdesk/swapdesk/pkg/core/board"
	"github.com/swapdesk/swapdesk/pkg/core/services"
	"github.com/swapdesk/swapdesk/pkg/session"
)

// AppContext holds the application dependencies shared across all commands
type AppContext struct {
	Cfg      *config.Config
	Sessions *session.Store
	Logger   *zap.Logger
	Ctx      context.Context
}

// ConnectivityMessage is the generic message shown for transport failures
const ConnectivityMessage = "Could not reach the server. Please check your connection and try again."

// APIClient builds an API client bound to the given bearer token
func (app *AppContext) APIClient(token string) *swapapi.Client {
	return swapapi.NewClient(app.Cfg.APIBaseURL, token, app.Logger)
}

// ActiveSession resolves the session store; it fails when no role has stored
// credentials.
func (app *AppContext) ActiveSession() (session.Session, error) {
	sess := app.Sessions.Resolve()
	switch sess.State {
	case session.Authenticated:
		return sess, nil
	case session.Anonymous:
		return sess, fmt.Errorf("not logged in - run 'swapdesk login <role>' first")
	default:
		return sess, fmt.Errorf("could not read the session store")
	}
}

// ActiveAPI resolves the session and returns an API client bound to it
func (app *AppContext) ActiveAPI() (*swapapi.Client, session.Session, error) {
	sess, err := app.ActiveSession()
	if err != nil {
		return nil, sess, err
	}
	return app.APIClient(sess.Token), sess, nil
}

// Viewer derives the board viewer from a resolved session
func Viewer(sess session.Session) board.Viewer {
	return board.Viewer{Role: sess.Role, UserID: sess.Profile.ID}
}

// HandleAPIError maps an API failure to a user-facing error. A 401 clears
// the active role's credentials (the forced-logout path) before telling the
// user to log in again; the unauthorized response body is never shown.
func (app *AppContext) HandleAPIError(sess session.Session, err error) error {
	switch {
	case errors.Is(err, swapapi.ErrUnauthorized):
		if clearErr := app.Sessions.Clear(sess.Role); clearErr != nil {
			app.Logger.Warn("Failed to clear session after 401", zap.Error(clearErr))
		}
		return fmt.Errorf("your %s session has expired - run 'swapdesk login %s' to sign in again", sess.Role, sess.Role)
	case errors.Is(err, swapapi.ErrConnectivity):
		return errors.New(ConnectivityMessage)
	default:
		return err
	}
}

// reloadAndShow is the unconditional refetch every successful mutation is
// followed by. It loads a fresh board and prints the summary.
func (app *AppContext) reloadAndShow(sess session.Session) error {
	api := app.APIClient(sess.Token)
	b, err := services.LoadBoard(app.Ctx, api, app.Logger, Viewer(sess))
	if err != nil {
		return app.HandleAPIError(sess, err)
	}
	printBoardSummary(b)
	return nil
}

// parseTimeFlag accepts "2006-01-02 15:04" or RFC3339
func parseTimeFlag(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse("2006-01-02 15:04", value); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time %q (expected '2006-01-02 15:04' or RFC3339)", value)
	}
	return t, nil
}

// parseOptionalTimeFlag returns nil for an empty value
func parseOptionalTimeFlag(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := parseTimeFlag(value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
