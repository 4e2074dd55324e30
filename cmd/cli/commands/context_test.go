package commands

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/swapdesk/swapdesk/pkg/clients/swapapi"
	"github.com/swapdesk/swapdesk/pkg/core/model"
	"github.com/swapdesk/swapdesk/pkg/session"
)

func newTestApp(t *testing.T) *AppContext {
	t.Helper()
	return &AppContext{
		Sessions: session.NewStore(filepath.Join(t.TempDir(), "session.yaml")),
		Logger:   zap.NewNop(),
	}
}

func TestHandleAPIError_UnauthorizedClearsRoleCredentials(t *testing.T) {
	app := newTestApp(t)
	require.NoError(t, app.Sessions.Save(model.RoleSupervisor, session.Credentials{Token: "sup-token"}))
	require.NoError(t, app.Sessions.Save(model.RoleEmployee, session.Credentials{Token: "emp-token"}))
	sess := app.Sessions.Resolve()
	require.Equal(t, model.RoleSupervisor, sess.Role)

	// Fetch errors arrive wrapped; the sentinel must still be recognized
	err := app.HandleAPIError(sess, fmt.Errorf("failed to fetch shift swap requests: %w", swapapi.ErrUnauthorized))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "session has expired")
	assert.Contains(t, err.Error(), "swapdesk login supervisor")

	_, ok, getErr := app.Sessions.Get(model.RoleSupervisor)
	require.NoError(t, getErr)
	assert.False(t, ok, "expired role's credentials should be cleared")

	// Other roles keep their credentials; the next resolve falls through
	next := app.Sessions.Resolve()
	require.Equal(t, session.Authenticated, next.State)
	assert.Equal(t, model.RoleEmployee, next.Role)
}

func TestHandleAPIError_ConnectivityUsesGenericMessage(t *testing.T) {
	app := newTestApp(t)
	require.NoError(t, app.Sessions.Save(model.RoleEmployee, session.Credentials{Token: "emp-token"}))
	sess := app.Sessions.Resolve()

	err := app.HandleAPIError(sess, fmt.Errorf("%w: dial tcp: connection refused", swapapi.ErrConnectivity))

	require.Error(t, err)
	assert.Equal(t, ConnectivityMessage, err.Error())

	// Connectivity failures never log the role out
	_, ok, getErr := app.Sessions.Get(model.RoleEmployee)
	require.NoError(t, getErr)
	assert.True(t, ok)
}

func TestHandleAPIError_PassesOtherErrorsThrough(t *testing.T) {
	app := newTestApp(t)
	require.NoError(t, app.Sessions.Save(model.RoleEmployee, session.Credentials{Token: "emp-token"}))
	sess := app.Sessions.Resolve()

	apiErr := &swapapi.APIError{StatusCode: 200, Message: "You cannot approve your own request"}
	err := app.HandleAPIError(sess, apiErr)

	var got *swapapi.APIError
	require.ErrorAs(t, err, &got)
	assert.Equal(t, "You cannot approve your own request", got.Message)

	_, ok, getErr := app.Sessions.Get(model.RoleEmployee)
	require.NoError(t, getErr)
	assert.True(t, ok)
}

func TestActiveSession_States(t *testing.T) {
	app := newTestApp(t)

	_, err := app.ActiveSession()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not logged in")

	require.NoError(t, app.Sessions.Save(model.RoleCompany, session.Credentials{Token: "co-token"}))
	sess, err := app.ActiveSession()
	require.NoError(t, err)
	assert.Equal(t, model.RoleCompany, sess.Role)
	assert.Equal(t, "co-token", sess.Token)
}
