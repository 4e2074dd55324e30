package services

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/swapdesk/swapdesk/pkg/core/model"
)

func TestAddEmployeeID_UppercasesID(t *testing.T) {
	api := &fakeAPI{}

	err := AddEmployeeID(context.Background(), api, zap.NewNop(), " emp042 ", "Jane Doe", model.PositionExpert)

	require.NoError(t, err)
	assert.Equal(t, 1, api.rosterCalls)
}

func TestAddEmployeeID_MissingFields(t *testing.T) {
	api := &fakeAPI{}

	err := AddEmployeeID(context.Background(), api, zap.NewNop(), "", "Jane Doe", model.PositionExpert)
	require.ErrorIs(t, err, ErrValidation)

	err = AddEmployeeID(context.Background(), api, zap.NewNop(), "EMP1", "  ", model.PositionExpert)
	require.ErrorIs(t, err, ErrValidation)

	assert.Equal(t, 0, api.totalCalls())
}

func TestAddEmployeeID_InvalidPosition(t *testing.T) {
	api := &fakeAPI{}

	err := AddEmployeeID(context.Background(), api, zap.NewNop(), "EMP1", "Jane Doe", model.Position("intern"))

	require.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, 0, api.totalCalls())
}

func TestImportEmployeeIDs_NoFileSelected(t *testing.T) {
	api := &fakeAPI{}

	_, err := ImportEmployeeIDs(context.Background(), api, zap.NewNop(), "")

	require.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, 0, api.totalCalls())
}

func TestImportEmployeeIDs_MissingFile(t *testing.T) {
	api := &fakeAPI{}

	_, err := ImportEmployeeIDs(context.Background(), api, zap.NewNop(), filepath.Join(t.TempDir(), "nope.xlsx"))

	require.Error(t, err)
	assert.Equal(t, 0, api.totalCalls())
}

func TestImportEmployeeIDs_UploadsSelectedFile(t *testing.T) {
	api := &fakeAPI{uploadInserted: 7}

	path := filepath.Join(t.TempDir(), "roster.xlsx")
	require.NoError(t, os.WriteFile(path, []byte("not really a spreadsheet"), 0644))

	inserted, err := ImportEmployeeIDs(context.Background(), api, zap.NewNop(), path)

	require.NoError(t, err)
	assert.Equal(t, 7, inserted)
	assert.Equal(t, 1, api.uploadCalls)
}
