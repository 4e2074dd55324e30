package services

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/swapdesk/swapdesk/pkg/clients/swapapi"
	"github.com/swapdesk/swapdesk/pkg/core/model"
)

// RosterAPI defines the company roster API operations
type RosterAPI interface {
	CreateEmployeeID(ctx context.Context, input swapapi.EmployeeIDInput) error
	DeleteEmployeeID(ctx context.Context, id string) error
	UploadEmployeeIDs(ctx context.Context, filename string, content io.Reader) (int, error)
}

// AddEmployeeID registers a single roster entry. Employee IDs are
// company-unique and stored uppercased.
func AddEmployeeID(ctx context.Context, api RosterAPI, logger *zap.Logger, employeeID, name string, position model.Position) error {
	employeeID = strings.ToUpper(strings.TrimSpace(employeeID))
	name = strings.TrimSpace(name)

	if employeeID == "" || name == "" {
		return validationError(RequiredFieldsMessage)
	}
	if !position.IsValid() {
		return validationError("Position must be one of: expert, moderator, supervisor, sme")
	}

	logger.Info("Adding employee ID",
		zap.String("employee_id", employeeID),
		zap.String("position", string(position)))

	return api.CreateEmployeeID(ctx, swapapi.EmployeeIDInput{
		EmployeeID: employeeID,
		Name:       name,
		Position:   position,
	})
}

// RemoveEmployeeID deletes one roster entry
func RemoveEmployeeID(ctx context.Context, api RosterAPI, logger *zap.Logger, id string) error {
	if strings.TrimSpace(id) == "" {
		return validationError("An employee ID record must be selected")
	}

	logger.Info("Removing employee ID record", zap.String("id", id))
	return api.DeleteEmployeeID(ctx, id)
}

// ImportEmployeeIDs uploads a spreadsheet to the bulk-import endpoint. The
// only local gate is that the file exists and can be opened; the content is
// sent verbatim and the server reports how many rows it inserted.
func ImportEmployeeIDs(ctx context.Context, api RosterAPI, logger *zap.Logger, path string) (int, error) {
	if strings.TrimSpace(path) == "" {
		return 0, validationError("Please select a file to upload")
	}

	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("failed to open upload file: %w", err)
	}
	defer f.Close()

	logger.Info("Uploading employee ID spreadsheet", zap.String("file", filepath.Base(path)))

	inserted, err := api.UploadEmployeeIDs(ctx, filepath.Base(path), f)
	if err != nil {
		return 0, err
	}

	logger.Info("Import completed", zap.Int("inserted", inserted))
	return inserted, nil
}
