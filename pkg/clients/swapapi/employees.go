package swapapi

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"

	"github.com/swapdesk/swapdesk/pkg/core/model"
)

type employeeIDListResponse struct {
	apiResponse
	Data []model.EmployeeIDRecord `json:"data"`
}

// ListEmployeeIDs fetches the company's roster of registered employee IDs
func (c *Client) ListEmployeeIDs(ctx context.Context) ([]model.EmployeeIDRecord, error) {
	var resp employeeIDListResponse
	if err := c.do(ctx, http.MethodGet, "/api/employees-ids", nil, &resp); err != nil {
		return nil, fmt.Errorf("failed to fetch employee IDs: %w", err)
	}
	return resp.Data, nil
}

// EmployeeIDInput is the payload for registering a single employee ID
type EmployeeIDInput struct {
	EmployeeID string         `json:"employeeId"`
	Name       string         `json:"name"`
	Position   model.Position `json:"position"`
}

// CreateEmployeeID registers one employee ID
func (c *Client) CreateEmployeeID(ctx context.Context, input EmployeeIDInput) error {
	var resp apiResponse
	return c.do(ctx, http.MethodPost, "/api/employees-ids", input, &resp)
}

// DeleteEmployeeID removes one roster entry
func (c *Client) DeleteEmployeeID(ctx context.Context, id string) error {
	var resp apiResponse
	return c.do(ctx, http.MethodDelete, "/api/employees-ids/"+url.PathEscape(id), nil, &resp)
}

type uploadResponse struct {
	apiResponse
	InsertedCount int `json:"insertedCount"`
}

// UploadEmployeeIDs sends a spreadsheet to the bulk-import endpoint as the
// multipart field "file". The content is forwarded verbatim; all parsing and
// validation happens server-side. Returns the server's inserted count.
func (c *Client) UploadEmployeeIDs(ctx context.Context, filename string, content io.Reader) (int, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return 0, fmt.Errorf("failed to build upload form: %w", err)
	}
	if _, err := io.Copy(part, content); err != nil {
		return 0, fmt.Errorf("failed to read upload file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return 0, fmt.Errorf("failed to finalize upload form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/employees-ids/upload", &buf)
	if err != nil {
		return 0, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	c.setCommonHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrConnectivity, err)
	}
	defer resp.Body.Close()

	var out uploadResponse
	if err := c.decode(resp, &out); err != nil {
		return 0, err
	}
	return out.InsertedCount, nil
}

type supervisorListResponse struct {
	apiResponse
	Data []model.Supervisor `json:"data"`
}

// ListSupervisors fetches the supervisors selectable as approvers
func (c *Client) ListSupervisors(ctx context.Context) ([]model.Supervisor, error) {
	var resp supervisorListResponse
	if err := c.do(ctx, http.MethodGet, "/api/employees/supervisors", nil, &resp); err != nil {
		return nil, fmt.Errorf("failed to fetch supervisors: %w", err)
	}
	return resp.Data, nil
}
