package sheets

import (
	"context"
	"fmt"
	"io"

	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
)

// Client exports spreadsheet data through the Drive API.
type Client struct {
	service *drive.Service
}

// NewClient builds a Drive client authenticated with an API key. The sheets
// this tool reads are world-readable, so no OAuth flow is involved.
func NewClient(ctx context.Context, apiKey string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("missing required env var: GOOGLE_API_KEY")
	}
	svc, err := drive.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("create drive service: %w", err)
	}
	return &Client{service: svc}, nil
}

// ExportCSV downloads a spreadsheet as CSV text.
func (c *Client) ExportCSV(ctx context.Context, fileID string) ([]byte, error) {
	resp, err := c.service.Files.Export(fileID, "text/csv").Context(ctx).Download()
	if err != nil {
		return nil, fmt.Errorf("export spreadsheet %s: %w", fileID, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read spreadsheet export: %w", err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("could not obtain spreadsheet data")
	}
	return data, nil
}
