// Package sheets provides the snapshot sources synchronization reads
// from: the spreadsheet's CSV export over HTTP, or local xlsx files.
package sheets

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"github.com/cloudwego/hertz/pkg/app/client"
	"github.com/cloudwego/hertz/pkg/protocol"
	"github.com/cloudwego/hertz/pkg/protocol/consts"

	"github.com/fdieguez/sgp/internal/domain"
)

// defaultExportBase is the public spreadsheet CSV export endpoint.
const defaultExportBase = "https://docs.google.com/spreadsheets/d"

// httpSource fetches a sheet's CSV export.
type httpSource struct {
	client  *client.Client
	baseURL string
	timeout time.Duration
	logger  *slog.Logger
}

// NewHTTPSource builds the CSV-export source. baseURL overrides the
// public export endpoint, which tests use to point at a local server.
func NewHTTPSource(baseURL string, timeout time.Duration, logger *slog.Logger) (domain.SheetSource, error) {
	c, err := client.NewClient(
		client.WithDialTimeout(10 * time.Second),
		client.WithMaxIdleConnDuration(60 * time.Second),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP client: %w", err)
	}

	if baseURL == "" {
		baseURL = defaultExportBase
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &httpSource{
		client:  c,
		baseURL: baseURL,
		timeout: timeout,
		logger:  logger,
	}, nil
}

func (s *httpSource) FetchValues(ctx context.Context, spreadsheetID, sheetName string) ([][]string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	uri := fmt.Sprintf("%s/%s/gviz/tq?tqx=out:csv&sheet=%s",
		s.baseURL, url.PathEscape(spreadsheetID), url.QueryEscape(sheetName))

	req := protocol.AcquireRequest()
	resp := protocol.AcquireResponse()
	defer func() {
		protocol.ReleaseRequest(req)
		protocol.ReleaseResponse(resp)
	}()

	req.SetMethod(consts.MethodGet)
	req.SetRequestURI(uri)

	if err := s.client.Do(ctx, req, resp); err != nil {
		return nil, fmt.Errorf("export request failed: %w", err)
	}
	if resp.StatusCode() != consts.StatusOK {
		return nil, fmt.Errorf("export returned HTTP %d", resp.StatusCode())
	}

	values, err := parseCSV(resp.Body())
	if err != nil {
		return nil, fmt.Errorf("failed to parse export: %w", err)
	}

	s.logger.Debug("sheet fetched",
		"spreadsheet_id", spreadsheetID,
		"sheet", sheetName,
		"rows", len(values),
	)
	return values, nil
}

// parseCSV decodes the export body. Rows keep their own width; the
// engine pads them later.
func parseCSV(body []byte) ([][]string, error) {
	reader := csv.NewReader(bytes.NewReader(body))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	return records, nil
}
