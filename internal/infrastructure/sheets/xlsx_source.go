package sheets

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/fdieguez/sgp/internal/domain"
)

// xlsxSource reads snapshots from local workbooks, one file per
// spreadsheet id. Used for planillas delivered by hand instead of
// shared online.
type xlsxSource struct {
	dir    string
	logger *slog.Logger
}

// NewXLSXSource builds the local-file source rooted at dir.
func NewXLSXSource(dir string, logger *slog.Logger) domain.SheetSource {
	return &xlsxSource{dir: dir, logger: logger}
}

func (s *xlsxSource) FetchValues(ctx context.Context, spreadsheetID, sheetName string) ([][]string, error) {
	path := filepath.Join(s.dir, spreadsheetID+".xlsx")
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("workbook %s not found: %w", path, err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			s.logger.Warn("failed to close workbook", "path", path, "error", cerr)
		}
	}()

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheetName, err)
	}

	s.logger.Debug("workbook read",
		"path", path,
		"sheet", sheetName,
		"rows", len(rows),
	)
	return rows, nil
}
