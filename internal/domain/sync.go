package domain

import (
	"context"

	"github.com/fdieguez/sgp/internal/domain/entity"
)

// SheetSource fetches the raw cell values of one spreadsheet tab. The
// returned grid is row-major with unparsed string cells; empty cells
// are empty strings. Implementations live in infrastructure/sheets.
type SheetSource interface {
	FetchValues(ctx context.Context, spreadsheetID, sheetName string) ([][]string, error)
}

// SyncUsecase mirrors a configured planilla into the local store: the
// raw snapshot onto the Project and the parseable rows into
// Person+Solicitud records.
type SyncUsecase interface {
	Sync(ctx context.Context, configID int64) (*entity.SyncResult, error)

	// SyncAll runs Sync over every config; used by the optional
	// periodic scheduler. Per-config failures are recorded on the
	// config status and do not abort the sweep.
	SyncAll(ctx context.Context) error
}
