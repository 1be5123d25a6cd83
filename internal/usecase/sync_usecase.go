package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/fdieguez/sgp/internal/domain"
	"github.com/fdieguez/sgp/internal/domain/entity"
)

// headerScanWindow is how many leading rows are inspected when locating
// the header row. Planillas often carry a title or blank rows above the
// real header; the densest row in the window wins.
const headerScanWindow = 10

// syncUsecase implements domain.SyncUsecase.
type syncUsecase struct {
	configRepo    domain.SheetsConfigRepository
	projectRepo   domain.ProjectRepository
	personRepo    domain.PersonRepository
	solicitudRepo domain.SolicitudRepository
	source        domain.SheetSource
	logger        *slog.Logger
}

// NewSyncUsecase builds the planilla synchronization logic.
func NewSyncUsecase(
	configRepo domain.SheetsConfigRepository,
	projectRepo domain.ProjectRepository,
	personRepo domain.PersonRepository,
	solicitudRepo domain.SolicitudRepository,
	source domain.SheetSource,
	logger *slog.Logger,
) domain.SyncUsecase {
	return &syncUsecase{
		configRepo:    configRepo,
		projectRepo:   projectRepo,
		personRepo:    personRepo,
		solicitudRepo: solicitudRepo,
		source:        source,
		logger:        logger,
	}
}

// Sync mirrors one planilla: raw snapshot onto the Project, parseable
// rows into Person+Solicitud records. The config status records the
// outcome either way.
func (u *syncUsecase) Sync(ctx context.Context, configID int64) (*entity.SyncResult, error) {
	cfg, err := u.configRepo.GetByID(ctx, configID)
	if err != nil {
		return nil, err
	}

	values, err := u.source.FetchValues(ctx, cfg.SpreadsheetID, cfg.SheetName)
	if err != nil {
		u.markFailed(ctx, cfg.ID, err)
		return nil, fmt.Errorf("failed to fetch sheet values: %w", err)
	}
	if len(values) == 0 {
		err := fmt.Errorf("sheet %q returned no rows", cfg.SheetName)
		u.markFailed(ctx, cfg.ID, err)
		return nil, domain.NewInvalidInputError(err.Error())
	}

	// Rows above the detected header are titles and are dropped from
	// the snapshot.
	headerIdx := detectHeaderRow(values)
	grid := values[headerIdx:]

	dataJSON, err := json.Marshal(grid)
	if err != nil {
		u.markFailed(ctx, cfg.ID, err)
		return nil, fmt.Errorf("failed to encode snapshot: %w", err)
	}

	if _, err := u.projectRepo.Upsert(ctx, &entity.Project{
		ConfigID: cfg.ID,
		Name:     cfg.SheetName,
		DataJSON: string(dataJSON),
	}); err != nil {
		u.markFailed(ctx, cfg.ID, err)
		return nil, fmt.Errorf("failed to store snapshot: %w", err)
	}

	result := &entity.SyncResult{ConfigID: cfg.ID, RowCount: len(grid) - 1}
	u.importRows(ctx, cfg.ID, grid, result)

	now := time.Now()
	if err := u.configRepo.UpdateStatus(ctx, cfg.ID, entity.SyncSuccess, now); err != nil {
		return nil, fmt.Errorf("failed to update config status: %w", err)
	}
	result.SyncedAt = now

	u.logger.Info("sync completed",
		"config_id", cfg.ID,
		"rows", result.RowCount,
		"imported", result.Imported,
		"skipped", result.Skipped,
		"duplicates", result.Duplicates,
	)
	return result, nil
}

// SyncAll sweeps every config; failures stay on the config status.
func (u *syncUsecase) SyncAll(ctx context.Context) error {
	configs, err := u.configRepo.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list configs: %w", err)
	}
	for _, cfg := range configs {
		if _, err := u.Sync(ctx, cfg.ID); err != nil {
			u.logger.Error("sync failed", "config_id", cfg.ID, "error", err)
		}
	}
	return nil
}

func (u *syncUsecase) markFailed(ctx context.Context, configID int64, cause error) {
	if err := u.configRepo.UpdateStatus(ctx, configID, entity.SyncError(cause.Error()), time.Now()); err != nil {
		u.logger.Error("failed to record sync error", "config_id", configID, "error", err)
	}
}

// importRows runs the hybrid parse: rows with a recognizable person
// name become Person+Solicitud records, everything else only lives in
// the snapshot. A row import failure skips the row, never the run.
func (u *syncUsecase) importRows(ctx context.Context, configID int64, grid [][]string, result *entity.SyncResult) {
	if len(grid) < 2 {
		return
	}
	cols := mapColumns(grid[0])
	if cols.name < 0 {
		// Nothing identifies a person; the planilla is snapshot-only.
		result.Skipped = len(grid) - 1
		return
	}

	for _, row := range grid[1:] {
		name := strings.TrimSpace(cellAt(row, cols.name))
		if name == "" {
			result.Skipped++
			continue
		}

		person, err := u.getOrCreatePerson(ctx, name)
		if err != nil {
			u.logger.Error("failed to resolve person", "name", name, "error", err)
			result.Skipped++
			continue
		}

		s := &entity.Solicitud{
			Description: strings.TrimSpace(cellAt(row, cols.description)),
			Status:      entity.StatusPending,
			Origin:      entity.OriginImported,
			EntryDate:   parseSheetDate(cellAt(row, cols.entryDate)),
			Amount:      parseSheetAmount(cellAt(row, cols.amount)),
			PersonID:    person.ID,
			ConfigID:    &configID,
			Zone:        strings.TrimSpace(cellAt(row, cols.zone)),
			Observation: strings.TrimSpace(cellAt(row, cols.observation)),
			Detail:      strings.TrimSpace(cellAt(row, cols.detail)),
		}
		if s.Description == "" {
			s.Description = s.Detail
		}
		if s.Description == "" {
			result.Skipped++
			continue
		}
		if st := normalizeStatus(cellAt(row, cols.status)); st != "" {
			s.Status = st
		}

		dup, err := u.solicitudRepo.ExistsDuplicate(ctx, person.ID, s.Description, s.EntryDate)
		if err != nil {
			u.logger.Error("duplicate check failed", "person_id", person.ID, "error", err)
			result.Skipped++
			continue
		}
		if dup {
			result.Duplicates++
			continue
		}

		if _, err := u.solicitudRepo.Create(ctx, s); err != nil {
			u.logger.Error("failed to import solicitud", "person_id", person.ID, "error", err)
			result.Skipped++
			continue
		}
		result.Imported++
	}
}

func (u *syncUsecase) getOrCreatePerson(ctx context.Context, name string) (*entity.Person, error) {
	person, err := u.personRepo.GetByName(ctx, name)
	if err == nil {
		return person, nil
	}
	if !domain.IsNotFound(err) {
		return nil, err
	}
	return u.personRepo.Create(ctx, &entity.Person{
		Name: name,
		Type: entity.PersonIndividual,
	})
}

// ============ grid helpers ============

// detectHeaderRow returns the index of the densest row (most non-blank
// cells) within the scan window. Ties go to the earliest row.
func detectHeaderRow(values [][]string) int {
	limit := len(values)
	if limit > headerScanWindow {
		limit = headerScanWindow
	}
	best, bestCount := 0, -1
	for i := 0; i < limit; i++ {
		count := 0
		for _, cell := range values[i] {
			if strings.TrimSpace(cell) != "" {
				count++
			}
		}
		if count > bestCount {
			best, bestCount = i, count
		}
	}
	return best
}

// columnMap holds the detected column index per field, -1 when absent.
type columnMap struct {
	name        int
	description int
	detail      int
	entryDate   int
	zone        int
	amount      int
	status      int
	observation int
}

func mapColumns(header []string) columnMap {
	return columnMap{
		name:        findColumn(header, "nombre", "solicitante", "vecino"),
		description: findColumn(header, "descripcion", "descripción", "pedido", "solicitud"),
		detail:      findColumn(header, "detalle"),
		entryDate:   findColumn(header, "fecha"),
		zone:        findColumn(header, "zona"),
		amount:      findColumn(header, "monto", "importe"),
		status:      findColumn(header, "estado", "status"),
		observation: findColumn(header, "observacion", "observación"),
	}
}

// findColumn returns the first header whose lowercase form contains any
// of the fragments, or -1.
func findColumn(header []string, fragments ...string) int {
	for i, h := range header {
		lower := strings.ToLower(strings.TrimSpace(h))
		for _, f := range fragments {
			if strings.Contains(lower, f) {
				return i
			}
		}
	}
	return -1
}

func cellAt(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}

// parseSheetDate accepts the two date shapes planillas use, D/M/YYYY
// and YYYY-M-D. Anything else yields nil.
func parseSheetDate(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	for _, layout := range []string{"2/1/2006", "02/01/2006", "2006-01-02", "2006-1-2"} {
		if ts, err := time.Parse(layout, s); err == nil {
			return &ts
		}
	}
	return nil
}

// parseSheetAmount reads a money cell: currency sign and thousands
// separators stripped, comma accepted as the decimal mark.
func parseSheetAmount(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	s = strings.ReplaceAll(s, "$", "")
	s = strings.ReplaceAll(s, " ", "")
	if strings.Contains(s, ",") {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 {
		return nil
	}
	return &v
}

// normalizeStatus maps the free-form status cells planillas carry onto
// the fixed status set; unrecognized values keep the default.
func normalizeStatus(s string) string {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "PENDIENTE", entity.StatusPending:
		return entity.StatusPending
	case "EN PROCESO", "EN_PROCESO", entity.StatusInProgress:
		return entity.StatusInProgress
	case "COMPLETADO", "COMPLETADA", "RESUELTO", entity.StatusCompleted:
		return entity.StatusCompleted
	case "RECHAZADO", "RECHAZADA", entity.StatusRejected:
		return entity.StatusRejected
	}
	return ""
}
