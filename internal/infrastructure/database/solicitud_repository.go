package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/fdieguez/sgp/internal/domain"
	"github.com/fdieguez/sgp/internal/domain/entity"
)

// solicitudRepository implements domain.SolicitudRepository over
// sqlite.
type solicitudRepository struct {
	db *sqlx.DB
}

// NewSolicitudRepository builds the sqlite-backed case-record store.
func NewSolicitudRepository(db *sqlx.DB) domain.SolicitudRepository {
	return &solicitudRepository{db: db}
}

func (r *solicitudRepository) Create(ctx context.Context, s *entity.Solicitud) (*entity.Solicitud, error) {
	now := time.Now()
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO solicitudes (
		   description, status, origin,
		   entry_date, contact_date, resolution_date, grant_date,
		   amount, person_id, location_id, responsable_id, config_id,
		   zone, observation, resolution, detail, first_contact_control,
		   created_at, updated_at
		 ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		s.Description, s.Status, s.Origin,
		toNullTime(s.EntryDate), toNullTime(s.ContactDate), toNullTime(s.ResolutionDate), toNullTime(s.GrantDate),
		toNullFloat64(s.Amount), s.PersonID, toNullInt64(s.LocationID), toNullInt64(s.ResponsableID), toNullInt64(s.ConfigID),
		s.Zone, s.Observation, s.Resolution, s.Detail, s.FirstContactControl,
		now, now)
	if err != nil {
		return nil, fmt.Errorf("failed to create solicitud: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to read solicitud id: %w", err)
	}

	detail, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	created := detail.Solicitud
	return &created, nil
}

func (r *solicitudRepository) GetByID(ctx context.Context, id int64) (*entity.SolicitudDetail, error) {
	var row solicitudRow
	err := r.db.GetContext(ctx, &row,
		`SELECT * FROM solicitudes WHERE id = ?`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewNotFoundError("Solicitud", fmt.Sprint(id))
		}
		return nil, fmt.Errorf("failed to get solicitud: %w", err)
	}

	details, err := r.resolveRefs(ctx, []solicitudRow{row})
	if err != nil {
		return nil, err
	}
	return details[0], nil
}

func (r *solicitudRepository) ListByConfig(ctx context.Context, configID int64) ([]*entity.SolicitudDetail, error) {
	return r.list(ctx,
		`SELECT * FROM solicitudes WHERE config_id = ? ORDER BY entry_date, id`, configID)
}

func (r *solicitudRepository) ListOrders(ctx context.Context) ([]*entity.SolicitudDetail, error) {
	return r.list(ctx,
		`SELECT * FROM solicitudes WHERE amount IS NULL ORDER BY entry_date, id`)
}

func (r *solicitudRepository) ListSubsidies(ctx context.Context) ([]*entity.SolicitudDetail, error) {
	return r.list(ctx,
		`SELECT * FROM solicitudes WHERE amount IS NOT NULL ORDER BY entry_date, id`)
}

func (r *solicitudRepository) list(ctx context.Context, query string, args ...interface{}) ([]*entity.SolicitudDetail, error) {
	var rows []solicitudRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list solicitudes: %w", err)
	}
	return r.resolveRefs(ctx, rows)
}

func (r *solicitudRepository) Update(ctx context.Context, s *entity.Solicitud) (*entity.Solicitud, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE solicitudes SET
		   description = ?, status = ?, origin = ?,
		   entry_date = ?, contact_date = ?, resolution_date = ?, grant_date = ?,
		   amount = ?, person_id = ?, location_id = ?, responsable_id = ?, config_id = ?,
		   zone = ?, observation = ?, resolution = ?, detail = ?, first_contact_control = ?,
		   updated_at = ?
		 WHERE id = ?`,
		s.Description, s.Status, s.Origin,
		toNullTime(s.EntryDate), toNullTime(s.ContactDate), toNullTime(s.ResolutionDate), toNullTime(s.GrantDate),
		toNullFloat64(s.Amount), s.PersonID, toNullInt64(s.LocationID), toNullInt64(s.ResponsableID), toNullInt64(s.ConfigID),
		s.Zone, s.Observation, s.Resolution, s.Detail, s.FirstContactControl,
		time.Now(), s.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to update solicitud: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, domain.NewNotFoundError("Solicitud", fmt.Sprint(s.ID))
	}

	detail, err := r.GetByID(ctx, s.ID)
	if err != nil {
		return nil, err
	}
	updated := detail.Solicitud
	return &updated, nil
}

func (r *solicitudRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM solicitudes WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete solicitud: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NewNotFoundError("Solicitud", fmt.Sprint(id))
	}
	return nil
}

// ExistsDuplicate guards the importer against re-importing the same
// row on every synchronization.
func (r *solicitudRepository) ExistsDuplicate(ctx context.Context, personID int64, description string, entryDate *time.Time) (bool, error) {
	var count int
	var err error
	if entryDate == nil {
		err = r.db.GetContext(ctx, &count,
			`SELECT COUNT(*) FROM solicitudes
			 WHERE person_id = ? AND description = ? AND entry_date IS NULL`,
			personID, description)
	} else {
		err = r.db.GetContext(ctx, &count,
			`SELECT COUNT(*) FROM solicitudes
			 WHERE person_id = ? AND description = ? AND entry_date = ?`,
			personID, description, *entryDate)
	}
	if err != nil {
		return false, fmt.Errorf("failed to check duplicates: %w", err)
	}
	return count > 0, nil
}

func (r *solicitudRepository) Stats(ctx context.Context) (*entity.DashboardStats, error) {
	stats := &entity.DashboardStats{OrdersByOrigin: make(map[string]int)}

	err := r.db.GetContext(ctx, &stats.TotalOrders,
		`SELECT COUNT(*) FROM solicitudes WHERE amount IS NULL`)
	if err != nil {
		return nil, fmt.Errorf("failed to count orders: %w", err)
	}

	err = r.db.GetContext(ctx, &stats.PendingOrders,
		`SELECT COUNT(*) FROM solicitudes WHERE amount IS NULL AND status = ?`,
		entity.StatusPending)
	if err != nil {
		return nil, fmt.Errorf("failed to count pending orders: %w", err)
	}

	err = r.db.GetContext(ctx, &stats.CompletedOrders,
		`SELECT COUNT(*) FROM solicitudes WHERE amount IS NULL AND status = ?`,
		entity.StatusCompleted)
	if err != nil {
		return nil, fmt.Errorf("failed to count completed orders: %w", err)
	}

	var subsidy struct {
		Count int     `db:"count"`
		Sum   float64 `db:"sum"`
	}
	err = r.db.GetContext(ctx, &subsidy,
		`SELECT COUNT(*) AS count, COALESCE(SUM(amount), 0) AS sum
		 FROM solicitudes WHERE amount IS NOT NULL`)
	if err != nil {
		return nil, fmt.Errorf("failed to sum subsidies: %w", err)
	}
	stats.TotalSubsidies = subsidy.Count
	stats.SubsidyAmount = subsidy.Sum

	rows, err := r.db.QueryxContext(ctx,
		`SELECT origin, COUNT(*) FROM solicitudes WHERE amount IS NULL GROUP BY origin`)
	if err != nil {
		return nil, fmt.Errorf("failed to group by origin: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var origin string
		var count int
		if err := rows.Scan(&origin, &count); err != nil {
			return nil, fmt.Errorf("failed to scan origin row: %w", err)
		}
		stats.OrdersByOrigin[origin] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate origin rows: %w", err)
	}

	return stats, nil
}

// resolveRefs loads the referenced persons, locations and responsables
// in three batched queries and stitches the details together.
func (r *solicitudRepository) resolveRefs(ctx context.Context, rows []solicitudRow) ([]*entity.SolicitudDetail, error) {
	personIDs := make([]int64, 0, len(rows))
	locationIDs := make([]int64, 0)
	responsableIDs := make([]int64, 0)
	seenPerson := make(map[int64]bool)
	seenLocation := make(map[int64]bool)
	seenResponsable := make(map[int64]bool)

	for _, row := range rows {
		if !seenPerson[row.PersonID] {
			seenPerson[row.PersonID] = true
			personIDs = append(personIDs, row.PersonID)
		}
		if row.LocationID.Valid && !seenLocation[row.LocationID.Int64] {
			seenLocation[row.LocationID.Int64] = true
			locationIDs = append(locationIDs, row.LocationID.Int64)
		}
		if row.ResponsableID.Valid && !seenResponsable[row.ResponsableID.Int64] {
			seenResponsable[row.ResponsableID.Int64] = true
			responsableIDs = append(responsableIDs, row.ResponsableID.Int64)
		}
	}

	persons, err := loadByIDs[personRow](ctx, r.db, `persons`, personIDs)
	if err != nil {
		return nil, err
	}
	locations, err := loadByIDs[locationRow](ctx, r.db, `locations`, locationIDs)
	if err != nil {
		return nil, err
	}
	responsables, err := loadByIDs[responsableRow](ctx, r.db, `responsables`, responsableIDs)
	if err != nil {
		return nil, err
	}

	details := make([]*entity.SolicitudDetail, len(rows))
	for i, row := range rows {
		d := &entity.SolicitudDetail{Solicitud: *row.toEntity()}
		if p, ok := persons[row.PersonID]; ok {
			d.Person = p.toEntity()
		}
		if row.LocationID.Valid {
			if l, ok := locations[row.LocationID.Int64]; ok {
				d.Location = l.toEntity()
			}
		}
		if row.ResponsableID.Valid {
			if resp, ok := responsables[row.ResponsableID.Int64]; ok {
				d.Responsable = resp.toEntity()
			}
		}
		details[i] = d
	}
	return details, nil
}

// idRow is implemented by the row types loadByIDs can batch-fetch.
type idRow interface {
	personRow | locationRow | responsableRow
}

func rowID[T idRow](row T) int64 {
	switch v := any(row).(type) {
	case personRow:
		return v.ID
	case locationRow:
		return v.ID
	case responsableRow:
		return v.ID
	}
	return 0
}

func loadByIDs[T idRow](ctx context.Context, db *sqlx.DB, table string, ids []int64) (map[int64]T, error) {
	out := make(map[int64]T, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	query, args, err := sqlx.In(`SELECT * FROM `+table+` WHERE id IN (?)`, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to build %s query: %w", table, err)
	}

	var rows []T
	if err := db.SelectContext(ctx, &rows, db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", table, err)
	}
	for _, row := range rows {
		out[rowID(row)] = row
	}
	return out, nil
}
