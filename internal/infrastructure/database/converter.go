package database

import (
	"database/sql"
	"errors"
	"time"

	"github.com/mattn/go-sqlite3"

	"github.com/fdieguez/sgp/internal/domain/entity"
)

// Row types mirror the table columns; the converters below translate
// them into domain entities so sqlx mechanics never leak upward.

type userRow struct {
	ID           string       `db:"id"`
	Email        string       `db:"email"`
	PasswordHash string       `db:"password_hash"`
	Role         string       `db:"role"`
	LastLoginAt  sql.NullTime `db:"last_login_at"`
	DeletedAt    sql.NullTime `db:"deleted_at"`
	CreatedAt    time.Time    `db:"created_at"`
	UpdatedAt    time.Time    `db:"updated_at"`
}

func (r userRow) toEntity() *entity.User {
	return &entity.User{
		ID:           r.ID,
		Email:        r.Email,
		PasswordHash: r.PasswordHash,
		Role:         entity.Role(r.Role),
		LastLoginAt:  nullTimePtr(r.LastLoginAt),
		DeletedAt:    nullTimePtr(r.DeletedAt),
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

type configRow struct {
	ID            int64        `db:"id"`
	SpreadsheetID string       `db:"spreadsheet_id"`
	SheetName     string       `db:"sheet_name"`
	Status        string       `db:"status"`
	LastSync      sql.NullTime `db:"last_sync"`
	CreatedAt     time.Time    `db:"created_at"`
	UpdatedAt     time.Time    `db:"updated_at"`
}

func (r configRow) toEntity() *entity.SheetsConfig {
	return &entity.SheetsConfig{
		ID:            r.ID,
		SpreadsheetID: r.SpreadsheetID,
		SheetName:     r.SheetName,
		Status:        r.Status,
		LastSync:      nullTimePtr(r.LastSync),
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}

type projectRow struct {
	ID        int64     `db:"id"`
	ConfigID  int64     `db:"config_id"`
	Name      string    `db:"name"`
	DataJSON  string    `db:"data_json"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (r projectRow) toEntity() *entity.Project {
	return &entity.Project{
		ID:        r.ID,
		ConfigID:  r.ConfigID,
		Name:      r.Name,
		DataJSON:  r.DataJSON,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

type personRow struct {
	ID         int64     `db:"id"`
	Name       string    `db:"name"`
	DocumentID string    `db:"document_id"`
	Phone      string    `db:"phone"`
	Address    string    `db:"address"`
	Type       string    `db:"type"`
	CreatedAt  time.Time `db:"created_at"`
	UpdatedAt  time.Time `db:"updated_at"`
}

func (r personRow) toEntity() *entity.Person {
	return &entity.Person{
		ID:         r.ID,
		Name:       r.Name,
		DocumentID: r.DocumentID,
		Phone:      r.Phone,
		Address:    r.Address,
		Type:       r.Type,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
}

type locationRow struct {
	ID        int64         `db:"id"`
	Name      string        `db:"name"`
	ParentID  sql.NullInt64 `db:"parent_id"`
	CreatedAt time.Time     `db:"created_at"`
	UpdatedAt time.Time     `db:"updated_at"`
}

func (r locationRow) toEntity() *entity.Location {
	return &entity.Location{
		ID:        r.ID,
		Name:      r.Name,
		ParentID:  nullInt64Ptr(r.ParentID),
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

type responsableRow struct {
	ID        int64     `db:"id"`
	Name      string    `db:"name"`
	Area      string    `db:"area"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (r responsableRow) toEntity() *entity.Responsable {
	return &entity.Responsable{
		ID:        r.ID,
		Name:      r.Name,
		Area:      r.Area,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

type solicitudRow struct {
	ID                  int64           `db:"id"`
	Description         string          `db:"description"`
	Status              string          `db:"status"`
	Origin              string          `db:"origin"`
	EntryDate           sql.NullTime    `db:"entry_date"`
	ContactDate         sql.NullTime    `db:"contact_date"`
	ResolutionDate      sql.NullTime    `db:"resolution_date"`
	GrantDate           sql.NullTime    `db:"grant_date"`
	Amount              sql.NullFloat64 `db:"amount"`
	PersonID            int64           `db:"person_id"`
	LocationID          sql.NullInt64   `db:"location_id"`
	ResponsableID       sql.NullInt64   `db:"responsable_id"`
	ConfigID            sql.NullInt64   `db:"config_id"`
	Zone                string          `db:"zone"`
	Observation         string          `db:"observation"`
	Resolution          string          `db:"resolution"`
	Detail              string          `db:"detail"`
	FirstContactControl bool            `db:"first_contact_control"`
	CreatedAt           time.Time       `db:"created_at"`
	UpdatedAt           time.Time       `db:"updated_at"`
}

func (r solicitudRow) toEntity() *entity.Solicitud {
	return &entity.Solicitud{
		ID:                  r.ID,
		Description:         r.Description,
		Status:              r.Status,
		Origin:              r.Origin,
		EntryDate:           nullTimePtr(r.EntryDate),
		ContactDate:         nullTimePtr(r.ContactDate),
		ResolutionDate:      nullTimePtr(r.ResolutionDate),
		GrantDate:           nullTimePtr(r.GrantDate),
		Amount:              nullFloat64Ptr(r.Amount),
		PersonID:            r.PersonID,
		LocationID:          nullInt64Ptr(r.LocationID),
		ResponsableID:       nullInt64Ptr(r.ResponsableID),
		ConfigID:            nullInt64Ptr(r.ConfigID),
		Zone:                r.Zone,
		Observation:         r.Observation,
		Resolution:          r.Resolution,
		Detail:              r.Detail,
		FirstContactControl: r.FirstContactControl,
		CreatedAt:           r.CreatedAt,
		UpdatedAt:           r.UpdatedAt,
	}
}

// ============ null helpers ============

func nullTimePtr(v sql.NullTime) *time.Time {
	if !v.Valid {
		return nil
	}
	t := v.Time
	return &t
}

func nullInt64Ptr(v sql.NullInt64) *int64 {
	if !v.Valid {
		return nil
	}
	n := v.Int64
	return &n
}

func nullFloat64Ptr(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}

func toNullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

func toNullInt64(n *int64) sql.NullInt64 {
	if n == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *n, Valid: true}
}

func toNullFloat64(f *float64) sql.NullFloat64 {
	if f == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *f, Valid: true}
}

// isUniqueViolation reports whether err is a sqlite unique-constraint
// failure.
func isUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
			sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
	}
	return false
}
