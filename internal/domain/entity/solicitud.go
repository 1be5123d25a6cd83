package entity

import "time"

// Solicitud statuses.
const (
	StatusPending    = "PENDING"
	StatusInProgress = "IN_PROGRESS"
	StatusCompleted  = "COMPLETED"
	StatusRejected   = "REJECTED"
)

// Solicitud origins.
const (
	OriginWhatsapp    = "WHATSAPP"
	OriginNote        = "NOTE"
	OriginEmail       = "EMAIL"
	OriginSocialMedia = "SOCIAL_MEDIA"
	OriginImported    = "IMPORTED"
)

// ValidStatus reports whether s is a known solicitud status.
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted, StatusRejected:
		return true
	}
	return false
}

// ValidOrigin reports whether s is a known solicitud origin.
func ValidOrigin(s string) bool {
	switch s {
	case OriginWhatsapp, OriginNote, OriginEmail, OriginSocialMedia, OriginImported:
		return true
	}
	return false
}

// Solicitud is a case record: a request made by a person, tracked from
// entry to resolution. A non-nil Amount marks the record as a subsidy;
// records without an amount are plain orders. That single field decides
// which of the two list endpoints the record appears under.
type Solicitud struct {
	ID                  int64
	Description         string
	Status              string
	Origin              string
	EntryDate           *time.Time
	ContactDate         *time.Time
	ResolutionDate      *time.Time
	GrantDate           *time.Time
	Amount              *float64
	PersonID            int64
	LocationID          *int64
	ResponsableID       *int64
	ConfigID            *int64
	Zone                string
	Observation         string
	Resolution          string
	Detail              string
	FirstContactControl bool
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// IsSubsidy reports whether the record carries a monetary amount.
func (s *Solicitud) IsSubsidy() bool {
	return s.Amount != nil
}

// SolicitudDetail joins a solicitud with its resolved references for
// listings and the structured exploration views. Nil references mean
// the record has no such link.
type SolicitudDetail struct {
	Solicitud
	Person      *Person
	Location    *Location
	Responsable *Responsable
}

// PersonName resolves the nested person name; empty when missing.
func (d *SolicitudDetail) PersonName() string {
	if d.Person == nil {
		return ""
	}
	return d.Person.Name
}

// LocationName resolves the nested location name; empty when missing.
func (d *SolicitudDetail) LocationName() string {
	if d.Location == nil {
		return ""
	}
	return d.Location.Name
}

// ResponsableName resolves the nested responsable name; empty when
// missing.
func (d *SolicitudDetail) ResponsableName() string {
	if d.Responsable == nil {
		return ""
	}
	return d.Responsable.Name
}

// DashboardStats is the aggregate summary behind /api/dashboard/stats.
type DashboardStats struct {
	TotalOrders     int
	PendingOrders   int
	CompletedOrders int
	TotalSubsidies  int
	SubsidyAmount   float64
	OrdersByOrigin  map[string]int
}

// SyncResult summarizes one synchronization run.
type SyncResult struct {
	ConfigID   int64
	RowCount   int
	Imported   int
	Skipped    int
	Duplicates int
	SyncedAt   time.Time
}
