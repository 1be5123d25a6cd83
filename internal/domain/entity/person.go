package entity

import "time"

// Person types.
const (
	PersonIndividual   = "INDIVIDUAL"
	PersonOrganization = "ORGANIZATION"
)

// Person is a requester: an individual neighbor or an organization.
type Person struct {
	ID         int64
	Name       string
	DocumentID string
	Phone      string
	Address    string
	Type       string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Location is a place a solicitud refers to. Locations nest one level:
// a neighborhood points at its locality through ParentID.
type Location struct {
	ID        int64
	Name      string
	ParentID  *int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Responsable is the staff member a solicitud is assigned to.
type Responsable struct {
	ID        int64
	Name      string
	Area      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
