package dto

import (
	"time"

	"github.com/fdieguez/sgp/internal/domain/entity"
)

// SolicitudRequest creates or replaces a case record (HTTP).
type SolicitudRequest struct {
	Description         string   `json:"description" binding:"required"`
	Status              string   `json:"status"`
	Origin              string   `json:"origin"`
	EntryDate           *string  `json:"entry_date"`
	ContactDate         *string  `json:"contact_date"`
	ResolutionDate      *string  `json:"resolution_date"`
	GrantDate           *string  `json:"grant_date"`
	Amount              *float64 `json:"amount"`
	PersonID            int64    `json:"person_id" binding:"required"`
	LocationID          *int64   `json:"location_id"`
	ResponsableID       *int64   `json:"responsable_id"`
	ConfigID            *int64   `json:"config_id"`
	Zone                string   `json:"zone"`
	Observation         string   `json:"observation"`
	Resolution          string   `json:"resolution"`
	Detail              string   `json:"detail"`
	FirstContactControl bool     `json:"first_contact_control"`
}

// ToEntity converts the request into a domain solicitud. Dates arrive
// as RFC 3339 date strings; a malformed one fails the whole request.
func (r *SolicitudRequest) ToEntity() (*entity.Solicitud, error) {
	s := &entity.Solicitud{
		Description:         r.Description,
		Status:              r.Status,
		Origin:              r.Origin,
		Amount:              r.Amount,
		PersonID:            r.PersonID,
		LocationID:          r.LocationID,
		ResponsableID:       r.ResponsableID,
		ConfigID:            r.ConfigID,
		Zone:                r.Zone,
		Observation:         r.Observation,
		Resolution:          r.Resolution,
		Detail:              r.Detail,
		FirstContactControl: r.FirstContactControl,
	}

	for _, d := range []struct {
		src *string
		dst **time.Time
	}{
		{r.EntryDate, &s.EntryDate},
		{r.ContactDate, &s.ContactDate},
		{r.ResolutionDate, &s.ResolutionDate},
		{r.GrantDate, &s.GrantDate},
	} {
		if d.src == nil || *d.src == "" {
			continue
		}
		t, err := time.Parse("2006-01-02", *d.src)
		if err != nil {
			return nil, err
		}
		*d.dst = &t
	}

	return s, nil
}

// SolicitudResponse is the case-record representation (HTTP), with
// referenced names denormalized for listings.
type SolicitudResponse struct {
	ID                  int64    `json:"id"`
	Description         string   `json:"description"`
	Status              string   `json:"status"`
	Origin              string   `json:"origin"`
	EntryDate           *string  `json:"entry_date,omitempty"`
	ContactDate         *string  `json:"contact_date,omitempty"`
	ResolutionDate      *string  `json:"resolution_date,omitempty"`
	GrantDate           *string  `json:"grant_date,omitempty"`
	Amount              *float64 `json:"amount,omitempty"`
	PersonID            int64    `json:"person_id"`
	PersonName          string   `json:"person_name,omitempty"`
	LocationID          *int64   `json:"location_id,omitempty"`
	LocationName        string   `json:"location_name,omitempty"`
	ResponsableID       *int64   `json:"responsable_id,omitempty"`
	ResponsableName     string   `json:"responsable_name,omitempty"`
	ConfigID            *int64   `json:"config_id,omitempty"`
	Zone                string   `json:"zone,omitempty"`
	Observation         string   `json:"observation,omitempty"`
	Resolution          string   `json:"resolution,omitempty"`
	Detail              string   `json:"detail,omitempty"`
	FirstContactControl bool     `json:"first_contact_control"`
	Subsidy             bool     `json:"subsidy"`
	CreatedAt           string   `json:"created_at"`
	UpdatedAt           string   `json:"updated_at"`
}

// ToSolicitudResponse converts entity.SolicitudDetail to SolicitudResponse DTO
func ToSolicitudResponse(d *entity.SolicitudDetail) *SolicitudResponse {
	resp := &SolicitudResponse{
		ID:                  d.ID,
		Description:         d.Description,
		Status:              d.Status,
		Origin:              d.Origin,
		EntryDate:           formatDate(d.EntryDate),
		ContactDate:         formatDate(d.ContactDate),
		ResolutionDate:      formatDate(d.ResolutionDate),
		GrantDate:           formatDate(d.GrantDate),
		Amount:              d.Amount,
		PersonID:            d.PersonID,
		PersonName:          d.PersonName(),
		LocationID:          d.LocationID,
		LocationName:        d.LocationName(),
		ResponsableID:       d.ResponsableID,
		ResponsableName:     d.ResponsableName(),
		ConfigID:            d.ConfigID,
		Zone:                d.Zone,
		Observation:         d.Observation,
		Resolution:          d.Resolution,
		Detail:              d.Detail,
		FirstContactControl: d.FirstContactControl,
		Subsidy:             d.IsSubsidy(),
		CreatedAt:           d.CreatedAt.Format(time.RFC3339),
		UpdatedAt:           d.UpdatedAt.Format(time.RFC3339),
	}
	return resp
}

// ToSolicitudListResponse converts a slice of entity.SolicitudDetail to DTOs
func ToSolicitudListResponse(details []*entity.SolicitudDetail) []*SolicitudResponse {
	out := make([]*SolicitudResponse, len(details))
	for i, d := range details {
		out[i] = ToSolicitudResponse(d)
	}
	return out
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format("2006-01-02")
	return &s
}
