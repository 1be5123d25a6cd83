package dto

import "github.com/fdieguez/sgp/internal/domain/entity"

// PersonRequest creates or replaces a requester (HTTP).
type PersonRequest struct {
	Name       string `json:"name" binding:"required"`
	DocumentID string `json:"document_id"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	Type       string `json:"type"`
}

// ToEntity converts the request into a domain person.
func (r *PersonRequest) ToEntity() *entity.Person {
	return &entity.Person{
		Name:       r.Name,
		DocumentID: r.DocumentID,
		Phone:      r.Phone,
		Address:    r.Address,
		Type:       r.Type,
	}
}

// PersonResponse is the requester representation (HTTP).
type PersonResponse struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	DocumentID string `json:"document_id,omitempty"`
	Phone      string `json:"phone,omitempty"`
	Address    string `json:"address,omitempty"`
	Type       string `json:"type"`
}

// ToPersonResponse converts entity.Person to PersonResponse DTO
func ToPersonResponse(p *entity.Person) *PersonResponse {
	return &PersonResponse{
		ID:         p.ID,
		Name:       p.Name,
		DocumentID: p.DocumentID,
		Phone:      p.Phone,
		Address:    p.Address,
		Type:       p.Type,
	}
}

// ToPersonListResponse converts a slice of entity.Person to DTOs
func ToPersonListResponse(persons []*entity.Person) []*PersonResponse {
	out := make([]*PersonResponse, len(persons))
	for i, p := range persons {
		out[i] = ToPersonResponse(p)
	}
	return out
}

// LocationRequest creates or replaces a place (HTTP).
type LocationRequest struct {
	Name     string `json:"name" binding:"required"`
	ParentID *int64 `json:"parent_id"`
}

// ToEntity converts the request into a domain location.
func (r *LocationRequest) ToEntity() *entity.Location {
	return &entity.Location{
		Name:     r.Name,
		ParentID: r.ParentID,
	}
}

// LocationResponse is the place representation (HTTP).
type LocationResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	ParentID *int64 `json:"parent_id,omitempty"`
}

// ToLocationResponse converts entity.Location to LocationResponse DTO
func ToLocationResponse(l *entity.Location) *LocationResponse {
	return &LocationResponse{
		ID:       l.ID,
		Name:     l.Name,
		ParentID: l.ParentID,
	}
}

// ToLocationListResponse converts a slice of entity.Location to DTOs
func ToLocationListResponse(locations []*entity.Location) []*LocationResponse {
	out := make([]*LocationResponse, len(locations))
	for i, l := range locations {
		out[i] = ToLocationResponse(l)
	}
	return out
}

// ResponsableRequest creates or replaces a staff member (HTTP).
type ResponsableRequest struct {
	Name string `json:"name" binding:"required"`
	Area string `json:"area"`
}

// ToEntity converts the request into a domain responsable.
func (r *ResponsableRequest) ToEntity() *entity.Responsable {
	return &entity.Responsable{
		Name: r.Name,
		Area: r.Area,
	}
}

// ResponsableResponse is the staff-member representation (HTTP).
type ResponsableResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Area string `json:"area,omitempty"`
}

// ToResponsableResponse converts entity.Responsable to ResponsableResponse DTO
func ToResponsableResponse(r *entity.Responsable) *ResponsableResponse {
	return &ResponsableResponse{
		ID:   r.ID,
		Name: r.Name,
		Area: r.Area,
	}
}

// ToResponsableListResponse converts a slice of entity.Responsable to DTOs
func ToResponsableListResponse(responsables []*entity.Responsable) []*ResponsableResponse {
	out := make([]*ResponsableResponse, len(responsables))
	for i, r := range responsables {
		out[i] = ToResponsableResponse(r)
	}
	return out
}
