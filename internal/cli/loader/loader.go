package loader

import (
	"fmt"
	"os"

	"sigs.k8s.io/yaml"

	"github.com/fdieguez/sgp/internal/cli/types"
)

// ResourceFile represents a resource definition loaded from a YAML file
type ResourceFile struct {
	// Kind specifies the resource type: "Planilla" or "Solicitud"
	Kind string `yaml:"kind"`
	// Spec contains the resource specification
	Spec ResourceSpec `yaml:"spec"`
}

// ResourceSpec defines a unified resource specification
type ResourceSpec struct {
	// Fields for Planilla
	SpreadsheetID string `yaml:"spreadsheetId,omitempty"`
	SheetName     string `yaml:"sheetName,omitempty"`

	// Fields for Solicitud
	Description         string   `yaml:"description,omitempty"`
	Status              string   `yaml:"status,omitempty"`
	Origin              string   `yaml:"origin,omitempty"`
	EntryDate           *string  `yaml:"entryDate,omitempty"`
	ContactDate         *string  `yaml:"contactDate,omitempty"`
	ResolutionDate      *string  `yaml:"resolutionDate,omitempty"`
	GrantDate           *string  `yaml:"grantDate,omitempty"`
	Amount              *float64 `yaml:"amount,omitempty"`
	PersonID            int64    `yaml:"personId,omitempty"`
	LocationID          *int64   `yaml:"locationId,omitempty"`
	ResponsableID       *int64   `yaml:"responsableId,omitempty"`
	ConfigID            *int64   `yaml:"configId,omitempty"`
	Zone                string   `yaml:"zone,omitempty"`
	Observation         string   `yaml:"observation,omitempty"`
	Resolution          string   `yaml:"resolution,omitempty"`
	Detail              string   `yaml:"detail,omitempty"`
	FirstContactControl bool     `yaml:"firstContactControl,omitempty"`
}

// LoadFromFile loads a resource definition from a YAML file.
// Supports loading Planilla and Solicitud resources.
func LoadFromFile(filepath string) (*ResourceFile, error) {
	// Read file
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	// Parse YAML
	var resource ResourceFile
	if err := yaml.Unmarshal(data, &resource); err != nil {
		return nil, fmt.Errorf("failed to parse yaml: %w", err)
	}

	// Validate Kind field
	if resource.Kind == "" {
		return nil, fmt.Errorf("'kind' field is required")
	}

	// Validate resource type
	switch resource.Kind {
	case "Planilla", "Solicitud":
		// Valid resource type
	default:
		return nil, fmt.Errorf("invalid kind '%s', must be 'Planilla' or 'Solicitud'", resource.Kind)
	}

	return &resource, nil
}

// ToCreateConfigRequest converts ResourceFile to CreateConfigRequest
func (r *ResourceFile) ToCreateConfigRequest() (*types.CreateConfigRequest, error) {
	if r.Kind != "Planilla" {
		return nil, fmt.Errorf("resource kind is '%s', expected 'Planilla'", r.Kind)
	}

	// Validate required fields
	if r.Spec.SpreadsheetID == "" {
		return nil, fmt.Errorf("spec.spreadsheetId is required")
	}
	if r.Spec.SheetName == "" {
		return nil, fmt.Errorf("spec.sheetName is required")
	}

	return &types.CreateConfigRequest{
		SpreadsheetID: r.Spec.SpreadsheetID,
		SheetName:     r.Spec.SheetName,
	}, nil
}

// ToCreateSolicitudRequest converts ResourceFile to CreateSolicitudRequest
func (r *ResourceFile) ToCreateSolicitudRequest() (*types.CreateSolicitudRequest, error) {
	if r.Kind != "Solicitud" {
		return nil, fmt.Errorf("resource kind is '%s', expected 'Solicitud'", r.Kind)
	}

	// Validate required fields
	if r.Spec.Description == "" {
		return nil, fmt.Errorf("spec.description is required")
	}
	if r.Spec.PersonID <= 0 {
		return nil, fmt.Errorf("spec.personId is required")
	}

	return &types.CreateSolicitudRequest{
		Description:         r.Spec.Description,
		Status:              r.Spec.Status,
		Origin:              r.Spec.Origin,
		EntryDate:           r.Spec.EntryDate,
		ContactDate:         r.Spec.ContactDate,
		ResolutionDate:      r.Spec.ResolutionDate,
		GrantDate:           r.Spec.GrantDate,
		Amount:              r.Spec.Amount,
		PersonID:            r.Spec.PersonID,
		LocationID:          r.Spec.LocationID,
		ResponsableID:       r.Spec.ResponsableID,
		ConfigID:            r.Spec.ConfigID,
		Zone:                r.Spec.Zone,
		Observation:         r.Spec.Observation,
		Resolution:          r.Spec.Resolution,
		Detail:              r.Spec.Detail,
		FirstContactControl: r.Spec.FirstContactControl,
	}, nil
}
