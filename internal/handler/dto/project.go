package dto

import (
	"encoding/json"
	"time"

	"github.com/fdieguez/sgp/internal/domain/entity"
)

// ProjectResponse is the stored snapshot representation (HTTP). Data is
// the decoded 2-D array so clients feed it straight into the explorer.
type ProjectResponse struct {
	ID        int64      `json:"id"`
	ConfigID  int64      `json:"config_id"`
	Name      string     `json:"name"`
	Data      [][]string `json:"data"`
	UpdatedAt string     `json:"updated_at"`
}

// ToProjectResponse converts entity.Project to ProjectResponse DTO
func ToProjectResponse(project *entity.Project) (*ProjectResponse, error) {
	var data [][]string
	if project.DataJSON != "" {
		if err := json.Unmarshal([]byte(project.DataJSON), &data); err != nil {
			return nil, err
		}
	}

	return &ProjectResponse{
		ID:        project.ID,
		ConfigID:  project.ConfigID,
		Name:      project.Name,
		Data:      data,
		UpdatedAt: project.UpdatedAt.Format(time.RFC3339),
	}, nil
}
