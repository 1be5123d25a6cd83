package dto

import (
	"time"

	"github.com/fdieguez/sgp/internal/domain/entity"
)

// CreateConfigRequest registers a planilla to mirror (HTTP).
type CreateConfigRequest struct {
	SpreadsheetID string `json:"spreadsheet_id" binding:"required"`
	SheetName     string `json:"sheet_name" binding:"required"`
}

// ConfigResponse is the planilla-configuration representation (HTTP).
type ConfigResponse struct {
	ID            int64   `json:"id"`
	SpreadsheetID string  `json:"spreadsheet_id"`
	SheetName     string  `json:"sheet_name"`
	DisplayName   string  `json:"display_name"`
	Status        string  `json:"status"`
	LastSync      *string `json:"last_sync,omitempty"`
	CreatedAt     string  `json:"created_at"`
}

// SyncResultResponse summarizes one synchronization run (HTTP).
type SyncResultResponse struct {
	ConfigID   int64  `json:"config_id"`
	RowCount   int    `json:"row_count"`
	Imported   int    `json:"imported"`
	Skipped    int    `json:"skipped"`
	Duplicates int    `json:"duplicates"`
	SyncedAt   string `json:"synced_at"`
}

// ToConfigResponse converts entity.SheetsConfig to ConfigResponse DTO
func ToConfigResponse(cfg *entity.SheetsConfig) *ConfigResponse {
	resp := &ConfigResponse{
		ID:            cfg.ID,
		SpreadsheetID: cfg.SpreadsheetID,
		SheetName:     cfg.SheetName,
		DisplayName:   cfg.DisplayName(),
		Status:        cfg.Status,
		CreatedAt:     cfg.CreatedAt.Format(time.RFC3339),
	}

	if cfg.LastSync != nil {
		lastSync := cfg.LastSync.Format(time.RFC3339)
		resp.LastSync = &lastSync
	}

	return resp
}

// ToConfigListResponse converts a slice of entity.SheetsConfig to DTOs
func ToConfigListResponse(configs []*entity.SheetsConfig) []*ConfigResponse {
	out := make([]*ConfigResponse, len(configs))
	for i, cfg := range configs {
		out[i] = ToConfigResponse(cfg)
	}
	return out
}

// ToSyncResultResponse converts entity.SyncResult to SyncResultResponse DTO
func ToSyncResultResponse(result *entity.SyncResult) *SyncResultResponse {
	return &SyncResultResponse{
		ConfigID:   result.ConfigID,
		RowCount:   result.RowCount,
		Imported:   result.Imported,
		Skipped:    result.Skipped,
		Duplicates: result.Duplicates,
		SyncedAt:   result.SyncedAt.Format(time.RFC3339),
	}
}
