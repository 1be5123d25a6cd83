package entity

import (
	"fmt"
	"strings"
	"time"
)

// Synchronization states of a configured planilla. Failures carry the
// cause inline: "ERROR: <message>".
const (
	SyncPending     = "PENDING"
	SyncSuccess     = "SUCCESS"
	syncErrorPrefix = "ERROR: "
)

// SyncError renders a failure status with its cause.
func SyncError(cause string) string {
	return syncErrorPrefix + cause
}

// SheetsConfig points at one spreadsheet tab to mirror: which document,
// which sheet, and how the last synchronization went.
type SheetsConfig struct {
	ID            int64
	SpreadsheetID string
	SheetName     string
	Status        string
	LastSync      *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Failed reports whether the last synchronization ended in error.
func (c *SheetsConfig) Failed() bool {
	return strings.HasPrefix(c.Status, syncErrorPrefix)
}

// DisplayName is the human label used in listings.
func (c *SheetsConfig) DisplayName() string {
	return fmt.Sprintf("%s (%s)", c.SheetName, c.SpreadsheetID)
}
