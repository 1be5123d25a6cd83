package entity

import "time"

// Project is the stored snapshot of one planilla: the raw 2-D array the
// sheet returned, JSON-encoded as a single string. Each config owns at
// most one project and re-synchronization replaces it wholesale.
type Project struct {
	ID        int64
	ConfigID  int64
	Name      string
	DataJSON  string
	CreatedAt time.Time
	UpdatedAt time.Time
}
