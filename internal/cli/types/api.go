package types

// APIResponse represents a generic API response with typed data
type APIResponse[T any] struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Data    T      `json:"data"`
}

// ListData represents a generic list data structure
type ListData[T any] struct {
	Items []T `json:"items"`
	Total int `json:"totalCount"`
}

// LoginRequest represents the login request payload
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginData represents the data returned after successful login
type LoginData struct {
	Token  string `json:"token"`
	Expire string `json:"expire"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

// ConfigItem represents a configured planilla
type ConfigItem struct {
	ID            int64   `json:"id"`
	SpreadsheetID string  `json:"spreadsheet_id"`
	SheetName     string  `json:"sheet_name"`
	DisplayName   string  `json:"display_name"`
	Status        string  `json:"status"`
	LastSync      *string `json:"last_sync,omitempty"`
	CreatedAt     string  `json:"created_at"`
}

// CreateConfigRequest registers a new planilla to mirror
type CreateConfigRequest struct {
	SpreadsheetID string `json:"spreadsheet_id"`
	SheetName     string `json:"sheet_name"`
}

// SyncResult reports the outcome of one synchronization run
type SyncResult struct {
	ConfigID   int64  `json:"config_id"`
	RowCount   int    `json:"row_count"`
	Imported   int    `json:"imported"`
	Skipped    int    `json:"skipped"`
	Duplicates int    `json:"duplicates"`
	SyncedAt   string `json:"synced_at"`
}

// ProjectData is a stored snapshot of a planilla tab, headers included
type ProjectData struct {
	ID        int64      `json:"id"`
	ConfigID  int64      `json:"config_id"`
	Name      string     `json:"name"`
	Data      [][]string `json:"data"`
	UpdatedAt string     `json:"updated_at"`
}

// Solicitud represents a case record with denormalized reference names
type Solicitud struct {
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

// CreateSolicitudRequest creates a case record through the API. Dates
// use the YYYY-MM-DD wire format.
type CreateSolicitudRequest struct {
	Description         string   `json:"description"`
	Status              string   `json:"status,omitempty"`
	Origin              string   `json:"origin,omitempty"`
	EntryDate           *string  `json:"entry_date,omitempty"`
	ContactDate         *string  `json:"contact_date,omitempty"`
	ResolutionDate      *string  `json:"resolution_date,omitempty"`
	GrantDate           *string  `json:"grant_date,omitempty"`
	Amount              *float64 `json:"amount,omitempty"`
	PersonID            int64    `json:"person_id"`
	LocationID          *int64   `json:"location_id,omitempty"`
	ResponsableID       *int64   `json:"responsable_id,omitempty"`
	ConfigID            *int64   `json:"config_id,omitempty"`
	Zone                string   `json:"zone,omitempty"`
	Observation         string   `json:"observation,omitempty"`
	Resolution          string   `json:"resolution,omitempty"`
	Detail              string   `json:"detail,omitempty"`
	FirstContactControl bool     `json:"first_contact_control,omitempty"`
}

// DashboardStats represents the dashboard aggregate counters
type DashboardStats struct {
	TotalOrders     int            `json:"total_orders"`
	PendingOrders   int            `json:"pending_orders"`
	CompletedOrders int            `json:"completed_orders"`
	TotalSubsidies  int            `json:"total_subsidies"`
	SubsidyAmount   float64        `json:"subsidy_amount"`
	OrdersByOrigin  map[string]int `json:"orders_by_origin"`
}
