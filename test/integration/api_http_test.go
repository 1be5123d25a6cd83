//go:build integration
// +build integration

package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/network/netpoll"

	"github.com/fdieguez/sgp/internal/config"
	"github.com/fdieguez/sgp/internal/domain/entity"
	"github.com/fdieguez/sgp/internal/handler"
	infradb "github.com/fdieguez/sgp/internal/infrastructure/database"
	"github.com/fdieguez/sgp/internal/router"
	"github.com/fdieguez/sgp/internal/usecase"
	dbpkg "github.com/fdieguez/sgp/pkg/database"
)

const (
	testAddr     = "127.0.0.1:18090"
	testEmail    = "admin@example.com"
	testPassword = "secret123"
	testSecret   = "integration-test-secret-0123456789ab"
)

// stubSource serves a canned planilla: a title row above the real
// header, three parseable rows and one row without a name.
type stubSource struct{}

func (stubSource) FetchValues(ctx context.Context, spreadsheetID, sheetName string) ([][]string, error) {
	return [][]string{
		{"Planilla de pedidos 2025", "", "", "", "", ""},
		{"Nombre", "Pedido", "Fecha", "Monto", "Estado", "Zona"},
		{"Ana Lopez", "Chapas", "14/03/2025", "$1.500,50", "PENDIENTE", "Norte"},
		{"Juan Perez", "Materiales", "2025-03-15", "", "RESUELTO", "Sur"},
		{"Ana Lopez", "Colchones", "16/03/2025", "300", "", "Norte"},
		{"", "Sin solicitante", "", "", "", ""},
	}, nil
}

// apiResponse mirrors the server envelope with the data left raw.
type apiResponse struct {
	Code    string          `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// TestAPIHTTP boots the full server against a temp sqlite file and a
// stub sheet source, then drives the whole flow over real HTTP:
// login, planilla registration, sync, snapshot, records, dashboard.
func TestAPIHTTP(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelWarn}))
	slog.SetDefault(logger)

	dbCfg := config.DatabaseConfig{
		Path:         filepath.Join(t.TempDir(), "sgp.db"),
		MaxOpenConns: 1,
		MaxIdleConns: 1,
	}

	db, err := dbpkg.Open(dbCfg, logger)
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	if err := dbpkg.Migrate(db, infradb.Migrations, logger); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	userRepo := infradb.NewUserRepository(db)
	configRepo := infradb.NewConfigRepository(db)
	projectRepo := infradb.NewProjectRepository(db)
	personRepo := infradb.NewPersonRepository(db)
	locationRepo := infradb.NewLocationRepository(db)
	responsableRepo := infradb.NewResponsableRepository(db)
	solicitudRepo := infradb.NewSolicitudRepository(db)

	userUsecase := usecase.NewUserUsecase(userRepo, logger)
	configUsecase := usecase.NewConfigUsecase(configRepo, logger)
	projectUsecase := usecase.NewProjectUsecase(projectRepo, configRepo, logger)
	syncUsecase := usecase.NewSyncUsecase(configRepo, projectRepo, personRepo, solicitudRepo, stubSource{}, logger)
	solicitudUsecase := usecase.NewSolicitudUsecase(solicitudRepo, personRepo, logger)

	hs := router.Handlers{
		User:        handler.NewUserHandler(userUsecase, testSecret, logger),
		Config:      handler.NewConfigHandler(configUsecase, logger),
		Sync:        handler.NewSyncHandler(syncUsecase, logger),
		Project:     handler.NewProjectHandler(projectUsecase, logger),
		Solicitud:   handler.NewSolicitudHandler(solicitudUsecase, logger),
		Person:      handler.NewPersonHandler(usecase.NewPersonUsecase(personRepo, logger), logger),
		Location:    handler.NewLocationHandler(usecase.NewLocationUsecase(locationRepo, logger), logger),
		Responsable: handler.NewResponsableHandler(usecase.NewResponsableUsecase(responsableRepo, logger), logger),
		Dashboard:   handler.NewDashboardHandler(usecase.NewDashboardUsecase(solicitudRepo), logger),
		Health:      handler.NewHealthHandler(db),
	}

	// Seed the first administrator the way the create-admin command does
	if _, err := userUsecase.Register(context.Background(), testEmail, testPassword, entity.RoleAdmin); err != nil {
		t.Fatalf("failed to seed admin: %v", err)
	}

	h := server.New(
		server.WithHostPorts(testAddr),
		server.WithTransport(netpoll.NewTransporter),
	)
	router.Setup(h, hs)

	go func() {
		if err := h.Run(); err != nil {
			logger.Error("server failed", "error", err)
		}
	}()
	time.Sleep(2 * time.Second)
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		h.Shutdown(ctx)
	}()

	baseURL := "http://" + testAddr
	client := &http.Client{Timeout: 30 * time.Second}
	var token string
	var configID int64

	t.Run("login", func(t *testing.T) {
		resp := doJSON(t, client, "POST", baseURL+"/api/auth/login", "",
			map[string]string{"email": testEmail, "password": testPassword}, http.StatusOK)

		var data struct {
			Token string `json:"token"`
			Email string `json:"email"`
			Role  string `json:"role"`
		}
		mustUnmarshal(t, resp.Data, &data)
		if data.Token == "" {
			t.Fatal("expected a token")
		}
		if data.Role != "ADMIN" {
			t.Errorf("expected role ADMIN, got %q", data.Role)
		}
		token = data.Token
	})

	t.Run("rejects missing token", func(t *testing.T) {
		req, _ := http.NewRequest("GET", baseURL+"/api/config", nil)
		resp, err := client.Do(req)
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", resp.StatusCode)
		}
	})

	t.Run("register planilla", func(t *testing.T) {
		resp := doJSON(t, client, "POST", baseURL+"/api/config", token,
			map[string]string{"spreadsheet_id": "sheet-abc", "sheet_name": "Pedidos 2025"}, http.StatusCreated)

		var data struct {
			ID     int64  `json:"id"`
			Status string `json:"status"`
		}
		mustUnmarshal(t, resp.Data, &data)
		if data.ID == 0 {
			t.Fatal("expected a config id")
		}
		if data.Status != "PENDING" {
			t.Errorf("expected status PENDING, got %q", data.Status)
		}
		configID = data.ID
	})

	t.Run("sync imports rows", func(t *testing.T) {
		resp := doJSON(t, client, "POST", fmt.Sprintf("%s/api/sync/%d", baseURL, configID), token, nil, http.StatusOK)

		var data struct {
			RowCount   int `json:"row_count"`
			Imported   int `json:"imported"`
			Skipped    int `json:"skipped"`
			Duplicates int `json:"duplicates"`
		}
		mustUnmarshal(t, resp.Data, &data)
		if data.RowCount != 4 {
			t.Errorf("expected 4 data rows, got %d", data.RowCount)
		}
		if data.Imported != 3 {
			t.Errorf("expected 3 imported, got %d", data.Imported)
		}
		if data.Skipped != 1 {
			t.Errorf("expected 1 skipped, got %d", data.Skipped)
		}
	})

	t.Run("snapshot drops the title row", func(t *testing.T) {
		resp := doJSON(t, client, "GET", fmt.Sprintf("%s/api/projects/by-config/%d", baseURL, configID), token, nil, http.StatusOK)

		var data struct {
			Name string     `json:"name"`
			Data [][]string `json:"data"`
		}
		mustUnmarshal(t, resp.Data, &data)
		if data.Name != "Pedidos 2025" {
			t.Errorf("expected snapshot name 'Pedidos 2025', got %q", data.Name)
		}
		if len(data.Data) != 5 {
			t.Fatalf("expected header + 4 rows, got %d rows", len(data.Data))
		}
		if data.Data[0][0] != "Nombre" {
			t.Errorf("expected header row first, got %q", data.Data[0][0])
		}
	})

	t.Run("records carry parsed fields", func(t *testing.T) {
		resp := doJSON(t, client, "GET", fmt.Sprintf("%s/api/solicitudes/config/%d", baseURL, configID), token, nil, http.StatusOK)

		var data struct {
			Items []struct {
				Description string   `json:"description"`
				Status      string   `json:"status"`
				PersonName  string   `json:"person_name"`
				EntryDate   *string  `json:"entry_date"`
				Amount      *float64 `json:"amount"`
			} `json:"items"`
			TotalCount int `json:"totalCount"`
		}
		mustUnmarshal(t, resp.Data, &data)
		if data.TotalCount != 3 {
			t.Fatalf("expected 3 records, got %d", data.TotalCount)
		}

		byDesc := make(map[string]int)
		for i, it := range data.Items {
			byDesc[it.Description] = i
		}
		idx, ok := byDesc["Chapas"]
		if !ok {
			t.Fatal("expected imported record 'Chapas'")
		}
		chapas := data.Items[idx]
		if chapas.PersonName != "Ana Lopez" {
			t.Errorf("expected person 'Ana Lopez', got %q", chapas.PersonName)
		}
		if chapas.Status != "PENDING" {
			t.Errorf("expected normalized status PENDING, got %q", chapas.Status)
		}
		if chapas.Amount == nil || *chapas.Amount != 1500.50 {
			t.Errorf("expected amount 1500.50, got %v", chapas.Amount)
		}
		if chapas.EntryDate == nil || *chapas.EntryDate != "2025-03-14" {
			t.Errorf("expected entry date 2025-03-14, got %v", chapas.EntryDate)
		}
	})

	t.Run("resync counts duplicates", func(t *testing.T) {
		resp := doJSON(t, client, "POST", fmt.Sprintf("%s/api/sync/%d", baseURL, configID), token, nil, http.StatusOK)

		var data struct {
			Imported   int `json:"imported"`
			Duplicates int `json:"duplicates"`
		}
		mustUnmarshal(t, resp.Data, &data)
		if data.Imported != 0 {
			t.Errorf("expected 0 imported on resync, got %d", data.Imported)
		}
		if data.Duplicates != 3 {
			t.Errorf("expected 3 duplicates on resync, got %d", data.Duplicates)
		}
	})

	t.Run("dashboard totals", func(t *testing.T) {
		resp := doJSON(t, client, "GET", baseURL+"/api/dashboard/stats", token, nil, http.StatusOK)

		var data struct {
			TotalOrders     int            `json:"total_orders"`
			TotalSubsidies  int            `json:"total_subsidies"`
			SubsidyAmount   float64        `json:"subsidy_amount"`
			CompletedOrders int            `json:"completed_orders"`
			OrdersByOrigin  map[string]int `json:"orders_by_origin"`
		}
		mustUnmarshal(t, resp.Data, &data)

		// Rows with an amount are subsidies, the one without is an order
		if data.TotalOrders != 1 {
			t.Errorf("expected 1 order, got %d", data.TotalOrders)
		}
		if data.TotalSubsidies != 2 {
			t.Errorf("expected 2 subsidies, got %d", data.TotalSubsidies)
		}
		if data.SubsidyAmount != 1800.50 {
			t.Errorf("expected subsidy amount 1800.50, got %v", data.SubsidyAmount)
		}
		if data.OrdersByOrigin["IMPORTED"] != 1 {
			t.Errorf("expected 1 imported order by origin, got %v", data.OrdersByOrigin)
		}
	})
}

// doJSON sends one JSON request and decodes the response envelope.
func doJSON(t *testing.T, client *http.Client, method, url, token string, body interface{}, wantStatus int) *apiResponse {
	t.Helper()

	var reader io.Reader
	if body != nil {
		bodyBytes, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal request: %v", err)
		}
		reader = bytes.NewReader(bodyBytes)
	}

	req, err := http.NewRequest(method, url, reader)
	if err != nil {
		t.Fatalf("failed to create request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != wantStatus {
		t.Fatalf("%s %s: expected status %d, got %d, body: %s", method, url, wantStatus, resp.StatusCode, raw)
	}

	var envelope apiResponse
	if err := json.Unmarshal(raw, &envelope); err != nil {
		t.Fatalf("failed to decode envelope: %v, body: %s", err, raw)
	}
	return &envelope
}

func mustUnmarshal(t *testing.T, raw json.RawMessage, dst interface{}) {
	t.Helper()
	if err := json.Unmarshal(raw, dst); err != nil {
		t.Fatalf("failed to decode data: %v, data: %s", err, raw)
	}
}
