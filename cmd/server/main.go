package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/cloudwego/hertz/pkg/network/netpoll"
	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"

	"github.com/fdieguez/sgp/internal/config"
	"github.com/fdieguez/sgp/internal/domain"
	"github.com/fdieguez/sgp/internal/domain/entity"
	"github.com/fdieguez/sgp/internal/handler"
	infradb "github.com/fdieguez/sgp/internal/infrastructure/database"
	"github.com/fdieguez/sgp/internal/infrastructure/sheets"
	"github.com/fdieguez/sgp/internal/router"
	"github.com/fdieguez/sgp/internal/usecase"
	dbpkg "github.com/fdieguez/sgp/pkg/database"
	"github.com/fdieguez/sgp/pkg/logger"
)

var (
	cfgFile string
	version = "0.1.0"
)

var rootCmd = &cobra.Command{
	Use:   "sgp-server",
	Short: "SGP API server for spreadsheet-backed case management",
	Long: `SGP API server mirrors configured spreadsheet tabs into a local
database and serves them, together with the case records parsed out of
them, over a RESTful API.`,
	Version: version,
	Run:     runServer,
}

var createAdminCmd = &cobra.Command{
	Use:   "create-admin",
	Short: "Create an administrator account",
	Long: `Create an administrator account directly in the database. Use it
once after installation; further accounts are registered through the
API by an administrator.`,
	Run: runCreateAdmin,
}

var (
	adminEmail    string
	adminPassword string
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "configs/config.yaml", "path to config file")

	createAdminCmd.Flags().StringVar(&adminEmail, "email", "", "administrator email")
	createAdminCmd.Flags().StringVar(&adminPassword, "password", "", "administrator password")
	_ = createAdminCmd.MarkFlagRequired("email")
	_ = createAdminCmd.MarkFlagRequired("password")
	rootCmd.AddCommand(createAdminCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

func runServer(cmd *cobra.Command, args []string) {
	// Load configuration
	cfg, err := config.Load(cfgFile)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Initialize logger
	if err := logger.Setup(cfg.Log); err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}

	slog.Info("SGP API server starting...",
		"version", version,
		"config", cfgFile,
	)

	// Setup Hertz to use slog
	hertzLogger := logger.NewHertzSlogAdapter(slog.Default())
	hlog.SetLogger(hertzLogger)
	if cfg.Server.Mode == "debug" {
		hlog.SetLevel(hlog.LevelDebug)
	} else {
		hlog.SetLevel(hlog.LevelInfo)
	}

	// Open the database and run migrations
	db, err := dbpkg.Open(cfg.Database, slog.Default())
	if err != nil {
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	if err := dbpkg.Migrate(db, infradb.Migrations, slog.Default()); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("database ready", "path", cfg.Database.Path)

	// Repositories
	userRepo := infradb.NewUserRepository(db)
	configRepo := infradb.NewConfigRepository(db)
	projectRepo := infradb.NewProjectRepository(db)
	personRepo := infradb.NewPersonRepository(db)
	locationRepo := infradb.NewLocationRepository(db)
	responsableRepo := infradb.NewResponsableRepository(db)
	solicitudRepo := infradb.NewSolicitudRepository(db)

	// Sheet source: spreadsheet CSV export over HTTP, or local xlsx files
	source, err := newSheetSource(cfg)
	if err != nil {
		slog.Error("failed to create sheet source", "error", err)
		os.Exit(1)
	}
	slog.Info("sheet source configured", "source", cfg.Sheets.Source)

	// Usecases
	userUsecase := usecase.NewUserUsecase(userRepo, slog.Default())
	configUsecase := usecase.NewConfigUsecase(configRepo, slog.Default())
	projectUsecase := usecase.NewProjectUsecase(projectRepo, configRepo, slog.Default())
	syncUsecase := usecase.NewSyncUsecase(configRepo, projectRepo, personRepo, solicitudRepo, source, slog.Default())
	solicitudUsecase := usecase.NewSolicitudUsecase(solicitudRepo, personRepo, slog.Default())
	dashboardUsecase := usecase.NewDashboardUsecase(solicitudRepo)
	personUsecase := usecase.NewPersonUsecase(personRepo, slog.Default())
	locationUsecase := usecase.NewLocationUsecase(locationRepo, slog.Default())
	responsableUsecase := usecase.NewResponsableUsecase(responsableRepo, slog.Default())

	// Handlers
	hs := router.Handlers{
		User:        handler.NewUserHandler(userUsecase, cfg.JWT.Secret, slog.Default()),
		Config:      handler.NewConfigHandler(configUsecase, slog.Default()),
		Sync:        handler.NewSyncHandler(syncUsecase, slog.Default()),
		Project:     handler.NewProjectHandler(projectUsecase, slog.Default()),
		Solicitud:   handler.NewSolicitudHandler(solicitudUsecase, slog.Default()),
		Person:      handler.NewPersonHandler(personUsecase, slog.Default()),
		Location:    handler.NewLocationHandler(locationUsecase, slog.Default()),
		Responsable: handler.NewResponsableHandler(responsableUsecase, slog.Default()),
		Dashboard:   handler.NewDashboardHandler(dashboardUsecase, slog.Default()),
		Health:      handler.NewHealthHandler(db),
	}

	// Create Hertz server with performance optimization
	h := server.Default(
		server.WithHostPorts(cfg.GetServerAddr()),
		server.WithReadTimeout(cfg.GetReadTimeout()),
		server.WithWriteTimeout(cfg.GetWriteTimeout()),
		server.WithMaxRequestBodySize(cfg.Server.MaxRequestBodySize*1024*1024),
		server.WithTransport(netpoll.NewTransporter),
	)

	// Setup routes
	router.Setup(h, hs)

	// Periodic re-synchronization of every configured planilla
	var scheduler *cron.Cron
	if cfg.Sync.Enabled {
		scheduler = cron.New()
		_, err := scheduler.AddFunc(cfg.Sync.Schedule, func() {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
			defer cancel()
			if err := syncUsecase.SyncAll(ctx); err != nil {
				slog.Error("scheduled sync failed", "error", err)
			}
		})
		if err != nil {
			slog.Error("invalid sync schedule", "schedule", cfg.Sync.Schedule, "error", err)
			os.Exit(1)
		}
		scheduler.Start()
		slog.Info("periodic sync enabled", "schedule", cfg.Sync.Schedule)
	}

	slog.Info("server started successfully",
		"address", cfg.GetServerAddr(),
		"mode", cfg.Server.Mode,
	)

	// Graceful shutdown
	go func() {
		if err := h.Run(); err != nil {
			slog.Error("server run failed", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	if scheduler != nil {
		<-scheduler.Stop().Done()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := h.Shutdown(ctx); err != nil {
		slog.Error("server shutdown failed", "error", err)
		os.Exit(1)
	}

	if err := dbpkg.Close(db, slog.Default()); err != nil {
		slog.Error("failed to close database", "error", err)
	}

	slog.Info("server stopped gracefully")
}

// newSheetSource picks the snapshot source the configuration names.
func newSheetSource(cfg *config.Config) (domain.SheetSource, error) {
	switch cfg.Sheets.Source {
	case "xlsx":
		return sheets.NewXLSXSource(cfg.Sheets.Dir, slog.Default()), nil
	default:
		return sheets.NewHTTPSource(cfg.Sheets.BaseURL, cfg.Sheets.Timeout, slog.Default())
	}
}

func runCreateAdmin(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if err := logger.Setup(cfg.Log); err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}

	db, err := dbpkg.Open(cfg.Database, slog.Default())
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer func() { _ = dbpkg.Close(db, slog.Default()) }()

	if err := dbpkg.Migrate(db, infradb.Migrations, slog.Default()); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	userRepo := infradb.NewUserRepository(db)
	userUsecase := usecase.NewUserUsecase(userRepo, slog.Default())

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	user, err := userUsecase.Register(ctx, adminEmail, adminPassword, entity.RoleAdmin)
	if err != nil {
		log.Fatalf("failed to create administrator: %v", err)
	}

	slog.Info("administrator created", "user_id", user.ID, "email", user.Email)
}
