package router

import (
	"github.com/cloudwego/hertz/pkg/app/server"

	"github.com/fdieguez/sgp/internal/handler"
	"github.com/fdieguez/sgp/internal/middleware"
)

// Handlers bundles everything Setup wires into routes.
type Handlers struct {
	User        *handler.UserHandler
	Config      *handler.ConfigHandler
	Sync        *handler.SyncHandler
	Project     *handler.ProjectHandler
	Solicitud   *handler.SolicitudHandler
	Person      *handler.PersonHandler
	Location    *handler.LocationHandler
	Responsable *handler.ResponsableHandler
	Dashboard   *handler.DashboardHandler
	Health      *handler.HealthHandler
}

// Setup sets up all routes
func Setup(h *server.Hertz, hs Handlers) {
	// Global middleware
	h.Use(middleware.Recovery())
	h.Use(middleware.Logger())
	h.Use(middleware.CORS())

	// Health check routes (no authentication required)
	h.GET("/ping", hs.Health.Ping)
	h.GET("/health/ready", hs.Health.Readiness)
	h.GET("/health/live", hs.Health.Liveness)

	// API routes
	api := h.Group("/api")
	{
		// ============ Public routes (no authentication required) ============
		auth := api.Group("/auth")
		{
			auth.POST("/login", hs.User.Login)
			auth.POST("/refresh", hs.User.RefreshToken)
		}

		// ============ Protected routes (JWT authentication required) ============
		authorized := api.Group("")
		authorized.Use(hs.User.AuthMiddleware())
		{
			// Account management; registration is admin-only
			authorized.POST("/auth/register", hs.User.RequireAdmin(), hs.User.Register)

			users := authorized.Group("/users")
			{
				users.GET("/me", hs.User.GetCurrentUser)
				users.GET("", hs.User.ListUsers)
				users.GET("/:id", hs.User.GetUser)
				users.DELETE("/:id", hs.User.RequireAdmin(), hs.User.DeleteUser)
			}

			// Planilla configurations and synchronization
			config := authorized.Group("/config")
			{
				config.GET("", hs.Config.List)
				config.POST("", hs.Config.Create)
				config.GET("/:id", hs.Config.Get)
				config.DELETE("/:id", hs.Config.Delete)
			}
			authorized.POST("/sync/:id", hs.Sync.Sync)

			// Stored snapshots for the explorer
			authorized.GET("/projects/by-config/:configId", hs.Project.GetByConfig)

			// Case records
			solicitudes := authorized.Group("/solicitudes")
			{
				solicitudes.POST("", hs.Solicitud.Create)
				solicitudes.GET("/config/:configId", hs.Solicitud.ListByConfig)
				solicitudes.GET("/:id", hs.Solicitud.Get)
				solicitudes.PUT("/:id", hs.Solicitud.Update)
				solicitudes.DELETE("/:id", hs.Solicitud.Delete)
			}

			// Orders and subsidies are views over the same records
			orders := authorized.Group("/orders")
			{
				orders.GET("", hs.Solicitud.ListOrders)
				orders.POST("", hs.Solicitud.CreateOrder)
				orders.GET("/:id", hs.Solicitud.Get)
				orders.PUT("/:id", hs.Solicitud.Update)
				orders.DELETE("/:id", hs.Solicitud.Delete)
			}
			subsidies := authorized.Group("/subsidies")
			{
				subsidies.GET("", hs.Solicitud.ListSubsidies)
				subsidies.POST("", hs.Solicitud.CreateSubsidy)
				subsidies.GET("/:id", hs.Solicitud.Get)
				subsidies.PUT("/:id", hs.Solicitud.Update)
				subsidies.DELETE("/:id", hs.Solicitud.Delete)
			}

			// Reference data
			persons := authorized.Group("/persons")
			{
				persons.GET("", hs.Person.List)
				persons.POST("", hs.Person.Create)
				persons.GET("/:id", hs.Person.Get)
				persons.PUT("/:id", hs.Person.Update)
				persons.DELETE("/:id", hs.Person.Delete)
			}
			locations := authorized.Group("/locations")
			{
				locations.GET("", hs.Location.List)
				locations.POST("", hs.Location.Create)
				locations.GET("/:id", hs.Location.Get)
				locations.PUT("/:id", hs.Location.Update)
				locations.DELETE("/:id", hs.Location.Delete)
			}
			responsables := authorized.Group("/responsables")
			{
				responsables.GET("", hs.Responsable.List)
				responsables.POST("", hs.Responsable.Create)
				responsables.GET("/:id", hs.Responsable.Get)
				responsables.PUT("/:id", hs.Responsable.Update)
				responsables.DELETE("/:id", hs.Responsable.Delete)
			}

			// Dashboard
			authorized.GET("/dashboard/stats", hs.Dashboard.Stats)
		}
	}
}
