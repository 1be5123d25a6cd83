package client

const (
	// API prefix
	apiPrefix = "/api"

	// Authentication endpoints
	endpointLogin = apiPrefix + "/auth/login"

	// Planilla configuration endpoints
	endpointConfigs    = apiPrefix + "/config"    // GET, POST
	endpointConfigByID = apiPrefix + "/config/%d" // GET, DELETE
	endpointSync       = apiPrefix + "/sync/%d"   // POST

	// Snapshot endpoints
	endpointProjectByConfig = apiPrefix + "/projects/by-config/%d" // GET

	// Case record endpoints
	endpointSolicitudes         = apiPrefix + "/solicitudes"           // POST
	endpointSolicitudesByConfig = apiPrefix + "/solicitudes/config/%d" // GET

	// Dashboard endpoints
	endpointDashboardStats = apiPrefix + "/dashboard/stats" // GET
)
