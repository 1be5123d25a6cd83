package client

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/cloudwego/hertz/pkg/app/client"
	"github.com/cloudwego/hertz/pkg/network/standard"
	"github.com/cloudwego/hertz/pkg/protocol"
	"github.com/cloudwego/hertz/pkg/protocol/consts"

	"github.com/fdieguez/sgp/internal/cli/types"
)

// APIClient wraps Hertz Client for HTTP communication with the SGP API server
type APIClient struct {
	client *client.Client
	server string
	token  string
}

// NewAPIClient creates a new API client
func NewAPIClient(server, token string) (*APIClient, error) {
	// Normalize server URL
	normalizedServer, err := normalizeServerURL(server)
	if err != nil {
		return nil, fmt.Errorf("invalid server URL: %w", err)
	}

	c, err := client.NewClient(
		client.WithDialTimeout(10*time.Second),
		client.WithMaxIdleConnDuration(60*time.Second),
		client.WithDialer(standard.NewDialer()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP client: %w", err)
	}

	return &APIClient{
		client: c,
		server: normalizedServer,
		token:  token,
	}, nil
}

// normalizeServerURL normalizes server URL to ensure it has a scheme and no trailing slash
func normalizeServerURL(server string) (string, error) {
	// Add scheme if missing
	if !strings.Contains(server, "://") {
		server = "http://" + server
	}

	// Parse and validate
	u, err := url.Parse(server)
	if err != nil || u.Host == "" {
		return "", fmt.Errorf("invalid server URL")
	}

	// Return scheme://host (no path, no trailing slash)
	return fmt.Sprintf("%s://%s", u.Scheme, u.Host), nil
}

// Login performs user login
func (c *APIClient) Login(ctx context.Context, email, password string) (*types.APIResponse[types.LoginData], error) {
	// Build request body
	reqBody := types.LoginRequest{
		Email:    email,
		Password: password,
	}
	bodyBytes, err := sonic.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	// Create request
	req := protocol.AcquireRequest()
	resp := protocol.AcquireResponse()
	defer func() {
		protocol.ReleaseRequest(req)
		protocol.ReleaseResponse(resp)
	}()

	req.SetMethod(consts.MethodPost)
	req.SetRequestURI(c.server + endpointLogin)
	req.Header.SetContentTypeBytes([]byte("application/json"))
	req.SetBody(bodyBytes)

	// Send request
	if err := c.client.Do(ctx, req, resp); err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}

	// Check HTTP status code first
	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("login failed with HTTP status: %d", resp.StatusCode())
	}

	// Parse response
	var loginResp types.APIResponse[types.LoginData]
	if err := sonic.Unmarshal(resp.Body(), &loginResp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return &loginResp, nil
}

// ListConfigs lists all configured planillas
func (c *APIClient) ListConfigs(ctx context.Context) ([]types.ConfigItem, error) {
	req := protocol.AcquireRequest()
	resp := protocol.AcquireResponse()
	defer func() {
		protocol.ReleaseRequest(req)
		protocol.ReleaseResponse(resp)
	}()

	req.SetMethod(consts.MethodGet)
	req.SetRequestURI(c.server + endpointConfigs)
	req.Header.Set("Authorization", "Bearer "+c.token)

	if err := c.client.Do(ctx, req, resp); err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}

	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("failed to list configs (HTTP %d)", resp.StatusCode())
	}

	var listResp types.APIResponse[types.ListData[types.ConfigItem]]
	if err := sonic.Unmarshal(resp.Body(), &listResp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return listResp.Data.Items, nil
}

// CreateConfig registers a new planilla configuration
func (c *APIClient) CreateConfig(ctx context.Context, createReq *types.CreateConfigRequest) (*types.ConfigItem, error) {
	bodyBytes, err := sonic.Marshal(createReq)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req := protocol.AcquireRequest()
	resp := protocol.AcquireResponse()
	defer func() {
		protocol.ReleaseRequest(req)
		protocol.ReleaseResponse(resp)
	}()

	req.SetMethod(consts.MethodPost)
	req.SetRequestURI(c.server + endpointConfigs)
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.SetContentTypeBytes([]byte("application/json"))
	req.SetBody(bodyBytes)

	if err := c.client.Do(ctx, req, resp); err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}

	statusCode := resp.StatusCode()
	if statusCode < 200 || statusCode >= 300 {
		return nil, fmt.Errorf("create failed with HTTP status: %d, body: %s", statusCode, string(resp.Body()))
	}

	var createResp types.APIResponse[types.ConfigItem]
	if err := sonic.Unmarshal(resp.Body(), &createResp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return &createResp.Data, nil
}

// Sync triggers a synchronization run for one planilla
func (c *APIClient) Sync(ctx context.Context, configID int64) (*types.SyncResult, error) {
	req := protocol.AcquireRequest()
	resp := protocol.AcquireResponse()
	defer func() {
		protocol.ReleaseRequest(req)
		protocol.ReleaseResponse(resp)
	}()

	req.SetMethod(consts.MethodPost)
	req.SetRequestURI(fmt.Sprintf("%s"+endpointSync, c.server, configID))
	req.Header.Set("Authorization", "Bearer "+c.token)

	if err := c.client.Do(ctx, req, resp); err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}

	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("sync failed with HTTP status: %d, body: %s", resp.StatusCode(), string(resp.Body()))
	}

	var syncResp types.APIResponse[types.SyncResult]
	if err := sonic.Unmarshal(resp.Body(), &syncResp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return &syncResp.Data, nil
}

// GetProject fetches the stored snapshot for a planilla
func (c *APIClient) GetProject(ctx context.Context, configID int64) (*types.ProjectData, error) {
	req := protocol.AcquireRequest()
	resp := protocol.AcquireResponse()
	defer func() {
		protocol.ReleaseRequest(req)
		protocol.ReleaseResponse(resp)
	}()

	req.SetMethod(consts.MethodGet)
	req.SetRequestURI(fmt.Sprintf("%s"+endpointProjectByConfig, c.server, configID))
	req.Header.Set("Authorization", "Bearer "+c.token)

	if err := c.client.Do(ctx, req, resp); err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}

	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("failed to fetch snapshot (HTTP %d)", resp.StatusCode())
	}

	var projectResp types.APIResponse[types.ProjectData]
	if err := sonic.Unmarshal(resp.Body(), &projectResp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return &projectResp.Data, nil
}

// ListSolicitudes lists the case records imported from one planilla
func (c *APIClient) ListSolicitudes(ctx context.Context, configID int64) ([]types.Solicitud, error) {
	req := protocol.AcquireRequest()
	resp := protocol.AcquireResponse()
	defer func() {
		protocol.ReleaseRequest(req)
		protocol.ReleaseResponse(resp)
	}()

	req.SetMethod(consts.MethodGet)
	req.SetRequestURI(fmt.Sprintf("%s"+endpointSolicitudesByConfig, c.server, configID))
	req.Header.Set("Authorization", "Bearer "+c.token)

	if err := c.client.Do(ctx, req, resp); err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}

	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("failed to list solicitudes (HTTP %d)", resp.StatusCode())
	}

	var listResp types.APIResponse[types.ListData[types.Solicitud]]
	if err := sonic.Unmarshal(resp.Body(), &listResp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return listResp.Data.Items, nil
}

// CreateSolicitud creates a new case record
func (c *APIClient) CreateSolicitud(ctx context.Context, createReq *types.CreateSolicitudRequest) error {
	bodyBytes, err := sonic.Marshal(createReq)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	req := protocol.AcquireRequest()
	resp := protocol.AcquireResponse()
	defer func() {
		protocol.ReleaseRequest(req)
		protocol.ReleaseResponse(resp)
	}()

	req.SetMethod(consts.MethodPost)
	req.SetRequestURI(c.server + endpointSolicitudes)
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.SetContentTypeBytes([]byte("application/json"))
	req.SetBody(bodyBytes)

	if err := c.client.Do(ctx, req, resp); err != nil {
		return fmt.Errorf("request failed: %w", err)
	}

	statusCode := resp.StatusCode()
	if statusCode < 200 || statusCode >= 300 {
		return fmt.Errorf("create failed with HTTP status: %d, body: %s", statusCode, string(resp.Body()))
	}

	return nil
}

// Stats fetches the dashboard counters
func (c *APIClient) Stats(ctx context.Context) (*types.DashboardStats, error) {
	req := protocol.AcquireRequest()
	resp := protocol.AcquireResponse()
	defer func() {
		protocol.ReleaseRequest(req)
		protocol.ReleaseResponse(resp)
	}()

	req.SetMethod(consts.MethodGet)
	req.SetRequestURI(c.server + endpointDashboardStats)
	req.Header.Set("Authorization", "Bearer "+c.token)

	if err := c.client.Do(ctx, req, resp); err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}

	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("failed to fetch stats (HTTP %d)", resp.StatusCode())
	}

	var statsResp types.APIResponse[types.DashboardStats]
	if err := sonic.Unmarshal(resp.Body(), &statsResp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return &statsResp.Data, nil
}
