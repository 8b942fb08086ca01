// ABOUTME: Health check handler for the Huma API
// ABOUTME: Reports service liveness for monitoring probes

package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

// HealthHandler handles health check requests
type HealthHandler struct {
	version string
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(version string) *HealthHandler {
	return &HealthHandler{
		version: version,
	}
}

// RegisterRoutes registers the health check route
func (h *HealthHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "healthCheck",
		Method:      http.MethodGet,
		Path:        "/health",
		Summary:     "Health check",
		Description: "Reports whether the service is running",
		Tags:        []string{"Health"},
	}, h.Check)
}

// HealthOutput defines the output for the health check
type HealthOutput struct {
	Body struct {
		Status  string `json:"status" doc:"Service status"`
		Version string `json:"version" doc:"Service version"`
	}
}

// Check handles the GET /health endpoint
func (h *HealthHandler) Check(ctx context.Context, input *struct{}) (*HealthOutput, error) {
	output := &HealthOutput{}
	output.Body.Status = "ok"
	output.Body.Version = h.version
	return output, nil
}
