package types

import "github.com/podforge/podforge-api/pkg/script"

// Status constants for API responses
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// BaseResponse contains fields common to all API responses
type BaseResponse struct {
	Status  string `json:"status"`            // One of the Status constants above
	Message string `json:"message,omitempty"` // Human-readable message
}

// ParseScriptResponse for the script parse endpoint. Duration is estimated
// from word counts, not from generated audio.
type ParseScriptResponse struct {
	Mode                       string           `json:"mode"`
	Speakers                   []string         `json:"speakers"`
	Segments                   []script.Segment `json:"segments"`
	EstimatedDurationSeconds   int              `json:"estimatedDurationSeconds"`
	EstimatedDurationFormatted string           `json:"estimatedDurationFormatted"`
}

// JobListResponse for job listing endpoints
type JobListResponse struct {
	Jobs   []Job `json:"jobs"`
	Count  int   `json:"count"` // Number of results in this response
	Limit  int   `json:"limit"`
	Offset int   `json:"offset"`
}

// VoicesResponse for the voice catalog endpoint
type VoicesResponse struct {
	Providers       map[string][]Voice `json:"providers"`
	DefaultProvider string             `json:"defaultProvider"`
}

// ErrorResponse for detailed error information
type ErrorResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message"`
	Error   string      `json:"error,omitempty"`   // Error code/type
	Details interface{} `json:"details,omitempty"` // Additional error details
}

// HealthResponse for health check endpoint
type HealthResponse struct {
	BaseResponse
	Version  string                 `json:"version,omitempty"`
	Services map[string]interface{} `json:"services,omitempty"`
}
