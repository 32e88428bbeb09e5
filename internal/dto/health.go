package dto

// HealthResponse represents the response structure for the health check
type HealthResponse struct {
	OK bool `json:"ok"`
}

// ProbeResponse represents liveness/readiness probe responses
type ProbeResponse struct {
	Status  string `json:"status"`
	Details any    `json:"details,omitempty"`
}
